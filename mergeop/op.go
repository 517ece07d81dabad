// Package mergeop applies JSON patch documents to detached trees.
//
// Patches are computed on a serialized copy and the result re-parsed, so a
// failing patch leaves its input untouched.  Members that survive a patch
// keep their original relative order; members it adds follow them.
package mergeop

import (
	"errors"

	"github.com/signadot/earthedit/ir"
)

var (
	ErrUnknownOp = errors.New("unknown patch op")
	ErrPatch     = errors.New("patch failed")
)

type Op interface {
	// Patch returns the patched copy of doc.  doc is not modified.
	Patch(doc *ir.Node) (*ir.Node, error)
	String() string
}

type op struct {
	name  patchName
	child *ir.Node
}

func (o op) String() string {
	return o.name.String()
}
