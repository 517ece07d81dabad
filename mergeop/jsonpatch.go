package mergeop

import (
	"fmt"

	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/encode"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

var jPatchSym = register(&jPatchSymbol{patchName: jPatchName})

// JSONPatch is the RFC 6902 operation; its child is the array of patch
// operations.
func JSONPatch() Symbol {
	return jPatchSym
}

const (
	jPatchName patchName = "json-patch"
)

type jPatchSymbol struct {
	patchName
}

func (s jPatchSymbol) Instance(child *ir.Node) (Op, error) {
	ops, err := jsonpatch.DecodePatch([]byte(encode.MustString(child)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return &jPatchOp{ops: ops, op: op{name: s.patchName, child: child}}, nil
}

type jPatchOp struct {
	op
	ops jsonpatch.Patch
}

func (jp jPatchOp) Patch(doc *ir.Node) (*ir.Node, error) {
	if debug.Edit() {
		debug.Logf("json-patch: %d operations", len(jp.ops))
	}
	jOut, err := jp.ops.Apply([]byte(encode.MustString(doc)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.Parse(jOut)
	if err != nil {
		return nil, err
	}
	return RestoreOrder(doc, res), nil
}

// ApplyPatch applies the RFC 6902 patch text to doc.
func ApplyPatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	return apply(JSONPatch(), doc, patch)
}

func apply(s Symbol, doc *ir.Node, patch []byte) (*ir.Node, error) {
	child, err := parse.Parse(patch)
	if err != nil {
		return nil, err
	}
	o, err := s.Instance(child)
	if err != nil {
		return nil, err
	}
	return o.Patch(doc)
}
