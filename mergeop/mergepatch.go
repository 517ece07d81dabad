package mergeop

import (
	"fmt"

	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/encode"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

var mPatchSym = register(&mPatchSymbol{patchName: mPatchName})

// MergePatchOp is the RFC 7386 operation; its child is the merge patch.
// Null members delete, objects merge recursively, anything else replaces.
func MergePatchOp() Symbol {
	return mPatchSym
}

const (
	mPatchName patchName = "merge-patch"
)

type mPatchSymbol struct {
	patchName
}

func (s mPatchSymbol) Instance(child *ir.Node) (Op, error) {
	return &mPatchOp{op: op{name: s.patchName, child: child}}, nil
}

type mPatchOp struct {
	op
}

func (mp mPatchOp) Patch(doc *ir.Node) (*ir.Node, error) {
	if debug.Edit() {
		debug.Logf("merge-patch: %v", mp.child)
	}
	jOut, err := jsonpatch.MergePatch([]byte(encode.MustString(doc)), []byte(encode.MustString(mp.child)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.Parse(jOut)
	if err != nil {
		return nil, err
	}
	return RestoreOrder(doc, res), nil
}

// MergePatch applies the RFC 7386 merge patch text to doc.
func MergePatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	return apply(MergePatchOp(), doc, patch)
}
