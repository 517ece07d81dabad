package edit

import (
	"fmt"

	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/mergeop"
	"github.com/signadot/earthedit/parse"
)

// UpdateFromRaw replaces the whole document with the parse of text, which
// must be a JSON object.  On a parse error it returns ErrInvalidRawJSON,
// wrapping the positioned parse error, and the document is unchanged.
func (e *Engine) UpdateFromRaw(text string) error {
	root, err := parse.ParseObject([]byte(text))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRawJSON, err)
	}
	return e.replaceRoot(root)
}

// ApplyPatch applies an RFC 6902 JSON patch to the document.  The patch
// applies entirely or not at all.
func (e *Engine) ApplyPatch(patch []byte) error {
	root, err := mergeop.ApplyPatch(e.doc.Root(), patch)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}
	return e.replaceRoot(root)
}

// MergePatch applies an RFC 7386 merge patch to the document.
func (e *Engine) MergePatch(patch []byte) error {
	root, err := mergeop.MergePatch(e.doc.Root(), patch)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}
	return e.replaceRoot(root)
}

func (e *Engine) replaceRoot(root *ir.Node) error {
	if err := e.doc.ReplaceRoot(root); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRawJSON, err)
	}
	if debug.Edit() {
		debug.Logf("edit: replaced root, %d nodes", e.doc.Len())
	}
	e.changed(nil, true)
	return nil
}
