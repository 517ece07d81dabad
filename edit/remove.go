package edit

import (
	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
)

// RemoveNode removes the node at p: by key from an object, by index from an
// array.  Later array elements shift down, so their paths change.  The
// root cannot be removed.
func (e *Engine) RemoveNode(p kpath.KPath) bool {
	_, ok := e.remove(p)
	return ok
}

func (e *Engine) remove(p kpath.KPath) (*ir.Node, bool) {
	parent, seg, ok := e.parentOf(p)
	if !ok {
		return nil, false
	}
	var removed *ir.Node
	switch parent.Type {
	case ir.ObjectType:
		removed = ir.Get(parent, seg.Field)
		if err := e.doc.RemoveProperty(parent, seg.Field); err != nil {
			debug.Logger().Warn().Err(err).Str("path", p.String()).Msg("remove")
			return nil, false
		}
	case ir.ArrayType:
		n, err := e.doc.RemoveArrayElement(parent, seg.Index)
		if err != nil {
			debug.Logger().Warn().Err(err).Str("path", p.String()).Msg("remove")
			return nil, false
		}
		removed = n
	default:
		return nil, false
	}
	if debug.Edit() {
		debug.Logf("edit: removed %q", p.String())
	}
	e.changed(p.Parent(), false)
	return removed, true
}
