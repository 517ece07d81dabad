package edit

import (
	"strconv"

	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/doc"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
)

// Move reparents the node at dragged according to where it was dropped:
//
//   - onto an object: it becomes a member, keeping its key (suffixed "_1",
//     "_2", ... on collision);
//   - onto an array: it is appended;
//   - anywhere else: it becomes a member of the root, inserted before the
//     drop target when that is a top-level member, otherwise appended.
//
// An array element moved into an object is keyed "<array key>_<index>", or
// "item_<index>" when the array itself has no key.
//
// Move reports false and changes nothing when dragged is the root or does
// not resolve, or when target is dragged or lies inside it.
func (e *Engine) Move(dragged, target kpath.KPath) (kpath.KPath, bool) {
	srcParent, seg, ok := e.parentOf(dragged)
	if !ok {
		return nil, false
	}
	if kpath.IsAncestor(dragged, target) {
		if debug.Move() {
			debug.Logf("move: %q into its own subtree %q", dragged.String(), target.String())
		}
		return nil, false
	}
	node, _ := kpath.Resolve(srcParent, kpath.KPath{seg})

	dst, hint := e.dropTarget(target)
	if seg.Kind == kpath.IndexKind && dst.Type == ir.ObjectType {
		hint.Key = elementKey(dragged.Parent(), seg.Index)
	}
	if _, err := e.doc.MoveNode(srcParent, seg, dst, hint); err != nil {
		debug.Logger().Warn().Err(err).
			Str("from", dragged.String()).
			Str("to", target.String()).
			Msg("move")
		return nil, false
	}
	res, _ := e.doc.PathOf(node)
	if debug.Move() {
		debug.Logf("move: %q -> %q", dragged.String(), res.String())
	}
	e.changed(commonAncestor(dragged.Parent(), res.Parent()), false)
	return res, true
}

func (e *Engine) dropTarget(target kpath.KPath) (*ir.Node, doc.Hint) {
	if n, err := e.doc.Resolve(target); err == nil {
		switch n.Type {
		case ir.ObjectType, ir.ArrayType:
			return n, doc.Hint{}
		}
		if len(target) == 1 && target[0].Kind == kpath.FieldKind {
			return e.doc.Root(), doc.Hint{Before: target[0].Field}
		}
	}
	return e.doc.Root(), doc.Hint{}
}

func elementKey(arrPath kpath.KPath, i int) string {
	base := "item"
	if last, ok := arrPath.Last(); ok && last.Kind == kpath.FieldKind {
		base = last.Field
	}
	return base + "_" + strconv.Itoa(i)
}

func commonAncestor(a, b kpath.KPath) kpath.KPath {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return a[:n:n]
}
