package doc

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
)

// Hint guides where MoveNode attaches a node in an object.
type Hint struct {
	// Key is the preferred member name.  Empty means the node's current
	// key; a node moved out of an array must be given one.
	Key string
	// Before names a member of the target object to insert in front of.
	// When empty or absent the node is appended.
	Before string
}

// MoveNode detaches the child of srcParent at seg and attaches it under
// dstParent.  In an object the key is made unique by suffixing "_1", "_2",
// ...; in an array the node is appended.  It returns the node's segment in
// its new container.
//
// MoveNode is atomic: on failure the node is back where it was.  The moved
// subtree keeps its ids.
func (d *Document) MoveNode(srcParent *ir.Node, seg kpath.Segment, dstParent *ir.Node, hint Hint) (kpath.Segment, error) {
	if err := d.checkOwned(srcParent); err != nil {
		return kpath.Segment{}, err
	}
	if err := d.checkOwned(dstParent); err != nil {
		return kpath.Segment{}, err
	}
	pos, err := d.childPos(srcParent, seg)
	if err != nil {
		return kpath.Segment{}, err
	}
	child := srcParent.Values[pos]
	if d.isAncestorOrSelf(child, dstParent) {
		return kpath.Segment{}, fmt.Errorf("%w: %s", ErrCycle, seg)
	}
	key := hint.Key
	if key == "" && seg.Kind == kpath.FieldKind {
		key = seg.Field
	}

	if srcParent.Type == ir.ObjectType {
		d.detachMember(srcParent, pos)
	} else {
		d.detachElement(srcParent, pos)
	}
	res, err := d.attach(child, dstParent, key, hint.Before)
	if err != nil {
		d.restore(child, srcParent, seg, pos)
		return kpath.Segment{}, err
	}
	return res, nil
}

func (d *Document) childPos(parent *ir.Node, seg kpath.Segment) (int, error) {
	switch parent.Type {
	case ir.ObjectType:
		if seg.Kind != kpath.FieldKind {
			return 0, fmt.Errorf("%w: index %d into object", ErrNotAnArray, seg.Index)
		}
		i := parent.IndexOf(seg.Field)
		if i < 0 {
			return 0, fmt.Errorf("%w: %q", ErrKeyNotFound, seg.Field)
		}
		return i, nil
	case ir.ArrayType:
		if seg.Kind != kpath.IndexKind {
			return 0, fmt.Errorf("%w: field %q of array", ErrNotAnObject, seg.Field)
		}
		if seg.Index < 0 || seg.Index >= len(parent.Values) {
			return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, seg.Index)
		}
		return seg.Index, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrNotContainer, parent.Type)
}

// isAncestorOrSelf reports whether a is n or contains it.
func (d *Document) isAncestorOrSelf(a, n *ir.Node) bool {
	id := n.ID
	for {
		if id == a.ID {
			return true
		}
		l, ok := d.links[id]
		if !ok {
			return false
		}
		id = l.parent
	}
}

func (d *Document) attach(child, dst *ir.Node, key, before string) (kpath.Segment, error) {
	switch dst.Type {
	case ir.ObjectType:
		if key == "" {
			return kpath.Segment{}, fmt.Errorf("%w: no key for object member", ErrKeyNotFound)
		}
		key = UniqueKey(dst, key)
		at := len(dst.Fields)
		if before != "" {
			if i := dst.IndexOf(before); i >= 0 {
				at = i
			}
		}
		dst.Fields = slices.Insert(dst.Fields, at, key)
		dst.Values = slices.Insert(dst.Values, at, child)
		d.links[child.ID] = link{parent: dst.ID, field: key, index: -1}
		return kpath.Field(key), nil
	case ir.ArrayType:
		dst.Values = append(dst.Values, child)
		i := len(dst.Values) - 1
		d.links[child.ID] = link{parent: dst.ID, index: i}
		return kpath.Index(i), nil
	}
	return kpath.Segment{}, fmt.Errorf("%w: cannot attach to %s", ErrNotContainer, dst.Type)
}

func (d *Document) restore(child, parent *ir.Node, seg kpath.Segment, pos int) {
	if parent.Type == ir.ObjectType {
		parent.Fields = slices.Insert(parent.Fields, pos, seg.Field)
		parent.Values = slices.Insert(parent.Values, pos, child)
		d.links[child.ID] = link{parent: parent.ID, field: seg.Field, index: -1}
		return
	}
	parent.Values = slices.Insert(parent.Values, pos, child)
	d.reindex(parent, pos)
}

// UniqueKey returns key if obj has no such member, otherwise the first of
// key_1, key_2, ... that is unused.
func UniqueKey(obj *ir.Node, key string) string {
	if obj.IndexOf(key) < 0 {
		return key
	}
	for i := 1; ; i++ {
		k := key + "_" + strconv.Itoa(i)
		if obj.IndexOf(k) < 0 {
			return k
		}
	}
}
