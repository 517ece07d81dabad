// Package doc holds the mutable document model: one JSON tree with an
// arena tracking every node's container.
//
// Each attached node has a non-zero ir.ID.  The document keeps two maps
// keyed by ID, one to the node and one to its link (parent ID plus key or
// index).  Every mutation updates both before returning, so the path of any
// node can be recovered without back pointers, and a node keeps its ID for
// as long as it stays in the document, including across renames and moves.
//
// Values handed to the mutation methods must be detached (ID 0), typically
// fresh or produced by DeepClone.
package doc

import (
	"fmt"

	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
)

type link struct {
	parent ir.ID
	field  string
	index  int // -1 for object members
}

type Document struct {
	root   *ir.Node
	nodes  map[ir.ID]*ir.Node
	links  map[ir.ID]link
	nextID ir.ID
}

// New returns a document whose root is an empty object.
func New() *Document {
	d := &Document{}
	d.reset(ir.EmptyObject())
	return d
}

// FromNode returns a document rooted at root, which must be a detached
// object.
func FromNode(root *ir.Node) (*Document, error) {
	d := New()
	if err := d.ReplaceRoot(root); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) Root() *ir.Node {
	return d.root
}

// ReplaceRoot swaps in a new tree.  A nil root is an empty object; any other
// non-object is rejected and the document is unchanged.
func (d *Document) ReplaceRoot(root *ir.Node) error {
	if root == nil {
		root = ir.EmptyObject()
	}
	if root.Type != ir.ObjectType {
		return fmt.Errorf("%w: root is %s", ErrNotAnObject, root.Type)
	}
	if d.owns(root) {
		return fmt.Errorf("%w: root", ErrAttached)
	}
	if d.root != nil {
		clearIDs(d.root)
	}
	d.reset(root)
	return nil
}

func (d *Document) reset(root *ir.Node) {
	d.root = root
	d.nodes = map[ir.ID]*ir.Node{}
	d.links = map[ir.ID]link{}
	d.adopt(root, nil, link{})
}

// Len returns the number of nodes in the document.
func (d *Document) Len() int {
	return len(d.nodes)
}

// Node returns the attached node with the given id.
func (d *Document) Node(id ir.ID) (*ir.Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

func (d *Document) owns(n *ir.Node) bool {
	if n == nil || n.ID == 0 {
		return false
	}
	return d.nodes[n.ID] == n
}

// Contains reports whether n is attached to d.
func (d *Document) Contains(n *ir.Node) bool {
	return d.owns(n)
}

// Parent returns the container of n and n's segment within it.  The root
// has no parent.
func (d *Document) Parent(n *ir.Node) (*ir.Node, kpath.Segment, bool) {
	if !d.owns(n) {
		return nil, kpath.Segment{}, false
	}
	l, ok := d.links[n.ID]
	if !ok {
		return nil, kpath.Segment{}, false
	}
	return d.nodes[l.parent], l.segment(), true
}

func (l link) segment() kpath.Segment {
	if l.index < 0 {
		return kpath.Field(l.field)
	}
	return kpath.Index(l.index)
}

// PathOf returns the path of an attached node.
func (d *Document) PathOf(n *ir.Node) (kpath.KPath, bool) {
	if !d.owns(n) {
		return nil, false
	}
	var rev []kpath.Segment
	id := n.ID
	for {
		l, ok := d.links[id]
		if !ok {
			break
		}
		rev = append(rev, l.segment())
		id = l.parent
	}
	res := make(kpath.KPath, len(rev))
	for i, s := range rev {
		res[len(rev)-1-i] = s
	}
	return res, true
}

// Resolve returns the node at p.
func (d *Document) Resolve(p kpath.KPath) (*ir.Node, error) {
	n, ok := kpath.Resolve(d.root, p)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, p.String())
	}
	return n, nil
}

// ResolveText resolves a path in text form; malformed paths are not found.
func (d *Document) ResolveText(text string) (*ir.Node, bool) {
	return kpath.ResolveText(d.root, text)
}

// Walk enumerates the document in display order.
func (d *Document) Walk(f func(p kpath.KPath, n *ir.Node) bool) {
	kpath.Walk(d.root, f)
}

// DeepClone returns a detached copy of n sharing nothing with the document.
func DeepClone(n *ir.Node) *ir.Node {
	return n.Clone()
}

// adopt assigns ids to n and its descendants and records their links.
// parent is nil for the root.
func (d *Document) adopt(n, parent *ir.Node, l link) {
	d.nextID++
	n.ID = d.nextID
	d.nodes[n.ID] = n
	if parent != nil {
		l.parent = parent.ID
		d.links[n.ID] = l
	}
	switch n.Type {
	case ir.ObjectType:
		for i, f := range n.Fields {
			d.adopt(n.Values[i], n, link{field: f, index: -1})
		}
	case ir.ArrayType:
		for i, v := range n.Values {
			d.adopt(v, n, link{index: i})
		}
	}
}

// release forgets n and its descendants.
func (d *Document) release(n *ir.Node) {
	n.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		delete(d.nodes, y.ID)
		delete(d.links, y.ID)
		y.ID = 0
		return true, nil
	})
}

// reindex refreshes the links of array elements from position i on.
func (d *Document) reindex(arr *ir.Node, i int) {
	for ; i < len(arr.Values); i++ {
		d.links[arr.Values[i].ID] = link{parent: arr.ID, index: i}
	}
}

func clearIDs(n *ir.Node) {
	n.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		y.ID = 0
		return !isPost, nil
	})
}

func (d *Document) checkDetached(v *ir.Node) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", ir.ErrUnsupported)
	}
	if d.owns(v) {
		return ErrAttached
	}
	return nil
}

func (d *Document) checkOwned(n *ir.Node) error {
	if !d.owns(n) {
		return ErrDetached
	}
	return nil
}
