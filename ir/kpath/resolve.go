package kpath

import "github.com/signadot/earthedit/ir"

// Resolve returns the node at p under root.
func Resolve(root *ir.Node, p KPath) (*ir.Node, bool) {
	x := root
	for _, s := range p {
		if x == nil {
			return nil, false
		}
		switch s.Kind {
		case FieldKind:
			if x.Type != ir.ObjectType {
				return nil, false
			}
			i := x.IndexOf(s.Field)
			if i < 0 {
				return nil, false
			}
			x = x.Values[i]
		case IndexKind:
			if x.Type != ir.ArrayType {
				return nil, false
			}
			if s.Index < 0 || s.Index >= len(x.Values) {
				return nil, false
			}
			x = x.Values[s.Index]
		default:
			return nil, false
		}
	}
	return x, x != nil
}

// ResolveText parses text and resolves it; malformed text is not found.
func ResolveText(root *ir.Node, text string) (*ir.Node, bool) {
	p, err := Parse(text)
	if err != nil {
		return nil, false
	}
	return Resolve(root, p)
}

// Walk calls f on every node under root in document order, parents before
// children, with the node's path.  Returning false from f skips the node's
// children.
func Walk(root *ir.Node, f func(p KPath, n *ir.Node) bool) {
	walk(nil, root, f)
}

func walk(p KPath, n *ir.Node, f func(KPath, *ir.Node) bool) {
	if !f(p, n) {
		return
	}
	switch n.Type {
	case ir.ObjectType:
		for i, field := range n.Fields {
			walk(p.Child(field), n.Values[i], f)
		}
	case ir.ArrayType:
		for i, v := range n.Values {
			walk(p.Elem(i), v, f)
		}
	}
}
