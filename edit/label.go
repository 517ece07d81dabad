package edit

import (
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
)

// DisplayLabel returns the tree label of the node at p.  Containers are
// labelled by their key ("[i]" for array elements, "" for the root) and
// leaves by their value, strings quoted.
func (e *Engine) DisplayLabel(p kpath.KPath) (string, bool) {
	n, err := e.doc.Resolve(p)
	if err != nil {
		return "", false
	}
	return Label(p, n), true
}

// Label is DisplayLabel for a node already resolved at p.
func Label(p kpath.KPath, n *ir.Node) string {
	if n.Type.IsLeaf() {
		return ir.DisplayValue(n)
	}
	last, ok := p.Last()
	if !ok {
		return ""
	}
	return last.String()
}
