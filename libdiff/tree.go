package libdiff

import (
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
)

// Change is one difference between two trees.  From is nil for
// insertions and To is nil for deletions.
type Change struct {
	Op   Op
	Path kpath.KPath
	From *ir.Node
	To   *ir.Node
}

// Diff returns the changes turning from into to.  Object members are
// matched by key, with deletions listed before the members of to; member
// order is ignored.  Array elements are matched by index.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diff(nil, from, to, &res)
	return res
}

func diff(p kpath.KPath, from, to *ir.Node, res *[]Change) {
	if from.Type != to.Type {
		*res = append(*res, Change{Op: Replace, Path: p, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.ObjectType:
		for i, f := range from.Fields {
			if !to.Has(f) {
				*res = append(*res, Change{Op: Delete, Path: p.Child(f), From: from.Values[i]})
			}
		}
		for i, f := range to.Fields {
			j := from.IndexOf(f)
			if j < 0 {
				*res = append(*res, Change{Op: Insert, Path: p.Child(f), To: to.Values[i]})
				continue
			}
			diff(p.Child(f), from.Values[j], to.Values[i], res)
		}
	case ir.ArrayType:
		n := min(len(from.Values), len(to.Values))
		for i := range n {
			diff(p.Elem(i), from.Values[i], to.Values[i], res)
		}
		for i := n; i < len(to.Values); i++ {
			*res = append(*res, Change{Op: Insert, Path: p.Elem(i), To: to.Values[i]})
		}
		for i := n; i < len(from.Values); i++ {
			*res = append(*res, Change{Op: Delete, Path: p.Elem(i), From: from.Values[i]})
		}
	default:
		if !ir.Equal(from, to) {
			*res = append(*res, Change{Op: Replace, Path: p, From: from, To: to})
		}
	}
}
