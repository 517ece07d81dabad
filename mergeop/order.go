package mergeop

import "github.com/signadot/earthedit/ir"

// RestoreOrder reorders the object members of patched so that members also
// present in orig at the same place come first, in orig's order, followed
// by the others in patched's order.  Arrays are matched by index.  patched
// is modified in place and returned.
func RestoreOrder(orig, patched *ir.Node) *ir.Node {
	if orig == nil || patched == nil || orig.Type != patched.Type {
		return patched
	}
	switch patched.Type {
	case ir.ObjectType:
		fields := make([]string, 0, len(patched.Fields))
		values := make([]*ir.Node, 0, len(patched.Values))
		used := make([]bool, len(patched.Fields))
		for i, f := range orig.Fields {
			j := patched.IndexOf(f)
			if j < 0 {
				continue
			}
			used[j] = true
			fields = append(fields, f)
			values = append(values, RestoreOrder(orig.Values[i], patched.Values[j]))
		}
		for j, f := range patched.Fields {
			if used[j] {
				continue
			}
			fields = append(fields, f)
			values = append(values, patched.Values[j])
		}
		patched.Fields = fields
		patched.Values = values
	case ir.ArrayType:
		for i := range min(len(orig.Values), len(patched.Values)) {
			RestoreOrder(orig.Values[i], patched.Values[i])
		}
	}
	return patched
}
