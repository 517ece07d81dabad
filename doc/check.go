package doc

import (
	"fmt"

	"github.com/signadot/earthedit/ir"
)

// Check verifies the arena against the tree: every reachable node is
// registered under its id with a link naming its actual container and
// position, object keys are unique, and nothing else is registered.
func (d *Document) Check() error {
	seen := 0
	var check func(n, parent *ir.Node, want link) error
	check = func(n, parent *ir.Node, want link) error {
		seen++
		if n.ID == 0 || d.nodes[n.ID] != n {
			return fmt.Errorf("node %d not registered", n.ID)
		}
		got, ok := d.links[n.ID]
		if parent == nil {
			if ok {
				return fmt.Errorf("root %d has a link", n.ID)
			}
		} else {
			want.parent = parent.ID
			if !ok || got != want {
				return fmt.Errorf("node %d link %+v, want %+v", n.ID, got, want)
			}
		}
		switch n.Type {
		case ir.ObjectType:
			if len(n.Fields) != len(n.Values) {
				return fmt.Errorf("object %d has %d keys and %d values", n.ID, len(n.Fields), len(n.Values))
			}
			keys := map[string]bool{}
			for i, f := range n.Fields {
				if keys[f] {
					return fmt.Errorf("object %d: %w %q", n.ID, ErrDuplicateKey, f)
				}
				keys[f] = true
				if err := check(n.Values[i], n, link{field: f, index: -1}); err != nil {
					return err
				}
			}
		case ir.ArrayType:
			for i, v := range n.Values {
				if err := check(v, n, link{index: i}); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if d.root == nil || d.root.Type != ir.ObjectType {
		return fmt.Errorf("%w: root", ErrNotAnObject)
	}
	if err := check(d.root, nil, link{}); err != nil {
		return err
	}
	if seen != len(d.nodes) || seen != len(d.links)+1 {
		return fmt.Errorf("arena has %d nodes and %d links for %d reachable nodes", len(d.nodes), len(d.links), seen)
	}
	return nil
}
