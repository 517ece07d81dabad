package doc

import (
	"fmt"
	"slices"

	"github.com/signadot/earthedit/ir"
)

// SetProperty sets obj[name] = v.  An existing member keeps its position,
// a new one is appended.
func (d *Document) SetProperty(obj *ir.Node, name string, v *ir.Node) error {
	if err := d.checkOwned(obj); err != nil {
		return err
	}
	if obj.Type != ir.ObjectType {
		return fmt.Errorf("%w: cannot set %q on %s", ErrNotAnObject, name, obj.Type)
	}
	if err := d.checkDetached(v); err != nil {
		return err
	}
	if i := obj.IndexOf(name); i >= 0 {
		d.release(obj.Values[i])
		obj.Values[i] = v
	} else {
		obj.Fields = append(obj.Fields, name)
		obj.Values = append(obj.Values, v)
	}
	d.adopt(v, obj, link{field: name, index: -1})
	return nil
}

// RemoveProperty removes obj[name] if present.  Removing an absent member
// succeeds.
func (d *Document) RemoveProperty(obj *ir.Node, name string) error {
	if err := d.checkOwned(obj); err != nil {
		return err
	}
	if obj.Type != ir.ObjectType {
		return fmt.Errorf("%w: cannot remove %q from %s", ErrNotAnObject, name, obj.Type)
	}
	i := obj.IndexOf(name)
	if i < 0 {
		return nil
	}
	d.release(d.detachMember(obj, i))
	return nil
}

// RenameProperty renames a member in place: its ordinal position and value
// are unchanged.
func (d *Document) RenameProperty(obj *ir.Node, oldName, newName string) error {
	if err := d.checkOwned(obj); err != nil {
		return err
	}
	if obj.Type != ir.ObjectType {
		return fmt.Errorf("%w: cannot rename %q in %s", ErrNotAnObject, oldName, obj.Type)
	}
	i := obj.IndexOf(oldName)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, oldName)
	}
	if oldName == newName {
		return nil
	}
	if obj.IndexOf(newName) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, newName)
	}
	obj.Fields[i] = newName
	d.links[obj.Values[i].ID] = link{parent: obj.ID, field: newName, index: -1}
	return nil
}

// InsertArrayElement inserts v at index i of arr, shifting later elements.
// i == len(arr) appends.
func (d *Document) InsertArrayElement(arr *ir.Node, i int, v *ir.Node) error {
	if err := d.checkOwned(arr); err != nil {
		return err
	}
	if arr.Type != ir.ArrayType {
		return fmt.Errorf("%w: cannot insert into %s", ErrNotAnArray, arr.Type)
	}
	if i < 0 || i > len(arr.Values) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, i, len(arr.Values))
	}
	if err := d.checkDetached(v); err != nil {
		return err
	}
	arr.Values = slices.Insert(arr.Values, i, v)
	d.adopt(v, arr, link{index: i})
	d.reindex(arr, i+1)
	return nil
}

// RemoveArrayElement removes and returns element i of arr, shifting later
// elements down.  The returned node is detached.
func (d *Document) RemoveArrayElement(arr *ir.Node, i int) (*ir.Node, error) {
	if err := d.checkOwned(arr); err != nil {
		return nil, err
	}
	if arr.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: cannot remove from %s", ErrNotAnArray, arr.Type)
	}
	if i < 0 || i >= len(arr.Values) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(arr.Values))
	}
	v := d.detachElement(arr, i)
	d.release(v)
	return v, nil
}

// SetArrayElement replaces element i of arr with v.
func (d *Document) SetArrayElement(arr *ir.Node, i int, v *ir.Node) error {
	if err := d.checkOwned(arr); err != nil {
		return err
	}
	if arr.Type != ir.ArrayType {
		return fmt.Errorf("%w: cannot set element of %s", ErrNotAnArray, arr.Type)
	}
	if i < 0 || i >= len(arr.Values) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(arr.Values))
	}
	if err := d.checkDetached(v); err != nil {
		return err
	}
	d.release(arr.Values[i])
	arr.Values[i] = v
	d.adopt(v, arr, link{index: i})
	return nil
}

// detachMember unlinks member i of obj, keeping the ids of the subtree.
func (d *Document) detachMember(obj *ir.Node, i int) *ir.Node {
	v := obj.Values[i]
	obj.Fields = slices.Delete(obj.Fields, i, i+1)
	obj.Values = slices.Delete(obj.Values, i, i+1)
	delete(d.links, v.ID)
	return v
}

func (d *Document) detachElement(arr *ir.Node, i int) *ir.Node {
	v := arr.Values[i]
	arr.Values = slices.Delete(arr.Values, i, i+1)
	delete(d.links, v.ID)
	d.reindex(arr, i)
	return v
}
