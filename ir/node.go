package ir

import (
	"slices"
)

// ID identifies a node within one document arena.  The zero ID means the
// node is detached.
type ID uint64

type Node struct {
	Type   Type
	ID     ID
	Fields []string
	Values []*Node

	String string
	Number float64
	Bool   bool
}

// KeyVal is one object member.
type KeyVal struct {
	Key string
	Val *Node
}

// Clone returns a deep copy of y sharing no structure with it.  The copy
// and all of its descendants are detached.
func (y *Node) Clone() *Node {
	return y.CloneTo(&Node{})
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.ID = 0
	dst.String = y.String
	dst.Number = y.Number
	dst.Bool = y.Bool
	dst.Fields = nil
	dst.Values = nil
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromNumber(f float64) *Node {
	return &Node{Type: NumberType, Number: f}
}

func FromInt(v int) *Node {
	return FromNumber(float64(v))
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// EmptyObject returns an object with no members.
func EmptyObject() *Node {
	return &Node{Type: ObjectType, Fields: []string{}, Values: []*Node{}}
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

// Zero returns the default value for a type token: "" for strings, 0 for
// numbers, false, null, {} and [].
func Zero(t Type) *Node {
	switch t {
	case StringType:
		return FromString("")
	case NumberType:
		return FromNumber(0)
	case BoolType:
		return FromBool(false)
	case NullType:
		return Null()
	case ObjectType:
		return EmptyObject()
	case ArrayType:
		return FromSlice(nil)
	default:
		return FromString("")
	}
}

// Get returns the value of field in object y, or nil.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	i := y.IndexOf(field)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

// IndexOf returns the ordinal position of field among the members of y, or
// -1.
func (y *Node) IndexOf(field string) int {
	for i, f := range y.Fields {
		if f == field {
			return i
		}
	}
	return -1
}

// Has reports whether object y has a member named field.
func (y *Node) Has(field string) bool {
	return y.Type == ObjectType && y.IndexOf(field) >= 0
}

// Len returns the number of children.
func (y *Node) Len() int {
	return len(y.Values)
}

// Visit walks y in pre-order, calling f before and after the children of
// each node.  Children are only visited if f returns true on the pre call.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
