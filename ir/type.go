package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
)

// String returns the type token used by presets and the property panel.
func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType: "Object",
		ArrayType:  "Array",
		StringType: "String",
		NumberType: "Number",
		BoolType:   "Boolean",
		NullType:   "Null",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, err := ParseType(string(d))
	if err != nil {
		return err
	}
	*t = tt
	return nil
}

// ParseType maps a type token to a Type.  "Bool" is accepted as an alias
// of "Boolean".
func ParseType(s string) (Type, error) {
	tt, ok := map[string]Type{
		"Null":    NullType,
		"Boolean": BoolType,
		"Bool":    BoolType,
		"Number":  NumberType,
		"String":  StringType,
		"Array":   ArrayType,
		"Object":  ObjectType,
	}[s]
	if !ok {
		return NullType, fmt.Errorf("%w %q", ErrUnknownType, s)
	}
	return tt, nil
}

// Types lists the types in the order the type selector offers them.
func Types() []Type {
	return []Type{
		StringType,
		NumberType,
		BoolType,
		NullType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}
