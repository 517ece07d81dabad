package ir

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
)

// FromAny converts a Go value to a detached node.
//
// nil maps to null, bools to booleans, all numeric kinds to numbers, strings
// to strings, *Node to a clone, slices to arrays and string-keyed maps to
// objects with keys in sorted order.  Values implementing fmt.Stringer or
// encoding.TextMarshaler become strings.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case int:
		return FromNumber(float64(x)), nil
	case int64:
		return FromNumber(float64(x)), nil
	case interface{ Float64() (float64, error) }:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
		}
		return fromFloat(f)
	case []any:
		res := FromSlice(nil)
		for _, e := range x {
			en, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, en)
		}
		return res, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		res := EmptyObject()
		for _, k := range keys {
			vn, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, k)
			res.Values = append(res.Values, vn)
		}
		return res, nil
	case encoding.TextMarshaler:
		d, err := x.MarshalText()
		if err != nil {
			return nil, err
		}
		return FromString(string(d)), nil
	case fmt.Stringer:
		return FromString(x.String()), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromNumber(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromNumber(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return fromFloat(rv.Float())
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Slice, reflect.Array:
		res := FromSlice(nil)
		for i := range rv.Len() {
			en, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, en)
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

func fromFloat(f float64) (*Node, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v is not a JSON number", ErrUnsupported, f)
	}
	return FromNumber(f), nil
}

// ToAny converts y to plain Go values: map[string]any, []any, string,
// float64, bool and nil.  Object key order is lost.
func ToAny(y *Node) any {
	switch y.Type {
	case ObjectType:
		m := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			m[f] = ToAny(y.Values[i])
		}
		return m
	case ArrayType:
		a := make([]any, len(y.Values))
		for i, v := range y.Values {
			a[i] = ToAny(v)
		}
		return a
	case StringType:
		return y.String
	case NumberType:
		return y.Number
	case BoolType:
		return y.Bool
	default:
		return nil
	}
}

// FormatNumber renders f as a JSON number.  Integral values within the
// exactly representable range have no fraction or exponent.
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// DisplayValue is the inline value shown next to a key in the tree view:
// strings are quoted, other leaves use their JSON text, containers show
// nothing.
func DisplayValue(y *Node) string {
	switch y.Type {
	case StringType:
		return `"` + y.String + `"`
	case NumberType:
		return FormatNumber(y.Number)
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NullType:
		return "null"
	default:
		return ""
	}
}
