package encode

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/signadot/earthedit/ir"
)

const DefaultIndent = 4

type EncState struct {
	indent  int
	wire    bool
	newline bool
	Color   func(ir.Type, ColorAttr, string) string

	w     *bufio.Writer
	depth int
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: DefaultIndent}
	for _, opt := range opts {
		opt(es)
	}
	es.w = bufio.NewWriter(w)
	if err := es.node(node); err != nil {
		return err
	}
	if es.newline {
		es.w.WriteByte('\n')
	}
	return es.w.Flush()
}

// Bytes encodes node to a byte slice.
func Bytes(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) sep(t ir.Type, s string) {
	es.w.WriteString(es.color(t, SepColor, s))
}

func (es *EncState) newlineIndent() {
	if es.wire {
		return
	}
	es.w.WriteByte('\n')
	es.w.WriteString(strings.Repeat(" ", es.depth*es.indent))
}

func (es *EncState) node(node *ir.Node) error {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) != len(node.Values) {
			return fmt.Errorf("object with %d keys and %d values", len(node.Fields), len(node.Values))
		}
		es.sep(ir.ObjectType, "{")
		if len(node.Values) == 0 {
			es.sep(ir.ObjectType, "}")
			return nil
		}
		es.depth++
		for i, f := range node.Fields {
			if i > 0 {
				es.sep(ir.ObjectType, ",")
			}
			es.newlineIndent()
			k, err := quote(f)
			if err != nil {
				return err
			}
			es.w.WriteString(es.color(ir.ObjectType, FieldColor, k))
			es.sep(ir.ObjectType, ":")
			if !es.wire {
				es.w.WriteByte(' ')
			}
			if err := es.node(node.Values[i]); err != nil {
				return err
			}
		}
		es.depth--
		es.newlineIndent()
		es.sep(ir.ObjectType, "}")
		return nil
	case ir.ArrayType:
		es.sep(ir.ArrayType, "[")
		if len(node.Values) == 0 {
			es.sep(ir.ArrayType, "]")
			return nil
		}
		es.depth++
		for i, v := range node.Values {
			if i > 0 {
				es.sep(ir.ArrayType, ",")
			}
			es.newlineIndent()
			if err := es.node(v); err != nil {
				return err
			}
		}
		es.depth--
		es.newlineIndent()
		es.sep(ir.ArrayType, "]")
		return nil
	case ir.StringType:
		s, err := quote(node.String)
		if err != nil {
			return err
		}
		es.w.WriteString(es.color(ir.StringType, ValueColor, s))
	case ir.NumberType:
		es.w.WriteString(es.color(ir.NumberType, ValueColor, ir.FormatNumber(node.Number)))
	case ir.BoolType:
		v := "false"
		if node.Bool {
			v = "true"
		}
		es.w.WriteString(es.color(ir.BoolType, ValueColor, v))
	case ir.NullType:
		es.w.WriteString(es.color(ir.NullType, ValueColor, "null"))
	default:
		return fmt.Errorf("cannot encode %s", node.Type)
	}
	return nil
}

// quote renders s as a JSON string, leaving <, > and & unescaped.
func quote(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
