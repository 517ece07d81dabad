package edit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/doc"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
)

// SetValue replaces the node at p with v.  Booleans, numbers and nil map to
// the matching JSON kinds, an *ir.Node is deep-cloned, and anything else
// becomes a string of its textual form.  The root cannot be replaced.
func (e *Engine) SetValue(p kpath.KPath, v any) bool {
	return e.replace(p, valueNode(v))
}

func valueNode(v any) *ir.Node {
	switch x := v.(type) {
	case *ir.Node:
		if x == nil {
			return ir.Null()
		}
		return doc.DeepClone(x)
	case string:
		return ir.FromString(x)
	}
	n, err := ir.FromAny(v)
	if err != nil || !n.Type.IsLeaf() {
		return ir.FromString(fmt.Sprint(v))
	}
	return n
}

// SetValueText sets the node at p from editor text, interpreted by the
// node's current type: numbers and booleans must parse, strings and nulls
// take the text as a string.  Containers are not edited as text.
func (e *Engine) SetValueText(p kpath.KPath, text string) bool {
	n, err := e.doc.Resolve(p)
	if err != nil {
		return false
	}
	var v *ir.Node
	switch n.Type {
	case ir.NumberType:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return false
		}
		v, err = ir.FromAny(f)
		if err != nil {
			return false
		}
	case ir.BoolType:
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return false
		}
		v = ir.FromBool(b)
	case ir.StringType, ir.NullType:
		v = ir.FromString(text)
	default:
		return false
	}
	return e.replace(p, v)
}

// ChangeType replaces the node at p with the zero value of t.  It reports
// false if the node already has type t.
func (e *Engine) ChangeType(p kpath.KPath, t ir.Type) bool {
	n, err := e.doc.Resolve(p)
	if err != nil || n.Type == t {
		return false
	}
	return e.replace(p, ir.Zero(t))
}

func (e *Engine) replace(p kpath.KPath, v *ir.Node) bool {
	parent, seg, ok := e.parentOf(p)
	if !ok {
		return false
	}
	var err error
	switch parent.Type {
	case ir.ObjectType:
		err = e.doc.SetProperty(parent, seg.Field, v)
	case ir.ArrayType:
		err = e.doc.SetArrayElement(parent, seg.Index, v)
	}
	if err != nil {
		debug.Logger().Warn().Err(err).Str("path", p.String()).Msg("set value")
		return false
	}
	if debug.Edit() {
		debug.Logf("edit: set %q = %v", p.String(), v)
	}
	e.changed(p, true)
	return true
}

// EditorKind says how the property panel edits a node.
type EditorKind int

const (
	NoEditor EditorKind = iota
	TextEditor
	NumberEditor
	BoolEditor
	EnumEditor
)

func (k EditorKind) String() string {
	switch k {
	case TextEditor:
		return "text"
	case NumberEditor:
		return "number"
	case BoolEditor:
		return "bool"
	case EnumEditor:
		return "enum"
	}
	return "none"
}

// Editor describes the property panel for one node.
type Editor struct {
	Kind EditorKind
	Type ir.Type
	// Name is the member key or the "[i]" index label.
	Name string
	// NameReadOnly is set for array elements and the root.
	NameReadOnly bool
	// Options lists the enum choices of an EnumEditor.
	Options []string
	Tooltip string
}

// EditorFor returns the editor for the node at p.  With a preset, string
// fields that the preset restricts get an EnumEditor.
func (e *Engine) EditorFor(p kpath.KPath, preset string) (*Editor, bool) {
	n, err := e.doc.Resolve(p)
	if err != nil {
		return nil, false
	}
	ed := &Editor{Type: n.Type, NameReadOnly: true}
	last, hasKey := p.Last()
	if hasKey {
		ed.Name = last.String()
		ed.NameReadOnly = last.Kind != kpath.FieldKind
	}
	if hasKey && last.Kind == kpath.FieldKind {
		ed.Tooltip, _ = e.schema.Tooltip(last.Field)
	}
	switch n.Type {
	case ir.BoolType:
		ed.Kind = BoolEditor
	case ir.NumberType:
		ed.Kind = NumberEditor
	case ir.StringType, ir.NullType:
		ed.Kind = TextEditor
		if n.Type == ir.StringType && hasKey && last.Kind == kpath.FieldKind && preset != "" {
			if ps := e.schema.Lookup(preset); ps != nil {
				if f, ok := ps.Field(last.Field); ok && len(f.Enum) > 0 {
					ed.Kind = EnumEditor
					ed.Options = append([]string(nil), f.Enum...)
				}
			}
		}
	default:
		ed.Kind = NoEditor
	}
	return ed, true
}
