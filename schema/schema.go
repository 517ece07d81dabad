// Package schema holds the presets describing Earth Editor entity
// categories: which properties a category has, their types, default values
// and enumerated choices, plus the tooltip text shown for property names.
package schema

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/earthedit/ir"
)

var (
	ErrInvalidPreset = errors.New("invalid preset")
	ErrDuplicate     = errors.New("preset already registered")
)

// Field declares one property of a preset.
type Field struct {
	Name string
	Type ir.Type
	// Default is the template value; nil means the zero value of Type.
	Default *ir.Node
	// Enum lists the allowed values of a String field, if restricted.
	Enum []string
}

// DefaultNode returns a fresh copy of the field's default value.
func (f *Field) DefaultNode() *ir.Node {
	if f.Default == nil {
		return ir.Zero(f.Type)
	}
	return f.Default.Clone()
}

// Preset is a named, ordered field set.
type Preset struct {
	Name   string
	Fields []Field
	// Scaffold names the fields instantiated by Build, in order.  Empty
	// means all fields.
	Scaffold []string
}

// Field returns the field named name.
func (p *Preset) Field(name string) (*Field, bool) {
	for i := range p.Fields {
		if p.Fields[i].Name == name {
			return &p.Fields[i], true
		}
	}
	return nil, false
}

// Names returns the field names in declaration order.
func (p *Preset) Names() []string {
	res := make([]string, len(p.Fields))
	for i := range p.Fields {
		res[i] = p.Fields[i].Name
	}
	return res
}

// Missing returns the names of fields not present in obj, in declaration
// order.
func (p *Preset) Missing(obj *ir.Node) []string {
	var res []string
	for i := range p.Fields {
		if !obj.Has(p.Fields[i].Name) {
			res = append(res, p.Fields[i].Name)
		}
	}
	return res
}

// Build returns a new document object holding the scaffold fields with
// their defaults.
func (p *Preset) Build() *ir.Node {
	res := ir.EmptyObject()
	names := p.Scaffold
	if len(names) == 0 {
		names = p.Names()
	}
	for _, name := range names {
		f, ok := p.Field(name)
		if !ok {
			continue
		}
		res.Fields = append(res.Fields, name)
		res.Values = append(res.Values, f.DefaultNode())
	}
	return res
}

// Validate checks that field names are unique and non-empty, defaults
// match their declared types, enums are only given for strings and contain
// the default, and scaffold entries name declared fields.
func (p *Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidPreset)
	}
	seen := map[string]bool{}
	for i := range p.Fields {
		f := &p.Fields[i]
		if f.Name == "" {
			return fmt.Errorf("%w %s: field %d has no name", ErrInvalidPreset, p.Name, i)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w %s: field %q declared twice", ErrInvalidPreset, p.Name, f.Name)
		}
		seen[f.Name] = true
		if f.Default != nil && f.Default.Type != f.Type {
			return fmt.Errorf("%w %s: field %q is %s but its default is %s", ErrInvalidPreset, p.Name, f.Name, f.Type, f.Default.Type)
		}
		if len(f.Enum) == 0 {
			continue
		}
		if f.Type != ir.StringType {
			return fmt.Errorf("%w %s: field %q has options but is %s", ErrInvalidPreset, p.Name, f.Name, f.Type)
		}
		if def := f.DefaultNode(); !slices.Contains(f.Enum, def.String) {
			return fmt.Errorf("%w %s: default %q of %q is not an option", ErrInvalidPreset, p.Name, def.String, f.Name)
		}
	}
	for _, name := range p.Scaffold {
		if !seen[name] {
			return fmt.Errorf("%w %s: scaffold field %q is not declared", ErrInvalidPreset, p.Name, name)
		}
	}
	return nil
}
