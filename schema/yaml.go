package schema

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/ir"
)

// Overlay is the on-disk form of additional presets and tooltips.
//
//	presets:
//	- name: Potion
//	  scaffold: [name, heal]
//	  fields:
//	  - {name: name, type: String, default: ""}
//	  - {name: heal, type: Number, default: 5}
//	tooltips:
//	  heal: Health restored when consumed.
type Overlay struct {
	Presets  []yamlPreset      `yaml:"presets"`
	Tooltips map[string]string `yaml:"tooltips"`
}

type yamlPreset struct {
	Name     string      `yaml:"name"`
	Scaffold []string    `yaml:"scaffold"`
	Fields   []yamlField `yaml:"fields"`
}

type yamlField struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Default any      `yaml:"default"`
	Enum    []string `yaml:"enum"`
}

// ParseOverlay decodes an overlay document.  Object defaults keep their key
// order.
func ParseOverlay(data []byte) (*Overlay, error) {
	o := &Overlay{}
	if err := yaml.UnmarshalWithOptions(data, o, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}
	return o, nil
}

// Build converts the overlay to validated presets.
func (o *Overlay) Build() ([]*Preset, error) {
	res := make([]*Preset, 0, len(o.Presets))
	for i := range o.Presets {
		yp := &o.Presets[i]
		p := &Preset{Name: yp.Name, Scaffold: yp.Scaffold}
		for j := range yp.Fields {
			yf := &yp.Fields[j]
			t, err := ir.ParseType(yf.Type)
			if err != nil {
				return nil, fmt.Errorf("%w %s: field %q: %w", ErrInvalidPreset, yp.Name, yf.Name, err)
			}
			f := Field{Name: yf.Name, Type: t, Enum: yf.Enum}
			if yf.Default != nil {
				def, err := yamlValue(yf.Default)
				if err != nil {
					return nil, fmt.Errorf("%w %s: field %q: %w", ErrInvalidPreset, yp.Name, yf.Name, err)
				}
				f.Default = def
			}
			p.Fields = append(p.Fields, f)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

func yamlValue(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.EmptyObject()
		for _, item := range x {
			k := fmt.Sprint(item.Key)
			val, err := yamlValue(item.Value)
			if err != nil {
				return nil, err
			}
			if i := res.IndexOf(k); i >= 0 {
				res.Values[i] = val
				continue
			}
			res.Fields = append(res.Fields, k)
			res.Values = append(res.Values, val)
		}
		return res, nil
	case []any:
		res := ir.FromSlice(nil)
		for _, e := range x {
			en, err := yamlValue(e)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, en)
		}
		return res, nil
	}
	return ir.FromAny(v)
}

// Apply adds the overlay to r, replacing presets of the same name.
func (r *Registry) Apply(o *Overlay) error {
	presets, err := o.Build()
	if err != nil {
		return err
	}
	for _, p := range presets {
		if debug.Schema() {
			debug.Logf("schema: overlay preset %s with %d fields", p.Name, len(p.Fields))
		}
		if err := r.Put(p); err != nil {
			return err
		}
	}
	for k, v := range o.Tooltips {
		r.SetTooltip(k, v)
	}
	return nil
}

// LoadFile reads an overlay file into r.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	o, err := ParseOverlay(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return r.Apply(o)
}
