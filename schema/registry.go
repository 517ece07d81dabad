package schema

import (
	"fmt"
	"slices"
	"sync"
)

// Registry is an ordered set of presets plus the tooltip table.
type Registry struct {
	mu       sync.RWMutex
	presets  map[string]*Preset
	order    []string
	tooltips map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		presets:  map[string]*Preset{},
		tooltips: map[string]string{},
	}
}

// Register adds a preset.  Names must be unique.
func (r *Registry) Register(p *Preset) error {
	if p == nil {
		return fmt.Errorf("%w: nil", ErrInvalidPreset)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.presets[p.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, p.Name)
	}
	r.presets[p.Name] = p
	r.order = append(r.order, p.Name)
	return nil
}

// Put adds or replaces a preset.  A replaced preset keeps its place in
// the listing order.
func (r *Registry) Put(p *Preset) error {
	if p == nil {
		return fmt.Errorf("%w: nil", ErrInvalidPreset)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.presets[p.Name]; !exists {
		r.order = append(r.order, p.Name)
	}
	r.presets[p.Name] = p
	return nil
}

// Lookup returns the named preset or nil.
func (r *Registry) Lookup(name string) *Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.presets[name]
}

// Names lists preset names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Tooltip returns the help text for a property name.
func (r *Registry) Tooltip(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.tooltips[name]
	return s, ok
}

func (r *Registry) SetTooltip(name, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tooltips[name] = text
}

// EnumOptions returns the options of field name in preset, if restricted.
func (r *Registry) EnumOptions(preset, name string) ([]string, bool) {
	p := r.Lookup(preset)
	if p == nil {
		return nil, false
	}
	f, ok := p.Field(name)
	if !ok || len(f.Enum) == 0 {
		return nil, false
	}
	return slices.Clone(f.Enum), true
}

var defaultRegistry = Builtin()

// Default returns the process wide registry, initialized with the built in
// presets.
func Default() *Registry {
	return defaultRegistry
}

func Register(p *Preset) error {
	return defaultRegistry.Register(p)
}

func Lookup(name string) *Preset {
	return defaultRegistry.Lookup(name)
}

func Names() []string {
	return defaultRegistry.Names()
}

func Tooltip(name string) (string, bool) {
	return defaultRegistry.Tooltip(name)
}
