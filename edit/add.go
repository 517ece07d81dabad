package edit

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
)

// NewPropertyBase is the name probed by free-form AddProperty: "Name",
// "Name1", "Name2", ...
const NewPropertyBase = "Name"

// AddRequest describes an AddProperty call.
type AddRequest struct {
	// Parent addresses the object to add to.  When it addresses a
	// non-object member of an object, the property is added to that
	// object instead.
	Parent kpath.KPath
	// FreeEdit disables preset guidance.
	FreeEdit bool
	// Preset, when set and FreeEdit is false, restricts the new property
	// to the preset's fields that are still missing.
	Preset string
	// Type is the type of a free-form property.
	Type ir.Type
}

// AddProperty adds a property and selects it, returning its path.
//
// Guided adds ask the engine's Chooser for one of the missing preset field
// names and give it the field's default.  They return ErrNothingToAdd when
// no field is missing and ErrCancelled when the prompt is dismissed.
func (e *Engine) AddProperty(req AddRequest) (kpath.KPath, error) {
	objPath, obj, err := e.addTarget(req.Parent)
	if err != nil {
		return nil, err
	}
	var (
		name  string
		value *ir.Node
	)
	if !req.FreeEdit && req.Preset != "" {
		name, value, err = e.guidedProperty(obj, req.Preset)
		if err != nil {
			return nil, err
		}
	} else {
		if !slices.Contains(ir.Types(), req.Type) {
			return nil, fmt.Errorf("%w: %d", ir.ErrUnknownType, req.Type)
		}
		name = FreshName(obj, NewPropertyBase)
		value = ir.Zero(req.Type)
	}
	if err := e.doc.SetProperty(obj, name, value); err != nil {
		return nil, err
	}
	res := objPath.Child(name)
	if debug.Edit() {
		debug.Logf("edit: added %q = %v", res.String(), value)
	}
	e.selection.point(value.ID, res)
	e.changed(objPath, false)
	return res, nil
}

func (e *Engine) addTarget(p kpath.KPath) (kpath.KPath, *ir.Node, error) {
	n, err := e.doc.Resolve(p)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCannotAddProperty, err)
	}
	if n.Type == ir.ObjectType {
		return p, n, nil
	}
	if parent, _, ok := e.parentOf(p); ok && parent.Type == ir.ObjectType {
		return p.Parent(), parent, nil
	}
	return nil, nil, fmt.Errorf("%w: %s at %q", ErrCannotAddProperty, n.Type, p.String())
}

func (e *Engine) guidedProperty(obj *ir.Node, presetName string) (string, *ir.Node, error) {
	preset := e.schema.Lookup(presetName)
	if preset == nil {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownPreset, presetName)
	}
	missing := preset.Missing(obj)
	if len(missing) == 0 {
		return "", nil, ErrNothingToAdd
	}
	if e.chooser == nil {
		return "", nil, fmt.Errorf("%w: no prompt available", ErrCancelled)
	}
	name, ok := e.chooser.ChooseOne("Select a property to add", missing)
	if !ok {
		return "", nil, ErrCancelled
	}
	if !slices.Contains(missing, name) {
		return "", nil, fmt.Errorf("%w: %q is not an available property", ErrCancelled, name)
	}
	f, _ := preset.Field(name)
	return name, f.DefaultNode(), nil
}

// FreshName returns base if obj has no such member, otherwise the first of
// base1, base2, ... that is unused.
func FreshName(obj *ir.Node, base string) string {
	name := base
	for i := 1; obj.Has(name); i++ {
		name = base + strconv.Itoa(i)
	}
	return name
}
