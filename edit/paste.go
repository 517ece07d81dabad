package edit

import (
	"fmt"

	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/doc"
	"github.com/signadot/earthedit/encode"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
	"github.com/signadot/earthedit/parse"
)

// PastedBase names pasted content when nothing better is known.
const PastedBase = "Pasted"

// Clip is parsed clipboard content.  Name is set when the text was a single
// named property ("key": value) rather than a JSON value.
type Clip struct {
	Name  string
	Value *ir.Node
}

// ParseClip parses clipboard text as a JSON value or, failing that, as one
// named property.
func ParseClip(text string) (*Clip, error) {
	v, err := parse.Parse([]byte(text))
	if err == nil {
		return &Clip{Value: v}, nil
	}
	if obj, perr := parse.ParseObject([]byte("{" + text + "}")); perr == nil && len(obj.Fields) == 1 {
		return &Clip{Name: obj.Fields[0], Value: obj.Values[0]}, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrInvalidClipboardJSON, err)
}

// PasteMerge inserts clipboard text at target and returns the path of what
// changed:
//
//   - an object pasted onto an object adds the members it lacks;
//   - a named property pasted onto an object is added if absent;
//   - anything pasted onto an array is appended;
//   - otherwise the value is added to the root under "<name>_copy",
//     suffixed "_1", "_2", ... on collision.  The name is the property's
//     own, else the target's key, else "Pasted".
//
// Existing members are never overwritten.  Unparseable text yields
// ErrInvalidClipboardJSON and leaves the document unchanged.
func (e *Engine) PasteMerge(target kpath.KPath, text string) (kpath.KPath, error) {
	clip, err := ParseClip(text)
	if err != nil {
		return nil, err
	}
	return e.Paste(target, clip)
}

// Paste inserts clip at target as PasteMerge does.  clip is not retained.
func (e *Engine) Paste(target kpath.KPath, clip *Clip) (kpath.KPath, error) {
	tn, err := e.doc.Resolve(target)
	if err != nil {
		tn = nil
	}
	switch {
	case tn != nil && tn.Type == ir.ObjectType && clip.Name == "" && clip.Value.Type == ir.ObjectType:
		added := 0
		for i, k := range clip.Value.Fields {
			if tn.Has(k) {
				continue
			}
			if err := e.doc.SetProperty(tn, k, doc.DeepClone(clip.Value.Values[i])); err != nil {
				return nil, err
			}
			added++
		}
		if debug.Paste() {
			debug.Logf("paste: merged %d of %d members into %q", added, len(clip.Value.Fields), target.String())
		}
		if added > 0 {
			e.changed(target, false)
		}
		return target, nil

	case tn != nil && tn.Type == ir.ObjectType && clip.Name != "":
		res := target.Child(clip.Name)
		if tn.Has(clip.Name) {
			if debug.Paste() {
				debug.Logf("paste: %q already present", res.String())
			}
			return res, nil
		}
		if err := e.doc.SetProperty(tn, clip.Name, doc.DeepClone(clip.Value)); err != nil {
			return nil, err
		}
		e.changed(target, false)
		return res, nil

	case tn != nil && tn.Type == ir.ArrayType:
		i := len(tn.Values)
		if err := e.doc.InsertArrayElement(tn, i, doc.DeepClone(clip.Value)); err != nil {
			return nil, err
		}
		if debug.Paste() {
			debug.Logf("paste: appended to %q", target.String())
		}
		e.changed(target, false)
		return target.Elem(i), nil
	}

	root := e.doc.Root()
	key := doc.UniqueKey(root, pasteBase(clip, target)+"_copy")
	if err := e.doc.SetProperty(root, key, doc.DeepClone(clip.Value)); err != nil {
		return nil, err
	}
	if debug.Paste() {
		debug.Logf("paste: added %q at root", key)
	}
	e.changed(nil, false)
	return kpath.KPath{kpath.Field(key)}, nil
}

func pasteBase(clip *Clip, target kpath.KPath) string {
	if clip.Name != "" {
		return clip.Name
	}
	if last, ok := target.Last(); ok && last.Kind == kpath.FieldKind && last.Field != "" {
		return last.Field
	}
	return PastedBase
}

// CopyNode returns the node at p as compact JSON.
func (e *Engine) CopyNode(p kpath.KPath) (string, bool) {
	n, err := e.doc.Resolve(p)
	if err != nil {
		return "", false
	}
	return encode.MustString(n), true
}

// Cut copies the node at p and removes it.  The root cannot be cut.
func (e *Engine) Cut(p kpath.KPath) (string, bool) {
	if p.IsRoot() {
		return "", false
	}
	text, ok := e.CopyNode(p)
	if !ok {
		return "", false
	}
	if !e.RemoveNode(p) {
		return "", false
	}
	return text, true
}
