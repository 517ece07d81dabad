package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/doc"
	"github.com/signadot/earthedit/edit"
	"github.com/signadot/earthedit/encode"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
	"github.com/signadot/earthedit/libdiff"
	"github.com/signadot/earthedit/view"
)

// Tab is one open document with its engine and projection.
type Tab struct {
	Name string
	// Path is the backing file, "" until the tab is first saved.
	Path string

	engine *edit.Engine
	view   *view.Projection
	dirty  bool
	saved  string
}

func newTab(name, path string, root *ir.Node, opts []edit.Option) (*Tab, error) {
	d, err := doc.FromNode(root)
	if err != nil {
		return nil, err
	}
	t := &Tab{Name: name, Path: path}
	t.engine = edit.New(d, opts...)
	t.view = view.New(t.engine, view.OnChange(t.markDirty))
	t.engine.SetNotifier(t.view)
	t.saved = t.view.Raw()
	return t, nil
}

func (t *Tab) markDirty(affected kpath.KPath) {
	if debug.Edit() && !t.dirty {
		debug.Logf("workspace: %s modified at %q", t.Name, affected.String())
	}
	t.dirty = true
}

func (t *Tab) Engine() *edit.Engine {
	return t.engine
}

func (t *Tab) View() *view.Projection {
	return t.view
}

// Dirty reports whether the document changed since it was loaded or saved.
func (t *Tab) Dirty() bool {
	return t.dirty
}

// Title is the tab caption: the name, with " *" when dirty.
func (t *Tab) Title() string {
	if t.dirty {
		return t.Name + " *"
	}
	return t.Name
}

// Changes diffs the last saved text against the current document.
func (t *Tab) Changes() []libdiff.Line {
	return libdiff.Lines(t.saved, t.view.Raw())
}

// Bytes returns the document as saved: 4-space indented JSON with a final
// newline.
func (t *Tab) Bytes() ([]byte, error) {
	return encode.Bytes(t.engine.Document().Root(), encode.EncodeNewline(true))
}

func (t *Tab) writeTo(path string) error {
	d, err := t.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, d, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	t.Path = path
	t.Name = filepath.Base(path)
	t.dirty = false
	t.saved = t.view.Raw()
	return nil
}
