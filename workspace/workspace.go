// Package workspace manages the open documents of an editor session: the
// ordered tabs, their files, the active tab and the recent-files list.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/edit"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/parse"
	"github.com/signadot/earthedit/schema"
)

var (
	ErrNoTab  = errors.New("no such tab")
	ErrNoPath = errors.New("tab has no file")
)

// DefaultPreset shapes new documents.
const DefaultPreset = "Empty"

type Workspace struct {
	tabs   []*Tab
	active int
	schema edit.Schema
	opts   []edit.Option
	recent *Recent
}

type Option func(*Workspace)

// WithSchema sets the presets used by every tab.
func WithSchema(s edit.Schema) Option {
	return func(w *Workspace) { w.schema = s }
}

// WithEngineOptions adds options for every tab's engine.
func WithEngineOptions(opts ...edit.Option) Option {
	return func(w *Workspace) { w.opts = append(w.opts, opts...) }
}

// WithRecent records opened and saved files in r.
func WithRecent(r *Recent) Option {
	return func(w *Workspace) { w.recent = r }
}

func New(opts ...Option) *Workspace {
	w := &Workspace{active: -1}
	for _, opt := range opts {
		opt(w)
	}
	if w.schema == nil {
		w.schema = schema.Default()
	}
	if w.recent == nil {
		w.recent = &Recent{}
	}
	w.opts = append([]edit.Option{edit.WithSchema(w.schema)}, w.opts...)
	return w
}

func (w *Workspace) Recent() *Recent {
	return w.recent
}

func (w *Workspace) Tabs() []*Tab {
	return slices.Clone(w.tabs)
}

// Active returns the active tab.
func (w *Workspace) Active() (*Tab, int, bool) {
	if w.active < 0 {
		return nil, -1, false
	}
	return w.tabs[w.active], w.active, true
}

// Activate switches to tab i, clearing the selection of the tab it leaves.
func (w *Workspace) Activate(i int) error {
	if i < 0 || i >= len(w.tabs) {
		return fmt.Errorf("%w: %d", ErrNoTab, i)
	}
	if w.active >= 0 && w.active != i {
		w.tabs[w.active].engine.ClearSelection()
	}
	w.active = i
	return nil
}

func (w *Workspace) add(t *Tab) *Tab {
	w.tabs = append(w.tabs, t)
	w.Activate(len(w.tabs) - 1)
	return t
}

// NewTab opens an unsaved tab holding an empty object.
func (w *Workspace) NewTab(name string) (*Tab, error) {
	t, err := newTab(name, "", ir.EmptyObject(), w.opts)
	if err != nil {
		return nil, err
	}
	return w.add(t), nil
}

// NewFromPreset opens an unsaved tab built from a preset.
func (w *Workspace) NewFromPreset(name, preset string) (*Tab, error) {
	p := w.schema.Lookup(preset)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", edit.ErrUnknownPreset, preset)
	}
	t, err := newTab(name, "", p.Build(), w.opts)
	if err != nil {
		return nil, err
	}
	return w.add(t), nil
}

// Create builds a document from a preset, writes it as <name>.json in the
// documents folder and opens it.
func (w *Workspace) Create(name, preset string) (*Tab, error) {
	dir, err := DocumentsDir()
	if err != nil {
		return nil, err
	}
	t, err := w.NewFromPreset(name, preset)
	if err != nil {
		return nil, err
	}
	if err := w.SaveAs(t, filepath.Join(dir, name+".json")); err != nil {
		w.Close(len(w.tabs) - 1)
		return nil, err
	}
	return t, nil
}

// Open reads a JSON file into a new tab.  A file missing from disk is
// dropped from the recent list.
func (w *Workspace) Open(path string) (*Tab, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			w.logRecent(path, w.recent.Remove(path))
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	t, err := w.load(filepath.Base(path), path, d)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	w.logRecent(path, w.recent.Add(path))
	return t, nil
}

// Load opens an unsaved tab holding the JSON object in data.
func (w *Workspace) Load(name string, data []byte) (*Tab, error) {
	return w.load(name, "", data)
}

func (w *Workspace) load(name, path string, data []byte) (*Tab, error) {
	root, err := parse.ParseObject(data)
	if err != nil {
		return nil, err
	}
	t, err := newTab(name, path, root, w.opts)
	if err != nil {
		return nil, err
	}
	return w.add(t), nil
}

// Save writes t to its file.
func (w *Workspace) Save(t *Tab) error {
	if t.Path == "" {
		return fmt.Errorf("%w: %s", ErrNoPath, t.Name)
	}
	return t.writeTo(t.Path)
}

// SaveAs writes t to path, which becomes its file.
func (w *Workspace) SaveAs(t *Tab, path string) error {
	if err := t.writeTo(path); err != nil {
		return err
	}
	w.logRecent(path, w.recent.Add(path))
	return nil
}

// logRecent logs a failed recent-list update without failing the caller.
func (w *Workspace) logRecent(path string, err error) {
	if err != nil {
		debug.Logger().Warn().Err(err).Str("file", path).Msg("update recent files")
	}
}

// Close closes tab i.  The next tab, or else the previous one, becomes
// active.
func (w *Workspace) Close(i int) error {
	if i < 0 || i >= len(w.tabs) {
		return fmt.Errorf("%w: %d", ErrNoTab, i)
	}
	w.tabs = slices.Delete(w.tabs, i, i+1)
	switch {
	case len(w.tabs) == 0:
		w.active = -1
	case w.active > i || w.active == len(w.tabs):
		w.active--
	}
	return nil
}

func (w *Workspace) CloseAll() {
	w.tabs = nil
	w.active = -1
}
