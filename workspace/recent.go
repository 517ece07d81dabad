package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/goccy/go-json"
	"github.com/signadot/earthedit/debug"
)

// MaxRecent bounds the recent-files list.
const MaxRecent = 15

// Recent is the persisted list of recently opened files, most recent
// first.
type Recent struct {
	path    string
	entries []string
}

// LoadRecent reads the list stored at path.  A missing file is an empty
// list.
func LoadRecent(path string) (*Recent, error) {
	r := &Recent{path: path}
	d, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(d, &r.entries); err != nil {
		return nil, fmt.Errorf("recent files %s: %w", path, err)
	}
	r.trim()
	if debug.Edit() {
		debug.LogAny(r.entries)
	}
	return r, nil
}

// Entries returns a copy of the list.
func (r *Recent) Entries() []string {
	return slices.Clone(r.entries)
}

// Add moves path to the front of the list and saves it.
func (r *Recent) Add(path string) error {
	r.entries = slices.DeleteFunc(r.entries, func(s string) bool { return s == path })
	r.entries = slices.Insert(r.entries, 0, path)
	r.trim()
	return r.Save()
}

// Remove drops path, as when it no longer exists, and saves the list.
func (r *Recent) Remove(path string) error {
	n := len(r.entries)
	r.entries = slices.DeleteFunc(r.entries, func(s string) bool { return s == path })
	if len(r.entries) == n {
		return nil
	}
	return r.Save()
}

func (r *Recent) Save() error {
	if r.path == "" {
		return nil
	}
	d, err := json.MarshalIndent(r.entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(r.path, d, 0o644)
}

func (r *Recent) trim() {
	if len(r.entries) > MaxRecent {
		r.entries = r.entries[:MaxRecent]
	}
}
