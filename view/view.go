// Package view projects a document into the two synchronized renderings of
// the editor: the tree of labelled rows and the raw JSON text.
//
// A Projection is rebuilt in full whenever its engine reports a change.
// Expanded tree nodes are held as tracked handles, so they survive renames
// and moves of the nodes they point at.
package view

import (
	"io"
	"strings"

	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/edit"
	"github.com/signadot/earthedit/encode"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
)

// Row is one line of the tree view.  The root has no row.
type Row struct {
	Path  kpath.KPath
	Depth int
	// Key is the member name, or "[i]" for array elements.
	Key string
	// Text is the label shown: "key: value" for leaves, the key for
	// containers.
	Text        string
	Type        ir.Type
	Tooltip     string
	HasChildren bool
}

type Projection struct {
	engine   *edit.Engine
	rows     []Row
	raw      string
	expanded []*edit.Handle
	version  uint64
	onChange func(affected kpath.KPath)
}

type Option func(*Projection)

// OnChange registers f to run after each rebuild caused by a document
// change.
func OnChange(f func(affected kpath.KPath)) Option {
	return func(v *Projection) { v.onChange = f }
}

// New returns a projection of e's document.  The caller routes e's
// notifications to it.
func New(e *edit.Engine, opts ...Option) *Projection {
	v := &Projection{engine: e}
	for _, opt := range opts {
		opt(v)
	}
	v.Refresh()
	return v
}

// DocumentChanged implements edit.Notifier.
func (v *Projection) DocumentChanged(affected kpath.KPath) {
	v.Refresh()
	if v.onChange != nil {
		v.onChange(affected)
	}
}

// Refresh rebuilds the rows and the raw text.
func (v *Projection) Refresh() {
	root := v.engine.Document().Root()
	v.rows = make([]Row, 0, len(v.rows))
	kpath.Walk(root, func(p kpath.KPath, n *ir.Node) bool {
		if p.IsRoot() {
			return true
		}
		v.rows = append(v.rows, v.row(p, n))
		return true
	})
	raw, err := encode.Bytes(root)
	if err != nil {
		debug.Logger().Error().Err(err).Msg("render raw text")
	}
	v.raw = string(raw)
	v.version++
	if debug.Edit() {
		debug.Logf("view: %d rows, version %d", len(v.rows), v.version)
	}
}

func (v *Projection) row(p kpath.KPath, n *ir.Node) Row {
	last, _ := p.Last()
	r := Row{
		Path:        p,
		Depth:       len(p) - 1,
		Key:         last.String(),
		Type:        n.Type,
		HasChildren: !n.Type.IsLeaf() && len(n.Values) > 0,
	}
	if n.Type.IsLeaf() {
		r.Text = r.Key + ": " + edit.Label(p, n)
	} else {
		r.Text = r.Key
	}
	if last.Kind == kpath.FieldKind {
		r.Tooltip, _ = v.engine.Tooltip(last.Field)
	}
	return r
}

// Rows returns every row in document order.
func (v *Projection) Rows() []Row {
	return v.rows
}

// Raw returns the document as 4-space indented JSON.
func (v *Projection) Raw() string {
	return v.raw
}

// Version increases with every rebuild.
func (v *Projection) Version() uint64 {
	return v.version
}

// Find returns the index in Rows of the row at p.
func (v *Projection) Find(p kpath.KPath) (int, bool) {
	for i := range v.rows {
		if v.rows[i].Path.Equal(p) {
			return i, true
		}
	}
	return -1, false
}

// Expand marks the container at p expanded.
func (v *Projection) Expand(p kpath.KPath) bool {
	if v.IsExpanded(p) {
		return true
	}
	n, ok := v.engine.Resolve(p)
	if !ok || n.Type.IsLeaf() {
		return false
	}
	v.expanded = append(v.expanded, v.engine.Track(p))
	return true
}

// ExpandAll expands every container.
func (v *Projection) ExpandAll() {
	for _, r := range v.rows {
		if !r.Type.IsLeaf() {
			v.Expand(r.Path)
		}
	}
}

func (v *Projection) Collapse(p kpath.KPath) {
	keep := v.expanded[:0]
	for _, h := range v.expanded {
		hp, ok := h.Path()
		if ok && !hp.Equal(p) {
			keep = append(keep, h)
			continue
		}
		v.engine.Untrack(h)
	}
	v.expanded = keep
}

func (v *Projection) IsExpanded(p kpath.KPath) bool {
	for _, h := range v.expanded {
		if hp, ok := h.Path(); ok && hp.Equal(p) {
			return true
		}
	}
	return false
}

// Visible returns the rows whose ancestors are all expanded.
func (v *Projection) Visible() []Row {
	var res []Row
	for _, r := range v.rows {
		if v.ancestorsExpanded(r.Path) {
			res = append(res, r)
		}
	}
	return res
}

func (v *Projection) ancestorsExpanded(p kpath.KPath) bool {
	for i := 1; i < len(p); i++ {
		if !v.IsExpanded(p[:i]) {
			return false
		}
	}
	return true
}

// Render writes the visible rows as an indented tree, coloring keys and
// values when colors is non-nil.
func (v *Projection) Render(w io.Writer, colors *encode.Colors) error {
	var buf strings.Builder
	for _, r := range v.Visible() {
		buf.WriteString(strings.Repeat("  ", r.Depth))
		key := r.Key
		if colors != nil {
			key = colors.Color(ir.ObjectType, encode.FieldColor, key)
		}
		buf.WriteString(key)
		if r.Type.IsLeaf() {
			n, _ := v.engine.Resolve(r.Path)
			val := edit.Label(r.Path, n)
			if colors != nil {
				val = colors.Color(r.Type, encode.ValueColor, val)
			}
			buf.WriteString(": ")
			buf.WriteString(val)
		} else if r.HasChildren && !v.IsExpanded(r.Path) {
			buf.WriteString(" ...")
		}
		buf.WriteByte('\n')
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
