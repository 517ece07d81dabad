package edit

import (
	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/doc"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
	"github.com/signadot/earthedit/schema"
)

// Notifier is told after every successful mutation.  affected is the path
// of the smallest subtree containing the change; the root path means
// "anything may have changed".
type Notifier interface {
	DocumentChanged(affected kpath.KPath)
}

type NotifierFunc func(affected kpath.KPath)

func (f NotifierFunc) DocumentChanged(affected kpath.KPath) { f(affected) }

// Chooser picks one of candidates, as a selection prompt would.  ok is
// false when the user cancels.
type Chooser interface {
	ChooseOne(title string, candidates []string) (choice string, ok bool)
}

type ChooserFunc func(title string, candidates []string) (string, bool)

func (f ChooserFunc) ChooseOne(title string, candidates []string) (string, bool) {
	return f(title, candidates)
}

// Schema supplies presets and tooltips.  *schema.Registry implements it.
type Schema interface {
	Lookup(name string) *schema.Preset
	Names() []string
	Tooltip(name string) (string, bool)
}

type Engine struct {
	doc      *doc.Document
	schema   Schema
	notifier Notifier
	chooser  Chooser

	selection *Handle
	handles   []*Handle
}

type Option func(*Engine)

// WithSchema sets the preset source.  The default is schema.Default().
func WithSchema(s Schema) Option {
	return func(e *Engine) { e.schema = s }
}

func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithChooser sets the prompt used by schema-guided AddProperty.  Without
// one, guided adds are cancelled.
func WithChooser(c Chooser) Option {
	return func(e *Engine) { e.chooser = c }
}

// New returns an engine editing d.  A nil d is a new empty document.
func New(d *doc.Document, opts ...Option) *Engine {
	if d == nil {
		d = doc.New()
	}
	e := &Engine{doc: d}
	for _, opt := range opts {
		opt(e)
	}
	if e.schema == nil {
		e.schema = schema.Default()
	}
	e.selection = &Handle{}
	return e
}

func (e *Engine) Document() *doc.Document {
	return e.doc
}

func (e *Engine) Schema() Schema {
	return e.schema
}

// SetNotifier replaces the notifier; nil disables notification.
func (e *Engine) SetNotifier(n Notifier) {
	e.notifier = n
}

// Select makes the node at p the selection.  It reports false, leaving the
// selection cleared, when p does not resolve.
func (e *Engine) Select(p kpath.KPath) bool {
	n, err := e.doc.Resolve(p)
	if err != nil {
		e.selection.invalidate()
		return false
	}
	e.selection.point(n.ID, p)
	return true
}

// Selection returns the path of the selected node.
func (e *Engine) Selection() (kpath.KPath, bool) {
	return e.selection.Path()
}

func (e *Engine) ClearSelection() {
	e.selection.invalidate()
}

// Resolve returns the node at p.  The node belongs to the document and
// must not be modified directly.
func (e *Engine) Resolve(p kpath.KPath) (*ir.Node, bool) {
	n, err := e.doc.Resolve(p)
	return n, err == nil
}

// Tooltip returns the help text for a property name.
func (e *Engine) Tooltip(name string) (string, bool) {
	return e.schema.Tooltip(name)
}

func (e *Engine) changed(affected kpath.KPath, reresolve bool) {
	e.refresh(reresolve)
	if debug.Edit() {
		debug.Logf("edit: changed %q", affected.String())
	}
	if e.notifier != nil {
		e.notifier.DocumentChanged(affected)
	}
}

// parentOf returns the container of the node at p and p's last segment.
func (e *Engine) parentOf(p kpath.KPath) (*ir.Node, kpath.Segment, bool) {
	pp, last, ok := p.RSplit()
	if !ok {
		return nil, kpath.Segment{}, false
	}
	parent, err := e.doc.Resolve(pp)
	if err != nil {
		return nil, kpath.Segment{}, false
	}
	if _, ok := kpath.Resolve(parent, kpath.KPath{last}); !ok {
		return nil, kpath.Segment{}, false
	}
	return parent, last, true
}
