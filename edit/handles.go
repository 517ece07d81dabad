package edit

import (
	"slices"

	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
)

// Handle follows one node across edits.  A rename or move of the node or
// any of its ancestors rewrites the handle's path; removing the node
// invalidates it; removing an earlier array sibling shifts its index.
//
// When a node is replaced rather than edited (a value change, a type
// change, reloading raw text or applying a patch), the handle re-resolves
// its last path and stays valid if something is still there.
type Handle struct {
	id    ir.ID
	path  kpath.KPath
	valid bool
}

// Path returns the current path of the tracked node.
func (h *Handle) Path() (kpath.KPath, bool) {
	if !h.valid {
		return nil, false
	}
	return h.path, true
}

func (h *Handle) Valid() bool {
	return h.valid
}

func (h *Handle) point(id ir.ID, p kpath.KPath) {
	h.id = id
	h.path = p.Append()
	h.valid = true
}

func (h *Handle) invalidate() {
	h.id = 0
	h.path = nil
	h.valid = false
}

// Track returns a handle on the node at p, or nil if p does not resolve.
func (e *Engine) Track(p kpath.KPath) *Handle {
	n, err := e.doc.Resolve(p)
	if err != nil {
		return nil
	}
	h := &Handle{}
	h.point(n.ID, p)
	e.handles = append(e.handles, h)
	return h
}

// Untrack stops updating h.
func (e *Engine) Untrack(h *Handle) {
	e.handles = slices.DeleteFunc(e.handles, func(x *Handle) bool { return x == h })
}

// Tracked returns the valid tracked handles.
func (e *Engine) Tracked() []*Handle {
	res := make([]*Handle, 0, len(e.handles))
	for _, h := range e.handles {
		if h.valid {
			res = append(res, h)
		}
	}
	return res
}

func (e *Engine) refresh(reresolve bool) {
	e.refreshHandle(e.selection, reresolve)
	for _, h := range e.handles {
		e.refreshHandle(h, reresolve)
	}
}

func (e *Engine) refreshHandle(h *Handle, reresolve bool) {
	if !h.valid {
		return
	}
	if n, ok := e.doc.Node(h.id); ok {
		if p, ok := e.doc.PathOf(n); ok {
			h.path = p
			return
		}
	}
	if reresolve {
		if n, err := e.doc.Resolve(h.path); err == nil {
			h.id = n.ID
			return
		}
	}
	h.invalidate()
}
