package edit

import (
	"strings"

	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
)

// RenameProperty renames the object member at p to newName (trimmed),
// keeping its position and value, and returns its new path.
//
// It reports false and does nothing when p is not an object member,
// newName is blank, looks like an index ("[...]") or holds a path
// separator, newName is already used by another member, or newName is the
// current name.
//
// Tracked handles on the member or its descendants follow the rename.
func (e *Engine) RenameProperty(p kpath.KPath, newName string) (kpath.KPath, bool) {
	newName = strings.TrimSpace(newName)
	if newName == "" || isIndexToken(newName) || strings.ContainsAny(newName, ".[]") {
		return nil, false
	}
	parent, seg, ok := e.parentOf(p)
	if !ok || parent.Type != ir.ObjectType || seg.Kind != kpath.FieldKind {
		return nil, false
	}
	if seg.Field == newName || parent.Has(newName) {
		return nil, false
	}
	if err := e.doc.RenameProperty(parent, seg.Field, newName); err != nil {
		debug.Logger().Warn().Err(err).Str("path", p.String()).Msg("rename")
		return nil, false
	}
	res := p.Parent().Child(newName)
	if debug.Edit() {
		debug.Logf("edit: renamed %q to %q", p.String(), res.String())
	}
	e.changed(p.Parent(), false)
	return res, true
}

func isIndexToken(s string) bool {
	return strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
}
