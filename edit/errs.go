package edit

import "errors"

// Informational outcomes.  Callers show them as notices rather than
// failures; the document is unchanged whenever one is returned.
var (
	ErrNothingToAdd         = errors.New("all allowed properties already exist")
	ErrCannotAddProperty    = errors.New("selected item cannot have properties added to it")
	ErrInvalidClipboardJSON = errors.New("invalid JSON in clipboard")
	ErrInvalidRawJSON       = errors.New("invalid JSON")
	ErrInvalidPatch         = errors.New("invalid patch")
	ErrUnknownPreset        = errors.New("unknown preset")
	ErrCancelled            = errors.New("cancelled")
)

var noticeTitles = []struct {
	err   error
	title string
}{
	{ErrNothingToAdd, "Nothing To Add"},
	{ErrCannotAddProperty, "Cannot Add Property"},
	{ErrInvalidClipboardJSON, "Paste Error"},
	{ErrInvalidRawJSON, "Invalid JSON"},
	{ErrInvalidPatch, "Patch Error"},
	{ErrUnknownPreset, "Unknown Preset"},
	{ErrCancelled, "Cancelled"},
}

// NoticeTitle returns a short title for an informational error, or "" if
// err is not one.
func NoticeTitle(err error) string {
	for _, nt := range noticeTitles {
		if errors.Is(err, nt.err) {
			return nt.title
		}
	}
	return ""
}
