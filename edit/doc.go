// Package edit implements the editing operations on a document: adding,
// renaming, removing, moving and pasting properties, plus value edits.
//
// Every operation addresses nodes by path (see kpath) and is a single
// synchronous step against a doc.Document.  An Engine is not safe for
// concurrent use; it is owned by one tab.
//
// Operations that cannot apply either report false or return one of the
// informational errors (ErrNothingToAdd, ErrCannotAddProperty, ...).  In
// both cases the document is unchanged.
//
// After each successful mutation the engine refreshes its tracked handles
// (including the selection) and notifies its Notifier with the path of the
// smallest subtree that changed.
package edit
