// Package kpath implements canonical paths addressing nodes in a document.
//
// A path is a sequence of segments.  A field segment selects an object
// member by key, an index segment selects an array element.  The empty path
// is the document root.
//
// # Syntax
//
// Field segments are joined by ".", index segments follow their predecessor
// directly as "[n]":
//
//	""                  root
//	"name"              field name of the root
//	"stats.hp"          field hp of field stats
//	"items[0]"          element 0 of field items
//	"items[0].tags[2]"  element 2 of field tags of element 0 of items
//	"grid[1][3]"        consecutive indices
//	"[0]"               element 0 of the root
//
// Field names are taken verbatim up to the next "." or "[": there is no
// quoting.  A key containing either character, or the empty key, has no
// textual form, although segment paths built in code still address it.
//
// Indices are non-negative decimal integers.
//
// # Resolution
//
// Resolve walks a node from the root one segment at a time.  A field segment
// requires an object containing the key, an index segment an array with the
// index in bounds.  Resolution never fails loudly: anything that does not
// lead to a node, including a malformed path text, reports not found.
package kpath
