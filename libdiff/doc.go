// Package libdiff compares documents, either as text line by line or as
// trees path by path.
package libdiff
