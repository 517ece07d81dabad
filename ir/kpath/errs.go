package kpath

import (
	"errors"
	"fmt"
)

var ErrMalformedPath = errors.New("malformed path")

// MalformedPathError reports where and why a path text failed to parse.
type MalformedPathError struct {
	Path   string
	Offset int
	Reason string
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("%s %q at offset %d: %s", ErrMalformedPath, e.Path, e.Offset, e.Reason)
}

func (e *MalformedPathError) Unwrap() error {
	return ErrMalformedPath
}
