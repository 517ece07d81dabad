package doc

import "errors"

var (
	ErrNotAnObject     = errors.New("not an object")
	ErrNotAnArray      = errors.New("not an array")
	ErrNotContainer    = errors.New("not a container")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrKeyNotFound     = errors.New("key not found")
	ErrNotFound        = errors.New("not found")
	ErrCycle           = errors.New("node would contain itself")
	ErrDetached        = errors.New("node is not part of the document")
	ErrAttached        = errors.New("node is already part of the document")
)
