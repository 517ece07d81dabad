package ir

import "errors"

var (
	ErrUnknownType = errors.New("unknown type")
	ErrUnsupported = errors.New("unsupported value")
)
