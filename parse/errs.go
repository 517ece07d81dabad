package parse

import (
	"errors"
)

var (
	ErrParse    = errors.New("parse error")
	ErrTrailing = errors.New("trailing content after document")
)
