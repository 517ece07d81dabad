package parse

import (
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/token"
)

type parseOpts struct {
	positions    map[*ir.Node]*token.Pos
	keyPositions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records the position of the first token of every node.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// ParseKeyPositions records, for every object member value, the position
// of its key.
func ParseKeyPositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.keyPositions = m
	}
}
