package mergeop

import (
	"fmt"
	"slices"

	"github.com/signadot/earthedit/ir"
)

// Symbol names a patch operation and builds instances of it from a patch
// document.
type Symbol interface {
	String() string
	Instance(child *ir.Node) (Op, error)
}

type patchName string

func (s patchName) String() string {
	return string(s)
}

var symbols = map[string]Symbol{}

func register(s Symbol) Symbol {
	symbols[s.String()] = s
	return s
}

// Lookup returns the symbol with the given name.
func Lookup(name string) (Symbol, error) {
	s, ok := symbols[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, have %v", ErrUnknownOp, name, Names())
	}
	return s, nil
}

// Names lists the registered operation names.
func Names() []string {
	res := make([]string, 0, len(symbols))
	for k := range symbols {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}
