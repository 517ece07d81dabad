// Package eval selects document nodes with boolean expr-lang expressions.
//
// An expression is evaluated once per node, parents before children, with
// these variables:
//
//	path     canonical path text ("" for the root)
//	key      member name, "[i]" for array elements
//	index    array index, -1 for object members and the root
//	depth    number of path segments
//	type     "Object", "Array", "String", "Number", "Boolean" or "Null"
//	value    the node as plain Go values
//	isLeaf   true for scalars
//	tooltip  help text for the member name, if any
//
// and functions getpath(p), the value at path p or nil, and has(p).
package eval

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
)

var ErrQuery = errors.New("invalid query")

// Tooltips supplies the tooltip variable.
type Tooltips interface {
	Tooltip(name string) (string, bool)
}

type nodeEnv struct {
	Path    string `expr:"path"`
	Key     string `expr:"key"`
	Index   int    `expr:"index"`
	Depth   int    `expr:"depth"`
	Type    string `expr:"type"`
	Value   any    `expr:"value"`
	IsLeaf  bool   `expr:"isLeaf"`
	Tooltip string `expr:"tooltip"`
}

type Query struct {
	src string
}

// Compile checks src and returns a query for it.
func Compile(src string) (*Query, error) {
	if _, err := compile(src, ir.EmptyObject()); err != nil {
		return nil, err
	}
	return &Query{src: src}, nil
}

func (q *Query) String() string {
	return q.src
}

func compile(src string, root *ir.Node) (*vm.Program, error) {
	opts := append(exprOpts(root), expr.Env(nodeEnv{}), expr.AsBool())
	prog, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return prog, nil
}

// Find returns the paths of the nodes under root for which the query is
// true, in document order.  tips may be nil.
func (q *Query) Find(root *ir.Node, tips Tooltips) ([]kpath.KPath, error) {
	prog, err := compile(q.src, root)
	if err != nil {
		return nil, err
	}
	var (
		res    []kpath.KPath
		runErr error
	)
	kpath.Walk(root, func(p kpath.KPath, n *ir.Node) bool {
		if runErr != nil {
			return false
		}
		out, err := expr.Run(prog, envFor(p, n, tips))
		if err != nil {
			runErr = fmt.Errorf("at %q: %w", p.String(), err)
			return false
		}
		if out.(bool) {
			res = append(res, p)
		}
		return true
	})
	if runErr != nil {
		return nil, runErr
	}
	if debug.Eval() {
		debug.Logf("eval: %q matched %d nodes", q.src, len(res))
	}
	return res, nil
}

func envFor(p kpath.KPath, n *ir.Node, tips Tooltips) nodeEnv {
	env := nodeEnv{
		Path:   p.String(),
		Index:  -1,
		Depth:  len(p),
		Type:   n.Type.String(),
		Value:  ir.ToAny(n),
		IsLeaf: n.Type.IsLeaf(),
	}
	if last, ok := p.Last(); ok {
		env.Key = last.String()
		if last.Kind == kpath.IndexKind {
			env.Index = last.Index
		} else if tips != nil {
			env.Tooltip, _ = tips.Tooltip(last.Field)
		}
	}
	return env
}
