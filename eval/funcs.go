package eval

import (
	"github.com/expr-lang/expr"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
)

func exprOpts(root *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			n, ok := kpath.ResolveText(root, params[0].(string))
			if !ok {
				return nil, nil
			}
			return ir.ToAny(n), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			_, ok := kpath.ResolveText(root, params[0].(string))
			return ok, nil
		},
			new(func(string) bool)),
	}
}
