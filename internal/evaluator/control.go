package evaluator

import (
	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/env"
	"github.com/idl-tools/semcore/internal/value"
)

func (e *Evaluator) evalConditional(c *ast.ConditionalExpression, environment *env.Environment, depth int) (value.Value, error) {
	cond, err := e.evalBool(c.Cond, environment, depth)
	if err != nil {
		return nil, err
	}
	if cond {
		return e.eval(c.Then, environment, depth+1)
	}
	return e.eval(c.Else, environment, depth+1)
}

// evalLambda builds a value.Lambda closing over environment, so a later
// call (from a quantifier-style collection method like filter/map) sees
// the bindings in scope where the lambda was written, not where it is
// invoked.
func (e *Evaluator) evalLambda(l *ast.LambdaExpression, environment *env.Environment, depth int) (value.Value, error) {
	closureDepth := depth
	return value.Lambda{
		Params: l.Params,
		Call: func(args []value.Value) (value.Value, error) {
			child := env.NewEnclosed(environment)
			for i, p := range l.Params {
				if i < len(args) {
					child.Set(p, args[i])
				}
			}
			return e.eval(l.Body, child, closureDepth+1)
		},
	}, nil
}
