package scenario

import (
	"context"
	"fmt"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/env"
	"github.com/idl-tools/semcore/internal/target"
	"github.com/idl-tools/semcore/internal/value"
)

// execStatement runs one given/when statement against environment,
// mirroring the static checker's inferStatements threading of locals
// (internal/checker/statements.go) at the value level instead of the
// type level. It returns the target.Hook invocation's Result and true
// when the statement was a CallStmt that actually reached the hook, so
// the caller can compare the most recent one against a scenario's
// `expected` block once the when phase finishes.
func (r *Runner) execStatement(ctx context.Context, stmt ast.Statement, environment *env.Environment, depth int) (value.Result, bool, error) {
	if depth > r.cfg.MaxRecursionDepth {
		return value.Result{}, false, errf("scenario statement nesting exceeded max recursion depth")
	}
	switch s := stmt.(type) {
	case *ast.AssignmentStmt:
		v, err := r.eval.Eval(s.Value, environment)
		if err != nil {
			return value.Result{}, false, err
		}
		environment.Set(s.Target, v)
		return value.Result{}, false, nil

	case *ast.CallStmt:
		v, wasCall, err := r.execCall(ctx, s.Call, environment)
		if err != nil {
			return value.Result{}, false, err
		}
		if s.Target != nil {
			environment.Set(*s.Target, v)
		}
		if wasCall {
			if res, ok := v.(value.Result); ok {
				return res, true, nil
			}
		}
		return value.Result{}, false, nil

	case *ast.LoopStmt:
		countVal, err := r.eval.Eval(s.Count, environment)
		if err != nil {
			return value.Result{}, false, err
		}
		count, ok := countVal.(value.Int)
		if !ok {
			return value.Result{}, false, errf("loop count did not evaluate to Int")
		}
		if count.Int64() > int64(r.cfg.MaxLoopIterations) {
			return value.Result{}, false, errf("loop count %d exceeds max loop iterations %d", count, r.cfg.MaxLoopIterations)
		}
		var lastRes value.Result
		var lastHad bool
		for i := int64(0); i < count.Int64(); i++ {
			iterEnv := env.NewEnclosed(environment)
			if s.Variable != nil {
				iterEnv.Set(*s.Variable, value.NewInt(i))
			}
			for _, inner := range s.Body {
				res, had, err := r.execStatement(ctx, inner, iterEnv, depth+1)
				if err != nil {
					return value.Result{}, false, err
				}
				if had {
					lastRes, lastHad = res, true
				}
			}
		}
		return lastRes, lastHad, nil
	}
	return value.Result{}, false, errf("unhandled scenario statement %T", stmt)
}

// execCall evaluates call's arguments and, when its callee names a
// behavior, invokes it through the Runner's target.Hook, wrapping the
// outcome as a value.Result (§4.7: scenario outcomes expose
// success/value/error uniformly, see internal/target.AsResult). When a
// hook is set, every call whose callee is a bare identifier is sent to it,
// built-in names included; only when no hook is set, or the callee is not
// a bare identifier, does the call fall back to the evaluator's own call
// handling (built-ins, lambdas). wasCall is false in that case so the
// caller does not mistake a plain built-in's return value for a target
// invocation outcome.
func (r *Runner) execCall(ctx context.Context, call *ast.CallExpression, environment *env.Environment) (v value.Value, wasCall bool, err error) {
	name, isBehaviorCall := calleeName(call.Callee)
	if isBehaviorCall && r.hook != nil {
		args := make([]value.Value, len(call.Args))
		for i, a := range call.Args {
			av, aerr := r.eval.Eval(a, environment)
			if aerr != nil {
				return nil, false, aerr
			}
			args[i] = av
		}
		out, invokeErr := r.hook.Invoke(ctx, name, args)
		res := target.AsResult(out, invokeErr)
		return res, true, nil
	}
	rv, err := r.eval.Eval(call, environment)
	return rv, false, err
}

// calleeName extracts a bare identifier callee's name; execCall treats
// any such callee as a target behavior name. It does not tell a built-in
// name apart from a behavior name.
func calleeName(callee ast.Expression) (string, bool) {
	id, ok := callee.(*ast.Identifier)
	if !ok {
		return "", false
	}
	return id.Name, true
}

func errf(format string, args ...interface{}) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Error is a scenario-execution failure distinct from an assertion
// failure (§7: Runtime evaluation errors abort the enclosing phase).
type Error struct{ Message string }

func (e *Error) Error() string { return e.Message }
