package evaluator

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/env"
	"github.com/idl-tools/semcore/internal/value"
)

// evalCall dispatches a CallExpression either to a method on its
// receiver (Callee is a MemberExpression) or to a free built-in / bound
// lambda (Callee is an Identifier), matching the inferencer's own split
// in §4.3.
func (e *Evaluator) evalCall(c *ast.CallExpression, environment *env.Environment, depth int) (value.Value, error) {
	if mem, ok := c.Callee.(*ast.MemberExpression); ok {
		receiver, err := e.eval(mem.Target, environment, depth+1)
		if err != nil {
			return nil, err
		}
		args, err := e.evalArgs(c.Args, environment, depth)
		if err != nil {
			return nil, err
		}
		return e.callMethod(receiver, mem.Field, args, c.Args, environment, depth)
	}

	id, ok := c.Callee.(*ast.Identifier)
	if !ok {
		return nil, errf("call target of kind %T is not callable", c.Callee)
	}

	// A free call to a local variable bound to a Lambda (e.g. a predicate
	// passed down through a helper) takes precedence over a same-named
	// built-in, matching the inferencer's locals-first identifier rule.
	if bound, ok := environment.Get(id.Name); ok {
		if lambda, ok := bound.(value.Lambda); ok {
			args, err := e.evalArgs(c.Args, environment, depth)
			if err != nil {
				return nil, err
			}
			return lambda.Call(args)
		}
	}

	args, err := e.evalArgs(c.Args, environment, depth)
	if err != nil {
		return nil, err
	}
	return e.callBuiltin(id.Name, args)
}

func (e *Evaluator) evalArgs(argExprs []ast.Expression, environment *env.Environment, depth int) ([]value.Value, error) {
	args := make([]value.Value, len(argExprs))
	for i, a := range argExprs {
		v, err := e.eval(a, environment, depth+1)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func (e *Evaluator) effect(name string, args []value.Value, fallback func() (value.Value, error)) (value.Value, error) {
	if h, ok := e.effects[name]; ok {
		return h(args)
	}
	return fallback()
}

// callBuiltin implements the free built-ins of §4.3: "abs/floor/ceil/
// round/min/max, now -> Timestamp, uuid -> UUID, len/length -> Int,
// toString -> String, parseInt -> Int, parseDecimal -> Decimal,
// isValid/isNull/isNotNull -> Boolean".
func (e *Evaluator) callBuiltin(name string, args []value.Value) (value.Value, error) {
	switch name {
	case "now", "today":
		return e.effect(name, args, func() (value.Value, error) {
			return value.Timestamp(time.Now().UTC()), nil
		})
	case "uuid":
		return e.effect(name, args, func() (value.Value, error) {
			return value.UUID(uuid.NewString()), nil
		})
	case "random":
		return e.effect(name, args, func() (value.Value, error) {
			return value.NewDecimal(0), nil
		})
	case "hash":
		if len(args) != 1 {
			return nil, errf("hash() takes exactly one argument")
		}
		return value.String(fmt.Sprintf("%x", []byte(args[0].String()))), nil
	case "abs":
		return numericUnary(args, math.Abs, func(i value.Int) value.Int {
			return value.Int{Int: new(big.Int).Abs(i.Int)}
		})
	case "floor":
		return decimalUnary(args, math.Floor)
	case "ceil":
		return decimalUnary(args, math.Ceil)
	case "round":
		return decimalUnary(args, math.Round)
	case "min":
		return numericFold(args, func(a, b float64) bool { return a < b })
	case "max":
		return numericFold(args, func(a, b float64) bool { return a > b })
	case "len", "length":
		if len(args) != 1 {
			return nil, errf("%s() takes exactly one argument", name)
		}
		return lengthOf(args[0])
	case "toString":
		if len(args) != 1 {
			return nil, errf("toString() takes exactly one argument")
		}
		return value.String(args[0].String()), nil
	case "parseInt":
		if len(args) != 1 {
			return nil, errf("parseInt() takes exactly one argument")
		}
		s, ok := args[0].(value.String)
		if !ok {
			return nil, errf("parseInt() requires a String argument")
		}
		n, ok := value.NewIntFromString(strings.TrimSpace(string(s)))
		if !ok {
			return nil, errf("parseInt(%q): not a valid integer", s)
		}
		return n, nil
	case "parseDecimal":
		if len(args) != 1 {
			return nil, errf("parseDecimal() takes exactly one argument")
		}
		s, ok := args[0].(value.String)
		if !ok {
			return nil, errf("parseDecimal() requires a String argument")
		}
		d, ok := value.NewDecimalFromString(strings.TrimSpace(string(s)))
		if !ok {
			return nil, errf("parseDecimal(%q): not a valid decimal", s)
		}
		return d, nil
	case "isValid", "isNotNull":
		if len(args) != 1 {
			return nil, errf("%s() takes exactly one argument", name)
		}
		return value.Bool(!isNullish(args[0])), nil
	case "isNull":
		if len(args) != 1 {
			return nil, errf("isNull() takes exactly one argument")
		}
		return value.Bool(isNullish(args[0])), nil
	}
	return nil, errf("undefined built-in %q", name)
}

func isNullish(v value.Value) bool {
	if _, ok := v.(value.Null); ok {
		return true
	}
	if opt, ok := v.(value.Optional); ok {
		return !opt.Present
	}
	return false
}

func lengthOf(v value.Value) (value.Value, error) {
	switch t := v.(type) {
	case value.String:
		return value.NewInt(int64(len([]rune(string(t))))), nil
	case value.List:
		return value.NewInt(int64(len(t.Elements))), nil
	case value.Map:
		return value.NewInt(int64(len(t.Entries))), nil
	case value.Set:
		return value.NewInt(int64(len(t.Elements))), nil
	}
	return nil, errf("len() requires a String/List/Map/Set, got %T", v)
}

func numericUnary(args []value.Value, ff func(float64) float64, fi func(value.Int) value.Int) (value.Value, error) {
	if len(args) != 1 {
		return nil, errf("numeric built-in takes exactly one argument")
	}
	if i, ok := args[0].(value.Int); ok {
		return fi(i), nil
	}
	f, ok := asFloat(args[0])
	if !ok {
		return nil, errf("numeric built-in requires a numeric argument, got %T", args[0])
	}
	return value.NewDecimal(ff(f)), nil
}

func decimalUnary(args []value.Value, f func(float64) float64) (value.Value, error) {
	if len(args) != 1 {
		return nil, errf("numeric built-in takes exactly one argument")
	}
	if i, ok := args[0].(value.Int); ok {
		return i, nil
	}
	fv, ok := asFloat(args[0])
	if !ok {
		return nil, errf("numeric built-in requires a numeric argument, got %T", args[0])
	}
	return value.NewDecimal(f(fv)), nil
}

func numericFold(args []value.Value, better func(a, b float64) bool) (value.Value, error) {
	if len(args) == 0 {
		return nil, errf("min/max requires at least one argument")
	}
	allInt := true
	best := args[0]
	bestF, ok := asFloat(args[0])
	if !ok {
		return nil, errf("min/max requires numeric arguments, got %T", args[0])
	}
	if _, ok := args[0].(value.Int); !ok {
		allInt = false
	}
	for _, a := range args[1:] {
		f, ok := asFloat(a)
		if !ok {
			return nil, errf("min/max requires numeric arguments, got %T", a)
		}
		if _, ok := a.(value.Int); !ok {
			allInt = false
		}
		if better(f, bestF) {
			bestF = f
			best = a
		}
	}
	if allInt {
		return best, nil
	}
	return value.NewDecimal(bestF), nil
}
