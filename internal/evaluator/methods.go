package evaluator

import (
	"regexp"
	"strings"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/env"
	"github.com/idl-tools/semcore/internal/value"
)

// callMethod implements the receiver-kind method tables of §4.3's
// dispatch-by-receiver rule, at the value level instead of the type
// level inference/dispatch.go already covers.
func (e *Evaluator) callMethod(receiver value.Value, method string, args []value.Value, argExprs []ast.Expression, environment *env.Environment, depth int) (value.Value, error) {
	switch r := receiver.(type) {
	case value.List:
		return e.callListMethod(r, method, args)
	case value.String:
		return callStringMethod(r, method, args)
	case value.Map:
		return callMapMethod(r, method, args)
	case value.Optional:
		return callOptionalMethod(r, method, args)
	case value.Entity:
		return e.callEntityMethod(r, method, args)
	case value.Timestamp:
		return callTimestampMethod(r, method, args)
	}
	return nil, errf("no method %q on value of kind %T", method, receiver)
}

func asLambda(args []value.Value, idx int) (value.Lambda, error) {
	if idx >= len(args) {
		return value.Lambda{}, errf("missing predicate argument")
	}
	l, ok := args[idx].(value.Lambda)
	if !ok {
		return value.Lambda{}, errf("expected a predicate/lambda argument, got %T", args[idx])
	}
	return l, nil
}

func (e *Evaluator) callListMethod(r value.List, method string, args []value.Value) (value.Value, error) {
	switch method {
	case "length", "count", "size":
		return value.NewInt(int64(len(r.Elements))), nil
	case "isEmpty":
		return value.Bool(len(r.Elements) == 0), nil
	case "isNotEmpty":
		return value.Bool(len(r.Elements) != 0), nil
	case "contains", "includes":
		if len(args) != 1 {
			return nil, errf("%s() takes exactly one argument", method)
		}
		for _, el := range r.Elements {
			if value.Equal(el, args[0]) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	case "first":
		if len(r.Elements) == 0 {
			return value.Optional{Present: false}, nil
		}
		return value.Optional{Present: true, Inner: r.Elements[0]}, nil
	case "last":
		if len(r.Elements) == 0 {
			return value.Optional{Present: false}, nil
		}
		return value.Optional{Present: true, Inner: r.Elements[len(r.Elements)-1]}, nil
	case "filter":
		pred, err := asLambda(args, 0)
		if err != nil {
			return nil, err
		}
		var kept []value.Value
		for _, el := range r.Elements {
			v, err := pred.Call([]value.Value{el})
			if err != nil {
				return nil, err
			}
			b, ok := v.(value.Bool)
			if !ok {
				return nil, errf("filter predicate must return Boolean, got %T", v)
			}
			if b {
				kept = append(kept, el)
			}
		}
		return value.List{Elements: kept}, nil
	case "map":
		fn, err := asLambda(args, 0)
		if err != nil {
			return nil, err
		}
		mapped := make([]value.Value, len(r.Elements))
		for i, el := range r.Elements {
			v, err := fn.Call([]value.Value{el})
			if err != nil {
				return nil, err
			}
			mapped[i] = v
		}
		return value.List{Elements: mapped}, nil
	case "sum":
		var total value.Value = value.NewInt(0)
		for _, el := range r.Elements {
			var err error
			total, err = evalPlus(total, el)
			if err != nil {
				return nil, err
			}
		}
		return total, nil
	case "avg":
		if len(r.Elements) == 0 {
			return nil, errf("avg() of an empty list is undefined")
		}
		var total value.Value = value.NewInt(0)
		for _, el := range r.Elements {
			var err error
			total, err = evalPlus(total, el)
			if err != nil {
				return nil, err
			}
		}
		f, _ := asFloat(total)
		return value.NewDecimal(f / float64(len(r.Elements))), nil
	case "min", "max":
		if len(r.Elements) == 0 {
			return nil, errf("%s() of an empty list is undefined", method)
		}
		return numericFold(r.Elements, map[string]func(a, b float64) bool{
			"min": func(a, b float64) bool { return a < b },
			"max": func(a, b float64) bool { return a > b },
		}[method])
	}
	return nil, errf("no List method %q", method)
}

func callStringMethod(r value.String, method string, args []value.Value) (value.Value, error) {
	s := string(r)
	switch method {
	case "length", "size":
		return value.NewInt(int64(len([]rune(s)))), nil
	case "isEmpty":
		return value.Bool(s == ""), nil
	case "isNotEmpty":
		return value.Bool(s != ""), nil
	case "contains":
		return value.Bool(strings.Contains(s, argString(args, 0))), nil
	case "startsWith":
		return value.Bool(strings.HasPrefix(s, argString(args, 0))), nil
	case "endsWith":
		return value.Bool(strings.HasSuffix(s, argString(args, 0))), nil
	case "matches":
		re, err := regexp.Compile(argString(args, 0))
		if err != nil {
			return nil, errf("invalid regex %q: %v", argString(args, 0), err)
		}
		return value.Bool(re.MatchString(s)), nil
	case "toUpper":
		return value.String(strings.ToUpper(s)), nil
	case "toLower":
		return value.String(strings.ToLower(s)), nil
	case "trim":
		return value.String(strings.TrimSpace(s)), nil
	case "reverse":
		runes := []rune(s)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return value.String(string(runes)), nil
	case "split":
		parts := strings.Split(s, argString(args, 0))
		elems := make([]value.Value, len(parts))
		for i, p := range parts {
			elems[i] = value.String(p)
		}
		return value.List{Elements: elems}, nil
	}
	return nil, errf("no String method %q", method)
}

func argString(args []value.Value, idx int) string {
	if idx >= len(args) {
		return ""
	}
	s, _ := args[idx].(value.String)
	return string(s)
}

func callMapMethod(r value.Map, method string, args []value.Value) (value.Value, error) {
	switch method {
	case "size", "length", "count":
		return value.NewInt(int64(len(r.Entries))), nil
	case "keys":
		keys := make([]value.Value, len(r.Entries))
		for i, e := range r.Entries {
			keys[i] = e.Key
		}
		return value.List{Elements: keys}, nil
	case "values":
		vals := make([]value.Value, len(r.Entries))
		for i, e := range r.Entries {
			vals[i] = e.Value
		}
		return value.List{Elements: vals}, nil
	case "has", "containsKey":
		if len(args) != 1 {
			return nil, errf("%s() takes exactly one argument", method)
		}
		_, ok := r.Get(args[0])
		return value.Bool(ok), nil
	case "get":
		if len(args) != 1 {
			return nil, errf("get() takes exactly one argument")
		}
		v, ok := r.Get(args[0])
		if !ok {
			return value.Optional{Present: false}, nil
		}
		return value.Optional{Present: true, Inner: v}, nil
	}
	return nil, errf("no Map method %q", method)
}

func callOptionalMethod(r value.Optional, method string, args []value.Value) (value.Value, error) {
	switch method {
	case "isDefined":
		return value.Bool(r.Present), nil
	case "isEmpty":
		return value.Bool(!r.Present), nil
	case "get":
		if !r.Present {
			return nil, errf("get() called on an empty Optional")
		}
		return r.Inner, nil
	case "getOrElse":
		if r.Present {
			return r.Inner, nil
		}
		if len(args) != 1 {
			return nil, errf("getOrElse() takes exactly one argument")
		}
		return args[0], nil
	}
	return nil, errf("no Optional method %q", method)
}

// callEntityMethod implements `lookup`/`exists` against the Evaluator's
// injected EntityStore (§4.3: "Entity: lookup -> Optional<Entity>, exists
// -> Boolean"). The spec leaves the backing store's shape to the caller;
// without one registered, lookup/exists conservatively report "not
// found" rather than erroring, so a domain with no store wiring still
// evaluates invariants that merely mention these methods in dead
// branches.
func (e *Evaluator) callEntityMethod(r value.Entity, method string, args []value.Value) (value.Value, error) {
	switch method {
	case "lookup":
		if e.entityStore == nil || len(args) != 1 {
			return value.Optional{Present: false}, nil
		}
		found, ok := e.entityStore(r.Name, args[0])
		if !ok {
			return value.Optional{Present: false}, nil
		}
		return value.Optional{Present: true, Inner: found}, nil
	case "exists":
		if e.entityStore == nil || len(args) != 1 {
			return value.Bool(false), nil
		}
		_, ok := e.entityStore(r.Name, args[0])
		return value.Bool(ok), nil
	}
	return nil, errf("no Entity method %q", method)
}

func callTimestampMethod(r value.Timestamp, method string, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, errf("%s() takes exactly one argument", method)
	}
	other, ok := args[0].(value.Timestamp)
	if !ok {
		return nil, errf("%s() requires a Timestamp argument", method)
	}
	switch method {
	case "before":
		return value.Bool(timeOf(r).Before(timeOf(other))), nil
	case "after":
		return value.Bool(timeOf(r).After(timeOf(other))), nil
	}
	return nil, errf("no Timestamp method %q", method)
}
