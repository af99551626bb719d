package inference

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/typesystem"
)

// polymorphicBuiltins names free built-ins whose return type depends on
// their argument's type, so they cannot be represented by the single
// monomorphic typesystem.Function the prelude symbol table binds other
// built-ins to (§4.3 "Free built-ins").
var polymorphicBuiltins = map[string]bool{
	"abs": true, "floor": true, "ceil": true, "round": true,
	"min": true, "max": true, "len": true, "length": true,
	"toString": true, "parseInt": true, "parseDecimal": true,
	"isValid": true, "isNull": true, "isNotNull": true,
}

// inferPolymorphicBuiltin evaluates one of polymorphicBuiltins against its
// already-type-checked arguments. handled is false if name does not name
// one of these built-ins, in which case the caller falls back to ordinary
// symbol-table resolution.
func (inf *Inferencer) inferPolymorphicBuiltin(name string, e *ast.CallExpression, ctx Context) (typesystem.ResolvedType, bool) {
	if !polymorphicBuiltins[name] {
		return nil, false
	}
	argTypes := make([]typesystem.ResolvedType, len(e.Args))
	for i, a := range e.Args {
		argTypes[i] = inf.Infer(a, ctx)
	}
	arity := func(n int) bool {
		if len(e.Args) != n {
			inf.addError(diagnostics.CodeArityMismatch, e.Loc, fmt.Sprintf("%s expects %d argument(s), found %d", name, n, len(e.Args)))
			return false
		}
		return true
	}
	numeric := func(t typesystem.ResolvedType) bool {
		if typesystem.IsAbsorbing(t) {
			return true
		}
		p, ok := t.(typesystem.Primitive)
		return ok && (p.Name == typesystem.PrimInt || p.Name == typesystem.PrimDecimal)
	}

	switch name {
	case "abs":
		if !arity(1) {
			return typesystem.Unknown{}, true
		}
		if !numeric(argTypes[0]) {
			inf.addError(diagnostics.CodeTypeMismatch, e.Loc, fmt.Sprintf("abs expects a numeric argument, found %s", argTypes[0]))
			return typesystem.Unknown{}, true
		}
		return argTypes[0], true
	case "floor", "ceil", "round":
		if !arity(1) {
			return typesystem.Unknown{}, true
		}
		if !numeric(argTypes[0]) {
			inf.addError(diagnostics.CodeTypeMismatch, e.Loc, fmt.Sprintf("%s expects a numeric argument, found %s", name, argTypes[0]))
		}
		return intT, true
	case "min", "max":
		if !arity(2) {
			return typesystem.Unknown{}, true
		}
		if !numeric(argTypes[0]) || !numeric(argTypes[1]) {
			inf.addError(diagnostics.CodeTypeMismatch, e.Loc, fmt.Sprintf("%s expects numeric arguments, found %s and %s", name, argTypes[0], argTypes[1]))
			return typesystem.Unknown{}, true
		}
		return typesystem.Widen(argTypes[0], argTypes[1]), true
	case "len", "length":
		if !arity(1) {
			return typesystem.Unknown{}, true
		}
		switch argTypes[0].(type) {
		case typesystem.List, typesystem.Map:
		case typesystem.Primitive:
			if p := argTypes[0].(typesystem.Primitive); p.Name != typesystem.PrimString {
				inf.addError(diagnostics.CodeTypeMismatch, e.Loc, fmt.Sprintf("%s not defined for %s", name, argTypes[0]))
			}
		default:
			if !typesystem.IsAbsorbing(argTypes[0]) {
				inf.addError(diagnostics.CodeTypeMismatch, e.Loc, fmt.Sprintf("%s not defined for %s", name, argTypes[0]))
			}
		}
		return intT, true
	case "toString":
		arity(1)
		return stringT, true
	case "parseInt":
		arity(1)
		return intT, true
	case "parseDecimal":
		arity(1)
		return typesystem.Primitive{Name: typesystem.PrimDecimal}, true
	case "isValid", "isNull", "isNotNull":
		arity(1)
		return boolT, true
	}
	return typesystem.Unknown{}, true
}
