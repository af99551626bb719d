package inference

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/typesystem"
)

// elementType returns the type a quantifier's bound variable takes when
// iterating coll: a List yields its element type, a Map yields its key
// type. Anything else is NOT_ITERABLE.
func (inf *Inferencer) elementType(coll typesystem.ResolvedType, loc ast.SourceLocation) typesystem.ResolvedType {
	if typesystem.IsAbsorbing(coll) {
		return typesystem.Unknown{}
	}
	switch c := coll.(type) {
	case typesystem.List:
		return c.Element
	case typesystem.Map:
		return c.Key
	default:
		return inf.addError(diagnostics.CodeNotIterable, loc, fmt.Sprintf("%s is not iterable", coll))
	}
}

func (inf *Inferencer) inferQuantifier(e *ast.QuantifierExpression, ctx Context) typesystem.ResolvedType {
	coll := inf.Infer(e.Collection, ctx)
	elem := inf.elementType(coll, e.Loc)
	bodyCtx := ctx.WithLocal(e.Var, elem)

	switch e.Kind {
	case ast.QuantifierAll, ast.QuantifierAny, ast.QuantifierNone:
		inf.RequireBoolean(e.Predicate, bodyCtx)
		return boolType()
	case ast.QuantifierCount:
		inf.RequireBoolean(e.Predicate, bodyCtx)
		return typesystem.Primitive{Name: typesystem.PrimInt}
	case ast.QuantifierSum:
		t := inf.Infer(e.Predicate, bodyCtx)
		if typesystem.IsAbsorbing(t) {
			return typesystem.Unknown{}
		}
		if p, ok := t.(typesystem.Primitive); ok && (p.Name == typesystem.PrimInt || p.Name == typesystem.PrimDecimal) {
			return t
		}
		inf.addError(diagnostics.CodeTypeMismatch, e.Predicate.Location(), fmt.Sprintf("sum body must be numeric, found %s", t))
		return typesystem.Unknown{}
	case ast.QuantifierFilter:
		inf.RequireBoolean(e.Predicate, bodyCtx)
		return typesystem.List{Element: elem}
	default:
		return inf.addError(diagnostics.CodeInternal, e.Loc, fmt.Sprintf("unhandled quantifier kind %v", e.Kind))
	}
}
