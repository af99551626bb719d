package inference

import (
	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/typesystem"
)

func (inf *Inferencer) inferLiteral(e *ast.Literal) typesystem.ResolvedType {
	switch e.Kind {
	case ast.IntLiteral:
		return typesystem.Primitive{Name: typesystem.PrimInt}
	case ast.DecimalLiteral:
		return typesystem.Primitive{Name: typesystem.PrimDecimal}
	case ast.StringLiteral:
		return typesystem.Primitive{Name: typesystem.PrimString}
	case ast.BooleanLiteral:
		return typesystem.Primitive{Name: typesystem.PrimBoolean}
	case ast.DurationLiteral:
		return typesystem.Primitive{Name: typesystem.PrimDuration}
	case ast.NullLiteral:
		// A bare `null` has no type of its own; it is only ever checked
		// against an Optional field or parameter, so Unknown lets it pass
		// assignability against any Optional<T> without a spurious
		// TYPE_MISMATCH (§4.3 absorbing-type cascade suppression).
		return typesystem.Unknown{}
	default:
		return typesystem.Unknown{}
	}
}

func (inf *Inferencer) inferListLiteral(e *ast.ListLiteralExpression, ctx Context) typesystem.ResolvedType {
	if len(e.Elements) == 0 {
		return typesystem.List{Element: typesystem.Unknown{}}
	}
	elem := inf.Infer(e.Elements[0], ctx)
	for _, el := range e.Elements[1:] {
		t := inf.Infer(el, ctx)
		elem = typesystem.LUB(elem, t)
	}
	return typesystem.List{Element: elem}
}

func (inf *Inferencer) inferMapLiteral(e *ast.MapLiteralExpression, ctx Context) typesystem.ResolvedType {
	if len(e.Entries) == 0 {
		return typesystem.Map{Key: typesystem.Unknown{}, Value: typesystem.Unknown{}}
	}
	key := inf.Infer(e.Entries[0].Key, ctx)
	val := inf.Infer(e.Entries[0].Value, ctx)
	for _, entry := range e.Entries[1:] {
		key = typesystem.LUB(key, inf.Infer(entry.Key, ctx))
		val = typesystem.LUB(val, inf.Infer(entry.Value, ctx))
	}
	return typesystem.Map{Key: key, Value: val}
}
