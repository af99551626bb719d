package inference

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/typesystem"
)

func (inf *Inferencer) inferMember(e *ast.MemberExpression, ctx Context) typesystem.ResolvedType {
	target := inf.Infer(e.Target, ctx)
	t, _ := inf.stepField(target, e.Field, e.Loc)
	return t
}

func (inf *Inferencer) inferIndex(e *ast.IndexExpression, ctx Context) typesystem.ResolvedType {
	target := inf.Infer(e.Target, ctx)
	idx := inf.Infer(e.Index, ctx)
	if typesystem.IsAbsorbing(target) {
		return typesystem.Unknown{}
	}
	switch t := target.(type) {
	case typesystem.List:
		if !typesystem.IsAbsorbing(idx) {
			if p, ok := idx.(typesystem.Primitive); !ok || p.Name != typesystem.PrimInt {
				inf.addError(diagnostics.CodeTypeMismatch, e.Loc, fmt.Sprintf("list index must be Int, found %s", idx))
			}
		}
		return t.Element
	case typesystem.Map:
		if !typesystem.IsAbsorbing(idx) && !typesystem.Assignable(idx, t.Key) {
			inf.addError(diagnostics.CodeTypeMismatch, e.Loc, fmt.Sprintf("map key must be %s, found %s", t.Key, idx))
		}
		return t.Value
	default:
		return inf.addError(diagnostics.CodeNotIndexable, e.Loc, fmt.Sprintf("%s is not indexable", target))
	}
}
