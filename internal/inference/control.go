package inference

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/typesystem"
)

func (inf *Inferencer) inferConditional(e *ast.ConditionalExpression, ctx Context) typesystem.ResolvedType {
	inf.RequireBoolean(e.Cond, ctx)
	t := inf.Infer(e.Then, ctx)
	f := inf.Infer(e.Else, ctx)
	return typesystem.LUB(t, f)
}

// inferOld requires ctx.InPostcondition: `old(...)` snapshots pre-state and
// is meaningless anywhere else (§4.3, §6 Data Model "old" bindings).
func (inf *Inferencer) inferOld(e *ast.OldExpression, ctx Context) typesystem.ResolvedType {
	if !ctx.InPostcondition {
		inf.addError(diagnostics.CodeOldOutsidePostcondition, e.Loc, "old() is only valid inside a postcondition")
	}
	return inf.Infer(e.Inner, ctx)
}

// inferResult requires ctx.InPostcondition and a bound CurrentBehavior: it
// names the behavior's return value, so it is meaningless anywhere else.
func (inf *Inferencer) inferResult(e *ast.ResultExpression, ctx Context) typesystem.ResolvedType {
	if !ctx.InPostcondition || ctx.CurrentBehavior == nil {
		inf.addError(diagnostics.CodeResultOutsidePostcondition, e.Loc, "result is only valid inside a postcondition")
		return typesystem.Unknown{}
	}
	if e.Field == "" {
		return ctx.OutputType
	}
	t, _ := inf.stepField(ctx.OutputType, e.Field, e.Loc)
	return t
}

// inferInput resolves `input.Field` against the enclosing behavior's
// declared input fields, valid in both preconditions and postconditions.
func (inf *Inferencer) inferInput(e *ast.InputExpression, ctx Context) typesystem.ResolvedType {
	if ctx.CurrentBehavior == nil {
		return inf.addError(diagnostics.CodeInputInvalidField, e.Loc, "input is only valid inside a behavior contract")
	}
	if t, ok := ctx.CurrentBehavior.InputFields.Get(e.Field); ok {
		return t
	}
	return inf.addError(diagnostics.CodeInputInvalidField, e.Loc,
		fmt.Sprintf("%q is not a declared input field of %s", e.Field, ctx.CurrentBehavior.Name))
}

// inferLambda infers a lambda in isolation (no known parameter types from
// an enclosing call), binding each parameter to Unknown so the body can
// still be checked without cascading a spurious diagnostic per reference.
// A lambda passed as an argument to a collection method such as filter or
// map is inferred the same way: its parameter types are not taken from the
// receiver.
func (inf *Inferencer) inferLambda(e *ast.LambdaExpression, ctx Context) typesystem.ResolvedType {
	params := make([]typesystem.ResolvedType, len(e.Params))
	bodyCtx := ctx
	for i, p := range e.Params {
		params[i] = typesystem.Unknown{}
		bodyCtx = bodyCtx.WithLocal(p, typesystem.Unknown{})
	}
	ret := inf.Infer(e.Body, bodyCtx)
	return typesystem.Function{Params: params, Returns: ret}
}
