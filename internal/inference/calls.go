package inference

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/typesystem"
)

func (inf *Inferencer) inferCall(e *ast.CallExpression, ctx Context) typesystem.ResolvedType {
	if member, ok := e.Callee.(*ast.MemberExpression); ok {
		return inf.inferMethodCall(e, member, ctx)
	}
	return inf.inferFreeCall(e, ctx)
}

// inferFreeCall resolves Callee as a plain name: either one of the
// polymorphic built-ins (abs/min/len/...) whose return type depends on
// its argument, or a name bound to a Function in the symbol table (a
// zero-arg stdlib builtin such as now()/uuid(), §4.1 prelude).
func (inf *Inferencer) inferFreeCall(e *ast.CallExpression, ctx Context) typesystem.ResolvedType {
	if ident, ok := e.Callee.(*ast.Identifier); ok {
		if t, handled := inf.inferPolymorphicBuiltin(ident.Name, e, ctx); handled {
			return t
		}
	}
	calleeType := inf.Infer(e.Callee, ctx)
	if typesystem.IsAbsorbing(calleeType) {
		inf.checkArgs(e.Args, nil, ctx)
		return typesystem.Unknown{}
	}
	fn, ok := calleeType.(typesystem.Function)
	if !ok {
		ident, _ := e.Callee.(*ast.Identifier)
		name := "expression"
		if ident != nil {
			name = ident.Name
		}
		return inf.addError(diagnostics.CodeTypeMismatch, e.Loc, fmt.Sprintf("%s is not callable", name))
	}
	inf.checkArgs(e.Args, fn.Params, ctx)
	return fn.Returns
}

// inferMethodCall dispatches Target.Field(Args) against the fixed
// (receiver_kind, method_name) signature table in dispatch.go.
func (inf *Inferencer) inferMethodCall(e *ast.CallExpression, member *ast.MemberExpression, ctx Context) typesystem.ResolvedType {
	receiver := inf.Infer(member.Target, ctx)
	inf.ExpressionTypes[member] = receiver
	if typesystem.IsAbsorbing(receiver) {
		inf.checkArgs(e.Args, nil, ctx)
		return typesystem.Unknown{}
	}
	fn, ok := dispatchMethod(receiver, member.Field)
	if !ok {
		kind := receiverKind(receiver)
		if kind == "" {
			kind = receiver.String()
		}
		return inf.addError(diagnostics.CodeUnknownMethod, e.Loc,
			fmt.Sprintf("%s has no method %q", kind, member.Field))
	}
	inf.checkArgs(e.Args, fn.Params, ctx)
	return fn.Returns
}

func (inf *Inferencer) checkArgs(args []ast.Expression, params []typesystem.ResolvedType, ctx Context) {
	if params != nil && len(args) != len(params) {
		loc := ast.SourceLocation{}
		if len(args) > 0 {
			loc = args[0].Location()
		}
		inf.addError(diagnostics.CodeArityMismatch, loc,
			fmt.Sprintf("expected %d argument(s), found %d", len(params), len(args)))
	}
	for i, arg := range args {
		argType := inf.Infer(arg, ctx)
		if params == nil || i >= len(params) {
			continue
		}
		if typesystem.IsAbsorbing(argType) {
			continue
		}
		if !typesystem.Assignable(argType, params[i]) {
			inf.addError(diagnostics.CodeTypeMismatch, arg.Location(),
				fmt.Sprintf("argument %d: expected %s, found %s", i+1, params[i], argType))
		}
	}
}
