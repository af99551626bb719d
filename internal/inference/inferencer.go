package inference

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/config"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/resolver"
	"github.com/idl-tools/semcore/internal/symbols"
	"github.com/idl-tools/semcore/internal/typesystem"
)

// Inferencer assigns a ResolvedType to every expression node in a Domain
// and records diagnostics for rule violations. Every AST node is a
// pointer, so ExpressionTypes is keyed by node identity rather than
// structural equality, matching the design note in §9.
type Inferencer struct {
	table    *symbols.SymbolTable
	resolver *resolver.Resolver
	cfg      config.Config

	ExpressionTypes map[ast.Expression]typesystem.ResolvedType
	Diagnostics     []*diagnostics.Diagnostic
}

// New builds an Inferencer sharing the given symbol table and resolver
// with the rest of the Domain Checker's phases.
func New(table *symbols.SymbolTable, res *resolver.Resolver, cfg config.Config) *Inferencer {
	return &Inferencer{
		table:           table,
		resolver:        res,
		cfg:             cfg,
		ExpressionTypes: make(map[ast.Expression]typesystem.ResolvedType),
	}
}

func (inf *Inferencer) addError(code diagnostics.Code, loc ast.SourceLocation, msg string) typesystem.ResolvedType {
	inf.Diagnostics = append(inf.Diagnostics, diagnostics.New(code, loc, msg))
	return typesystem.Unknown{}
}

func (inf *Inferencer) addErrorDiag(d *diagnostics.Diagnostic) typesystem.ResolvedType {
	inf.Diagnostics = append(inf.Diagnostics, d)
	return typesystem.Unknown{}
}

// Infer is the total entry point: expression + context -> ResolvedType.
// The result is also recorded in ExpressionTypes before being returned.
func (inf *Inferencer) Infer(expr ast.Expression, ctx Context) typesystem.ResolvedType {
	if expr == nil {
		return typesystem.Unknown{}
	}
	t := inf.infer(expr, ctx)
	if t == nil {
		t = typesystem.Unknown{}
	}
	inf.ExpressionTypes[expr] = t
	return t
}

func (inf *Inferencer) infer(expr ast.Expression, ctx Context) typesystem.ResolvedType {
	switch e := expr.(type) {
	case *ast.Literal:
		return inf.inferLiteral(e)
	case *ast.Identifier:
		return inf.inferIdentifier(e, ctx)
	case *ast.QualifiedName:
		return inf.inferQualifiedName(e, ctx)
	case *ast.BinaryExpression:
		return inf.inferBinary(e, ctx)
	case *ast.UnaryExpression:
		return inf.inferUnary(e, ctx)
	case *ast.MemberExpression:
		return inf.inferMember(e, ctx)
	case *ast.IndexExpression:
		return inf.inferIndex(e, ctx)
	case *ast.CallExpression:
		return inf.inferCall(e, ctx)
	case *ast.QuantifierExpression:
		return inf.inferQuantifier(e, ctx)
	case *ast.ConditionalExpression:
		return inf.inferConditional(e, ctx)
	case *ast.OldExpression:
		return inf.inferOld(e, ctx)
	case *ast.ResultExpression:
		return inf.inferResult(e, ctx)
	case *ast.InputExpression:
		return inf.inferInput(e, ctx)
	case *ast.LambdaExpression:
		return inf.inferLambda(e, ctx)
	case *ast.ListLiteralExpression:
		return inf.inferListLiteral(e, ctx)
	case *ast.MapLiteralExpression:
		return inf.inferMapLiteral(e, ctx)
	default:
		return inf.addError(diagnostics.CodeInternal, expr.Location(), fmt.Sprintf("unhandled expression node %T", expr))
	}
}

// RequireBoolean infers expr and reports NOT_BOOLEAN if its type isn't
// Boolean (absorbing types pass silently, §7 cascade suppression). Used by
// every predicate-shaped site in the Domain Checker: entity/behavior/
// global invariants, preconditions, postconditions, policy conditions,
// scenario `then` assertions.
func (inf *Inferencer) RequireBoolean(expr ast.Expression, ctx Context) typesystem.ResolvedType {
	t := inf.Infer(expr, ctx)
	if typesystem.IsAbsorbing(t) {
		return t
	}
	if p, ok := t.(typesystem.Primitive); !ok || p.Name != typesystem.PrimBoolean {
		inf.addError(diagnostics.CodeNotBoolean, expr.Location(),
			fmt.Sprintf("expected Boolean, found %s", t))
	}
	return t
}
