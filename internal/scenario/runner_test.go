package scenario

import (
	"context"
	"testing"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/bindings"
	"github.com/idl-tools/semcore/internal/config"
	"github.com/idl-tools/semcore/internal/evaluator"
	"github.com/idl-tools/semcore/internal/target"
	"github.com/idl-tools/semcore/internal/value"
)

func idExpr(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

func litInt(n int64) *ast.Literal {
	return &ast.Literal{Kind: ast.IntLiteral, Raw: n}
}

func TestRunner_GivenWhenThen_Passes(t *testing.T) {
	given := []ast.Statement{
		&ast.AssignmentStmt{Target: "balance", Value: litInt(100)},
	}
	when := []ast.Statement{
		&ast.AssignmentStmt{
			Target: "balance",
			Value: &ast.BinaryExpression{
				Op:    "+",
				Left:  idExpr("balance"),
				Right: litInt(50),
			},
		},
	}
	then := []*ast.PredicateDecl{
		{
			Name: "balance_increased",
			Expr: &ast.BinaryExpression{
				Op:    "==",
				Left:  idExpr("balance"),
				Right: litInt(150),
			},
		},
	}
	decl := &ast.ScenarioDecl{Name: "deposit", Given: given, When: when, Then: then}

	eval := evaluator.New(config.Default())
	runner := New(eval, config.Default(), nil)

	out := runner.Run(context.Background(), decl, bindings.ScenarioData{Name: "deposit"}, nil)

	if !out.Passed {
		t.Fatalf("expected scenario to pass, got %+v", out)
	}
	if out.FinalPhase != PhaseDone {
		t.Fatalf("expected final phase Done, got %v", out.FinalPhase)
	}
	if len(out.ThenResults) != 1 || out.ThenResults[0].Status != StatusPassed {
		t.Fatalf("expected one passing then result, got %+v", out.ThenResults)
	}
}

func TestRunner_TargetInvocation_ExpectedError(t *testing.T) {
	when := []ast.Statement{
		&ast.CallStmt{
			Target: strPtr("result"),
			Call: &ast.CallExpression{
				Callee: idExpr("ChargeCard"),
				Args:   []ast.Expression{litInt(500)},
			},
		},
	}
	decl := &ast.ScenarioDecl{Name: "decline", When: when}

	hook := target.HookFunc(func(ctx context.Context, behaviorName string, args []value.Value) (value.Value, error) {
		return nil, &target.Error{Code: "CARD_DECLINED", Message: "insufficient funds"}
	})

	eval := evaluator.New(config.Default())
	runner := New(eval, config.Default(), hook)

	data := bindings.ScenarioData{
		Name: "decline",
		Expected: &bindings.ExpectedOutcome{
			HasSuccess: true,
			Success:    false,
			ErrorCode:  "CARD_DECLINED",
		},
	}

	out := runner.Run(context.Background(), decl, data, nil)

	if !out.Passed {
		t.Fatalf("expected scenario to pass (expected failure matched), got %+v", out)
	}
}

func strPtr(s string) *string { return &s }
