package verifier

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/bindings"
	"github.com/idl-tools/semcore/internal/config"
	"github.com/idl-tools/semcore/internal/target"
	"github.com/idl-tools/semcore/internal/value"
)

func TestVerify_StaticMode_PreconditionFailure(t *testing.T) {
	decl := &ast.BehaviorDecl{
		Name:  "Withdraw",
		Input: []*ast.FieldDecl{{Name: "amount"}},
		Preconditions: []*ast.PredicateDecl{
			{
				Name: "amount_positive",
				Expr: &ast.BinaryExpression{
					Op:    ">",
					Left:  &ast.Identifier{Name: "amount"},
					Right: &ast.Literal{Kind: ast.IntLiteral, Raw: int64(0)},
				},
			},
		},
	}
	domain := &ast.Domain{Behaviors: []*ast.BehaviorDecl{decl}}
	td := &bindings.TestData{
		Intent: "Withdraw",
		Pre:    map[string]value.Value{"amount": value.NewInt(-5)},
	}

	v := New(domain, config.Default())
	report := v.Verify(context.Background(), td, ModeStatic)

	if len(report.Behaviors) != 1 {
		t.Fatalf("expected 1 behavior report, got %d", len(report.Behaviors))
	}
	br := report.Behaviors[0]
	if br.Status != StatusFailed {
		t.Fatalf("expected failed status, got %v", br.Status)
	}
	if report.Summary.Failed != 1 {
		t.Fatalf("expected summary.Failed=1, got %+v", report.Summary)
	}
}

func TestVerify_DynamicMode_PostconditionAgainstResult(t *testing.T) {
	decl := &ast.BehaviorDecl{
		Name:  "Increment",
		Input: []*ast.FieldDecl{{Name: "n"}},
		Postconditions: []*ast.PredicateDecl{
			{
				Name: "result_is_incremented",
				Expr: &ast.BinaryExpression{
					Op:   "==",
					Left: &ast.ResultExpression{},
					Right: &ast.BinaryExpression{
						Op:    "+",
						Left:  &ast.OldExpression{Inner: &ast.Identifier{Name: "n"}},
						Right: &ast.Literal{Kind: ast.IntLiteral, Raw: int64(1)},
					},
				},
			},
		},
	}
	domain := &ast.Domain{Behaviors: []*ast.BehaviorDecl{decl}}
	td := &bindings.TestData{
		Intent: "Increment",
		Pre:    map[string]value.Value{"n": value.NewInt(41)},
	}

	hook := target.HookFunc(func(ctx context.Context, behaviorName string, args []value.Value) (value.Value, error) {
		n := args[0].(value.Int)
		return value.Int{Int: new(big.Int).Add(n.Int, big.NewInt(1))}, nil
	})

	v := New(domain, config.Default(), WithHook(hook))
	report := v.Verify(context.Background(), td, ModeDynamic)

	br := report.Behaviors[0]
	if br.Status != StatusPassed {
		t.Fatalf("expected passed status, got %+v", br)
	}
	if !br.Target.Succeeded {
		t.Fatalf("expected target invocation to succeed, got %+v", br.Target)
	}
}

func TestVerify_DynamicMode_TargetTimeout(t *testing.T) {
	// §8 scenario 5: a target that outlives its timeout is reported as a
	// timed-out target outcome, and the behavior fails rather than hanging
	// the verify call.
	decl := &ast.BehaviorDecl{
		Name:  "SlowOp",
		Input: []*ast.FieldDecl{{Name: "n"}},
	}
	domain := &ast.Domain{Behaviors: []*ast.BehaviorDecl{decl}}
	td := &bindings.TestData{Intent: "SlowOp", Pre: map[string]value.Value{"n": value.NewInt(1)}}

	hook := target.HookFunc(func(ctx context.Context, behaviorName string, args []value.Value) (value.Value, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	v := New(domain, config.Default(), WithHook(hook), WithTimeout(10*time.Millisecond))
	report := v.Verify(context.Background(), td, ModeDynamic)

	br := report.Behaviors[0]
	if !br.Target.TimedOut {
		t.Fatalf("expected the target outcome to report TimedOut, got %+v", br.Target)
	}
	if br.Status != StatusFailed {
		t.Fatalf("expected the behavior to fail on a timed-out target, got %v", br.Status)
	}
	if br.Target.ErrorCode != "TIMEOUT" {
		t.Errorf("expected error code TIMEOUT, got %q", br.Target.ErrorCode)
	}
}

func TestVerify_DynamicMode_TargetErrorBindsFailureResult(t *testing.T) {
	decl := &ast.BehaviorDecl{
		Name:  "Withdraw",
		Input: []*ast.FieldDecl{{Name: "amount"}},
		Postconditions: []*ast.PredicateDecl{
			{Name: "not_successful", Expr: &ast.UnaryExpression{
				Op:      "not",
				Operand: &ast.MemberExpression{Target: &ast.ResultExpression{}, Field: "success"},
			}},
		},
	}
	domain := &ast.Domain{Behaviors: []*ast.BehaviorDecl{decl}}
	td := &bindings.TestData{Intent: "Withdraw", Pre: map[string]value.Value{"amount": value.NewInt(1000)}}

	hook := target.HookFunc(func(ctx context.Context, behaviorName string, args []value.Value) (value.Value, error) {
		return nil, &target.Error{Code: "INSUFFICIENT_FUNDS", Message: "balance too low"}
	})

	v := New(domain, config.Default(), WithHook(hook))
	report := v.Verify(context.Background(), td, ModeDynamic)

	br := report.Behaviors[0]
	if br.Target.Succeeded {
		t.Fatalf("expected the target outcome to report failure, got %+v", br.Target)
	}
	if br.Target.ErrorCode != "INSUFFICIENT_FUNDS" {
		t.Errorf("expected error code INSUFFICIENT_FUNDS, got %q", br.Target.ErrorCode)
	}
	if len(br.Postconditions) != 1 || br.Postconditions[0].Status != StatusPassed {
		t.Fatalf("expected the not_successful postcondition to pass against a bound failure Result, got %+v", br.Postconditions)
	}
}

func TestVerify_MultiBehaviorDomain_OnlyVerifiesTheIntentNamedBehavior(t *testing.T) {
	// A domain with more than one behavior must not run every behavior
	// against bindings meant for just one of them (§4.7: "verify one
	// behavior against one test-data record"). The untargeted behavior's
	// precondition references a field the test data never supplies; if it
	// were wrongly evaluated it would error, not silently pass.
	withdraw := &ast.BehaviorDecl{
		Name:  "Withdraw",
		Input: []*ast.FieldDecl{{Name: "amount"}},
		Preconditions: []*ast.PredicateDecl{
			{Name: "amount_positive", Expr: &ast.BinaryExpression{
				Op:    ">",
				Left:  &ast.Identifier{Name: "amount"},
				Right: &ast.Literal{Kind: ast.IntLiteral, Raw: int64(0)},
			}},
		},
	}
	deposit := &ast.BehaviorDecl{
		Name:  "Deposit",
		Input: []*ast.FieldDecl{{Name: "creditScore"}},
		Preconditions: []*ast.PredicateDecl{
			{Name: "credit_score_checked", Expr: &ast.BinaryExpression{
				Op:    ">",
				Left:  &ast.Identifier{Name: "creditScore"},
				Right: &ast.Literal{Kind: ast.IntLiteral, Raw: int64(0)},
			}},
		},
	}
	domain := &ast.Domain{Behaviors: []*ast.BehaviorDecl{withdraw, deposit}}
	td := &bindings.TestData{
		Intent: "Withdraw",
		Pre:    map[string]value.Value{"amount": value.NewInt(50)},
	}

	v := New(domain, config.Default())
	report := v.Verify(context.Background(), td, ModeStatic)

	if len(report.Behaviors) != 1 {
		t.Fatalf("expected exactly one behavior report, got %d", len(report.Behaviors))
	}
	br := report.Behaviors[0]
	if br.Behavior != "Withdraw" {
		t.Fatalf("expected only Withdraw to be verified, got %q", br.Behavior)
	}
	if br.Status != StatusPassed {
		t.Fatalf("expected Withdraw to pass, got %v (%+v)", br.Status, br.Preconditions)
	}
}

func TestVerify_UnmatchedIntentIsSkippedNotEveryBehavior(t *testing.T) {
	withdraw := &ast.BehaviorDecl{Name: "Withdraw"}
	deposit := &ast.BehaviorDecl{Name: "Deposit"}
	domain := &ast.Domain{Behaviors: []*ast.BehaviorDecl{withdraw, deposit}}
	td := &bindings.TestData{Intent: "NoSuchBehavior", Pre: map[string]value.Value{"x": value.NewInt(1)}}

	v := New(domain, config.Default())
	report := v.Verify(context.Background(), td, ModeStatic)

	if len(report.Behaviors) != 1 {
		t.Fatalf("expected exactly one behavior report for an unmatched intent, got %d", len(report.Behaviors))
	}
	if report.Behaviors[0].Status != StatusSkipped {
		t.Fatalf("expected an unmatched intent to be skipped, got %v", report.Behaviors[0].Status)
	}
	if report.Summary.Total != 1 {
		t.Errorf("expected summary.Total=1 (not one per domain behavior), got %+v", report.Summary)
	}
}

func TestVerify_StaticMode_NoTestDataIsSkipped(t *testing.T) {
	decl := &ast.BehaviorDecl{Name: "Untested"}
	domain := &ast.Domain{Behaviors: []*ast.BehaviorDecl{decl}}

	v := New(domain, config.Default())
	report := v.Verify(context.Background(), nil, ModeStatic)

	br := report.Behaviors[0]
	if br.Status != StatusSkipped {
		t.Fatalf("expected a behavior with no test data to be skipped, got %v", br.Status)
	}
	if report.Summary.Skipped != 1 {
		t.Errorf("expected summary.Skipped=1, got %+v", report.Summary)
	}
}
