package evaluator

import (
	"testing"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/config"
	"github.com/idl-tools/semcore/internal/env"
	"github.com/idl-tools/semcore/internal/value"
)

func lit(kind ast.LiteralKind, raw interface{}) *ast.Literal {
	return &ast.Literal{Kind: kind, Raw: raw}
}

func TestEval_Arithmetic(t *testing.T) {
	e := New(config.Default())
	expr := &ast.BinaryExpression{Op: "+", Left: lit(ast.IntLiteral, int64(2)), Right: lit(ast.IntLiteral, int64(3))}
	got, err := e.Eval(expr, env.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value.Equal(got, value.NewInt(5)) {
		t.Errorf("expected 5, got %v", got)
	}
}

func TestEval_DivisionByZeroIsRuntimeErrorNotPanic(t *testing.T) {
	e := New(config.Default())
	expr := &ast.BinaryExpression{Op: "/", Left: lit(ast.IntLiteral, int64(1)), Right: lit(ast.IntLiteral, int64(0))}
	_, err := e.Eval(expr, env.New())
	if err == nil {
		t.Fatal("expected division by zero to return an error")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Errorf("expected a *RuntimeError, got %T", err)
	}
}

func TestEval_OldResolvesAgainstSnapshot(t *testing.T) {
	e := New(config.Default())
	environment := env.New()
	environment.Set("balance", value.NewInt(100))
	environment.SetOld("balance", value.NewInt(50))

	got, err := e.Eval(&ast.OldExpression{Inner: &ast.Identifier{Name: "balance"}}, environment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value.Equal(got, value.NewInt(50)) {
		t.Errorf("expected old(balance) = 50, got %v", got)
	}

	live, err := e.Eval(&ast.Identifier{Name: "balance"}, environment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value.Equal(live, value.NewInt(100)) {
		t.Errorf("expected live balance = 100, got %v", live)
	}
}

func TestEval_ResultUnboundIsError(t *testing.T) {
	e := New(config.Default())
	_, err := e.Eval(&ast.ResultExpression{}, env.New())
	if err == nil {
		t.Fatal("expected an error when result is unbound")
	}
}

func TestEval_ResultFieldStepsIntoStruct(t *testing.T) {
	e := New(config.Default())
	environment := env.New()
	environment.SetResult(value.Struct{Name: "Receipt", Fields: []value.StructField{
		{Name: "id", Value: value.String("r-1")},
	}})
	got, err := e.Eval(&ast.ResultExpression{Field: "id"}, environment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != value.String("r-1") {
		t.Errorf("expected result.id = r-1, got %v", got)
	}
}

func TestEval_InputField(t *testing.T) {
	e := New(config.Default())
	environment := env.New()
	environment.SetInput(value.Struct{Name: "DepositInput", Fields: []value.StructField{
		{Name: "amount", Value: value.NewDecimal(42.5)},
	}})
	got, err := e.Eval(&ast.InputExpression{Field: "amount"}, environment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value.Equal(got, value.NewDecimal(42.5)) {
		t.Errorf("expected input.amount = 42.5, got %v", got)
	}
}

func TestEval_ListIndexOutOfRange(t *testing.T) {
	e := New(config.Default())
	expr := &ast.IndexExpression{
		Target: &ast.ListLiteralExpression{Elements: []ast.Expression{lit(ast.IntLiteral, int64(1))}},
		Index:  lit(ast.IntLiteral, int64(5)),
	}
	_, err := e.Eval(expr, env.New())
	if err == nil {
		t.Fatal("expected an out-of-range list index to error rather than panic")
	}
}

func TestEval_ConditionalShortCircuitsBranch(t *testing.T) {
	e := New(config.Default())
	expr := &ast.ConditionalExpression{
		Cond: lit(ast.BooleanLiteral, true),
		Then: lit(ast.IntLiteral, int64(1)),
		Else: &ast.BinaryExpression{Op: "/", Left: lit(ast.IntLiteral, int64(1)), Right: lit(ast.IntLiteral, int64(0))},
	}
	got, err := e.Eval(expr, env.New())
	if err != nil {
		t.Fatalf("unexpected error from the untaken else branch: %v", err)
	}
	if !value.Equal(got, value.NewInt(1)) {
		t.Errorf("expected the then-branch value 1, got %v", got)
	}
}

func TestEval_RecursionDepthExceeded(t *testing.T) {
	cfg := config.Default()
	cfg.MaxRecursionDepth = 1
	e := New(cfg)
	var deep ast.Expression = lit(ast.IntLiteral, int64(1))
	for i := 0; i < 10; i++ {
		deep = &ast.UnaryExpression{Op: "-", Operand: deep}
	}
	_, err := e.Eval(deep, env.New())
	if err == nil {
		t.Fatal("expected exceeding MaxRecursionDepth to error")
	}
}
