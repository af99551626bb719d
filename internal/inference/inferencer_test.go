package inference

import (
	"testing"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/config"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/resolver"
	"github.com/idl-tools/semcore/internal/symbols"
	"github.com/idl-tools/semcore/internal/typesystem"
)

func newInferencer() *Inferencer {
	table := symbols.NewSymbolTable()
	res := resolver.New(table, nil, nil, config.Default())
	return New(table, res, config.Default())
}

func lit(kind ast.LiteralKind, raw interface{}) *ast.Literal {
	return &ast.Literal{Kind: kind, Raw: raw}
}

func TestInfer_ArithmeticWidensIntToDecimal(t *testing.T) {
	inf := newInferencer()
	expr := &ast.BinaryExpression{
		Op:    "+",
		Left:  lit(ast.IntLiteral, int64(1)),
		Right: lit(ast.DecimalLiteral, "1.5"),
	}
	got := inf.Infer(expr, Context{})
	if !typesystem.Equal(got, typesystem.Primitive{Name: typesystem.PrimDecimal}) {
		t.Errorf("expected Int+Decimal to widen to Decimal, got %s", got)
	}
	if len(inf.Diagnostics) != 0 {
		t.Errorf("expected no diagnostics, got %v", inf.Diagnostics)
	}
}

func TestInfer_ArithmeticMismatchReported(t *testing.T) {
	inf := newInferencer()
	expr := &ast.BinaryExpression{
		Op:    "+",
		Left:  lit(ast.StringLiteral, "a"),
		Right: lit(ast.BooleanLiteral, true),
	}
	inf.Infer(expr, Context{})
	if len(inf.Diagnostics) != 1 || inf.Diagnostics[0].Code != diagnostics.CodeTypeMismatch {
		t.Fatalf("expected exactly one TYPE_MISMATCH diagnostic, got %v", inf.Diagnostics)
	}
}

func TestInfer_OldOutsidePostconditionReported(t *testing.T) {
	inf := newInferencer()
	inf.Infer(&ast.OldExpression{Inner: lit(ast.IntLiteral, int64(1))}, Context{})
	if len(inf.Diagnostics) != 1 || inf.Diagnostics[0].Code != diagnostics.CodeOldOutsidePostcondition {
		t.Fatalf("expected OLD_OUTSIDE_POSTCONDITION, got %v", inf.Diagnostics)
	}
}

func TestInfer_OldInsidePostconditionAllowed(t *testing.T) {
	inf := newInferencer()
	inf.Infer(&ast.OldExpression{Inner: lit(ast.IntLiteral, int64(1))}, Context{InPostcondition: true})
	if len(inf.Diagnostics) != 0 {
		t.Errorf("expected no diagnostics for old() inside a postcondition, got %v", inf.Diagnostics)
	}
}

func TestInfer_ResultNamesBehaviorOutput(t *testing.T) {
	inf := newInferencer()
	behavior := &typesystem.Behavior{Name: "Deposit", InputFields: typesystem.NewFields()}
	ctx := Context{InPostcondition: true, CurrentBehavior: behavior, OutputType: typesystem.Primitive{Name: typesystem.PrimBoolean}}
	got := inf.Infer(&ast.ResultExpression{}, ctx)
	if !typesystem.Equal(got, typesystem.Primitive{Name: typesystem.PrimBoolean}) {
		t.Errorf("expected result to carry the behavior's output type, got %s", got)
	}
}

func TestInfer_ResultOutsidePostconditionReported(t *testing.T) {
	inf := newInferencer()
	inf.Infer(&ast.ResultExpression{}, Context{})
	if len(inf.Diagnostics) != 1 || inf.Diagnostics[0].Code != diagnostics.CodeResultOutsidePostcondition {
		t.Fatalf("expected RESULT_OUTSIDE_POSTCONDITION, got %v", inf.Diagnostics)
	}
}

func TestInfer_InputResolvesDeclaredField(t *testing.T) {
	inf := newInferencer()
	fields := typesystem.NewFields(typesystem.Field{Name: "amount", Type: typesystem.Primitive{Name: typesystem.PrimDecimal}})
	behavior := &typesystem.Behavior{Name: "Deposit", InputFields: fields}
	got := inf.Infer(&ast.InputExpression{Field: "amount"}, Context{CurrentBehavior: behavior})
	if !typesystem.Equal(got, typesystem.Primitive{Name: typesystem.PrimDecimal}) {
		t.Errorf("expected input.amount to resolve to Decimal, got %s", got)
	}
	if len(inf.Diagnostics) != 0 {
		t.Errorf("expected no diagnostics, got %v", inf.Diagnostics)
	}
}

func TestInfer_InputUndeclaredFieldReported(t *testing.T) {
	inf := newInferencer()
	behavior := &typesystem.Behavior{Name: "Deposit", InputFields: typesystem.NewFields()}
	inf.Infer(&ast.InputExpression{Field: "nope"}, Context{CurrentBehavior: behavior})
	if len(inf.Diagnostics) != 1 || inf.Diagnostics[0].Code != diagnostics.CodeInputInvalidField {
		t.Fatalf("expected INPUT_INVALID_FIELD, got %v", inf.Diagnostics)
	}
}

func TestInfer_QuantifierAllBindsElementType(t *testing.T) {
	inf := newInferencer()
	listVar := &ast.Identifier{Name: "xs"}
	ctx := Context{}.WithLocal("xs", typesystem.List{Element: typesystem.Primitive{Name: typesystem.PrimInt}})
	quant := &ast.QuantifierExpression{
		Kind:       ast.QuantifierAll,
		Var:        "x",
		Collection: listVar,
		Predicate: &ast.BinaryExpression{
			Op:    ">",
			Left:  &ast.Identifier{Name: "x"},
			Right: lit(ast.IntLiteral, int64(0)),
		},
	}
	got := inf.Infer(quant, ctx)
	if !typesystem.Equal(got, typesystem.Primitive{Name: typesystem.PrimBoolean}) {
		t.Errorf("expected all(...) to infer Boolean, got %s", got)
	}
	if len(inf.Diagnostics) != 0 {
		t.Errorf("expected no diagnostics binding the quantifier element type, got %v", inf.Diagnostics)
	}
}

func TestInfer_ConditionalLUBsBranches(t *testing.T) {
	inf := newInferencer()
	expr := &ast.ConditionalExpression{
		Cond: lit(ast.BooleanLiteral, true),
		Then: lit(ast.IntLiteral, int64(1)),
		Else: lit(ast.DecimalLiteral, "2.5"),
	}
	got := inf.Infer(expr, Context{})
	if !typesystem.Equal(got, typesystem.Primitive{Name: typesystem.PrimDecimal}) {
		t.Errorf("expected Int/Decimal branches to LUB to Decimal, got %s", got)
	}
}

func TestRequireBoolean_NonBooleanReported(t *testing.T) {
	inf := newInferencer()
	inf.RequireBoolean(lit(ast.IntLiteral, int64(1)), Context{})
	if len(inf.Diagnostics) != 1 || inf.Diagnostics[0].Code != diagnostics.CodeNotBoolean {
		t.Fatalf("expected NOT_BOOLEAN, got %v", inf.Diagnostics)
	}
}

func TestRequireBoolean_AbsorbingSuppressesCascade(t *testing.T) {
	inf := newInferencer()
	// An undefined identifier infers to Unknown (an absorbing type); using
	// it where a Boolean is required must not compound into a second
	// diagnostic on top of the identifier's own UNDEFINED_VARIABLE.
	inf.RequireBoolean(&ast.Identifier{Name: "nope"}, Context{})
	var notBoolean int
	for _, d := range inf.Diagnostics {
		if d.Code == diagnostics.CodeNotBoolean {
			notBoolean++
		}
	}
	if notBoolean != 0 {
		t.Errorf("expected no NOT_BOOLEAN diagnostic cascading from an already-unknown type, got %d", notBoolean)
	}
}
