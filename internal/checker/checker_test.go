package checker

import (
	"testing"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/config"
	"github.com/idl-tools/semcore/internal/diagnostics"
)

func TestCheck_UndefinedTypeWithSuggestion(t *testing.T) {
	// §8 scenario 1: `entity User { id: Uuid }` should fail with exactly one
	// UNDEFINED_TYPE diagnostic whose help suggests the built-in `UUID`.
	domain := &ast.Domain{
		Name: "Example",
		Entities: []*ast.EntityDecl{
			{
				Name: "User",
				Fields: []*ast.FieldDecl{
					{Name: "id", Type: &ast.ReferenceTypeNode{Parts: []string{"Uuid"}}},
				},
			},
		},
	}

	result := Check(domain, config.Default())

	if result.Success {
		t.Fatal("expected Check to fail on an undefined type")
	}
	var undefined []*diagnostics.Diagnostic
	for _, d := range result.Diagnostics {
		if d.Code == diagnostics.CodeUndefinedType {
			undefined = append(undefined, d)
		}
	}
	if len(undefined) != 1 {
		t.Fatalf("expected exactly one UNDEFINED_TYPE diagnostic, got %d", len(undefined))
	}
	if undefined[0].Help != `Did you mean "UUID"?` {
		t.Errorf(`expected help 'Did you mean "UUID"?', got %q`, undefined[0].Help)
	}
}

func TestCheck_WellFormedDomainSucceeds(t *testing.T) {
	domain := &ast.Domain{
		Name: "Example",
		Entities: []*ast.EntityDecl{
			{
				Name: "Account",
				Fields: []*ast.FieldDecl{
					{Name: "id", Type: &ast.PrimitiveTypeNode{Name: "UUID"}},
					{Name: "balance", Type: &ast.PrimitiveTypeNode{Name: "Decimal"}},
				},
			},
		},
		Behaviors: []*ast.BehaviorDecl{
			{
				Name: "Deposit",
				Input: []*ast.FieldDecl{
					{Name: "amount", Type: &ast.PrimitiveTypeNode{Name: "Decimal"}},
				},
				Output: &ast.PrimitiveTypeNode{Name: "Boolean"},
				Preconditions: []*ast.PredicateDecl{
					{Name: "positive", Expr: &ast.BinaryExpression{
						Op:    ">",
						Left:  &ast.InputExpression{Field: "amount"},
						Right: &ast.Literal{Kind: ast.IntLiteral, Raw: int64(0)},
					}},
				},
			},
		},
	}

	result := Check(domain, config.Default())
	if !result.Success {
		t.Fatalf("expected a well-formed domain to check successfully, got diagnostics: %v", result.Diagnostics)
	}
}

func TestCheck_AmountExceedsInvariant(t *testing.T) {
	// §8 scenario 3: a global invariant comparing a field against a bound
	// should produce a TYPE_MISMATCH-free, successful check when the
	// comparison is well-typed.
	domain := &ast.Domain{
		Name: "Example",
		Entities: []*ast.EntityDecl{
			{
				Name: "Order",
				Fields: []*ast.FieldDecl{
					{Name: "total", Type: &ast.PrimitiveTypeNode{Name: "Decimal"}},
				},
			},
		},
		Invariants: []*ast.InvariantDecl{
			{
				Name: "TotalWithinLimit",
				Expr: &ast.BinaryExpression{
					Op:    "<=",
					Left:  &ast.QualifiedName{Parts: []string{"Order", "total"}},
					Right: &ast.Literal{Kind: ast.DecimalLiteral, Raw: "10000"},
				},
			},
		},
	}

	result := Check(domain, config.Default())
	if !result.Success {
		t.Fatalf("expected invariant check to succeed, got diagnostics: %v", result.Diagnostics)
	}
}

func TestCheck_DuplicateEntityNameFails(t *testing.T) {
	domain := &ast.Domain{
		Name: "Example",
		Entities: []*ast.EntityDecl{
			{Name: "User", Fields: []*ast.FieldDecl{{Name: "id", Type: &ast.PrimitiveTypeNode{Name: "UUID"}}}},
			{Name: "User", Fields: []*ast.FieldDecl{{Name: "id", Type: &ast.PrimitiveTypeNode{Name: "UUID"}}}},
		},
	}
	result := Check(domain, config.Default())
	if result.Success {
		t.Fatal("expected a duplicate entity name to fail the check")
	}
}

func TestCheck_LifecycleValidTransitionsSucceed(t *testing.T) {
	domain := &ast.Domain{
		Name: "Example",
		Entities: []*ast.EntityDecl{
			{
				Name: "Invoice",
				Fields: []*ast.FieldDecl{
					{Name: "status", Type: &ast.ReferenceTypeNode{Parts: []string{"Status"}}},
				},
				Lifecycle: &ast.LifecycleDecl{
					Transitions: []ast.LifecycleTransition{
						{From: "Pending", To: "Active"},
						{From: "Active", To: "Archived"},
						{From: "Archived", To: "Pending"},
					},
				},
			},
		},
	}
	result := Check(domain, config.Default())
	if !result.Success {
		t.Fatalf("unexpected failure for a closed lifecycle loop: %v", result.Diagnostics)
	}
}

func TestCheck_LifecycleStateMisuse(t *testing.T) {
	// §8 scenario 6: a lifecycle transition referencing an undeclared state
	// should surface a diagnostic rather than panicking.
	domain := &ast.Domain{
		Name: "Example",
		Entities: []*ast.EntityDecl{
			{
				Name: "Invoice",
				Fields: []*ast.FieldDecl{
					{Name: "status", Type: &ast.ReferenceTypeNode{Parts: []string{"Status"}}},
				},
				Lifecycle: &ast.LifecycleDecl{
					Transitions: []ast.LifecycleTransition{
						{From: "Draft", To: "Sent"},
					},
				},
			},
		},
	}
	result := Check(domain, config.Default())
	if result.Success {
		t.Fatal("expected an undeclared lifecycle state to fail the check")
	}
	var invalid int
	for _, d := range result.Diagnostics {
		if d.Code == diagnostics.CodeInvalidLifecycleState {
			invalid++
		}
	}
	if invalid != 2 {
		t.Errorf("expected one INVALID_LIFECYCLE_STATE diagnostic per bad endpoint (From and To), got %d", invalid)
	}
}
