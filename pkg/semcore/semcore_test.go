package semcore

import (
	"context"
	"testing"

	"github.com/idl-tools/semcore/internal/ast"
)

func wellFormedDomain() *Domain {
	return &Domain{
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
				Name:   "Deposit",
				Input:  []*ast.FieldDecl{{Name: "amount", Type: &ast.PrimitiveTypeNode{Name: "Decimal"}}},
				Output: &ast.PrimitiveTypeNode{Name: "Boolean"},
			},
		},
	}
}

func TestCheck_DelegatesToCheckerAndSucceedsOnAWellFormedDomain(t *testing.T) {
	result := Check(wellFormedDomain())
	if !result.Success {
		t.Fatalf("expected a well-formed domain to succeed, got diagnostics: %v", result.Diagnostics)
	}
	if result.SymbolTable == nil {
		t.Error("expected a populated symbol table")
	}
}

func TestCheckWithConfig_UsesSuppliedConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TypeSuggestionEditDistance = 0
	domain := &Domain{
		Entities: []*ast.EntityDecl{
			{
				Name:   "User",
				Fields: []*ast.FieldDecl{{Name: "id", Type: &ast.ReferenceTypeNode{Parts: []string{"Uuid"}}}},
			},
		},
	}
	result := CheckWithConfig(domain, cfg)
	if result.Success {
		t.Fatal("expected an undefined type reference to fail the check")
	}
	for _, d := range result.Diagnostics {
		if d.Help != "" {
			t.Errorf("expected no suggestion help with TypeSuggestionEditDistance=0, got %q", d.Help)
		}
	}
}

func TestVerify_StaticModeWithNoTestDataSkipsBehaviors(t *testing.T) {
	domain := wellFormedDomain()
	report := Verify(context.Background(), domain, nil, ModeStatic)
	if len(report.Behaviors) != 1 {
		t.Fatalf("expected one behavior report, got %d", len(report.Behaviors))
	}
	if report.Summary.Skipped != 1 {
		t.Errorf("expected the behavior with no test data to be skipped, got %+v", report.Summary)
	}
}

func TestParseTestData_ParsesJSONAndYAML(t *testing.T) {
	jsonRaw := []byte(`{"bindings": {"pre": {"amount": 10}}}`)
	td, err := ParseTestData(jsonRaw)
	if err != nil {
		t.Fatalf("ParseTestData: %v", err)
	}
	if td.Pre == nil {
		t.Fatal("expected pre bindings to be populated")
	}

	yamlRaw := []byte("bindings:\n  pre:\n    amount: 10\n")
	tdYAML, err := ParseTestDataYAML(yamlRaw)
	if err != nil {
		t.Fatalf("ParseTestDataYAML: %v", err)
	}
	if tdYAML.Pre == nil {
		t.Fatal("expected YAML pre bindings to be populated")
	}
}
