package bindings

import (
	"testing"

	"github.com/idl-tools/semcore/internal/value"
)

func TestParseTestData_PromotesIntAndDecimal(t *testing.T) {
	raw := []byte(`{
		"intent": "deposit increases balance",
		"bindings": {
			"pre": {"balance": 100, "rate": 1.5},
			"post": {"balance": 150}
		}
	}`)
	td, err := ParseTestData(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if td.Intent != "deposit increases balance" {
		t.Errorf("expected intent preserved, got %q", td.Intent)
	}
	if !value.Equal(td.Pre["balance"], value.NewInt(100)) {
		t.Errorf("expected balance promoted to Int(100), got %v (%T)", td.Pre["balance"], td.Pre["balance"])
	}
	if !value.Equal(td.Pre["rate"], value.NewDecimal(1.5)) {
		t.Errorf("expected rate promoted to Decimal(1.5), got %v (%T)", td.Pre["rate"], td.Pre["rate"])
	}
}

func TestParseTestData_PromotesUUIDAndTimestampShapedStrings(t *testing.T) {
	raw := []byte(`{
		"bindings": {
			"pre": {
				"id": "11111111-1111-1111-1111-111111111111",
				"createdAt": "2026-01-15T10:30:00Z",
				"label": "not-a-uuid"
			}
		}
	}`)
	td, err := ParseTestData(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := td.Pre["id"].(value.UUID); !ok {
		t.Errorf("expected id promoted to UUID, got %T", td.Pre["id"])
	}
	if _, ok := td.Pre["createdAt"].(value.Timestamp); !ok {
		t.Errorf("expected createdAt promoted to Timestamp, got %T", td.Pre["createdAt"])
	}
	if _, ok := td.Pre["label"].(value.String); !ok {
		t.Errorf("expected label to remain a plain String, got %T", td.Pre["label"])
	}
}

func TestParseTestData_Scenarios(t *testing.T) {
	raw := []byte(`{
		"scenarios": [
			{
				"name": "happy path",
				"given": {"balance": 0},
				"when": {"amount": 50},
				"expected": {"success": true, "result": {"balance": 50}}
			}
		]
	}`)
	td, err := ParseTestData(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(td.Scenarios) != 1 {
		t.Fatalf("expected one scenario, got %d", len(td.Scenarios))
	}
	sc := td.Scenarios[0]
	if sc.Name != "happy path" {
		t.Errorf("expected scenario name preserved, got %q", sc.Name)
	}
	if !sc.Expected.HasSuccess || !sc.Expected.Success {
		t.Error("expected success=true recorded on the scenario's expected outcome")
	}
	if !sc.Expected.HasResult {
		t.Error("expected a result recorded on the scenario's expected outcome")
	}
}

func TestParseTestData_MalformedJSONIsStructuralError(t *testing.T) {
	_, err := ParseTestData([]byte(`{not valid json`))
	if err == nil {
		t.Fatal("expected malformed JSON to return an error")
	}
	if _, ok := err.(*ConversionError); !ok {
		t.Errorf("expected a *ConversionError, got %T", err)
	}
}

func TestParseTestDataYAML_PromotesNumbersAndNestedMappings(t *testing.T) {
	raw := []byte(`
intent: deposit increases balance
bindings:
  pre:
    balance: 100
    rate: 1.5
    owner:
      name: Alice
      verified: true
`)
	td, err := ParseTestDataYAML(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if td.Intent != "deposit increases balance" {
		t.Errorf("expected intent preserved, got %q", td.Intent)
	}
	if !value.Equal(td.Pre["balance"], value.NewInt(100)) {
		t.Errorf("expected balance promoted to Int(100), got %v (%T)", td.Pre["balance"], td.Pre["balance"])
	}
	if !value.Equal(td.Pre["rate"], value.NewDecimal(1.5)) {
		t.Errorf("expected rate promoted to Decimal(1.5), got %v (%T)", td.Pre["rate"], td.Pre["rate"])
	}
	owner, ok := td.Pre["owner"].(value.Struct)
	if !ok {
		t.Fatalf("expected owner to be a Struct, got %T", td.Pre["owner"])
	}
	name, ok := owner.Get("name")
	if !ok || name != value.String("Alice") {
		t.Errorf("expected nested owner.name to round-trip as Alice, got %+v (ok=%v)", name, ok)
	}
}

func TestParseTestDataYAML_NonMappingRootIsError(t *testing.T) {
	_, err := ParseTestDataYAML([]byte(`- 1`))
	if err == nil {
		t.Fatal("expected a non-mapping YAML root to return an error")
	}
}

func TestParseTestDataYAML_MalformedYAMLIsStructuralError(t *testing.T) {
	_, err := ParseTestDataYAML([]byte("bindings:\n  pre: [1, 2\n"))
	if err == nil {
		t.Fatal("expected malformed YAML to return an error")
	}
}

func TestMaterialize_OldIsASnapshotNotAnAlias(t *testing.T) {
	td := &TestData{Pre: map[string]value.Value{
		"items": value.List{Elements: []value.Value{value.NewInt(1), value.NewInt(2)}},
	}}
	b := Materialize(td)

	live := b.Pre["items"].(value.List)
	live.Elements[0] = value.NewInt(99)

	old := b.Old["items"].(value.List)
	if !value.Equal(old.Elements[0], value.NewInt(1)) {
		t.Error("expected old's snapshot to be unaffected by later mutation of the live binding's backing slice")
	}
}
