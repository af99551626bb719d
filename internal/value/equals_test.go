package value

import "testing"

func TestEqual_CloneProducesEqualValue(t *testing.T) {
	original := List{Elements: []Value{
		NewInt(1),
		Struct{Name: "Order", Fields: []StructField{
			{Name: "id", Value: UUID("11111111-1111-1111-1111-111111111111")},
			{Name: "items", Value: List{Elements: []Value{String("widget"), String("gadget")}}},
		}},
		Optional{Present: true, Inner: NewDecimal(4.5)},
		Optional{Present: false},
	}}
	cloned := Clone(original)
	if !Equal(cloned, original) {
		t.Fatalf("expected Equal(Clone(v), v) to hold, got clone=%s original=%s", cloned, original)
	}
}

func TestEqual_IntDecimalCrossEquality(t *testing.T) {
	if !Equal(NewInt(3), NewDecimal(3)) {
		t.Error("expected NewInt(3) == NewDecimal(3)")
	}
	if Equal(NewInt(3), NewDecimal(3.5)) {
		t.Error("did not expect NewInt(3) == NewDecimal(3.5)")
	}
}

func TestEqual_OptionalAndNull(t *testing.T) {
	if !Equal(Optional{Present: false}, Null{}) {
		t.Error("expected an absent Optional equal to Null")
	}
	if Equal(Optional{Present: true, Inner: NewInt(1)}, Null{}) {
		t.Error("did not expect a present Optional equal to Null")
	}
}

func TestEqual_MapOrderIndependent(t *testing.T) {
	a := Map{Entries: []MapEntry{
		{Key: String("a"), Value: NewInt(1)},
		{Key: String("b"), Value: NewInt(2)},
	}}
	b := Map{Entries: []MapEntry{
		{Key: String("b"), Value: NewInt(2)},
		{Key: String("a"), Value: NewInt(1)},
	}}
	if !Equal(a, b) {
		t.Error("expected maps with the same entries in different insertion order to be equal")
	}
}

func TestEqual_SetMembership(t *testing.T) {
	a := Set{Elements: []Value{NewInt(1), NewInt(2), NewInt(3)}}
	b := Set{Elements: []Value{NewInt(3), NewInt(2), NewInt(1)}}
	if !Equal(a, b) {
		t.Error("expected sets with the same members to be equal regardless of order")
	}
	c := Set{Elements: []Value{NewInt(1), NewInt(2)}}
	if Equal(a, c) {
		t.Error("did not expect sets of different size to be equal")
	}
}

func TestEqual_ResultSuccessAndFailure(t *testing.T) {
	okA := Result{Success: true, Value: NewInt(42)}
	okB := Result{Success: true, Value: NewInt(42)}
	if !Equal(okA, okB) {
		t.Error("expected two successful Results carrying the same value to be equal")
	}
	errA := Result{Success: false, Error: &ResultError{Code: "X", Message: "boom"}}
	errB := Result{Success: false, Error: &ResultError{Code: "X", Message: "boom"}}
	if !Equal(errA, errB) {
		t.Error("expected two failed Results with the same error payload to be equal")
	}
	if Equal(okA, errA) {
		t.Error("did not expect a success Result equal to a failure Result")
	}
}

func TestEqual_EntityByFieldsAndName(t *testing.T) {
	a := Entity{Struct: Struct{Name: "User", Fields: []StructField{{Name: "id", Value: NewInt(1)}}}}
	b := Entity{Struct: Struct{Name: "User", Fields: []StructField{{Name: "id", Value: NewInt(1)}}}}
	if !Equal(a, b) {
		t.Error("expected two entities with identical name and fields to be equal")
	}
}

func TestClone_ListIndependence(t *testing.T) {
	original := List{Elements: []Value{NewInt(1), NewInt(2)}}
	cloned := Clone(original).(List)
	cloned.Elements[0] = NewInt(99)
	if !Equal(original.Elements[0], NewInt(1)) {
		t.Error("mutating a clone's elements must not affect the original")
	}
}

func TestClone_BytesIndependence(t *testing.T) {
	original := Bytes{1, 2, 3}
	cloned := Clone(original).(Bytes)
	cloned[0] = 99
	if original[0] != 1 {
		t.Error("mutating cloned Bytes must not affect the original")
	}
}
