package typesystem

import "testing"

func TestAssignable_Reflexive(t *testing.T) {
	types := []ResolvedType{
		Primitive{Name: PrimString},
		Primitive{Name: PrimInt},
		Entity{Name: "User"},
		Enum{Name: "Status", Variants: []string{"Active"}},
		List{Element: Primitive{Name: PrimInt}},
		Optional{Inner: Primitive{Name: PrimString}},
	}
	for _, typ := range types {
		if !Assignable(typ, typ) {
			t.Errorf("expected %s assignable to itself", typ)
		}
	}
}

func TestAssignable_UnknownIsUniversal(t *testing.T) {
	unk := Unknown{}
	str := Primitive{Name: PrimString}
	if !Assignable(unk, str) {
		t.Error("expected Unknown assignable to String")
	}
	if !Assignable(str, unk) {
		t.Error("expected String assignable to Unknown")
	}
}

func TestAssignable_ErrorIsUniversal(t *testing.T) {
	errT := Error{Message: "boom"}
	ent := Entity{Name: "Order"}
	if !Assignable(errT, ent) {
		t.Error("expected Error assignable to Entity")
	}
	if !Assignable(ent, errT) {
		t.Error("expected Entity assignable to Error")
	}
}

func TestAssignable_IntWidensToDecimal(t *testing.T) {
	if !Assignable(Primitive{Name: PrimInt}, Primitive{Name: PrimDecimal}) {
		t.Error("expected Int assignable to Decimal")
	}
	if Assignable(Primitive{Name: PrimDecimal}, Primitive{Name: PrimInt}) {
		t.Error("did not expect Decimal assignable to Int")
	}
}

func TestAssignable_NoOtherCoercions(t *testing.T) {
	if Assignable(Primitive{Name: PrimString}, Primitive{Name: PrimInt}) {
		t.Error("did not expect String assignable to Int")
	}
	if Assignable(Primitive{Name: PrimBoolean}, Primitive{Name: PrimDecimal}) {
		t.Error("did not expect Boolean assignable to Decimal")
	}
}

func TestAssignable_ToOptional(t *testing.T) {
	str := Primitive{Name: PrimString}
	optStr := Optional{Inner: str}
	if !Assignable(str, optStr) {
		t.Error("expected String assignable to Optional<String>")
	}
	if !Assignable(optStr, optStr) {
		t.Error("expected Optional<String> assignable to itself")
	}
}

func TestAssignable_ListAndMapCovariance(t *testing.T) {
	intList := List{Element: Primitive{Name: PrimInt}}
	decList := List{Element: Primitive{Name: PrimDecimal}}
	if !Assignable(intList, decList) {
		t.Error("expected List<Int> assignable to List<Decimal> via element widening")
	}

	intStrMap := Map{Key: Primitive{Name: PrimInt}, Value: Primitive{Name: PrimString}}
	decStrMap := Map{Key: Primitive{Name: PrimDecimal}, Value: Primitive{Name: PrimString}}
	if !Assignable(intStrMap, decStrMap) {
		t.Error("expected Map<Int,String> assignable to Map<Decimal,String>")
	}
}

func TestComparable_OptionalWithInner(t *testing.T) {
	str := Primitive{Name: PrimString}
	optStr := Optional{Inner: str}
	if !Comparable(optStr, str) {
		t.Error("expected Optional<String> comparable with String")
	}
}

func TestComparable_NumericCrossComparison(t *testing.T) {
	if !Comparable(Primitive{Name: PrimInt}, Primitive{Name: PrimDecimal}) {
		t.Error("expected Int comparable with Decimal")
	}
}

func TestOrdered(t *testing.T) {
	ordered := []PrimitiveName{PrimInt, PrimDecimal, PrimTimestamp, PrimDuration, PrimString}
	for _, name := range ordered {
		if !Ordered(Primitive{Name: name}) {
			t.Errorf("expected %s to be ordered", name)
		}
	}
	if Ordered(Primitive{Name: PrimBoolean}) {
		t.Error("did not expect Boolean to be ordered")
	}
	if Ordered(Entity{Name: "User"}) {
		t.Error("did not expect Entity to be ordered")
	}
}

func TestLUB_CompatibleBranchesPicksWider(t *testing.T) {
	got := LUB(Primitive{Name: PrimInt}, Primitive{Name: PrimDecimal})
	if !Equal(got, Primitive{Name: PrimDecimal}) {
		t.Errorf("expected LUB(Int, Decimal) = Decimal, got %s", got)
	}
}

func TestLUB_AbsorbingSideDoesNotDominate(t *testing.T) {
	str := Primitive{Name: PrimString}
	got := LUB(Unknown{}, str)
	if !Equal(got, str) {
		t.Errorf("expected LUB(Unknown, String) = String, got %s", got)
	}
}

func TestLUB_IncompatibleBranchesYieldUnion(t *testing.T) {
	got := LUB(Primitive{Name: PrimString}, Entity{Name: "Order"})
	if _, ok := got.(Union); !ok {
		t.Errorf("expected incompatible branches to produce a Union, got %T", got)
	}
}

func TestFields_OrderPreserved(t *testing.T) {
	f := NewFields(
		Field{Name: "id", Type: Primitive{Name: PrimUUID}},
		Field{Name: "name", Type: Primitive{Name: PrimString}},
		Field{Name: "age", Type: Primitive{Name: PrimInt}},
	)
	names := f.Names()
	want := []string{"id", "name", "age"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("field %d: expected %s, got %s", i, n, names[i])
		}
	}
}

func TestFields_AppendOverwritesInPlace(t *testing.T) {
	f := NewFields(Field{Name: "status", Type: Primitive{Name: PrimString}})
	f.Append("status", Primitive{Name: PrimBoolean})
	if f.Len() != 1 {
		t.Fatalf("expected re-appending an existing name not to grow Fields, got len %d", f.Len())
	}
	got, _ := f.Get("status")
	if !Equal(got, Primitive{Name: PrimBoolean}) {
		t.Errorf("expected overwritten type Boolean, got %s", got)
	}
}
