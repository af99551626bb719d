package value

import "math/big"

// Equal performs a deep, recursive equality check between two Values,
// grounded on the teacher's ObjectsEqual (internal/evaluator/objects_equal.go).
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case Int:
		if bv, ok := b.(Int); ok {
			return av.Cmp(bv.Int) == 0
		}
		if bv, ok := b.(Decimal); ok {
			return new(big.Rat).SetInt(av.Int).Cmp(bv.Rat) == 0
		}
	case Decimal:
		if bv, ok := b.(Decimal); ok {
			return av.Cmp(bv.Rat) == 0
		}
		if bv, ok := b.(Int); ok {
			return av.Cmp(new(big.Rat).SetInt(bv.Int)) == 0
		}
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Timestamp:
		bv, ok := b.(Timestamp)
		return ok && av.String() == bv.String()
	case UUID:
		bv, ok := b.(UUID)
		return ok && av == bv
	case Duration:
		bv, ok := b.(Duration)
		return ok && av == bv
	case Bytes:
		bv, ok := b.(Bytes)
		return ok && string(av) == string(bv)
	case Unit:
		_, ok := b.(Unit)
		return ok
	case Set:
		bv, ok := b.(Set)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for _, e := range av.Elements {
			if !bv.Has(e) {
				return false
			}
		}
		return true
	case Result:
		bv, ok := b.(Result)
		if !ok || av.Success != bv.Success {
			return false
		}
		if av.Success {
			return Equal(av.Value, bv.Value)
		}
		if av.Error == nil || bv.Error == nil {
			return av.Error == bv.Error
		}
		return *av.Error == *bv.Error
	case Null:
		_, ok := b.(Null)
		return ok
	case Optional:
		if bv, ok := b.(Optional); ok {
			if av.Present != bv.Present {
				return false
			}
			if !av.Present {
				return true
			}
			return Equal(av.Inner, bv.Inner)
		}
		if _, ok := b.(Null); ok {
			return !av.Present
		}
		return av.Present && Equal(av.Inner, b)
	case List:
		bv, ok := b.(List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case Map:
		bv, ok := b.(Map)
		if !ok || len(av.Entries) != len(bv.Entries) {
			return false
		}
		for _, e := range av.Entries {
			other, found := bv.Get(e.Key)
			if !found || !Equal(e.Value, other) {
				return false
			}
		}
		return true
	case Struct:
		bv, ok := b.(Struct)
		if !ok || av.Name != bv.Name || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for _, f := range av.Fields {
			other, found := bv.Get(f.Name)
			if !found || !Equal(f.Value, other) {
				return false
			}
		}
		return true
	case Entity:
		bv, ok := b.(Entity)
		return ok && Equal(av.Struct, bv.Struct)
	case Enum:
		bv, ok := b.(Enum)
		return ok && av.TypeName == bv.TypeName && av.Variant == bv.Variant
	}
	if _, ok := a.(Null); !ok {
		if bOpt, ok := b.(Optional); ok {
			return bOpt.Present && Equal(a, bOpt.Inner)
		}
	}
	return false
}
