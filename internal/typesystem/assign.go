package typesystem

// Equal reports whether two ResolvedType values are structurally equal
// (§3: Assignability "S ⤳ T": reflexive on structural equality).
func Equal(a, b ResolvedType) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch at := a.(type) {
	case Primitive:
		bt, ok := b.(Primitive)
		return ok && at.Name == bt.Name
	case Entity:
		bt, ok := b.(Entity)
		return ok && at.Name == bt.Name
	case Enum:
		bt, ok := b.(Enum)
		return ok && at.Name == bt.Name
	case Struct:
		bt, ok := b.(Struct)
		if !ok {
			return false
		}
		if at.Name != "" || bt.Name != "" {
			return at.Name == bt.Name
		}
		return fieldsEqual(at.Fields, bt.Fields)
	case Union:
		bt, ok := b.(Union)
		return ok && at.Name == bt.Name
	case List:
		bt, ok := b.(List)
		return ok && Equal(at.Element, bt.Element)
	case Map:
		bt, ok := b.(Map)
		return ok && Equal(at.Key, bt.Key) && Equal(at.Value, bt.Value)
	case Optional:
		bt, ok := b.(Optional)
		return ok && Equal(at.Inner, bt.Inner)
	case Function:
		bt, ok := b.(Function)
		if !ok || len(at.Params) != len(bt.Params) {
			return false
		}
		for i := range at.Params {
			if !Equal(at.Params[i], bt.Params[i]) {
				return false
			}
		}
		return Equal(at.Returns, bt.Returns)
	case Behavior:
		bt, ok := b.(Behavior)
		return ok && at.Name == bt.Name
	case Error:
		_, ok := b.(Error)
		return ok
	case Unknown:
		_, ok := b.(Unknown)
		return ok
	case Void:
		_, ok := b.(Void)
		return ok
	default:
		return false
	}
}

func fieldsEqual(a, b *Fields) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, f := range a.List() {
		bt, ok := b.Get(f.Name)
		if !ok || !Equal(f.Type, bt) {
			return false
		}
	}
	return true
}

// IsAbsorbing reports whether t is Unknown or Error: both are universally
// assignable and comparable so a single resolution failure never produces
// a cascade of secondary diagnostics (§7 Error Handling Design).
func IsAbsorbing(t ResolvedType) bool {
	switch t.(type) {
	case Unknown, Error:
		return true
	default:
		return false
	}
}

// Assignable reports whether a value of type src may be used where dst is
// expected: src ⤳ dst (§3 Data Model).
func Assignable(src, dst ResolvedType) bool {
	if src == nil || dst == nil {
		return false
	}
	if IsAbsorbing(src) || IsAbsorbing(dst) {
		return true
	}
	if Equal(src, dst) {
		return true
	}
	if dstOpt, ok := dst.(Optional); ok {
		if srcOpt, ok := src.(Optional); ok {
			return Assignable(srcOpt.Inner, dstOpt.Inner)
		}
		return Assignable(src, dstOpt.Inner)
	}
	if srcPrim, ok := src.(Primitive); ok {
		if dstPrim, ok := dst.(Primitive); ok {
			return srcPrim.Name == PrimInt && dstPrim.Name == PrimDecimal
		}
	}
	if srcList, ok := src.(List); ok {
		if dstList, ok := dst.(List); ok {
			return Assignable(srcList.Element, dstList.Element)
		}
	}
	if srcMap, ok := src.(Map); ok {
		if dstMap, ok := dst.(Map); ok {
			return Assignable(srcMap.Key, dstMap.Key) && Assignable(srcMap.Value, dstMap.Value)
		}
	}
	return false
}

// Comparable reports whether two types may appear on either side of ==/!=.
// Unknown/Error are always comparable; Optional<T> is comparable with T.
func Comparable(a, b ResolvedType) bool {
	if IsAbsorbing(a) || IsAbsorbing(b) {
		return true
	}
	if Equal(a, b) {
		return true
	}
	if aOpt, ok := a.(Optional); ok {
		return Comparable(aOpt.Inner, b)
	}
	if bOpt, ok := b.(Optional); ok {
		return Comparable(a, bOpt.Inner)
	}
	if isNumeric(a) && isNumeric(b) {
		return true
	}
	return false
}

func isNumeric(t ResolvedType) bool {
	p, ok := t.(Primitive)
	return ok && (p.Name == PrimInt || p.Name == PrimDecimal)
}

// Ordered reports whether a type supports <, >, <=, >=: numeric, Timestamp,
// Duration and String.
func Ordered(t ResolvedType) bool {
	p, ok := t.(Primitive)
	if !ok {
		return false
	}
	switch p.Name {
	case PrimInt, PrimDecimal, PrimTimestamp, PrimDuration, PrimString:
		return true
	default:
		return false
	}
}

// Widen computes the numeric result type of a + b under the widening rule
// Int+Decimal -> Decimal. Callers only invoke this once both operands have
// already been confirmed numeric.
func Widen(a, b ResolvedType) ResolvedType {
	ap, aok := a.(Primitive)
	bp, bok := b.(Primitive)
	if aok && bok && ap.Name == PrimDecimal || bok && bp.Name == PrimDecimal {
		return Primitive{Name: PrimDecimal}
	}
	return Primitive{Name: PrimInt}
}

// LUB computes the least upper bound of two branch types for a conditional
// expression: if one side is assignable to the other, the wider type wins;
// otherwise the branches are incompatible and the expression's type is an
// anonymous union of both (§4.3 inference rule for `c ? t : e`). The union's
// variants are named "Then" and "Else"; a non-struct branch type is wrapped
// in a struct with a single `value` field.
func LUB(t, e ResolvedType) ResolvedType {
	if IsAbsorbing(t) {
		return e
	}
	if IsAbsorbing(e) {
		return t
	}
	if Equal(t, e) {
		return t
	}
	if Assignable(e, t) {
		return t
	}
	if Assignable(t, e) {
		return e
	}
	variants := NewUnionVariants()
	variants.Append("Then", wrapAsStruct(t))
	variants.Append("Else", wrapAsStruct(e))
	return Union{Variants: variants}
}

func wrapAsStruct(t ResolvedType) Struct {
	if s, ok := t.(Struct); ok {
		return s
	}
	return Struct{Fields: NewFields(Field{Name: "value", Type: t})}
}
