package value

// Clone produces a deep, independent copy of v, used by the verifier to
// snapshot `pre` bindings into `old` before any mutation-exposing
// evaluation runs (§4.7 step 2, §8 "old-snapshot integrity": `old(x) ==
// pre[x]` regardless of mutations to `post`).
func Clone(v Value) Value {
	switch vv := v.(type) {
	case List:
		elems := make([]Value, len(vv.Elements))
		for i, e := range vv.Elements {
			elems[i] = Clone(e)
		}
		return List{Elements: elems}
	case Map:
		entries := make([]MapEntry, len(vv.Entries))
		for i, e := range vv.Entries {
			entries[i] = MapEntry{Key: Clone(e.Key), Value: Clone(e.Value)}
		}
		return Map{Entries: entries}
	case Struct:
		fields := make([]StructField, len(vv.Fields))
		for i, f := range vv.Fields {
			fields[i] = StructField{Name: f.Name, Value: Clone(f.Value)}
		}
		return Struct{Name: vv.Name, Fields: fields}
	case Entity:
		return Entity{Struct: Clone(vv.Struct).(Struct)}
	case Optional:
		if !vv.Present {
			return Optional{Present: false}
		}
		return Optional{Present: true, Inner: Clone(vv.Inner)}
	case Set:
		elems := make([]Value, len(vv.Elements))
		for i, e := range vv.Elements {
			elems[i] = Clone(e)
		}
		return Set{Elements: elems}
	case Result:
		if !vv.Success {
			return vv
		}
		return Result{Success: true, Value: Clone(vv.Value)}
	case Bytes:
		cp := make(Bytes, len(vv))
		copy(cp, vv)
		return cp
	default:
		// Every other kind (Int, Decimal, String, Bool, Timestamp, UUID,
		// Duration, Enum, Null, Unit) is immutable, so returning it as-is
		// is already a safe, independent copy.
		return v
	}
}
