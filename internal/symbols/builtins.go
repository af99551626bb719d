package symbols

import (
	"github.com/idl-tools/semcore/internal/typesystem"
)

// initBuiltins preloads the root scope with the fixed primitive names,
// stdlib functions and the common Status enum (§4.1), mirroring the
// teacher's SymbolTable.InitBuiltins prelude population.
func (st *SymbolTable) initBuiltins() {
	root := st.Root()
	prim := func(name typesystem.PrimitiveName) typesystem.ResolvedType {
		return typesystem.Primitive{Name: name}
	}

	for _, name := range []typesystem.PrimitiveName{
		typesystem.PrimString, typesystem.PrimInt, typesystem.PrimDecimal,
		typesystem.PrimBoolean, typesystem.PrimTimestamp, typesystem.PrimUUID,
		typesystem.PrimDuration,
	} {
		st.DefineIn(root, Symbol{
			Name:         string(name),
			Kind:         KindType,
			ResolvedType: prim(name),
			Modifiers:    map[Modifier]bool{ModImmutable: true},
		})
	}

	status := typesystem.Enum{Name: "Status", Variants: []string{"Active", "Inactive", "Pending", "Archived"}}
	st.DefineIn(root, Symbol{
		Name: "Status", Kind: KindType, ResolvedType: status,
		Modifiers: map[Modifier]bool{ModImmutable: true},
	})

	stdlib := []struct {
		name string
		ret  typesystem.ResolvedType
	}{
		{"now", prim(typesystem.PrimTimestamp)},
		{"uuid", prim(typesystem.PrimUUID)},
		{"today", prim(typesystem.PrimTimestamp)},
		{"hash", prim(typesystem.PrimString)},
		{"random", prim(typesystem.PrimDecimal)},
	}
	for _, fn := range stdlib {
		st.DefineIn(root, Symbol{
			Name:         fn.name,
			Kind:         KindVariable,
			ResolvedType: typesystem.Function{Params: nil, Returns: fn.ret},
			Modifiers:    map[Modifier]bool{ModImmutable: true},
		})
	}
}
