package symbols

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/typesystem"
)

// SymbolTable is the scope arena plus a LIFO cursor of "current" scopes
// (§4.1). The root scope (index 0) is pre-populated by initBuiltins and is
// never popped: exit_scope() on root is a no-op.
type SymbolTable struct {
	arena  []*Scope
	stack  []Handle // enter/exit_scope cursor; stack[0] is always the root
	cached map[string]Handle
}

// NewSymbolTable creates a table whose root scope already carries the
// built-in primitives, stdlib functions and the common Status enum
// (§4.1: "built-ins occupy the root scope and are immutable").
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{cached: make(map[string]Handle)}
	root := newScope("root", NoHandle, ast.SourceLocation{})
	st.arena = append(st.arena, root)
	st.stack = []Handle{0}
	st.initBuiltins()
	return st
}

func (st *SymbolTable) scope(h Handle) *Scope {
	return st.arena[h]
}

// Current returns the handle of the innermost currently-open scope.
func (st *SymbolTable) Current() Handle {
	return st.stack[len(st.stack)-1]
}

// Root returns the handle of the root (prelude) scope.
func (st *SymbolTable) Root() Handle {
	return 0
}

// EnterScope pushes a new child scope of Current() and returns its handle.
func (st *SymbolTable) EnterScope(name string, loc ast.SourceLocation) Handle {
	parent := st.Current()
	h := Handle(len(st.arena))
	st.arena = append(st.arena, newScope(name, parent, loc))
	st.arena[parent].Children = append(st.arena[parent].Children, h)
	st.stack = append(st.stack, h)
	return h
}

// ExitScope pops the innermost scope. A no-op at the root (§4.1 invariant).
func (st *SymbolTable) ExitScope() {
	if len(st.stack) <= 1 {
		return
	}
	st.stack = st.stack[:len(st.stack)-1]
}

// Define binds name in the current scope. ok is false when name is already
// bound in this scope; prevLoc then carries the original declaration's
// location so the caller can attach it as related_information on a
// DUPLICATE_* diagnostic.
func (st *SymbolTable) Define(name string, kind Kind, typ typesystem.ResolvedType, loc ast.SourceLocation, modifiers map[Modifier]bool, doc string) (prevLoc ast.SourceLocation, ok bool) {
	sym := Symbol{
		Name:          name,
		Kind:          kind,
		ResolvedType:  typ,
		Location:      loc,
		Modifiers:     modifiers,
		Documentation: doc,
	}
	return st.scope(st.Current()).define(sym)
}

// UpdateResolvedType replaces the ResolvedType of an existing binding in
// scope h without treating it as a duplicate define. Used once a forward
// declaration's placeholder (§4.4 phase 1) has been resolved to its real
// type (§4.4 phase 2).
func (st *SymbolTable) UpdateResolvedType(h Handle, name string, t typesystem.ResolvedType) bool {
	sc := st.scope(h)
	i, ok := sc.index[name]
	if !ok {
		return false
	}
	sc.order[i].symbol.ResolvedType = t
	return true
}

// DefineIn binds a fully-built Symbol directly into the given scope handle
// (used by the resolver/checker when binding fields into an entity's own
// scope rather than whatever scope happens to be current).
func (st *SymbolTable) DefineIn(h Handle, sym Symbol) (prevLoc ast.SourceLocation, ok bool) {
	return st.scope(h).define(sym)
}

// Lookup walks the parent chain starting at the current scope and returns
// the first binding found.
func (st *SymbolTable) Lookup(name string) (Symbol, bool) {
	return st.LookupFrom(st.Current(), name)
}

// LookupFrom walks the parent chain starting at h.
func (st *SymbolTable) LookupFrom(h Handle, name string) (Symbol, bool) {
	for h != NoHandle {
		if sym, ok := st.scope(h).get(name); ok {
			return sym, true
		}
		h = st.scope(h).Parent
	}
	return Symbol{}, false
}

// LookupLocal returns a binding only if it exists directly in scope h,
// without walking parents.
func (st *SymbolTable) LookupLocal(h Handle, name string) (Symbol, bool) {
	return st.scope(h).get(name)
}

// LookupQualified resolves parts[0] via Lookup, then steps into
// Entity/Struct fields or Enum variants for each subsequent part (§4.1).
func (st *SymbolTable) LookupQualified(parts []string) (Symbol, error) {
	if len(parts) == 0 {
		return Symbol{}, fmt.Errorf("empty qualified name")
	}
	sym, ok := st.Lookup(parts[0])
	if !ok {
		return Symbol{}, typesystem.NewSymbolNotFoundError(parts[0])
	}
	cur := sym
	for _, part := range parts[1:] {
		next, err := StepInto(cur.ResolvedType, part)
		if err != nil {
			return Symbol{}, err
		}
		cur = Symbol{
			Name:         part,
			Kind:         KindField,
			ResolvedType: next,
			Location:     cur.Location,
		}
	}
	return cur, nil
}

// StepInto steps one qualified-name segment into a structural type: a
// field on Entity/Struct, a variant tag on Enum, or through an Optional
// wrapper. Shared by SymbolTable.LookupQualified and the type resolver's
// own qualified reference resolution.
func StepInto(t typesystem.ResolvedType, part string) (typesystem.ResolvedType, error) {
	switch rt := t.(type) {
	case typesystem.Entity:
		if f, ok := rt.Fields.Get(part); ok {
			return f, nil
		}
	case typesystem.Struct:
		if f, ok := rt.Fields.Get(part); ok {
			return f, nil
		}
	case typesystem.Enum:
		for _, v := range rt.Variants {
			if v == part {
				return rt, nil
			}
		}
	case typesystem.Optional:
		inner, err := StepInto(rt.Inner, part)
		if err != nil {
			return nil, err
		}
		return typesystem.Optional{Inner: inner}, nil
	case typesystem.Unknown, typesystem.Error:
		return typesystem.Unknown{}, nil
	}
	return nil, typesystem.NewSymbolNotFoundError(part)
}

// ScopeAt returns the innermost scope whose recorded location contains loc
// (§4.1: "scope_at(location)"). Scopes are visited in a simple top-down
// arena scan rather than a precomputed interval tree: the symbol table is
// rebuilt once per check()/verify() call and never queried at a rate that
// would make the O(n) scan show up, so the richer structure the design
// notes mention is deferred until a caller actually needs position->scope
// lookups at volume (e.g. an LSP, which is out of scope here).
func (st *SymbolTable) ScopeAt(loc ast.SourceLocation) Handle {
	best := st.Root()
	bestSize := -1
	for h, sc := range st.arena {
		if sc.Location.File == "" {
			continue
		}
		if !sc.Location.Contains(loc) {
			continue
		}
		size := (sc.Location.EndLine-sc.Location.Line)*100000 + (sc.Location.EndColumn - sc.Location.Column)
		if bestSize == -1 || size < bestSize {
			best = Handle(h)
			bestSize = size
		}
	}
	return best
}

// AllNames returns every name visible from h, walking outward, nearest
// scope first. Used by suggestion matching (§4.3).
func (st *SymbolTable) AllNames(h Handle) []string {
	seen := make(map[string]bool)
	var names []string
	for h != NoHandle {
		for _, n := range st.scope(h).Names() {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
		h = st.scope(h).Parent
	}
	return names
}
