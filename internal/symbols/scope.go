package symbols

import "github.com/idl-tools/semcore/internal/ast"

// Handle identifies a Scope inside a SymbolTable's arena. Scopes hold a
// parent handle rather than a parent pointer so the arena has no reference
// cycles (§9 Design Notes: "model scopes as an arena of nodes indexed by
// handle").
type Handle int

// NoHandle is the zero value meaning "no parent" (the root scope's parent).
const NoHandle Handle = -1

// orderedBinding preserves "at most one binding per name" while keeping
// declaration order for deterministic iteration and diagnostics.
type orderedBinding struct {
	name   string
	symbol Symbol
}

// Scope is one node of the lexical scope tree (§3 Data Model: "Scope").
type Scope struct {
	Name     string
	Parent   Handle
	Children []Handle
	Location ast.SourceLocation

	order []orderedBinding
	index map[string]int
}

func newScope(name string, parent Handle, loc ast.SourceLocation) *Scope {
	return &Scope{
		Name:     name,
		Parent:   parent,
		Location: loc,
		index:    make(map[string]int),
	}
}

// define binds name in this scope. Returns the previous symbol's location
// and false if name is already bound here (duplicates are rejected at
// define, per §4.1 invariants; the caller reports DUPLICATE_* diagnostics).
func (s *Scope) define(sym Symbol) (ast.SourceLocation, bool) {
	if i, ok := s.index[sym.Name]; ok {
		return s.order[i].symbol.Location, false
	}
	s.index[sym.Name] = len(s.order)
	s.order = append(s.order, orderedBinding{name: sym.Name, symbol: sym})
	return ast.SourceLocation{}, true
}

// get returns the symbol bound to name directly in this scope.
func (s *Scope) get(name string) (Symbol, bool) {
	i, ok := s.index[name]
	if !ok {
		return Symbol{}, false
	}
	return s.order[i].symbol, true
}

// Names returns every name bound directly in this scope, in declaration
// order.
func (s *Scope) Names() []string {
	names := make([]string, len(s.order))
	for i, b := range s.order {
		names[i] = b.name
	}
	return names
}

// Symbols returns every symbol bound directly in this scope, in
// declaration order.
func (s *Scope) Symbols() []Symbol {
	syms := make([]Symbol, len(s.order))
	for i, b := range s.order {
		syms[i] = b.symbol
	}
	return syms
}
