// Package env implements the evaluator's lexical Environment, grounded on
// the teacher's Environment (internal/evaluator/environment.go): an
// outer-chained variable store. Unlike the teacher's single "variables"
// store, this Environment also carries the three pseudo-variable
// namespaces §4.5 names — old snapshots, the postcondition `result`
// binding, and the current `input` record — since those have dedicated
// lookup rules that a plain Get/Set would not express.
package env

import "github.com/idl-tools/semcore/internal/value"

// Environment is one lexical scope of bindings during expression
// evaluation.
type Environment struct {
	store  map[string]value.Value
	old    map[string]value.Value
	result value.Value
	input  value.Value
	outer  *Environment
}

// New builds a root environment.
func New() *Environment {
	return &Environment{store: make(map[string]value.Value)}
}

// NewEnclosed builds a child environment of outer, used when entering a
// lambda or quantifier body so its bound variable doesn't leak to
// sibling expressions.
func NewEnclosed(outer *Environment) *Environment {
	e := New()
	e.outer = outer
	return e
}

// Get looks up name, walking outward through enclosing environments.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.store[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Set binds name to val in this environment.
func (e *Environment) Set(name string, val value.Value) {
	e.store[name] = val
}

// SetOld records the pre-state snapshot `old` resolves name against. Old
// bindings are only ever set on the root environment the verifier builds
// for a behavior's postcondition; SetOld walks to it through root().
func (e *Environment) SetOld(name string, val value.Value) {
	e.root().old[name] = val
}

// GetOld looks up the `old(name)` snapshot.
func (e *Environment) GetOld(name string) (value.Value, bool) {
	r := e.root()
	if r.old == nil {
		return nil, false
	}
	v, ok := r.old[name]
	return v, ok
}

// SetResult records the `result` binding for a postcondition environment.
func (e *Environment) SetResult(val value.Value) {
	e.root().result = val
}

// Result returns the `result` binding, if one was set.
func (e *Environment) Result() (value.Value, bool) {
	r := e.root()
	return r.result, r.result != nil
}

// SetInput records the `input` record bound values are read through
// `input.field`.
func (e *Environment) SetInput(val value.Value) {
	e.root().input = val
}

// Input returns the bound `input` record, if one was set.
func (e *Environment) Input() (value.Value, bool) {
	r := e.root()
	return r.input, r.input != nil
}

// OldView returns an environment whose Get resolves against the old
// snapshot namespace instead of the live store, used to evaluate the
// expression inside `old(...)`. Old snapshots are flat (behavior input
// variables only), so the returned environment has no outer chain.
func (e *Environment) OldView() *Environment {
	r := e.root()
	return &Environment{store: r.old}
}

func (e *Environment) root() *Environment {
	r := e
	for r.outer != nil {
		r = r.outer
	}
	if r.old == nil {
		r.old = make(map[string]value.Value)
	}
	return r
}
