// Package inference implements the Expression Inferencer (§4.3): a total
// function from expression AST + context to ResolvedType, grounded on the
// teacher's InferWithContext/InferenceContext shape in
// internal/analyzer/inference.go, adapted from Hindley-Milner unification
// to this language's simpler structural assignability.
package inference

import "github.com/idl-tools/semcore/internal/typesystem"

// Context carries the ambient state the inference rules for `old`,
// `result` and `input` depend on (§4.3).
type Context struct {
	InPostcondition bool
	CurrentBehavior *typesystem.Behavior
	OutputType      typesystem.ResolvedType
	Locals          map[string]typesystem.ResolvedType
}

// WithLocal returns a copy of c with name bound to t, used when entering a
// lambda or quantifier body so the binding doesn't leak to sibling
// expressions.
func (c Context) WithLocal(name string, t typesystem.ResolvedType) Context {
	locals := make(map[string]typesystem.ResolvedType, len(c.Locals)+1)
	for k, v := range c.Locals {
		locals[k] = v
	}
	locals[name] = t
	c.Locals = locals
	return c
}

// Lookup resolves name against locals only (the identifier rule falls
// back to the symbol table itself).
func (c Context) Lookup(name string) (typesystem.ResolvedType, bool) {
	t, ok := c.Locals[name]
	return t, ok
}
