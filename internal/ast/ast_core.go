// Package ast defines the AST contract the semantic core consumes.
//
// Nothing in this package parses source text: a domain's AST is built by an
// external parser and handed to Check/Verify already fully formed. The core
// only ever reads these nodes.
package ast

import "fmt"

// SourceLocation attaches a span of source text to every node, symbol and
// diagnostic produced from it.
type SourceLocation struct {
	File      string
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Contains reports whether the receiver fully encloses other, i.e. other ⊂ l.
// Used by the symbol table to find the innermost scope for a query position.
func (l SourceLocation) Contains(other SourceLocation) bool {
	if l.File != other.File {
		return false
	}
	if other.Line < l.Line || (other.Line == l.Line && other.Column < l.Column) {
		return false
	}
	if other.EndLine > l.EndLine || (other.EndLine == l.EndLine && other.EndColumn > l.EndColumn) {
		return false
	}
	return true
}

// Node is the base interface implemented by every AST node.
type Node interface {
	Location() SourceLocation
}

// Domain is the root node of a parsed IDL module.
type Domain struct {
	Name       string
	Version    string
	Types      []*TypeDecl
	Entities   []*EntityDecl
	Behaviors  []*BehaviorDecl
	Invariants []*InvariantDecl
	Policies   []*PolicyDecl
	Views      []*ViewDecl
	Scenarios  []*ScenarioDecl
	Loc        SourceLocation
}

func (d *Domain) Location() SourceLocation { return d.Loc }

// FieldDecl is a single named, typed field of an entity, struct or behavior
// input list. Order of appearance is significant and preserved by callers.
type FieldDecl struct {
	Name     string
	Type     TypeNode
	Optional bool
	Modifiers []string
	Doc      string
	Loc      SourceLocation
}

func (f *FieldDecl) Location() SourceLocation { return f.Loc }

// TypeDecl is a top-level named type declaration: `type Name = <body>`.
type TypeDecl struct {
	Name string
	Body TypeNode
	Loc  SourceLocation
}

func (t *TypeDecl) Location() SourceLocation { return t.Loc }

// LifecycleTransition is one edge `From -> To` in an entity's lifecycle.
type LifecycleTransition struct {
	From string
	To   string
	Loc  SourceLocation
}

// LifecycleDecl is the full transition set declared for an entity.
type LifecycleDecl struct {
	Transitions []LifecycleTransition
	Loc         SourceLocation
}

// EntityDecl declares a named record with fields, invariants and an optional
// lifecycle state machine.
type EntityDecl struct {
	Name       string
	Fields     []*FieldDecl
	Invariants []*InvariantDecl
	Lifecycle  *LifecycleDecl
	Loc        SourceLocation
}

func (e *EntityDecl) Location() SourceLocation { return e.Loc }

// PredicateDecl is a single named Boolean predicate: a precondition,
// postcondition, behavior invariant, global invariant, policy condition or
// `then` assertion all share this shape.
type PredicateDecl struct {
	Name string
	Expr Expression
	Loc  SourceLocation
}

func (p *PredicateDecl) Location() SourceLocation { return p.Loc }

// InvariantDecl is a standalone global invariant or an entity/behavior-scoped
// one; Name is empty for anonymous invariants.
type InvariantDecl struct {
	Name string
	Expr Expression
	Loc  SourceLocation
}

func (i *InvariantDecl) Location() SourceLocation { return i.Loc }

// BehaviorDecl declares a named operation with input fields, a success
// output type, declared error kinds and its pre/post/invariant predicates.
type BehaviorDecl struct {
	Name           string
	Input          []*FieldDecl
	Output         TypeNode
	Errors         []string
	Preconditions  []*PredicateDecl
	Postconditions []*PredicateDecl
	Invariants     []*PredicateDecl
	Loc            SourceLocation
}

func (b *BehaviorDecl) Location() SourceLocation { return b.Loc }

// PolicyDecl attaches a condition and a set of effect expressions to one or
// more behaviors.
type PolicyDecl struct {
	Name      string
	AppliesTo []string
	Condition Expression // may be nil: an unconditional policy
	Actions   []Expression
	Loc       SourceLocation
}

func (p *PolicyDecl) Location() SourceLocation { return p.Loc }

// ViewFieldDecl is a single computed field exposed by a view.
type ViewFieldDecl struct {
	Name string
	Expr Expression
	Loc  SourceLocation
}

// ViewDecl projects a computed shape over an entity.
type ViewDecl struct {
	Name   string
	Entity string
	Fields []*ViewFieldDecl
	Loc    SourceLocation
}

func (v *ViewDecl) Location() SourceLocation { return v.Loc }

// ScenarioDecl is a declarative given/when/then test of one behavior.
type ScenarioDecl struct {
	Name     string
	Behavior string
	Given    []Statement
	When     []Statement
	Then     []*PredicateDecl
	Loc      SourceLocation
}

func (s *ScenarioDecl) Location() SourceLocation { return s.Loc }
