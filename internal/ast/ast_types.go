package ast

// TypeNode is implemented by every AST type-position node (§6 External
// Interfaces). Resolution into a ResolvedType is the Type Resolver's job;
// this package only carries the shape the parser produced.
type TypeNode interface {
	Node
	typeNode()
}

// PrimitiveTypeNode names one of the fixed built-in primitives, e.g. "Int",
// "String", "UUID".
type PrimitiveTypeNode struct {
	Name string
	Loc  SourceLocation
}

func (n *PrimitiveTypeNode) Location() SourceLocation { return n.Loc }
func (n *PrimitiveTypeNode) typeNode()                {}

// ReferenceTypeNode names another declared type, entity or behavior by a
// (possibly qualified) dotted name.
type ReferenceTypeNode struct {
	Parts []string
	Loc   SourceLocation
}

func (n *ReferenceTypeNode) Location() SourceLocation { return n.Loc }
func (n *ReferenceTypeNode) typeNode()                {}

// ConstrainedTypeNode wraps a base primitive with a verbatim constraint
// list (e.g. `String(minLength: 1)`). The resolver does not validate the
// constraints, only carries them into ResolvedType.
type ConstrainedTypeNode struct {
	Base        TypeNode
	Constraints []string
	Loc         SourceLocation
}

func (n *ConstrainedTypeNode) Location() SourceLocation { return n.Loc }
func (n *ConstrainedTypeNode) typeNode()                {}

// EnumTypeNode lists the fixed variant names of an enum type.
type EnumTypeNode struct {
	Variants []string
	Loc      SourceLocation
}

func (n *EnumTypeNode) Location() SourceLocation { return n.Loc }
func (n *EnumTypeNode) typeNode()                {}

// StructTypeNode is an anonymous or named record type.
type StructTypeNode struct {
	Name   string // empty for anonymous structs
	Fields []*FieldDecl
	Loc    SourceLocation
}

func (n *StructTypeNode) Location() SourceLocation { return n.Loc }
func (n *StructTypeNode) typeNode()                {}

// UnionVariantNode is one named alternative of a union type, itself shaped
// like a struct.
type UnionVariantNode struct {
	Name   string
	Fields []*FieldDecl
	Loc    SourceLocation
}

// UnionTypeNode is a tagged union of named struct-shaped variants.
type UnionTypeNode struct {
	Name     string
	Variants []*UnionVariantNode
	Loc      SourceLocation
}

func (n *UnionTypeNode) Location() SourceLocation { return n.Loc }
func (n *UnionTypeNode) typeNode()                {}

// ListTypeNode is `List<Element>`.
type ListTypeNode struct {
	Element TypeNode
	Loc     SourceLocation
}

func (n *ListTypeNode) Location() SourceLocation { return n.Loc }
func (n *ListTypeNode) typeNode()                {}

// MapTypeNode is `Map<Key, Value>`.
type MapTypeNode struct {
	Key   TypeNode
	Value TypeNode
	Loc   SourceLocation
}

func (n *MapTypeNode) Location() SourceLocation { return n.Loc }
func (n *MapTypeNode) typeNode()                {}

// OptionalTypeNode is `Optional<Inner>`.
type OptionalTypeNode struct {
	Inner TypeNode
	Loc   SourceLocation
}

func (n *OptionalTypeNode) Location() SourceLocation { return n.Loc }
func (n *OptionalTypeNode) typeNode()                {}
