// Package typesystem defines ResolvedType, the normalized internal
// representation of a type after name resolution (§3 Data Model), distinct
// from the ast type nodes the resolver consumes.
package typesystem

import "strings"

// ResolvedType is the tagged union every analysis phase after the resolver
// operates on. Implementations are exhaustively switched on, never
// dispatched through embedding or runtime polymorphism (§9 Design Notes).
type ResolvedType interface {
	String() string
	resolvedType()
}

// PrimitiveName is drawn from the fixed set of built-in primitives.
type PrimitiveName string

const (
	PrimString    PrimitiveName = "String"
	PrimInt       PrimitiveName = "Int"
	PrimDecimal   PrimitiveName = "Decimal"
	PrimBoolean   PrimitiveName = "Boolean"
	PrimTimestamp PrimitiveName = "Timestamp"
	PrimUUID      PrimitiveName = "UUID"
	PrimDuration  PrimitiveName = "Duration"
)

// Primitive is a built-in scalar type, optionally carrying a verbatim
// constraint list from its declaration.
type Primitive struct {
	Name        PrimitiveName
	Constraints []string
}

func (Primitive) resolvedType() {}
func (p Primitive) String() string { return string(p.Name) }

// Field is one entry of an ordered name->type field map. Declaration order
// is load-bearing (§3 invariants) so fields are carried as a slice, not a
// bare map.
type Field struct {
	Name string
	Type ResolvedType
}

// Fields is an ordered, lookup-indexed field list shared by Entity, Struct,
// union variants and Behavior input lists.
type Fields struct {
	order []Field
	index map[string]int
}

// NewFields builds a Fields value preserving the given order.
func NewFields(fields ...Field) *Fields {
	f := &Fields{index: make(map[string]int, len(fields))}
	for _, field := range fields {
		f.Append(field.Name, field.Type)
	}
	return f
}

// Append adds a field, preserving insertion order. A repeated name
// overwrites the type at its original position rather than appending again.
func (f *Fields) Append(name string, typ ResolvedType) {
	if f.index == nil {
		f.index = make(map[string]int)
	}
	if i, ok := f.index[name]; ok {
		f.order[i].Type = typ
		return
	}
	f.index[name] = len(f.order)
	f.order = append(f.order, Field{Name: name, Type: typ})
}

// Get returns the type bound to name, if any.
func (f *Fields) Get(name string) (ResolvedType, bool) {
	if f == nil {
		return nil, false
	}
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.order[i].Type, true
}

// Names returns field names in declaration order.
func (f *Fields) Names() []string {
	if f == nil {
		return nil
	}
	names := make([]string, len(f.order))
	for i, field := range f.order {
		names[i] = field.Name
	}
	return names
}

// List returns the fields in declaration order.
func (f *Fields) List() []Field {
	if f == nil {
		return nil
	}
	return f.order
}

// Len returns the number of fields.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.order)
}

func (f *Fields) String() string {
	parts := make([]string, 0, f.Len())
	for _, field := range f.List() {
		parts = append(parts, field.Name+": "+field.Type.String())
	}
	return strings.Join(parts, ", ")
}

// Entity is a named record with fields and an optional set of lifecycle
// state names (populated once the entity's LifecycleDecl, if any, is
// resolved).
type Entity struct {
	Name            string
	Fields          *Fields
	LifecycleStates []string
}

func (Entity) resolvedType() {}
func (e Entity) String() string { return e.Name }

// Enum is a named fixed set of variant tags.
type Enum struct {
	Name     string
	Variants []string
}

func (Enum) resolvedType() {}
func (e Enum) String() string { return e.Name }

// Struct is a record type, named when declared at top level or as a union
// variant, anonymous when written inline.
type Struct struct {
	Name   string
	Fields *Fields
}

func (Struct) resolvedType() {}
func (s Struct) String() string {
	if s.Name != "" {
		return s.Name
	}
	return "{" + s.Fields.String() + "}"
}

// UnionVariants is an ordered name->Struct map, mirroring Fields.
type UnionVariants struct {
	order []string
	index map[string]Struct
}

// NewUnionVariants builds a UnionVariants preserving the given order.
func NewUnionVariants() *UnionVariants {
	return &UnionVariants{index: make(map[string]Struct)}
}

func (u *UnionVariants) Append(name string, s Struct) {
	if u.index == nil {
		u.index = make(map[string]Struct)
	}
	if _, ok := u.index[name]; !ok {
		u.order = append(u.order, name)
	}
	u.index[name] = s
}

func (u *UnionVariants) Get(name string) (Struct, bool) {
	if u == nil {
		return Struct{}, false
	}
	s, ok := u.index[name]
	return s, ok
}

func (u *UnionVariants) Names() []string {
	if u == nil {
		return nil
	}
	return u.order
}

// Union is a tagged union of named struct-shaped variants.
type Union struct {
	Name     string
	Variants *UnionVariants
}

func (Union) resolvedType() {}
func (u Union) String() string {
	if u.Name != "" {
		return u.Name
	}
	return "Union(" + strings.Join(u.Variants.Names(), " | ") + ")"
}

// List is `List<Element>`.
type List struct {
	Element ResolvedType
}

func (List) resolvedType() {}
func (l List) String() string { return "List<" + l.Element.String() + ">" }

// Map is `Map<Key, Value>`.
type Map struct {
	Key   ResolvedType
	Value ResolvedType
}

func (Map) resolvedType() {}
func (m Map) String() string { return "Map<" + m.Key.String() + ", " + m.Value.String() + ">" }

// Optional is `Optional<Inner>`.
type Optional struct {
	Inner ResolvedType
}

func (Optional) resolvedType() {}
func (o Optional) String() string { return "Optional<" + o.Inner.String() + ">" }

// Function is the type of a lambda or stdlib built-in.
type Function struct {
	Params  []ResolvedType
	Returns ResolvedType
}

func (Function) resolvedType() {}
func (f Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	ret := "Void"
	if f.Returns != nil {
		ret = f.Returns.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + ret
}

// Behavior is the type of a named operation: its input field map, success
// output type and declared error kinds.
type Behavior struct {
	Name        string
	InputFields *Fields
	OutputType  ResolvedType
	ErrorTypes  []string
}

func (Behavior) resolvedType() {}
func (b Behavior) String() string { return b.Name }

// Error is an absorbing type produced when resolution or inference fails;
// carrying it forward (instead of aborting) suppresses cascades (§7).
type Error struct {
	Message string
}

func (Error) resolvedType() {}
func (e Error) String() string { return "Error(" + e.Message + ")" }

// Unknown is the other absorbing type: the result of a lookup that could
// not be resolved but whose caller should keep analyzing.
type Unknown struct{}

func (Unknown) resolvedType() {}
func (Unknown) String() string { return "Unknown" }

// Void is the type of an expression that never produces a usable value
// (currently unused by any inference rule but reserved for statement
// positions a future caller may add).
type Void struct{}

func (Void) resolvedType() {}
func (Void) String() string { return "Void" }
