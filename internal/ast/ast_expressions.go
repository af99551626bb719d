package ast

// Expression is implemented by every AST expression node.
type Expression interface {
	Node
	expressionNode()
}

// Identifier is a bare name reference, resolved against locals first, then
// the symbol table.
type Identifier struct {
	Name string
	Loc  SourceLocation
}

func (e *Identifier) Location() SourceLocation { return e.Loc }
func (e *Identifier) expressionNode()          {}

// QualifiedName is a dotted reference resolved via lookup_qualified.
type QualifiedName struct {
	Parts []string
	Loc   SourceLocation
}

func (e *QualifiedName) Location() SourceLocation { return e.Loc }
func (e *QualifiedName) expressionNode()          {}

// LiteralKind tags the shape of a Literal node.
type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	DecimalLiteral
	StringLiteral
	BooleanLiteral
	DurationLiteral
	NullLiteral
)

// Literal is any self-contained constant value in source text.
type Literal struct {
	Kind LiteralKind
	// Raw carries the literal's textual/parsed value: int64 for IntLiteral,
	// string for DecimalLiteral/StringLiteral (kept unparsed to preserve
	// arbitrary precision) and DurationLiteral ("5m", "30s", ...), bool for
	// BooleanLiteral. Raw is nil for NullLiteral.
	Raw interface{}
	Loc SourceLocation
}

func (e *Literal) Location() SourceLocation { return e.Loc }
func (e *Literal) expressionNode()          {}

// BinaryExpression covers every two-operand operator: comparisons,
// arithmetic, logical connectives and `in`.
type BinaryExpression struct {
	Op    string
	Left  Expression
	Right Expression
	Loc   SourceLocation
}

func (e *BinaryExpression) Location() SourceLocation { return e.Loc }
func (e *BinaryExpression) expressionNode()          {}

// UnaryExpression covers `not` (and numeric negation, if the grammar emits
// one; the inferencer only assigns a rule to "not").
type UnaryExpression struct {
	Op      string
	Operand Expression
	Loc     SourceLocation
}

func (e *UnaryExpression) Location() SourceLocation { return e.Loc }
func (e *UnaryExpression) expressionNode()          {}

// MemberExpression is `Target.Field`.
type MemberExpression struct {
	Target Expression
	Field  string
	Loc    SourceLocation
}

func (e *MemberExpression) Location() SourceLocation { return e.Loc }
func (e *MemberExpression) expressionNode()          {}

// IndexExpression is `Target[Index]`.
type IndexExpression struct {
	Target Expression
	Index  Expression
	Loc    SourceLocation
}

func (e *IndexExpression) Location() SourceLocation { return e.Loc }
func (e *IndexExpression) expressionNode()          {}

// CallExpression is a call to a free built-in or, when Callee is a
// MemberExpression, a method call dispatched on the receiver's kind.
type CallExpression struct {
	Callee Expression
	Args   []Expression
	Loc    SourceLocation
}

func (e *CallExpression) Location() SourceLocation { return e.Loc }
func (e *CallExpression) expressionNode()          {}

// QuantifierKind names one of the six quantifier forms.
type QuantifierKind int

const (
	QuantifierAll QuantifierKind = iota
	QuantifierAny
	QuantifierNone
	QuantifierCount
	QuantifierSum
	QuantifierFilter
)

// QuantifierExpression is `<kind> <var> in <collection>: <predicate>`.
type QuantifierExpression struct {
	Kind       QuantifierKind
	Var        string
	Collection Expression
	Predicate  Expression
	Loc        SourceLocation
}

func (e *QuantifierExpression) Location() SourceLocation { return e.Loc }
func (e *QuantifierExpression) expressionNode()          {}

// ConditionalExpression is `Cond ? Then : Else`.
type ConditionalExpression struct {
	Cond Expression
	Then Expression
	Else Expression
	Loc  SourceLocation
}

func (e *ConditionalExpression) Location() SourceLocation { return e.Loc }
func (e *ConditionalExpression) expressionNode()          {}

// OldExpression is `old(Inner)`, legal only inside a postcondition.
type OldExpression struct {
	Inner Expression
	Loc   SourceLocation
}

func (e *OldExpression) Location() SourceLocation { return e.Loc }
func (e *OldExpression) expressionNode()          {}

// ResultExpression is `result` or, when Field is non-empty, `result.Field`.
type ResultExpression struct {
	Field string
	Loc   SourceLocation
}

func (e *ResultExpression) Location() SourceLocation { return e.Loc }
func (e *ResultExpression) expressionNode()          {}

// InputExpression is `input.Field`.
type InputExpression struct {
	Field string
	Loc   SourceLocation
}

func (e *InputExpression) Location() SourceLocation { return e.Loc }
func (e *InputExpression) expressionNode()          {}

// LambdaExpression is an inline predicate/transform passed to a quantifier
// or collection method.
type LambdaExpression struct {
	Params []string
	Body   Expression
	Loc    SourceLocation
}

func (e *LambdaExpression) Location() SourceLocation { return e.Loc }
func (e *LambdaExpression) expressionNode()          {}

// ListLiteralExpression is `[e1, e2, ...]`.
type ListLiteralExpression struct {
	Elements []Expression
	Loc      SourceLocation
}

func (e *ListLiteralExpression) Location() SourceLocation { return e.Loc }
func (e *ListLiteralExpression) expressionNode()          {}

// MapEntry is one `key: value` pair of a map literal.
type MapEntry struct {
	Key   Expression
	Value Expression
}

// MapLiteralExpression is `{k1: v1, k2: v2, ...}`.
type MapLiteralExpression struct {
	Entries []MapEntry
	Loc     SourceLocation
}

func (e *MapLiteralExpression) Location() SourceLocation { return e.Loc }
func (e *MapLiteralExpression) expressionNode()          {}
