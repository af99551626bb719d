// Package value defines Value, the runtime sum type the expression
// evaluator produces, grounded on the teacher's Object interface
// (internal/evaluator/object.go: Type()/Inspect()/Hash()) but trimmed to
// the handful of shapes a domain's data model actually needs instead of a
// general-purpose language runtime's object set.
package value

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

// Value is implemented by every runtime value kind. Like typesystem.
// ResolvedType, it is a closed sum exhaustively switched on rather than a
// dispatch hierarchy (§9 Design Notes).
type Value interface {
	String() string
	valueNode()
}

// Unit is the single-valued type produced by a statement position that
// yields no usable result (e.g. a `when` CallStmt invoked for its effects
// alone, with no Target binding).
type Unit struct{}

func (Unit) valueNode()          {}
func (Unit) String() string { return "()" }

// Int is an arbitrary-precision integer value (§3: "Int (arbitrary
// precision)"), backed directly by math/big rather than a fixed-width Go
// integer so a domain value is never silently truncated at 64 bits.
type Int struct{ *big.Int }

// NewInt wraps a machine int64 as an Int.
func NewInt(n int64) Int { return Int{big.NewInt(n)} }

// NewIntFromString parses s as a base-10 arbitrary-precision integer,
// reporting false if s is not a valid integer literal.
func NewIntFromString(s string) (Int, bool) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, false
	}
	return Int{n}, true
}

func (Int) valueNode() {}
func (v Int) String() string {
	if v.Int == nil {
		return "0"
	}
	return v.Int.String()
}

// Decimal is an arbitrary-precision rational value (§3), backed by
// math/big.Rat so decimal literals and arithmetic never lose precision
// the way a float64 would.
type Decimal struct{ *big.Rat }

// NewDecimal wraps a float64 as a Decimal. Exact for any float64 input
// (big.Rat.SetFloat64 is lossless), though results derived from prior
// float64 arithmetic inherit whatever rounding already happened there.
func NewDecimal(f float64) Decimal {
	r := new(big.Rat)
	if r.SetFloat64(f) == nil {
		r.SetInt64(0)
	}
	return Decimal{r}
}

// NewDecimalFromString parses s as a decimal or fractional ("a/b")
// literal, reporting false if s is not a valid rational literal.
func NewDecimalFromString(s string) (Decimal, bool) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Decimal{}, false
	}
	return Decimal{r}, true
}

func (Decimal) valueNode() {}
func (v Decimal) String() string {
	if v.Rat == nil {
		return "0"
	}
	f, _ := v.Rat.Float64()
	return fmt.Sprintf("%v", f)
}

// String is a text value.
type String string

func (String) valueNode()          {}
func (v String) String() string { return string(v) }

// Bool is a Boolean value.
type Bool bool

func (Bool) valueNode()          {}
func (v Bool) String() string { return fmt.Sprintf("%t", bool(v)) }

// Timestamp is an instant in time.
type Timestamp time.Time

func (Timestamp) valueNode()          {}
func (v Timestamp) String() string { return time.Time(v).UTC().Format(time.RFC3339Nano) }

// UUID is a UUID value kept in canonical lowercase textual form.
type UUID string

func (UUID) valueNode()          {}
func (v UUID) String() string { return string(v) }

// Bytes is an opaque byte string, produced by a target function boundary
// or a `bytes`-constrained primitive field.
type Bytes []byte

func (Bytes) valueNode()          {}
func (v Bytes) String() string { return fmt.Sprintf("%x", []byte(v)) }

// Duration is a span of time.
type Duration time.Duration

func (Duration) valueNode()          {}
func (v Duration) String() string { return time.Duration(v).String() }

// List is an ordered sequence of values.
type List struct {
	Elements []Value
}

func (List) valueNode() {}
func (v List) String() string {
	parts := make([]string, len(v.Elements))
	for i, e := range v.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// MapEntry is one key/value pair of a Map, kept in insertion order.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is an insertion-ordered key/value collection (§4.5: "map in
// insertion order").
type Map struct {
	Entries []MapEntry
}

func (Map) valueNode() {}
func (v Map) String() string {
	parts := make([]string, len(v.Entries))
	for i, e := range v.Entries {
		parts[i] = e.Key.String() + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Get returns the value bound to key (compared by String(), since every
// legal map key type has a stable textual form).
func (v Map) Get(key Value) (Value, bool) {
	k := key.String()
	for _, e := range v.Entries {
		if e.Key.String() == k {
			return e.Value, true
		}
	}
	return nil, false
}

// Set is an insertion-ordered collection of distinct values; membership and
// set equality are decided by Equal (§3: "Set").
type Set struct {
	Elements []Value
}

func (Set) valueNode() {}
func (v Set) String() string {
	parts := make([]string, len(v.Elements))
	for i, e := range v.Elements {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Has reports whether val is already a member of the set.
func (v Set) Has(val Value) bool {
	for _, e := range v.Elements {
		if Equal(e, val) {
			return true
		}
	}
	return false
}

// Result is the outcome of a target function invocation or a scenario's
// `when` call: either a successful Value or a carried error (§3: "Result{
// success, value, error? }"), mirroring a behavior's declared error kinds
// without collapsing them into a Go error the evaluator would have to
// unwrap specially.
type Result struct {
	Success bool
	Value   Value
	Error   *ResultError
}

// ResultError is the structured error payload of a failed Result,
// matching the `error.code`/`error.message` shape the JSON test-data
// format and §4.7 step 7 scenario comparisons expect.
type ResultError struct {
	Code    string
	Message string
}

func (Result) valueNode() {}
func (v Result) String() string {
	if v.Success {
		return "Ok(" + v.Value.String() + ")"
	}
	msg := ""
	if v.Error != nil {
		msg = v.Error.Code
	}
	return "Err(" + msg + ")"
}

// Struct is a named or anonymous record of fields in declaration order.
type Struct struct {
	Name   string
	Fields []StructField
}

// StructField is one name/value pair of a Struct or Entity.
type StructField struct {
	Name  string
	Value Value
}

func (Struct) valueNode() {}
func (v Struct) String() string {
	parts := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		parts[i] = f.Name + ": " + f.Value.String()
	}
	return v.Name + "{" + strings.Join(parts, ", ") + "}"
}

// Get returns the field named name.
func (v Struct) Get(name string) (Value, bool) {
	for _, f := range v.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// With returns a copy of v with name rebound to val, used when evaluating
// an AssignmentStmt against a struct-shaped binding.
func (v Struct) With(name string, val Value) Struct {
	fields := make([]StructField, len(v.Fields))
	copy(fields, v.Fields)
	for i, f := range fields {
		if f.Name == name {
			fields[i].Value = val
			return Struct{Name: v.Name, Fields: fields}
		}
	}
	fields = append(fields, StructField{Name: name, Value: val})
	return Struct{Name: v.Name, Fields: fields}
}

// Entity is a Struct additionally tagged with its declared entity name;
// kept distinct from Struct so equality and dispatch can tell them apart.
type Entity struct {
	Struct
}

// Enum is a named variant tag.
type Enum struct {
	TypeName string
	Variant  string
}

func (Enum) valueNode()          {}
func (v Enum) String() string { return v.Variant }

// Optional is a possibly-absent value.
type Optional struct {
	Present bool
	Inner   Value
}

func (Optional) valueNode() {}
func (v Optional) String() string {
	if !v.Present {
		return "null"
	}
	return v.Inner.String()
}

// Null is the bare absence value produced by a `null` literal before it
// is matched against an Optional<T> field.
type Null struct{}

func (Null) valueNode()          {}
func (Null) String() string { return "null" }

// Lambda is a callable closure: a lambda expression's evaluated form, or
// a method's bound implementation. Call captures whatever Go closure the
// evaluator built over the lambda body and its defining environment,
// grounded on the teacher's BuiltinFunction field-of-closures pattern
// (internal/evaluator/object_functions.go) rather than a dispatch
// hierarchy, so this package never needs to import the evaluator or ast
// packages.
type Lambda struct {
	Params []string
	Call   func(args []Value) (Value, error)
}

func (Lambda) valueNode()          {}
func (Lambda) String() string { return "<function>" }
