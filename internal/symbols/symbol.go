// Package symbols implements the lexically scoped name table the resolver,
// inferencer and checker share (§4.1 Symbol Table).
package symbols

import (
	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/typesystem"
)

// Kind tags what a Symbol names.
type Kind int

const (
	KindType Kind = iota
	KindEntity
	KindBehavior
	KindField
	KindVariable
	KindParameter
	KindError
	KindInvariant
	KindPolicy
	KindView
	KindEnumVariant
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindEntity:
		return "entity"
	case KindBehavior:
		return "behavior"
	case KindField:
		return "field"
	case KindVariable:
		return "variable"
	case KindParameter:
		return "parameter"
	case KindError:
		return "error"
	case KindInvariant:
		return "invariant"
	case KindPolicy:
		return "policy"
	case KindView:
		return "view"
	case KindEnumVariant:
		return "enum_variant"
	default:
		return "unknown"
	}
}

// Modifier is one flag from the fixed modifier set a field or symbol may
// carry (§3 Data Model).
type Modifier string

const (
	ModImmutable Modifier = "immutable"
	ModUnique    Modifier = "unique"
	ModIndexed   Modifier = "indexed"
	ModPII       Modifier = "pii"
	ModSecret    Modifier = "secret"
	ModSensitive Modifier = "sensitive"
	ModComputed  Modifier = "computed"
	ModOptional  Modifier = "optional"
	ModDeprecated Modifier = "deprecated"
)

// Symbol is a single name->binding entry (§3 Data Model).
type Symbol struct {
	Name          string
	Kind          Kind
	ResolvedType  typesystem.ResolvedType
	Location      ast.SourceLocation
	Modifiers     map[Modifier]bool
	Documentation string
}

// HasModifier reports whether m is set on the symbol.
func (s Symbol) HasModifier(m Modifier) bool {
	return s.Modifiers != nil && s.Modifiers[m]
}
