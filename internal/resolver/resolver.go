// Package resolver maps ast.TypeNode values to typesystem.ResolvedType,
// caching by qualified name and detecting cyclic references (§4.2 Type
// Resolver).
package resolver

import (
	"fmt"
	"sort"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/config"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/suggest"
	"github.com/idl-tools/semcore/internal/symbols"
	"github.com/idl-tools/semcore/internal/typesystem"
)

// Resolver converts AST type nodes into ResolvedType values. One Resolver
// is built per Domain and shared across every phase of the Domain Checker
// that needs to resolve a type node, so its cache and cycle-detection
// stack span the whole check() call.
type Resolver struct {
	table     *symbols.SymbolTable
	typeDecls map[string]*ast.TypeDecl
	entities  map[string]*ast.EntityDecl
	cfg       config.Config

	cache        map[string]typesystem.ResolvedType
	inProgress   map[string]bool
	entityFields map[string]*typesystem.Fields

	Diagnostics []*diagnostics.Diagnostic
}

// New builds a Resolver over the given symbol table. typeDecls and
// entities index a Domain's top-level declarations by name so that a
// ReferenceTypeNode can resolve forward references and cyclic ones can be
// detected.
func New(table *symbols.SymbolTable, typeDecls map[string]*ast.TypeDecl, entities map[string]*ast.EntityDecl, cfg config.Config) *Resolver {
	return &Resolver{
		table:        table,
		typeDecls:    typeDecls,
		entities:     entities,
		cfg:          cfg,
		cache:        make(map[string]typesystem.ResolvedType),
		inProgress:   make(map[string]bool),
		entityFields: make(map[string]*typesystem.Fields),
	}
}

func (r *Resolver) addError(code diagnostics.Code, loc ast.SourceLocation, msg string) typesystem.ResolvedType {
	r.Diagnostics = append(r.Diagnostics, diagnostics.New(code, loc, msg))
	return typesystem.Unknown{}
}

// EntityFields returns the shared, mutable field map for a named entity,
// creating it on first reference. Every ResolvedType.Entity value for the
// same entity name carries this same pointer, so a forward reference
// resolved before phase 3 fills the fields in automatically sees them
// filled in once phase 3 runs.
func (r *Resolver) EntityFields(name string) *typesystem.Fields {
	f, ok := r.entityFields[name]
	if !ok {
		f = typesystem.NewFields()
		r.entityFields[name] = f
	}
	return f
}

// EntityType returns the (possibly still-empty) Entity ResolvedType for a
// named entity.
func (r *Resolver) EntityType(name string) typesystem.Entity {
	return typesystem.Entity{Name: name, Fields: r.EntityFields(name)}
}

// Resolve converts a single AST type node into a ResolvedType, recursing
// into composite nodes and resolving references against the Domain's
// declarations and the symbol table.
func (r *Resolver) Resolve(node ast.TypeNode) typesystem.ResolvedType {
	if node == nil {
		return typesystem.Unknown{}
	}
	switch n := node.(type) {
	case *ast.PrimitiveTypeNode:
		return r.resolvePrimitiveName(n)
	case *ast.ConstrainedTypeNode:
		base := r.Resolve(n.Base)
		prim, ok := base.(typesystem.Primitive)
		if !ok {
			// Constraints are only meaningful on primitives; still return
			// the base type rather than cascading a new error.
			return base
		}
		prim.Constraints = n.Constraints
		return prim
	case *ast.EnumTypeNode:
		return typesystem.Enum{Variants: append([]string(nil), n.Variants...)}
	case *ast.StructTypeNode:
		fields := typesystem.NewFields()
		seen := make(map[string]bool)
		for _, f := range n.Fields {
			if seen[f.Name] {
				r.addError(diagnostics.CodeDuplicateField, f.Loc, fmt.Sprintf("duplicate field %q", f.Name))
				continue
			}
			seen[f.Name] = true
			fields.Append(f.Name, r.resolveFieldType(f))
		}
		return typesystem.Struct{Name: n.Name, Fields: fields}
	case *ast.UnionTypeNode:
		variants := typesystem.NewUnionVariants()
		for _, v := range n.Variants {
			fields := typesystem.NewFields()
			seen := make(map[string]bool)
			for _, f := range v.Fields {
				if seen[f.Name] {
					r.addError(diagnostics.CodeDuplicateField, f.Loc, fmt.Sprintf("duplicate field %q", f.Name))
					continue
				}
				seen[f.Name] = true
				fields.Append(f.Name, r.resolveFieldType(f))
			}
			variants.Append(v.Name, typesystem.Struct{Name: v.Name, Fields: fields})
		}
		return typesystem.Union{Name: n.Name, Variants: variants}
	case *ast.ListTypeNode:
		return typesystem.List{Element: r.Resolve(n.Element)}
	case *ast.MapTypeNode:
		return typesystem.Map{Key: r.Resolve(n.Key), Value: r.Resolve(n.Value)}
	case *ast.OptionalTypeNode:
		return typesystem.Optional{Inner: r.Resolve(n.Inner)}
	case *ast.ReferenceTypeNode:
		return r.resolveReference(n.Parts, n.Loc)
	default:
		return r.addError(diagnostics.CodeInternal, node.Location(), fmt.Sprintf("unhandled type node %T", node))
	}
}

func (r *Resolver) resolveFieldType(f *ast.FieldDecl) typesystem.ResolvedType {
	t := r.Resolve(f.Type)
	if f.Optional {
		if _, already := t.(typesystem.Optional); !already {
			t = typesystem.Optional{Inner: t}
		}
	}
	return t
}

func (r *Resolver) resolvePrimitiveName(n *ast.PrimitiveTypeNode) typesystem.ResolvedType {
	switch n.Name {
	case "String", "Int", "Decimal", "Boolean", "Timestamp", "UUID", "Duration":
		return typesystem.Primitive{Name: typesystem.PrimitiveName(n.Name)}
	default:
		if sym, ok := r.table.Lookup(n.Name); ok && sym.Kind == symbols.KindType {
			return sym.ResolvedType
		}
		return r.undefinedType(n.Name, n.Loc)
	}
}

func (r *Resolver) undefinedType(name string, loc ast.SourceLocation) typesystem.ResolvedType {
	d := diagnostics.New(diagnostics.CodeUndefinedType, loc, fmt.Sprintf("undefined type %q", name))
	if suggestion := suggest.Name(name, r.candidateTypeNames(), r.cfg.TypeSuggestionEditDistance); suggestion != "" {
		d = d.WithHelp(fmt.Sprintf("Did you mean %q?", suggestion))
	}
	r.Diagnostics = append(r.Diagnostics, d)
	return typesystem.Unknown{}
}

func (r *Resolver) candidateTypeNames() []string {
	// Only type symbols from the root scope are candidates: the stdlib
	// functions bound there (uuid(), now(), ...) are not type names.
	var names []string
	for _, name := range r.table.AllNames(r.table.Root()) {
		if sym, ok := r.table.LookupLocal(r.table.Root(), name); ok && sym.Kind == symbols.KindType {
			names = append(names, name)
		}
	}
	// typeDecls/entities are maps, so their keys are gathered into their own
	// slice and sorted before appending: otherwise map iteration order would
	// make the suggestion choice, and hence the diagnostic help text,
	// nondeterministic across runs on ties (§8 "Diagnostic stability").
	var declared []string
	for name := range r.typeDecls {
		declared = append(declared, name)
	}
	for name := range r.entities {
		declared = append(declared, name)
	}
	sort.Strings(declared)
	return append(names, declared...)
}

// resolveReference resolves a (possibly forward, possibly cyclic) named
// type reference. A single-part reference is looked up against, in order:
// the resolution cache, a top-level TypeDecl (resolved on demand,
// detecting cycles via inProgress), a top-level EntityDecl, and finally
// the symbol table (covers built-in primitives named via ReferenceTypeNode
// and any symbol the checker pre-registered). A multi-part reference
// steps through the resolved structural type field by field, matching
// lookup_qualified (§4.1).
func (r *Resolver) resolveReference(parts []string, loc ast.SourceLocation) typesystem.ResolvedType {
	name := parts[0]
	resolved := r.resolveName(name, loc)
	for _, part := range parts[1:] {
		next, err := symbols.StepInto(resolved, part)
		if err != nil {
			return r.addError(diagnostics.CodeUndefinedField, loc, fmt.Sprintf("no field %q on %s", part, resolved))
		}
		resolved = next
	}
	return resolved
}

func (r *Resolver) resolveName(name string, loc ast.SourceLocation) typesystem.ResolvedType {
	if cached, ok := r.cache[name]; ok {
		return cached
	}
	if r.inProgress[name] {
		r.Diagnostics = append(r.Diagnostics, diagnostics.New(
			diagnostics.CodeCircularReference, loc, fmt.Sprintf("circular reference involving %q", name)))
		return typesystem.Unknown{}
	}
	if decl, ok := r.typeDecls[name]; ok {
		r.inProgress[name] = true
		resolved := r.Resolve(decl.Body)
		delete(r.inProgress, name)
		r.cache[name] = resolved
		return resolved
	}
	if _, ok := r.entities[name]; ok {
		entity := r.EntityType(name)
		r.cache[name] = entity
		return entity
	}
	if sym, ok := r.table.Lookup(name); ok {
		return sym.ResolvedType
	}
	return r.undefinedType(name, loc)
}
