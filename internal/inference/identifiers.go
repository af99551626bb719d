package inference

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/suggest"
	"github.com/idl-tools/semcore/internal/typesystem"
)

func (inf *Inferencer) inferIdentifier(e *ast.Identifier, ctx Context) typesystem.ResolvedType {
	if t, ok := ctx.Lookup(e.Name); ok {
		return t
	}
	if sym, ok := inf.table.Lookup(e.Name); ok {
		return sym.ResolvedType
	}
	return inf.undefinedVariable(e.Name, e.Loc)
}

func (inf *Inferencer) inferQualifiedName(e *ast.QualifiedName, ctx Context) typesystem.ResolvedType {
	if len(e.Parts) == 0 {
		return typesystem.Unknown{}
	}
	head := e.Parts[0]
	var cur typesystem.ResolvedType
	if t, ok := ctx.Lookup(head); ok {
		cur = t
	} else if sym, ok := inf.table.Lookup(head); ok {
		cur = sym.ResolvedType
	} else {
		return inf.undefinedVariable(head, e.Loc)
	}
	for _, part := range e.Parts[1:] {
		t, ok := inf.stepField(cur, part, e.Loc)
		if !ok {
			return t
		}
		cur = t
	}
	return cur
}

// stepField resolves one `.part` access against a structural type,
// reporting UNDEFINED_FIELD on failure. ok is false when a diagnostic was
// recorded, in which case the returned type is the Unknown placeholder to
// propagate.
func (inf *Inferencer) stepField(t typesystem.ResolvedType, part string, loc ast.SourceLocation) (typesystem.ResolvedType, bool) {
	if typesystem.IsAbsorbing(t) {
		return typesystem.Unknown{}, true
	}
	switch rt := t.(type) {
	case typesystem.Entity:
		if f, ok := rt.Fields.Get(part); ok {
			return f, true
		}
		return inf.undefinedField(part, rt.Fields.Names(), loc), false
	case typesystem.Struct:
		if f, ok := rt.Fields.Get(part); ok {
			return f, true
		}
		return inf.undefinedField(part, rt.Fields.Names(), loc), false
	case typesystem.Optional:
		next, ok := inf.stepField(rt.Inner, part, loc)
		if !ok {
			return next, false
		}
		return typesystem.Optional{Inner: next}, true
	case typesystem.Enum:
		for _, v := range rt.Variants {
			if v == part {
				return rt, true
			}
		}
		return inf.undefinedField(part, rt.Variants, loc), false
	default:
		return inf.addError(diagnostics.CodeUndefinedField, loc, fmt.Sprintf("%s has no field %q", t, part)), false
	}
}

func (inf *Inferencer) undefinedVariable(name string, loc ast.SourceLocation) typesystem.ResolvedType {
	d := diagnostics.New(diagnostics.CodeUndefinedVariable, loc, fmt.Sprintf("undefined name %q", name))
	if s := suggest.Name(name, inf.table.AllNames(inf.table.Current()), inf.cfg.NameSuggestionEditDistance); s != "" {
		d = d.WithHelp(fmt.Sprintf("Did you mean %q?", s))
	}
	return inf.addErrorDiag(d)
}

func (inf *Inferencer) undefinedField(name string, candidates []string, loc ast.SourceLocation) typesystem.ResolvedType {
	d := diagnostics.New(diagnostics.CodeUndefinedField, loc, fmt.Sprintf("undefined field %q", name))
	if s := suggest.Name(name, candidates, inf.cfg.NameSuggestionEditDistance); s != "" {
		d = d.WithHelp(fmt.Sprintf("Did you mean %q?", s))
	}
	return inf.addErrorDiag(d)
}
