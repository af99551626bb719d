package checker

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/pipeline"
	"github.com/idl-tools/semcore/internal/symbols"
	"github.com/idl-tools/semcore/internal/typesystem"
)

// collectDeclarationsPhase is Domain Checker phase 1: define a placeholder
// symbol for every top-level declaration so later phases (and forward
// references within phase 2) can see every name regardless of
// declaration order, and catch same-scope duplicates immediately.
type collectDeclarationsPhase struct{}

func (collectDeclarationsPhase) Process(ctx *pipeline.Context) *pipeline.Context {
	root := ctx.Table.Root()

	for _, t := range ctx.Domain.Types {
		_, ok := ctx.Table.Define(t.Name, symbols.KindType, typesystem.Unknown{}, t.Loc, nil, "")
		if !ok {
			prevLoc, _ := ctx.Table.LookupLocal(root, t.Name)
			ctx.AddDiagnostic(diagnostics.New(diagnostics.CodeDuplicateType, t.Loc,
				fmt.Sprintf("type %q is already declared", t.Name)).
				WithRelated("previous declaration", prevLoc.Location))
		}
	}

	for _, e := range ctx.Domain.Entities {
		placeholder := ctx.Resolver.EntityType(e.Name)
		_, ok := ctx.Table.Define(e.Name, symbols.KindEntity, placeholder, e.Loc, nil, "")
		if !ok {
			prevLoc, _ := ctx.Table.LookupLocal(root, e.Name)
			ctx.AddDiagnostic(diagnostics.New(diagnostics.CodeDuplicateEntity, e.Loc,
				fmt.Sprintf("entity %q is already declared", e.Name)).
				WithRelated("previous declaration", prevLoc.Location))
		}
	}

	for _, b := range ctx.Domain.Behaviors {
		placeholder := typesystem.Behavior{Name: b.Name, InputFields: typesystem.NewFields()}
		_, ok := ctx.Table.Define(b.Name, symbols.KindBehavior, placeholder, b.Loc, nil, "")
		if !ok {
			prevLoc, _ := ctx.Table.LookupLocal(root, b.Name)
			ctx.AddDiagnostic(diagnostics.New(diagnostics.CodeDuplicateBehavior, b.Loc,
				fmt.Sprintf("behavior %q is already declared", b.Name)).
				WithRelated("previous declaration", prevLoc.Location))
		}
	}

	defineNamed := func(name string, kind symbols.Kind, loc ast.SourceLocation) {
		if name == "" {
			return
		}
		if _, ok := ctx.Table.Define(name, kind, typesystem.Void{}, loc, nil, ""); !ok {
			prevLoc, _ := ctx.Table.LookupLocal(root, name)
			ctx.AddDiagnostic(diagnostics.New(diagnostics.CodeDuplicateSymbol, loc,
				fmt.Sprintf("%s %q is already declared", kind, name)).
				WithRelated("previous declaration", prevLoc.Location))
		}
	}
	for _, inv := range ctx.Domain.Invariants {
		defineNamed(inv.Name, symbols.KindInvariant, inv.Loc)
	}
	for _, p := range ctx.Domain.Policies {
		defineNamed(p.Name, symbols.KindPolicy, p.Loc)
	}
	for _, v := range ctx.Domain.Views {
		defineNamed(v.Name, symbols.KindView, v.Loc)
	}

	return ctx
}
