package checker

import (
	"fmt"
	"strings"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/inference"
	"github.com/idl-tools/semcore/internal/pipeline"
	"github.com/idl-tools/semcore/internal/symbols"
	"github.com/idl-tools/semcore/internal/typesystem"
)

// checkEntitiesPhase is Domain Checker phase 3: enter each entity's scope,
// bind its fields, type-check its invariants and validate its lifecycle
// transition set.
type checkEntitiesPhase struct{}

func (checkEntitiesPhase) Process(ctx *pipeline.Context) *pipeline.Context {
	for _, e := range ctx.Domain.Entities {
		entitySym, _ := ctx.Table.LookupLocal(ctx.Table.Root(), e.Name)
		entityType, _ := entitySym.ResolvedType.(typesystem.Entity)

		h := ctx.Table.EnterScope("entity:"+e.Name, e.Loc)
		for _, f := range entityType.Fields.List() {
			ctx.Table.DefineIn(h, symbols.Symbol{
				Name: f.Name, Kind: symbols.KindField, ResolvedType: f.Type, Location: e.Loc,
			})
		}

		for _, inv := range e.Invariants {
			ctx.Inferer.RequireBoolean(inv.Expr, inference.Context{})
		}

		ctx.Table.ExitScope()

		if e.Lifecycle != nil {
			validateLifecycle(ctx, e, entityType)
		}
	}
	return ctx
}

// validateLifecycle checks every transition's From/To state against the
// variant set of the entity's lifecycle field: the first field whose
// resolved type is an Enum. A declaration with no such field has nothing
// to validate transitions against and is left alone.
func validateLifecycle(ctx *pipeline.Context, e *ast.EntityDecl, entityType typesystem.Entity) {
	var statusEnum *typesystem.Enum
	for _, f := range entityType.Fields.List() {
		if enum, ok := f.Type.(typesystem.Enum); ok {
			statusEnum = &enum
			break
		}
	}
	if statusEnum == nil {
		return
	}
	valid := make(map[string]bool, len(statusEnum.Variants))
	for _, v := range statusEnum.Variants {
		valid[v] = true
	}
	help := fmt.Sprintf("valid states: %s", strings.Join(statusEnum.Variants, ", "))
	check := func(state string, loc ast.SourceLocation) {
		if !valid[state] {
			ctx.AddDiagnostic(diagnostics.New(diagnostics.CodeInvalidLifecycleState, loc,
				fmt.Sprintf("%q is not a valid lifecycle state for entity %q", state, e.Name)).
				WithHelp(help))
		}
	}
	for _, tr := range e.Lifecycle.Transitions {
		check(tr.From, tr.Loc)
		check(tr.To, tr.Loc)
	}
}
