package checker

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/inference"
	"github.com/idl-tools/semcore/internal/pipeline"
	"github.com/idl-tools/semcore/internal/symbols"
	"github.com/idl-tools/semcore/internal/typesystem"
)

// viewsPhase is Domain Checker phase 7: resolve each view's referenced
// entity, expose its fields in a child scope, and infer every computed
// view field against that scope.
type viewsPhase struct{}

func (viewsPhase) Process(ctx *pipeline.Context) *pipeline.Context {
	for _, v := range ctx.Domain.Views {
		entitySym, ok := ctx.Table.LookupLocal(ctx.Table.Root(), v.Entity)
		if !ok {
			ctx.AddError(diagnostics.CodeUnknownViewEntity, v.Loc,
				fmt.Sprintf("view %q references undefined entity %q", v.Name, v.Entity))
			continue
		}
		entityType, ok := entitySym.ResolvedType.(typesystem.Entity)
		if !ok {
			continue
		}

		h := ctx.Table.EnterScope("view:"+v.Name, v.Loc)
		for _, f := range entityType.Fields.List() {
			ctx.Table.DefineIn(h, symbols.Symbol{
				Name: f.Name, Kind: symbols.KindField, ResolvedType: f.Type, Location: v.Loc,
			})
		}
		for _, vf := range v.Fields {
			ctx.Inferer.Infer(vf.Expr, inference.Context{})
		}
		ctx.Table.ExitScope()
	}
	return ctx
}
