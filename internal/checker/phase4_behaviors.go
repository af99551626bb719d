package checker

import (
	"github.com/idl-tools/semcore/internal/inference"
	"github.com/idl-tools/semcore/internal/pipeline"
	"github.com/idl-tools/semcore/internal/symbols"
)

// checkBehaviorsPhase is Domain Checker phase 4: enter each behavior's
// scope, bind its input fields as parameters, and type-check its
// preconditions, postconditions and invariants.
type checkBehaviorsPhase struct{}

func (checkBehaviorsPhase) Process(ctx *pipeline.Context) *pipeline.Context {
	for _, b := range ctx.Domain.Behaviors {
		behaviorType := ctx.Behaviors[b.Name]

		h := ctx.Table.EnterScope("behavior:"+b.Name, b.Loc)
		for _, f := range behaviorType.InputFields.List() {
			ctx.Table.DefineIn(h, symbols.Symbol{
				Name: f.Name, Kind: symbols.KindParameter, ResolvedType: f.Type, Location: b.Loc,
			})
		}

		preCtx := inference.Context{CurrentBehavior: &behaviorType}
		for _, pre := range b.Preconditions {
			ctx.Inferer.RequireBoolean(pre.Expr, preCtx)
		}

		postCtx := inference.Context{
			InPostcondition: true,
			CurrentBehavior: &behaviorType,
			OutputType:      behaviorType.OutputType,
		}
		for _, post := range b.Postconditions {
			ctx.Inferer.RequireBoolean(post.Expr, postCtx)
		}
		for _, inv := range b.Invariants {
			ctx.Inferer.RequireBoolean(inv.Expr, postCtx)
		}

		ctx.Table.ExitScope()
	}
	return ctx
}
