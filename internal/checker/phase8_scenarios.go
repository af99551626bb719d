package checker

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/inference"
	"github.com/idl-tools/semcore/internal/pipeline"
)

// scenariosPhase is Domain Checker phase 8: confirm each scenario's
// referenced behavior exists, then infer its then assertions as Boolean
// within a scope seeded by whatever given/when bind.
type scenariosPhase struct{}

func (scenariosPhase) Process(ctx *pipeline.Context) *pipeline.Context {
	for _, s := range ctx.Domain.Scenarios {
		behaviorType, ok := ctx.Behaviors[s.Behavior]
		if !ok {
			ctx.AddError(diagnostics.CodeUnknownScenarioBehavior, s.Loc,
				fmt.Sprintf("scenario %q references undefined behavior %q", s.Name, s.Behavior))
			continue
		}

		scCtx := inference.Context{CurrentBehavior: &behaviorType}
		scCtx = inferStatements(ctx.Inferer, s.Given, scCtx)
		scCtx = inferStatements(ctx.Inferer, s.When, scCtx)

		for _, then := range s.Then {
			ctx.Inferer.RequireBoolean(then.Expr, scCtx)
		}
	}
	return ctx
}
