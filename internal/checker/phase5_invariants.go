package checker

import (
	"github.com/idl-tools/semcore/internal/inference"
	"github.com/idl-tools/semcore/internal/pipeline"
)

// globalInvariantsPhase is Domain Checker phase 5: every domain-level
// invariant predicate must be Boolean.
type globalInvariantsPhase struct{}

func (globalInvariantsPhase) Process(ctx *pipeline.Context) *pipeline.Context {
	for _, inv := range ctx.Domain.Invariants {
		ctx.Inferer.RequireBoolean(inv.Expr, inference.Context{})
	}
	return ctx
}
