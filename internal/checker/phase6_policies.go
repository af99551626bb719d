package checker

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/inference"
	"github.com/idl-tools/semcore/internal/pipeline"
)

// policiesPhase is Domain Checker phase 6: every policy's applies_to
// targets must name an existing behavior, its condition (if any) must be
// Boolean, and its actions are inferred for diagnostic side effects only.
type policiesPhase struct{}

func (policiesPhase) Process(ctx *pipeline.Context) *pipeline.Context {
	for _, p := range ctx.Domain.Policies {
		for _, target := range p.AppliesTo {
			if _, ok := ctx.Behaviors[target]; !ok {
				ctx.AddError(diagnostics.CodeUnknownPolicyTarget, p.Loc,
					fmt.Sprintf("policy %q applies to undefined behavior %q", p.Name, target))
			}
		}
		if p.Condition != nil {
			ctx.Inferer.RequireBoolean(p.Condition, inference.Context{})
		}
		for _, action := range p.Actions {
			ctx.Inferer.Infer(action, inference.Context{})
		}
	}
	return ctx
}
