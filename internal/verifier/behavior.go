package verifier

import (
	"context"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/bindings"
	"github.com/idl-tools/semcore/internal/env"
	"github.com/idl-tools/semcore/internal/sandbox"
	"github.com/idl-tools/semcore/internal/target"
	"github.com/idl-tools/semcore/internal/value"
)

// verifyBehavior runs decl through the steps appropriate to mode (§4.7
// steps 1-7): materialize bindings, snapshot old, check preconditions,
// optionally invoke the target, check postconditions/invariants, then
// optionally run scenarios.
func (v *Verifier) verifyBehavior(ctx context.Context, decl *ast.BehaviorDecl, td *bindings.TestData, mode Mode) BehaviorReport {
	br := BehaviorReport{Behavior: decl.Name}

	if td == nil || td.Pre == nil {
		br.Status = StatusSkipped
		br.SkippedReason = "no test-data bindings supplied for this behavior"
		return br
	}

	materialized := bindings.Materialize(td)

	environment := env.New()
	for k, val := range materialized.Pre {
		environment.Set(k, val)
	}
	for k, val := range materialized.Old {
		environment.SetOld(k, val)
	}
	environment.SetInput(inputRecord(decl, materialized.Pre))

	preOK := true
	for _, pc := range decl.Preconditions {
		pr := v.evalPredicate(pc, environment)
		br.Preconditions = append(br.Preconditions, pr)
		if pr.Status != StatusPassed {
			preOK = false
		}
	}

	if mode == ModeStatic {
		br.Status = summarize(br.Preconditions, nil, nil)
		return br
	}

	if !preOK {
		// Preconditions failing does not by itself abort postcondition
		// checking (§4.7: "precondition failure doesn't abort
		// postcondition checks unless fail_fast"), but with nothing
		// invoked there is no result to check postconditions against.
		br.Status = StatusFailed
		return br
	}

	args := inputArgs(decl, materialized.Pre)
	outcome := v.invokeTarget(ctx, decl.Name, args)
	br.Target = outcome.TargetOutcome

	if outcome.Invoked && outcome.Succeeded {
		environment.SetResult(outcome.resultValue)
	} else if outcome.Invoked {
		environment.SetResult(target.AsResult(nil, &target.Error{Code: outcome.ErrorCode, Message: outcome.Message}))
	}

	if outcome.Invoked {
		for _, pc := range decl.Postconditions {
			pr := v.evalPredicate(pc, environment)
			br.Postconditions = append(br.Postconditions, pr)
		}
		for _, inv := range decl.Invariants {
			pr := v.evalPredicate(inv, environment)
			br.Invariants = append(br.Invariants, pr)
		}
	}

	if mode == ModeScenario {
		runner := v.runner()
		for _, sdecl := range v.domain.Scenarios {
			if sdecl.Behavior != decl.Name {
				continue
			}
			data := findScenarioData(td, sdecl.Name)
			out := runner.Run(ctx, sdecl, data, materialized.Pre)
			br.Scenarios = append(br.Scenarios, out)
		}
	}

	br.Status = summarize(br.Preconditions, br.Postconditions, br.Invariants)
	if !outcome.Invoked || !outcome.Succeeded {
		if br.Status == StatusPassed {
			br.Status = StatusFailed
		}
	}
	for _, s := range br.Scenarios {
		if !s.Passed && br.Status == StatusPassed {
			br.Status = StatusFailed
		}
	}
	return br
}

func findScenarioData(td *bindings.TestData, name string) bindings.ScenarioData {
	for _, sd := range td.Scenarios {
		if sd.Name == name {
			return sd
		}
	}
	return bindings.ScenarioData{Name: name}
}

func summarize(groups ...[]PredicateResult) Status {
	for _, g := range groups {
		for _, pr := range g {
			if pr.Status == StatusError {
				return StatusError
			}
		}
	}
	for _, g := range groups {
		for _, pr := range g {
			if pr.Status == StatusFailed {
				return StatusFailed
			}
		}
	}
	return StatusPassed
}

func (v *Verifier) evalPredicate(decl *ast.PredicateDecl, environment *env.Environment) PredicateResult {
	res, err := v.eval.Eval(decl.Expr, environment)
	if err != nil {
		return PredicateResult{Name: decl.Name, Status: StatusError, Message: err.Error()}
	}
	b, ok := res.(value.Bool)
	if !ok {
		return PredicateResult{Name: decl.Name, Status: StatusError, Message: "predicate did not evaluate to Boolean"}
	}
	if !bool(b) {
		return PredicateResult{Name: decl.Name, Status: StatusFailed, Message: "predicate evaluated to false"}
	}
	return PredicateResult{Name: decl.Name, Status: StatusPassed}
}

func (v *Verifier) invokeTarget(ctx context.Context, name string, args []value.Value) targetOutcome {
	if v.hook == nil {
		return targetOutcome{TargetOutcome: TargetOutcome{Invoked: false}}
	}
	task := func(taskCtx context.Context) (interface{}, error) {
		return v.hook.Invoke(taskCtx, name, args)
	}
	res := sandbox.Run(ctx, task, v.timeout)
	switch res.Outcome {
	case sandbox.Success:
		val, _ := res.Value.(value.Value)
		return targetOutcome{
			TargetOutcome: TargetOutcome{Invoked: true, Succeeded: true, Duration: res.Duration},
			resultValue:   val,
		}
	case sandbox.Timeout:
		return targetOutcome{TargetOutcome: TargetOutcome{
			Invoked: true, Succeeded: false, TimedOut: true,
			ErrorCode: "TIMEOUT", Message: "target invocation exceeded its timeout", Duration: res.Duration,
		}}
	default:
		code, msg := "", res.Err.Error()
		if te, ok := res.Err.(*target.Error); ok {
			code, msg = te.Code, te.Message
		}
		return targetOutcome{TargetOutcome: TargetOutcome{
			Invoked: true, Succeeded: false, ErrorCode: code, Message: msg, Duration: res.Duration,
		}}
	}
}

// targetOutcome carries the raw value.Value alongside the public
// TargetOutcome fields, used only inside verifyBehavior to bind `result`.
type targetOutcome struct {
	TargetOutcome
	resultValue value.Value
}

func inputRecord(decl *ast.BehaviorDecl, pre map[string]value.Value) value.Value {
	fields := make([]value.StructField, 0, len(decl.Input))
	for _, f := range decl.Input {
		if v, ok := pre[f.Name]; ok {
			fields = append(fields, value.StructField{Name: f.Name, Value: v})
		}
	}
	return value.Struct{Name: decl.Name + "Input", Fields: fields}
}

func inputArgs(decl *ast.BehaviorDecl, pre map[string]value.Value) []value.Value {
	args := make([]value.Value, len(decl.Input))
	for i, f := range decl.Input {
		args[i] = pre[f.Name]
	}
	return args
}
