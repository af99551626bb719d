// Package scenario implements the Scenario Runner (§4.8): a
// given/when/then state machine that executes one declarative scenario
// against a behavior, grounded on the Contract Verifier's per-behavior
// orchestration loop this package is driven from (§4.7 step 7).
package scenario

import (
	"context"
	"time"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/bindings"
	"github.com/idl-tools/semcore/internal/config"
	"github.com/idl-tools/semcore/internal/env"
	"github.com/idl-tools/semcore/internal/evaluator"
	"github.com/idl-tools/semcore/internal/target"
	"github.com/idl-tools/semcore/internal/value"
)

// Status tags how a scenario phase or a `then` assertion finished.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusError
	StatusSkipped
)

// Phase names the four scenario runner states (§4.8: "given_running,
// when_running, then_running, done"). Transitions are forward-only; a
// phase that errors jumps straight to done with partial results.
type Phase int

const (
	PhaseGivenRunning Phase = iota
	PhaseWhenRunning
	PhaseThenRunning
	PhaseDone
)

// StepResult is one executed given/when statement's outcome (§4.8: "Step
// results carry (description, status, duration)").
type StepResult struct {
	Description string
	Status      Status
	Duration    time.Duration
	Err         error
}

// AssertionResult is one `then` predicate's outcome (§4.8: "(status,
// message, expected?, actual?, values?, error?)").
type AssertionResult struct {
	Name     string
	Status   Status
	Message  string
	Expected value.Value
	Actual   value.Value
	Values   map[string]value.Value
	Err      error
}

// Outcome is the full result of running one scenario.
type Outcome struct {
	Name          string
	FinalPhase    Phase
	GivenSteps    []StepResult
	WhenSteps     []StepResult
	ThenResults   []AssertionResult
	ExpectedDiffs []string
	Passed        bool
}

// Runner drives one scenario's given/when/then statements.
type Runner struct {
	eval *evaluator.Evaluator
	cfg  config.Config
	hook target.Hook
}

// New builds a Runner. hook may be nil (no target invocation available;
// CallStmt steps that would drive it fail with a descriptive error).
func New(eval *evaluator.Evaluator, cfg config.Config, hook target.Hook) *Runner {
	return &Runner{eval: eval, cfg: cfg, hook: hook}
}

// Run executes decl against basePre overlaid with data's given/when JSON
// overlays (§4.7 step 7: "per-scenario child bindings with given and when
// overlays applied to pre").
func (r *Runner) Run(ctx context.Context, decl *ast.ScenarioDecl, data bindings.ScenarioData, basePre map[string]value.Value) Outcome {
	out := Outcome{Name: decl.Name}

	merged := make(map[string]value.Value, len(basePre))
	for k, v := range basePre {
		merged[k] = value.Clone(v)
	}
	for k, v := range data.Given {
		merged[k] = v
	}
	for k, v := range data.When {
		merged[k] = v
	}

	scenarioEnv := env.New()
	for k, v := range merged {
		scenarioEnv.Set(k, v)
	}
	for k, v := range merged {
		scenarioEnv.SetOld(k, value.Clone(v))
	}

	out.FinalPhase = PhaseGivenRunning
	givenOK, _, _ := r.runStatements(ctx, decl.Given, scenarioEnv, &out.GivenSteps)
	if !givenOK {
		out.FinalPhase = PhaseDone
		out.Passed = false
		return out
	}

	out.FinalPhase = PhaseWhenRunning
	whenOK, lastCall, haveCall := r.runStatements(ctx, decl.When, scenarioEnv, &out.WhenSteps)
	if !whenOK {
		out.FinalPhase = PhaseDone
		out.Passed = false
		return out
	}

	out.FinalPhase = PhaseThenRunning
	allPassed := true
	for _, then := range decl.Then {
		res, err := r.eval.Eval(then.Expr, scenarioEnv)
		ar := AssertionResult{Name: then.Name}
		if err != nil {
			ar.Status = StatusError
			ar.Err = err
			ar.Message = err.Error()
			allPassed = false
		} else if b, ok := res.(value.Bool); !ok {
			ar.Status = StatusFailed
			ar.Message = "then assertion did not evaluate to Boolean"
			allPassed = false
		} else if !bool(b) {
			ar.Status = StatusFailed
			ar.Expected = value.Bool(true)
			ar.Actual = value.Bool(false)
			allPassed = false
		} else {
			ar.Status = StatusPassed
			ar.Expected = value.Bool(true)
			ar.Actual = value.Bool(true)
		}
		out.ThenResults = append(out.ThenResults, ar)
	}

	if data.Expected != nil {
		diffs := compareExpected(data.Expected, lastCall, haveCall)
		out.ExpectedDiffs = diffs
		if len(diffs) > 0 {
			allPassed = false
		}
	}

	out.FinalPhase = PhaseDone
	out.Passed = allPassed
	return out
}

// runStatements executes stmts in order, appending a StepResult for
// each. It stops at the first error within the phase (§4.7: "Scenario
// given/when stop at first error within their phase"), returning false
// so the caller skips the remaining phases. The second and third return
// values carry the most recent target invocation's Result, so a
// scenario's `expected` block can be compared against it once the when
// phase finishes.
func (r *Runner) runStatements(ctx context.Context, stmts []ast.Statement, environment *env.Environment, steps *[]StepResult) (bool, value.Result, bool) {
	var lastCall value.Result
	var haveCall bool
	for _, stmt := range stmts {
		start := time.Now()
		res, had, err := r.execStatement(ctx, stmt, environment, 0)
		if had {
			lastCall, haveCall = res, true
		}
		sr := StepResult{Description: describeStatement(stmt), Duration: time.Since(start)}
		if err != nil {
			sr.Status = StatusError
			sr.Err = err
			*steps = append(*steps, sr)
			return false, lastCall, haveCall
		}
		sr.Status = StatusPassed
		*steps = append(*steps, sr)
	}
	return true, lastCall, haveCall
}

func describeStatement(stmt ast.Statement) string {
	switch s := stmt.(type) {
	case *ast.AssignmentStmt:
		return "set " + s.Target
	case *ast.CallStmt:
		if s.Target != nil {
			return "call into " + *s.Target
		}
		return "call"
	case *ast.LoopStmt:
		return "loop"
	}
	return "statement"
}
