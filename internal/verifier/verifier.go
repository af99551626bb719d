// Package verifier implements the Contract Verifier (§4.7): given a
// checked Domain and materialized test data, it evaluates a behavior's
// preconditions, optionally invokes a real target implementation,
// evaluates postconditions and invariants against the outcome, and runs
// the behavior's attached scenarios. Grounded on the teacher's
// Analyzer/Processor orchestration shape (internal/analyzer/processor.go)
// for its ordered-phase-over-a-context structure, but the "phases" here
// are per-behavior verification steps instead of static analysis passes.
package verifier

import (
	"context"
	"fmt"
	"time"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/bindings"
	"github.com/idl-tools/semcore/internal/config"
	"github.com/idl-tools/semcore/internal/evaluator"
	"github.com/idl-tools/semcore/internal/scenario"
	"github.com/idl-tools/semcore/internal/target"
)

// Mode selects how deeply Verify exercises a behavior (§4.7: "static,
// dynamic, scenario").
type Mode int

const (
	// ModeStatic evaluates preconditions against the pre-state bindings
	// alone, never invoking a target implementation; postconditions and
	// invariants are not evaluated in this mode.
	ModeStatic Mode = iota
	// ModeDynamic additionally invokes the registered target.Hook and
	// checks its outcome against postconditions/invariants.
	ModeDynamic
	// ModeScenario additionally runs the behavior's attached scenarios.
	ModeScenario
)

func (m Mode) String() string {
	switch m {
	case ModeStatic:
		return "static"
	case ModeDynamic:
		return "dynamic"
	case ModeScenario:
		return "scenario"
	}
	return "unknown"
}

// Verifier drives contract verification for one checked Domain.
type Verifier struct {
	domain  *ast.Domain
	eval    *evaluator.Evaluator
	cfg     config.Config
	hook    target.Hook
	timeout time.Duration
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithHook registers the target.Hook a dynamic/scenario-mode verify call
// invokes.
func WithHook(hook target.Hook) Option {
	return func(v *Verifier) { v.hook = hook }
}

// WithTimeout overrides the sandboxed runner's per-invocation timeout
// (default cfg.DefaultTargetTimeout).
func WithTimeout(d time.Duration) Option {
	return func(v *Verifier) { v.timeout = d }
}

// WithEntityStore registers the backing lookup the expression evaluator
// uses for Entity.lookup/.exists (§4.3).
func WithEntityStore(store evaluator.EntityStore) Option {
	return func(v *Verifier) { v.eval.WithEntityStore(store) }
}

// New builds a Verifier for domain.
func New(domain *ast.Domain, cfg config.Config, opts ...Option) *Verifier {
	v := &Verifier{
		domain:  domain,
		eval:    evaluator.New(cfg),
		cfg:     cfg,
		timeout: cfg.DefaultTargetTimeout,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify runs mode-appropriate verification for the single behavior td
// names (§4.7: "verify one behavior against one test-data record"). td's
// `intent` (§6) names that behavior; an empty or unmatched intent yields
// a skipped report rather than silently running every behavior the
// domain declares against bindings meant for just one of them.
func (v *Verifier) Verify(ctx context.Context, td *bindings.TestData, mode Mode) Report {
	start := time.Now()
	report := Report{Mode: mode.String(), Timestamp: start}

	decl, skipReason := v.resolveIntent(td)
	var br BehaviorReport
	if decl == nil {
		br = BehaviorReport{Status: StatusSkipped, SkippedReason: skipReason}
	} else {
		br = v.verifyBehavior(ctx, decl, td, mode)
	}
	report.Behaviors = append(report.Behaviors, br)
	report.Summary.Total++
	switch br.Status {
	case StatusPassed:
		report.Summary.Passed++
	case StatusFailed:
		report.Summary.Failed++
	case StatusSkipped:
		report.Summary.Skipped++
	case StatusError:
		report.Summary.Errors++
	}

	report.DurationMS = time.Since(start).Milliseconds()
	return report
}

// resolveIntent finds the single behavior td.Intent names (§6: a test-data
// document's `intent` field names the one behavior it targets). It never
// falls back to "the domain's only behavior" - an empty or unmatched
// intent is reported as skipped rather than guessed at, so a caller's
// bindings are never evaluated against a behavior they weren't written
// for.
func (v *Verifier) resolveIntent(td *bindings.TestData) (*ast.BehaviorDecl, string) {
	if td == nil || td.Intent == "" {
		return nil, "no intent supplied in test data; nothing to verify"
	}
	for _, decl := range v.domain.Behaviors {
		if decl.Name == td.Intent {
			return decl, ""
		}
	}
	return nil, fmt.Sprintf("test data intent %q does not match any behavior in this domain", td.Intent)
}

func (v *Verifier) runner() *scenario.Runner {
	return scenario.New(v.eval, v.cfg, v.hook)
}
