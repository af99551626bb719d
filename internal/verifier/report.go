package verifier

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idl-tools/semcore/internal/scenario"
)

// Status tags a behavior's or a single predicate's overall outcome.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusSkipped
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// PredicateResult is one precondition/postcondition/invariant's outcome.
type PredicateResult struct {
	Name    string
	Status  Status
	Message string
}

// TargetOutcome records a dynamic-mode target invocation's result
// (§4.7: "the target's success/failure is itself reported, distinct from
// a postcondition failing against it").
type TargetOutcome struct {
	Invoked   bool
	Succeeded bool
	TimedOut  bool
	ErrorCode string
	Message   string
	Duration  time.Duration
}

// BehaviorReport is one behavior's full verification outcome.
type BehaviorReport struct {
	Behavior        string
	Status          Status
	Preconditions   []PredicateResult
	Target          TargetOutcome
	Postconditions  []PredicateResult
	Invariants      []PredicateResult
	Scenarios       []scenario.Outcome
	SkippedReason   string
}

// Summary totals a Report's behaviors by outcome.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
	Errors  int
}

// Report is the Contract Verifier's top-level output (§4.7:
// "VerificationReport{mode, behaviors, summary, duration_ms, timestamp,
// warnings}").
type Report struct {
	Mode       string
	Behaviors  []BehaviorReport
	Summary    Summary
	DurationMS int64
	Timestamp  time.Time
	Warnings   []string
}

// HumanSummary renders the report's aggregate counts as a short,
// embedder-facing sentence (not a markdown/JUnit rendering, which stays
// out of scope per §1 - this is a one-line `%v`-style description a host
// logs or displays alongside the structured Report). Grounded on the
// teacher's own dustin/go-humanize dependency, otherwise unexercised by
// the retrieved slice of its codebase (see DESIGN.md).
func (r Report) HumanSummary() string {
	return fmt.Sprintf(
		"%s verify: %s behaviors checked (%s passed, %s failed, %s skipped, %s errors) in %s, run %s",
		r.Mode,
		humanize.Comma(int64(r.Summary.Total)),
		humanize.Comma(int64(r.Summary.Passed)),
		humanize.Comma(int64(r.Summary.Failed)),
		humanize.Comma(int64(r.Summary.Skipped)),
		humanize.Comma(int64(r.Summary.Errors)),
		humanizeDuration(time.Duration(r.DurationMS)*time.Millisecond),
		humanize.Time(r.Timestamp),
	)
}

func humanizeDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}
