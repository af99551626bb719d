package verifier

import (
	"strings"
	"testing"
	"time"
)

func TestHumanSummary_IncludesCountsAndDuration(t *testing.T) {
	r := Report{
		Mode: "dynamic",
		Summary: Summary{
			Total: 1200, Passed: 1000, Failed: 150, Skipped: 40, Errors: 10,
		},
		DurationMS: 2500,
		Timestamp:  time.Now().Add(-time.Minute),
	}
	summary := r.HumanSummary()

	for _, want := range []string{"dynamic verify", "1,200", "1,000", "150", "40", "10", "2.5s"} {
		if !strings.Contains(summary, want) {
			t.Errorf("expected summary to contain %q, got %q", want, summary)
		}
	}
}

func TestHumanizeDuration_SubSecondStaysInMilliseconds(t *testing.T) {
	got := humanizeDuration(250 * time.Millisecond)
	if got != "250ms" {
		t.Errorf("expected 250ms, got %q", got)
	}
}
