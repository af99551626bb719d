package scenario

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/bindings"
	"github.com/idl-tools/semcore/internal/value"
)

// compareExpected checks a scenario's `expected` block against the
// value.Result of the most recent target invocation made during `when`
// (§6: scenario test data may assert success/result/error directly
// instead of, or in addition to, `then` predicates).
func compareExpected(exp *bindings.ExpectedOutcome, res value.Result, haveCall bool) []string {
	if !haveCall {
		return []string{"expected block given but when did not invoke the target"}
	}

	var diffs []string
	if exp.HasSuccess && res.Success != exp.Success {
		diffs = append(diffs, fmt.Sprintf("expected success=%v, got success=%v", exp.Success, res.Success))
	}
	if exp.HasResult {
		if !res.Success {
			diffs = append(diffs, "expected a result value but the call failed")
		} else if !value.Equal(res.Value, exp.Result) {
			diffs = append(diffs, fmt.Sprintf("expected result %s, got %s", exp.Result, res.Value))
		}
	}
	if exp.ErrorCode != "" {
		if res.Success || res.Error == nil {
			diffs = append(diffs, fmt.Sprintf("expected error code %q but the call succeeded", exp.ErrorCode))
		} else if res.Error.Code != exp.ErrorCode {
			diffs = append(diffs, fmt.Sprintf("expected error code %q, got %q", exp.ErrorCode, res.Error.Code))
		}
	}
	if exp.ErrorMsg != "" {
		if res.Success || res.Error == nil {
			diffs = append(diffs, fmt.Sprintf("expected error message %q but the call succeeded", exp.ErrorMsg))
		} else if res.Error.Message != exp.ErrorMsg {
			diffs = append(diffs, fmt.Sprintf("expected error message %q, got %q", exp.ErrorMsg, res.Error.Message))
		}
	}
	return diffs
}
