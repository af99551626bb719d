// Package target defines the boundary the Contract Verifier crosses to
// drive a real implementation under test (§6 External Interfaces: "Target
// function contract"). A Hook is the only thing the semantic core knows
// about the outside world; how it is actually backed (in-process
// function, gRPC call, subprocess) is entirely up to the caller, mirroring
// the teacher's builtins_grpc.go dynamic-dispatch shape generalized to an
// injectable interface instead of a single hardcoded transport.
package target

import (
	"context"
	"fmt"

	"github.com/idl-tools/semcore/internal/value"
)

// Hook invokes behaviorName with args (already converted to value.Value
// in the behavior's declared input order) and returns either the target's
// result value or an error describing why invocation failed. Hook
// implementations do not themselves apply a timeout; the verifier's
// dynamic-mode invocation races each call against one through the
// sandboxed runner (§4.6). Scenario `when` calls reach the Hook directly,
// bounded only by the ctx they are given.
type Hook interface {
	Invoke(ctx context.Context, behaviorName string, args []value.Value) (value.Value, error)
}

// HookFunc adapts a plain function to Hook, the same pattern as
// net/http.HandlerFunc, used throughout the pack's test suites to stand
// up a target without a dedicated type.
type HookFunc func(ctx context.Context, behaviorName string, args []value.Value) (value.Value, error)

// Invoke implements Hook.
func (f HookFunc) Invoke(ctx context.Context, behaviorName string, args []value.Value) (value.Value, error) {
	return f(ctx, behaviorName, args)
}

// Error is a structured target-invocation failure carrying the code/message
// pair §4.7 step 7 compares scenario expectations against
// (`expected.error.code`, `expected.error.message`). A Hook that wants its
// failure reflected as a declared behavior error (rather than an opaque Go
// error) should return one of these.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsResult converts a Hook invocation's raw (value, error) pair into a
// value.Result, the uniform shape both postcondition evaluation (`result`)
// and scenario `expected` comparison consume (§3: "Result{success, value,
// error?}"). A non-*Error err is wrapped with an empty code, so an
// arbitrary Go error from a Hook still produces a well-formed Result
// instead of panicking the caller.
func AsResult(v value.Value, err error) value.Result {
	if err == nil {
		if v == nil {
			v = value.Unit{}
		}
		return value.Result{Success: true, Value: v}
	}
	if te, ok := err.(*Error); ok {
		return value.Result{Success: false, Error: &value.ResultError{Code: te.Code, Message: te.Message}}
	}
	return value.Result{Success: false, Error: &value.ResultError{Message: err.Error()}}
}
