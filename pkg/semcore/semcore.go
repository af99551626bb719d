// Package semcore is the public embedding facade over the semantic core:
// the two entry points named in §1 ("check(Domain) -> TypeCheckResult" and
// "verify(Domain, TestData, TargetHook?) -> VerificationReport"), grounded
// on the teacher's pkg/embed.VM facade (a thin wrapper gluing together
// internal packages behind a small stable surface a host program embeds).
// Everything under internal/ is an implementation detail; a caller only
// ever imports this package.
package semcore

import (
	"context"
	"time"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/bindings"
	"github.com/idl-tools/semcore/internal/checker"
	"github.com/idl-tools/semcore/internal/config"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/symbols"
	"github.com/idl-tools/semcore/internal/target"
	"github.com/idl-tools/semcore/internal/typesystem"
	"github.com/idl-tools/semcore/internal/verifier"
)

// Domain, Diagnostic and TargetHook are re-exported at this package's
// boundary so a caller never needs to import internal/ directly.
type (
	Domain     = ast.Domain
	Diagnostic = diagnostics.Diagnostic
	TargetHook = target.Hook
)

// HookFunc adapts a plain function to TargetHook, re-exported for callers
// wiring an in-process target without a dedicated type.
type HookFunc = target.HookFunc

// Config bounds analysis/evaluation work (recursion depth, quantifier and
// loop size caps, target timeout, suggestion edit distance). DefaultConfig
// returns the values used when none is supplied.
type Config = config.Config

// DefaultConfig returns the semantic core's default limits.
func DefaultConfig() Config { return config.Default() }

// CheckResult is the Domain Checker's output (§4.4: "TypeCheckResult").
type CheckResult struct {
	Success         bool
	Diagnostics     []*Diagnostic
	SymbolTable     *symbols.SymbolTable
	ExpressionTypes map[ast.Expression]typesystem.ResolvedType
}

// Check runs the eight ordered static-analysis phases over domain (§4.4)
// and returns the accumulated diagnostics, symbol table and per-expression
// type map. It performs no I/O and never invokes a target implementation.
func Check(domain *Domain) CheckResult {
	return CheckWithConfig(domain, DefaultConfig())
}

// CheckWithConfig is Check with caller-supplied limits (suggestion edit
// distance is the only one that affects checking; the rest bound verify).
func CheckWithConfig(domain *Domain, cfg Config) CheckResult {
	res := checker.Check(domain, cfg)
	return CheckResult{
		Success:         res.Success,
		Diagnostics:     res.Diagnostics,
		SymbolTable:     res.SymbolTable,
		ExpressionTypes: res.ExpressionTypes,
	}
}

// VerificationReport is the Contract Verifier's output (§4.7).
type VerificationReport = verifier.Report

// Mode selects how deeply Verify exercises a behavior (§4.7: "static,
// dynamic, scenario").
type Mode = verifier.Mode

const (
	ModeStatic   = verifier.ModeStatic
	ModeDynamic  = verifier.ModeDynamic
	ModeScenario = verifier.ModeScenario
)

// VerifyOption configures a Verify call.
type VerifyOption = verifier.Option

// WithHook registers the target.Hook a dynamic/scenario-mode verify call
// invokes (§6: "Target function contract (optional, dynamic mode)").
func WithHook(hook TargetHook) VerifyOption { return verifier.WithHook(hook) }

// WithTimeout overrides the sandboxed runner's per-invocation timeout.
func WithTimeout(d time.Duration) VerifyOption { return verifier.WithTimeout(d) }

// ParseTestData decodes the JSON test-data format (§6) into TestData.
func ParseTestData(raw []byte) (*bindings.TestData, error) { return bindings.ParseTestData(raw) }

// ParseTestDataYAML decodes the same shape from YAML, an alternative test-
// data front door the teacher's own YAML builtins motivate (see SPEC_FULL
// §1 Ambient Stack).
func ParseTestDataYAML(raw []byte) (*bindings.TestData, error) {
	return bindings.ParseTestDataYAML(raw)
}

// TestData is the parsed shape of the JSON/YAML test-data format (§6).
type TestData = bindings.TestData

// Verify runs mode-appropriate contract verification for domain against
// td (§4.7: "verify one behavior against one test-data record"). Only the
// behavior named by td's intent is verified; when td is nil or its intent
// names no declared behavior, the report holds one skipped behavior.
func Verify(ctx context.Context, domain *Domain, td *TestData, mode Mode, opts ...VerifyOption) VerificationReport {
	return VerifyWithConfig(ctx, domain, td, mode, DefaultConfig(), opts...)
}

// VerifyWithConfig is Verify with caller-supplied limits.
func VerifyWithConfig(ctx context.Context, domain *Domain, td *TestData, mode Mode, cfg Config, opts ...VerifyOption) VerificationReport {
	v := verifier.New(domain, cfg, opts...)
	return v.Verify(ctx, td, mode)
}
