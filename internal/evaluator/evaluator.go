// Package evaluator implements the Expression Evaluator (§4.5): a total
// function from an expression AST node plus an Environment to a Value,
// grounded on the teacher's tree-walking Eval (internal/evaluator/
// evaluator.go) but re-targeted at this domain's Value sum instead of a
// general-purpose language's Object set, and without the teacher's VM
// compile path (§1 Non-goals: no code generation back-ends here).
//
// Eval never panics on a well-typed expression (§8: "Expression totality
// on well-typed inputs"): every failure mode - division by zero, an
// out-of-range index, a quantifier exceeding its size cap - is returned
// as a *RuntimeError instead.
package evaluator

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/config"
	"github.com/idl-tools/semcore/internal/env"
	"github.com/idl-tools/semcore/internal/value"
)

// RuntimeError is a typed evaluation-time failure (§7: "Runtime
// evaluation" errors), distinct from a Go panic. The Contract Verifier
// converts one of these into a failed/errored CheckResult rather than
// aborting the enclosing behavior.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func errf(format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

// EffectHandler lets a caller override a normally-impure stdlib producer
// (now/uuid/random) with a deterministic stand-in, matching §5's "pure
// seams a test harness may override via an injected effect handler".
type EffectHandler func(args []value.Value) (value.Value, error)

// Evaluator holds the configuration limits (§4.7: "Global cap on
// recursion depth and quantifier collection size") and any injected
// effect handlers for one evaluation session. It carries no AST or
// Environment state of its own, so a single Evaluator is safely reused
// across every expression evaluated during one verify() call.
type Evaluator struct {
	cfg         config.Config
	effects     map[string]EffectHandler
	entityStore EntityStore
}

// EntityStore backs the Entity.lookup/.exists methods (§4.3) with a
// caller-supplied data source; the semantic core has no storage layer of
// its own (§1 Non-goals).
type EntityStore func(entityTypeName string, id value.Value) (value.Value, bool)

// New builds an Evaluator bounded by cfg, with no effect overrides.
func New(cfg config.Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// WithEntityStore registers the backing lookup for Entity.lookup/.exists
// and returns the receiver for chaining.
func (e *Evaluator) WithEntityStore(store EntityStore) *Evaluator {
	e.entityStore = store
	return e
}

// WithEffect registers an override for a named stdlib producer (e.g.
// "now", "uuid", "random") and returns the receiver for chaining.
func (e *Evaluator) WithEffect(name string, handler EffectHandler) *Evaluator {
	if e.effects == nil {
		e.effects = make(map[string]EffectHandler)
	}
	e.effects[name] = handler
	return e
}

// Eval computes expr's Value in environment, recursing through depth to
// enforce MaxRecursionDepth.
func (e *Evaluator) Eval(expr ast.Expression, environment *env.Environment) (value.Value, error) {
	return e.eval(expr, environment, 0)
}

func (e *Evaluator) eval(expr ast.Expression, environment *env.Environment, depth int) (value.Value, error) {
	if depth > e.cfg.MaxRecursionDepth {
		return nil, errf("recursion depth exceeded (max %d)", e.cfg.MaxRecursionDepth)
	}
	switch ex := expr.(type) {
	case *ast.Literal:
		return e.evalLiteral(ex)
	case *ast.Identifier:
		return e.evalIdentifier(ex, environment)
	case *ast.QualifiedName:
		return e.evalQualifiedName(ex, environment, depth)
	case *ast.BinaryExpression:
		return e.evalBinary(ex, environment, depth)
	case *ast.UnaryExpression:
		return e.evalUnary(ex, environment, depth)
	case *ast.MemberExpression:
		return e.evalMember(ex, environment, depth)
	case *ast.IndexExpression:
		return e.evalIndex(ex, environment, depth)
	case *ast.CallExpression:
		return e.evalCall(ex, environment, depth)
	case *ast.QuantifierExpression:
		return e.evalQuantifier(ex, environment, depth)
	case *ast.ConditionalExpression:
		return e.evalConditional(ex, environment, depth)
	case *ast.OldExpression:
		return e.evalOld(ex, environment, depth)
	case *ast.ResultExpression:
		return e.evalResult(ex, environment)
	case *ast.InputExpression:
		return e.evalInput(ex, environment)
	case *ast.LambdaExpression:
		return e.evalLambda(ex, environment, depth)
	case *ast.ListLiteralExpression:
		return e.evalListLiteral(ex, environment, depth)
	case *ast.MapLiteralExpression:
		return e.evalMapLiteral(ex, environment, depth)
	default:
		return nil, errf("unhandled expression node %T", expr)
	}
}
