// Package pipeline runs the Domain Checker's ordered phases over a shared
// context, grounded on the teacher's Pipeline/Processor orchestration
// (internal/pipeline/pipeline.go): a fixed processor chain runs in order,
// each stage free to add diagnostics without aborting the chain, so later
// phases still run and report as much as possible (§4.4: "Errors are
// accumulated; later phases run to report as much as possible").
package pipeline

import (
	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/config"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/inference"
	"github.com/idl-tools/semcore/internal/resolver"
	"github.com/idl-tools/semcore/internal/symbols"
	"github.com/idl-tools/semcore/internal/typesystem"
)

// Context is the shared, mutable state every checker phase reads from and
// appends to. One Context is built per check() call and discarded at the
// end of it (§5 Concurrency Model: "the symbol table is owned by one
// check invocation").
type Context struct {
	Domain   *ast.Domain
	Table    *symbols.SymbolTable
	Resolver *resolver.Resolver
	Inferer  *inference.Inferencer
	Config   config.Config

	// Behaviors indexes resolved Behavior types by name, filled in by the
	// "resolve types" phase and read by every later phase that needs a
	// behavior's input/output shape (checking, policies, scenarios).
	Behaviors map[string]typesystem.Behavior

	// EntityDecls indexes top-level entity declarations by name for quick
	// existence checks (policies, views).
	EntityDecls map[string]*ast.EntityDecl

	Diagnostics []*diagnostics.Diagnostic
}

// AddError appends an error-severity diagnostic.
func (c *Context) AddError(code diagnostics.Code, loc ast.SourceLocation, msg string) {
	c.Diagnostics = append(c.Diagnostics, diagnostics.New(code, loc, msg))
}

// AddDiagnostic appends an already-built diagnostic (used when a phase
// wants to attach help/related information before recording it).
func (c *Context) AddDiagnostic(d *diagnostics.Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Processor is one ordered phase of the Domain Checker.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline runs a fixed sequence of Processors over one Context.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from the given phases, run in the given order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every phase in order, always continuing even if a phase
// appended diagnostics, so the checker reports as much as possible in a
// single pass (§4.4).
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}
