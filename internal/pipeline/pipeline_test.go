package pipeline

import (
	"testing"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/diagnostics"
)

type recordingPhase struct {
	name string
	log  *[]string
}

func (p recordingPhase) Process(ctx *Context) *Context {
	*p.log = append(*p.log, p.name)
	return ctx
}

type erroringPhase struct{}

func (erroringPhase) Process(ctx *Context) *Context {
	ctx.AddError(diagnostics.CodeInternal, ctx.Domain.Loc, "boom")
	return ctx
}

func TestPipeline_RunsPhasesInOrder(t *testing.T) {
	var log []string
	p := New(
		recordingPhase{name: "first", log: &log},
		recordingPhase{name: "second", log: &log},
		recordingPhase{name: "third", log: &log},
	)
	p.Run(&Context{Domain: &ast.Domain{}})

	want := []string{"first", "second", "third"}
	if len(log) != len(want) {
		t.Fatalf("expected %d phases to run, got %d", len(want), len(log))
	}
	for i, w := range want {
		if log[i] != w {
			t.Errorf("phase %d: expected %q, got %q", i, w, log[i])
		}
	}
}

func TestPipeline_ContinuesAfterAPhaseAddsDiagnostics(t *testing.T) {
	var log []string
	p := New(erroringPhase{}, recordingPhase{name: "after", log: &log})
	ctx := p.Run(&Context{Domain: &ast.Domain{}})

	if len(log) != 1 {
		t.Fatal("expected the phase after an erroring one to still run")
	}
	if len(ctx.Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic accumulated, got %d", len(ctx.Diagnostics))
	}
}
