package checker

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/pipeline"
	"github.com/idl-tools/semcore/internal/symbols"
	"github.com/idl-tools/semcore/internal/typesystem"
)

// resolveTypesPhase is Domain Checker phase 2: resolve every type
// declaration body, fill entity field maps and behavior input/output
// shapes, and register declared error names.
type resolveTypesPhase struct{}

func (resolveTypesPhase) Process(ctx *pipeline.Context) *pipeline.Context {
	root := ctx.Table.Root()

	for _, t := range ctx.Domain.Types {
		resolved := ctx.Resolver.Resolve(t.Body)
		ctx.Table.UpdateResolvedType(root, t.Name, resolved)
	}

	for _, e := range ctx.Domain.Entities {
		fields := ctx.Resolver.EntityFields(e.Name)
		seen := make(map[string]bool, len(e.Fields))
		for _, f := range e.Fields {
			if seen[f.Name] {
				ctx.AddError(diagnostics.CodeDuplicateField, f.Loc, fmt.Sprintf("duplicate field %q on entity %q", f.Name, e.Name))
				continue
			}
			seen[f.Name] = true
			fields.Append(f.Name, resolveField(ctx, f))
		}
		entityType := typesystem.Entity{Name: e.Name, Fields: fields}
		if e.Lifecycle != nil {
			entityType.LifecycleStates = lifecycleStates(e.Lifecycle)
		}
		ctx.Table.UpdateResolvedType(root, e.Name, entityType)
	}

	for _, b := range ctx.Domain.Behaviors {
		inputFields := typesystem.NewFields()
		seen := make(map[string]bool, len(b.Input))
		for _, f := range b.Input {
			if seen[f.Name] {
				ctx.AddError(diagnostics.CodeDuplicateField, f.Loc, fmt.Sprintf("duplicate input field %q on behavior %q", f.Name, b.Name))
				continue
			}
			seen[f.Name] = true
			inputFields.Append(f.Name, resolveField(ctx, f))
		}
		output := ctx.Resolver.Resolve(b.Output)
		behaviorType := typesystem.Behavior{
			Name:        b.Name,
			InputFields: inputFields,
			OutputType:  output,
			ErrorTypes:  append([]string(nil), b.Errors...),
		}
		ctx.Table.UpdateResolvedType(root, b.Name, behaviorType)
		ctx.Behaviors[b.Name] = behaviorType

		for _, errName := range b.Errors {
			if _, ok := ctx.Table.LookupLocal(root, errName); ok {
				continue
			}
			ctx.Table.DefineIn(root, symbols.Symbol{
				Name:         errName,
				Kind:         symbols.KindError,
				ResolvedType: typesystem.Error{Message: errName},
				Location:     b.Loc,
			})
		}
	}

	return ctx
}

func resolveField(ctx *pipeline.Context, f *ast.FieldDecl) typesystem.ResolvedType {
	t := ctx.Resolver.Resolve(f.Type)
	if f.Optional {
		if _, already := t.(typesystem.Optional); !already {
			t = typesystem.Optional{Inner: t}
		}
	}
	return t
}

func lifecycleStates(l *ast.LifecycleDecl) []string {
	seen := make(map[string]bool)
	var states []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			states = append(states, s)
		}
	}
	for _, tr := range l.Transitions {
		add(tr.From)
		add(tr.To)
	}
	return states
}
