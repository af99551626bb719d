// Package checker implements the Domain Checker (§4.4): eight ordered
// phases over a parsed Domain, producing a TypeCheckResult. Grounded on
// the teacher's Analyzer/SemanticAnalyzerProcessor orchestration
// (internal/analyzer/analyzer.go, internal/analyzer/processor.go),
// replacing module-header/body analysis passes with this specification's
// fixed eight-phase sequence run through internal/pipeline.
package checker

import (
	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/config"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/inference"
	"github.com/idl-tools/semcore/internal/pipeline"
	"github.com/idl-tools/semcore/internal/resolver"
	"github.com/idl-tools/semcore/internal/symbols"
	"github.com/idl-tools/semcore/internal/typesystem"
)

// Result is the Domain Checker's output (§4.4: "TypeCheckResult").
type Result struct {
	Success         bool
	Diagnostics     []*diagnostics.Diagnostic
	SymbolTable     *symbols.SymbolTable
	ExpressionTypes map[ast.Expression]typesystem.ResolvedType
}

// Check runs the eight ordered phases over domain and returns the
// accumulated result. A fresh SymbolTable, Resolver and Inferencer are
// built for this call alone and never shared across calls (§5: "the
// symbol table is owned by one check invocation").
func Check(domain *ast.Domain, cfg config.Config) Result {
	table := symbols.NewSymbolTable()

	typeDecls := make(map[string]*ast.TypeDecl, len(domain.Types))
	for _, t := range domain.Types {
		typeDecls[t.Name] = t
	}
	entityDecls := make(map[string]*ast.EntityDecl, len(domain.Entities))
	for _, e := range domain.Entities {
		entityDecls[e.Name] = e
	}

	res := resolver.New(table, typeDecls, entityDecls, cfg)
	inf := inference.New(table, res, cfg)

	ctx := &pipeline.Context{
		Domain:      domain,
		Table:       table,
		Resolver:    res,
		Inferer:     inf,
		Config:      cfg,
		Behaviors:   make(map[string]typesystem.Behavior),
		EntityDecls: entityDecls,
	}

	p := pipeline.New(
		collectDeclarationsPhase{},
		resolveTypesPhase{},
		checkEntitiesPhase{},
		checkBehaviorsPhase{},
		globalInvariantsPhase{},
		policiesPhase{},
		viewsPhase{},
		scenariosPhase{},
	)
	ctx = p.Run(ctx)

	all := append(append([]*diagnostics.Diagnostic{}, ctx.Diagnostics...), res.Diagnostics...)
	all = append(all, inf.Diagnostics...)

	success := true
	for _, d := range all {
		if d.Severity == diagnostics.Error {
			success = false
			break
		}
	}

	return Result{
		Success:         success,
		Diagnostics:     all,
		SymbolTable:     table,
		ExpressionTypes: inf.ExpressionTypes,
	}
}
