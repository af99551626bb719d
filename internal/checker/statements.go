package checker

import (
	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/inference"
	"github.com/idl-tools/semcore/internal/typesystem"
)

// inferStatements type-checks each statement's expressions in order,
// threading a growing set of locals forward: an AssignmentStmt's target
// becomes visible to every statement after it, matching how the scenario
// runner itself builds up bindings (§4.7 step 7).
func inferStatements(inf *inference.Inferencer, stmts []ast.Statement, ctx inference.Context) inference.Context {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.AssignmentStmt:
			t := inf.Infer(s.Value, ctx)
			ctx = ctx.WithLocal(s.Target, t)
		case *ast.CallStmt:
			ret := inf.Infer(s.Call, ctx)
			if s.Target != nil {
				ctx = ctx.WithLocal(*s.Target, ret)
			}
		case *ast.LoopStmt:
			inf.Infer(s.Count, ctx)
			loopCtx := ctx
			if s.Variable != nil {
				loopCtx = loopCtx.WithLocal(*s.Variable, typesystem.Primitive{Name: typesystem.PrimInt})
			}
			inferStatements(inf, s.Body, loopCtx)
		}
	}
	return ctx
}
