package inference

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/diagnostics"
	"github.com/idl-tools/semcore/internal/typesystem"
)

func boolType() typesystem.ResolvedType { return typesystem.Primitive{Name: typesystem.PrimBoolean} }

func (inf *Inferencer) inferBinary(e *ast.BinaryExpression, ctx Context) typesystem.ResolvedType {
	switch e.Op {
	case "==", "!=":
		return inf.inferEquality(e, ctx)
	case "<", ">", "<=", ">=":
		return inf.inferOrdering(e, ctx)
	case "and", "or", "implies", "iff":
		return inf.inferLogical(e, ctx)
	case "+", "-", "*", "/", "%":
		return inf.inferArithmetic(e, ctx)
	case "in":
		return inf.inferIn(e, ctx)
	default:
		return inf.addError(diagnostics.CodeInternal, e.Loc, fmt.Sprintf("unhandled binary operator %q", e.Op))
	}
}

func (inf *Inferencer) inferEquality(e *ast.BinaryExpression, ctx Context) typesystem.ResolvedType {
	l := inf.Infer(e.Left, ctx)
	r := inf.Infer(e.Right, ctx)
	if typesystem.IsAbsorbing(l) || typesystem.IsAbsorbing(r) {
		return boolType()
	}
	if !typesystem.Comparable(l, r) {
		inf.addError(diagnostics.CodeNotComparable, e.Loc, fmt.Sprintf("%s and %s are not comparable", l, r))
	}
	return boolType()
}

func (inf *Inferencer) inferOrdering(e *ast.BinaryExpression, ctx Context) typesystem.ResolvedType {
	l := inf.Infer(e.Left, ctx)
	r := inf.Infer(e.Right, ctx)
	if typesystem.IsAbsorbing(l) || typesystem.IsAbsorbing(r) {
		return boolType()
	}
	if !typesystem.Ordered(l) || !typesystem.Ordered(r) {
		inf.addError(diagnostics.CodeNotOrdered, e.Loc, fmt.Sprintf("%s and %s do not support ordering", l, r))
		return boolType()
	}
	if !typesystem.Comparable(l, r) {
		inf.addError(diagnostics.CodeNotComparable, e.Loc, fmt.Sprintf("%s and %s are not comparable", l, r))
	}
	return boolType()
}

// inferLogical handles and/or/implies/iff. Each is its own operator, not
// collapsed into another: `implies` is NOT rewritten as `not a or b` here,
// since doing so at the type-inference layer would mask an evaluator bug
// that shows up only at runtime (§9 Design Notes bug to avoid).
func (inf *Inferencer) inferLogical(e *ast.BinaryExpression, ctx Context) typesystem.ResolvedType {
	inf.RequireBoolean(e.Left, ctx)
	inf.RequireBoolean(e.Right, ctx)
	return boolType()
}

func (inf *Inferencer) inferArithmetic(e *ast.BinaryExpression, ctx Context) typesystem.ResolvedType {
	l := inf.Infer(e.Left, ctx)
	r := inf.Infer(e.Right, ctx)
	if typesystem.IsAbsorbing(l) || typesystem.IsAbsorbing(r) {
		return typesystem.Unknown{}
	}
	lp, lok := l.(typesystem.Primitive)
	rp, rok := r.(typesystem.Primitive)
	numeric := func(p typesystem.Primitive) bool {
		return p.Name == typesystem.PrimInt || p.Name == typesystem.PrimDecimal
	}
	if lok && rok && numeric(lp) && numeric(rp) {
		return typesystem.Widen(l, r)
	}
	// String+String, Duration arithmetic and Timestamp +/- Duration are the
	// other legal shapes the grammar allows (§4.3 operator table).
	if e.Op == "+" && lok && lp.Name == typesystem.PrimString && rok && rp.Name == typesystem.PrimString {
		return typesystem.Primitive{Name: typesystem.PrimString}
	}
	if e.Op == "+" || e.Op == "-" {
		if lok && lp.Name == typesystem.PrimTimestamp && rok && rp.Name == typesystem.PrimDuration {
			return typesystem.Primitive{Name: typesystem.PrimTimestamp}
		}
		if lok && lp.Name == typesystem.PrimDuration && rok && rp.Name == typesystem.PrimDuration {
			return typesystem.Primitive{Name: typesystem.PrimDuration}
		}
		if e.Op == "-" && lok && lp.Name == typesystem.PrimTimestamp && rok && rp.Name == typesystem.PrimTimestamp {
			return typesystem.Primitive{Name: typesystem.PrimDuration}
		}
	}
	inf.addError(diagnostics.CodeTypeMismatch, e.Loc, fmt.Sprintf("operator %q not defined for %s and %s", e.Op, l, r))
	return typesystem.Unknown{}
}

func (inf *Inferencer) inferIn(e *ast.BinaryExpression, ctx Context) typesystem.ResolvedType {
	elem := inf.Infer(e.Left, ctx)
	coll := inf.Infer(e.Right, ctx)
	if typesystem.IsAbsorbing(coll) {
		return boolType()
	}
	switch c := coll.(type) {
	case typesystem.List:
		if !typesystem.IsAbsorbing(elem) && !typesystem.Comparable(elem, c.Element) {
			inf.addError(diagnostics.CodeTypeMismatch, e.Loc, fmt.Sprintf("%s is not a member of List<%s>", elem, c.Element))
		}
	case typesystem.Map:
		if !typesystem.IsAbsorbing(elem) && !typesystem.Comparable(elem, c.Key) {
			inf.addError(diagnostics.CodeTypeMismatch, e.Loc, fmt.Sprintf("%s is not a valid key for %s", elem, c))
		}
	default:
		inf.addError(diagnostics.CodeNotIterable, e.Loc, fmt.Sprintf("%s is not iterable", coll))
	}
	return boolType()
}

func (inf *Inferencer) inferUnary(e *ast.UnaryExpression, ctx Context) typesystem.ResolvedType {
	switch e.Op {
	case "not":
		inf.RequireBoolean(e.Operand, ctx)
		return boolType()
	case "-":
		t := inf.Infer(e.Operand, ctx)
		if typesystem.IsAbsorbing(t) {
			return t
		}
		if p, ok := t.(typesystem.Primitive); ok && (p.Name == typesystem.PrimInt || p.Name == typesystem.PrimDecimal) {
			return t
		}
		inf.addError(diagnostics.CodeTypeMismatch, e.Loc, fmt.Sprintf("unary - not defined for %s", t))
		return typesystem.Unknown{}
	default:
		return inf.addError(diagnostics.CodeInternal, e.Loc, fmt.Sprintf("unhandled unary operator %q", e.Op))
	}
}
