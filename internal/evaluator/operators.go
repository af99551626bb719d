package evaluator

import (
	"math/big"
	"strings"
	"time"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/env"
	"github.com/idl-tools/semcore/internal/value"
)

func (e *Evaluator) evalUnary(u *ast.UnaryExpression, environment *env.Environment, depth int) (value.Value, error) {
	operand, err := e.eval(u.Operand, environment, depth+1)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case "not":
		b, ok := operand.(value.Bool)
		if !ok {
			return nil, errf("not requires Boolean, got %T", operand)
		}
		return value.Bool(!b), nil
	case "-":
		switch n := operand.(type) {
		case value.Int:
			return value.Int{Int: new(big.Int).Neg(n.Int)}, nil
		case value.Decimal:
			return value.Decimal{Rat: new(big.Rat).Neg(n.Rat)}, nil
		}
		return nil, errf("unary - requires numeric operand, got %T", operand)
	}
	return nil, errf("unhandled unary operator %q", u.Op)
}

// evalBinary evaluates every two-operand operator (§4.3 inference rule
// table, mirrored here at the value level). `and`/`or` short-circuit;
// `implies a b` is `(not a) or b` with short-circuit on `not a` (§9
// Design Notes: a distinct operator, not collapsed into `or`).
func (e *Evaluator) evalBinary(b *ast.BinaryExpression, environment *env.Environment, depth int) (value.Value, error) {
	switch b.Op {
	case "and":
		left, err := e.evalBool(b.Left, environment, depth)
		if err != nil {
			return nil, err
		}
		if !left {
			return value.Bool(false), nil
		}
		right, err := e.evalBool(b.Right, environment, depth)
		if err != nil {
			return nil, err
		}
		return value.Bool(right), nil
	case "or":
		left, err := e.evalBool(b.Left, environment, depth)
		if err != nil {
			return nil, err
		}
		if left {
			return value.Bool(true), nil
		}
		right, err := e.evalBool(b.Right, environment, depth)
		if err != nil {
			return nil, err
		}
		return value.Bool(right), nil
	case "implies":
		left, err := e.evalBool(b.Left, environment, depth)
		if err != nil {
			return nil, err
		}
		if !left {
			return value.Bool(true), nil
		}
		right, err := e.evalBool(b.Right, environment, depth)
		if err != nil {
			return nil, err
		}
		return value.Bool(right), nil
	case "iff":
		left, err := e.evalBool(b.Left, environment, depth)
		if err != nil {
			return nil, err
		}
		right, err := e.evalBool(b.Right, environment, depth)
		if err != nil {
			return nil, err
		}
		return value.Bool(left == right), nil
	}

	left, err := e.eval(b.Left, environment, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(b.Right, environment, depth+1)
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case "==":
		return value.Bool(value.Equal(left, right)), nil
	case "!=":
		return value.Bool(!value.Equal(left, right)), nil
	case "<", ">", "<=", ">=":
		return evalOrdered(b.Op, left, right)
	case "+":
		return evalPlus(left, right)
	case "-":
		return evalMinus(left, right)
	case "*", "/", "%":
		return evalArith(b.Op, left, right)
	case "in":
		return evalIn(left, right)
	}
	return nil, errf("unhandled binary operator %q", b.Op)
}

func (e *Evaluator) evalBool(expr ast.Expression, environment *env.Environment, depth int) (bool, error) {
	v, err := e.eval(expr, environment, depth+1)
	if err != nil {
		return false, err
	}
	b, ok := v.(value.Bool)
	if !ok {
		return false, errf("expected Boolean operand, got %T", v)
	}
	return bool(b), nil
}

func timeOf(t value.Timestamp) time.Time { return time.Time(t) }

func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Int:
		f := new(big.Float).SetInt(n.Int)
		out, _ := f.Float64()
		return out, true
	case value.Decimal:
		f, _ := n.Rat.Float64()
		return f, true
	}
	return 0, false
}

// asRat returns v's exact rational value, for comparisons that must not
// lose precision the way a float64 round-trip through asFloat would.
func asRat(v value.Value) (*big.Rat, bool) {
	switch n := v.(type) {
	case value.Int:
		return new(big.Rat).SetInt(n.Int), true
	case value.Decimal:
		return n.Rat, true
	}
	return nil, false
}

func evalOrdered(op string, left, right value.Value) (value.Value, error) {
	if lr, ok := asRat(left); ok {
		rr, ok := asRat(right)
		if !ok {
			return nil, errf("cannot compare %T with %T", left, right)
		}
		return value.Bool(compareOrdered(op, lr.Cmp(rr))), nil
	}
	if ls, ok := left.(value.String); ok {
		rs, ok := right.(value.String)
		if !ok {
			return nil, errf("cannot compare %T with %T", left, right)
		}
		return value.Bool(compareOrdered(op, strings.Compare(string(ls), string(rs)))), nil
	}
	if lt, ok := left.(value.Timestamp); ok {
		rt, ok := right.(value.Timestamp)
		if !ok {
			return nil, errf("cannot compare %T with %T", left, right)
		}
		lv, rv := time.Time(lt), time.Time(rt)
		cmp := 0
		switch {
		case lv.Before(rv):
			cmp = -1
		case lv.After(rv):
			cmp = 1
		}
		return value.Bool(compareOrdered(op, cmp)), nil
	}
	if ld, ok := left.(value.Duration); ok {
		rd, ok := right.(value.Duration)
		if !ok {
			return nil, errf("cannot compare %T with %T", left, right)
		}
		cmp := 0
		switch {
		case ld < rd:
			cmp = -1
		case ld > rd:
			cmp = 1
		}
		return value.Bool(compareOrdered(op, cmp)), nil
	}
	return nil, errf("values of kind %T are not ordered", left)
}

func compareOrdered(op string, cmp int) bool {
	switch op {
	case "<":
		return cmp < 0
	case ">":
		return cmp > 0
	case "<=":
		return cmp <= 0
	case ">=":
		return cmp >= 0
	}
	return false
}

func evalPlus(left, right value.Value) (value.Value, error) {
	if ls, ok := left.(value.String); ok {
		if rs, ok := right.(value.String); ok {
			return ls + rs, nil
		}
		return nil, errf("String + %T is invalid", right)
	}
	if ld, ok := left.(value.Duration); ok {
		if rd, ok := right.(value.Duration); ok {
			return ld + rd, nil
		}
		return nil, errf("Duration + %T is invalid", right)
	}
	if lt, ok := left.(value.Timestamp); ok {
		if rd, ok := right.(value.Duration); ok {
			return value.Timestamp(time.Time(lt).Add(time.Duration(rd))), nil
		}
		return nil, errf("Timestamp + %T is invalid", right)
	}
	return evalArith("+", left, right)
}

func evalMinus(left, right value.Value) (value.Value, error) {
	if lt, ok := left.(value.Timestamp); ok {
		if rt, ok := right.(value.Timestamp); ok {
			return value.Duration(time.Time(lt).Sub(time.Time(rt))), nil
		}
		if rd, ok := right.(value.Duration); ok {
			return value.Timestamp(time.Time(lt).Add(-time.Duration(rd))), nil
		}
		return nil, errf("Timestamp - %T is invalid", right)
	}
	return evalArith("-", left, right)
}

func evalArith(op string, left, right value.Value) (value.Value, error) {
	li, lIsInt := left.(value.Int)
	ri, rIsInt := right.(value.Int)
	if lIsInt && rIsInt && op != "/" {
		switch op {
		case "+":
			return value.Int{Int: new(big.Int).Add(li.Int, ri.Int)}, nil
		case "-":
			return value.Int{Int: new(big.Int).Sub(li.Int, ri.Int)}, nil
		case "*":
			return value.Int{Int: new(big.Int).Mul(li.Int, ri.Int)}, nil
		case "%":
			if ri.Sign() == 0 {
				return nil, errf("modulo by zero")
			}
			return value.Int{Int: new(big.Int).Rem(li.Int, ri.Int)}, nil
		}
	}
	lr, ok := asRat(left)
	if !ok {
		return nil, errf("%q requires numeric operands, got %T", op, left)
	}
	rr, ok := asRat(right)
	if !ok {
		return nil, errf("%q requires numeric operands, got %T", op, right)
	}
	switch op {
	case "+":
		return value.Decimal{Rat: new(big.Rat).Add(lr, rr)}, nil
	case "-":
		return value.Decimal{Rat: new(big.Rat).Sub(lr, rr)}, nil
	case "*":
		return value.Decimal{Rat: new(big.Rat).Mul(lr, rr)}, nil
	case "/":
		if rr.Sign() == 0 {
			return nil, errf("division by zero")
		}
		return value.Decimal{Rat: new(big.Rat).Quo(lr, rr)}, nil
	case "%":
		if rr.Sign() == 0 {
			return nil, errf("modulo by zero")
		}
		lf, rf := asMustFloat(lr), asMustFloat(rr)
		return value.NewDecimal(float64(int64(lf) % int64(rf))), nil
	}
	return nil, errf("unhandled arithmetic operator %q", op)
}

// asMustFloat converts an already-validated rational to float64, used
// only by "%"'s truncating fallback (a fractional modulo has no single
// natural arbitrary-precision definition, so this matches the same
// truncate-to-int64 behavior the rest of this operator always had).
func asMustFloat(r *big.Rat) float64 {
	f, _ := r.Float64()
	return f
}

func evalIn(left, right value.Value) (value.Value, error) {
	switch coll := right.(type) {
	case value.List:
		for _, el := range coll.Elements {
			if value.Equal(el, left) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	case value.Set:
		return value.Bool(coll.Has(left)), nil
	case value.Map:
		_, ok := coll.Get(left)
		return value.Bool(ok), nil
	}
	return nil, errf("'in' requires a collection, got %T", right)
}
