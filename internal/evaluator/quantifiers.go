package evaluator

import (
	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/env"
	"github.com/idl-tools/semcore/internal/value"
)

// collectionElements returns coll's members in their natural iteration
// order (§4.5: "Quantifiers iterate the collection in its natural order
// (list order, map entries in insertion order, set in insertion order)").
// A Map yields its values; a quantifier over key/value pairs is out of
// this grammar's scope.
func collectionElements(coll value.Value) ([]value.Value, error) {
	switch c := coll.(type) {
	case value.List:
		return c.Elements, nil
	case value.Set:
		return c.Elements, nil
	case value.Map:
		vals := make([]value.Value, len(c.Entries))
		for i, entry := range c.Entries {
			vals[i] = entry.Value
		}
		return vals, nil
	}
	return nil, errf("quantifier requires a collection, got %T", coll)
}

// evalQuantifier implements all/any/none/count/sum/filter (§4.3, §4.5,
// §8 "Quantifier laws": vacuous truths over an empty collection).
func (e *Evaluator) evalQuantifier(q *ast.QuantifierExpression, environment *env.Environment, depth int) (value.Value, error) {
	collVal, err := e.eval(q.Collection, environment, depth+1)
	if err != nil {
		return nil, err
	}
	elems, err := collectionElements(collVal)
	if err != nil {
		return nil, err
	}
	if len(elems) > e.cfg.MaxQuantifierSize {
		return nil, errf("quantifier collection size %d exceeds max %d", len(elems), e.cfg.MaxQuantifierSize)
	}

	switch q.Kind {
	case ast.QuantifierAll:
		for _, el := range elems {
			ok, err := e.quantifierBool(q, el, environment, depth)
			if err != nil {
				return nil, err
			}
			if !ok {
				return value.Bool(false), nil
			}
		}
		return value.Bool(true), nil
	case ast.QuantifierAny:
		for _, el := range elems {
			ok, err := e.quantifierBool(q, el, environment, depth)
			if err != nil {
				return nil, err
			}
			if ok {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	case ast.QuantifierNone:
		for _, el := range elems {
			ok, err := e.quantifierBool(q, el, environment, depth)
			if err != nil {
				return nil, err
			}
			if ok {
				return value.Bool(false), nil
			}
		}
		return value.Bool(true), nil
	case ast.QuantifierCount:
		var n int64
		for _, el := range elems {
			ok, err := e.quantifierBool(q, el, environment, depth)
			if err != nil {
				return nil, err
			}
			if ok {
				n++
			}
		}
		return value.NewInt(n), nil
	case ast.QuantifierSum:
		var total value.Value = value.NewInt(0)
		for _, el := range elems {
			child := env.NewEnclosed(environment)
			child.Set(q.Var, el)
			v, err := e.eval(q.Predicate, child, depth+1)
			if err != nil {
				return nil, err
			}
			total, err = evalPlus(total, v)
			if err != nil {
				return nil, err
			}
		}
		return total, nil
	case ast.QuantifierFilter:
		var kept []value.Value
		for _, el := range elems {
			ok, err := e.quantifierBool(q, el, environment, depth)
			if err != nil {
				return nil, err
			}
			if ok {
				kept = append(kept, el)
			}
		}
		return value.List{Elements: kept}, nil
	}
	return nil, errf("unhandled quantifier kind %v", q.Kind)
}

func (e *Evaluator) quantifierBool(q *ast.QuantifierExpression, el value.Value, environment *env.Environment, depth int) (bool, error) {
	child := env.NewEnclosed(environment)
	child.Set(q.Var, el)
	v, err := e.eval(q.Predicate, child, depth+1)
	if err != nil {
		return false, err
	}
	b, ok := v.(value.Bool)
	if !ok {
		return false, errf("quantifier predicate must be Boolean, got %T", v)
	}
	return bool(b), nil
}
