package evaluator

import (
	"time"

	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/env"
	"github.com/idl-tools/semcore/internal/value"
)

func (e *Evaluator) evalLiteral(lit *ast.Literal) (value.Value, error) {
	switch lit.Kind {
	case ast.IntLiteral:
		switch raw := lit.Raw.(type) {
		case int64:
			return value.NewInt(raw), nil
		case int:
			return value.NewInt(int64(raw)), nil
		case string:
			n, ok := value.NewIntFromString(raw)
			if !ok {
				return nil, errf("invalid integer literal %q", raw)
			}
			return n, nil
		}
		return nil, errf("invalid Int literal raw value %v", lit.Raw)
	case ast.DecimalLiteral:
		switch raw := lit.Raw.(type) {
		case string:
			d, ok := value.NewDecimalFromString(raw)
			if !ok {
				return nil, errf("invalid decimal literal %q", raw)
			}
			return d, nil
		case float64:
			return value.NewDecimal(raw), nil
		}
		return nil, errf("invalid Decimal literal raw value %v", lit.Raw)
	case ast.StringLiteral:
		s, _ := lit.Raw.(string)
		return value.String(s), nil
	case ast.BooleanLiteral:
		b, _ := lit.Raw.(bool)
		return value.Bool(b), nil
	case ast.DurationLiteral:
		switch raw := lit.Raw.(type) {
		case string:
			d, err := time.ParseDuration(raw)
			if err != nil {
				return nil, errf("invalid duration literal %q: %v", raw, err)
			}
			return value.Duration(d), nil
		case time.Duration:
			return value.Duration(raw), nil
		}
		return nil, errf("invalid Duration literal raw value %v", lit.Raw)
	case ast.NullLiteral:
		return value.Optional{Present: false}, nil
	default:
		return nil, errf("unhandled literal kind %v", lit.Kind)
	}
}

func (e *Evaluator) evalListLiteral(lit *ast.ListLiteralExpression, environment *env.Environment, depth int) (value.Value, error) {
	elems := make([]value.Value, len(lit.Elements))
	for i, el := range lit.Elements {
		v, err := e.eval(el, environment, depth+1)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return value.List{Elements: elems}, nil
}

func (e *Evaluator) evalMapLiteral(lit *ast.MapLiteralExpression, environment *env.Environment, depth int) (value.Value, error) {
	entries := make([]value.MapEntry, len(lit.Entries))
	for i, entry := range lit.Entries {
		k, err := e.eval(entry.Key, environment, depth+1)
		if err != nil {
			return nil, err
		}
		v, err := e.eval(entry.Value, environment, depth+1)
		if err != nil {
			return nil, err
		}
		entries[i] = value.MapEntry{Key: k, Value: v}
	}
	return value.Map{Entries: entries}, nil
}
