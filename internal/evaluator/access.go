package evaluator

import (
	"github.com/idl-tools/semcore/internal/ast"
	"github.com/idl-tools/semcore/internal/env"
	"github.com/idl-tools/semcore/internal/value"
)

func (e *Evaluator) evalIdentifier(id *ast.Identifier, environment *env.Environment) (value.Value, error) {
	v, ok := environment.Get(id.Name)
	if !ok {
		return nil, errf("undefined variable %q", id.Name)
	}
	return v, nil
}

// evalQualifiedName resolves a dotted reference by evaluating the first
// part as an identifier, then stepping into the remaining parts as field
// accesses, mirroring SymbolTable.LookupQualified at the value level
// (§4.1, §4.3: "QualifiedName").
func (e *Evaluator) evalQualifiedName(qn *ast.QualifiedName, environment *env.Environment, depth int) (value.Value, error) {
	if len(qn.Parts) == 0 {
		return nil, errf("empty qualified name")
	}
	cur, ok := environment.Get(qn.Parts[0])
	if !ok {
		return nil, errf("undefined variable %q", qn.Parts[0])
	}
	for _, part := range qn.Parts[1:] {
		next, err := stepField(cur, part)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// stepField reads field name off v, transparently unwrapping an Optional
// receiver to Optional<field> the way inference's StepInto does for
// types (§4.3: "Member ... through Optional yields Optional<field>").
func stepField(v value.Value, name string) (value.Value, error) {
	switch rv := v.(type) {
	case value.Struct:
		if f, ok := rv.Get(name); ok {
			return f, nil
		}
		return nil, errf("no field %q on %s", name, rv.Name)
	case value.Entity:
		if f, ok := rv.Get(name); ok {
			return f, nil
		}
		return nil, errf("no field %q on entity %s", name, rv.Name)
	case value.Enum:
		return rv, nil
	case value.Optional:
		if !rv.Present {
			return value.Optional{Present: false}, nil
		}
		inner, err := stepField(rv.Inner, name)
		if err != nil {
			return nil, err
		}
		if opt, ok := inner.(value.Optional); ok {
			return opt, nil
		}
		return value.Optional{Present: true, Inner: inner}, nil
	case value.Result:
		if name == "success" {
			return value.Bool(rv.Success), nil
		}
		if name == "value" {
			return rv.Value, nil
		}
		if name == "error" && rv.Error != nil {
			return value.Struct{Name: "Error", Fields: []value.StructField{
				{Name: "code", Value: value.String(rv.Error.Code)},
				{Name: "message", Value: value.String(rv.Error.Message)},
			}}, nil
		}
		return nil, errf("no field %q on Result", name)
	}
	return nil, errf("value of kind %T has no field %q", v, name)
}

func (e *Evaluator) evalMember(mem *ast.MemberExpression, environment *env.Environment, depth int) (value.Value, error) {
	target, err := e.eval(mem.Target, environment, depth+1)
	if err != nil {
		return nil, err
	}
	return stepField(target, mem.Field)
}

func (e *Evaluator) evalIndex(idx *ast.IndexExpression, environment *env.Environment, depth int) (value.Value, error) {
	target, err := e.eval(idx.Target, environment, depth+1)
	if err != nil {
		return nil, err
	}
	key, err := e.eval(idx.Index, environment, depth+1)
	if err != nil {
		return nil, err
	}
	switch t := target.(type) {
	case value.List:
		i, ok := key.(value.Int)
		if !ok {
			return nil, errf("list index must be Int, got %T", key)
		}
		idx := i.Int64()
		if idx < 0 || idx >= int64(len(t.Elements)) {
			return nil, errf("list index %d out of range (len %d)", idx, len(t.Elements))
		}
		return t.Elements[idx], nil
	case value.Map:
		v, ok := t.Get(key)
		if !ok {
			return value.Optional{Present: false}, nil
		}
		return value.Optional{Present: true, Inner: v}, nil
	case value.String:
		i, ok := key.(value.Int)
		if !ok {
			return nil, errf("string index must be Int, got %T", key)
		}
		runes := []rune(string(t))
		idx := i.Int64()
		if idx < 0 || idx >= int64(len(runes)) {
			return nil, errf("string index %d out of range (len %d)", idx, len(runes))
		}
		return value.String(string(runes[idx])), nil
	}
	return nil, errf("value of kind %T is not indexable", target)
}

func (e *Evaluator) evalOld(o *ast.OldExpression, environment *env.Environment, depth int) (value.Value, error) {
	// old(e) evaluates e against the snapshot environment rather than by
	// rewriting e's identifier names, so old(x.y) and any deeper chain
	// work uniformly (§9 Design Notes: the teacher's name-rewriting
	// approach is the bug this reimplementation avoids).
	return e.eval(o.Inner, environment.OldView(), depth+1)
}

func (e *Evaluator) evalResult(r *ast.ResultExpression, environment *env.Environment) (value.Value, error) {
	res, ok := environment.Result()
	if !ok {
		return nil, errf("result is not bound in this environment")
	}
	if r.Field == "" {
		return res, nil
	}
	return stepField(res, r.Field)
}

func (e *Evaluator) evalInput(in *ast.InputExpression, environment *env.Environment) (value.Value, error) {
	input, ok := environment.Input()
	if !ok {
		return nil, errf("input is not bound in this environment")
	}
	return stepField(input, in.Field)
}
