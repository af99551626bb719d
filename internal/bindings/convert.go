// Package bindings materializes test-data JSON into Bindings (§4.7 step
//1): `pre`/`post` value maps used to build the evaluator environments a
// behavior is checked against, grounded on the teacher's json.Unmarshal-
// into-map conventions (pkg/embed/marshaller.go) but targeting this
// package's own value.Value sum instead of the teacher's Object
// interface.
package bindings

import (
	"encoding/json"
	"regexp"

	"github.com/idl-tools/semcore/internal/value"
)

var (
	uuidPattern      = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)
)

// FromJSON converts a decoded JSON value into a Value using the
// promotion rules of §6 External Interfaces: integer number -> Int,
// non-integer -> Float (represented here as Decimal, this domain's only
// floating-point kind), a UUID-shaped string -> UUID, an ISO-8601-shaped
// string -> Timestamp, array -> List, object -> Record (a named Struct
// tagged "Object"), null -> an absent Optional.
func FromJSON(raw interface{}) (value.Value, error) {
	switch v := raw.(type) {
	case nil:
		return value.Optional{Present: false}, nil
	case bool:
		return value.Bool(v), nil
	case json.Number:
		return numberFromJSON(v)
	case string:
		return stringFromJSON(v), nil
	case []interface{}:
		elems := make([]value.Value, len(v))
		for i, el := range v {
			cv, err := FromJSON(el)
			if err != nil {
				return nil, err
			}
			elems[i] = cv
		}
		return value.List{Elements: elems}, nil
	case map[string]interface{}:
		return recordFromJSON(v)
	}
	return nil, errf("cannot convert JSON value of Go type %T", raw)
}

func recordFromJSON(m map[string]interface{}) (value.Value, error) {
	fields := make([]value.StructField, 0, len(m))
	for k, v := range m {
		cv, err := FromJSON(v)
		if err != nil {
			return nil, err
		}
		fields = append(fields, value.StructField{Name: k, Value: cv})
	}
	return value.Struct{Name: "Object", Fields: fields}, nil
}

func stringFromJSON(s string) value.Value {
	if uuidPattern.MatchString(s) {
		return value.UUID(s)
	}
	if timestampPattern.MatchString(s) {
		if t, err := parseTimestamp(s); err == nil {
			return t
		}
	}
	return value.String(s)
}

func errf(format string, args ...interface{}) error {
	return &ConversionError{Message: sprintf(format, args...)}
}

// ConversionError reports a structural failure materializing test data
// (§7: "Structural" errors are fatal, returned as a top-level error).
type ConversionError struct{ Message string }

func (e *ConversionError) Error() string { return e.Message }
