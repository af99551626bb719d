package bindings

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/idl-tools/semcore/internal/value"
)

func sprintf(format string, args ...interface{}) string { return fmt.Sprintf(format, args...) }

// numberFromJSON promotes a json.Number to Int when it parses as a plain
// integer, Decimal otherwise (§6: "integer number -> Int; non-integer ->
// Float").
func numberFromJSON(n json.Number) (value.Value, error) {
	s := string(n)
	if !strings.ContainsAny(s, ".eE") {
		if i, ok := value.NewIntFromString(s); ok {
			return i, nil
		}
	}
	d, ok := value.NewDecimalFromString(s)
	if !ok {
		return nil, errf("invalid JSON number %q", s)
	}
	return d, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseTimestamp(s string) (value.Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return value.Timestamp(t.UTC()), nil
		}
	}
	return value.Timestamp{}, errf("not a valid timestamp: %q", s)
}

func jsonNumberFromInt(n int64) json.Number {
	return json.Number(strconv.FormatInt(n, 10))
}

func jsonNumberFromFloat(f float64) json.Number {
	return json.Number(strconv.FormatFloat(f, 'g', -1, 64))
}

// Decode parses raw JSON test data into a tree of Go values, preserving
// integer/float distinction via json.Number so FromJSON's promotion rule
// applies correctly (plain json.Unmarshal into interface{} would collapse
// every number to float64 first).
func Decode(raw []byte) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, errf("invalid JSON: %v", err)
	}
	return v, nil
}
