package bindings

import (
	"github.com/idl-tools/semcore/internal/value"
)

// Bindings is the per-behavior value set the verifier threads through
// precondition, postcondition and invariant evaluation (§3 Data Model:
// "Bindings (for verification)").
type Bindings struct {
	Pre    map[string]value.Value
	Post   map[string]value.Value
	Old    map[string]value.Value
	Result value.Value
	HasResult bool
}

// TestData is the parsed shape of the JSON test-data format (§6 External
// Interfaces).
type TestData struct {
	Intent    string
	Pre       map[string]value.Value
	Post      map[string]value.Value
	Scenarios []ScenarioData
}

// ScenarioData is one entry of TestData.Scenarios.
type ScenarioData struct {
	Name     string
	Given    map[string]value.Value
	When     map[string]value.Value
	Expected *ExpectedOutcome
}

// ExpectedOutcome is a scenario's optional `expected` block.
type ExpectedOutcome struct {
	HasSuccess bool
	Success    bool
	HasResult  bool
	Result     value.Value
	ErrorCode  string
	ErrorMsg   string
}

// ParseTestData decodes raw JSON test data into Value-typed TestData
// (§6: test data format).
func ParseTestData(raw []byte) (*TestData, error) {
	decoded, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	top, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, errf("test data root must be a JSON object")
	}
	return parseTestDataTree(top)
}

// parseTestDataTree walks a decoded top-level test-data mapping shared
// by both the JSON (ParseTestData) and YAML (ParseTestDataYAML) front
// doors.
func parseTestDataTree(top map[string]interface{}) (*TestData, error) {
	var err error
	td := &TestData{}
	if intent, ok := top["intent"].(string); ok {
		td.Intent = intent
	}
	if bindingsRaw, ok := top["bindings"].(map[string]interface{}); ok {
		if pre, ok := bindingsRaw["pre"].(map[string]interface{}); ok {
			td.Pre, err = convertMap(pre)
			if err != nil {
				return nil, err
			}
		}
		if post, ok := bindingsRaw["post"].(map[string]interface{}); ok {
			td.Post, err = convertMap(post)
			if err != nil {
				return nil, err
			}
		}
	}
	if scenariosRaw, ok := top["scenarios"].([]interface{}); ok {
		for _, sRaw := range scenariosRaw {
			sMap, ok := sRaw.(map[string]interface{})
			if !ok {
				continue
			}
			sd, err := convertScenario(sMap)
			if err != nil {
				return nil, err
			}
			td.Scenarios = append(td.Scenarios, sd)
		}
	}
	return td, nil
}

func convertScenario(m map[string]interface{}) (ScenarioData, error) {
	var sd ScenarioData
	if name, ok := m["name"].(string); ok {
		sd.Name = name
	}
	var err error
	if given, ok := m["given"].(map[string]interface{}); ok {
		sd.Given, err = convertMap(given)
		if err != nil {
			return sd, err
		}
	}
	if when, ok := m["when"].(map[string]interface{}); ok {
		sd.When, err = convertMap(when)
		if err != nil {
			return sd, err
		}
	}
	if expRaw, ok := m["expected"].(map[string]interface{}); ok {
		exp := &ExpectedOutcome{}
		if s, ok := expRaw["success"].(bool); ok {
			exp.HasSuccess = true
			exp.Success = s
		}
		if res, ok := expRaw["result"]; ok {
			cv, err := FromJSON(res)
			if err != nil {
				return sd, err
			}
			exp.HasResult = true
			exp.Result = cv
		}
		if errRaw, ok := expRaw["error"].(map[string]interface{}); ok {
			if code, ok := errRaw["code"].(string); ok {
				exp.ErrorCode = code
			}
			if msg, ok := errRaw["message"].(string); ok {
				exp.ErrorMsg = msg
			}
		}
		sd.Expected = exp
	}
	return sd, nil
}

func convertMap(m map[string]interface{}) (map[string]value.Value, error) {
	out := make(map[string]value.Value, len(m))
	for k, v := range m {
		cv, err := FromJSON(v)
		if err != nil {
			return nil, err
		}
		out[k] = cv
	}
	return out, nil
}

// Materialize builds the Bindings for one behavior check (§4.7 step 1-2):
// `old` is snapshotted from `pre` before anything mutates it.
func Materialize(td *TestData) *Bindings {
	b := &Bindings{Pre: td.Pre, Post: td.Post, Old: make(map[string]value.Value, len(td.Pre))}
	for k, v := range td.Pre {
		b.Old[k] = value.Clone(v)
	}
	return b
}
