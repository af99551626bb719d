package inference

import "github.com/idl-tools/semcore/internal/typesystem"

// receiverKind names the receiver shape for an UNKNOWN_METHOD message.
// Dispatch itself is the pure (receiver_kind, method_name) -> signature
// function in dispatchMethod below (§9 Design Notes).
func receiverKind(t typesystem.ResolvedType) string {
	switch rt := t.(type) {
	case typesystem.List:
		return "List"
	case typesystem.Map:
		return "Map"
	case typesystem.Optional:
		return "Optional"
	case typesystem.Entity:
		return "Entity"
	case typesystem.Primitive:
		switch rt.Name {
		case typesystem.PrimString:
			return "String"
		case typesystem.PrimTimestamp:
			return "Timestamp"
		case typesystem.PrimDuration:
			return "Duration"
		}
	}
	return ""
}

var boolT = typesystem.Primitive{Name: typesystem.PrimBoolean}
var intT = typesystem.Primitive{Name: typesystem.PrimInt}
var stringT = typesystem.Primitive{Name: typesystem.PrimString}
var timestampT = typesystem.Primitive{Name: typesystem.PrimTimestamp}

// anyParam marks a parameter position whose argument is accepted at any
// type: checkArgs skips the assignability check against it (used for the
// lambda arguments of List filter/map and the identifier-keyed Entity
// lookup/exists, whose key type the Domain Checker does not pin down).
var anyParam = typesystem.Unknown{}

// dispatchMethod looks up the signature of method on a receiver of the
// given resolved type (§4.3 "Method dispatch by receiver"). Generic
// entries (List/Map/Optional) substitute the receiver's own element/key/
// value types for their signature's Param/Returns placeholders, since one
// static table entry covers every instantiation.
func dispatchMethod(receiver typesystem.ResolvedType, method string) (typesystem.Function, bool) {
	switch r := receiver.(type) {
	case typesystem.List:
		switch method {
		case "length", "count", "size":
			return typesystem.Function{Returns: intT}, true
		case "isEmpty", "isNotEmpty":
			return typesystem.Function{Returns: boolT}, true
		case "contains", "includes":
			return typesystem.Function{Params: []typesystem.ResolvedType{r.Element}, Returns: boolT}, true
		case "first", "last":
			return typesystem.Function{Returns: typesystem.Optional{Inner: r.Element}}, true
		case "filter", "map":
			return typesystem.Function{Params: []typesystem.ResolvedType{anyParam}, Returns: typesystem.List{Element: r.Element}}, true
		case "sum", "avg", "min", "max":
			return typesystem.Function{Returns: r.Element}, true
		}
	case typesystem.Map:
		switch method {
		case "size", "length", "count":
			return typesystem.Function{Returns: intT}, true
		case "keys":
			return typesystem.Function{Returns: typesystem.List{Element: r.Key}}, true
		case "values":
			return typesystem.Function{Returns: typesystem.List{Element: r.Value}}, true
		case "has", "containsKey":
			return typesystem.Function{Params: []typesystem.ResolvedType{r.Key}, Returns: boolT}, true
		case "get":
			return typesystem.Function{Params: []typesystem.ResolvedType{r.Key}, Returns: typesystem.Optional{Inner: r.Value}}, true
		}
	case typesystem.Optional:
		switch method {
		case "isDefined", "isEmpty":
			return typesystem.Function{Returns: boolT}, true
		case "get":
			return typesystem.Function{Returns: r.Inner}, true
		case "getOrElse":
			return typesystem.Function{Params: []typesystem.ResolvedType{r.Inner}, Returns: r.Inner}, true
		}
	case typesystem.Entity:
		switch method {
		case "lookup":
			return typesystem.Function{Params: []typesystem.ResolvedType{anyParam}, Returns: typesystem.Optional{Inner: r}}, true
		case "exists":
			return typesystem.Function{Params: []typesystem.ResolvedType{anyParam}, Returns: boolT}, true
		}
	case typesystem.Primitive:
		switch r.Name {
		case typesystem.PrimString:
			switch method {
			case "length", "size":
				return typesystem.Function{Returns: intT}, true
			case "isEmpty", "isNotEmpty":
				return typesystem.Function{Returns: boolT}, true
			case "contains", "startsWith", "endsWith", "matches":
				return typesystem.Function{Params: []typesystem.ResolvedType{stringT}, Returns: boolT}, true
			case "toUpper", "toLower", "trim", "reverse":
				return typesystem.Function{Returns: stringT}, true
			case "split":
				return typesystem.Function{Params: []typesystem.ResolvedType{stringT}, Returns: typesystem.List{Element: stringT}}, true
			}
		case typesystem.PrimTimestamp:
			switch method {
			case "before", "after":
				return typesystem.Function{Params: []typesystem.ResolvedType{timestampT}, Returns: boolT}, true
			}
		}
	}
	return typesystem.Function{}, false
}
