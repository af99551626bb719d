package diagnostics

// Code is a stable diagnostic identifier (§6 External Interfaces: "Codes
// are stable, not human text"). Values never change once published; add
// new ones instead of renaming.
type Code string

const (
	// Name resolution.
	CodeUndefinedType     Code = "UNDEFINED_TYPE"
	CodeUndefinedVariable Code = "UNDEFINED_VARIABLE"
	CodeUndefinedEntity   Code = "UNDEFINED_ENTITY"
	CodeUndefinedBehavior Code = "UNDEFINED_BEHAVIOR"
	CodeUndefinedField    Code = "UNDEFINED_FIELD"
	CodeCircularReference Code = "CIRCULAR_REFERENCE"

	// Duplicate declarations (§4.1, §4.4 phase 1-2).
	CodeDuplicateType     Code = "DUPLICATE_TYPE"
	CodeDuplicateEntity   Code = "DUPLICATE_ENTITY"
	CodeDuplicateBehavior Code = "DUPLICATE_BEHAVIOR"
	CodeDuplicateField    Code = "DUPLICATE_FIELD"
	CodeDuplicateSymbol   Code = "DUPLICATE_SYMBOL"

	// Type inference (§4.3).
	CodeTypeMismatch              Code = "TYPE_MISMATCH"
	CodeNotBoolean                Code = "NOT_BOOLEAN"
	CodeNotComparable             Code = "NOT_COMPARABLE"
	CodeNotOrdered                Code = "NOT_ORDERED"
	CodeNotIndexable              Code = "NOT_INDEXABLE"
	CodeNotIterable               Code = "NOT_ITERABLE"
	CodeUnknownMethod             Code = "UNKNOWN_METHOD"
	CodeInputInvalidField         Code = "INPUT_INVALID_FIELD"
	CodeOldOutsidePostcondition   Code = "OLD_OUTSIDE_POSTCONDITION"
	CodeResultOutsidePostcondition Code = "RESULT_OUTSIDE_POSTCONDITION"
	CodeArityMismatch             Code = "ARITY_MISMATCH"

	// Entities (§4.4 phase 3).
	CodeInvalidLifecycleState Code = "INVALID_LIFECYCLE_STATE"

	// Policies and views (§4.4 phases 6-7).
	CodeUnknownPolicyTarget Code = "UNKNOWN_POLICY_TARGET"
	CodeUnknownViewEntity   Code = "UNKNOWN_VIEW_ENTITY"

	// Scenarios (§4.4 phase 8).
	CodeUnknownScenarioBehavior Code = "UNKNOWN_SCENARIO_BEHAVIOR"

	// Internal / structural (§7).
	CodeInternal Code = "INTERNAL_ERROR"
)
