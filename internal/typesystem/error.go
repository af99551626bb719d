package typesystem

import "fmt"

// SymbolNotFoundError indicates a qualified lookup stepped off the end of a
// structural type (e.g. `.field` on a type with no such field).
type SymbolNotFoundError struct {
	Name string
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("symbol not found: %s", e.Name)
}

func NewSymbolNotFoundError(name string) *SymbolNotFoundError {
	return &SymbolNotFoundError{Name: name}
}
