package diagnostics

import (
	"fmt"

	"github.com/idl-tools/semcore/internal/ast"
)

// RelatedInformation points a diagnostic at a secondary location, e.g. the
// site of the original declaration a duplicate collides with.
type RelatedInformation struct {
	Message  string
	Location ast.SourceLocation
}

// Diagnostic is a structured, code-tagged report of a static error or
// warning (§3 Data Model).
type Diagnostic struct {
	Severity           Severity
	Code               Code
	Message            string
	Location           ast.SourceLocation
	Source             string
	RelatedInformation []RelatedInformation
	Notes              []string
	Help               string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Location, d.Code, d.Message)
}

// New builds an error-severity diagnostic from source "idl".
func New(code Code, loc ast.SourceLocation, message string) *Diagnostic {
	return &Diagnostic{
		Severity: Error,
		Code:     code,
		Message:  message,
		Location: loc,
		Source:   "idl",
	}
}

// NewWarning builds a warning-severity diagnostic.
func NewWarning(code Code, loc ast.SourceLocation, message string) *Diagnostic {
	d := New(code, loc, message)
	d.Severity = Warning
	return d
}

// WithHelp attaches a "did you mean" style suggestion and returns d for
// chaining at the call site.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// WithNote appends a free-form note.
func (d *Diagnostic) WithNote(note string) *Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// WithRelated attaches related-location information, e.g. a prior
// declaration a DUPLICATE_* diagnostic collides with.
func (d *Diagnostic) WithRelated(message string, loc ast.SourceLocation) *Diagnostic {
	d.RelatedInformation = append(d.RelatedInformation, RelatedInformation{Message: message, Location: loc})
	return d
}
