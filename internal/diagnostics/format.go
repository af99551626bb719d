package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// severityColor is the ANSI SGR code for each severity, matching the
// teacher's own TTY-gated color table (internal/evaluator/builtins_term.go)
// rather than inventing a new palette.
var severityColor = map[Severity]string{
	Error:   "\x1b[31m", // red
	Warning: "\x1b[33m", // yellow
	Info:    "\x1b[36m", // cyan
	Hint:    "\x1b[90m", // bright black
}

const colorReset = "\x1b[0m"

// ColorEnabled reports whether w is a terminal that should receive ANSI
// color codes, the same isatty-gated check the teacher applies before
// coloring its own REPL/diagnostic output rather than unconditionally
// emitting escape codes a redirected file or CI log would just show as
// garbage.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WriteHuman renders one diagnostic as a single human-readable line,
// colorizing the severity tag when color is true. This is a plain-text
// line formatter an embedder's own CLI or log sink can call; it is not the
// markdown/JUnit report rendering spec.md's §1 Non-goals exclude.
func WriteHuman(w io.Writer, d *Diagnostic, color bool) {
	sev := d.Severity.String()
	if color {
		if c, ok := severityColor[d.Severity]; ok {
			sev = c + sev + colorReset
		}
	}
	fmt.Fprintf(w, "%s: %s [%s] %s\n", d.Location, sev, d.Code, d.Message)
	if d.Help != "" {
		fmt.Fprintf(w, "  help: %s\n", d.Help)
	}
	for _, note := range d.Notes {
		fmt.Fprintf(w, "  note: %s\n", note)
	}
	for _, rel := range d.RelatedInformation {
		fmt.Fprintf(w, "  related: %s (%s)\n", rel.Message, rel.Location)
	}
}

// WriteAllHuman renders every diagnostic in order, auto-detecting color
// support from w via ColorEnabled.
func WriteAllHuman(w io.Writer, diags []*Diagnostic) {
	color := ColorEnabled(w)
	for _, d := range diags {
		WriteHuman(w, d, color)
	}
}
