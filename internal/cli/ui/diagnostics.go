// Package ui formats validation output for the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/firelink-dev/firelink/internal/schema/errors"
)

// FormatDiagnostic renders one diagnostic for terminal output.
//
// Example output:
//
//	✗ COL301 unresolved_parent
//	  Sub-collection "x" declares parent "ghost", which never resolves to a declared collection
//	  at: x (entity Ghost)
//
//	  → Declare the parent collection, or check the parent chain for cycles
func FormatDiagnostic(d *errors.Diagnostic, noColor bool) string {
	var b strings.Builder

	var headerColor *color.Color
	var symbol string
	switch d.Severity {
	case errors.SeverityWarning:
		headerColor = color.New(color.FgYellow, color.Bold)
		symbol = "⚠"
	case errors.SeverityInfo:
		headerColor = color.New(color.FgCyan, color.Bold)
		symbol = "ℹ"
	default:
		headerColor = color.New(color.FgRed, color.Bold)
		symbol = "✗"
	}
	if noColor {
		headerColor.DisableColor()
	}

	headerColor.Fprintf(&b, "%s %s %s\n", symbol, d.Code, d.Type)
	fmt.Fprintf(&b, "  %s\n", d.Message)

	if d.Path != "" || d.Entity != "" {
		loc := d.Path
		if d.Entity != "" {
			if loc == "" {
				loc = fmt.Sprintf("entity %s", d.Entity)
			} else {
				loc = fmt.Sprintf("%s (entity %s)", loc, d.Entity)
			}
		}
		fmt.Fprintf(&b, "  at: %s\n", loc)
	}

	if d.Suggestion != "" {
		cyan := color.New(color.FgCyan)
		if noColor {
			cyan.DisableColor()
		}
		b.WriteString("\n")
		cyan.Fprintf(&b, "  → %s\n", d.Suggestion)
	}

	return b.String()
}

// WriteDiagnostics writes every diagnostic followed by a severity summary.
func WriteDiagnostics(w io.Writer, diags errors.List, noColor bool) {
	for i, d := range diags {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, FormatDiagnostic(d, noColor))
	}

	if len(diags) > 0 {
		errs, warns, _ := diags.Counts()
		fmt.Fprintf(w, "\n%d error(s), %d warning(s)\n", errs, warns)
	}
}

// FormatSuccess renders a success line.
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success line.
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}
