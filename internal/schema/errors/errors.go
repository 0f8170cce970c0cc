// Package errors provides structured diagnostics for the firelink schema
// validator. It defines diagnostic codes, categories, and severities, and a
// collected diagnostic list so a single validation pass can surface every
// problem in a declaration set rather than fail-fast on the first.
package errors

import (
	"encoding/json"
	"fmt"
)

// Code is a unique diagnostic code (e.g., "COL301", "STG202").
type Code string

// Category groups diagnostics by the schema model that raised them.
type Category string

const (
	// CategoryLiteral covers literal value diagnostics (LIT001-099)
	CategoryLiteral Category = "literal"
	// CategoryDirective covers field directive diagnostics (DIR100-199)
	CategoryDirective Category = "directive"
	// CategoryStorage covers storage tree diagnostics (STG200-299)
	CategoryStorage Category = "storage"
	// CategoryCollection covers collection path diagnostics (COL300-399)
	CategoryCollection Category = "collection"
	// CategoryAuth covers auth domain diagnostics (AUT400-499)
	CategoryAuth Category = "auth"
)

// Severity indicates how a diagnostic affects the validation outcome.
type Severity string

const (
	// SeverityError rejects the schema graph
	SeverityError Severity = "error"
	// SeverityWarning is surfaced but does not reject the graph
	SeverityWarning Severity = "warning"
	// SeverityInfo carries hints only
	SeverityInfo Severity = "info"
)

// Diagnostic is a single validation finding with enough structure for a
// code-generation consumer to report every problem in one run.
type Diagnostic struct {
	// Code is the unique diagnostic code (e.g., "AUT400")
	Code Code `json:"code"`
	// Type is a machine-readable diagnostic type identifier
	Type string `json:"type"`
	// Category is the schema model that raised the diagnostic
	Category Category `json:"category"`
	// Severity is the diagnostic severity level
	Severity Severity `json:"severity"`
	// Message is the primary human-readable message
	Message string `json:"message"`
	// Entity is the originating declared entity name, used only for
	// reporting, never for semantics
	Entity string `json:"entity,omitempty"`
	// Path is the schema path the diagnostic refers to (dotted for storage
	// nodes, slash-joined for collections)
	Path string `json:"path,omitempty"`
	// Suggestion provides a hint for fixing the problem (optional)
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	if d.Path != "" {
		return fmt.Sprintf("[%s] %s: %s (at %s)", d.Code, d.Severity, d.Message, d.Path)
	}
	return fmt.Sprintf("[%s] %s: %s", d.Code, d.Severity, d.Message)
}

// WithEntity sets the originating entity name for the diagnostic.
func (d *Diagnostic) WithEntity(entity string) *Diagnostic {
	d.Entity = entity
	return d
}

// WithPath sets the schema path for the diagnostic.
func (d *Diagnostic) WithPath(path string) *Diagnostic {
	d.Path = path
	return d
}

// WithSuggestion sets a fix suggestion for the diagnostic.
func (d *Diagnostic) WithSuggestion(suggestion string) *Diagnostic {
	d.Suggestion = suggestion
	return d
}

// ToJSON returns the diagnostic as a JSON string.
func (d *Diagnostic) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// List is an ordered collection of diagnostics from one validation pass.
type List []*Diagnostic

// Error implements the error interface.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
}

// HasErrors reports whether the list contains any error-severity
// diagnostics (warnings and info do not count).
func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether the list contains any warnings.
func (l List) HasWarnings() bool {
	for _, d := range l {
		if d.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// Counts returns the number of diagnostics by severity.
func (l List) Counts() (errors, warnings, info int) {
	for _, d := range l {
		switch d.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		case SeverityInfo:
			info++
		}
	}
	return
}

// ToJSON returns all diagnostics as a JSON array.
func (l List) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// newDiagnostic creates a Diagnostic with the given parameters.
func newDiagnostic(
	code Code,
	typ string,
	category Category,
	severity Severity,
	message string,
) *Diagnostic {
	return &Diagnostic{
		Code:     code,
		Type:     typ,
		Category: category,
		Severity: severity,
		Message:  message,
	}
}
