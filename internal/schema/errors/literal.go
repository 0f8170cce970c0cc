package errors

import "fmt"

// Literal value diagnostic codes (LIT001-099)
const (
	// ErrInvalidLiteral indicates an empty literal expression for a
	// non-null kind
	ErrInvalidLiteral Code = "LIT001"
	// ErrNilLiteralizer indicates a nil object passed to an object literal
	// factory
	ErrNilLiteralizer Code = "LIT002"
)

// NewInvalidLiteral creates a LIT001 diagnostic.
func NewInvalidLiteral(kind string) *Diagnostic {
	return newDiagnostic(
		ErrInvalidLiteral,
		"invalid_literal",
		CategoryLiteral,
		SeverityError,
		fmt.Sprintf("Empty literal expression for kind %q: only null literals may have no expression", kind),
	).WithSuggestion("Provide a non-empty expression, or use the null literal factory")
}

// NewNilLiteralizer creates a LIT002 diagnostic.
func NewNilLiteralizer() *Diagnostic {
	return newDiagnostic(
		ErrNilLiteralizer,
		"nil_literalizer",
		CategoryLiteral,
		SeverityError,
		"Object literal source is nil: a Literalizer must be supplied",
	)
}
