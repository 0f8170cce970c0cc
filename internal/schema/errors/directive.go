package errors

import "fmt"

// Field directive diagnostic codes (DIR100-199)
const (
	// ErrIdentifierWriteConflict indicates a field declared as both the
	// document identifier and write-included
	ErrIdentifierWriteConflict Code = "DIR100"
	// ErrDuplicateFieldDirective indicates two directives declared for the
	// same field of the same entity
	ErrDuplicateFieldDirective Code = "DIR101"
)

// NewIdentifierWriteConflict creates a DIR100 warning. Legacy declaration
// sets may carry both flags, so this never rejects the graph; the validated
// directive treats write participation as off.
func NewIdentifierWriteConflict(entity, field string) *Diagnostic {
	return newDiagnostic(
		ErrIdentifierWriteConflict,
		"identifier_write_conflict",
		CategoryDirective,
		SeverityWarning,
		fmt.Sprintf("Field %q is the document identifier and also write-included; the identifier is never re-serialized into the payload", field),
	).WithEntity(entity).
		WithPath(field).
		WithSuggestion("Drop the write flag from the identifier field declaration")
}

// NewDuplicateFieldDirective creates a DIR101 diagnostic.
func NewDuplicateFieldDirective(entity, field string) *Diagnostic {
	return newDiagnostic(
		ErrDuplicateFieldDirective,
		"duplicate_field_directive",
		CategoryDirective,
		SeverityError,
		fmt.Sprintf("Field %q declares more than one directive; exactly one directive is allowed per field", field),
	).WithEntity(entity).WithPath(field)
}
