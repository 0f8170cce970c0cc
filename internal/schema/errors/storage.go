package errors

import "fmt"

// Storage tree diagnostic codes (STG200-299)
const (
	// ErrEmptyNodeName indicates a storage node with an empty name
	ErrEmptyNodeName Code = "STG200"
	// ErrSeparatorInName indicates a storage node name containing the path
	// separator
	ErrSeparatorInName Code = "STG201"
	// ErrSiblingConflict indicates two sibling nodes with the same name
	ErrSiblingConflict Code = "STG202"
)

// NewEmptyNodeName creates a STG200 diagnostic. parentPath is the dotted
// path of the parent node, empty for a declared root.
func NewEmptyNodeName(parentPath string) *Diagnostic {
	return newDiagnostic(
		ErrEmptyNodeName,
		"empty_node_name",
		CategoryStorage,
		SeverityError,
		"Storage node has an empty name",
	).WithPath(parentPath)
}

// NewSeparatorInName creates a STG201 diagnostic.
func NewSeparatorInName(path, name, separator string) *Diagnostic {
	return newDiagnostic(
		ErrSeparatorInName,
		"separator_in_name",
		CategoryStorage,
		SeverityError,
		fmt.Sprintf("Storage node name %q contains the path separator %q", name, separator),
	).WithPath(path).
		WithSuggestion("Declare nested nodes as children instead of embedding the separator")
}

// NewSiblingConflict creates a STG202 diagnostic. path is the full dotted
// path of the conflicting node.
func NewSiblingConflict(path, name string) *Diagnostic {
	return newDiagnostic(
		ErrSiblingConflict,
		"sibling_conflict",
		CategoryStorage,
		SeverityError,
		fmt.Sprintf("Duplicate sibling node %q: sibling names must be unique (case-sensitive) under the same parent", name),
	).WithPath(path)
}
