package errors

import "fmt"

// Collection path diagnostic codes (COL300-399)
const (
	// ErrEmptyCollectionPath indicates a collection declared with an empty
	// path segment
	ErrEmptyCollectionPath Code = "COL300"
	// ErrUnresolvedParent indicates a sub-collection whose parent path never
	// resolves, including cyclic parent chains
	ErrUnresolvedParent Code = "COL301"
	// ErrDuplicateSiblingPath indicates two collections with the same path
	// under the same parent
	ErrDuplicateSiblingPath Code = "COL302"
)

// NewEmptyCollectionPath creates a COL300 diagnostic.
func NewEmptyCollectionPath(entity string) *Diagnostic {
	return newDiagnostic(
		ErrEmptyCollectionPath,
		"empty_collection_path",
		CategoryCollection,
		SeverityError,
		"Collection declared with an empty path",
	).WithEntity(entity)
}

// NewUnresolvedParent creates a COL301 diagnostic.
func NewUnresolvedParent(path, missingParent string) *Diagnostic {
	return newDiagnostic(
		ErrUnresolvedParent,
		"unresolved_parent",
		CategoryCollection,
		SeverityError,
		fmt.Sprintf("Sub-collection %q declares parent %q, which never resolves to a declared collection", path, missingParent),
	).WithPath(path).
		WithSuggestion("Declare the parent collection, or check the parent chain for cycles")
}

// NewDuplicateSiblingPath creates a COL302 diagnostic. path is the full
// slash-joined path of the conflicting collection.
func NewDuplicateSiblingPath(path string) *Diagnostic {
	return newDiagnostic(
		ErrDuplicateSiblingPath,
		"duplicate_sibling_path",
		CategoryCollection,
		SeverityError,
		fmt.Sprintf("Duplicate collection path %q: a path must be unique within its parent's children", path),
	).WithPath(path)
}
