package errors

import "fmt"

// Auth domain diagnostic codes (AUT400-499)
const (
	// ErrUnknownCollection indicates an auth domain bound to a collection
	// path that was never declared
	ErrUnknownCollection Code = "AUT400"
	// ErrDuplicateAuthDomain indicates two auth domains of the same kind
	ErrDuplicateAuthDomain Code = "AUT401"
	// ErrNoAuthModules indicates an auth domain with an empty module set
	ErrNoAuthModules Code = "AUT402"
	// ErrEmptyAuthRegion indicates an auth domain with an empty region
	ErrEmptyAuthRegion Code = "AUT403"
)

// NewUnknownCollection creates an AUT400 diagnostic.
func NewUnknownCollection(entity, kind, boundCollection string) *Diagnostic {
	return newDiagnostic(
		ErrUnknownCollection,
		"unknown_collection",
		CategoryAuth,
		SeverityError,
		fmt.Sprintf("Auth domain %q is bound to collection %q, which is not a declared collection path", kind, boundCollection),
	).WithEntity(entity).
		WithPath(boundCollection).
		WithSuggestion("Declare the collection, or bind the domain to an existing path")
}

// NewDuplicateAuthDomain creates an AUT401 diagnostic.
func NewDuplicateAuthDomain(entity, kind string) *Diagnostic {
	return newDiagnostic(
		ErrDuplicateAuthDomain,
		"duplicate_auth_domain",
		CategoryAuth,
		SeverityError,
		fmt.Sprintf("Auth domain kind %q is declared more than once; at most one domain is allowed per kind", kind),
	).WithEntity(entity)
}

// NewNoAuthModules creates an AUT402 diagnostic.
func NewNoAuthModules(entity, kind string) *Diagnostic {
	return newDiagnostic(
		ErrNoAuthModules,
		"no_auth_modules",
		CategoryAuth,
		SeverityError,
		fmt.Sprintf("Auth domain %q enables no modules; at least one of session, signIn, signUp, forgotPassword is required", kind),
	).WithEntity(entity)
}

// NewEmptyAuthRegion creates an AUT403 diagnostic.
func NewEmptyAuthRegion(entity, kind string) *Diagnostic {
	return newDiagnostic(
		ErrEmptyAuthRegion,
		"empty_auth_region",
		CategoryAuth,
		SeverityError,
		fmt.Sprintf("Auth domain %q declares an empty region", kind),
	).WithEntity(entity)
}
