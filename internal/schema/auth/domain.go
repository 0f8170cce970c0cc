// Package auth provides authentication domain declarations: which collection
// backs a domain, which region it lives in, and which auth modules it
// enables. Validation is a cross-component check against the resolved
// collection forest, so it runs only after collection resolution completes.
package auth

import (
	"github.com/firelink-dev/firelink/internal/schema/collection"
	"github.com/firelink-dev/firelink/internal/schema/errors"
)

// Kind identifies the audience of an auth domain.
type Kind string

const (
	KindStandardUser  Kind = "standardUser"
	KindAdministrator Kind = "administrator"
)

// Module is one togglable authentication capability.
type Module string

const (
	ModuleSession        Module = "session"
	ModuleSignIn         Module = "signIn"
	ModuleSignUp         Module = "signUp"
	ModuleForgotPassword Module = "forgotPassword"
)

// Declaration declares one auth domain. Entity is the declaring entity name,
// used only in diagnostics. Modules is treated as a set; duplicates are
// collapsed.
type Declaration struct {
	Entity          string   `json:"entity,omitempty" yaml:"entity,omitempty"`
	Kind            Kind     `json:"kind" yaml:"kind"`
	BoundCollection string   `json:"collection" yaml:"collection"`
	Region          string   `json:"region" yaml:"region"`
	Modules         []Module `json:"modules" yaml:"modules"`
}

// ModuleSet returns the declared modules with duplicates collapsed, in
// declaration order.
func (d Declaration) ModuleSet() []Module {
	seen := make(map[Module]struct{}, len(d.Modules))
	set := make([]Module, 0, len(d.Modules))
	for _, m := range d.Modules {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		set = append(set, m)
	}
	return set
}

// Validate checks every declaration against the resolved collection forest
// and returns all violations found: unknown bound collections, empty module
// sets, empty regions, and duplicate domains per kind. Nothing is thrown
// eagerly; a single pass surfaces every problem.
func Validate(decls []Declaration, forest *collection.Forest) errors.List {
	var diags errors.List

	seen := make(map[Kind]struct{}, len(decls))
	for _, d := range decls {
		if _, dup := seen[d.Kind]; dup {
			diags = append(diags, errors.NewDuplicateAuthDomain(d.Entity, string(d.Kind)))
		}
		seen[d.Kind] = struct{}{}

		if forest == nil || !forest.Contains(d.BoundCollection) {
			diags = append(diags, errors.NewUnknownCollection(d.Entity, string(d.Kind), d.BoundCollection))
		}
		if len(d.ModuleSet()) == 0 {
			diags = append(diags, errors.NewNoAuthModules(d.Entity, string(d.Kind)))
		}
		if d.Region == "" {
			diags = append(diags, errors.NewEmptyAuthRegion(d.Entity, string(d.Kind)))
		}
	}

	return diags
}
