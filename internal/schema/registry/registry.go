// Package registry aggregates raw declarations into one schema graph and
// validates every cross-entity invariant in a single pass. The registry is a
// small state machine: Empty -> Collecting -> Resolving -> Validated |
// Rejected, with an explicit Reset back to Empty. One registry instance
// serves one validation pass at a time; independent graphs need independent
// registries.
package registry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/firelink-dev/firelink/internal/schema/auth"
	"github.com/firelink-dev/firelink/internal/schema/collection"
	"github.com/firelink-dev/firelink/internal/schema/decl"
	"github.com/firelink-dev/firelink/internal/schema/directive"
	"github.com/firelink-dev/firelink/internal/schema/errors"
	"github.com/firelink-dev/firelink/internal/schema/storage"
)

// State is the registry lifecycle state.
type State int

const (
	// StateEmpty holds no declarations
	StateEmpty State = iota
	// StateCollecting accepts declarations in any order
	StateCollecting
	// StateResolving runs the validation passes
	StateResolving
	// StateValidated exposes the immutable schema graph
	StateValidated
	// StateRejected exposes the collected diagnostics and no graph
	StateRejected
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateCollecting:
		return "collecting"
	case StateResolving:
		return "resolving"
	case StateValidated:
		return "validated"
	case StateRejected:
		return "rejected"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// collectedField is one field directive accepted during collection,
// pre-built so malformed payloads fail at the Collect call site.
type collectedField struct {
	entity    string
	fieldName string
	directive directive.Directive
}

// Registry collects declarations and resolves them into a Graph.
type Registry struct {
	state State

	source      []decl.Declaration
	fields      []collectedField
	storageDecl []storage.Node
	collections *collection.Resolver
	authDecls   []auth.Declaration

	diags errors.List
	built *Graph
}

// New creates a registry in the Empty state.
func New() *Registry {
	return &Registry{
		state:       StateEmpty,
		collections: collection.NewResolver(),
	}
}

// State returns the current lifecycle state.
func (r *Registry) State() State {
	return r.state
}

// Collect accepts one declaration. Declarations of all kinds may arrive in
// any order. Malformed payloads (unknown kind, missing payload, invalid
// default literal) are programmer errors at the call site and fail
// immediately; cross-entity consistency problems are collected during
// Resolve instead.
func (r *Registry) Collect(d decl.Declaration) error {
	switch r.state {
	case StateEmpty:
		r.state = StateCollecting
	case StateCollecting:
	default:
		return fmt.Errorf("registry is %s: call Reset before collecting again", r.state)
	}

	switch d.Kind {
	case decl.KindFieldDirective:
		if d.Field == nil {
			return fmt.Errorf("field directive declaration for %q has no field payload", d.Entity)
		}
		built, err := d.Field.Build()
		if err != nil {
			return err
		}
		r.fields = append(r.fields, collectedField{
			entity:    d.Entity,
			fieldName: d.Field.FieldName,
			directive: built,
		})
	case decl.KindStorageForest:
		// Declared roots from every entity become siblings under the
		// implicit root.
		r.storageDecl = append(r.storageDecl, d.Storage...)
	case decl.KindCollection:
		if d.Collection == nil {
			return fmt.Errorf("collection declaration for %q has no collection payload", d.Entity)
		}
		c := *d.Collection
		if c.Entity == "" {
			c.Entity = d.Entity
		}
		r.collections.Register(c)
	case decl.KindAuthDomain:
		if d.Auth == nil {
			return fmt.Errorf("auth domain declaration for %q has no auth payload", d.Entity)
		}
		a := *d.Auth
		if a.Entity == "" {
			a.Entity = d.Entity
		}
		r.authDecls = append(r.authDecls, a)
	default:
		return fmt.Errorf("unknown declaration kind %q for %q", d.Kind, d.Entity)
	}

	r.source = append(r.source, d)
	return nil
}

// CollectAll collects a declaration list, stopping at the first malformed
// declaration.
func (r *Registry) CollectAll(decls []decl.Declaration) error {
	for _, d := range decls {
		if err := r.Collect(d); err != nil {
			return err
		}
	}
	return nil
}

// Resolve runs the validation passes over everything collected: the
// collection fixed point first, then storage tree validation, then auth
// domain validation against the resolved collections, then the field
// directive conflict pass. Every violation is collected; the pass never
// stops at the first problem. On success the registry enters Validated and
// returns the graph (with any warnings); otherwise it enters Rejected and
// returns a nil graph with the full ordered diagnostic list.
func (r *Registry) Resolve() (*Graph, errors.List) {
	switch r.state {
	case StateEmpty, StateCollecting:
		r.state = StateResolving
	case StateValidated:
		return r.built, r.diags
	case StateRejected:
		return nil, r.diags
	default:
		return nil, r.diags
	}

	var diags errors.List

	forest, collectionDiags := r.collections.Resolve()
	diags = append(diags, collectionDiags...)

	diags = append(diags, storage.ValidateForest(r.storageDecl)...)

	// Auth validation needs the resolved collection set, so it runs after
	// the fixed point even when collection resolution reported problems.
	diags = append(diags, auth.Validate(r.authDecls, forest)...)

	fields, fieldOrder, entityOrder, fieldDiags := r.resolveFields()
	diags = append(diags, fieldDiags...)

	r.diags = diags
	if diags.HasErrors() {
		r.state = StateRejected
		return nil, diags
	}

	domains := make(map[auth.Kind]auth.Declaration, len(r.authDecls))
	for _, a := range r.authDecls {
		if _, ok := domains[a.Kind]; !ok {
			domains[a.Kind] = a
		}
	}

	r.built = &Graph{
		id:          uuid.New(),
		fields:      fields,
		fieldOrder:  fieldOrder,
		entityOrder: entityOrder,
		storage:     r.storageDecl,
		collections: forest,
		authDomains: domains,
		source:      r.source,
	}
	r.state = StateValidated
	return r.built, r.diags
}

// resolveFields checks per-field uniqueness and the identifier/write
// conflict. The conflict is warning severity: legacy declarations may set
// both flags, so the graph still validates, with effective write
// participation forced off for identifiers.
func (r *Registry) resolveFields() (
	fields map[string]map[string]directive.Directive,
	fieldOrder map[string][]string,
	entityOrder []string,
	diags errors.List,
) {
	fields = make(map[string]map[string]directive.Directive)
	fieldOrder = make(map[string][]string)

	for _, f := range r.fields {
		byField, ok := fields[f.entity]
		if !ok {
			byField = make(map[string]directive.Directive)
			fields[f.entity] = byField
			entityOrder = append(entityOrder, f.entity)
		}
		if _, dup := byField[f.fieldName]; dup {
			diags = append(diags, errors.NewDuplicateFieldDirective(f.entity, f.fieldName))
			continue
		}
		byField[f.fieldName] = f.directive
		fieldOrder[f.entity] = append(fieldOrder[f.entity], f.fieldName)

		if f.directive.IsDocumentID() && f.directive.IncludeInWrite() {
			diags = append(diags, errors.NewIdentifierWriteConflict(f.entity, f.fieldName))
		}
	}
	return fields, fieldOrder, entityOrder, diags
}

// Graph returns the validated schema graph, or nil unless the registry is
// in the Validated state.
func (r *Registry) Graph() *Graph {
	if r.state != StateValidated {
		return nil
	}
	return r.built
}

// Diagnostics returns the ordered diagnostic list from the last Resolve.
func (r *Registry) Diagnostics() errors.List {
	return r.diags
}

// Reset discards the entire graph and every collected declaration, returning
// the registry to Empty. Nothing is reused across passes; stale
// cross-references between generations are impossible by construction.
func (r *Registry) Reset() {
	r.state = StateEmpty
	r.source = nil
	r.fields = nil
	r.storageDecl = nil
	r.collections = collection.NewResolver()
	r.authDecls = nil
	r.built = nil
	r.diags = nil
}
