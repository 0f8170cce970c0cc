package registry

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/firelink-dev/firelink/internal/schema/auth"
	"github.com/firelink-dev/firelink/internal/schema/collection"
	"github.com/firelink-dev/firelink/internal/schema/decl"
	"github.com/firelink-dev/firelink/internal/schema/directive"
	"github.com/firelink-dev/firelink/internal/schema/storage"
)

// Graph is the validated, read-only schema handed to the code generator.
// It owns every resolved entity for the lifetime of one validation pass and
// is discarded wholesale on reset; there is no incremental mutation.
type Graph struct {
	id          uuid.UUID
	fields      map[string]map[string]directive.Directive
	fieldOrder  map[string][]string
	entityOrder []string
	storage     []storage.Node
	collections *collection.Forest
	authDomains map[auth.Kind]auth.Declaration
	source      []decl.Declaration
}

// ID returns the generation id stamped on this validation pass.
func (g *Graph) ID() uuid.UUID {
	return g.id
}

// Entities returns the entities declaring field directives, in declaration
// order.
func (g *Graph) Entities() []string {
	out := make([]string, len(g.entityOrder))
	copy(out, g.entityOrder)
	return out
}

// Fields returns the declared field names of an entity in declaration order.
func (g *Graph) Fields(entity string) []string {
	fields := g.fieldOrder[entity]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// Directive returns the directive declared for a field of an entity.
func (g *Graph) Directive(entity, field string) (directive.Directive, bool) {
	d, ok := g.fields[entity][field]
	return d, ok
}

// Storage returns the validated storage forest. Callers must treat it as
// read-only.
func (g *Graph) Storage() []storage.Node {
	return g.storage
}

// Collections returns the resolved collection forest.
func (g *Graph) Collections() *collection.Forest {
	return g.collections
}

// AuthDomain returns the auth domain declared for a kind.
func (g *Graph) AuthDomain(kind auth.Kind) (auth.Declaration, bool) {
	d, ok := g.authDomains[kind]
	return d, ok
}

// AuthKinds returns the declared auth domain kinds, sorted for deterministic
// output.
func (g *Graph) AuthKinds() []auth.Kind {
	kinds := make([]auth.Kind, 0, len(g.authDomains))
	for k := range g.authDomains {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Declarations returns the declaration list the graph was built from, in
// collection order. Serializing it and rebuilding yields an identical graph.
func (g *Graph) Declarations() []decl.Declaration {
	out := make([]decl.Declaration, len(g.source))
	copy(out, g.source)
	return out
}

// exportField is the generator-facing view of one field directive.
type exportField struct {
	Name           string        `json:"name"`
	ResolvedKey    string        `json:"resolvedKey"`
	DocumentID     bool          `json:"documentId,omitempty"`
	IncludeInRead  bool          `json:"includeInRead"`
	IncludeInWrite bool          `json:"includeInWrite"`
	Default        *decl.Literal `json:"default,omitempty"`
}

// exportEntity is the generator-facing view of one entity.
type exportEntity struct {
	Name   string        `json:"name"`
	Fields []exportField `json:"fields"`
}

// exportAuthDomain is the generator-facing view of one auth domain.
type exportAuthDomain struct {
	Kind       auth.Kind     `json:"kind"`
	Collection string        `json:"collection"`
	Region     string        `json:"region"`
	Modules    []auth.Module `json:"modules"`
}

// export is the serialized shape of a validated graph.
type export struct {
	ID          uuid.UUID          `json:"id"`
	Collections []string           `json:"collections"`
	Storage     []storage.Node     `json:"storage,omitempty"`
	Entities    []exportEntity     `json:"entities,omitempty"`
	AuthDomains []exportAuthDomain `json:"authDomains,omitempty"`
}

// Export returns the graph as deterministic JSON for generator handoff.
// Field write participation is the effective value: document identifiers
// export includeInWrite=false regardless of the declared flag.
func (g *Graph) Export() ([]byte, error) {
	out := export{
		ID:          g.id,
		Collections: g.collections.Paths(),
		Storage:     g.storage,
	}

	for _, entity := range g.entityOrder {
		e := exportEntity{Name: entity}
		for _, field := range g.fieldOrder[entity] {
			d := g.fields[entity][field]
			f := exportField{
				Name:           field,
				ResolvedKey:    d.ResolvedKey(field),
				DocumentID:     d.IsDocumentID(),
				IncludeInRead:  d.IncludeInRead(),
				IncludeInWrite: d.EffectiveWrite(),
			}
			if v, ok := d.DefaultOnMissing(); ok {
				f.Default = &decl.Literal{Kind: string(v.Kind()), Expression: v.Expression()}
			}
			e.Fields = append(e.Fields, f)
		}
		out.Entities = append(out.Entities, e)
	}

	for _, kind := range g.AuthKinds() {
		d := g.authDomains[kind]
		out.AuthDomains = append(out.AuthDomains, exportAuthDomain{
			Kind:       d.Kind,
			Collection: d.BoundCollection,
			Region:     d.Region,
			Modules:    d.ModuleSet(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to export schema graph: %w", err)
	}
	return data, nil
}
