// Package decl defines the raw, kind-tagged declarations fed into the schema
// registry: plain data-transfer structs produced by an external
// declaration-collection step (or the manifest loader), one per annotated
// entity. No reflection or annotation processing is involved; declarations
// are ordinary values.
package decl

import (
	"github.com/firelink-dev/firelink/internal/schema/auth"
	"github.com/firelink-dev/firelink/internal/schema/collection"
	"github.com/firelink-dev/firelink/internal/schema/directive"
	"github.com/firelink-dev/firelink/internal/schema/literal"
	"github.com/firelink-dev/firelink/internal/schema/storage"
)

// Kind tags which model a declaration belongs to.
type Kind string

const (
	KindFieldDirective Kind = "fieldDirective"
	KindStorageForest  Kind = "storageForest"
	KindCollection     Kind = "collection"
	KindAuthDomain     Kind = "authDomain"
)

// Literal is the raw form of a default value: the kind tag plus the exact
// expression text the generator embeds.
type Literal struct {
	Kind       string `json:"kind" yaml:"kind"`
	Expression string `json:"expression" yaml:"expression"`
}

// FieldDirective is the raw form of a per-field serialization directive.
// Zero values map onto the directive defaults: included in reads and writes,
// not the identifier, no key override, no default.
type FieldDirective struct {
	FieldName        string   `json:"fieldName" yaml:"fieldName"`
	StorageKey       string   `json:"storageKey,omitempty" yaml:"storageKey,omitempty"`
	DocumentID       bool     `json:"documentId,omitempty" yaml:"documentId,omitempty"`
	ExcludeFromRead  bool     `json:"excludeFromRead,omitempty" yaml:"excludeFromRead,omitempty"`
	ExcludeFromWrite bool     `json:"excludeFromWrite,omitempty" yaml:"excludeFromWrite,omitempty"`
	Default          *Literal `json:"default,omitempty" yaml:"default,omitempty"`
}

// Build converts the raw directive into the immutable directive model.
// The default literal, if any, goes through the raw literal factory, so an
// empty expression for a non-null kind fails here.
func (f FieldDirective) Build() (directive.Directive, error) {
	d := directive.New()
	if f.StorageKey != "" {
		d = d.WithStorageKey(f.StorageKey)
	}
	if f.DocumentID {
		d = d.WithDocumentID()
	}
	if f.ExcludeFromRead {
		d = d.WithReadExcluded()
	}
	if f.ExcludeFromWrite {
		d = d.WithWriteExcluded()
	}
	if f.Default != nil {
		v, err := literal.OfRaw(f.Default.Expression, literal.Kind(f.Default.Kind))
		if err != nil {
			return directive.Directive{}, err
		}
		d = d.WithDefaultOnMissing(v)
	}
	return d, nil
}

// Declaration is one kind-tagged declaration. Exactly one of the payload
// fields matching Kind is set. Entity names the declaring entity and is used
// only for diagnostics.
type Declaration struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Entity string `json:"entity,omitempty" yaml:"entity,omitempty"`

	Field      *FieldDirective         `json:"field,omitempty" yaml:"field,omitempty"`
	Storage    []storage.Node          `json:"storage,omitempty" yaml:"storage,omitempty"`
	Collection *collection.Declaration `json:"collection,omitempty" yaml:"collection,omitempty"`
	Auth       *auth.Declaration       `json:"auth,omitempty" yaml:"auth,omitempty"`
}
