// Package directive provides the immutable per-field serialization directive:
// whether a field participates in reads and writes, which storage key it is
// persisted under, and what default to substitute when the stored document
// has no value for it.
package directive

import "github.com/firelink-dev/firelink/internal/schema/literal"

// DerivedKeyPrefix is prepended to the field name when no storage key
// override is declared. It is part of the persisted data contract: generated
// accessors key documents by the resolved key, so this prefix must stay
// stable across releases.
const DerivedKeyPrefix = "fl_"

// Directive describes how one declared field maps onto the stored document.
// The zero value is not meaningful; construct with New. Directives are value
// objects: the With* methods return modified copies.
type Directive struct {
	storageKey       string
	documentID       bool
	includeInRead    bool
	includeInWrite   bool
	defaultOnMissing literal.Value
	hasDefault       bool
}

// New returns a directive with the declared defaults: not the document
// identifier, included in reads and writes, no storage key override, no
// default-on-missing value.
func New() Directive {
	return Directive{
		includeInRead:  true,
		includeInWrite: true,
	}
}

// WithStorageKey returns a copy with the storage key override set.
func (d Directive) WithStorageKey(key string) Directive {
	d.storageKey = key
	return d
}

// WithDocumentID returns a copy marked as the document identifier field.
func (d Directive) WithDocumentID() Directive {
	d.documentID = true
	return d
}

// WithReadExcluded returns a copy excluded from reads.
func (d Directive) WithReadExcluded() Directive {
	d.includeInRead = false
	return d
}

// WithWriteExcluded returns a copy excluded from writes.
func (d Directive) WithWriteExcluded() Directive {
	d.includeInWrite = false
	return d
}

// WithDefaultOnMissing returns a copy carrying a default literal substituted
// when the stored document has no value for the field.
func (d Directive) WithDefaultOnMissing(v literal.Value) Directive {
	d.defaultOnMissing = v
	d.hasDefault = true
	return d
}

// IsDocumentID reports whether the field is the document identifier.
func (d Directive) IsDocumentID() bool {
	return d.documentID
}

// IncludeInRead reports whether the field participates in reads.
func (d Directive) IncludeInRead() bool {
	return d.includeInRead
}

// IncludeInWrite reports the declared write participation. Note that the
// declared flag may conflict with the identifier flag; use EffectiveWrite
// for the value the generator must honor.
func (d Directive) IncludeInWrite() bool {
	return d.includeInWrite
}

// EffectiveWrite reports the write participation after conflict resolution:
// a document identifier is never re-serialized into the payload, regardless
// of the declared write flag.
func (d Directive) EffectiveWrite() bool {
	if d.documentID {
		return false
	}
	return d.includeInWrite
}

// StorageKey returns the declared key override and whether one was set.
func (d Directive) StorageKey() (string, bool) {
	return d.storageKey, d.storageKey != ""
}

// DefaultOnMissing returns the default literal and whether one was declared.
func (d Directive) DefaultOnMissing() (literal.Value, bool) {
	return d.defaultOnMissing, d.hasDefault
}

// ResolvedKey returns the key the field is persisted under: the storage key
// override if declared, otherwise DerivedKeyPrefix + fieldName. Pure and
// deterministic; generated accessors depend on this derivation never
// changing.
func (d Directive) ResolvedKey(fieldName string) string {
	if d.storageKey != "" {
		return d.storageKey
	}
	return DerivedKeyPrefix + fieldName
}
