// Package literal provides the kind-tagged, immutable representation of
// default values and object literals embedded into generated accessor code.
// The engine never executes or type-checks an expression; it records the kind
// and the exact text the generator will embed verbatim.
package literal

import (
	"strconv"

	"github.com/firelink-dev/firelink/internal/schema/errors"
)

// Kind identifies the literal family an expression belongs to.
type Kind string

const (
	KindString      Kind = "string"
	KindDouble      Kind = "double"
	KindInteger     Kind = "integer"
	KindBoolean     Kind = "boolean"
	KindNull        Kind = "null"
	KindEnumeration Kind = "enumeration"
	KindObject      Kind = "object"
)

// Literalizer is the single capability an object must expose to become an
// object literal: rendering itself as a literal expression. OfObject invokes
// it exactly once at construction time and stores the resulting string; the
// value stays frozen even if the source object later mutates.
type Literalizer interface {
	ToLiteral() string
}

// Value is an immutable kind-tagged literal. The zero Value is the null
// literal.
type Value struct {
	kind Kind
	expr string
}

// Kind returns the literal's kind tag. The zero Value reports KindNull.
func (v Value) Kind() Kind {
	if v.kind == "" {
		return KindNull
	}
	return v.kind
}

// Expression returns the text the generator embeds verbatim. Null literals
// render as "null".
func (v Value) Expression() string {
	if v.Kind() == KindNull {
		return "null"
	}
	return v.expr
}

// IsNull reports whether the value is the null literal.
func (v Value) IsNull() bool {
	return v.Kind() == KindNull
}

// OfString returns a string literal. The source text is quoted, so even an
// empty string produces a non-empty expression.
func OfString(s string) Value {
	return Value{kind: KindString, expr: strconv.Quote(s)}
}

// OfDouble returns a floating-point literal.
func OfDouble(f float64) Value {
	return Value{kind: KindDouble, expr: strconv.FormatFloat(f, 'g', -1, 64)}
}

// OfInteger returns an integer literal.
func OfInteger(i int64) Value {
	return Value{kind: KindInteger, expr: strconv.FormatInt(i, 10)}
}

// OfBoolean returns a boolean literal.
func OfBoolean(b bool) Value {
	return Value{kind: KindBoolean, expr: strconv.FormatBool(b)}
}

// OfNull returns the null literal, the only kind allowed an empty
// expression.
func OfNull() Value {
	return Value{kind: KindNull}
}

// OfEnumeration returns an enumeration literal from the enum member
// expression (e.g. "UserRole.admin"). The expression must be non-empty.
func OfEnumeration(member string) (Value, error) {
	if member == "" {
		return Value{}, errors.NewInvalidLiteral(string(KindEnumeration))
	}
	return Value{kind: KindEnumeration, expr: member}, nil
}

// OfObject returns an object literal by invoking src.ToLiteral once and
// freezing the result. The src reference is not retained.
func OfObject(src Literalizer) (Value, error) {
	if src == nil {
		return Value{}, errors.NewNilLiteralizer()
	}
	expr := src.ToLiteral()
	if expr == "" {
		return Value{}, errors.NewInvalidLiteral(string(KindObject))
	}
	return Value{kind: KindObject, expr: expr}, nil
}

// OfRaw returns a literal of the given kind with the expression taken as-is.
// No kind/expression cross-check is performed: the caller is responsible for
// supplying an expression the generator can embed for that kind. Unsafe by
// design; prefer the typed factories.
func OfRaw(expr string, kind Kind) (Value, error) {
	if kind == KindNull {
		return Value{kind: KindNull}, nil
	}
	if expr == "" {
		return Value{}, errors.NewInvalidLiteral(string(kind))
	}
	return Value{kind: kind, expr: expr}, nil
}
