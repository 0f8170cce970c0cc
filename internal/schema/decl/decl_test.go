package decl

import (
	"testing"

	"github.com/firelink-dev/firelink/internal/schema/collection"
	"github.com/firelink-dev/firelink/internal/schema/literal"
)

func TestFieldDirectiveBuild(t *testing.T) {
	raw := FieldDirective{
		FieldName:        "createdAt",
		StorageKey:       "created_at",
		ExcludeFromWrite: true,
		Default:          &Literal{Kind: "integer", Expression: "0"},
	}

	d, err := raw.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if key := d.ResolvedKey("createdAt"); key != "created_at" {
		t.Errorf("expected storage key override, got %q", key)
	}
	if d.IncludeInWrite() {
		t.Error("expected write exclusion to carry over")
	}
	v, ok := d.DefaultOnMissing()
	if !ok {
		t.Fatal("expected a default literal")
	}
	if v.Kind() != literal.KindInteger || v.Expression() != "0" {
		t.Errorf("unexpected default: kind=%s expr=%q", v.Kind(), v.Expression())
	}
}

func TestFieldDirectiveBuildDefaults(t *testing.T) {
	d, err := FieldDirective{FieldName: "name"}.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !d.IncludeInRead() || !d.IncludeInWrite() || d.IsDocumentID() {
		t.Error("expected the zero raw directive to map onto the declared defaults")
	}
}

func TestFieldDirectiveBuildRejectsEmptyDefault(t *testing.T) {
	_, err := FieldDirective{
		FieldName: "broken",
		Default:   &Literal{Kind: "double", Expression: ""},
	}.Build()
	if err == nil {
		t.Fatal("expected an error for an empty non-null default expression")
	}
}

func TestSerializeDeterministic(t *testing.T) {
	decls := []Declaration{
		{
			Kind:       KindCollection,
			Entity:     "User",
			Collection: &collection.Declaration{Path: "users"},
		},
		{
			Kind:   KindFieldDirective,
			Entity: "User",
			Field:  &FieldDirective{FieldName: "id", DocumentID: true, ExcludeFromWrite: true},
		},
	}

	first, err := Serialize(decls)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	second, err := Serialize(decls)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if string(first) != string(second) {
		t.Error("expected deterministic serialization")
	}

	rebuilt, err := Deserialize(first)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if len(rebuilt) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(rebuilt))
	}
	if rebuilt[0].Collection == nil || rebuilt[0].Collection.Path != "users" {
		t.Error("expected the collection payload to survive the round trip")
	}
	if rebuilt[1].Field == nil || !rebuilt[1].Field.DocumentID {
		t.Error("expected the field payload to survive the round trip")
	}
}

func TestSerializeNilList(t *testing.T) {
	data, err := Serialize(nil)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected empty array, got %s", data)
	}
}

func TestDeserializeRejectsGarbage(t *testing.T) {
	if _, err := Deserialize([]byte("{not json")); err == nil {
		t.Fatal("expected a parse error")
	}
}
