// Package loader reads declaration manifests from disk. A manifest is the
// concrete file form of the external declaration-collection step: one YAML
// document carrying every declaration for a build target, ready to be fed
// into the schema registry.
package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/firelink-dev/firelink/internal/schema/decl"
)

// ManifestKind is the expected kind discriminator in a manifest file.
const ManifestKind = "SchemaManifest"

// SupportedAPIVersion is the only manifest apiVersion this loader accepts.
const SupportedAPIVersion = "v1"

// Manifest is one parsed declaration manifest.
type Manifest struct {
	APIVersion   string             `yaml:"apiVersion"`
	Kind         string             `yaml:"kind"`
	Name         string             `yaml:"name,omitempty"`
	Declarations []decl.Declaration `yaml:"declarations"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse parses manifest bytes. Parsing is strict: unknown fields, unknown
// declaration kinds, and payloads that do not match their kind are load
// errors, so a typo never silently drops a declaration.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("manifest is empty")
		}
		return nil, err
	}

	if m.APIVersion != SupportedAPIVersion {
		return nil, fmt.Errorf("unsupported apiVersion %q (want %q)", m.APIVersion, SupportedAPIVersion)
	}
	if m.Kind != ManifestKind {
		return nil, fmt.Errorf("unexpected manifest kind %q (want %q)", m.Kind, ManifestKind)
	}

	for i, d := range m.Declarations {
		if err := checkDeclaration(d); err != nil {
			return nil, fmt.Errorf("declaration %d (entity %q): %w", i, d.Entity, err)
		}
	}

	return &m, nil
}

// checkDeclaration verifies the kind tag matches the payload that is set.
func checkDeclaration(d decl.Declaration) error {
	switch d.Kind {
	case decl.KindFieldDirective:
		if d.Field == nil {
			return fmt.Errorf("fieldDirective declaration needs a field payload")
		}
	case decl.KindStorageForest:
		if len(d.Storage) == 0 {
			return fmt.Errorf("storageForest declaration needs at least one root node")
		}
	case decl.KindCollection:
		if d.Collection == nil {
			return fmt.Errorf("collection declaration needs a collection payload")
		}
	case decl.KindAuthDomain:
		if d.Auth == nil {
			return fmt.Errorf("authDomain declaration needs an auth payload")
		}
	default:
		return fmt.Errorf("unknown declaration kind %q", d.Kind)
	}
	return nil
}
