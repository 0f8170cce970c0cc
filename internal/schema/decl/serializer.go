package decl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Serialize converts a declaration list to JSON. The output is deterministic:
// the same list always produces the same bytes, so a serialized set can be
// rebuilt into an identical schema graph.
func Serialize(decls []Declaration) ([]byte, error) {
	if decls == nil {
		decls = []Declaration{}
	}
	data, err := json.MarshalIndent(decls, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize declarations: %w", err)
	}
	return data, nil
}

// Deserialize parses a declaration list from JSON produced by Serialize.
func Deserialize(data []byte) ([]Declaration, error) {
	var decls []Declaration
	if err := json.Unmarshal(data, &decls); err != nil {
		return nil, fmt.Errorf("failed to parse declarations: %w", err)
	}
	return decls, nil
}

// WriteToFile writes the serialized declaration list to a file, creating the
// directory if needed.
func WriteToFile(decls []Declaration, outputPath string) error {
	if outputPath == "" {
		return fmt.Errorf("output path cannot be empty")
	}

	data, err := Serialize(decls)
	if err != nil {
		return err
	}

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write declarations to %s: %w", outputPath, err)
	}
	return nil
}
