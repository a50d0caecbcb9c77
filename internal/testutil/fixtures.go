// Package testutil provides shared fixtures for tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

// NewAccountDocument returns a small literal document with nested mappings
// and sequences, shaped like a decoded API response.
func NewAccountDocument() map[string]any {
	return map[string]any{
		"id":     42,
		"name":   "ada",
		"active": true,
		"roles":  []any{"admin", "dev"},
		"profile": map[string]any{
			"email": "ada@example.com",
			"langs": []any{"go", "python"},
		},
	}
}

// NewDriftedAccountDocument returns NewAccountDocument with one changed
// value, one missing key, one extra key and reordered roles.
func NewDriftedAccountDocument() map[string]any {
	doc := NewAccountDocument()
	doc["name"] = "bob"
	doc["roles"] = []any{"dev", "admin"}
	delete(doc, "active")
	doc["profile"].(map[string]any)["phone"] = "555"
	return doc
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	return WriteTempFile(t, "test.yaml", data)
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	return WriteTempFile(t, "test.json", data)
}

// WriteTempFile writes raw content to a file named name in a fresh temporary
// directory and returns its path.
func WriteTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}

	return tmpFile
}
