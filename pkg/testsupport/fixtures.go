// Package testsupport holds fixture and golden-file helpers shared by tests.
package testsupport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramedit/pkg/model"
	"github.com/goliatone/go-paramedit/pkg/source"
)

// UpdateGoldensEnvVar enables golden rewrites when set to any value.
const UpdateGoldensEnvVar = "UPDATE_GOLDENS"

// MustLoadDocument reads a definitions fixture or fails the test.
func MustLoadDocument(t testing.TB, path string) source.Document {
	t.Helper()

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocument returns a Document without requiring testing.TB, allowing
// callers to wire fixtures in setup functions.
func LoadDocument(path string) (source.Document, error) {
	if path == "" {
		return source.Document{}, errors.New("testsupport: document path is required")
	}
	doc, err := source.LoadFile(path)
	if err != nil {
		return source.Document{}, fmt.Errorf("testsupport: %w", err)
	}
	return doc, nil
}

// MustLoadModel reads a model fixture or fails the test.
func MustLoadModel(t testing.TB, path string) model.Model {
	t.Helper()

	m, err := source.LoadModelFile(path)
	if err != nil {
		t.Fatalf("load model: %v", err)
	}
	return m
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written.
func WriteMaybeGolden(t testing.TB, path string, data []byte) bool {
	t.Helper()
	if os.Getenv(UpdateGoldensEnvVar) == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGolden compares got against the golden file at path, rewriting it
// instead when UPDATE_GOLDENS is set.
func AssertGolden(t testing.TB, path string, got []byte) {
	t.Helper()
	if WriteMaybeGolden(t, path, got) {
		return
	}
	want := MustReadGolden(t, path)
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}
