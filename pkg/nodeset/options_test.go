package nodeset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Andy3189/async-opcua/pkg/space"
)

func TestOptionsValidate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}

	bad := Options{DuplicatePolicy: "merge"}
	err := bad.Validate()
	if err == nil {
		t.Fatal("unknown duplicate policy accepted")
	}
	if !strings.Contains(err.Error(), "DuplicatePolicy") {
		t.Errorf("error %q should name the failing field", err)
	}

	bad = Options{DuplicatePolicy: DuplicateSkip, MaxDiagnostics: -1}
	if err := bad.Validate(); err == nil {
		t.Error("negative MaxDiagnostics accepted")
	}
}

func TestNewImporterRejectsInvalidOptions(t *testing.T) {
	s := space.New()
	if _, err := NewImporter(s, Options{DuplicatePolicy: "merge"}); err == nil {
		t.Fatal("NewImporter accepted an unknown duplicate policy")
	}
}

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	content := "duplicate_policy: error\nmax_diagnostics: 16\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}
	if opts.DuplicatePolicy != DuplicateError {
		t.Errorf("DuplicatePolicy = %q, want %q", opts.DuplicatePolicy, DuplicateError)
	}
	if opts.MaxDiagnostics != 16 {
		t.Errorf("MaxDiagnostics = %d, want 16", opts.MaxDiagnostics)
	}
	// Unset fields keep their defaults.
	if opts.IgnoreValues {
		t.Error("IgnoreValues should default to false")
	}
}

func TestLoadOptionsRejectsBadPolicy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	if err := os.WriteFile(path, []byte("duplicate_policy: merge\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptions(path); err == nil {
		t.Fatal("LoadOptions accepted an unknown duplicate policy")
	}
}
