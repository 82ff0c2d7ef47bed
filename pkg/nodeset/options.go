package nodeset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Andy3189/async-opcua/pkg/validation"
)

// Duplicate node policies.
const (
	// DuplicateSkip keeps the existing node and records a diagnostic.
	// This is the default: re-importing a document must be harmless.
	DuplicateSkip = "skip"
	// DuplicateError aborts the import on the first duplicate.
	DuplicateError = "error"
)

// Options controls import behavior.
type Options struct {
	// DuplicatePolicy decides what happens when a document declares a
	// node whose id is already present in the space.
	DuplicatePolicy string `yaml:"duplicate_policy"`

	// IgnoreValues skips Variable value payloads entirely.
	IgnoreValues bool `yaml:"ignore_values"`

	// MaxDiagnostics caps the diagnostics kept per document. Zero
	// means unlimited.
	MaxDiagnostics int `yaml:"max_diagnostics"`
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		DuplicatePolicy: DuplicateSkip,
		MaxDiagnostics:  0,
	}
}

// Validate checks option values.
func (o Options) Validate() error {
	return validation.NewConfigValidator("ImportOptions").
		OneOf("DuplicatePolicy", o.DuplicatePolicy, []string{DuplicateSkip, DuplicateError}).
		NonNegative("MaxDiagnostics", o.MaxDiagnostics).
		Validate()
}

// LoadOptions reads Options from a YAML file. Missing fields keep
// their defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing options file: %w", err)
	}
	if err := validation.ValidateConfig(opts); err != nil {
		return opts, err
	}
	return opts, nil
}
