package validation

import (
	"strings"
	"testing"
)

func TestConfigValidator_Clean(t *testing.T) {
	cv := NewConfigValidator("ImportOptions").
		OneOf("DuplicatePolicy", "skip", []string{"skip", "error"}).
		NonNegative("MaxDiagnostics", 0)

	if cv.HasErrors() {
		t.Fatalf("unexpected errors: %v", cv.Errors())
	}
	if err := cv.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfigValidator_CollectsAllErrors(t *testing.T) {
	cv := NewConfigValidator("ImportOptions").
		OneOf("DuplicatePolicy", "merge", []string{"skip", "error"}).
		NonNegative("MaxDiagnostics", -1)

	if got := len(cv.Errors()); got != 2 {
		t.Fatalf("collected %d errors, want 2", got)
	}
	err := cv.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !strings.Contains(err.Error(), "2 errors") {
		t.Errorf("combined error %q should report the error count", err)
	}
}

func TestConfigValidator_ErrorsNameTheField(t *testing.T) {
	tests := []struct {
		name string
		cv   *ConfigValidator
		want string
	}{
		{
			name: "one of",
			cv:   NewConfigValidator("ImportOptions").OneOf("DuplicatePolicy", "merge", []string{"skip", "error"}),
			want: "ImportOptions.DuplicatePolicy",
		},
		{
			name: "non negative",
			cv:   NewConfigValidator("ImportOptions").NonNegative("MaxDiagnostics", -5),
			want: "ImportOptions.MaxDiagnostics",
		},
		{
			name: "range",
			cv:   NewConfigValidator("Session").RangeInt("BatchSize", 5000, 1, 1000),
			want: "Session.BatchSize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cv.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should name %s", err, tt.want)
			}
		})
	}
}

func TestConfigValidator_RangeIntBounds(t *testing.T) {
	if err := NewConfigValidator("Session").RangeInt("BatchSize", 1, 1, 1000).Validate(); err != nil {
		t.Errorf("lower bound rejected: %v", err)
	}
	if err := NewConfigValidator("Session").RangeInt("BatchSize", 1000, 1, 1000).Validate(); err != nil {
		t.Errorf("upper bound rejected: %v", err)
	}
	if err := NewConfigValidator("Session").RangeInt("BatchSize", 0, 1, 1000).Validate(); err == nil {
		t.Error("below-range value accepted")
	}
}

type fakeConfig struct {
	policy string
}

func (c fakeConfig) Validate() error {
	return NewConfigValidator("fakeConfig").
		OneOf("policy", c.policy, []string{"a", "b"}).
		Validate()
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(fakeConfig{policy: "a"}); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
	if err := ValidateConfig(fakeConfig{policy: "z"}); err == nil {
		t.Error("invalid config accepted")
	}
	if err := ValidateConfig(nil); err == nil {
		t.Error("nil config accepted")
	}
}
