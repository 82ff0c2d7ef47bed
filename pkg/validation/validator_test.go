package validation

import (
	"strings"
	"testing"
)

// TestValidateNodeRequest tests node request validation
func TestValidateNodeRequest(t *testing.T) {
	tests := []struct {
		name        string
		req         NodeRequest
		expectError bool
		errorPart   string
	}{
		{
			name: "Valid object request",
			req: NodeRequest{
				NodeID:     "ns=2;i=1000",
				NodeClass:  "Object",
				BrowseName: "2:Pump",
			},
			expectError: false,
		},
		{
			name: "Valid string node id",
			req: NodeRequest{
				NodeID:     "ns=3;s=Line1.Motor",
				NodeClass:  "Variable",
				BrowseName: "3:Motor",
			},
			expectError: false,
		},
		{
			name: "Missing node id",
			req: NodeRequest{
				NodeClass:  "Object",
				BrowseName: "2:Pump",
			},
			expectError: true,
			errorPart:   "NodeID",
		},
		{
			name: "Malformed node id",
			req: NodeRequest{
				NodeID:     "nonsense",
				NodeClass:  "Object",
				BrowseName: "2:Pump",
			},
			expectError: true,
			errorPart:   "NodeID",
		},
		{
			name: "Unknown node class",
			req: NodeRequest{
				NodeID:     "ns=2;i=1",
				NodeClass:  "Widget",
				BrowseName: "2:W",
			},
			expectError: true,
			errorPart:   "NodeClass",
		},
		{
			name: "Missing browse name",
			req: NodeRequest{
				NodeID:    "ns=2;i=1",
				NodeClass: "Object",
			},
			expectError: true,
			errorPart:   "BrowseName",
		},
		{
			name: "Browse name with control character",
			req: NodeRequest{
				NodeID:     "ns=2;i=1",
				NodeClass:  "Object",
				BrowseName: "2:bad\x01name",
			},
			expectError: true,
			errorPart:   "BrowseName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeRequest(&tt.req)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorPart != "" && !strings.Contains(err.Error(), tt.errorPart) {
					t.Errorf("error %q does not mention %q", err, tt.errorPart)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateNodeRequestNil(t *testing.T) {
	if err := ValidateNodeRequest(nil); err == nil {
		t.Fatal("nil request must be rejected")
	}
}

// TestValidateReferenceRequest tests reference request validation
func TestValidateReferenceRequest(t *testing.T) {
	forward := true
	tests := []struct {
		name        string
		req         ReferenceRequest
		expectError bool
		errorPart   string
	}{
		{
			name: "Valid reference",
			req: ReferenceRequest{
				SourceID:      "ns=2;i=1",
				TargetID:      "ns=2;i=2",
				ReferenceType: "i=47",
				IsForward:     &forward,
			},
			expectError: false,
		},
		{
			name: "Missing direction is allowed",
			req: ReferenceRequest{
				SourceID:      "ns=2;i=1",
				TargetID:      "ns=2;i=2",
				ReferenceType: "i=35",
			},
			expectError: false,
		},
		{
			name: "Malformed reference type",
			req: ReferenceRequest{
				SourceID:      "ns=2;i=1",
				TargetID:      "ns=2;i=2",
				ReferenceType: "HasComponent",
			},
			expectError: true,
			errorPart:   "ReferenceType",
		},
		{
			name: "Self reference",
			req: ReferenceRequest{
				SourceID:      "ns=2;i=1",
				TargetID:      "ns=2;i=1",
				ReferenceType: "i=47",
			},
			expectError: true,
			errorPart:   "itself",
		},
		{
			name: "Missing target",
			req: ReferenceRequest{
				SourceID:      "ns=2;i=1",
				ReferenceType: "i=47",
			},
			expectError: true,
			errorPart:   "TargetID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReferenceRequest(&tt.req)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorPart != "" && !strings.Contains(err.Error(), tt.errorPart) {
					t.Errorf("error %q does not mention %q", err, tt.errorPart)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateBatchSize(t *testing.T) {
	if err := ValidateBatchSize(0); err == nil {
		t.Error("zero batch size must be rejected")
	}
	if err := ValidateBatchSize(MaxBatchSize + 1); err == nil {
		t.Error("oversized batch must be rejected")
	}
	if err := ValidateBatchSize(10); err != nil {
		t.Errorf("valid batch size rejected: %v", err)
	}
}

func TestValidateNodeIDString(t *testing.T) {
	for _, s := range []string{"i=85", "ns=2;s=Pump", "ns=1;g=09087e75-8e5e-499b-954f-f2a9603db28a"} {
		if err := ValidateNodeIDString(s); err != nil {
			t.Errorf("ValidateNodeIDString(%q) = %v", s, err)
		}
	}
	for _, s := range []string{"", "ns=x;i=1", "garbage"} {
		if err := ValidateNodeIDString(s); err == nil {
			t.Errorf("ValidateNodeIDString(%q) should fail", s)
		}
	}
}
