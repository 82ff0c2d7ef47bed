package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/Andy3189/async-opcua/pkg/ua"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxBrowseNameLength  = 512
	MaxDescriptionLength = 4096
	MaxBatchSize         = 1000
	MinBatchSize         = 1

	// Node classes accepted in requests
	nodeClasses = map[string]bool{
		"Object": true, "Variable": true, "Method": true,
		"ObjectType": true, "VariableType": true, "ReferenceType": true,
		"DataType": true, "View": true,
	}

	browseNamePattern = regexp.MustCompile(`^([0-9]+:)?[^\x00-\x1f]+$`)
)

func init() {
	validate = validator.New()
	// nodeid: the string must parse as a NodeId ("i=85", "ns=2;s=Pump").
	validate.RegisterValidation("nodeid", func(fl validator.FieldLevel) bool {
		_, err := ua.ParseNodeID(fl.Field().String())
		return err == nil
	})
}

// NodeRequest represents a request to create a node from string form,
// as it arrives from a CLI or API boundary.
type NodeRequest struct {
	NodeID     string `json:"nodeId" validate:"required,nodeid"`
	NodeClass  string `json:"nodeClass" validate:"required"`
	BrowseName string `json:"browseName" validate:"required,max=512"`
}

// ReferenceRequest represents a request to create a reference.
type ReferenceRequest struct {
	SourceID      string `json:"sourceId" validate:"required,nodeid"`
	TargetID      string `json:"targetId" validate:"required,nodeid"`
	ReferenceType string `json:"referenceType" validate:"required,nodeid"`
	IsForward     *bool  `json:"isForward" validate:"omitempty"`
}

// ValidateNodeRequest validates a node creation request
func ValidateNodeRequest(req *NodeRequest) error {
	if req == nil {
		return errors.New("node request cannot be nil")
	}

	// Validate using struct tags
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	if !nodeClasses[req.NodeClass] {
		return fmt.Errorf("NodeClass: '%s' is not a node class", req.NodeClass)
	}

	if len(req.BrowseName) > MaxBrowseNameLength {
		return fmt.Errorf("BrowseName: exceeds maximum length of %d characters", MaxBrowseNameLength)
	}
	if !browseNamePattern.MatchString(req.BrowseName) {
		return fmt.Errorf("BrowseName: '%s' contains control characters", req.BrowseName)
	}

	return nil
}

// ValidateReferenceRequest validates a reference creation request
func ValidateReferenceRequest(req *ReferenceRequest) error {
	if req == nil {
		return errors.New("reference request cannot be nil")
	}

	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	if req.SourceID == req.TargetID {
		// Self references are legal but almost always a mistake at
		// this boundary; hierarchical self loops never finalize.
		return fmt.Errorf("TargetID: reference from '%s' to itself", req.SourceID)
	}

	return nil
}

// ValidateBatchSize validates the size of a batch request
func ValidateBatchSize(size int) error {
	if size < MinBatchSize {
		return fmt.Errorf("batch size must be at least %d, got %d", MinBatchSize, size)
	}
	if size > MaxBatchSize {
		return fmt.Errorf("batch size must not exceed %d, got %d", MaxBatchSize, size)
	}
	return nil
}

// ValidateNodeIDString validates a standalone NodeId string
func ValidateNodeIDString(s string) error {
	if s == "" {
		return errors.New("node id cannot be empty")
	}
	if _, err := ua.ParseNodeID(s); err != nil {
		return fmt.Errorf("node id '%s' is malformed", s)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "nodeid":
			return fmt.Errorf("%s: not a valid node id", field)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
