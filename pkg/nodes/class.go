package nodes

import "fmt"

// NodeClass is the category of a node. The set is closed: every node in
// an address space belongs to exactly one of the eight classes.
type NodeClass uint8

const (
	ClassUnspecified   NodeClass = 0
	ClassObject        NodeClass = 1
	ClassVariable      NodeClass = 2
	ClassMethod        NodeClass = 4
	ClassObjectType    NodeClass = 8
	ClassVariableType  NodeClass = 16
	ClassReferenceType NodeClass = 32
	ClassDataType      NodeClass = 64
	ClassView          NodeClass = 128
)

// String returns the NodeSet element name without the UA prefix.
func (c NodeClass) String() string {
	switch c {
	case ClassObject:
		return "Object"
	case ClassVariable:
		return "Variable"
	case ClassMethod:
		return "Method"
	case ClassObjectType:
		return "ObjectType"
	case ClassVariableType:
		return "VariableType"
	case ClassReferenceType:
		return "ReferenceType"
	case ClassDataType:
		return "DataType"
	case ClassView:
		return "View"
	default:
		return fmt.Sprintf("NodeClass(%d)", uint8(c))
	}
}

// IsType reports whether the class is one of the four type categories
// that participate in the HasSubtype hierarchy.
func (c NodeClass) IsType() bool {
	switch c {
	case ClassObjectType, ClassVariableType, ClassReferenceType, ClassDataType:
		return true
	}
	return false
}
