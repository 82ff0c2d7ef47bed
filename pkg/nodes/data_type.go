package nodes

import "github.com/Andy3189/async-opcua/pkg/ua"

// DataTypeField is one field of a structure or enumeration definition.
type DataTypeField struct {
	Name        string
	Description string
	DataType    ua.NodeID
	ValueRank   int32
	// Value carries the enumerant value for enumeration definitions.
	Value      int64
	IsOptional bool
}

// DataTypeDefinition is the structure definition attached to a DataType
// node, parsed from the Definition block of a NodeSet document.
type DataTypeDefinition struct {
	Name    string
	IsUnion bool
	Fields  []DataTypeField
}

// DataTypeNode is a node of class DataType.
type DataTypeNode struct {
	base
	IsAbstract bool
	Definition *DataTypeDefinition
}

// DataTypeBuilder constructs DataTypeNodes.
type DataTypeBuilder struct {
	node *DataTypeNode
}

// NewDataType starts building a DataType node.
func NewDataType(id ua.NodeID, browseName ua.QualifiedName) *DataTypeBuilder {
	return &DataTypeBuilder{node: &DataTypeNode{
		base:       newBase(id, ClassDataType, browseName),
		IsAbstract: defaultBool(ClassDataType, "IsAbstract"),
	}}
}

func (b *DataTypeBuilder) DisplayName(t ua.LocalizedText) *DataTypeBuilder {
	b.node.SetDisplayName(t)
	return b
}

func (b *DataTypeBuilder) Description(t ua.LocalizedText) *DataTypeBuilder {
	b.node.SetDescription(t)
	return b
}

func (b *DataTypeBuilder) IsAbstract(abstract bool) *DataTypeBuilder {
	b.node.IsAbstract = abstract
	return b
}

func (b *DataTypeBuilder) Definition(def *DataTypeDefinition) *DataTypeBuilder {
	b.node.Definition = def
	return b
}

// Build validates the required attributes and returns the node.
func (b *DataTypeBuilder) Build() (*DataTypeNode, error) {
	if err := b.node.validate(); err != nil {
		return nil, err
	}
	return b.node, nil
}
