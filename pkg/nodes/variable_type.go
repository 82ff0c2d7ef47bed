package nodes

import "github.com/Andy3189/async-opcua/pkg/ua"

// VariableTypeNode is a node of class VariableType. Like Variable, its
// DataType reference is validated at finalize time.
type VariableTypeNode struct {
	base
	Value           ua.Variant
	DataType        ua.NodeID
	ValueRank       int32
	ArrayDimensions []uint32
	IsAbstract      bool
}

// VariableTypeBuilder constructs VariableTypeNodes.
type VariableTypeBuilder struct {
	node *VariableTypeNode
}

// NewVariableType starts building a VariableType node.
func NewVariableType(id ua.NodeID, browseName ua.QualifiedName) *VariableTypeBuilder {
	return &VariableTypeBuilder{node: &VariableTypeNode{
		base:       newBase(id, ClassVariableType, browseName),
		DataType:   ua.IDBaseDataType,
		ValueRank:  defaultInt32(ClassVariableType, "ValueRank"),
		IsAbstract: defaultBool(ClassVariableType, "IsAbstract"),
	}}
}

func (b *VariableTypeBuilder) DisplayName(t ua.LocalizedText) *VariableTypeBuilder {
	b.node.SetDisplayName(t)
	return b
}

func (b *VariableTypeBuilder) Description(t ua.LocalizedText) *VariableTypeBuilder {
	b.node.SetDescription(t)
	return b
}

func (b *VariableTypeBuilder) Value(v ua.Variant) *VariableTypeBuilder {
	b.node.Value = v
	return b
}

func (b *VariableTypeBuilder) DataType(id ua.NodeID) *VariableTypeBuilder {
	b.node.DataType = id
	return b
}

func (b *VariableTypeBuilder) ValueRank(rank int32) *VariableTypeBuilder {
	b.node.ValueRank = rank
	return b
}

func (b *VariableTypeBuilder) ArrayDimensions(dims []uint32) *VariableTypeBuilder {
	b.node.ArrayDimensions = dims
	return b
}

func (b *VariableTypeBuilder) IsAbstract(abstract bool) *VariableTypeBuilder {
	b.node.IsAbstract = abstract
	return b
}

// Build validates the required attributes and returns the node.
func (b *VariableTypeBuilder) Build() (*VariableTypeNode, error) {
	if err := b.node.validate(); err != nil {
		return nil, err
	}
	return b.node, nil
}
