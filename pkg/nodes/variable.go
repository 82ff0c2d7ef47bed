package nodes

import "github.com/Andy3189/async-opcua/pkg/ua"

// AccessLevel bit flags for Variable nodes.
const (
	AccessLevelCurrentRead  uint8 = 1
	AccessLevelCurrentWrite uint8 = 2
	AccessLevelHistoryRead  uint8 = 4
	AccessLevelHistoryWrite uint8 = 8
)

// VariableNode is a node of class Variable. The declared DataType must
// resolve to a DataType node; that constraint is checked at finalize
// time, not on construction, so forward declarations import cleanly.
type VariableNode struct {
	base
	Value                   ua.Variant
	DataType                ua.NodeID
	ValueRank               int32
	ArrayDimensions         []uint32
	AccessLevel             uint8
	UserAccessLevel         uint8
	MinimumSamplingInterval float64
	Historizing             bool
}

// VariableBuilder constructs VariableNodes.
type VariableBuilder struct {
	node *VariableNode
}

// NewVariable starts building a Variable node. DataType defaults to
// BaseDataType, ValueRank to scalar (-1) and AccessLevel to
// CurrentRead, per the descriptor table.
func NewVariable(id ua.NodeID, browseName ua.QualifiedName) *VariableBuilder {
	return &VariableBuilder{node: &VariableNode{
		base:            newBase(id, ClassVariable, browseName),
		DataType:        ua.IDBaseDataType,
		ValueRank:       defaultInt32(ClassVariable, "ValueRank"),
		AccessLevel:     defaultUint8(ClassVariable, "AccessLevel"),
		UserAccessLevel: defaultUint8(ClassVariable, "UserAccessLevel"),
		Historizing:     defaultBool(ClassVariable, "Historizing"),
	}}
}

func (b *VariableBuilder) DisplayName(t ua.LocalizedText) *VariableBuilder {
	b.node.SetDisplayName(t)
	return b
}

func (b *VariableBuilder) Description(t ua.LocalizedText) *VariableBuilder {
	b.node.SetDescription(t)
	return b
}

func (b *VariableBuilder) WriteMask(m uint32) *VariableBuilder {
	b.node.SetWriteMask(m)
	return b
}

func (b *VariableBuilder) Value(v ua.Variant) *VariableBuilder {
	b.node.Value = v
	return b
}

func (b *VariableBuilder) DataType(id ua.NodeID) *VariableBuilder {
	b.node.DataType = id
	return b
}

func (b *VariableBuilder) ValueRank(rank int32) *VariableBuilder {
	b.node.ValueRank = rank
	return b
}

func (b *VariableBuilder) ArrayDimensions(dims []uint32) *VariableBuilder {
	b.node.ArrayDimensions = dims
	return b
}

func (b *VariableBuilder) AccessLevel(level uint8) *VariableBuilder {
	b.node.AccessLevel = level
	return b
}

func (b *VariableBuilder) UserAccessLevel(level uint8) *VariableBuilder {
	b.node.UserAccessLevel = level
	return b
}

func (b *VariableBuilder) MinimumSamplingInterval(ms float64) *VariableBuilder {
	b.node.MinimumSamplingInterval = ms
	return b
}

func (b *VariableBuilder) Historizing(h bool) *VariableBuilder {
	b.node.Historizing = h
	return b
}

// Writable adds the CurrentWrite bit to both access levels.
func (b *VariableBuilder) Writable() *VariableBuilder {
	b.node.AccessLevel |= AccessLevelCurrentWrite
	b.node.UserAccessLevel |= AccessLevelCurrentWrite
	return b
}

// Build validates the required attributes and returns the node.
func (b *VariableBuilder) Build() (*VariableNode, error) {
	if err := b.node.validate(); err != nil {
		return nil, err
	}
	return b.node, nil
}
