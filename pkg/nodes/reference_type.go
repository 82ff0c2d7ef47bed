package nodes

import "github.com/Andy3189/async-opcua/pkg/ua"

// ReferenceTypeNode is a node of class ReferenceType. Symmetric
// reference types have no inverse name; the import pipeline leaves
// InverseName empty for them.
type ReferenceTypeNode struct {
	base
	IsAbstract  bool
	Symmetric   bool
	InverseName ua.LocalizedText
}

// ReferenceTypeBuilder constructs ReferenceTypeNodes.
type ReferenceTypeBuilder struct {
	node *ReferenceTypeNode
}

// NewReferenceType starts building a ReferenceType node.
func NewReferenceType(id ua.NodeID, browseName ua.QualifiedName) *ReferenceTypeBuilder {
	return &ReferenceTypeBuilder{node: &ReferenceTypeNode{
		base:       newBase(id, ClassReferenceType, browseName),
		IsAbstract: defaultBool(ClassReferenceType, "IsAbstract"),
		Symmetric:  defaultBool(ClassReferenceType, "Symmetric"),
	}}
}

func (b *ReferenceTypeBuilder) DisplayName(t ua.LocalizedText) *ReferenceTypeBuilder {
	b.node.SetDisplayName(t)
	return b
}

func (b *ReferenceTypeBuilder) Description(t ua.LocalizedText) *ReferenceTypeBuilder {
	b.node.SetDescription(t)
	return b
}

func (b *ReferenceTypeBuilder) IsAbstract(abstract bool) *ReferenceTypeBuilder {
	b.node.IsAbstract = abstract
	return b
}

func (b *ReferenceTypeBuilder) Symmetric(symmetric bool) *ReferenceTypeBuilder {
	b.node.Symmetric = symmetric
	return b
}

func (b *ReferenceTypeBuilder) InverseName(t ua.LocalizedText) *ReferenceTypeBuilder {
	b.node.InverseName = t
	return b
}

// Build validates the required attributes and returns the node.
func (b *ReferenceTypeBuilder) Build() (*ReferenceTypeNode, error) {
	if err := b.node.validate(); err != nil {
		return nil, err
	}
	return b.node, nil
}
