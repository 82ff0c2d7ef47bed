package nodes

import "github.com/Andy3189/async-opcua/pkg/ua"

// ObjectTypeNode is a node of class ObjectType.
type ObjectTypeNode struct {
	base
	IsAbstract bool
}

// ObjectTypeBuilder constructs ObjectTypeNodes.
type ObjectTypeBuilder struct {
	node *ObjectTypeNode
}

// NewObjectType starts building an ObjectType node.
func NewObjectType(id ua.NodeID, browseName ua.QualifiedName) *ObjectTypeBuilder {
	return &ObjectTypeBuilder{node: &ObjectTypeNode{
		base:       newBase(id, ClassObjectType, browseName),
		IsAbstract: defaultBool(ClassObjectType, "IsAbstract"),
	}}
}

func (b *ObjectTypeBuilder) DisplayName(t ua.LocalizedText) *ObjectTypeBuilder {
	b.node.SetDisplayName(t)
	return b
}

func (b *ObjectTypeBuilder) Description(t ua.LocalizedText) *ObjectTypeBuilder {
	b.node.SetDescription(t)
	return b
}

func (b *ObjectTypeBuilder) IsAbstract(abstract bool) *ObjectTypeBuilder {
	b.node.IsAbstract = abstract
	return b
}

// Build validates the required attributes and returns the node.
func (b *ObjectTypeBuilder) Build() (*ObjectTypeNode, error) {
	if err := b.node.validate(); err != nil {
		return nil, err
	}
	return b.node, nil
}
