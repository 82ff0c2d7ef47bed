package nodes

import "github.com/Andy3189/async-opcua/pkg/ua"

// ObjectNode is a node of class Object.
type ObjectNode struct {
	base
	EventNotifier uint8
}

// ObjectBuilder constructs ObjectNodes.
type ObjectBuilder struct {
	node *ObjectNode
}

// NewObject starts building an Object node. NodeID and BrowseName are
// the required attributes; everything else defaults per the attribute
// descriptor table.
func NewObject(id ua.NodeID, browseName ua.QualifiedName) *ObjectBuilder {
	return &ObjectBuilder{node: &ObjectNode{
		base:          newBase(id, ClassObject, browseName),
		EventNotifier: defaultUint8(ClassObject, "EventNotifier"),
	}}
}

func (b *ObjectBuilder) DisplayName(t ua.LocalizedText) *ObjectBuilder {
	b.node.SetDisplayName(t)
	return b
}

func (b *ObjectBuilder) Description(t ua.LocalizedText) *ObjectBuilder {
	b.node.SetDescription(t)
	return b
}

func (b *ObjectBuilder) WriteMask(m uint32) *ObjectBuilder {
	b.node.SetWriteMask(m)
	return b
}

func (b *ObjectBuilder) EventNotifier(n uint8) *ObjectBuilder {
	b.node.EventNotifier = n
	return b
}

// Build validates the required attributes and returns the node.
func (b *ObjectBuilder) Build() (*ObjectNode, error) {
	if err := b.node.validate(); err != nil {
		return nil, err
	}
	return b.node, nil
}
