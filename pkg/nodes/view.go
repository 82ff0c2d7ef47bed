package nodes

import "github.com/Andy3189/async-opcua/pkg/ua"

// ViewNode is a node of class View.
type ViewNode struct {
	base
	ContainsNoLoops bool
	EventNotifier   uint8
}

// ViewBuilder constructs ViewNodes.
type ViewBuilder struct {
	node *ViewNode
}

// NewView starts building a View node.
func NewView(id ua.NodeID, browseName ua.QualifiedName) *ViewBuilder {
	return &ViewBuilder{node: &ViewNode{
		base:            newBase(id, ClassView, browseName),
		ContainsNoLoops: defaultBool(ClassView, "ContainsNoLoops"),
		EventNotifier:   defaultUint8(ClassView, "EventNotifier"),
	}}
}

func (b *ViewBuilder) DisplayName(t ua.LocalizedText) *ViewBuilder {
	b.node.SetDisplayName(t)
	return b
}

func (b *ViewBuilder) Description(t ua.LocalizedText) *ViewBuilder {
	b.node.SetDescription(t)
	return b
}

func (b *ViewBuilder) ContainsNoLoops(v bool) *ViewBuilder {
	b.node.ContainsNoLoops = v
	return b
}

func (b *ViewBuilder) EventNotifier(n uint8) *ViewBuilder {
	b.node.EventNotifier = n
	return b
}

// Build validates the required attributes and returns the node.
func (b *ViewBuilder) Build() (*ViewNode, error) {
	if err := b.node.validate(); err != nil {
		return nil, err
	}
	return b.node, nil
}
