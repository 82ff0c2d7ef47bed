package nodes

import "github.com/Andy3189/async-opcua/pkg/ua"

// MethodNode is a node of class Method.
type MethodNode struct {
	base
	Executable     bool
	UserExecutable bool
}

// MethodBuilder constructs MethodNodes.
type MethodBuilder struct {
	node *MethodNode
}

// NewMethod starts building a Method node. Executable defaults to true.
func NewMethod(id ua.NodeID, browseName ua.QualifiedName) *MethodBuilder {
	return &MethodBuilder{node: &MethodNode{
		base:           newBase(id, ClassMethod, browseName),
		Executable:     defaultBool(ClassMethod, "Executable"),
		UserExecutable: defaultBool(ClassMethod, "UserExecutable"),
	}}
}

func (b *MethodBuilder) DisplayName(t ua.LocalizedText) *MethodBuilder {
	b.node.SetDisplayName(t)
	return b
}

func (b *MethodBuilder) Description(t ua.LocalizedText) *MethodBuilder {
	b.node.SetDescription(t)
	return b
}

func (b *MethodBuilder) Executable(e bool) *MethodBuilder {
	b.node.Executable = e
	return b
}

func (b *MethodBuilder) UserExecutable(e bool) *MethodBuilder {
	b.node.UserExecutable = e
	return b
}

// Build validates the required attributes and returns the node.
func (b *MethodBuilder) Build() (*MethodNode, error) {
	if err := b.node.validate(); err != nil {
		return nil, err
	}
	return b.node, nil
}
