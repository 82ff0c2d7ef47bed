package nodes

import (
	"errors"
	"fmt"

	"github.com/Andy3189/async-opcua/pkg/ua"
)

// Construction errors shared by every builder
var (
	ErrMissingNodeID     = errors.New("node id is required")
	ErrMissingBrowseName = errors.New("browse name is required")
)

// Node is the common surface of every node variant. NodeID and
// NodeClass are fixed at construction; the remaining common attributes
// may be mutated in place by the owning address space.
type Node interface {
	NodeID() ua.NodeID
	NodeClass() NodeClass
	BrowseName() ua.QualifiedName
	DisplayName() ua.LocalizedText
	SetDisplayName(ua.LocalizedText)
	Description() ua.LocalizedText
	SetDescription(ua.LocalizedText)
	WriteMask() uint32
	SetWriteMask(uint32)
	UserWriteMask() uint32
	SetUserWriteMask(uint32)
}

// Equal reports whether two nodes are the same node. Node identity is
// the NodeID alone; attribute state does not participate.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.NodeID() == b.NodeID()
}

// base carries the attributes shared by all node classes.
type base struct {
	id            ua.NodeID
	class         NodeClass
	browseName    ua.QualifiedName
	displayName   ua.LocalizedText
	description   ua.LocalizedText
	writeMask     uint32
	userWriteMask uint32
}

func newBase(id ua.NodeID, class NodeClass, browseName ua.QualifiedName) base {
	return base{
		id:         id,
		class:      class,
		browseName: browseName,
		// DisplayName defaults to the browse name text when not set,
		// matching how NodeSet files omit it.
		displayName: ua.NewLocalizedText(browseName.Name),
	}
}

func (b *base) NodeID() ua.NodeID               { return b.id }
func (b *base) NodeClass() NodeClass            { return b.class }
func (b *base) BrowseName() ua.QualifiedName    { return b.browseName }
func (b *base) DisplayName() ua.LocalizedText   { return b.displayName }
func (b *base) SetDisplayName(t ua.LocalizedText) {
	if !t.IsEmpty() {
		b.displayName = t
	}
}
func (b *base) Description() ua.LocalizedText     { return b.description }
func (b *base) SetDescription(t ua.LocalizedText) { b.description = t }
func (b *base) WriteMask() uint32                 { return b.writeMask }
func (b *base) SetWriteMask(m uint32)             { b.writeMask = m }
func (b *base) UserWriteMask() uint32             { return b.userWriteMask }
func (b *base) SetUserWriteMask(m uint32)         { b.userWriteMask = m }

// validate checks the required common attributes.
func (b *base) validate() error {
	if b.id.IsNull() {
		return ErrMissingNodeID
	}
	if b.browseName.IsEmpty() {
		return fmt.Errorf("%w: node %s", ErrMissingBrowseName, b.id)
	}
	return nil
}
