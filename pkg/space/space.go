package space

import (
	"errors"
	"sync"
	"time"

	"github.com/Andy3189/async-opcua/pkg/graph"
	"github.com/Andy3189/async-opcua/pkg/logging"
	"github.com/Andy3189/async-opcua/pkg/metrics"
	"github.com/Andy3189/async-opcua/pkg/nodes"
	"github.com/Andy3189/async-opcua/pkg/typetree"
	"github.com/Andy3189/async-opcua/pkg/ua"
)

// RefMode selects the validation applied when inserting a reference.
type RefMode uint8

const (
	// RefStrict rejects references whose endpoints are not both present.
	// This is the runtime mode.
	RefStrict RefMode = iota
	// RefDeferred accepts references to nodes that do not exist yet.
	// Import pipelines use this mode and lean on Finalize to catch
	// references that never resolved.
	RefDeferred
)

// DeleteMode selects how DeleteNode treats incident references.
type DeleteMode uint8

const (
	// DeleteReject fails the delete if any reference still touches the node.
	DeleteReject DeleteMode = iota
	// DeleteCascade removes all incident references along with the node.
	DeleteCascade
)

// Config holds optional collaborators for an address space.
type Config struct {
	Logger  logging.Logger
	Metrics *metrics.Registry
}

// AddressSpace is the central in-memory node and reference store. All
// exported methods are safe for concurrent use: reads take a shared
// lock, mutations an exclusive one.
type AddressSpace struct {
	mu         sync.RWMutex
	nodes      map[ua.NodeID]nodes.Node
	refs       *graph.Graph
	namespaces *ua.NamespaceTable
	resolver   *typetree.Resolver

	logger logging.Logger
	m      *metrics.Registry
}

// New creates an address space seeded with the standard namespace and
// the base type hierarchy.
func New() *AddressSpace {
	return NewWithConfig(Config{})
}

// NewWithConfig creates an address space with explicit collaborators.
// A nil logger or metrics registry disables that concern.
func NewWithConfig(cfg Config) *AddressSpace {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	s := &AddressSpace{
		nodes:      make(map[ua.NodeID]nodes.Node),
		refs:       graph.New(),
		namespaces: ua.NewNamespaceTable(),
		logger:     logger.With(logging.Component("space")),
		m:          cfg.Metrics,
	}
	s.resolver = typetree.New(s.refs, (*lockFreeInfo)(s))
	s.seedBaseModel()
	return s
}

// lockFreeInfo exposes class and browse name lookups without taking
// the space lock. The resolver is only ever invoked from methods that
// already hold it.
type lockFreeInfo AddressSpace

func (s *lockFreeInfo) NodeClassOf(id ua.NodeID) (nodes.NodeClass, bool) {
	n, ok := s.nodes[id]
	if !ok {
		return 0, false
	}
	return n.NodeClass(), true
}

func (s *lockFreeInfo) BrowseNameOf(id ua.NodeID) (ua.QualifiedName, bool) {
	n, ok := s.nodes[id]
	if !ok {
		return ua.QualifiedName{}, false
	}
	return n.BrowseName(), true
}

// seedBaseModel installs the four base type roots and the small set of
// standard reference types everything else hangs off. Node set imports
// layer the full standard model on top of these.
func (s *AddressSpace) seedBaseModel() {
	objectType := func(id ua.NodeID, name string) {
		n, _ := nodes.NewObjectType(id, ua.NewQualifiedName(0, name)).IsAbstract(true).Build()
		s.nodes[id] = n
	}
	variableType := func(id ua.NodeID, name string) {
		n, _ := nodes.NewVariableType(id, ua.NewQualifiedName(0, name)).IsAbstract(true).Build()
		s.nodes[id] = n
	}
	dataType := func(id ua.NodeID, name string) {
		n, _ := nodes.NewDataType(id, ua.NewQualifiedName(0, name)).IsAbstract(true).Build()
		s.nodes[id] = n
	}
	referenceType := func(id ua.NodeID, name string, abstract, symmetric bool) {
		n, _ := nodes.NewReferenceType(id, ua.NewQualifiedName(0, name)).
			IsAbstract(abstract).
			Symmetric(symmetric).
			Build()
		s.nodes[id] = n
	}
	subtype := func(parent, child ua.NodeID) {
		s.refs.Add(graph.Reference{
			Source:    parent,
			Target:    child,
			Type:      ua.IDHasSubtype,
			IsForward: true,
		})
	}

	objectType(ua.IDBaseObjectType, "BaseObjectType")
	variableType(ua.IDBaseVariableType, "BaseVariableType")
	dataType(ua.IDBaseDataType, "BaseDataType")

	referenceType(ua.IDReferences, "References", true, true)
	referenceType(ua.IDHierarchicalReferences, "HierarchicalReferences", true, false)
	referenceType(ua.IDNonHierarchicalReferences, "NonHierarchicalReferences", true, false)
	referenceType(ua.IDHasChild, "HasChild", true, false)
	referenceType(ua.IDAggregates, "Aggregates", true, false)
	referenceType(ua.IDHasSubtype, "HasSubtype", false, false)
	referenceType(ua.IDHasComponent, "HasComponent", false, false)
	referenceType(ua.IDHasProperty, "HasProperty", false, false)
	referenceType(ua.IDOrganizes, "Organizes", false, false)
	referenceType(ua.IDHasTypeDefinition, "HasTypeDefinition", false, false)

	subtype(ua.IDReferences, ua.IDHierarchicalReferences)
	subtype(ua.IDReferences, ua.IDNonHierarchicalReferences)
	subtype(ua.IDHierarchicalReferences, ua.IDHasChild)
	subtype(ua.IDHierarchicalReferences, ua.IDOrganizes)
	subtype(ua.IDHasChild, ua.IDAggregates)
	subtype(ua.IDHasChild, ua.IDHasSubtype)
	subtype(ua.IDAggregates, ua.IDHasComponent)
	subtype(ua.IDAggregates, ua.IDHasProperty)
	subtype(ua.IDNonHierarchicalReferences, ua.IDHasTypeDefinition)
}

// ResolveNamespace registers a namespace URI and returns its index.
// Registering a known URI returns the existing index.
func (s *AddressSpace) ResolveNamespace(uri string) uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.namespaces.Resolve(uri)
}

// NamespaceIndex looks up the index of a registered namespace URI.
func (s *AddressSpace) NamespaceIndex(uri string) (uint16, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.namespaces.Index(uri)
}

// NamespaceURIs returns the namespace table contents in index order.
func (s *AddressSpace) NamespaceURIs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.namespaces.URIs()
}

// InsertNode adds a node to the address space. Inserting a node whose
// id is already present fails with ErrDuplicateNodeID.
func (s *AddressSpace) InsertNode(n nodes.Node) error {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	id := n.NodeID()
	if _, exists := s.nodes[id]; exists {
		s.record("insert_node", "error", start)
		return opError("InsertNode", id, ErrDuplicateNodeID)
	}
	s.nodes[id] = n
	s.record("insert_node", "success", start)
	s.updateTotals()
	return nil
}

// InsertReference adds a typed reference between two nodes. In
// RefStrict mode both endpoints must already exist; RefDeferred skips
// the endpoint check. Adding an identical reference twice is a no-op.
func (s *AddressSpace) InsertReference(ref graph.Reference, mode RefMode) error {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if mode == RefStrict {
		if _, ok := s.nodes[ref.Source]; !ok {
			s.record("insert_reference", "error", start)
			return opError("InsertReference", ref.Source, ErrDanglingReference)
		}
		if _, ok := s.nodes[ref.Target]; !ok {
			s.record("insert_reference", "error", start)
			return opError("InsertReference", ref.Target, ErrDanglingReference)
		}
	}
	s.refs.Add(ref)
	s.record("insert_reference", "success", start)
	s.updateTotals()
	return nil
}

// GetNode returns the node with the given id.
func (s *AddressSpace) GetNode(id ua.NodeID) (nodes.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	return n, ok
}

// ContainsNode reports whether a node with the given id exists.
func (s *AddressSpace) ContainsNode(id ua.NodeID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.nodes[id]
	return ok
}

// ModifyNode runs fn against the node with the given id while holding
// the write lock. This is the only sanctioned way to mutate a stored
// node; pointers returned by GetNode must be treated as read-only.
func (s *AddressSpace) ModifyNode(id ua.NodeID, fn func(nodes.Node) error) error {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nodes[id]
	if !ok {
		s.record("modify_node", "error", start)
		return opError("ModifyNode", id, ErrNodeNotFound)
	}
	if err := fn(n); err != nil {
		s.record("modify_node", "error", start)
		return opError("ModifyNode", id, err)
	}
	s.record("modify_node", "success", start)
	return nil
}

// DeleteNode removes a node. DeleteReject fails with
// ErrReferentialIntegrity if any reference still touches the node;
// DeleteCascade removes those references first. Deleting an unknown
// node fails with ErrNodeNotFound.
func (s *AddressSpace) DeleteNode(id ua.NodeID, mode DeleteMode) error {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[id]; !ok {
		s.record("delete_node", "error", start)
		return opError("DeleteNode", id, ErrNodeNotFound)
	}

	incident := len(s.refs.From(id, graph.Filter{})) + len(s.refs.To(id, graph.Filter{}))
	if incident > 0 {
		if mode == DeleteReject {
			s.record("delete_node", "error", start)
			return opError("DeleteNode", id, ErrReferentialIntegrity)
		}
		removed := s.refs.RemoveIncident(id)
		s.logger.Debug("cascade removed references",
			logging.NodeID(id),
			logging.Count(removed),
		)
	}

	delete(s.nodes, id)
	s.record("delete_node", "success", start)
	s.updateTotals()
	return nil
}

// References returns the references originating at a node, optionally
// filtered by type and direction.
func (s *AddressSpace) References(id ua.NodeID, filter graph.Filter) []graph.Reference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refs.From(id, filter)
}

// ReferencesTo returns the references arriving at a node.
func (s *AddressSpace) ReferencesTo(id ua.NodeID, filter graph.Filter) []graph.Reference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refs.To(id, filter)
}

// NodeCount returns the number of nodes in the space.
func (s *AddressSpace) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// ReferenceCount returns the number of references in the space.
func (s *AddressSpace) ReferenceCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refs.Count()
}

// EachNode calls fn for every node until fn returns false. The lock is
// held for the duration; fn must not call back into the space.
func (s *AddressSpace) EachNode(fn func(nodes.Node) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.nodes {
		if !fn(n) {
			return
		}
	}
}

// IsSubtypeOf reports whether candidate is ancestor or one of its
// transitive subtypes.
func (s *AddressSpace) IsSubtypeOf(candidate, ancestor ua.NodeID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolver.IsSubtypeOf(candidate, ancestor)
}

// SupertypeOf returns the direct supertype of a type node.
func (s *AddressSpace) SupertypeOf(id ua.NodeID) (ua.NodeID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolver.SupertypeOf(id)
}

// SubtypesOf collects a type node and all its transitive subtypes in
// deterministic breadth-first order.
func (s *AddressSpace) SubtypesOf(root ua.NodeID) ([]ua.NodeID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	subs, err := s.resolver.AllSubtypesOf(root).Collect()
	if err != nil {
		return nil, err
	}
	return append([]ua.NodeID{root}, subs...), nil
}

// FindTypeProperty resolves a browse path of properties and components
// starting at a type node.
func (s *AddressSpace) FindTypeProperty(typeID ua.NodeID, path []ua.QualifiedName) (ua.NodeID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolver.FindTypeProperty(typeID, path)
}

func (s *AddressSpace) record(op, status string, start time.Time) {
	if s.m == nil {
		return
	}
	s.m.RecordSpaceOperation(op, status, time.Since(start))
}

func (s *AddressSpace) updateTotals() {
	if s.m == nil {
		return
	}
	s.m.UpdateSpaceTotals(len(s.nodes), s.refs.Count(), s.namespaces.Len())
}

// IsDuplicate reports whether err is a duplicate node id failure.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateNodeID)
}
