package ua

// NamespaceURIStandard is the URI of the standard OPC UA namespace. It
// always occupies index 0 of every namespace table.
const NamespaceURIStandard = "http://opcfoundation.org/UA/"

// NamespaceTable is the append-only, address-space-scoped table of
// namespace URIs. The position of a URI in the table is the namespace
// index used by every NodeID and QualifiedName; indices are stable for
// the lifetime of the table.
//
// NamespaceTable is not safe for concurrent mutation; the owning
// address space serializes writers.
type NamespaceTable struct {
	uris  []string
	index map[string]uint16
}

// NewNamespaceTable creates a table seeded with the standard OPC UA
// namespace at index 0.
func NewNamespaceTable() *NamespaceTable {
	t := &NamespaceTable{
		uris:  make([]string, 0, 4),
		index: make(map[string]uint16, 4),
	}
	t.Resolve(NamespaceURIStandard)
	return t
}

// Resolve returns the index of uri, appending it to the table first if
// it is not already registered. Idempotent.
func (t *NamespaceTable) Resolve(uri string) uint16 {
	if idx, ok := t.index[uri]; ok {
		return idx
	}
	idx := uint16(len(t.uris))
	t.uris = append(t.uris, uri)
	t.index[uri] = idx
	return idx
}

// Index returns the index of uri if registered.
func (t *NamespaceTable) Index(uri string) (uint16, bool) {
	idx, ok := t.index[uri]
	return idx, ok
}

// URI returns the URI at the given index.
func (t *NamespaceTable) URI(index uint16) (string, bool) {
	if int(index) >= len(t.uris) {
		return "", false
	}
	return t.uris[index], true
}

// Len returns the number of registered namespaces.
func (t *NamespaceTable) Len() int {
	return len(t.uris)
}

// URIs returns a copy of the table in index order.
func (t *NamespaceTable) URIs() []string {
	out := make([]string, len(t.uris))
	copy(out, t.uris)
	return out
}
