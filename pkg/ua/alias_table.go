package ua

// AliasTable maps document-local symbolic names to NodeIDs. Aliases are
// scoped to a single import unit; each imported file gets a fresh table.
type AliasTable struct {
	aliases map[string]NodeID
}

// NewAliasTable creates an empty alias table.
func NewAliasTable() *AliasTable {
	return &AliasTable{aliases: make(map[string]NodeID)}
}

// Intern records an alias. Re-interning the same name overwrites the
// previous mapping; NodeSet files declare each alias once.
func (t *AliasTable) Intern(name string, id NodeID) {
	t.aliases[name] = id
}

// Lookup returns the NodeID an alias stands for.
func (t *AliasTable) Lookup(name string) (NodeID, bool) {
	id, ok := t.aliases[name]
	return id, ok
}

// Len returns the number of interned aliases.
func (t *AliasTable) Len() int {
	return len(t.aliases)
}
