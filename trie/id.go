package trie

import "github.com/jaiminpan/mt-trie/common"

// ID identifies a trie by its root hash, per §6.2's Trie(store_id, root_ref)
// surface - store_id is the Database/Store a caller already has open,
// root_ref is this ID.
type ID struct {
	Root common.Hash
}

// TrieID builds an ID from a root hash. The zero hash means "empty trie".
func TrieID(root common.Hash) *ID {
	return &ID{Root: root}
}
