package trie

import (
	"github.com/jaiminpan/mt-trie/common"
	"github.com/jaiminpan/mt-trie/nodestore"
)

// Database adapts a content-addressed nodestore.Store to the trie engine's
// needs: decoding the blob it gets back and turning a store miss into a
// MissingNodeError that carries the failing path, per §7's NodeMissing error
// kind. It holds no cache of its own - every resolution is a store round
// trip, matching the Non-goal that rules out a dirty-node cache or a
// multi-call commit batch.
type Database struct {
	store *nodestore.Store
}

// NewDatabase wraps store for use by a Trie.
func NewDatabase(store *nodestore.Store) *Database {
	return &Database{store: store}
}

// Store returns the underlying content-addressed store, e.g. for callers
// that want to open a second Trie against the same backing file.
func (db *Database) Store() *nodestore.Store { return db.store }

// node resolves hash to a decoded node, tracking path for error reporting.
func (db *Database) node(path []byte, hash common.Hash) (node, error) {
	blob, err := db.nodeBlob(path, hash)
	if err != nil {
		return nil, err
	}
	n, err := decodeNode(hash[:], blob)
	if err != nil {
		return nil, &MissingNodeError{NodeHash: hash, Path: path, err: err}
	}
	return n, nil
}

// nodeBlob resolves hash to its raw RLP encoding.
func (db *Database) nodeBlob(path []byte, hash common.Hash) ([]byte, error) {
	blob, err := db.store.Get(hash)
	if err != nil || len(blob) == 0 {
		return nil, &MissingNodeError{NodeHash: hash, Path: path, err: err}
	}
	return blob, nil
}
