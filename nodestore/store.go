package nodestore

import (
	"golang.org/x/crypto/sha3"

	"github.com/jaiminpan/mt-trie/common"
)

// HashLength is the length in bytes of a content hash, i.e. the digest size
// of the hash function chosen in Store (§9.1: Keccak-256).
const HashLength = common.HashLength

// Store is the content-addressed blob store described in §4.3: Put hashes a
// value and persists it keyed by that hash (re-storing identical content
// overwrites it with the same bytes), Get retrieves a previously-put value by
// its hash. Store never
// interprets the bytes it stores — the trie engine is the only caller that
// knows they are RLP-encoded nodes.
type Store struct {
	db      KeyValueStore
	metrics *storeMetrics
}

// NewStore wraps db as a content-addressed store. db is typically a
// memorydb.Database or a leveldb.Database.
func NewStore(db KeyValueStore) *Store {
	return &Store{db: db, metrics: newStoreMetrics()}
}

// Hash returns the content hash of value without storing it.
func Hash(value []byte) common.Hash {
	digest := sha3.NewLegacyKeccak256()
	digest.Write(value)
	var h common.Hash
	digest.Sum(h[:0])
	return h
}

// Put persists value under its content hash and returns that hash. Put is
// idempotent: storing the same bytes twice yields the same hash and the
// second call is a cheap overwrite of identical content (§8's "node-store
// idempotence" property).
func (s *Store) Put(value []byte) (common.Hash, error) {
	h := Hash(value)
	s.metrics.puts.Inc()
	if err := s.db.Put(h[:], value); err != nil {
		return common.Hash{}, err
	}
	return h, nil
}

// Get retrieves the value previously stored under hash. If no such value
// exists it returns the backing engine's not-found error, which IsNotFound
// recognizes.
func (s *Store) Get(hash common.Hash) ([]byte, error) {
	s.metrics.gets.Inc()
	v, err := s.db.Get(hash[:])
	if err != nil {
		s.metrics.misses.Inc()
		return nil, err
	}
	return v, nil
}

// Has reports whether hash is present without fetching its value.
func (s *Store) Has(hash common.Hash) (bool, error) {
	return s.db.Has(hash[:])
}

// Delete removes the value stored under hash, if any. The trie engine never
// calls this directly (nodes are content-addressed and may be shared across
// tries), but it is useful for store-level garbage collection tools.
func (s *Store) Delete(hash common.Hash) error {
	return s.db.Delete(hash[:])
}

// Close releases any resources held by the backing engine.
func (s *Store) Close() error {
	return s.db.Close()
}
