// Package nodestore implements the content-addressed blob store (§4.3) that
// backs the trie engine: put(value) -> hash, get(hash) -> value. It is
// deliberately narrow — a trie never needs range scans or transactions over
// this store, only point reads and idempotent point writes.
package nodestore

// KeyValueReader wraps the read-side methods of a backing key/value store.
type KeyValueReader interface {
	// Has reports whether key is present in the store.
	Has(key []byte) (bool, error)
	// Get retrieves the value for key, returning ErrNotFound on a miss.
	Get(key []byte) ([]byte, error)
}

// KeyValueWriter wraps the write-side methods of a backing key/value store.
type KeyValueWriter interface {
	Put(key, value []byte) error
	Delete(key []byte) error
}

// Batch buffers writes and applies them together, used by bulk-loading
// tools; the core trie engine never depends on batching (every put it
// issues must be immediately visible to a following get).
type Batch interface {
	KeyValueWriter

	// ValueSize returns the amount of data queued for writing.
	ValueSize() int
	// Write flushes the buffered writes to the host store.
	Write() error
	// Reset empties the batch for reuse.
	Reset()
}

// Batcher wraps the NewBatch method of a backing store.
type Batcher interface {
	NewBatch() Batch
}

// KeyValueStore is the full interface a backing engine must satisfy: point
// reads, point writes, batched writes, and a Close for releasing any held
// file handles.
type KeyValueStore interface {
	KeyValueReader
	KeyValueWriter
	Batcher

	Close() error
}
