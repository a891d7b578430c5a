// Package memorydb implements an ephemeral, in-process nodestore.KeyValueStore
// backed by a Go map. It is used for tests and for short-lived tries that
// never need to survive process exit.
package memorydb

import (
	"sync"

	"github.com/jaiminpan/mt-trie/nodestore"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "memorydb: key not found" }

// Database is an in-memory key/value store guarded by a RWMutex; reads may
// proceed concurrently, writes are serialized.
type Database struct {
	lock sync.RWMutex
	db   map[string][]byte
}

// New returns an empty Database.
func New() *Database {
	return &Database{db: make(map[string][]byte)}
}

func (d *Database) Has(key []byte) (bool, error) {
	d.lock.RLock()
	defer d.lock.RUnlock()

	_, ok := d.db[string(key)]
	return ok, nil
}

func (d *Database) Get(key []byte) ([]byte, error) {
	d.lock.RLock()
	defer d.lock.RUnlock()

	if v, ok := d.db[string(key)]; ok {
		return append([]byte(nil), v...), nil
	}
	return nil, ErrNotFound
}

func (d *Database) Put(key, value []byte) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.db[string(key)] = append([]byte(nil), value...)
	return nil
}

func (d *Database) Delete(key []byte) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	delete(d.db, string(key))
	return nil
}

func (d *Database) NewBatch() nodestore.Batch {
	return &batch{db: d}
}

func (d *Database) Close() error { return nil }

// Len reports the number of keys currently stored, mostly useful in tests.
func (d *Database) Len() int {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return len(d.db)
}

type keyvalue struct {
	key    []byte
	value  []byte
	delete bool
}

// batch buffers a sequence of writes and applies them in order on Write.
type batch struct {
	db     *Database
	writes []keyvalue
	size   int
}

func (b *batch) Put(key, value []byte) error {
	b.writes = append(b.writes, keyvalue{append([]byte(nil), key...), append([]byte(nil), value...), false})
	b.size += len(key) + len(value)
	return nil
}

func (b *batch) Delete(key []byte) error {
	b.writes = append(b.writes, keyvalue{append([]byte(nil), key...), nil, true})
	b.size += len(key)
	return nil
}

func (b *batch) ValueSize() int { return b.size }

func (b *batch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()

	for _, kv := range b.writes {
		if kv.delete {
			delete(b.db.db, string(kv.key))
			continue
		}
		b.db.db[string(kv.key)] = kv.value
	}
	return nil
}

func (b *batch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
