// Package leveldb implements a durable nodestore.KeyValueStore backed by an
// embedded LevelDB instance (github.com/syndtr/goleveldb), one file per
// backing path as required by §6.4.
package leveldb

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/jaiminpan/mt-trie/log"
	"github.com/jaiminpan/mt-trie/nodestore"
)

// Database wraps a LevelDB handle to satisfy nodestore.KeyValueStore.
type Database struct {
	fn string
	db *leveldb.DB
}

// New opens (creating if absent) the LevelDB instance at file. cache and
// handles size the cache (MiB; half goes to the block cache, a quarter to the
// write buffer) and the open file handle limit, respectively; values below 16
// are raised to 16.
func New(file string, cache, handles int) (*Database, error) {
	if cache < 16 {
		cache = 16
	}
	if handles < 16 {
		handles = 16
	}
	db, err := leveldb.OpenFile(file, &opt.Options{
		OpenFilesCacheCapacity: handles,
		BlockCacheCapacity:     cache / 2 * opt.MiB,
		WriteBuffer:            cache / 4 * opt.MiB,
		Filter:                 nil,
	})
	if _, corrupted := err.(*ldberrors.ErrCorrupted); corrupted {
		log.Warn("node store corrupted, attempting recovery", "path", file)
		db, err = leveldb.RecoverFile(file, nil)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "opening node store at %s", file)
	}
	log.Info("opened durable node store", "path", file)
	return &Database{fn: file, db: db}, nil
}

func (d *Database) Has(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

func (d *Database) Get(key []byte) ([]byte, error) {
	v, err := d.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		log.Trace("node store miss", "path", d.fn, "key", key)
		return nil, ErrNotFound
	}
	return v, err
}

func (d *Database) Put(key, value []byte) error {
	return d.db.Put(key, value, nil)
}

func (d *Database) Delete(key []byte) error {
	return d.db.Delete(key, nil)
}

func (d *Database) NewBatch() nodestore.Batch {
	return &batch{db: d.db, b: new(leveldb.Batch)}
}

func (d *Database) Close() error {
	return d.db.Close()
}

// ErrNotFound is returned by Get on a miss, matching the contract of
// nodestore.KeyValueReader regardless of which engine is behind it.
var ErrNotFound = errors.New("leveldb: key not found")

type batch struct {
	db   *leveldb.DB
	b    *leveldb.Batch
	size int
}

func (b *batch) Put(key, value []byte) error {
	b.b.Put(key, value)
	b.size += len(key) + len(value)
	return nil
}

func (b *batch) Delete(key []byte) error {
	b.b.Delete(key)
	b.size += len(key)
	return nil
}

func (b *batch) ValueSize() int { return b.size }

func (b *batch) Write() error {
	return b.db.Write(b.b, nil)
}

func (b *batch) Reset() {
	b.b.Reset()
	b.size = 0
}
