package nodestore

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"

	lvldb "github.com/jaiminpan/mt-trie/nodestore/leveldb"
	"github.com/jaiminpan/mt-trie/nodestore/memorydb"
)

// Registry opens and caches one *Store per backing file path, so that two
// callers asking for the same durable path within the same process share a
// single open handle instead of racing two independent leveldb.OpenFile
// calls against the same directory. It is a plain type, not a package
// singleton, so tests can construct a scoped Registry instead of reaching
// for shared global state; Default is provided for callers that don't care.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// Default is the process-global Registry used by OpenDurable / OpenMemory
// when callers don't need a scoped instance.
var Default = NewRegistry()

// OpenDurable returns the Store backing path, opening it on first use and
// reusing the open handle on subsequent calls for the same path.
func (r *Registry) OpenDurable(path string) (*Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[path]; ok {
		return s, nil
	}
	db, err := lvldb.New(path, 0, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "opening durable node store at %s", path)
	}
	s := NewStore(db)
	r.stores[path] = s
	return s, nil
}

// OpenMemory returns the Store registered under name, creating a fresh
// in-memory one on first use. Unlike OpenDurable this has no filesystem
// counterpart, so name is just a cache key chosen by the caller (tests
// typically use t.Name()).
func (r *Registry) OpenMemory(name string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[name]; ok {
		return s
	}
	s := NewStore(memorydb.New())
	r.stores[name] = s
	return s
}

// Close closes every store the registry has opened and forgets them.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var first error
	for path, s := range r.stores {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
		delete(r.stores, path)
	}
	return first
}

// IsNotFound reports whether err is the not-found signal of whichever
// backing engine produced it.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if err == memorydb.ErrNotFound || err == lvldb.ErrNotFound || err == leveldb.ErrNotFound {
		return true
	}
	return errors.Cause(err) == leveldb.ErrNotFound
}
