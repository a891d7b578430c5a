package trie

import (
	"bytes"
	"math/rand"
	"strconv"
	"testing"

	"github.com/jaiminpan/mt-trie/common"
	"github.com/jaiminpan/mt-trie/nodestore"
	"github.com/jaiminpan/mt-trie/nodestore/memorydb"
)

func newTestDatabase() *Database {
	return NewDatabase(nodestore.NewStore(memorydb.New()))
}

func TestEmptyTrie(t *testing.T) {
	tr := NewEmpty(newTestDatabase())
	if root := tr.Root(); root != (common.Hash{}) {
		t.Errorf("expected zero hash for empty trie, got %x", root)
	}
}

func TestGetUpdateDelete(t *testing.T) {
	tr := NewEmpty(newTestDatabase())

	key := make([]byte, 32)
	value := []byte("test")
	if err := tr.TryUpdate(key, value); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(tr.Get(key), value) {
		t.Fatal("wrong value")
	}
	if err := tr.TryUpdate(key, nil); err != nil {
		t.Fatal(err)
	}
	if v := tr.Get(key); len(v) != 0 {
		t.Fatalf("expected deleted key to read back empty, got %q", v)
	}
}

// TestConcreteScenario exercises the do/dog/doge/horse scenario.
func TestConcreteScenario(t *testing.T) {
	tr := NewEmpty(newTestDatabase())

	entries := []struct{ k, v string }{
		{"do", "verb"},
		{"dog", "puppy"},
		{"doge", "coin"},
		{"horse", "stallion"},
	}
	for _, e := range entries {
		if err := tr.TryUpdate([]byte(e.k), []byte(e.v)); err != nil {
			t.Fatal(err)
		}
	}
	if got := tr.Get([]byte("dog")); string(got) != "puppy" {
		t.Fatalf("dog: got %q", got)
	}
	if got := tr.Get([]byte("do")); string(got) != "verb" {
		t.Fatalf("do: got %q", got)
	}
	if got := tr.Get([]byte("cat")); len(got) != 0 {
		t.Fatalf("cat: expected absent, got %q", got)
	}
	if tr.Size() != 4 {
		t.Fatalf("size: want 4, got %d", tr.Size())
	}

	rootA := tr.Root()

	if err := tr.TryUpdate([]byte("dog"), nil); err != nil {
		t.Fatal(err)
	}
	if got := tr.Get([]byte("dog")); len(got) != 0 {
		t.Fatalf("dog after delete: got %q", got)
	}
	if got := tr.Get([]byte("doge")); string(got) != "coin" {
		t.Fatalf("doge: got %q", got)
	}
	if tr.Size() != 3 {
		t.Fatalf("size after delete: want 3, got %d", tr.Size())
	}
	if tr.Root() == rootA {
		t.Fatal("root hash should change after a mutating delete")
	}
}

func TestEmptyKey(t *testing.T) {
	tr := NewEmpty(newTestDatabase())
	if err := tr.TryUpdate([]byte(""), []byte("empty-key")); err != nil {
		t.Fatal(err)
	}
	if got := tr.Get([]byte("")); string(got) != "empty-key" {
		t.Fatalf("got %q", got)
	}
	if tr.Root() == (common.Hash{}) {
		t.Fatal("root should be non-empty")
	}
}

func TestDeleteRestoresEmpty(t *testing.T) {
	tr := NewEmpty(newTestDatabase())
	keys := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for _, k := range keys {
		if err := tr.TryUpdate([]byte(k), []byte("v-"+k)); err != nil {
			t.Fatal(err)
		}
	}
	for _, k := range keys {
		if err := tr.TryUpdate([]byte(k), nil); err != nil {
			t.Fatal(err)
		}
	}
	if tr.Root() != (common.Hash{}) {
		t.Fatalf("expected empty root after deleting everything, got %x", tr.Root())
	}
}

// TestRootCanonicity checks that insertion order doesn't affect the final
// root hash.
func TestRootCanonicity(t *testing.T) {
	pairs := map[string]string{
		"do": "verb", "dog": "puppy", "doge": "coin", "horse": "stallion",
		"a": "1", "ab": "2", "abc": "3", "abd": "4",
	}
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}

	trA := NewEmpty(newTestDatabase())
	for _, k := range keys {
		if err := trA.TryUpdate([]byte(k), []byte(pairs[k])); err != nil {
			t.Fatal(err)
		}
	}

	rnd := rand.New(rand.NewSource(1))
	shuffled := append([]string(nil), keys...)
	rnd.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	trB := NewEmpty(newTestDatabase())
	for _, k := range shuffled {
		if err := trB.TryUpdate([]byte(k), []byte(pairs[k])); err != nil {
			t.Fatal(err)
		}
	}

	if trA.Root() != trB.Root() {
		t.Fatalf("root hash depends on insertion order: %x != %x", trA.Root(), trB.Root())
	}
}

// TestTrieEqualsMap inserts and deletes a random sequence of keys and checks
// the trie's observable map against a plain Go map after every step.
func TestTrieEqualsMap(t *testing.T) {
	tr := NewEmpty(newTestDatabase())
	ref := make(map[string]string)

	rnd := rand.New(rand.NewSource(42))
	keyspace := []string{"aa", "ab", "ac", "b", "ba", "bb", "c", "cc", "cccc", "d"}

	for i := 0; i < 60; i++ {
		k := keyspace[rnd.Intn(len(keyspace))]
		if rnd.Intn(4) == 0 {
			delete(ref, k)
			if err := tr.TryUpdate([]byte(k), nil); err != nil {
				t.Fatal(err)
			}
		} else {
			v := []byte("v" + strconv.Itoa(i))
			ref[k] = string(v)
			if err := tr.TryUpdate([]byte(k), v); err != nil {
				t.Fatal(err)
			}
		}

		got := tr.ToMap(false)
		if len(got) != len(ref) {
			t.Fatalf("step %d: size mismatch, trie=%d map=%d", i, len(got), len(ref))
		}
		for k, v := range ref {
			if string(got[k]) != v {
				t.Fatalf("step %d: key %q: trie=%q want=%q", i, k, got[k], v)
			}
		}
	}
}

func TestIteratorAgreesWithToMap(t *testing.T) {
	tr := NewEmpty(newTestDatabase())
	for _, k := range []string{"do", "dog", "doge", "horse", "cat", "cats", ""} {
		if err := tr.TryUpdate([]byte(k), []byte("v-"+k)); err != nil {
			t.Fatal(err)
		}
	}

	want := tr.ToMap(false)
	got := make(map[string][]byte)
	it := NewIterator(tr)
	for it.Next() {
		got[string(it.Key)] = append([]byte(nil), it.Value...)
	}
	if it.Err != nil {
		t.Fatal(it.Err)
	}
	if len(got) != len(want) {
		t.Fatalf("iterator produced %d pairs, to_map produced %d", len(got), len(want))
	}
	for k, v := range want {
		gv, ok := got[k]
		if !ok || !bytes.Equal(gv, v) {
			t.Fatalf("key %q: iterator=%q to_map=%q", k, gv, v)
		}
	}
}
