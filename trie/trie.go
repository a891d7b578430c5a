// Package trie implements the hexary, path-compressed Merkle-Patricia trie
// described in §3-4: get/update/delete/size/iterate over opaque byte keys,
// backed by a content-addressed node store and RLP-encoded nodes. Every
// mutating call persists its new nodes before returning - there is no dirty
// cache and no separate commit step.
package trie

import (
	"bytes"
	"fmt"

	"github.com/jaiminpan/mt-trie/common"
)

// Trie is a handle onto one Merkle-Patricia trie. A handle is cheap to copy
// (it's just a root hash and a pointer to the shared Database) and multiple
// handles may read the same backing store concurrently; concurrent writers
// against the same backing file are not supported (§5's Shared resources).
//
// Trie is not safe for concurrent use by multiple goroutines.
type Trie struct {
	root node // nil for an empty trie, otherwise always a hashNode between calls
	db   *Database
}

// New opens the trie rooted at id.Root against db. A zero root means "empty
// trie" and never touches the store; any other root must already be present,
// or New returns a MissingNodeError.
func New(id *ID, db *Database) (*Trie, error) {
	t := &Trie{db: db}
	if id.Root != (common.Hash{}) {
		root, err := db.node(nil, id.Root)
		if err != nil {
			return nil, err
		}
		t.root = hashNode(id.Root[:])
		_ = root // validated reachable; kept lazily-resolved as a hashNode
	}
	return t, nil
}

// NewEmpty returns a trie with no entries, backed by db.
func NewEmpty(db *Database) *Trie {
	t, _ := New(TrieID(common.Hash{}), db)
	return t
}

func (t *Trie) newFlag() nodeFlag {
	return nodeFlag{dirty: true}
}

// Get returns the value stored at key, or nil if key is absent. It panics on
// a store error; callers that need to distinguish "absent" from "store
// failure" should use TryGet.
func (t *Trie) Get(key []byte) []byte {
	v, err := t.TryGet(key)
	if err != nil {
		panic(err)
	}
	return v
}

// TryGet returns the value stored at key, or nil if key is absent.
func (t *Trie) TryGet(key []byte) ([]byte, error) {
	value, _, _, err := t.tryGet(t.root, keybytesToHex(key), 0)
	return value, err
}

func (t *Trie) tryGet(n node, key []byte, pos int) (value []byte, newnode node, didResolve bool, err error) {
	switch n := n.(type) {
	case nil:
		return nil, nil, false, nil
	case valueNode:
		return n, n, false, nil
	case *shortNode:
		if len(key)-pos < len(n.Key) || !bytes.Equal(n.Key, key[pos:pos+len(n.Key)]) {
			return nil, n, false, nil
		}
		value, newnode, didResolve, err = t.tryGet(n.Val, key, pos+len(n.Key))
		if err == nil && didResolve {
			n = n.copy()
			n.Val = newnode
		}
		return value, n, didResolve, err
	case *fullNode:
		value, newnode, didResolve, err = t.tryGet(n.Children[key[pos]], key, pos+1)
		if err == nil && didResolve {
			n = n.copy()
			n.Children[key[pos]] = newnode
		}
		return value, n, didResolve, err
	case hashNode:
		child, err := t.resolve(n, key[:pos])
		if err != nil {
			return nil, n, true, err
		}
		value, newnode, _, err := t.tryGet(child, key, pos)
		return value, newnode, true, err
	default:
		panic(fmt.Sprintf("%T: invalid node: %v", n, n))
	}
}

func (t *Trie) resolve(n hashNode, prefix []byte) (node, error) {
	return t.db.node(prefix, common.BytesToHash(n))
}

// Update sets key to value, or deletes key if value is empty (§6.2). It
// persists every node touched by the change before returning.
func (t *Trie) Update(key, value []byte) error {
	return t.TryUpdate(key, value)
}

// TryUpdate is the error-returning form of Update.
func (t *Trie) TryUpdate(key, value []byte) error {
	k := keybytesToHex(key)
	var (
		root node
		err  error
	)
	if len(value) != 0 {
		_, root, err = t.insert(t.root, nil, k, valueNode(value))
	} else {
		_, root, err = t.delete(t.root, nil, k)
	}
	if err != nil {
		return err
	}
	return t.flush(root)
}

// Delete removes key from the trie, a no-op if key is absent.
func (t *Trie) Delete(key []byte) error {
	_, root, err := t.delete(t.root, nil, keybytesToHex(key))
	if err != nil {
		return err
	}
	return t.flush(root)
}

// flush hashes and persists root (and every node it touches), replacing
// t.root with the collapsed, fully-stored result. A failed flush leaves
// t.root unchanged (§7's "failed update leaves root unchanged").
func (t *Trie) flush(root node) error {
	h := newHasher(t.db.store)
	persisted, err := h.persist(root)
	if err != nil {
		return err
	}
	t.root = persisted
	return nil
}

func (t *Trie) insert(n node, prefix, key []byte, value node) (bool, node, error) {
	if len(key) == 0 {
		if v, ok := n.(valueNode); ok {
			return !bytes.Equal(v, value.(valueNode)), value, nil
		}
		return true, value, nil
	}
	switch n := n.(type) {
	case *shortNode:
		matchlen := prefixLen(key, n.Key)
		if matchlen == len(n.Key) {
			dirty, nn, err := t.insert(n.Val, prefixConcat(prefix, key[:matchlen]...), key[matchlen:], value)
			if !dirty || err != nil {
				return false, n, err
			}
			return true, &shortNode{n.Key, nn, t.newFlag()}, nil
		}
		branch := &fullNode{flags: t.newFlag()}
		var err error
		_, branch.Children[n.Key[matchlen]], err = t.insert(nil, prefixConcat(prefix, n.Key[:matchlen+1]...), n.Key[matchlen+1:], n.Val)
		if err != nil {
			return false, nil, err
		}
		_, branch.Children[key[matchlen]], err = t.insert(nil, prefixConcat(prefix, key[:matchlen+1]...), key[matchlen+1:], value)
		if err != nil {
			return false, nil, err
		}
		if matchlen == 0 {
			return true, branch, nil
		}
		return true, &shortNode{key[:matchlen], branch, t.newFlag()}, nil

	case *fullNode:
		dirty, nn, err := t.insert(n.Children[key[0]], prefixConcat(prefix, key[0]), key[1:], value)
		if !dirty || err != nil {
			return false, n, err
		}
		n = n.copy()
		n.flags = t.newFlag()
		n.Children[key[0]] = nn
		return true, n, nil

	case nil:
		return true, &shortNode{key, value, t.newFlag()}, nil

	case hashNode:
		rn, err := t.resolve(n, prefix)
		if err != nil {
			return false, nil, err
		}
		dirty, nn, err := t.insert(rn, prefix, key, value)
		if !dirty || err != nil {
			return false, rn, err
		}
		return true, nn, nil

	default:
		panic(fmt.Sprintf("%T: invalid node: %v", n, n))
	}
}

// delete returns the new root of the trie with key removed, collapsing
// branch and extension nodes back to their minimal form as it unwinds
// (§4's canonicity invariant).
func (t *Trie) delete(n node, prefix, key []byte) (bool, node, error) {
	switch n := n.(type) {
	case *shortNode:
		matchlen := prefixLen(key, n.Key)
		if matchlen < len(n.Key) {
			return false, n, nil
		}
		if matchlen == len(key) {
			return true, nil, nil
		}
		dirty, child, err := t.delete(n.Val, prefixConcat(prefix, key[:len(n.Key)]...), key[len(n.Key):])
		if !dirty || err != nil {
			return false, n, err
		}
		switch child := child.(type) {
		case *shortNode:
			return true, &shortNode{prefixConcat(n.Key, child.Key...), child.Val, t.newFlag()}, nil
		default:
			return true, &shortNode{n.Key, child, t.newFlag()}, nil
		}

	case *fullNode:
		dirty, nn, err := t.delete(n.Children[key[0]], prefixConcat(prefix, key[0]), key[1:])
		if !dirty || err != nil {
			return false, n, err
		}
		n = n.copy()
		n.flags = t.newFlag()
		n.Children[key[0]] = nn

		if nn != nil {
			return true, n, nil
		}
		pos := -1
		for i, cld := range &n.Children {
			if cld != nil {
				if pos == -1 {
					pos = i
				} else {
					pos = -2
					break
				}
			}
		}
		if pos >= 0 {
			if pos != 16 {
				cnode, err := t.resolveIfHash(n.Children[pos], prefixConcat(prefix, byte(pos)))
				if err != nil {
					return false, nil, err
				}
				if cnode, ok := cnode.(*shortNode); ok {
					k := prefixConcat([]byte{byte(pos)}, cnode.Key...)
					return true, &shortNode{k, cnode.Val, t.newFlag()}, nil
				}
			}
			return true, &shortNode{[]byte{byte(pos)}, n.Children[pos], t.newFlag()}, nil
		}
		return true, n, nil

	case valueNode:
		return true, nil, nil

	case nil:
		return false, nil, nil

	case hashNode:
		rn, err := t.resolve(n, prefix)
		if err != nil {
			return false, nil, err
		}
		dirty, nn, err := t.delete(rn, prefix, key)
		if !dirty || err != nil {
			return false, rn, err
		}
		return true, nn, nil

	default:
		panic(fmt.Sprintf("%T: invalid node: %v (%v)", n, n, key))
	}
}

func (t *Trie) resolveIfHash(n node, prefix []byte) (node, error) {
	if hn, ok := n.(hashNode); ok {
		return t.resolve(hn, prefix)
	}
	return n, nil
}

// Root returns the trie's current root hash, the zero hash iff the trie is
// empty (the glossary's "Root hash").
func (t *Trie) Root() common.Hash {
	if t.root == nil {
		return common.Hash{}
	}
	return common.BytesToHash(t.root.(hashNode))
}

// Size returns the number of key/value pairs currently stored.
func (t *Trie) Size() int {
	return len(t.ToMap(false))
}

// ToMap returns every key/value pair in the trie. If asHex is false, keys
// are byte-aligned (the common case - every stored key came from an even
// number of nibbles); asHex returns the raw hex-nibble path string instead,
// primarily useful for debugging.
func (t *Trie) ToMap(asHex bool) map[string][]byte {
	out := make(map[string][]byte)
	t.collect(t.root, nil, asHex, out)
	return out
}

func (t *Trie) collect(n node, prefix []byte, asHex bool, out map[string][]byte) {
	switch n := n.(type) {
	case nil:
		return
	case valueNode:
		key := append([]byte(nil), prefix...)
		if !asHex {
			key = hexToKeybytes(key)
		}
		out[string(key)] = []byte(n)
	case *shortNode:
		t.collect(n.Val, prefixConcat(prefix, n.Key...), asHex, out)
	case *fullNode:
		for i, c := range n.Children {
			if i == 16 {
				t.collect(c, prefixConcat(prefix, nibbleTerminator), asHex, out)
				continue
			}
			t.collect(c, prefixConcat(prefix, byte(i)), asHex, out)
		}
	case hashNode:
		child, err := t.resolve(n, prefix)
		if err != nil {
			panic(err)
		}
		t.collect(child, prefix, asHex, out)
	}
}
