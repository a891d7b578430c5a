package trie

import "github.com/jaiminpan/mt-trie/common"

// Iterator walks a trie depth-first in nibble-path order: this is the order
// branch children are indexed (0..15) with the branch's own value slot (16)
// visited ahead of its numbered children, not a sorted-byte-key range query
// (§4.5.5's ambient addition) - two keys that differ only after a long
// shared prefix are visited in the order their first differing nibble sorts,
// which for the byte-aligned keys it yields coincides with lexicographic byte
// order.
type Iterator struct {
	trie  *Trie
	stack []iteratorState
	Key   []byte // current key in KEYBYTES form
	Value []byte
	Err   error
}

type iteratorState struct {
	node       node
	parent     common.Hash
	index      int // -1 means "not yet descended into this node"
	pathPrefix []byte
}

// NewIterator returns an iterator positioned before the first entry. Call
// Next to advance it.
func NewIterator(t *Trie) *Iterator {
	it := &Iterator{trie: t}
	if t.root != nil {
		it.stack = []iteratorState{{node: t.root, index: -1}}
	}
	return it
}

// Next advances the iterator to the next key/value pair in path order,
// returning false when exhausted (or on error, inspect Err).
func (it *Iterator) Next() bool {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		switch n := top.node.(type) {
		case hashNode:
			resolved, err := it.trie.resolve(n, top.pathPrefix)
			if err != nil {
				it.Err = err
				return false
			}
			top.node = resolved
			continue
		case valueNode:
			it.stack = it.stack[:len(it.stack)-1]
			it.Key = hexToKeybytes(top.pathPrefix)
			it.Value = []byte(n)
			return true
		case *shortNode:
			it.stack = it.stack[:len(it.stack)-1]
			it.stack = append(it.stack, iteratorState{
				node:       n.Val,
				index:      -1,
				pathPrefix: prefixConcat(top.pathPrefix, n.Key...),
			})
			continue
		case *fullNode:
			top.index++
			if top.index >= 17 {
				it.stack = it.stack[:len(it.stack)-1]
				continue
			}
			// Step 0 visits the value slot (16); steps 1..16 visit children 0..15.
			slot := 16
			if top.index > 0 {
				slot = top.index - 1
			}
			child := n.Children[slot]
			if child == nil {
				continue
			}
			childPrefix := top.pathPrefix
			if slot == 16 {
				childPrefix = prefixConcat(childPrefix, nibbleTerminator)
			} else {
				childPrefix = prefixConcat(childPrefix, byte(slot))
			}
			it.stack = append(it.stack, iteratorState{node: child, index: -1, pathPrefix: childPrefix})
			continue
		case nil:
			it.stack = it.stack[:len(it.stack)-1]
			continue
		default:
			it.Err = &TypeMismatchError{Want: "trie node"}
			return false
		}
	}
	return false
}
