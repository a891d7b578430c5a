package trie

import (
	"github.com/jaiminpan/mt-trie/nodestore"
	"github.com/jaiminpan/mt-trie/rlp"
)

// hasher turns an in-memory node graph into its RLP encoding, hashes each
// node, and persists it to the node store. Every call collapses its whole
// argument tree down to a hashNode: this trie keeps no dirty cache and does
// not inline small nodes (§4.5's node-store model), so a node is only ever
// held in memory between the moment it's built and the moment the update or
// delete that built it returns.
type hasher struct {
	store *nodestore.Store
}

func newHasher(store *nodestore.Store) *hasher {
	return &hasher{store: store}
}

// persist recursively hashes and stores n, returning the hashNode reference
// that should replace n in its parent. Children already represented as a
// hashNode (untouched by the current operation) are returned unchanged
// without a redundant store round-trip; valueNode and nil pass through
// as-is, since a value or an absent child is encoded directly rather than
// referenced.
func (h *hasher) persist(n node) (node, error) {
	switch n := n.(type) {
	case nil:
		return nil, nil
	case hashNode:
		return n, nil
	case valueNode:
		return n, nil
	case *shortNode:
		child, err := h.persist(n.Val)
		if err != nil {
			return nil, err
		}
		enc, err := encodeShortNode(n.Key, child)
		if err != nil {
			return nil, err
		}
		hash, err := h.store.Put(enc)
		if err != nil {
			return nil, err
		}
		nodesPersistedTotal.Inc()
		return hashNode(hash[:]), nil
	case *fullNode:
		var refs [17]node
		for i, c := range n.Children {
			r, err := h.persist(c)
			if err != nil {
				return nil, err
			}
			refs[i] = r
		}
		enc, err := encodeFullNode(refs)
		if err != nil {
			return nil, err
		}
		hash, err := h.store.Put(enc)
		if err != nil {
			return nil, err
		}
		nodesPersistedTotal.Inc()
		return hashNode(hash[:]), nil
	default:
		panic("trie: persist of invalid node type")
	}
}

// encodeShortNode renders a leaf/extension node's RLP encoding: a 2-element
// list of the compact-encoded path and the child reference (§4.5.2/4.5.3).
func encodeShortNode(key []byte, child node) ([]byte, error) {
	keyItem := rlp.EncodeBytes(hexToCompact(key))
	valItem, err := encodeChildRef(child)
	if err != nil {
		return nil, err
	}
	return rlp.EncodeList(2, append(keyItem, valItem...)), nil
}

// encodeFullNode renders a branch node's RLP encoding: a 17-element list of
// child references followed by the value at this exact prefix (§4.5.4).
func encodeFullNode(children [17]node) ([]byte, error) {
	var buf []byte
	for _, c := range children {
		item, err := encodeChildRef(c)
		if err != nil {
			return nil, err
		}
		buf = append(buf, item...)
	}
	return rlp.EncodeList(17, buf), nil
}

// encodeChildRef renders a single child slot: the empty string for an
// absent child, the value bytes for a leaf/branch value, or the 32-byte
// hash for a reference to another stored node.
func encodeChildRef(n node) ([]byte, error) {
	switch n := n.(type) {
	case nil:
		return rlp.EncodeBytes(nil), nil
	case valueNode:
		return rlp.EncodeBytes(n), nil
	case hashNode:
		return rlp.EncodeBytes(n), nil
	default:
		panic("trie: encodeChildRef of unpersisted node")
	}
}
