package trie

import (
	"fmt"
	"io"

	"github.com/jaiminpan/mt-trie/common"
	"github.com/jaiminpan/mt-trie/rlp"
)

// decodeNode parses the RLP encoding of a single trie node loaded from the
// store under hash. Unlike a production-grade MPT library this trie never
// inlines small nodes (§4.5 Non-goals), so a node's RLP-encoded children are
// always either the empty string or a 32-byte hash reference — never a
// nested list.
func decodeNode(hash []byte, buf []byte) (node, error) {
	if len(buf) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	elems, _, err := rlp.SplitList(buf)
	if err != nil {
		return nil, fmt.Errorf("trie node decode: %v", err)
	}
	switch c, _ := rlp.CountValues(elems); c {
	case 2:
		n, err := decodeShort(hash, elems)
		return n, wrapError(err, "short")
	case 17:
		n, err := decodeFull(hash, elems)
		return n, wrapError(err, "full")
	default:
		return nil, &TypeMismatchError{Got: c, Want: "2 (leaf/extension) or 17 (branch)"}
	}
}

func decodeShort(hash, elems []byte) (node, error) {
	kbuf, rest, err := rlp.SplitString(elems)
	if err != nil {
		return nil, err
	}
	key, err := compactToHex(kbuf)
	if err != nil {
		return nil, err
	}
	flag := nodeFlag{hash: hash}
	if hasTerm(key) {
		val, _, err := rlp.SplitString(rest)
		if err != nil {
			return nil, fmt.Errorf("invalid value node: %v", err)
		}
		return &shortNode{key, valueNode(val), flag}, nil
	}
	r, _, err := decodeRef(rest)
	if err != nil {
		return nil, wrapError(err, "val")
	}
	return &shortNode{key, r, flag}, nil
}

func decodeFull(hash, elems []byte) (*fullNode, error) {
	n := &fullNode{flags: nodeFlag{hash: hash}}
	for i := 0; i < 16; i++ {
		cld, rest, err := decodeRef(elems)
		if err != nil {
			return n, wrapError(err, fmt.Sprintf("[%d]", i))
		}
		n.Children[i], elems = cld, rest
	}
	val, _, err := rlp.SplitString(elems)
	if err != nil {
		return n, err
	}
	if len(val) > 0 {
		n.Children[16] = valueNode(val)
	}
	return n, nil
}

const hashLen = common.HashLength

// decodeRef decodes a single child slot: the empty string (no child), or a
// 32-byte hash reference. Any other shape - in particular an embedded list -
// is rejected, since this trie has no node-inlining to account for.
func decodeRef(buf []byte) (node, []byte, error) {
	kind, val, rest, err := rlp.Split(buf)
	if err != nil {
		return nil, buf, err
	}
	switch {
	case kind == rlp.List:
		return nil, nil, fmt.Errorf("unexpected embedded node (this trie never inlines)")
	case kind == rlp.String && len(val) == 0:
		return nil, rest, nil
	case kind == rlp.String && len(val) == hashLen:
		return hashNode(val), rest, nil
	default:
		return nil, nil, fmt.Errorf("invalid RLP string size %d (want 0 or %d)", len(val), hashLen)
	}
}

type decodeError struct {
	what error
	path []string
}

func wrapError(err error, ctx string) error {
	if err == nil {
		return nil
	}
	if de, ok := err.(*decodeError); ok {
		de.path = append(de.path, ctx)
		return de
	}
	return &decodeError{err, []string{ctx}}
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("%v (decode path: %v)", e.what, e.path)
}

func (e *decodeError) Unwrap() error { return e.what }
