package ledger

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/jaiminpan/mt-trie/common"
	"github.com/jaiminpan/mt-trie/nodestore"
	"github.com/jaiminpan/mt-trie/rlp"
	"github.com/jaiminpan/mt-trie/trie"
)

// Header is a block header carrying the two root hashes that tie a block to
// the tries it was built over (§6.5.1): StateRoot is the account trie's root
// after applying the block's transactions, TransactionsRoot is the root of a
// throwaway trie built over the block's transactions, indexed by their
// position - the canonical "why would anyone build more than one trie
// instance" case.
type Header struct {
	Number           uint64
	ParentHash       common.Hash
	StateRoot        common.Hash
	TransactionsRoot common.Hash
	Timestamp        uint64
}

// EncodeRLP renders the header's encoding.
func (h *Header) EncodeRLP() ([]byte, error) {
	items := []rlp.Item{
		rlp.Item(encodeUint(h.Number)),
		rlp.Item(append([]byte(nil), h.ParentHash.Bytes()...)),
		rlp.Item(append([]byte(nil), h.StateRoot.Bytes()...)),
		rlp.Item(append([]byte(nil), h.TransactionsRoot.Bytes()...)),
		rlp.Item(encodeUint(h.Timestamp)),
	}
	return rlp.Encode(items)
}

// DecodeHeader parses a header's encoding.
func DecodeHeader(buf []byte) (*Header, error) {
	item, err := rlp.Decode(buf)
	if err != nil {
		return nil, errors.Wrap(err, "decoding header")
	}
	list, ok := item.([]rlp.Item)
	if !ok || len(list) != 5 {
		return nil, errors.New("ledger: header record must be a 5-element list")
	}
	numberBytes, ok1 := list[0].([]byte)
	parent, ok2 := list[1].([]byte)
	stateRoot, ok3 := list[2].([]byte)
	txRoot, ok4 := list[3].([]byte)
	tsBytes, ok5 := list[4].([]byte)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return nil, errors.New("ledger: header fields must be bytestrings")
	}
	return &Header{
		Number:           decodeUint(numberBytes),
		ParentHash:       common.BytesToHash(parent),
		StateRoot:        common.BytesToHash(stateRoot),
		TransactionsRoot: common.BytesToHash(txRoot),
		Timestamp:        decodeUint(tsBytes),
	}, nil
}

// BuildTransactionsRoot builds a throwaway trie over txs, keyed by their
// big-endian position index, and returns its root. The trie is backed by an
// in-memory store since it is never referenced again once the header is
// built.
func BuildTransactionsRoot(txs []*Transaction) (common.Hash, error) {
	store := nodestore.Default.OpenMemory("ledger.transactions-root")
	db := trie.NewDatabase(store)
	t := trie.NewEmpty(db)
	for i, tx := range txs {
		enc, err := tx.EncodeRLP()
		if err != nil {
			return common.Hash{}, errors.Wrapf(err, "encoding transaction %d", i)
		}
		key := new(big.Int).SetUint64(uint64(i)).Bytes()
		if err := t.TryUpdate(key, enc); err != nil {
			return common.Hash{}, errors.Wrapf(err, "inserting transaction %d", i)
		}
	}
	return t.Root(), nil
}
