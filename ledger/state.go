package ledger

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/jaiminpan/mt-trie/common"
	"github.com/jaiminpan/mt-trie/trie"
)

// State wraps a single Trie keyed by 20-byte address, storing each
// account's §6.5 [kind, balance, extra] record as the trie value.
type State struct {
	t *trie.Trie
}

// NewState opens the account trie rooted at root against db.
func NewState(db *trie.Database, root common.Hash) (*State, error) {
	t, err := trie.New(trie.TrieID(root), db)
	if err != nil {
		return nil, errors.Wrap(err, "opening state trie")
	}
	return &State{t: t}, nil
}

// GetAccount returns the account at addr, or an empty KindPlain account with
// zero balance if none exists yet.
func (s *State) GetAccount(addr common.Address) (*Account, error) {
	enc, err := s.t.TryGet(addr.Bytes())
	if err != nil {
		return nil, err
	}
	if len(enc) == 0 {
		return &Account{Kind: KindPlain, Balance: new(big.Int)}, nil
	}
	return DecodeAccount(enc)
}

// PutAccount writes acc at addr.
func (s *State) PutAccount(addr common.Address, acc *Account) error {
	enc, err := acc.EncodeRLP()
	if err != nil {
		return err
	}
	return s.t.TryUpdate(addr.Bytes(), enc)
}

// DeleteAccount removes addr's account record entirely.
func (s *State) DeleteAccount(addr common.Address) error {
	return s.t.Delete(addr.Bytes())
}

// Root returns the account trie's current root hash, i.e. the block
// header's state_root (§6.5.1).
func (s *State) Root() common.Hash {
	return s.t.Root()
}

// AddressFromPublicKey derives the 20-byte account address from an
// uncompressed secp256k1 public key the way the test fixtures do: the
// low-order 20 bytes of the Keccak-256 hash of the 64-byte (X||Y)
// uncompressed point, omitting the leading 0x04 prefix.
func AddressFromPublicKey(pub *secp256k1.PublicKey) common.Address {
	raw := pub.SerializeUncompressed()[1:] // drop the 0x04 prefix
	digest := sha3.NewLegacyKeccak256()
	digest.Write(raw)
	sum := digest.Sum(nil)
	return common.BytesToAddress(sum[len(sum)-common.AddressLength:])
}
