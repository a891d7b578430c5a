// Package ledger is a thin consumer built on top of the trie and rlp
// packages: account records, a state wrapper, transactions, and block
// headers. None of it is part of the core authenticated key/value store -
// consensus, fees, and signature verification are explicitly out of scope -
// it exists to give the trie and RLP codec a realistic external caller, the
// way the reference prototype's blocks.py/transactions.py sit beside
// trie.py/rlp.py.
package ledger

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/jaiminpan/mt-trie/common"
	"github.com/jaiminpan/mt-trie/rlp"
)

// AccountKind distinguishes a plain value-holding account from a contract
// account whose Extra field is a sub-trie root (§6.5).
type AccountKind uint64

const (
	KindPlain    AccountKind = 0
	KindContract AccountKind = 1
)

// Account is the RLP record stored at a 20-byte address key: [kind, balance,
// extra]. Extra is the contract storage trie's root hash for a contract
// account, or a monotonically increasing nonce otherwise.
type Account struct {
	Kind    AccountKind
	Balance *big.Int
	Extra   []byte
}

// EncodeRLP renders the account's [kind, balance, extra] encoding.
func (a *Account) EncodeRLP() ([]byte, error) {
	if a.Balance == nil {
		return nil, errors.New("ledger: account has nil balance")
	}
	items := []rlp.Item{
		rlp.Item(encodeUint(uint64(a.Kind))),
		rlp.Item(a.Balance.Bytes()),
		rlp.Item(append([]byte(nil), a.Extra...)),
	}
	return rlp.Encode(items)
}

// DecodeAccount parses an account's [kind, balance, extra] encoding.
func DecodeAccount(buf []byte) (*Account, error) {
	item, err := rlp.Decode(buf)
	if err != nil {
		return nil, errors.Wrap(err, "decoding account")
	}
	list, ok := item.([]rlp.Item)
	if !ok || len(list) != 3 {
		return nil, errors.New("ledger: account record must be a 3-element list")
	}
	kindBytes, ok := list[0].([]byte)
	if !ok {
		return nil, errors.New("ledger: account kind must be a bytestring")
	}
	balBytes, ok := list[1].([]byte)
	if !ok {
		return nil, errors.New("ledger: account balance must be a bytestring")
	}
	extra, ok := list[2].([]byte)
	if !ok {
		return nil, errors.New("ledger: account extra must be a bytestring")
	}
	return &Account{
		Kind:    AccountKind(decodeUint(kindBytes)),
		Balance: new(big.Int).SetBytes(balBytes),
		Extra:   extra,
	}, nil
}

// IsContract reports whether the account is a contract account.
func (a *Account) IsContract() bool { return a.Kind == KindContract }

// StorageRoot returns the account's storage sub-trie root. Valid only for
// contract accounts.
func (a *Account) StorageRoot() common.Hash {
	return common.BytesToHash(a.Extra)
}

func encodeUint(n uint64) []byte {
	return new(big.Int).SetUint64(n).Bytes()
}

func decodeUint(b []byte) uint64 {
	return new(big.Int).SetBytes(b).Uint64()
}
