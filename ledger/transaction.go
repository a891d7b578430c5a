package ledger

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/jaiminpan/mt-trie/common"
	"github.com/jaiminpan/mt-trie/rlp"
)

// Transaction is the §6.5.1 transaction record: [nonce, to, value, data,
// signature]. Verifying or applying it against consensus rules (nonce
// sequencing, balance checks, gas accounting) is explicitly out of scope;
// Validate only checks field shapes.
type Transaction struct {
	Nonce     uint64
	To        common.Address
	Value     *big.Int
	Data      []byte
	Signature []byte // 65-byte recoverable ECDSA signature over sigHash()
}

// EncodeRLP renders the transaction's 5-element encoding.
func (tx *Transaction) EncodeRLP() ([]byte, error) {
	if tx.Value == nil {
		return nil, errors.New("ledger: transaction has nil value")
	}
	items := []rlp.Item{
		rlp.Item(encodeUint(tx.Nonce)),
		rlp.Item(append([]byte(nil), tx.To.Bytes()...)),
		rlp.Item(tx.Value.Bytes()),
		rlp.Item(append([]byte(nil), tx.Data...)),
		rlp.Item(append([]byte(nil), tx.Signature...)),
	}
	return rlp.Encode(items)
}

// DecodeTransaction parses a transaction's 5-element encoding.
func DecodeTransaction(buf []byte) (*Transaction, error) {
	item, err := rlp.Decode(buf)
	if err != nil {
		return nil, errors.Wrap(err, "decoding transaction")
	}
	list, ok := item.([]rlp.Item)
	if !ok || len(list) != 5 {
		return nil, errors.New("ledger: transaction record must be a 5-element list")
	}
	nonceBytes, ok1 := list[0].([]byte)
	toBytes, ok2 := list[1].([]byte)
	valBytes, ok3 := list[2].([]byte)
	data, ok4 := list[3].([]byte)
	sig, ok5 := list[4].([]byte)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return nil, errors.New("ledger: transaction fields must be bytestrings")
	}
	return &Transaction{
		Nonce:     decodeUint(nonceBytes),
		To:        common.BytesToAddress(toBytes),
		Value:     new(big.Int).SetBytes(valBytes),
		Data:      data,
		Signature: sig,
	}, nil
}

// Validate checks that the transaction's fields are shaped correctly: To is
// a 20-byte address, Value is non-negative, and Signature (if present) is
// the expected 65 bytes. It does not check the signature recovers to any
// particular signer, nor that Nonce or Value are consistent with any
// account state.
func (tx *Transaction) Validate() error {
	if tx.Value == nil || tx.Value.Sign() < 0 {
		return errors.New("ledger: transaction value must be non-negative")
	}
	if len(tx.Signature) != 0 && len(tx.Signature) != 65 {
		return errors.Errorf("ledger: signature must be 65 bytes, got %d", len(tx.Signature))
	}
	return nil
}

// sigHash is the digest a signature is computed over: the Keccak-256 hash
// of the RLP encoding of [nonce, to, value, data] (signature excluded).
func (tx *Transaction) sigHash() ([]byte, error) {
	unsigned := &Transaction{Nonce: tx.Nonce, To: tx.To, Value: tx.Value, Data: tx.Data}
	enc, err := unsigned.EncodeRLP()
	if err != nil {
		return nil, err
	}
	digest := sha3.NewLegacyKeccak256()
	digest.Write(enc)
	return digest.Sum(nil), nil
}

// Sign fills in tx.Signature over sigHash() using priv, for use by test
// fixtures that need a structurally valid, recoverable signature.
func (tx *Transaction) Sign(priv *secp256k1.PrivateKey) error {
	hash, err := tx.sigHash()
	if err != nil {
		return err
	}
	sig := ecdsa.SignCompact(priv, hash, false)
	tx.Signature = sig
	return nil
}

// RecoverSender recovers the sending address from tx.Signature, for use by
// test fixtures exercising the address-derivation path end-to-end.
func (tx *Transaction) RecoverSender() (common.Address, error) {
	hash, err := tx.sigHash()
	if err != nil {
		return common.Address{}, err
	}
	pub, _, err := ecdsa.RecoverCompact(tx.Signature, hash)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "recovering sender")
	}
	return AddressFromPublicKey(pub), nil
}
