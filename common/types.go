// Package common holds small fixed-size value types shared by the rlp, trie,
// nodestore and ledger packages: content hashes and ledger addresses.
package common

import (
	"encoding/hex"
	"fmt"
)

// HashLength is the number of bytes in a node reference / content hash.
const HashLength = 32

// AddressLength is the number of bytes in a ledger account address.
const AddressLength = 20

// Hash is a 32-byte content hash, used both as a trie node reference and as
// the root hash exposed by the trie's public surface.
type Hash [HashLength]byte

// BytesToHash sets the hash to the value of b, truncating from the left if
// b is longer than HashLength and zero-padding from the left if it is
// shorter.
func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

// HexToHash sets the hash to the value of the hex string s, which may
// optionally be prefixed with "0x".
func HexToHash(s string) Hash {
	return BytesToHash(FromHex(s))
}

// Bytes returns a copy of the hash's bytes.
func (h Hash) Bytes() []byte { return h[:] }

// IsZero reports whether h is the zero hash (the empty-trie sentinel, after
// the caller substitutes the empty byte string for it at the store
// boundary).
func (h Hash) IsZero() bool { return h == Hash{} }

func (h Hash) String() string { return "0x" + hex.EncodeToString(h[:]) }

// Format implements fmt.Formatter so %x and %v print the usual hex form.
func (h Hash) Format(s fmt.State, c rune) {
	switch c {
	case 'x', 'X':
		fmt.Fprintf(s, "%"+string(c), h[:])
	default:
		fmt.Fprint(s, h.String())
	}
}

// Address is a 20-byte ledger account address.
type Address [AddressLength]byte

// BytesToAddress sets the address to the value of b, truncating from the
// left if b is longer than AddressLength and zero-padding from the left
// otherwise.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

func (a Address) Bytes() []byte { return a[:] }

func (a Address) String() string { return "0x" + hex.EncodeToString(a[:]) }

// FromHex decodes a hex string, tolerating an optional "0x"/"0X" prefix and
// an odd number of digits (padded with a leading zero, matching the
// nibble-path convention used elsewhere in this module).
func FromHex(s string) []byte {
	if len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}

// CopyBytes returns an independent copy of b.
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp
}
