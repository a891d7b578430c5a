package ledger

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaiminpan/mt-trie/common"
)

func TestHeaderEncodeDecodeRoundTrip(t *testing.T) {
	h := &Header{
		Number:           12,
		ParentHash:       common.BytesToHash([]byte("parent")),
		StateRoot:        common.BytesToHash([]byte("state")),
		TransactionsRoot: common.BytesToHash([]byte("txroot")),
		Timestamp:        1700000000,
	}
	enc, err := h.EncodeRLP()
	require.NoError(t, err)

	got, err := DecodeHeader(enc)
	require.NoError(t, err)
	assert.Equal(t, h.Number, got.Number)
	assert.Equal(t, h.ParentHash, got.ParentHash)
	assert.Equal(t, h.StateRoot, got.StateRoot)
	assert.Equal(t, h.TransactionsRoot, got.TransactionsRoot)
	assert.Equal(t, h.Timestamp, got.Timestamp)
}

func TestBuildTransactionsRootEmpty(t *testing.T) {
	root, err := BuildTransactionsRoot(nil)
	require.NoError(t, err)
	assert.Equal(t, common.Hash{}, root)
}

func TestBuildTransactionsRootDeterministic(t *testing.T) {
	var to common.Address
	copy(to[:], []byte("recipient"))

	txs := []*Transaction{
		{Nonce: 0, To: to, Value: big.NewInt(1), Data: []byte("a")},
		{Nonce: 1, To: to, Value: big.NewInt(2), Data: []byte("b")},
	}

	rootA, err := BuildTransactionsRoot(txs)
	require.NoError(t, err)
	rootB, err := BuildTransactionsRoot(txs)
	require.NoError(t, err)
	assert.Equal(t, rootA, rootB)
	assert.NotEqual(t, common.Hash{}, rootA)
}

func TestBuildTransactionsRootOrderSensitive(t *testing.T) {
	var to common.Address
	copy(to[:], []byte("recipient"))

	a := []*Transaction{
		{Nonce: 0, To: to, Value: big.NewInt(1)},
		{Nonce: 1, To: to, Value: big.NewInt(2)},
	}
	b := []*Transaction{
		{Nonce: 1, To: to, Value: big.NewInt(2)},
		{Nonce: 0, To: to, Value: big.NewInt(1)},
	}

	rootA, err := BuildTransactionsRoot(a)
	require.NoError(t, err)
	rootB, err := BuildTransactionsRoot(b)
	require.NoError(t, err)
	// transactions are keyed by position, so swapping which tx occupies
	// which position changes the set of (key, value) pairs in the trie.
	assert.NotEqual(t, rootA, rootB)
}
