package ledger

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaiminpan/mt-trie/common"
	"github.com/jaiminpan/mt-trie/nodestore"
	"github.com/jaiminpan/mt-trie/nodestore/memorydb"
	"github.com/jaiminpan/mt-trie/trie"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	db := trie.NewDatabase(nodestore.NewStore(memorydb.New()))
	s, err := NewState(db, common.Hash{})
	require.NoError(t, err)
	return s
}

func TestStateGetAccountAbsentIsEmpty(t *testing.T) {
	s := newTestState(t)
	var addr common.Address
	copy(addr[:], []byte("addr"))

	acc, err := s.GetAccount(addr)
	require.NoError(t, err)
	assert.Equal(t, KindPlain, acc.Kind)
	assert.Equal(t, 0, acc.Balance.Sign())
}

func TestStatePutGetAccount(t *testing.T) {
	s := newTestState(t)
	var addr common.Address
	copy(addr[:], []byte("addr"))

	acc := &Account{Kind: KindPlain, Balance: big.NewInt(42)}
	require.NoError(t, s.PutAccount(addr, acc))

	got, err := s.GetAccount(addr)
	require.NoError(t, err)
	assert.Equal(t, 0, big.NewInt(42).Cmp(got.Balance))
	assert.NotEqual(t, common.Hash{}, s.Root())
}

func TestStateDeleteAccount(t *testing.T) {
	s := newTestState(t)
	var addr common.Address
	copy(addr[:], []byte("addr"))

	require.NoError(t, s.PutAccount(addr, &Account{Kind: KindPlain, Balance: big.NewInt(1)}))
	require.NoError(t, s.DeleteAccount(addr))

	acc, err := s.GetAccount(addr)
	require.NoError(t, err)
	assert.Equal(t, 0, acc.Balance.Sign())
	assert.Equal(t, common.Hash{}, s.Root())
}

func TestAddressFromPublicKeyIsDeterministic(t *testing.T) {
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	pub := priv.PubKey()

	a := AddressFromPublicKey(pub)
	b := AddressFromPublicKey(pub)
	assert.Equal(t, a, b)
	assert.NotEqual(t, common.Address{}, a)
}
