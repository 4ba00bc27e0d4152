package accountgen

import (
	"crypto/ed25519"
	"strings"
	"testing"

	"github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvrvsimi/solana-accountgen/pkg/solana"
)

func TestAccountMap_SetAndGet(t *testing.T) {
	m := NewAccountMap()
	assert.True(t, m.IsEmpty())

	pubkey := generateKey(t)

	_, ok := m.GetAccount(pubkey)
	assert.False(t, ok)

	m.SetAccount(pubkey, solana.Account{Lamports: 1})
	account, ok := m.GetAccount(pubkey)
	require.True(t, ok)
	assert.EqualValues(t, 1, account.Lamports)

	// Last write wins, and the entry count stays at one.
	m.SetAccount(pubkey, solana.Account{Lamports: 2})
	account, _ = m.GetAccount(pubkey)
	assert.EqualValues(t, 2, account.Lamports)
	assert.Equal(t, 1, m.Len())
}

func TestAccountMap_AddWithBuilder(t *testing.T) {
	m := NewAccountMap()
	pubkey := generateKey(t)

	require.NoError(t, m.AddWithBuilder(pubkey, NewAccountBuilder().WithBalance(100)))
	account, ok := m.GetAccount(pubkey)
	require.True(t, ok)
	assert.EqualValues(t, 100, account.Lamports)

	// A failing builder leaves the map untouched.
	other := generateKey(t)
	err := m.AddWithBuilder(other, NewAccountBuilder().WithData(unencodable{}))
	assert.Error(t, err)
	_, ok = m.GetAccount(other)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestAccountMap_IterateOrder(t *testing.T) {
	m := NewAccountMap()

	keys := make([]ed25519.PublicKey, 10)
	for i := range keys {
		keys[i] = generateKey(t)
		m.SetAccount(keys[i], solana.Account{Lamports: uint64(i)})
	}

	// Overwriting must not change an entry's position.
	m.SetAccount(keys[3], solana.Account{Lamports: 333})

	for run := 0; run < 2; run++ {
		var visited []ed25519.PublicKey
		m.Iterate(func(pubkey ed25519.PublicKey, account solana.Account) bool {
			visited = append(visited, pubkey)
			return true
		})

		require.Len(t, visited, len(keys))
		for i, k := range keys {
			assert.Equal(t, k, visited[i])
		}
	}

	// Early termination.
	var count int
	m.Iterate(func(ed25519.PublicKey, solana.Account) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}

func TestAccountMap_IterateReflectsCurrentContents(t *testing.T) {
	m := NewAccountMap()
	pubkey := generateKey(t)
	m.SetAccount(pubkey, solana.Account{Lamports: 1})

	added := generateKey(t)
	m.SetAccount(added, solana.Account{Lamports: 2})

	var total int
	m.Iterate(func(ed25519.PublicKey, solana.Account) bool {
		total++
		return true
	})
	assert.Equal(t, 2, total)
}

func TestAccountMap_Merge(t *testing.T) {
	shared := generateKey(t)

	a := NewAccountMap()
	a.SetAccount(shared, solana.Account{Lamports: 1})
	a.SetAccount(generateKey(t), solana.Account{Lamports: 2})

	b := NewAccountMap()
	b.SetAccount(shared, solana.Account{Lamports: 99})
	b.SetAccount(generateKey(t), solana.Account{Lamports: 3})

	a.Merge(b)

	assert.Equal(t, 3, a.Len())
	account, _ := a.GetAccount(shared)
	assert.EqualValues(t, 99, account.Lamports)
}

func TestAccountMap_Filter(t *testing.T) {
	m := NewAccountMap()
	for i := 0; i < 5; i++ {
		m.SetAccount(generateKey(t), solana.Account{Lamports: uint64(i * 100)})
	}

	filtered := m.Filter(func(pubkey ed25519.PublicKey, account solana.Account) bool {
		return account.Lamports > 150
	})

	assert.Equal(t, 3, filtered.Len())
	assert.Equal(t, 5, m.Len())
}

func TestFromPairs(t *testing.T) {
	keys := []ed25519.PublicKey{generateKey(t), generateKey(t), generateKey(t)}

	m := FromPairs([]Pair{
		{Pubkey: keys[0], Account: solana.Account{Lamports: 1}},
		{Pubkey: keys[1], Account: solana.Account{Lamports: 2}},
		{Pubkey: keys[0], Account: solana.Account{Lamports: 9}},
		{Pubkey: keys[2], Account: solana.Account{Lamports: 3}},
	})

	assert.Equal(t, 3, m.Len())

	// The repeated pubkey keeps its position and takes the later value.
	var lamports []uint64
	m.Iterate(func(_ ed25519.PublicKey, account solana.Account) bool {
		lamports = append(lamports, account.Lamports)
		return true
	})
	assert.Equal(t, []uint64{9, 2, 3}, lamports)
}

func TestCreateAccounts(t *testing.T) {
	entries := []MapEntry{
		{Pubkey: generateKey(t), Builder: NewAccountBuilder().WithBalance(1)},
		{Pubkey: generateKey(t), Builder: NewAccountBuilder().WithBalance(2)},
	}

	m, err := CreateAccounts(entries)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
}

func TestCreateAccounts_AbortsOnFirstFailure(t *testing.T) {
	failing := generateKey(t)
	entries := []MapEntry{
		{Pubkey: generateKey(t), Builder: NewAccountBuilder().WithBalance(1)},
		{Pubkey: failing, Builder: NewAccountBuilder().WithData(unencodable{})},
		{Pubkey: generateKey(t), Builder: NewAccountBuilder().WithBalance(3)},
	}

	m, err := CreateAccounts(entries)
	require.Error(t, err)
	assert.Nil(t, m)
	assert.True(t, strings.Contains(err.Error(), base58.Encode(failing)))
}
