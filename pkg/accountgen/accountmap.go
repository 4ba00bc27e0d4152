package accountgen

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/dvrvsimi/solana-accountgen/pkg/solana"
)

// AccountMap is a set of accounts keyed by pubkey. Keys are unique;
// re-inserting a pubkey overwrites the previous account. Iteration walks
// entries in first-insertion order, so traversal is deterministic for a
// given insertion sequence.
//
// An AccountMap is owned by a single caller and is not safe for concurrent
// use.
type AccountMap struct {
	accounts map[string]solana.Account
	order    []string
}

// MapEntry pairs a pubkey with the builder that produces its account, for
// bulk construction.
type MapEntry struct {
	Pubkey  ed25519.PublicKey
	Builder *AccountBuilder
}

// Pair is a pubkey with a prebuilt account.
type Pair struct {
	Pubkey  ed25519.PublicKey
	Account solana.Account
}

// NewAccountMap creates an empty AccountMap.
func NewAccountMap() *AccountMap {
	return &AccountMap{
		accounts: make(map[string]solana.Account),
	}
}

// CreateAccounts builds every entry and collects the results into a new
// AccountMap. Construction aborts on the first builder failure: no map is
// returned, and the error names the entry's address.
func CreateAccounts(entries []MapEntry) (*AccountMap, error) {
	m := NewAccountMap()
	for _, entry := range entries {
		if err := m.AddWithBuilder(entry.Pubkey, entry.Builder); err != nil {
			return nil, errors.Wrapf(err, "error building account %s", base58.Encode(entry.Pubkey))
		}
	}
	return m, nil
}

// FromPairs collects prebuilt (pubkey, account) pairs into a new
// AccountMap in the order given. A repeated pubkey keeps its original
// position, with the later account winning.
func FromPairs(pairs []Pair) *AccountMap {
	m := NewAccountMap()
	for _, pair := range pairs {
		m.SetAccount(pair.Pubkey, pair.Account)
	}
	return m
}

// SetAccount inserts or overwrites the account at the given pubkey.
func (m *AccountMap) SetAccount(pubkey ed25519.PublicKey, account solana.Account) {
	key := string(pubkey)
	if _, ok := m.accounts[key]; !ok {
		m.order = append(m.order, key)
	}
	m.accounts[key] = account
}

// AddWithBuilder finalizes the builder and inserts the result. On builder
// failure the map is left unmodified.
func (m *AccountMap) AddWithBuilder(pubkey ed25519.PublicKey, builder *AccountBuilder) error {
	account, err := builder.Build()
	if err != nil {
		return err
	}

	m.SetAccount(pubkey, account)
	return nil
}

// GetAccount returns the account at the given pubkey. Absence is a normal
// outcome, reported through the second return value.
func (m *AccountMap) GetAccount(pubkey ed25519.PublicKey) (solana.Account, bool) {
	account, ok := m.accounts[string(pubkey)]
	return account, ok
}

// Iterate calls f for each (pubkey, account) pair in insertion order until
// f returns false. Each call starts a fresh traversal over the map's
// current contents.
func (m *AccountMap) Iterate(f func(pubkey ed25519.PublicKey, account solana.Account) bool) {
	for _, key := range m.order {
		if !f(ed25519.PublicKey(key), m.accounts[key]) {
			return
		}
	}
}

// Len returns the number of accounts in the map.
func (m *AccountMap) Len() int {
	return len(m.accounts)
}

// IsEmpty returns true when the map has no accounts.
func (m *AccountMap) IsEmpty() bool {
	return len(m.accounts) == 0
}

// Merge inserts every account from other into this map. On a shared pubkey
// the account from other wins.
func (m *AccountMap) Merge(other *AccountMap) {
	other.Iterate(func(pubkey ed25519.PublicKey, account solana.Account) bool {
		m.SetAccount(pubkey, account)
		return true
	})
}

// Filter returns a new map containing only the accounts that satisfy the
// predicate, preserving relative insertion order.
func (m *AccountMap) Filter(predicate func(pubkey ed25519.PublicKey, account solana.Account) bool) *AccountMap {
	filtered := NewAccountMap()
	m.Iterate(func(pubkey ed25519.PublicKey, account solana.Account) bool {
		if predicate(pubkey, account) {
			filtered.SetAccount(pubkey, account)
		}
		return true
	})
	return filtered
}
