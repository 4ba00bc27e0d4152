package programtest

import (
	"crypto/ed25519"

	"github.com/dvrvsimi/solana-accountgen/pkg/accountgen"
	"github.com/dvrvsimi/solana-accountgen/pkg/solana"
)

// GenesisAccounts collects accounts destined for a genesis config.
type GenesisAccounts struct {
	accounts *accountgen.AccountMap
}

// NewGenesisAccounts creates an empty set.
func NewGenesisAccounts() *GenesisAccounts {
	return &GenesisAccounts{
		accounts: accountgen.NewAccountMap(),
	}
}

// AddAccount adds a single account.
func (g *GenesisAccounts) AddAccount(pubkey ed25519.PublicKey, account solana.Account) *GenesisAccounts {
	g.accounts.SetAccount(pubkey, account)
	return g
}

// AddAccountMap adds every account from the map.
func (g *GenesisAccounts) AddAccountMap(m *accountgen.AccountMap) *GenesisAccounts {
	g.accounts.Merge(m)
	return g
}

// Iterate calls f for each (pubkey, account) pair in insertion order until
// f returns false.
func (g *GenesisAccounts) Iterate(f func(pubkey ed25519.PublicKey, account solana.Account) bool) {
	g.accounts.Iterate(f)
}

// Len returns the number of accounts.
func (g *GenesisAccounts) Len() int {
	return g.accounts.Len()
}

// IsEmpty returns true when no accounts have been added.
func (g *GenesisAccounts) IsEmpty() bool {
	return g.accounts.IsEmpty()
}
