package accountgen

import (
	"crypto/ed25519"

	"github.com/dvrvsimi/solana-accountgen/pkg/solana"
	"github.com/dvrvsimi/solana-accountgen/pkg/solana/token"
)

// NewTokenAccount builds a rent-exempt account shaped like an initialized
// SPL token account holding amount tokens of mint for owner. The account is
// owned by tokenProgramID.
func NewTokenAccount(mint, owner ed25519.PublicKey, amount uint64, tokenProgramID ed25519.PublicKey) (solana.Account, error) {
	state := token.Account{
		Mint:   mint,
		Owner:  owner,
		Amount: amount,
		State:  token.AccountStateInitialized,
	}

	return NewAccountBuilder().
		WithBalance(solana.DefaultRent().MinimumBalance(token.AccountSize)).
		WithOwner(tokenProgramID).
		WithRawData(state.Marshal()).
		Build()
}
