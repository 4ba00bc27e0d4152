package accountgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvrvsimi/solana-accountgen/pkg/solana"
	"github.com/dvrvsimi/solana-accountgen/pkg/solana/token"
)

func TestNewTokenAccount(t *testing.T) {
	mint := generateKey(t)
	owner := generateKey(t)
	tokenProgramID := generateKey(t)

	account, err := NewTokenAccount(mint, owner, 12345, tokenProgramID)
	require.NoError(t, err)

	assert.Equal(t, tokenProgramID, account.Owner)
	assert.Equal(t, solana.DefaultRent().MinimumBalance(token.AccountSize), account.Lamports)

	var state token.Account
	require.True(t, state.Unmarshal(account.Data))
	assert.Equal(t, mint, state.Mint)
	assert.Equal(t, owner, state.Owner)
	assert.EqualValues(t, 12345, state.Amount)
	assert.Equal(t, token.AccountStateInitialized, state.State)
}
