package anchor

import (
	"crypto/ed25519"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvrvsimi/solana-accountgen/pkg/solana"
)

type gameState struct {
	Player [32]byte
	Score  uint64
}

func generateKey(t *testing.T) ed25519.PublicKey {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return pub
}

func TestDiscriminators(t *testing.T) {
	expectedAccount := sha256.Sum256([]byte("account:GameState"))
	assert.Equal(t, expectedAccount[:8], AccountDiscriminator("GameState"))

	expectedMethod := sha256.Sum256([]byte("global:update_score"))
	assert.Equal(t, expectedMethod[:8], MethodDiscriminator("update_score"))

	assert.NotEqual(t, AccountDiscriminator("a"), MethodDiscriminator("a"))
}

func TestNewAccount(t *testing.T) {
	programID := generateKey(t)
	state := gameState{Score: 100}

	account, err := NewAccount("GameState", programID, state, 10_000_000)
	require.NoError(t, err)

	assert.Equal(t, programID, account.Owner)
	assert.EqualValues(t, 10_000_000, account.Lamports)
	assert.Equal(t, AccountDiscriminator("GameState"), account.Data[:DiscriminatorLength])

	var decoded gameState
	require.NoError(t, UnmarshalAccount(&decoded, account))
	assert.Equal(t, state, decoded)
}

func TestNewPDA(t *testing.T) {
	programID := generateKey(t)
	player := generateKey(t)
	seeds := [][]byte{[]byte("game"), player}

	pda, bump, account, err := NewPDA("GameState", programID, seeds, gameState{Score: 7}, 1)
	require.NoError(t, err)

	expectedPda, expectedBump, err := solana.FindProgramAddressAndBump(programID, seeds...)
	require.NoError(t, err)
	assert.Equal(t, expectedPda, pda)
	assert.Equal(t, expectedBump, bump)

	// PDA accounts always belong to the deriving program.
	assert.Equal(t, programID, account.Owner)

	_, _, _, err = NewPDA("GameState", programID, nil, gameState{}, 1)
	assert.Error(t, err)
}

func TestNewInstruction(t *testing.T) {
	programID := generateKey(t)
	game := generateKey(t)
	player := generateKey(t)

	type updateScoreArgs struct {
		NewScore uint64
	}

	ix, err := NewInstruction(
		programID,
		"update_score",
		[]solana.AccountMeta{
			solana.NewAccountMeta(game, false),
			solana.NewReadonlyAccountMeta(player, true),
		},
		updateScoreArgs{NewScore: 100},
	)
	require.NoError(t, err)

	assert.Equal(t, programID, ix.Program)
	require.Len(t, ix.Accounts, 2)
	assert.True(t, ix.Accounts[0].IsWritable)
	assert.False(t, ix.Accounts[1].IsWritable)
	assert.Equal(t, MethodDiscriminator("update_score"), ix.Data[:DiscriminatorLength])
	assert.Equal(t, []byte{100, 0, 0, 0, 0, 0, 0, 0}, ix.Data[DiscriminatorLength:])
}

func TestUnmarshalAccount_ShortData(t *testing.T) {
	var decoded gameState

	err := UnmarshalAccount(&decoded, solana.Account{Data: []byte{1, 2, 3}})
	assert.Equal(t, ErrDataTooShort, err)

	err = UnmarshalAccount(&decoded, solana.Account{Data: AccountDiscriminator("GameState")})
	assert.Equal(t, ErrDataTooShort, err)
}
