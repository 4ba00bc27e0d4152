package serialization

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvrvsimi/solana-accountgen/pkg/solana"
)

type gameState struct {
	Player [32]byte
	Score  uint64
	Name   string
	Badges []uint32
}

func TestBorsh_RoundTrip(t *testing.T) {
	var player [32]byte
	for i := range player {
		player[i] = byte(i)
	}

	expected := gameState{
		Player: player,
		Score:  9001,
		Name:   "squirrel",
		Badges: []uint32{1, 2, 3},
	}

	data, err := MarshalBorsh(expected)
	require.NoError(t, err)

	var actual gameState
	require.NoError(t, UnmarshalBorsh(&actual, data))
	assert.Equal(t, expected, actual)
}

func TestBorsh_KnownLayout(t *testing.T) {
	// u64 little-endian followed by a length-prefixed string.
	type record struct {
		Value uint64
		Tag   string
	}

	data, err := MarshalBorsh(record{Value: 42, Tag: "ok"})
	require.NoError(t, err)
	assert.Equal(t, []byte{42, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 'o', 'k'}, data)
}

func TestBorsh_AccountData(t *testing.T) {
	data, err := MarshalBorsh(gameState{Score: 77, Name: "x"})
	require.NoError(t, err)

	account := solana.Account{Data: data}

	var decoded gameState
	require.NoError(t, UnmarshalAccountBorsh(&decoded, account))
	assert.EqualValues(t, 77, decoded.Score)
}

func TestBorsh_AccountDataErrors(t *testing.T) {
	var decoded gameState

	// Absent data is a distinct condition from malformed data.
	err := UnmarshalAccountBorsh(&decoded, solana.Account{})
	assert.Equal(t, ErrNoAccountData, err)

	err = UnmarshalAccountBorsh(&decoded, solana.Account{Data: []byte{1}})
	require.Error(t, err)
	assert.NotEqual(t, ErrNoAccountData, errors.Cause(err))
}

func TestJSON_RoundTrip(t *testing.T) {
	type fixture struct {
		Value uint64 `json:"value"`
		Tag   string `json:"tag"`
	}

	expected := fixture{Value: 42, Tag: "ok"}

	data, err := MarshalJSON(expected)
	require.NoError(t, err)

	var actual fixture
	require.NoError(t, UnmarshalJSON(&actual, data))
	assert.Equal(t, expected, actual)
}

func TestJSON_AccountDataErrors(t *testing.T) {
	var decoded map[string]interface{}

	err := UnmarshalAccountJSON(&decoded, solana.Account{})
	assert.Equal(t, ErrNoAccountData, err)

	err = UnmarshalAccountJSON(&decoded, solana.Account{Data: []byte("{broken")})
	require.Error(t, err)
	assert.NotEqual(t, ErrNoAccountData, errors.Cause(err))
}
