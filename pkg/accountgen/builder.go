// Package accountgen builds synthetic Solana account records for tests.
//
// An AccountBuilder accumulates balance, owner, executable flag and payload
// data through chained setters, then produces an immutable solana.Account.
// Encode failures on the structured-data path are deferred: the builder
// records the error, further setters remain callable, and the error
// surfaces at Build.
package accountgen

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/dvrvsimi/solana-accountgen/pkg/accountgen/serialization"
	"github.com/dvrvsimi/solana-accountgen/pkg/solana"
)

// AccountBuilder is a fluent builder for solana.Account values.
//
// A builder is owned by a single caller and is not safe for concurrent use.
type AccountBuilder struct {
	pubkey     ed25519.PublicKey
	lamports   uint64
	owner      ed25519.PublicKey
	executable bool
	rentEpoch  uint64
	data       []byte

	err error
}

// NewAccountBuilder creates a builder with zero balance, the system program
// as owner, no data, and the executable flag unset.
func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{}
}

// WithPubkey sets the address the account will be built at. When unset,
// BuildWithPubkey generates a random one.
func (b *AccountBuilder) WithPubkey(pubkey ed25519.PublicKey) *AccountBuilder {
	b.pubkey = pubkey
	return b
}

// WithBalance sets the account balance in lamports.
func (b *AccountBuilder) WithBalance(lamports uint64) *AccountBuilder {
	b.lamports = lamports
	return b
}

// WithOwner sets the program that owns the account.
func (b *AccountBuilder) WithOwner(owner ed25519.PublicKey) *AccountBuilder {
	b.owner = owner
	return b
}

// WithExecutable sets whether the account holds a loaded program.
func (b *AccountBuilder) WithExecutable(executable bool) *AccountBuilder {
	b.executable = executable
	return b
}

// WithRentEpoch sets the account's rent epoch.
func (b *AccountBuilder) WithRentEpoch(epoch uint64) *AccountBuilder {
	b.rentEpoch = epoch
	return b
}

// WithData borsh-encodes value and sets it as the account data. If encoding
// fails the previous data is kept and the error is recorded; it is returned
// by the next Build call rather than raised here, so chains never break.
func (b *AccountBuilder) WithData(value interface{}) *AccountBuilder {
	data, err := serialization.MarshalBorsh(value)
	if err != nil {
		if b.err == nil {
			b.err = errors.Wrap(ErrSerialization, err.Error())
		}
		return b
	}

	b.data = data
	return b
}

// WithRawData sets the account data directly, bypassing the codec. Used for
// opaque payloads such as program images.
func (b *AccountBuilder) WithRawData(data []byte) *AccountBuilder {
	b.data = data
	return b
}

// Build finalizes the builder into an account. A deferred encode error from
// WithData is surfaced here.
func (b *AccountBuilder) Build() (solana.Account, error) {
	if b.err != nil {
		return solana.Account{}, b.err
	}

	owner := b.owner
	if len(owner) == 0 {
		owner = solana.SystemProgramID
	} else if len(owner) != ed25519.PublicKeySize {
		return solana.Account{}, errors.Wrap(ErrInvalidInput, "owner must be a 32-byte public key")
	}

	return solana.Account{
		Lamports:   b.lamports,
		Data:       b.data,
		Owner:      owner,
		Executable: b.executable,
		RentEpoch:  b.rentEpoch,
	}, nil
}

// BuildWithPubkey finalizes the builder and returns the account along with
// its address, generating a random address if none was set.
func (b *AccountBuilder) BuildWithPubkey() (ed25519.PublicKey, solana.Account, error) {
	account, err := b.Build()
	if err != nil {
		return nil, solana.Account{}, err
	}

	pubkey := b.pubkey
	if len(pubkey) == 0 {
		pubkey, err = solana.NewRandomPublicKey()
		if err != nil {
			return nil, solana.Account{}, errors.Wrap(err, "error generating pubkey")
		}
	} else if len(pubkey) != ed25519.PublicKeySize {
		return nil, solana.Account{}, errors.Wrap(ErrInvalidInput, "pubkey must be a 32-byte public key")
	}

	return pubkey, account, nil
}

// CreatePDA derives the program address for the given seeds and builds an
// account at it with the provided balance and borsh-encoded value.
//
// The account's owner is always programID. Any owner configured on a
// builder beforehand does not apply here; a PDA account belongs to the
// program that derived it.
func CreatePDA(programID ed25519.PublicKey, seeds [][]byte, balance uint64, value interface{}) (ed25519.PublicKey, uint8, solana.Account, error) {
	if len(seeds) == 0 {
		return nil, 0, solana.Account{}, errors.Wrap(ErrInvalidInput, "at least one seed is required")
	}

	pda, bump, err := solana.FindProgramAddressAndBump(programID, seeds...)
	if err != nil {
		return nil, 0, solana.Account{}, err
	}

	account, err := NewAccountBuilder().
		WithBalance(balance).
		WithOwner(programID).
		WithData(value).
		Build()
	if err != nil {
		return nil, 0, solana.Account{}, err
	}

	return pda, bump, account, nil
}
