// Package anchor builds test accounts and instructions in the shape Anchor
// programs expect: borsh payloads prefixed with an 8-byte discriminator.
//
// Account discriminators are the first 8 bytes of sha256("account:{type}");
// method discriminators the first 8 bytes of sha256("global:{method}").
package anchor

import (
	"crypto/ed25519"
	"crypto/sha256"

	"github.com/pkg/errors"

	"github.com/dvrvsimi/solana-accountgen/pkg/accountgen"
	"github.com/dvrvsimi/solana-accountgen/pkg/accountgen/serialization"
	"github.com/dvrvsimi/solana-accountgen/pkg/solana"
)

// DiscriminatorLength is the size of the prefix Anchor writes ahead of
// every account and instruction payload.
const DiscriminatorLength = 8

var ErrDataTooShort = errors.New("account data too short for an anchor account")

// AccountDiscriminator computes the discriminator for an account type name.
func AccountDiscriminator(accountType string) []byte {
	h := sha256.Sum256([]byte("account:" + accountType))
	return h[:DiscriminatorLength]
}

// MethodDiscriminator computes the discriminator for a method name.
func MethodDiscriminator(methodName string) []byte {
	h := sha256.Sum256([]byte("global:" + methodName))
	return h[:DiscriminatorLength]
}

func prefixedData(discriminator []byte, value interface{}) ([]byte, error) {
	encoded, err := serialization.MarshalBorsh(value)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, DiscriminatorLength+len(encoded))
	data = append(data, discriminator...)
	data = append(data, encoded...)
	return data, nil
}

// NewAccount builds an account whose data carries the discriminator for
// accountType followed by the borsh encoding of value. The account is owned
// by programID.
func NewAccount(accountType string, programID ed25519.PublicKey, value interface{}, lamports uint64) (solana.Account, error) {
	data, err := prefixedData(AccountDiscriminator(accountType), value)
	if err != nil {
		return solana.Account{}, err
	}

	return accountgen.NewAccountBuilder().
		WithBalance(lamports).
		WithOwner(programID).
		WithRawData(data).
		Build()
}

// NewPDA derives the program address for the seeds and builds an Anchor
// account there. Returns the address, the bump, and the account.
func NewPDA(accountType string, programID ed25519.PublicKey, seeds [][]byte, value interface{}, lamports uint64) (ed25519.PublicKey, uint8, solana.Account, error) {
	if len(seeds) == 0 {
		return nil, 0, solana.Account{}, errors.Wrap(accountgen.ErrInvalidInput, "at least one seed is required")
	}

	pda, bump, err := solana.FindProgramAddressAndBump(programID, seeds...)
	if err != nil {
		return nil, 0, solana.Account{}, err
	}

	account, err := NewAccount(accountType, programID, value, lamports)
	if err != nil {
		return nil, 0, solana.Account{}, err
	}

	return pda, bump, account, nil
}

// NewInstruction builds an instruction whose data carries the method
// discriminator followed by the borsh encoding of args.
func NewInstruction(programID ed25519.PublicKey, methodName string, accounts []solana.AccountMeta, args interface{}) (solana.Instruction, error) {
	data, err := prefixedData(MethodDiscriminator(methodName), args)
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.Instruction{
		Program:  programID,
		Accounts: accounts,
		Data:     data,
	}, nil
}

// UnmarshalAccount decodes an Anchor account's data into out, skipping the
// discriminator prefix.
func UnmarshalAccount(out interface{}, account solana.Account) error {
	if len(account.Data) <= DiscriminatorLength {
		return ErrDataTooShort
	}
	return serialization.UnmarshalBorsh(out, account.Data[DiscriminatorLength:])
}
