package solana

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// SystemProgramID is the all-zero address of the system program, used as
// the default owner for accounts that haven't been assigned to a program.
var SystemProgramID = make(ed25519.PublicKey, ed25519.PublicKeySize)

// Account is a snapshot of on-ledger account state.
//
// Reference: https://github.com/solana-labs/solana/blob/master/sdk/src/account.rs
type Account struct {
	// The balance, in lamports
	Lamports uint64
	// Data held by this account
	Data []byte
	// The program that owns this account
	Owner ed25519.PublicKey
	// Whether this account's data contains a loaded program
	Executable bool
	// The epoch at which this account will next owe rent
	RentEpoch uint64
}

// Clone returns a deep copy of the account. The builder hands out accounts
// by value, so this only matters when callers share Data slices.
func (a Account) Clone() Account {
	cloned := a

	if a.Data != nil {
		cloned.Data = make([]byte, len(a.Data))
		copy(cloned.Data, a.Data)
	}
	if a.Owner != nil {
		cloned.Owner = make(ed25519.PublicKey, len(a.Owner))
		copy(cloned.Owner, a.Owner)
	}

	return cloned
}

type accountJSON struct {
	Lamports   uint64 `json:"lamports"`
	Data       string `json:"data"`
	Owner      string `json:"owner"`
	Executable bool   `json:"executable"`
	RentEpoch  uint64 `json:"rentEpoch"`
}

func (a Account) MarshalJSON() ([]byte, error) {
	owner := a.Owner
	if len(owner) == 0 {
		owner = SystemProgramID
	}

	return json.Marshal(accountJSON{
		Lamports:   a.Lamports,
		Data:       base64.StdEncoding.EncodeToString(a.Data),
		Owner:      base58.Encode(owner),
		Executable: a.Executable,
		RentEpoch:  a.RentEpoch,
	})
}

func (a *Account) UnmarshalJSON(b []byte) error {
	var raw accountJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	data, err := base64.StdEncoding.DecodeString(raw.Data)
	if err != nil {
		return errors.Wrap(err, "error decoding account data")
	}

	owner, err := PublicKeyFromBase58(raw.Owner)
	if err != nil {
		return errors.Wrap(err, "error decoding account owner")
	}

	a.Lamports = raw.Lamports
	a.Data = data
	a.Owner = owner
	a.Executable = raw.Executable
	a.RentEpoch = raw.RentEpoch

	return nil
}
