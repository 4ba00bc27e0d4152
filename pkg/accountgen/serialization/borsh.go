// Package serialization provides the two codecs used for account payloads:
// borsh for the compact binary format programs store on chain, and JSON for
// the human-readable boundary (CLI output, fixtures). The two are
// independent; callers pick one explicitly per call site.
package serialization

import (
	"github.com/near/borsh-go"
	"github.com/pkg/errors"

	"github.com/dvrvsimi/solana-accountgen/pkg/solana"
)

var (
	// ErrNoAccountData is returned when decoding an account whose data
	// field is empty. Distinct from a malformed-data failure so callers
	// can tell "account never initialized" from "account corrupted".
	ErrNoAccountData = errors.New("account has no data")
)

// MarshalBorsh serializes a value with borsh.
func MarshalBorsh(value interface{}) ([]byte, error) {
	data, err := borsh.Serialize(value)
	if err != nil {
		return nil, errors.Wrap(err, "error serializing value with borsh")
	}
	return data, nil
}

// UnmarshalBorsh deserializes borsh-encoded bytes into out.
func UnmarshalBorsh(out interface{}, data []byte) error {
	if err := borsh.Deserialize(out, data); err != nil {
		return errors.Wrap(err, "error deserializing borsh data")
	}
	return nil
}

// UnmarshalAccountBorsh decodes an account's data field into out.
func UnmarshalAccountBorsh(out interface{}, account solana.Account) error {
	if len(account.Data) == 0 {
		return ErrNoAccountData
	}
	return UnmarshalBorsh(out, account.Data)
}
