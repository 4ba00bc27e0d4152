package serialization

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/dvrvsimi/solana-accountgen/pkg/solana"
)

// MarshalJSON serializes a value into the readable format.
func MarshalJSON(value interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrap(err, "error serializing value as json")
	}
	return data, nil
}

// UnmarshalJSON deserializes readable-format bytes into out.
func UnmarshalJSON(out interface{}, data []byte) error {
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "error deserializing json data")
	}
	return nil
}

// UnmarshalAccountJSON decodes an account's data field into out.
func UnmarshalAccountJSON(out interface{}, account solana.Account) error {
	if len(account.Data) == 0 {
		return ErrNoAccountData
	}
	return UnmarshalJSON(out, account.Data)
}
