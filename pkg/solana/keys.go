package solana

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

var ErrInvalidPublicKeyLength = errors.New("invalid public key length")

// NewRandomPublicKey generates a fresh public key. Keys are sampled from a
// 32-byte space, so collisions within a test run are not a practical concern.
func NewRandomPublicKey() (ed25519.PublicKey, error) {
	pub, _, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, errors.Wrap(err, "error generating keypair")
	}
	return pub, nil
}

// PublicKeyFromBase58 parses a base58-encoded public key.
func PublicKeyFromBase58(value string) (ed25519.PublicKey, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return nil, errors.Wrap(err, "error decoding string as base58")
	}

	if len(decoded) != ed25519.PublicKeySize {
		return nil, ErrInvalidPublicKeyLength
	}

	return decoded, nil
}

// MustPublicKeyFromBase58 parses a base58-encoded public key, panicking on
// failure. Intended for compile-time constants like program ids.
func MustPublicKeyFromBase58(value string) ed25519.PublicKey {
	key, err := PublicKeyFromBase58(value)
	if err != nil {
		panic(err)
	}
	return key
}
