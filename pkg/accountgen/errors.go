package accountgen

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned when a builder precondition is violated,
	// e.g. a malformed pubkey or an empty seed list for PDA creation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSerialization is returned from a terminal builder call when an
	// earlier WithData value failed to encode. The codec failure reason is
	// carried in the message.
	ErrSerialization = errors.New("serialization failed")
)
