// Package sysvar builds mock sysvar accounts in the runtime wire layout.
package sysvar

import (
	"github.com/pkg/errors"

	"github.com/dvrvsimi/solana-accountgen/pkg/solana"
	"github.com/dvrvsimi/solana-accountgen/pkg/solana/binary"
)

var (
	// OwnerID owns all sysvar accounts.
	OwnerID = solana.MustPublicKeyFromBase58("Sysvar1111111111111111111111111111111111111")

	ClockID = solana.MustPublicKeyFromBase58("SysvarC1ock11111111111111111111111111111111")
	RentID  = solana.MustPublicKeyFromBase58("SysvarRent111111111111111111111111111111111")
)

var ErrInvalidAccountSize = errors.New("invalid sysvar account size")

// Reference: https://github.com/solana-labs/solana/blob/master/sdk/program/src/clock.rs
const ClockSize = 40

// Clock is the network clock sysvar.
type Clock struct {
	Slot                uint64
	EpochStartTimestamp int64
	Epoch               uint64
	LeaderScheduleEpoch uint64
	UnixTimestamp       int64
}

func (c Clock) Marshal() []byte {
	b := make([]byte, ClockSize)

	var offset int
	binary.PutUint64(b[offset:], c.Slot, &offset)
	binary.PutInt64(b[offset:], c.EpochStartTimestamp, &offset)
	binary.PutUint64(b[offset:], c.Epoch, &offset)
	binary.PutUint64(b[offset:], c.LeaderScheduleEpoch, &offset)
	binary.PutInt64(b[offset:], c.UnixTimestamp, &offset)

	return b
}

func (c *Clock) Unmarshal(b []byte) error {
	if len(b) != ClockSize {
		return ErrInvalidAccountSize
	}

	var offset int
	binary.GetUint64(b[offset:], &c.Slot, &offset)
	binary.GetInt64(b[offset:], &c.EpochStartTimestamp, &offset)
	binary.GetUint64(b[offset:], &c.Epoch, &offset)
	binary.GetUint64(b[offset:], &c.LeaderScheduleEpoch, &offset)
	binary.GetInt64(b[offset:], &c.UnixTimestamp, &offset)

	return nil
}

// Reference: https://github.com/solana-labs/solana/blob/master/sdk/program/src/rent.rs
const RentSize = 17

// Rent is the rent sysvar.
type Rent struct {
	LamportsPerByteYear uint64
	ExemptionThreshold  float64
	BurnPercent         uint8
}

// DefaultRent returns the mainnet rent configuration.
func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: solana.DefaultLamportsPerByteYear,
		ExemptionThreshold:  solana.DefaultExemptionThreshold,
		BurnPercent:         50,
	}
}

func (r Rent) Marshal() []byte {
	b := make([]byte, RentSize)

	var offset int
	binary.PutUint64(b[offset:], r.LamportsPerByteYear, &offset)
	binary.PutFloat64(b[offset:], r.ExemptionThreshold, &offset)
	binary.PutUint8(b[offset:], r.BurnPercent, &offset)

	return b
}

func (r *Rent) Unmarshal(b []byte) error {
	if len(b) != RentSize {
		return ErrInvalidAccountSize
	}

	var offset int
	binary.GetUint64(b[offset:], &r.LamportsPerByteYear, &offset)
	binary.GetFloat64(b[offset:], &r.ExemptionThreshold, &offset)
	binary.GetUint8(b[offset:], &r.BurnPercent, &offset)

	return nil
}

// NewClockAccount builds the clock sysvar account.
func NewClockAccount(clock Clock) solana.Account {
	return solana.Account{
		Lamports: 1,
		Data:     clock.Marshal(),
		Owner:    OwnerID,
	}
}

// NewRentAccount builds the rent sysvar account.
func NewRentAccount(rent Rent) solana.Account {
	return solana.Account{
		Lamports: 1,
		Data:     rent.Marshal(),
		Owner:    OwnerID,
	}
}
