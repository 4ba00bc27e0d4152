package solana

// Default rent parameters.
//
// Reference: https://github.com/solana-labs/solana/blob/master/sdk/program/src/rent.rs
const (
	// DefaultLamportsPerByteYear is ~3.56 lamports per byte-epoch on a
	// 2-day epoch schedule, yielding $0.01 per megabyte-day at $1/SOL.
	DefaultLamportsPerByteYear = 1_000_000_000 / 100 * 365 / (1024 * 1024)

	// DefaultExemptionThreshold is the number of years of rent an account
	// must deposit to be exempt from rent collection.
	DefaultExemptionThreshold = 2

	// accountStorageOverhead accounts for the metadata stored alongside
	// account data when computing rent.
	accountStorageOverhead = 128
)

// Rent is the configuration of the network rent model.
type Rent struct {
	LamportsPerByteYear uint64
	ExemptionThreshold  uint64
}

// DefaultRent returns the rent configuration used by mainnet.
func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: DefaultLamportsPerByteYear,
		ExemptionThreshold:  DefaultExemptionThreshold,
	}
}

// MinimumBalance returns the minimum lamport balance for an account of the
// given data length to be exempt from rent.
func (r Rent) MinimumBalance(dataLen int) uint64 {
	return (accountStorageOverhead + uint64(dataLen)) * r.LamportsPerByteYear * r.ExemptionThreshold
}
