// Package programtest bridges built accounts into an external program-test
// environment. The environment itself (transaction execution, bank state)
// is outside this module; anything exposing AddAccount can be seeded.
package programtest

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"

	"github.com/dvrvsimi/solana-accountgen/pkg/accountgen"
	"github.com/dvrvsimi/solana-accountgen/pkg/accountgen/anchor"
	"github.com/dvrvsimi/solana-accountgen/pkg/solana"
)

// Environment is the ingestion surface of a program-test harness.
type Environment interface {
	AddAccount(pubkey ed25519.PublicKey, account solana.Account)
}

// Seeder inserts built accounts into an Environment.
type Seeder struct {
	env Environment
	log *logrus.Entry
}

// NewSeeder wraps an environment for seeding.
func NewSeeder(env Environment) *Seeder {
	return &Seeder{
		env: env,
		log: logrus.StandardLogger().WithField("type", "accountgen/programtest"),
	}
}

// AddAccount inserts a single prebuilt account.
func (s *Seeder) AddAccount(pubkey ed25519.PublicKey, account solana.Account) {
	s.log.WithField("account", base58.Encode(pubkey)).Debug("adding account")
	s.env.AddAccount(pubkey, account)
}

// AddAccountWithBuilder finalizes the builder and inserts the result. On
// builder failure nothing is inserted.
func (s *Seeder) AddAccountWithBuilder(pubkey ed25519.PublicKey, builder *accountgen.AccountBuilder) error {
	account, err := builder.Build()
	if err != nil {
		return err
	}

	s.AddAccount(pubkey, account)
	return nil
}

// AddAccountMap inserts every account in the map, one add per entry, in the
// map's iteration order.
func (s *Seeder) AddAccountMap(m *accountgen.AccountMap) {
	m.Iterate(func(pubkey ed25519.PublicKey, account solana.Account) bool {
		s.AddAccount(pubkey, account)
		return true
	})
}

// AddAnchorAccount builds an Anchor account and inserts it at pubkey.
func (s *Seeder) AddAnchorAccount(pubkey ed25519.PublicKey, accountType string, programID ed25519.PublicKey, value interface{}, lamports uint64) error {
	account, err := anchor.NewAccount(accountType, programID, value, lamports)
	if err != nil {
		return err
	}

	s.AddAccount(pubkey, account)
	return nil
}

// AddAnchorPDA builds an Anchor account at its derived address and inserts
// it, returning the address and bump.
func (s *Seeder) AddAnchorPDA(accountType string, programID ed25519.PublicKey, seeds [][]byte, value interface{}, lamports uint64) (ed25519.PublicKey, uint8, error) {
	pda, bump, account, err := anchor.NewPDA(accountType, programID, seeds, value, lamports)
	if err != nil {
		return nil, 0, err
	}

	s.AddAccount(pda, account)
	return pda, bump, nil
}
