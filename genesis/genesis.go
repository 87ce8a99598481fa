// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis bootstraps a fresh ledger from a YAML description:
// the program namespace, the reward mint with its initial allocations,
// and the central state carrying the inflation schedule.
package genesis

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/stakemint/stakemint/ledger"
	"github.com/stakemint/stakemint/log"
	"github.com/stakemint/stakemint/program"
	"github.com/stakemint/stakemint/stakemint"
	"github.com/stakemint/stakemint/store"
	"github.com/stakemint/stakemint/token"
)

var logger = log.WithContext("pkg", "genesis")

// Address decodes a hex address from YAML.
type Address struct {
	stakemint.Address
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Address) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	addr, err := stakemint.ParseAddress(s)
	if err != nil {
		return err
	}
	a.Address = addr
	return nil
}

// Account is an initial reward-token allocation.
type Account struct {
	Address Address `yaml:"address"`
	Balance uint64  `yaml:"balance"`
}

// Config is a user customized genesis.
type Config struct {
	Name           string    `yaml:"name"`
	DailyInflation uint64    `yaml:"dailyInflation"`
	Accounts       []Account `yaml:"accounts"`
}

// Load reads a genesis config in strict mode.
func Load(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var config Config
	if err := decoder.Decode(&config); err != nil {
		return nil, errors.Wrap(err, "decode genesis")
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	if c.Name == "" {
		return errors.New("name must be set")
	}
	if c.DailyInflation == 0 {
		return errors.New("dailyInflation must be a non-zero integer")
	}
	var supply uint64
	seen := make(map[stakemint.Address]bool)
	for _, a := range c.Accounts {
		if seen[a.Address.Address] {
			return errors.Errorf("%v: duplicate allocation", a.Address)
		}
		seen[a.Address.Address] = true
		if a.Balance == 0 {
			return errors.Errorf("%v: balance must be a non-zero integer", a.Address)
		}
		if supply > supply+a.Balance {
			return errors.New("total allocation overflows")
		}
		supply += a.Balance
	}
	// the supply divides the inflation, so an empty ledger could
	// never pay a reward
	if supply == 0 {
		return errors.New("at least one allocation must be set")
	}
	return nil
}

// Namespace derives the program identity of this network.
func (c *Config) Namespace() stakemint.Address {
	return stakemint.Blake2b([]byte("stakemint-namespace-" + c.Name))
}

// Mint derives the reward mint address of this network.
func (c *Config) Mint() stakemint.Address {
	return stakemint.Blake2b([]byte("stakemint-mint-" + c.Name))
}

// Build materializes the genesis into the store and returns the bound
// program. It is idempotent: a ledger whose central state already
// exists is left untouched.
func (c *Config) Build(st *store.Store, launchTime int64) (*program.Program, error) {
	namespace := c.Namespace()
	prog := program.New(namespace, st)

	central, signerNonce, err := stakemint.FindDerivedAddress(namespace, namespace.Bytes())
	if err != nil {
		return nil, err
	}
	exists, err := st.Exists(central)
	if err != nil {
		return nil, err
	}
	if exists {
		return prog, nil
	}

	// the mint with the central state as its only authority, the
	// initial allocations emitted under the central state's derivation,
	// and the central state itself, all in one commit so an interrupted
	// bootstrap leaves nothing behind
	stage := st.NewStage()
	if err := token.CreateMint(stage, c.Mint(), central); err != nil {
		return nil, err
	}
	env := program.NewEnv(namespace, launchTime).
		WithDerivationProof(ledger.CentralStateSeeds(namespace, signerNonce))
	for _, a := range c.Accounts {
		dest, err := token.CreateAccount(stage, c.Mint(), a.Address.Address)
		if err != nil {
			return nil, err
		}
		if err := token.MintTo(stage, c.Mint(), dest, central, a.Balance, env); err != nil {
			return nil, err
		}
	}
	if err := prog.CreateCentralStateIn(stage, program.CreateCentralStateParams{
		StateAccount:   central,
		SignerNonce:    signerNonce,
		DailyInflation: c.DailyInflation,
		TokenMint:      c.Mint(),
	}); err != nil {
		return nil, err
	}
	if err := stage.Commit(); err != nil {
		return nil, err
	}

	logger.Info("ledger bootstrapped",
		"network", c.Name,
		"namespace", namespace,
		"dailyInflation", c.DailyInflation,
		"allocations", len(c.Accounts))
	return prog, nil
}
