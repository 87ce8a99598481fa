// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token is the transfer primitive the reward ledger pays
// through. It keeps mints and token accounts in shared region storage,
// all controlled by the token module identity.
package token

import (
	"math"

	"github.com/pkg/errors"

	"github.com/stakemint/stakemint/stakemint"
	"github.com/stakemint/stakemint/store"
)

var (
	// ErrWrongController is returned when a presented region is not
	// controlled by the token module.
	ErrWrongController = errors.New("region not controlled by token module")

	// ErrWrongMint is returned when an account belongs to a different mint.
	ErrWrongMint = errors.New("account mint mismatch")

	// ErrNotAuthorized is returned when the required authority did not
	// authorize the call.
	ErrNotAuthorized = errors.New("authority did not authorize call")

	// ErrInsufficientFunds is returned on transfers exceeding the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAmountOverflow is returned when a balance or supply would wrap.
	ErrAmountOverflow = errors.New("token amount overflow")
)

// Authorizer reports whether an identity authorized the current call,
// by signature or by address-derivation proof.
type Authorizer interface {
	Authorized(id stakemint.Address) bool
}

// Mint describes one token kind.
type Mint struct {
	// the only identity allowed to emit new units
	Authority stakemint.Address

	// circulating supply, incremented by every emission
	Supply uint64
}

// Account holds a balance of one mint for one owner.
type Account struct {
	Mint   stakemint.Address
	Owner  stakemint.Address
	Amount uint64
}

// AccountAddress derives the canonical token account address for an
// owner under a mint.
func AccountAddress(mint, owner stakemint.Address) stakemint.Address {
	return stakemint.Keccak256(mint.Bytes(), owner.Bytes())
}

// CreateMint allocates a mint region at addr.
func CreateMint(stage *store.Stage, addr, authority stakemint.Address) error {
	data := encodeMint(&Mint{Authority: authority})
	if err := stage.Allocate(addr, stakemint.TokenAddress, len(data)); err != nil {
		return err
	}
	return stage.Put(addr, data)
}

// CreateAccount allocates a token account region at the canonical
// address for (mint, owner) and returns that address.
func CreateAccount(stage *store.Stage, mint, owner stakemint.Address) (stakemint.Address, error) {
	addr := AccountAddress(mint, owner)
	data := encodeAccount(&Account{Mint: mint, Owner: owner})
	if err := stage.Allocate(addr, stakemint.TokenAddress, len(data)); err != nil {
		return stakemint.Address{}, err
	}
	if err := stage.Put(addr, data); err != nil {
		return stakemint.Address{}, err
	}
	return addr, nil
}

// GetMint reads and validates the mint region at addr.
func GetMint(stage *store.Stage, addr stakemint.Address) (*Mint, error) {
	region, err := stage.Get(addr)
	if err != nil {
		return nil, err
	}
	if region.Controller != stakemint.TokenAddress {
		return nil, ErrWrongController
	}
	return decodeMint(region.Data)
}

// GetAccount reads and validates the token account region at addr.
func GetAccount(stage *store.Stage, addr stakemint.Address) (*Account, error) {
	region, err := stage.Get(addr)
	if err != nil {
		return nil, err
	}
	if region.Controller != stakemint.TokenAddress {
		return nil, ErrWrongController
	}
	return decodeAccount(region.Data)
}

// MintTo emits amount new units of mint into destination. The mint's
// authority must have authorized the call. A zero amount is a valid
// emission and succeeds.
func MintTo(stage *store.Stage, mintAddr, destAddr, authority stakemint.Address, amount uint64, auth Authorizer) error {
	mint, err := GetMint(stage, mintAddr)
	if err != nil {
		return err
	}
	if mint.Authority != authority {
		return ErrNotAuthorized
	}
	if !auth.Authorized(authority) {
		return ErrNotAuthorized
	}

	account, err := GetAccount(stage, destAddr)
	if err != nil {
		return err
	}
	if account.Mint != mintAddr {
		return ErrWrongMint
	}

	if account.Amount > math.MaxUint64-amount {
		return ErrAmountOverflow
	}
	if mint.Supply > math.MaxUint64-amount {
		return ErrAmountOverflow
	}
	account.Amount += amount
	mint.Supply += amount

	if err := stage.Put(destAddr, encodeAccount(account)); err != nil {
		return err
	}
	return stage.Put(mintAddr, encodeMint(mint))
}

// Transfer moves amount units between two accounts of the same mint,
// authorized by the source account's owner.
func Transfer(stage *store.Stage, srcAddr, destAddr stakemint.Address, amount uint64, auth Authorizer) error {
	src, err := GetAccount(stage, srcAddr)
	if err != nil {
		return err
	}
	if !auth.Authorized(src.Owner) {
		return ErrNotAuthorized
	}

	dest, err := GetAccount(stage, destAddr)
	if err != nil {
		return err
	}
	if dest.Mint != src.Mint {
		return ErrWrongMint
	}

	if src.Amount < amount {
		return ErrInsufficientFunds
	}
	if dest.Amount > math.MaxUint64-amount {
		return ErrAmountOverflow
	}
	src.Amount -= amount
	dest.Amount += amount

	if err := stage.Put(srcAddr, encodeAccount(src)); err != nil {
		return err
	}
	return stage.Put(destAddr, encodeAccount(dest))
}
