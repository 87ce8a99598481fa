// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package program

import (
	"github.com/pkg/errors"

	"github.com/stakemint/stakemint/ledger"
	"github.com/stakemint/stakemint/reward"
)

// Every precondition violation aborts the whole operation with one of
// these kinds; nothing is mutated and no transfer is issued on any
// failure path.
var (
	// storage-controller mismatches
	ErrWrongStakePoolAccountOwner = errors.New("stake pool account has wrong owner")
	ErrWrongStakeAccountOwner     = errors.New("stake account has wrong owner")
	ErrWrongAccountOwner          = errors.New("account has wrong owner")

	// field-level identifier mismatches
	ErrWrongStakePool            = errors.New("wrong stake pool")
	ErrWrongMint                 = errors.New("wrong mint")
	ErrStakeAccountOwnerMismatch = errors.New("stake account owner mismatch")

	// missing authorization proof
	ErrMustSign = errors.New("required signer missing")

	// supplied address does not match the required derivation
	ErrAccountNotDeterministic = errors.New("account not deterministic")

	// unstaking more than is staked
	ErrInsufficientStake = errors.New("insufficient staked amount")

	// invalid pool name at creation
	ErrBadPoolName = errors.New("bad pool name")

	// retiring a record that still carries stake
	ErrStakeNotEmpty = errors.New("stake account not empty")
	ErrPoolNotEmpty  = errors.New("stake pool not empty")

	// presented pool owner does not match the record
	ErrWrongPoolOwner = errors.New("wrong stake pool owner")
)

// Re-exported kinds produced by collaborators.
var (
	// ErrOverflow covers arithmetic overflow, division by zero and
	// lossy downcasts in the reward computation.
	ErrOverflow = reward.ErrOverflow

	// ErrDataTypeMismatch is a record tag mismatch.
	ErrDataTypeMismatch = ledger.ErrDataTypeMismatch
)
