// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package program

import (
	"github.com/stakemint/stakemint/ledger"
	"github.com/stakemint/stakemint/stakemint"
)

// CreateStakeAccountParams are the inputs of CreateStakeAccount.
type CreateStakeAccountParams struct {
	// the caller-supplied target address; must reproduce the derivation
	StakeAccount stakemint.Address

	Nonce     uint8
	Owner     stakemint.Address
	StakePool stakemint.Address
}

// CreateStakeAccount opens a position in a pool for an owner. Creation
// is permissionless; only the recorded owner can ever stake rewards out
// of it, so opening an account on someone's behalf grants nothing.
func (p *Program) CreateStakeAccount(env *Env, params CreateStakeAccountParams) (err error) {
	defer func() { observeOp("create_stake_account", err) }()

	derived, derr := ledger.StakeAccountAddress(p.namespace, params.StakePool, params.Owner, params.Nonce)
	if derr != nil {
		return ErrAccountNotDeterministic
	}
	if err = checkKey(params.StakeAccount, derived, ErrAccountNotDeterministic); err != nil {
		return err
	}

	stage := p.store.NewStage()

	poolRegion, err := stage.Get(params.StakePool)
	if err != nil {
		return err
	}
	if err = checkController(poolRegion, p.namespace, ErrWrongStakePoolAccountOwner); err != nil {
		return err
	}
	if _, err = ledger.DecodeStakePool(poolRegion.Data); err != nil {
		return err
	}

	account := &ledger.StakeAccount{
		Owner:           params.Owner,
		StakePool:       params.StakePool,
		LastClaimedTime: env.Time,
	}
	if err = stage.Allocate(params.StakeAccount, p.namespace, ledger.StakeAccountLen); err != nil {
		return err
	}
	if err = stage.Put(params.StakeAccount, account.Encode()); err != nil {
		return err
	}

	if err = stage.Commit(); err != nil {
		return err
	}
	logger.Info("stake account created",
		"address", params.StakeAccount,
		"owner", params.Owner,
		"pool", params.StakePool)
	return nil
}
