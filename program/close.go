// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package program

import (
	"github.com/stakemint/stakemint/ledger"
	"github.com/stakemint/stakemint/stakemint"
)

// CloseStakeAccountParams are the inputs of CloseStakeAccount.
type CloseStakeAccountParams struct {
	StakeAccount stakemint.Address
	Owner        stakemint.Address
}

// CloseStakePoolParams are the inputs of CloseStakePool.
type CloseStakePoolParams struct {
	StakePool stakemint.Address
	Owner     stakemint.Address
}

// CloseStakeAccount retires an emptied position. The record's tag is
// the only mutation; a retired record can never be read as a stake
// account again, and its address can never be re-allocated.
func (p *Program) CloseStakeAccount(env *Env, params CloseStakeAccountParams) (err error) {
	defer func() { observeOp("close_stake_account", err) }()

	stage := p.store.NewStage()

	region, err := stage.Get(params.StakeAccount)
	if err != nil {
		return err
	}
	if err = checkController(region, p.namespace, ErrWrongStakeAccountOwner); err != nil {
		return err
	}
	account, err := ledger.DecodeStakeAccount(region.Data)
	if err != nil {
		return err
	}
	if err = checkSigner(env, params.Owner, ErrMustSign); err != nil {
		return err
	}
	if err = checkKey(params.Owner, account.Owner, ErrStakeAccountOwnerMismatch); err != nil {
		return err
	}
	if account.StakeAmount != 0 {
		return ErrStakeNotEmpty
	}

	if err = stage.Put(params.StakeAccount, ledger.MarkDeleted(region.Data)); err != nil {
		return err
	}
	if err = stage.Commit(); err != nil {
		return err
	}
	logger.Info("stake account closed", "address", params.StakeAccount)
	return nil
}

// CloseStakePool retires a drained pool.
func (p *Program) CloseStakePool(env *Env, params CloseStakePoolParams) (err error) {
	defer func() { observeOp("close_stake_pool", err) }()

	stage := p.store.NewStage()

	region, err := stage.Get(params.StakePool)
	if err != nil {
		return err
	}
	if err = checkController(region, p.namespace, ErrWrongStakePoolAccountOwner); err != nil {
		return err
	}
	pool, err := ledger.DecodeStakePool(region.Data)
	if err != nil {
		return err
	}
	if err = checkSigner(env, params.Owner, ErrMustSign); err != nil {
		return err
	}
	if err = checkKey(params.Owner, pool.Owner, ErrWrongPoolOwner); err != nil {
		return err
	}
	if pool.TotalStaked != 0 {
		return ErrPoolNotEmpty
	}

	if err = stage.Put(params.StakePool, ledger.MarkDeleted(region.Data)); err != nil {
		return err
	}
	if err = stage.Commit(); err != nil {
		return err
	}
	logger.Info("stake pool closed", "address", params.StakePool)
	return nil
}
