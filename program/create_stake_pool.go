// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package program

import (
	"github.com/stakemint/stakemint/ledger"
	"github.com/stakemint/stakemint/stakemint"
	"github.com/stakemint/stakemint/token"
)

// CreateStakePoolParams are the inputs of CreateStakePool.
type CreateStakePoolParams struct {
	// the caller-supplied target address; must reproduce the derivation
	PoolAccount stakemint.Address

	Nonce uint8
	Name  string
	Owner stakemint.Address

	// token account receiving the pool owner's reward share
	RewardsDestination stakemint.Address

	CentralState stakemint.Address
}

// CreateStakePool opens a pool at its derived address and creates the
// pool's vault, the token account holding every staker's deposits. The
// vault lives at the canonical token address for (mint, pool), so
// deposits can be located from the pool address alone.
func (p *Program) CreateStakePool(env *Env, params CreateStakePoolParams) (err error) {
	defer func() { observeOp("create_stake_pool", err) }()

	if len(params.Name) == 0 || len(params.Name) > ledger.MaxPoolNameLen {
		return ErrBadPoolName
	}

	derived, derr := ledger.StakePoolAddress(p.namespace, params.Name, params.Owner, params.Nonce)
	if derr != nil {
		return ErrAccountNotDeterministic
	}
	if err = checkKey(params.PoolAccount, derived, ErrAccountNotDeterministic); err != nil {
		return err
	}
	if err = checkSigner(env, params.Owner, ErrMustSign); err != nil {
		return err
	}

	stage := p.store.NewStage()

	centralRegion, err := stage.Get(params.CentralState)
	if err != nil {
		return err
	}
	if err = checkController(centralRegion, p.namespace, ErrWrongAccountOwner); err != nil {
		return err
	}
	centralState, err := ledger.DecodeCentralState(centralRegion.Data)
	if err != nil {
		return err
	}

	// The destination must hold the reward token.
	dest, err := token.GetAccount(stage, params.RewardsDestination)
	if err != nil {
		return err
	}
	if err = checkKey(dest.Mint, centralState.TokenMint, ErrWrongMint); err != nil {
		return err
	}

	if _, err = token.CreateAccount(stage, centralState.TokenMint, params.PoolAccount); err != nil {
		return err
	}

	pool := &ledger.StakePool{
		LastCrankTime:      env.Time,
		Owner:              params.Owner,
		RewardsDestination: params.RewardsDestination,
		Nonce:              params.Nonce,
		Name:               params.Name,
	}
	if err = stage.Allocate(params.PoolAccount, p.namespace, ledger.StakePoolLen(params.Name)); err != nil {
		return err
	}
	if err = stage.Put(params.PoolAccount, pool.Encode()); err != nil {
		return err
	}

	if err = stage.Commit(); err != nil {
		return err
	}
	logger.Info("stake pool created",
		"address", params.PoolAccount,
		"name", params.Name,
		"owner", params.Owner)
	return nil
}
