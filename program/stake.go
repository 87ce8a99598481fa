// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package program

import (
	"github.com/stakemint/stakemint/ledger"
	"github.com/stakemint/stakemint/stakemint"
	"github.com/stakemint/stakemint/store"
	"github.com/stakemint/stakemint/token"
)

// StakeParams are the inputs of Stake.
type StakeParams struct {
	StakeAccount stakemint.Address
	StakePool    stakemint.Address
	Owner        stakemint.Address
	CentralState stakemint.Address

	// token account the deposit is drawn from; its owner must have
	// signed
	Source stakemint.Address

	Amount uint64
}

// UnstakeParams are the inputs of Unstake.
type UnstakeParams struct {
	StakeAccount stakemint.Address
	StakePool    stakemint.Address
	Owner        stakemint.Address
	CentralState stakemint.Address

	// token account the withdrawal is paid to
	Destination stakemint.Address

	Amount uint64
}

// Stake deposits tokens into the pool vault and grows the position.
// The deposit, the position and the pool total move together or not at
// all.
func (p *Program) Stake(env *Env, params StakeParams) (err error) {
	defer func() { observeOp("stake", err) }()

	stage := p.store.NewStage()

	pool, account, centralState, err := p.loadPosition(stage, params.StakePool, params.StakeAccount, params.CentralState)
	if err != nil {
		return err
	}
	if err = checkSigner(env, params.Owner, ErrMustSign); err != nil {
		return err
	}
	if err = checkKey(params.StakePool, account.StakePool, ErrWrongStakePool); err != nil {
		return err
	}
	if err = checkKey(params.Owner, account.Owner, ErrStakeAccountOwnerMismatch); err != nil {
		return err
	}

	vault := token.AccountAddress(centralState.TokenMint, params.StakePool)
	if err = token.Transfer(stage, params.Source, vault, params.Amount, env); err != nil {
		return err
	}

	// A dormant position accrues nothing, so reopening it starts a
	// fresh reward period instead of back-paying the idle time.
	if account.StakeAmount == 0 && params.Amount > 0 {
		account.LastClaimedTime = env.Time
	}
	account.StakeAmount += params.Amount
	pool.TotalStaked += params.Amount

	if err = stage.Put(params.StakeAccount, account.Encode()); err != nil {
		return err
	}
	if err = stage.Put(params.StakePool, pool.Encode()); err != nil {
		return err
	}

	if err = stage.Commit(); err != nil {
		return err
	}
	logger.Info("staked", "account", params.StakeAccount, "amount", params.Amount)
	return nil
}

// Unstake withdraws tokens from the pool vault and shrinks the
// position. The vault transfer is authorized by the pool's own
// derivation, not by any signature.
func (p *Program) Unstake(env *Env, params UnstakeParams) (err error) {
	defer func() { observeOp("unstake", err) }()

	stage := p.store.NewStage()

	pool, account, centralState, err := p.loadPosition(stage, params.StakePool, params.StakeAccount, params.CentralState)
	if err != nil {
		return err
	}
	if err = checkSigner(env, params.Owner, ErrMustSign); err != nil {
		return err
	}
	if err = checkKey(params.StakePool, account.StakePool, ErrWrongStakePool); err != nil {
		return err
	}
	if err = checkKey(params.Owner, account.Owner, ErrStakeAccountOwnerMismatch); err != nil {
		return err
	}
	if account.StakeAmount < params.Amount {
		return ErrInsufficientStake
	}

	vault := token.AccountAddress(centralState.TokenMint, params.StakePool)
	env.WithDerivationProof(ledger.StakePoolSeeds(pool.Name, pool.Owner, pool.Nonce))
	if err = token.Transfer(stage, vault, params.Destination, params.Amount, env); err != nil {
		return err
	}

	account.StakeAmount -= params.Amount
	pool.TotalStaked -= params.Amount

	if err = stage.Put(params.StakeAccount, account.Encode()); err != nil {
		return err
	}
	if err = stage.Put(params.StakePool, pool.Encode()); err != nil {
		return err
	}

	if err = stage.Commit(); err != nil {
		return err
	}
	logger.Info("unstaked", "account", params.StakeAccount, "amount", params.Amount)
	return nil
}

// loadPosition reads the pool, account and central state records with
// their controller checks, shared by Stake and Unstake.
func (p *Program) loadPosition(stage *store.Stage, poolAddr, accountAddr, centralAddr stakemint.Address) (*ledger.StakePool, *ledger.StakeAccount, *ledger.CentralState, error) {
	poolRegion, err := stage.Get(poolAddr)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := checkController(poolRegion, p.namespace, ErrWrongStakePoolAccountOwner); err != nil {
		return nil, nil, nil, err
	}
	accountRegion, err := stage.Get(accountAddr)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := checkController(accountRegion, p.namespace, ErrWrongStakeAccountOwner); err != nil {
		return nil, nil, nil, err
	}
	centralRegion, err := stage.Get(centralAddr)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := checkController(centralRegion, p.namespace, ErrWrongAccountOwner); err != nil {
		return nil, nil, nil, err
	}

	pool, err := ledger.DecodeStakePool(poolRegion.Data)
	if err != nil {
		return nil, nil, nil, err
	}
	account, err := ledger.DecodeStakeAccount(accountRegion.Data)
	if err != nil {
		return nil, nil, nil, err
	}
	centralState, err := ledger.DecodeCentralState(centralRegion.Data)
	if err != nil {
		return nil, nil, nil, err
	}
	return pool, account, centralState, nil
}
