// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package program

import (
	"github.com/stakemint/stakemint/ledger"
	"github.com/stakemint/stakemint/reward"
	"github.com/stakemint/stakemint/stakemint"
	"github.com/stakemint/stakemint/token"
)

// ClaimPoolRewardsParams are the inputs of ClaimPoolRewards.
type ClaimPoolRewardsParams struct {
	StakePool    stakemint.Address
	CentralState stakemint.Address
	Mint         stakemint.Address
}

// ClaimPoolRewards pays the pool owner's share of inflation accrued
// since the last crank, into the destination the pool was created with.
// The crank is permissionless: the payout target is fixed in the pool
// record, so the caller chooses only when it runs, not where it goes.
func (p *Program) ClaimPoolRewards(env *Env, params ClaimPoolRewardsParams) (rewards uint64, err error) {
	defer func() { observeOp("claim_pool_rewards", err) }()

	stage := p.store.NewStage()

	poolRegion, err := stage.Get(params.StakePool)
	if err != nil {
		return 0, err
	}
	if err = checkController(poolRegion, p.namespace, ErrWrongStakePoolAccountOwner); err != nil {
		return 0, err
	}
	centralRegion, err := stage.Get(params.CentralState)
	if err != nil {
		return 0, err
	}
	if err = checkController(centralRegion, p.namespace, ErrWrongAccountOwner); err != nil {
		return 0, err
	}

	pool, err := ledger.DecodeStakePool(poolRegion.Data)
	if err != nil {
		return 0, err
	}
	centralState, err := ledger.DecodeCentralState(centralRegion.Data)
	if err != nil {
		return 0, err
	}
	if err = checkKey(params.Mint, centralState.TokenMint, ErrWrongMint); err != nil {
		return 0, err
	}
	mint, err := token.GetMint(stage, params.Mint)
	if err != nil {
		return 0, err
	}

	// The owner's cut is the whole complement of the staker share, so
	// the stake/total ratio degenerates to one.
	rewards, err = reward.Calc(reward.Params{
		CurrentTime:     env.Time,
		LastClaimedTime: pool.LastCrankTime,
		DailyInflation:  centralState.DailyInflation,
		Supply:          mint.Supply,
		Multiplier:      100 - stakemint.StakerMultiplier,
		StakeAmount:     1,
		TotalStaked:     1,
	})
	if err != nil {
		return 0, err
	}

	env.WithDerivationProof(ledger.CentralStateSeeds(p.namespace, centralState.SignerNonce))
	if err = token.MintTo(stage, params.Mint, pool.RewardsDestination, params.CentralState, rewards, env); err != nil {
		return 0, err
	}

	pool.LastCrankTime = env.Time
	if err = stage.Put(params.StakePool, pool.Encode()); err != nil {
		return 0, err
	}

	if err = stage.Commit(); err != nil {
		return 0, err
	}
	metricRewards().Observe(int64(rewards))
	logger.Info("pool rewards claimed", "pool", params.StakePool, "amount", rewards)
	return rewards, nil
}
