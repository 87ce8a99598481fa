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

// ClaimRewardsParams are the records presented to ClaimRewards.
type ClaimRewardsParams struct {
	StakePool          stakemint.Address
	StakeAccount       stakemint.Address
	Owner              stakemint.Address
	RewardsDestination stakemint.Address
	CentralState       stakemint.Address
	Mint               stakemint.Address
}

// ClaimRewards pays a staker their share of inflation accrued since
// their last claim, then advances the claim boundary. The transfer and
// the boundary update commit together or not at all.
func (p *Program) ClaimRewards(env *Env, params ClaimRewardsParams) (rewards uint64, err error) {
	defer func() { observeOp("claim_rewards", err) }()

	stage := p.store.NewStage()

	// Check ownership
	poolRegion, err := stage.Get(params.StakePool)
	if err != nil {
		return 0, err
	}
	if err = checkController(poolRegion, p.namespace, ErrWrongStakePoolAccountOwner); err != nil {
		return 0, err
	}
	accountRegion, err := stage.Get(params.StakeAccount)
	if err != nil {
		return 0, err
	}
	if err = checkController(accountRegion, p.namespace, ErrWrongStakeAccountOwner); err != nil {
		return 0, err
	}
	centralRegion, err := stage.Get(params.CentralState)
	if err != nil {
		return 0, err
	}
	if err = checkController(centralRegion, p.namespace, ErrWrongAccountOwner); err != nil {
		return 0, err
	}
	destRegion, err := stage.Get(params.RewardsDestination)
	if err != nil {
		return 0, err
	}
	if err = checkController(destRegion, stakemint.TokenAddress, ErrWrongAccountOwner); err != nil {
		return 0, err
	}
	mintRegion, err := stage.Get(params.Mint)
	if err != nil {
		return 0, err
	}
	if err = checkController(mintRegion, stakemint.TokenAddress, ErrWrongAccountOwner); err != nil {
		return 0, err
	}

	// Check signer
	if err = checkSigner(env, params.Owner, ErrMustSign); err != nil {
		return 0, err
	}

	centralState, err := ledger.DecodeCentralState(centralRegion.Data)
	if err != nil {
		return 0, err
	}
	stakePool, err := ledger.DecodeStakePool(poolRegion.Data)
	if err != nil {
		return 0, err
	}
	stakeAccount, err := ledger.DecodeStakeAccount(accountRegion.Data)
	if err != nil {
		return 0, err
	}
	mint, err := token.GetMint(stage, params.Mint)
	if err != nil {
		return 0, err
	}

	// Check keys
	if err = checkKey(params.StakePool, stakeAccount.StakePool, ErrWrongStakePool); err != nil {
		return 0, err
	}
	if err = checkKey(params.Owner, stakeAccount.Owner, ErrStakeAccountOwnerMismatch); err != nil {
		return 0, err
	}
	if err = checkKey(params.Mint, centralState.TokenMint, ErrWrongMint); err != nil {
		return 0, err
	}

	rewards, err = reward.Calc(reward.Params{
		CurrentTime:     env.Time,
		LastClaimedTime: stakeAccount.LastClaimedTime,
		DailyInflation:  centralState.DailyInflation,
		Supply:          mint.Supply,
		Multiplier:      stakemint.StakerMultiplier,
		StakeAmount:     stakeAccount.StakeAmount,
		TotalStaked:     stakePool.TotalStaked,
	})
	if err != nil {
		return 0, err
	}

	logger.Debug("claiming rewards", "account", params.StakeAccount, "amount", rewards)

	// Transfer rewards, authorized by the central state's derivation
	// proof rather than any signature.
	env.WithDerivationProof(ledger.CentralStateSeeds(p.namespace, centralState.SignerNonce))
	if err = token.MintTo(stage, params.Mint, params.RewardsDestination, params.CentralState, rewards, env); err != nil {
		return 0, err
	}

	// Update states
	stakeAccount.LastClaimedTime = env.Time
	if err = stage.Put(params.StakeAccount, stakeAccount.Encode()); err != nil {
		return 0, err
	}

	if err = stage.Commit(); err != nil {
		return 0, err
	}
	metricRewards().Observe(int64(rewards))
	return rewards, nil
}

// PendingRewards previews what ClaimRewards would currently pay,
// without mutating anything.
func (p *Program) PendingRewards(now int64, accountAddr stakemint.Address) (uint64, error) {
	stakeAccount, err := p.GetStakeAccount(accountAddr)
	if err != nil {
		return 0, err
	}
	stakePool, err := p.GetStakePool(stakeAccount.StakePool)
	if err != nil {
		return 0, err
	}
	centralAddr, err := p.CentralStateAddress()
	if err != nil {
		return 0, err
	}
	centralState, err := p.GetCentralState(centralAddr)
	if err != nil {
		return 0, err
	}
	mint, err := token.GetMint(p.store.NewStage(), centralState.TokenMint)
	if err != nil {
		return 0, err
	}

	return reward.Calc(reward.Params{
		CurrentTime:     now,
		LastClaimedTime: stakeAccount.LastClaimedTime,
		DailyInflation:  centralState.DailyInflation,
		Supply:          mint.Supply,
		Multiplier:      stakemint.StakerMultiplier,
		StakeAmount:     stakeAccount.StakeAmount,
		TotalStaked:     stakePool.TotalStaked,
	})
}
