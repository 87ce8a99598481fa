// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package reward computes the exact integer reward owed for an elapsed
// staking interval. All arithmetic runs in a checked 128-bit domain;
// any overflow, division by zero or lossy downcast aborts with
// ErrOverflow rather than minting an indeterminate amount.
package reward

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/stakemint/stakemint/stakemint"
)

// ErrOverflow is returned on arithmetic overflow, division by zero, or
// a result that does not fit the native reward width.
var ErrOverflow = errors.New("reward arithmetic overflow")

// Params are the inputs of one accrual computation.
type Params struct {
	CurrentTime     int64 // from the time oracle
	LastClaimedTime int64 // boundary of the last paid period

	DailyInflation uint64 // central state emission per 24h
	Supply         uint64 // circulating supply of the reward token
	Multiplier     uint64 // percentage of inflation this claimant class receives

	StakeAmount uint64 // claimant's staked units
	TotalStaked uint64 // pool total
}

// pipeline chains checked 128-bit steps; the first failure sticks and
// short-circuits all later steps.
type pipeline struct {
	v   uint256.Int
	err error
}

func (p *pipeline) mul(m uint64) *pipeline {
	if p.err != nil {
		return p
	}
	p.v.Mul(&p.v, uint256.NewInt(m))
	if p.v.BitLen() > 128 {
		p.err = ErrOverflow
	}
	return p
}

func (p *pipeline) div(d uint64) *pipeline {
	if p.err != nil {
		return p
	}
	if d == 0 {
		p.err = ErrOverflow
		return p
	}
	// truncating division, deliberately: rewards round down so the sum
	// over all claimants never exceeds the entitled share
	p.v.Div(&p.v, uint256.NewInt(d))
	return p
}

func (p *pipeline) uint64() (uint64, error) {
	if p.err != nil {
		return 0, p.err
	}
	if !p.v.IsUint64() {
		return 0, ErrOverflow
	}
	return p.v.Uint64(), nil
}

// Basis returns the accumulated inflation over [lastTime, currentTime],
// linearly scaling dailyInflation by elapsed seconds. The result stays
// in the widened domain for the caller's division chain.
func Basis(currentTime, lastTime int64, dailyInflation uint64) (*uint256.Int, error) {
	if currentTime < lastTime {
		return nil, ErrOverflow
	}
	elapsed := uint64(currentTime - lastTime)

	p := &pipeline{}
	p.v.SetUint64(dailyInflation)
	p.mul(elapsed).div(uint64(stakemint.SecondsInDay))
	if p.err != nil {
		return nil, p.err
	}
	return p.v.Clone(), nil
}

// Calc computes
//
//	floor(floor(floor(basis/supply) * multiplier/100) * stake/total)
//
// in exactly that order. The ordering is part of the contract: each
// truncation is observable, so a reordered but algebraically equal
// formula pays different amounts.
func Calc(params Params) (uint64, error) {
	basis, err := Basis(params.CurrentTime, params.LastClaimedTime, params.DailyInflation)
	if err != nil {
		return 0, err
	}

	p := &pipeline{v: *basis}
	return p.
		div(params.Supply).
		mul(params.Multiplier).
		div(100).
		mul(params.StakeAmount).
		div(params.TotalStaked).
		uint64()
}
