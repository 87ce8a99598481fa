// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reward

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakemint/stakemint/stakemint"
)

func TestBasis(t *testing.T) {
	// one full day accrues exactly the daily inflation
	basis, err := Basis(stakemint.SecondsInDay, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), basis.Uint64())

	// half a day accrues half
	basis, err = Basis(stakemint.SecondsInDay/2, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), basis.Uint64())

	// zero elapsed accrues nothing
	basis, err = Basis(42, 42, 1000)
	require.NoError(t, err)
	assert.True(t, basis.IsZero())

	// time going backwards is a hard failure
	_, err = Basis(41, 42, 1000)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestCalcExactOrdering(t *testing.T) {
	// truncation zeroes out small claims
	got, err := Calc(Params{
		CurrentTime:     43200,
		LastClaimedTime: 0,
		DailyInflation:  864000,
		Supply:          1_000_000,
		Multiplier:      50,
		StakeAmount:     100,
		TotalStaked:     1000,
	})
	require.NoError(t, err)
	// basis=432000; 432000/1000000 truncates to 0 before anything else
	assert.Equal(t, uint64(0), got)

	// same shape with a supply small enough to survive the first division
	got, err = Calc(Params{
		CurrentTime:     43200,
		LastClaimedTime: 0,
		DailyInflation:  864000,
		Supply:          1000,
		Multiplier:      50,
		StakeAmount:     100,
		TotalStaked:     1000,
	})
	require.NoError(t, err)
	// 432000/1000=432; 432*50/100=216; 216*100/1000=21 (21.6 floors)
	assert.Equal(t, uint64(21), got)
}

func TestCalcZeroElapsed(t *testing.T) {
	got, err := Calc(Params{
		CurrentTime:     1700000000,
		LastClaimedTime: 1700000000,
		DailyInflation:  math.MaxUint64,
		Supply:          1,
		Multiplier:      100,
		StakeAmount:     1,
		TotalStaked:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got)
}

func TestCalcSoleStaker(t *testing.T) {
	// a sole staker receives the full per-pool share
	params := Params{
		CurrentTime:     stakemint.SecondsInDay,
		LastClaimedTime: 0,
		DailyInflation:  1_000_000,
		Supply:          100,
		Multiplier:      50,
		StakeAmount:     777,
		TotalStaked:     777,
	}
	got, err := Calc(params)
	require.NoError(t, err)
	// 1000000/100=10000; *50/100=5000; *777/777=5000
	assert.Equal(t, uint64(5000), got)
}

func TestCalcSplitNeverExceedsWhole(t *testing.T) {
	base := Params{
		CurrentTime:     90000,
		LastClaimedTime: 0,
		DailyInflation:  999_999,
		Supply:          7,
		Multiplier:      50,
		TotalStaked:     1000,
	}

	whole := base
	whole.StakeAmount = 1000
	wholeReward, err := Calc(whole)
	require.NoError(t, err)

	a := base
	a.StakeAmount = 333
	aReward, err := Calc(a)
	require.NoError(t, err)

	b := base
	b.StakeAmount = 667
	bReward, err := Calc(b)
	require.NoError(t, err)

	assert.LessOrEqual(t, aReward+bReward, wholeReward)
}

func TestCalcZeroDivisors(t *testing.T) {
	params := Params{
		CurrentTime:    1000,
		DailyInflation: 1000,
		Supply:         0,
		Multiplier:     50,
		StakeAmount:    10,
		TotalStaked:    100,
	}
	_, err := Calc(params)
	assert.ErrorIs(t, err, ErrOverflow)

	params.Supply = 100
	params.TotalStaked = 0
	_, err = Calc(params)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestCalcDowncastOverflow(t *testing.T) {
	// a computed value above 64 bits must refuse to downcast
	_, err := Calc(Params{
		CurrentTime:     stakemint.SecondsInDay * 1_000_000,
		LastClaimedTime: 0,
		DailyInflation:  math.MaxUint64,
		Supply:          1,
		Multiplier:      100,
		StakeAmount:     1,
		TotalStaked:     1,
	})
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestCalcIntermediate128BitOverflow(t *testing.T) {
	// basis survives at ~2^63; multiplying by a huge stake amount
	// overflows the 128-bit domain before the final division rescues it
	_, err := Calc(Params{
		CurrentTime:     stakemint.SecondsInDay * (1 << 30),
		LastClaimedTime: 0,
		DailyInflation:  math.MaxUint64,
		Supply:          1,
		Multiplier:      100,
		StakeAmount:     math.MaxUint64,
		TotalStaked:     math.MaxUint64,
	})
	assert.ErrorIs(t, err, ErrOverflow)
}
