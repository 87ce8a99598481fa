// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakemint

// Constants of the rewards ledger.
const (
	// SecondsInDay is the accrual period daily_inflation is expressed over.
	SecondsInDay int64 = 3600 * 24

	// StakerMultiplier is the percentage of total inflation paid to
	// stakers. The remainder goes to pool owners through the crank.
	StakerMultiplier uint64 = 50
)

// Well-known identities.
var (
	// TokenAddress is the identity controlling every token mint and
	// token account region.
	TokenAddress = Blake2b([]byte("stakemint-token-module"))
)
