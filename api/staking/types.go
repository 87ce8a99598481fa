// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/stakemint/stakemint/stakemint"
)

// CentralState is the central state response.
type CentralState struct {
	Address        string `json:"address"`
	SignerNonce    uint8  `json:"signerNonce"`
	DailyInflation uint64 `json:"dailyInflation"`
	TokenMint      string `json:"tokenMint"`
}

// StakePool is the stake pool response.
type StakePool struct {
	Address            string `json:"address"`
	Name               string `json:"name"`
	Owner              string `json:"owner"`
	TotalStaked        uint64 `json:"totalStaked"`
	LastCrankTime      int64  `json:"lastCrankTime"`
	RewardsDestination string `json:"rewardsDestination"`
	Vault              string `json:"vault"`
}

// StakeAccount is the stake account response.
type StakeAccount struct {
	Address         string `json:"address"`
	Owner           string `json:"owner"`
	StakePool       string `json:"stakePool"`
	StakeAmount     uint64 `json:"stakeAmount"`
	LastClaimedTime int64  `json:"lastClaimedTime"`
}

// PendingRewards is the reward preview response.
type PendingRewards struct {
	Amount uint64 `json:"amount"`
	At     int64  `json:"at"`
}

// ClaimRequest asks to pay out a stake account's accrued rewards.
// Signature is a recoverable secp256k1 signature of ClaimDigest; the
// recovered identity must be the stake account's owner.
type ClaimRequest struct {
	StakeAccount       stakemint.Address `json:"stakeAccount"`
	RewardsDestination stakemint.Address `json:"rewardsDestination"`
	Signature          hexutil.Bytes     `json:"signature"`
}

// ClaimDigest is the message a claimant signs.
func ClaimDigest(stakeAccount, rewardsDestination stakemint.Address) []byte {
	digest := stakemint.Blake2bFn(func(w io.Writer) {
		w.Write([]byte("stakemint:claim"))
		w.Write(stakeAccount.Bytes())
		w.Write(rewardsDestination.Bytes())
	})
	return digest.Bytes()
}

// ClaimResult reports the paid amount.
type ClaimResult struct {
	Claimed uint64 `json:"claimed"`
}
