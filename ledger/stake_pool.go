// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/stakemint/stakemint/stakemint"
)

// stakePoolFixedLen is the encoded length before the variable name:
// tag + total_staked + last_crank_time + owner + rewards_destination +
// nonce + name length prefix.
const stakePoolFixedLen = 1 + 8 + 8 + 32 + 32 + 1 + 4

// MaxPoolNameLen bounds the variable part of the pool layout.
const MaxPoolNameLen = 64

// StakePool aggregates the capital staked under one owner.
type StakePool struct {
	// sum of StakeAmount over every stake account of this pool;
	// stake/unstake are the only writers and keep it exact
	TotalStaked uint64

	// last unix time pool-owner rewards were paid through the crank
	LastCrankTime int64

	Owner stakemint.Address

	// where pool-owner rewards are sent
	RewardsDestination stakemint.Address

	// address derivation seed material
	Nonce uint8
	Name  string
}

// StakePoolLen returns the encoded length for a pool with the given name.
func StakePoolLen(name string) int {
	return stakePoolFixedLen + len(name)
}

// StakePoolAddress derives a pool's address from its name and owner.
func StakePoolAddress(namespace stakemint.Address, name string, owner stakemint.Address, nonce uint8) (stakemint.Address, error) {
	return stakemint.DeriveAddress(namespace, []byte("stake_pool"), []byte(name), owner.Bytes(), []byte{nonce})
}

// StakePoolSeeds returns the seeds reproducing a pool derivation, used
// as the proof when the pool itself authorizes a transfer.
func StakePoolSeeds(name string, owner stakemint.Address, nonce uint8) [][]byte {
	return [][]byte{[]byte("stake_pool"), []byte(name), owner.Bytes(), {nonce}}
}

// FindStakePoolAddress searches the usable nonce for a pool's seeds.
func FindStakePoolAddress(namespace stakemint.Address, name string, owner stakemint.Address) (stakemint.Address, uint8, error) {
	return stakemint.FindDerivedAddress(namespace, []byte("stake_pool"), []byte(name), owner.Bytes())
}

// Encode writes the pool layout.
func (sp *StakePool) Encode() []byte {
	data := make([]byte, StakePoolLen(sp.Name))
	data[0] = byte(TagStakePool)
	binary.LittleEndian.PutUint64(data[1:9], sp.TotalStaked)
	binary.LittleEndian.PutUint64(data[9:17], uint64(sp.LastCrankTime))
	copy(data[17:49], sp.Owner.Bytes())
	copy(data[49:81], sp.RewardsDestination.Bytes())
	data[81] = sp.Nonce
	binary.LittleEndian.PutUint32(data[82:86], uint32(len(sp.Name)))
	copy(data[86:], sp.Name)
	return data
}

// DecodeStakePool reads a stake pool record, enforcing its tag.
func DecodeStakePool(data []byte) (*StakePool, error) {
	if err := checkTag(data, TagStakePool); err != nil {
		return nil, err
	}
	if len(data) < stakePoolFixedLen {
		return nil, errors.Errorf("bad stake pool length %d", len(data))
	}
	nameLen := binary.LittleEndian.Uint32(data[82:86])
	if nameLen > MaxPoolNameLen || len(data) != stakePoolFixedLen+int(nameLen) {
		return nil, errors.Errorf("bad stake pool name length %d", nameLen)
	}
	return &StakePool{
		TotalStaked:        binary.LittleEndian.Uint64(data[1:9]),
		LastCrankTime:      int64(binary.LittleEndian.Uint64(data[9:17])),
		Owner:              stakemint.BytesToAddress(data[17:49]),
		RewardsDestination: stakemint.BytesToAddress(data[49:81]),
		Nonce:              data[81],
		Name:               string(data[86:]),
	}, nil
}
