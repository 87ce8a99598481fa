// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/stakemint/stakemint/stakemint"
)

// StakeAccountLen is the fixed byte length of an encoded stake account:
// tag + owner + stake_pool + stake_amount + last_claimed_time.
const StakeAccountLen = 1 + 32 + 32 + 8 + 8

// StakeAccount tracks one staker's position in one pool. Only Owner may
// claim on it; the record itself lives in shared storage readable by
// anyone.
type StakeAccount struct {
	Owner stakemint.Address

	// the pool this account belongs to; every operation presenting a
	// pool must present this one
	StakePool stakemint.Address

	StakeAmount uint64

	// upper boundary of the last reward period already paid out;
	// monotonically non-decreasing
	LastClaimedTime int64
}

// StakeAccountAddress derives a stake account's address from its pool
// and owner.
func StakeAccountAddress(namespace, pool, owner stakemint.Address, nonce uint8) (stakemint.Address, error) {
	return stakemint.DeriveAddress(namespace, []byte("stake_account"), pool.Bytes(), owner.Bytes(), []byte{nonce})
}

// FindStakeAccountAddress searches the usable nonce for a stake
// account's seeds.
func FindStakeAccountAddress(namespace, pool, owner stakemint.Address) (stakemint.Address, uint8, error) {
	return stakemint.FindDerivedAddress(namespace, []byte("stake_account"), pool.Bytes(), owner.Bytes())
}

// Encode writes the fixed stake account layout.
func (sa *StakeAccount) Encode() []byte {
	data := make([]byte, StakeAccountLen)
	data[0] = byte(TagStakeAccount)
	copy(data[1:33], sa.Owner.Bytes())
	copy(data[33:65], sa.StakePool.Bytes())
	binary.LittleEndian.PutUint64(data[65:73], sa.StakeAmount)
	binary.LittleEndian.PutUint64(data[73:81], uint64(sa.LastClaimedTime))
	return data
}

// DecodeStakeAccount reads a stake account record, enforcing its tag.
func DecodeStakeAccount(data []byte) (*StakeAccount, error) {
	if err := checkTag(data, TagStakeAccount); err != nil {
		return nil, err
	}
	if len(data) != StakeAccountLen {
		return nil, errors.Errorf("bad stake account length %d", len(data))
	}
	return &StakeAccount{
		Owner:           stakemint.BytesToAddress(data[1:33]),
		StakePool:       stakemint.BytesToAddress(data[33:65]),
		StakeAmount:     binary.LittleEndian.Uint64(data[65:73]),
		LastClaimedTime: int64(binary.LittleEndian.Uint64(data[73:81])),
	}, nil
}
