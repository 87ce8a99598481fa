// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/stakemint/stakemint/stakemint"
)

// CentralStateLen is the fixed byte length of an encoded central state:
// tag + nonce + inflation + mint.
const CentralStateLen = 1 + 1 + 8 + 32

// CentralState is the singleton inflation authority. It is created once
// per deployment at an address derived from the namespace and its own
// signer nonce, and never mutated afterwards.
type CentralState struct {
	// part of the seed deriving this record's own address, and the
	// proof material for transfers it authorizes
	SignerNonce uint8

	// token amount minted network-wide per 24h period
	DailyInflation uint64

	// the token this authority may emit
	TokenMint stakemint.Address
}

// NewCentralState assembles a central state record.
func NewCentralState(signerNonce uint8, dailyInflation uint64, tokenMint stakemint.Address) *CentralState {
	return &CentralState{
		SignerNonce:    signerNonce,
		DailyInflation: dailyInflation,
		TokenMint:      tokenMint,
	}
}

// CentralStateAddress derives the central state's own address from the
// namespace and the signer nonce.
func CentralStateAddress(namespace stakemint.Address, signerNonce uint8) (stakemint.Address, error) {
	return stakemint.DeriveAddress(namespace, namespace.Bytes(), []byte{signerNonce})
}

// CentralStateSeeds returns the seeds reproducing the central state
// derivation, used as the transfer authorization proof.
func CentralStateSeeds(namespace stakemint.Address, signerNonce uint8) [][]byte {
	return [][]byte{namespace.Bytes(), {signerNonce}}
}

// Encode writes the fixed 42-byte layout.
func (cs *CentralState) Encode() []byte {
	data := make([]byte, CentralStateLen)
	data[0] = byte(TagCentralState)
	data[1] = cs.SignerNonce
	binary.LittleEndian.PutUint64(data[2:10], cs.DailyInflation)
	copy(data[10:42], cs.TokenMint.Bytes())
	return data
}

// DecodeCentralState reads a central state record, enforcing its tag.
func DecodeCentralState(data []byte) (*CentralState, error) {
	if err := checkTag(data, TagCentralState); err != nil {
		return nil, err
	}
	if len(data) != CentralStateLen {
		return nil, errors.Errorf("bad central state length %d", len(data))
	}
	return &CentralState{
		SignerNonce:    data[1],
		DailyInflation: binary.LittleEndian.Uint64(data[2:10]),
		TokenMint:      stakemint.BytesToAddress(data[10:42]),
	}, nil
}
