// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

// leading kind byte keeps a mint from ever decoding as an account
const (
	kindMint    = 'M'
	kindAccount = 'A'
)

func encodeMint(m *Mint) []byte {
	data, err := rlp.EncodeToBytes(m)
	if err != nil {
		// all mint fields are rlp-encodable
		panic(err)
	}
	return append([]byte{kindMint}, data...)
}

func decodeMint(data []byte) (*Mint, error) {
	if len(data) == 0 || data[0] != kindMint {
		return nil, errors.New("region is not a mint")
	}
	var m Mint
	if err := rlp.DecodeBytes(data[1:], &m); err != nil {
		return nil, errors.Wrap(err, "decode mint")
	}
	return &m, nil
}

func encodeAccount(a *Account) []byte {
	data, err := rlp.EncodeToBytes(a)
	if err != nil {
		panic(err)
	}
	return append([]byte{kindAccount}, data...)
}

func decodeAccount(data []byte) (*Account, error) {
	if len(data) == 0 || data[0] != kindAccount {
		return nil, errors.New("region is not a token account")
	}
	var a Account
	if err := rlp.DecodeBytes(data[1:], &a); err != nil {
		return nil, errors.Wrap(err, "decode token account")
	}
	return &a, nil
}
