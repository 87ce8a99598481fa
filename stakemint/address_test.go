// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakemint

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	addr := BytesToAddress([]byte("pool"))

	parsed, err := ParseAddress(addr.String())
	assert.NoError(t, err)
	assert.Equal(t, addr, parsed)

	// without 0x prefix
	parsed, err = ParseAddress(addr.String()[2:])
	assert.NoError(t, err)
	assert.Equal(t, addr, parsed)

	_, err = ParseAddress("0x1234")
	assert.Error(t, err)

	_, err = ParseAddress("zz" + addr.String()[2:])
	assert.Error(t, err)
}

func TestAddressJSON(t *testing.T) {
	addr := BytesToAddress([]byte("staker"))

	data, err := json.Marshal(&addr)
	require.NoError(t, err)

	var decoded Address
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, addr, decoded)
}

func TestBytesToAddress(t *testing.T) {
	// short input is extended from the left
	assert.Equal(t, Address{31: 0x1}, BytesToAddress([]byte{0x1}))

	// long input is cropped from the left
	long := make([]byte, 40)
	long[39] = 0x7
	assert.Equal(t, Address{31: 0x7}, BytesToAddress(long))
}

func TestAddressFromPubKey(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	addr := AddressFromPubKey(&key.PublicKey)
	assert.False(t, addr.IsZero())
	assert.Equal(t, addr, AddressFromPubKey(&key.PublicKey))
}
