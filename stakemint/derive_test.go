// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakemint

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAddressDeterministic(t *testing.T) {
	ns := BytesToAddress([]byte("namespace"))

	addr, nonce, err := FindDerivedAddress(ns, []byte("seed"))
	require.NoError(t, err)

	again, err := DeriveAddress(ns, []byte("seed"), []byte{nonce})
	require.NoError(t, err)
	assert.Equal(t, addr, again)

	// different namespace, different address
	other, _, err := FindDerivedAddress(BytesToAddress([]byte("other")), []byte("seed"))
	require.NoError(t, err)
	assert.NotEqual(t, addr, other)
}

func TestDeriveAddressOffCurve(t *testing.T) {
	ns := BytesToAddress([]byte("namespace"))

	for _, seed := range [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")} {
		addr, _, err := FindDerivedAddress(ns, seed)
		require.NoError(t, err)

		// a derived address must never decode as an ed25519 point
		_, err = new(edwards25519.Point).SetBytes(addr.Bytes())
		assert.Error(t, err)
	}
}

func TestDeriveAddressRejectsKeySpace(t *testing.T) {
	// every real public key must fail the off-curve test DeriveAddress
	// applies, proving the two spaces cannot overlap
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	_, err = new(edwards25519.Point).SetBytes(pub)
	assert.NoError(t, err)
}

func TestFindDerivedAddressStable(t *testing.T) {
	ns := BytesToAddress([]byte("ns"))

	addr1, nonce1, err := FindDerivedAddress(ns, []byte("pool"), []byte("owner"))
	require.NoError(t, err)
	addr2, nonce2, err := FindDerivedAddress(ns, []byte("pool"), []byte("owner"))
	require.NoError(t, err)

	assert.Equal(t, addr1, addr2)
	assert.Equal(t, nonce1, nonce2)
}
