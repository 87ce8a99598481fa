// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakemint

import (
	"io"

	"filippo.io/edwards25519"
	"github.com/pkg/errors"
)

// derivedMarker salts every derivation so a derived address can never be
// confused with a plain blake2b checksum of the same seeds.
const derivedMarker = "stakemint:derived"

// ErrNotDerivable is returned when candidate seeds map into the external
// key space. The caller should retry with different seeds (usually by
// bumping a nonce).
var ErrNotDerivable = errors.New("address not derivable from seeds")

// DeriveAddress maps an ordered sequence of seeds to a deterministic
// address under the given namespace.
//
// External parties identify themselves with ed25519 public keys. A derived
// address must provably have no private key, so any candidate that decodes
// as a valid curve point is rejected with ErrNotDerivable: holding a
// derivable address is then a capability only program logic can exercise,
// never a forgeable credential.
func DeriveAddress(namespace Address, seeds ...[]byte) (Address, error) {
	candidate := Blake2bFn(func(w io.Writer) {
		w.Write(namespace[:])
		for _, seed := range seeds {
			w.Write(seed)
		}
		w.Write([]byte(derivedMarker))
	})

	if _, err := new(edwards25519.Point).SetBytes(candidate[:]); err == nil {
		// candidate collides with the ed25519 key space
		return Address{}, ErrNotDerivable
	}
	return candidate, nil
}

// FindDerivedAddress searches for a usable nonce, highest first, such that
// DeriveAddress(namespace, seeds..., [nonce]) succeeds. About half of all
// candidates land on the curve, so the search terminates almost surely
// within a few probes.
func FindDerivedAddress(namespace Address, seeds ...[]byte) (Address, uint8, error) {
	for i := 255; i >= 0; i-- {
		nonce := uint8(i)
		addr, err := DeriveAddress(namespace, append(seeds, []byte{nonce})...)
		if err == nil {
			return addr, nonce, nil
		}
	}
	return Address{}, 0, errors.New("no usable nonce for seeds")
}
