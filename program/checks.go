// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package program

import (
	"github.com/stakemint/stakemint/stakemint"
	"github.com/stakemint/stakemint/store"
)

// The authorization gate. Each check is a pure validation returning the
// caller-chosen kind on violation; operations run every check they need
// before touching any state, so an unauthorized call can never leave a
// partial mutation behind.

// checkKey fails with kind unless got equals want.
func checkKey(got, want stakemint.Address, kind error) error {
	if got != want {
		return kind
	}
	return nil
}

// checkController fails with kind unless the region is controlled by
// the expected identity.
func checkController(region *store.Region, want stakemint.Address, kind error) error {
	if region.Controller != want {
		return kind
	}
	return nil
}

// checkSigner fails with kind unless id signed the current call.
func checkSigner(env *Env, id stakemint.Address, kind error) error {
	if !env.IsSigner(id) {
		return kind
	}
	return nil
}
