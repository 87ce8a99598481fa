// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package program

import (
	"github.com/stakemint/stakemint/stakemint"
)

// Env is the execution environment of one operation: the observed
// wall-clock time and the authorization proofs attached to the call.
// The surrounding transport verifies signatures before building an Env,
// so an identity in the signer set is a verified one.
type Env struct {
	// Time is the current unix time in seconds, read once per
	// operation so every step observes the same instant.
	Time int64

	namespace stakemint.Address
	signers   map[stakemint.Address]struct{}
	proofs    [][][]byte
}

// NewEnv creates an environment for one operation under the given
// program namespace.
func NewEnv(namespace stakemint.Address, time int64) *Env {
	return &Env{
		Time:      time,
		namespace: namespace,
		signers:   make(map[stakemint.Address]struct{}),
	}
}

// WithSigner records that id signed the current call.
func (e *Env) WithSigner(id stakemint.Address) *Env {
	e.signers[id] = struct{}{}
	return e
}

// WithDerivationProof attaches seeds claimed to reproduce a derived
// identity. The proof authorizes acting as that identity without a
// signature: reproducing the derivation is itself the credential.
func (e *Env) WithDerivationProof(seeds [][]byte) *Env {
	e.proofs = append(e.proofs, seeds)
	return e
}

// IsSigner reports whether id signed the call.
func (e *Env) IsSigner(id stakemint.Address) bool {
	_, ok := e.signers[id]
	return ok
}

// Authorized reports whether id authorized the call, by signature or by
// a derivation proof reproducing id under the program namespace.
// Implements token.Authorizer.
func (e *Env) Authorized(id stakemint.Address) bool {
	if e.IsSigner(id) {
		return true
	}
	for _, seeds := range e.proofs {
		derived, err := stakemint.DeriveAddress(e.namespace, seeds...)
		if err == nil && derived == id {
			return true
		}
	}
	return false
}
