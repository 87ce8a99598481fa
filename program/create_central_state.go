// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package program

import (
	"github.com/stakemint/stakemint/ledger"
	"github.com/stakemint/stakemint/stakemint"
	"github.com/stakemint/stakemint/store"
)

// CreateCentralStateParams are the inputs of CreateCentralState.
type CreateCentralStateParams struct {
	// the caller-supplied target address; must reproduce the derivation
	StateAccount stakemint.Address

	SignerNonce    uint8
	DailyInflation uint64
	TokenMint      stakemint.Address
}

// CreateCentralState creates the singleton inflation authority at its
// derived address. Re-running against an initialized address fails on
// the storage allocation precondition.
func (p *Program) CreateCentralState(env *Env, params CreateCentralStateParams) (err error) {
	defer func() { observeOp("create_central_state", err) }()

	stage := p.store.NewStage()
	if err = p.CreateCentralStateIn(stage, params); err != nil {
		return err
	}
	if err = stage.Commit(); err != nil {
		return err
	}
	logger.Info("central state created",
		"address", params.StateAccount,
		"dailyInflation", params.DailyInflation,
		"mint", params.TokenMint)
	return nil
}

// CreateCentralStateIn writes the central state into an existing stage,
// so bootstrap callers can bundle it with their other writes in a
// single commit.
func (p *Program) CreateCentralStateIn(stage *store.Stage, params CreateCentralStateParams) error {
	derived, err := ledger.CentralStateAddress(p.namespace, params.SignerNonce)
	if err != nil {
		return ErrAccountNotDeterministic
	}
	if err := checkKey(params.StateAccount, derived, ErrAccountNotDeterministic); err != nil {
		return err
	}
	if err := stage.Allocate(params.StateAccount, p.namespace, ledger.CentralStateLen); err != nil {
		return err
	}
	state := ledger.NewCentralState(params.SignerNonce, params.DailyInflation, params.TokenMint)
	return stage.Put(params.StateAccount, state.Encode())
}
