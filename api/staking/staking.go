// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package staking exposes the rewards ledger over HTTP: record reads,
// reward previews, signed claims and the permissionless pool crank.
package staking

import (
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/stakemint/stakemint/api/utils"
	"github.com/stakemint/stakemint/ledger"
	"github.com/stakemint/stakemint/program"
	"github.com/stakemint/stakemint/stakemint"
	"github.com/stakemint/stakemint/token"
)

type Staking struct {
	prog *program.Program
	now  func() int64
}

// New creates the staking API over a program. now supplies the
// operation time for mutations and previews.
func New(prog *program.Program, now func() int64) *Staking {
	return &Staking{prog, now}
}

func (s *Staking) handleGetCentralState(w http.ResponseWriter, _ *http.Request) error {
	addr, state, err := s.centralState()
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &CentralState{
		Address:        addr.String(),
		SignerNonce:    state.SignerNonce,
		DailyInflation: state.DailyInflation,
		TokenMint:      state.TokenMint.String(),
	})
}

func (s *Staking) handleGetStakePool(w http.ResponseWriter, req *http.Request) error {
	addr, err := s.pathAddress(req)
	if err != nil {
		return err
	}
	pool, err := s.prog.GetStakePool(addr)
	if err != nil {
		return utils.NotFound(err)
	}
	_, state, err := s.centralState()
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &StakePool{
		Address:            addr.String(),
		Name:               pool.Name,
		Owner:              pool.Owner.String(),
		TotalStaked:        pool.TotalStaked,
		LastCrankTime:      pool.LastCrankTime,
		RewardsDestination: pool.RewardsDestination.String(),
		Vault:              token.AccountAddress(state.TokenMint, addr).String(),
	})
}

func (s *Staking) handleGetStakeAccount(w http.ResponseWriter, req *http.Request) error {
	addr, err := s.pathAddress(req)
	if err != nil {
		return err
	}
	account, err := s.prog.GetStakeAccount(addr)
	if err != nil {
		return utils.NotFound(err)
	}
	return utils.WriteJSON(w, &StakeAccount{
		Address:         addr.String(),
		Owner:           account.Owner.String(),
		StakePool:       account.StakePool.String(),
		StakeAmount:     account.StakeAmount,
		LastClaimedTime: account.LastClaimedTime,
	})
}

func (s *Staking) handleGetPendingRewards(w http.ResponseWriter, req *http.Request) error {
	addr, err := s.pathAddress(req)
	if err != nil {
		return err
	}
	at := s.now()
	if v := req.URL.Query().Get("at"); v != "" {
		at, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return utils.BadRequest(errors.WithMessage(err, "at"))
		}
	}
	amount, err := s.prog.PendingRewards(at, addr)
	if err != nil {
		return s.operationError(err)
	}
	return utils.WriteJSON(w, &PendingRewards{Amount: amount, At: at})
}

func (s *Staking) handleClaim(w http.ResponseWriter, req *http.Request) error {
	var claim ClaimRequest
	if err := utils.ParseJSON(req.Body, &claim); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}

	pub, err := crypto.SigToPub(ClaimDigest(claim.StakeAccount, claim.RewardsDestination), claim.Signature)
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "signature"))
	}
	owner := stakemint.AddressFromPubKey(pub)

	account, err := s.prog.GetStakeAccount(claim.StakeAccount)
	if err != nil {
		return utils.NotFound(err)
	}
	central, state, err := s.centralState()
	if err != nil {
		return err
	}

	env := program.NewEnv(s.prog.Namespace(), s.now()).WithSigner(owner)
	claimed, err := s.prog.ClaimRewards(env, program.ClaimRewardsParams{
		StakePool:          account.StakePool,
		StakeAccount:       claim.StakeAccount,
		Owner:              owner,
		RewardsDestination: claim.RewardsDestination,
		CentralState:       central,
		Mint:               state.TokenMint,
	})
	if err != nil {
		return s.operationError(err)
	}
	return utils.WriteJSON(w, &ClaimResult{Claimed: claimed})
}

func (s *Staking) handleCrank(w http.ResponseWriter, req *http.Request) error {
	addr, err := s.pathAddress(req)
	if err != nil {
		return err
	}
	central, state, err := s.centralState()
	if err != nil {
		return err
	}

	env := program.NewEnv(s.prog.Namespace(), s.now())
	claimed, err := s.prog.ClaimPoolRewards(env, program.ClaimPoolRewardsParams{
		StakePool:    addr,
		CentralState: central,
		Mint:         state.TokenMint,
	})
	if err != nil {
		return s.operationError(err)
	}
	return utils.WriteJSON(w, &ClaimResult{Claimed: claimed})
}

func (s *Staking) centralState() (stakemint.Address, *ledger.CentralState, error) {
	addr, err := s.prog.CentralStateAddress()
	if err != nil {
		return stakemint.Address{}, nil, err
	}
	state, err := s.prog.GetCentralState(addr)
	if err != nil {
		return stakemint.Address{}, nil, utils.NotFound(err)
	}
	return addr, state, nil
}

func (s *Staking) pathAddress(req *http.Request) (stakemint.Address, error) {
	addr, err := stakemint.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return stakemint.Address{}, utils.BadRequest(errors.WithMessage(err, "address"))
	}
	return addr, nil
}

// operationError maps program failures onto HTTP statuses:
// authorization failures forbid, everything else is the caller's
// request being wrong.
func (s *Staking) operationError(err error) error {
	switch err {
	case program.ErrMustSign,
		program.ErrStakeAccountOwnerMismatch:
		return utils.Forbidden(err)
	default:
		return utils.BadRequest(err)
	}
}

func (s *Staking) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("/central-state").
		Methods(http.MethodGet).
		Name("GET /staking/central-state").
		HandlerFunc(utils.WrapHandlerFunc(s.handleGetCentralState))
	sub.Path("/pools/{address}").
		Methods(http.MethodGet).
		Name("GET /staking/pools/{address}").
		HandlerFunc(utils.WrapHandlerFunc(s.handleGetStakePool))
	sub.Path("/pools/{address}/crank").
		Methods(http.MethodPost).
		Name("POST /staking/pools/{address}/crank").
		HandlerFunc(utils.WrapHandlerFunc(s.handleCrank))
	sub.Path("/accounts/{address}").
		Methods(http.MethodGet).
		Name("GET /staking/accounts/{address}").
		HandlerFunc(utils.WrapHandlerFunc(s.handleGetStakeAccount))
	sub.Path("/accounts/{address}/rewards").
		Methods(http.MethodGet).
		Name("GET /staking/accounts/{address}/rewards").
		HandlerFunc(utils.WrapHandlerFunc(s.handleGetPendingRewards))
	sub.Path("/claims").
		Methods(http.MethodPost).
		Name("POST /staking/claims").
		HandlerFunc(utils.WrapHandlerFunc(s.handleClaim))
}
