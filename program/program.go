// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package program orchestrates every mutation of the rewards ledger.
// Each operation validates the presented records through the
// authorization gate, computes over the decoded fields, and commits all
// of its writes in one stage.
package program

import (
	"github.com/stakemint/stakemint/ledger"
	"github.com/stakemint/stakemint/log"
	"github.com/stakemint/stakemint/metrics"
	"github.com/stakemint/stakemint/stakemint"
	"github.com/stakemint/stakemint/store"
)

var (
	logger = log.WithContext("pkg", "program")

	metricOps     = metrics.LazyLoadCounterVec("operations_total", []string{"op", "result"})
	metricRewards = metrics.LazyLoadHistogram("claimed_reward_size", metrics.BucketRewards)
)

// Program binds the ledger logic to its namespace and backing store.
// Operations targeting different stake accounts are independent; the
// embedding environment must serialize calls touching the same record
// address, as the program holds no per-record locks.
type Program struct {
	namespace stakemint.Address
	store     *store.Store
}

// New creates a program instance over the given store.
func New(namespace stakemint.Address, store *store.Store) *Program {
	return &Program{namespace, store}
}

// Namespace returns the program's own identity.
func (p *Program) Namespace() stakemint.Address {
	return p.namespace
}

// Store returns the backing record store.
func (p *Program) Store() *store.Store {
	return p.store
}

// CentralStateAddress resolves the central state record address from
// the namespace alone, searching for the usable signer nonce.
func (p *Program) CentralStateAddress() (stakemint.Address, error) {
	addr, _, err := stakemint.FindDerivedAddress(p.namespace, p.namespace.Bytes())
	return addr, err
}

func observeOp(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metricOps().AddWithLabel(1, map[string]string{"op": op, "result": result})
}

// GetCentralState reads and validates the central state record.
func (p *Program) GetCentralState(addr stakemint.Address) (*ledger.CentralState, error) {
	region, err := p.store.Get(addr)
	if err != nil {
		return nil, err
	}
	if err := checkController(region, p.namespace, ErrWrongAccountOwner); err != nil {
		return nil, err
	}
	return ledger.DecodeCentralState(region.Data)
}

// GetStakePool reads and validates a stake pool record.
func (p *Program) GetStakePool(addr stakemint.Address) (*ledger.StakePool, error) {
	region, err := p.store.Get(addr)
	if err != nil {
		return nil, err
	}
	if err := checkController(region, p.namespace, ErrWrongStakePoolAccountOwner); err != nil {
		return nil, err
	}
	return ledger.DecodeStakePool(region.Data)
}

// GetStakeAccount reads and validates a stake account record.
func (p *Program) GetStakeAccount(addr stakemint.Address) (*ledger.StakeAccount, error) {
	region, err := p.store.Get(addr)
	if err != nil {
		return nil, err
	}
	if err := checkController(region, p.namespace, ErrWrongStakeAccountOwner); err != nil {
		return nil, err
	}
	return ledger.DecodeStakeAccount(region.Data)
}
