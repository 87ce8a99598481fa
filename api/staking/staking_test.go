// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakemint/stakemint/ledger"
	"github.com/stakemint/stakemint/lvldb"
	"github.com/stakemint/stakemint/program"
	"github.com/stakemint/stakemint/stakemint"
	"github.com/stakemint/stakemint/store"
	"github.com/stakemint/stakemint/token"
)

const (
	startTime = int64(1_700_000_000)
	inflation = uint64(1_000_000)
	supply    = uint64(1000)
)

type testServer struct {
	t   *testing.T
	url string

	prog         *program.Program
	now          int64
	stakerKey    *ecdsa.PrivateKey
	staker       stakemint.Address
	stakerWall   stakemint.Address
	central      stakemint.Address
	mint         stakemint.Address
	pool         stakemint.Address
	poolDest     stakemint.Address
	stakeAccount stakemint.Address
}

func newTestServer(t *testing.T) *testServer {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	namespace := stakemint.Blake2b([]byte("api-test"))
	prog := program.New(namespace, store.New(db))

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	ts := &testServer{
		t:         t,
		prog:      prog,
		now:       startTime + stakemint.SecondsInDay,
		stakerKey: key,
		staker:    stakemint.AddressFromPubKey(&key.PublicKey),
		mint:      stakemint.Blake2b([]byte("api-test-mint")),
	}

	var nonce uint8
	ts.central, nonce, err = stakemint.FindDerivedAddress(namespace, namespace.Bytes())
	require.NoError(t, err)

	stage := prog.Store().NewStage()
	require.NoError(t, token.CreateMint(stage, ts.mint, ts.central))
	ts.stakerWall, err = token.CreateAccount(stage, ts.mint, ts.staker)
	require.NoError(t, err)
	require.NoError(t, stage.Commit())

	env := program.NewEnv(namespace, startTime)
	require.NoError(t, prog.CreateCentralState(env, program.CreateCentralStateParams{
		StateAccount:   ts.central,
		SignerNonce:    nonce,
		DailyInflation: inflation,
		TokenMint:      ts.mint,
	}))

	stage = prog.Store().NewStage()
	env = program.NewEnv(namespace, startTime).
		WithDerivationProof(ledger.CentralStateSeeds(namespace, nonce))
	require.NoError(t, token.MintTo(stage, ts.mint, ts.stakerWall, ts.central, supply, env))
	require.NoError(t, stage.Commit())

	// a pool with the staker's whole wallet staked
	poolOwner := stakemint.Blake2b([]byte("pool-owner"))
	stage = prog.Store().NewStage()
	ts.poolDest, err = token.CreateAccount(stage, ts.mint, poolOwner)
	require.NoError(t, err)
	require.NoError(t, stage.Commit())

	var poolNonce uint8
	ts.pool, poolNonce, err = ledger.FindStakePoolAddress(namespace, "api-pool", poolOwner)
	require.NoError(t, err)
	require.NoError(t, prog.CreateStakePool(program.NewEnv(namespace, startTime).WithSigner(poolOwner), program.CreateStakePoolParams{
		PoolAccount:        ts.pool,
		Nonce:              poolNonce,
		Name:               "api-pool",
		Owner:              poolOwner,
		RewardsDestination: ts.poolDest,
		CentralState:       ts.central,
	}))

	var accountNonce uint8
	ts.stakeAccount, accountNonce, err = ledger.FindStakeAccountAddress(namespace, ts.pool, ts.staker)
	require.NoError(t, err)
	require.NoError(t, prog.CreateStakeAccount(program.NewEnv(namespace, startTime), program.CreateStakeAccountParams{
		StakeAccount: ts.stakeAccount,
		Nonce:        accountNonce,
		Owner:        ts.staker,
		StakePool:    ts.pool,
	}))
	require.NoError(t, prog.Stake(program.NewEnv(namespace, startTime).WithSigner(ts.staker), program.StakeParams{
		StakeAccount: ts.stakeAccount,
		StakePool:    ts.pool,
		Owner:        ts.staker,
		CentralState: ts.central,
		Source:       ts.stakerWall,
		Amount:       500,
	}))

	router := mux.NewRouter()
	New(prog, func() int64 { return ts.now }).Mount(router, "/staking")
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	ts.url = server.URL
	return ts
}

func (ts *testServer) get(path string) (int, []byte) {
	res, err := http.Get(ts.url + path)
	require.NoError(ts.t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(ts.t, err)
	return res.StatusCode, body
}

func (ts *testServer) post(path string, obj any) (int, []byte) {
	data, err := json.Marshal(obj)
	require.NoError(ts.t, err)
	res, err := http.Post(ts.url+path, "application/json", bytes.NewReader(data))
	require.NoError(ts.t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(ts.t, err)
	return res.StatusCode, body
}

func (ts *testServer) signClaim(dest stakemint.Address) []byte {
	sig, err := crypto.Sign(ClaimDigest(ts.stakeAccount, dest), ts.stakerKey)
	require.NoError(ts.t, err)
	return sig
}

func TestGetCentralState(t *testing.T) {
	ts := newTestServer(t)

	code, body := ts.get("/staking/central-state")
	require.Equal(t, http.StatusOK, code)

	var state CentralState
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, ts.central.String(), state.Address)
	assert.Equal(t, inflation, state.DailyInflation)
	assert.Equal(t, ts.mint.String(), state.TokenMint)
}

func TestGetStakePool(t *testing.T) {
	ts := newTestServer(t)

	code, body := ts.get("/staking/pools/" + ts.pool.String())
	require.Equal(t, http.StatusOK, code)

	var pool StakePool
	require.NoError(t, json.Unmarshal(body, &pool))
	assert.Equal(t, "api-pool", pool.Name)
	assert.Equal(t, uint64(500), pool.TotalStaked)
	assert.Equal(t, token.AccountAddress(ts.mint, ts.pool).String(), pool.Vault)

	// bad address
	code, _ = ts.get("/staking/pools/nothex")
	assert.Equal(t, http.StatusBadRequest, code)

	// unknown pool
	code, _ = ts.get("/staking/pools/" + stakemint.Blake2b([]byte("nowhere")).String())
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetStakeAccount(t *testing.T) {
	ts := newTestServer(t)

	code, body := ts.get("/staking/accounts/" + ts.stakeAccount.String())
	require.Equal(t, http.StatusOK, code)

	var account StakeAccount
	require.NoError(t, json.Unmarshal(body, &account))
	assert.Equal(t, ts.staker.String(), account.Owner)
	assert.Equal(t, ts.pool.String(), account.StakePool)
	assert.Equal(t, uint64(500), account.StakeAmount)
}

func TestGetPendingRewards(t *testing.T) {
	ts := newTestServer(t)

	// one full day accrued at the server clock
	code, body := ts.get("/staking/accounts/" + ts.stakeAccount.String() + "/rewards")
	require.Equal(t, http.StatusOK, code)

	var pending PendingRewards
	require.NoError(t, json.Unmarshal(body, &pending))
	assert.Equal(t, uint64(500), pending.Amount)
	assert.Equal(t, ts.now, pending.At)

	// explicit boundary pays nothing
	code, body = ts.get(fmt.Sprintf("/staking/accounts/%s/rewards?at=%d", ts.stakeAccount, startTime))
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &pending))
	assert.Equal(t, uint64(0), pending.Amount)

	code, _ = ts.get("/staking/accounts/" + ts.stakeAccount.String() + "/rewards?at=notanumber")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestClaim(t *testing.T) {
	ts := newTestServer(t)

	code, body := ts.post("/staking/claims", &ClaimRequest{
		StakeAccount:       ts.stakeAccount,
		RewardsDestination: ts.stakerWall,
		Signature:          ts.signClaim(ts.stakerWall),
	})
	require.Equal(t, http.StatusOK, code, string(body))

	var result ClaimResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, uint64(500), result.Claimed)

	// the payout landed
	account, err := token.GetAccount(ts.prog.Store().NewStage(), ts.stakerWall)
	require.NoError(t, err)
	assert.Equal(t, supply-500+500, account.Amount)

	// replaying the same claim pays nothing more
	code, body = ts.post("/staking/claims", &ClaimRequest{
		StakeAccount:       ts.stakeAccount,
		RewardsDestination: ts.stakerWall,
		Signature:          ts.signClaim(ts.stakerWall),
	})
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, uint64(0), result.Claimed)
}

func TestClaimForbidden(t *testing.T) {
	ts := newTestServer(t)

	// a signature from a stranger recovers a non-owner identity
	otherKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	sig, err := crypto.Sign(ClaimDigest(ts.stakeAccount, ts.stakerWall), otherKey)
	require.NoError(t, err)

	code, _ := ts.post("/staking/claims", &ClaimRequest{
		StakeAccount:       ts.stakeAccount,
		RewardsDestination: ts.stakerWall,
		Signature:          sig,
	})
	assert.Equal(t, http.StatusForbidden, code)

	// a mangled signature fails recovery outright
	code, _ = ts.post("/staking/claims", &ClaimRequest{
		StakeAccount:       ts.stakeAccount,
		RewardsDestination: ts.stakerWall,
		Signature:          []byte{1, 2, 3},
	})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCrank(t *testing.T) {
	ts := newTestServer(t)

	code, body := ts.post("/staking/pools/"+ts.pool.String()+"/crank", nil)
	require.Equal(t, http.StatusOK, code, string(body))

	var result ClaimResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, uint64(500), result.Claimed)

	dest, err := token.GetAccount(ts.prog.Store().NewStage(), ts.poolDest)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), dest.Amount)
}
