// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakemint/stakemint/lvldb"
	"github.com/stakemint/stakemint/stakemint"
)

func newTestStore(t *testing.T) *Store {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func TestStoreGetUnallocated(t *testing.T) {
	s := newTestStore(t)

	region, err := s.Get(stakemint.BytesToAddress([]byte("nobody")))
	require.NoError(t, err)
	assert.True(t, region.Controller.IsZero())
	assert.Empty(t, region.Data)

	exists, err := s.Exists(stakemint.BytesToAddress([]byte("nobody")))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStageAllocateAndCommit(t *testing.T) {
	s := newTestStore(t)

	id := stakemint.BytesToAddress([]byte("record"))
	controller := stakemint.BytesToAddress([]byte("program"))

	stage := s.NewStage()
	require.NoError(t, stage.Allocate(id, controller, 42))
	require.NoError(t, stage.Put(id, []byte{1, 2, 3}))

	// not visible through the store before commit
	exists, err := s.Exists(id)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, stage.Commit())

	region, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, controller, region.Controller)
	assert.Equal(t, []byte{1, 2, 3}, region.Data)
}

func TestStageAllocateTwice(t *testing.T) {
	s := newTestStore(t)

	id := stakemint.BytesToAddress([]byte("record"))
	controller := stakemint.BytesToAddress([]byte("program"))

	stage := s.NewStage()
	require.NoError(t, stage.Allocate(id, controller, 8))
	require.NoError(t, stage.Commit())

	// against committed state
	stage = s.NewStage()
	assert.ErrorIs(t, stage.Allocate(id, controller, 8), ErrAlreadyAllocated)

	// against staged state
	stage = s.NewStage()
	other := stakemint.BytesToAddress([]byte("other"))
	require.NoError(t, stage.Allocate(other, controller, 8))
	assert.ErrorIs(t, stage.Allocate(other, controller, 8), ErrAlreadyAllocated)
}

func TestStageDiscarded(t *testing.T) {
	s := newTestStore(t)

	id := stakemint.BytesToAddress([]byte("record"))

	stage := s.NewStage()
	require.NoError(t, stage.Allocate(id, stakemint.BytesToAddress([]byte("p")), 4))
	require.NoError(t, stage.Put(id, []byte{9}))
	// stage dropped without commit

	exists, err := s.Exists(id)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRegionCopyIsolation(t *testing.T) {
	s := newTestStore(t)

	id := stakemint.BytesToAddress([]byte("record"))
	stage := s.NewStage()
	require.NoError(t, stage.Allocate(id, stakemint.BytesToAddress([]byte("p")), 1))
	require.NoError(t, stage.Put(id, []byte{7}))
	require.NoError(t, stage.Commit())

	region, err := s.Get(id)
	require.NoError(t, err)
	region.Data[0] = 0xff

	again, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, byte(7), again.Data[0])
}
