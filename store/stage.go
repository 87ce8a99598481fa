// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package store

import (
	"github.com/stakemint/stakemint/stakemint"
)

// Stage buffers region writes on top of a store. An operation performs
// all of its reads, checks and writes against the stage; nothing reaches
// the backing store until Commit, so a failed operation leaves no
// partial state behind.
type Stage struct {
	store   *Store
	overlay map[stakemint.Address]*Region
}

// Get returns the staged region if written, else reads through.
func (st *Stage) Get(id stakemint.Address) (*Region, error) {
	if region, ok := st.overlay[id]; ok {
		return region.Copy(), nil
	}
	return st.store.Get(id)
}

// Exists reports whether id is allocated, staged writes included.
func (st *Stage) Exists(id stakemint.Address) (bool, error) {
	if _, ok := st.overlay[id]; ok {
		return true, nil
	}
	return st.store.Exists(id)
}

// Allocate backs id with a fresh zeroed region of the given size,
// controlled by controller. Fails with ErrAlreadyAllocated when id
// is already backed.
func (st *Stage) Allocate(id stakemint.Address, controller stakemint.Address, size int) error {
	exists, err := st.Exists(id)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyAllocated
	}
	st.overlay[id] = &Region{
		Controller: controller,
		Data:       make([]byte, size),
	}
	return nil
}

// Put stages new data for an allocated region, keeping its controller.
func (st *Stage) Put(id stakemint.Address, data []byte) error {
	region, err := st.Get(id)
	if err != nil {
		return err
	}
	region.Data = append(region.Data[:0], data...)
	st.overlay[id] = region
	return nil
}

// Commit persists every staged write in one batch.
func (st *Stage) Commit() error {
	return st.store.commit(st.overlay)
}
