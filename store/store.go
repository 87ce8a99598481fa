// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package store

import (
	"github.com/ethereum/go-ethereum/rlp"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/stakemint/stakemint/kv"
	"github.com/stakemint/stakemint/stakemint"
)

const (
	regionBucket = kv.Bucket("rg-")

	cacheSize = 1024
)

// ErrAlreadyAllocated is returned when allocating a region whose
// address is already backed by storage.
var ErrAlreadyAllocated = errors.New("region already allocated")

// Region is a keyed byte region together with its controlling identity.
// Only the controller's program logic may rewrite the data; readers use
// the controller to decide whether to trust the record.
type Region struct {
	Controller stakemint.Address
	Data       []byte
}

// Copy returns a deep copy of the region.
func (r *Region) Copy() *Region {
	data := make([]byte, len(r.Data))
	copy(data, r.Data)
	return &Region{Controller: r.Controller, Data: data}
}

// Store reads and writes regions keyed by address.
type Store struct {
	kv    kv.GetPutter
	cache *lru.Cache
}

// New creates a store over the given kv store.
func New(db kv.GetPutter) *Store {
	cache, _ := lru.New(cacheSize)
	return &Store{
		kv:    regionBucket.NewStore(db),
		cache: cache,
	}
}

// Get returns the region at id. A never-written address yields an empty
// region (zero controller, nil data), matching the uninitialized record
// state.
func (s *Store) Get(id stakemint.Address) (*Region, error) {
	if cached, ok := s.cache.Get(id); ok {
		return cached.(*Region).Copy(), nil
	}

	data, err := s.kv.Get(id.Bytes())
	if err != nil {
		if s.kv.IsNotFound(err) {
			return &Region{}, nil
		}
		return nil, errors.Wrap(err, "get region")
	}

	var region Region
	if err := rlp.DecodeBytes(data, &region); err != nil {
		return nil, errors.Wrap(err, "decode region")
	}
	s.cache.Add(id, region.Copy())
	return &region, nil
}

// Exists reports whether the region at id is backed by storage.
func (s *Store) Exists(id stakemint.Address) (bool, error) {
	if s.cache.Contains(id) {
		return true, nil
	}
	has, err := s.kv.Has(id.Bytes())
	if err != nil {
		return false, errors.Wrap(err, "has region")
	}
	return has, nil
}

// NewStage starts a staged view of the store. Writes land in the stage
// only; Commit persists all of them in one batch, or none on error.
func (s *Store) NewStage() *Stage {
	return &Stage{
		store:   s,
		overlay: make(map[stakemint.Address]*Region),
	}
}

func (s *Store) commit(overlay map[stakemint.Address]*Region) error {
	batch := s.kv.NewBatch()
	for id, region := range overlay {
		data, err := rlp.EncodeToBytes(region)
		if err != nil {
			return errors.Wrap(err, "encode region")
		}
		if err := batch.Put(id.Bytes(), data); err != nil {
			return err
		}
	}
	if err := batch.Write(); err != nil {
		return errors.Wrap(err, "write regions")
	}
	for id, region := range overlay {
		s.cache.Add(id, region.Copy())
	}
	return nil
}
