// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package kv defines the narrow key-value surface the record store is
// built on.
package kv

// Getter wraps the read side of a key-value store.
type Getter interface {
	// Get returns the value for the given key. A missing key yields an
	// error checkable via IsNotFound.
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	IsNotFound(err error) bool
}

// Putter wraps the write side of a key-value store.
type Putter interface {
	Put(key, val []byte) error
	Delete(key []byte) error

	NewBatch() Batch
}

// GetPutter combines both sides.
type GetPutter interface {
	Getter
	Putter
}

// GetPutCloser is a GetPutter owning its backing resources.
type GetPutCloser interface {
	GetPutter
	Close() error
}

// Batch collects writes and flushes all of them in one atomic Write.
type Batch interface {
	Put(key, val []byte) error
	Write() error
}
