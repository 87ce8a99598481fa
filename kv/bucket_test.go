// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakemint/stakemint/kv"
	"github.com/stakemint/stakemint/lvldb"
)

func TestBucket(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	b1 := kv.Bucket("b1-").NewStore(db)
	b2 := kv.Bucket("b2-").NewStore(db)

	require.NoError(t, b1.Put([]byte("key"), []byte("v1")))
	require.NoError(t, b2.Put([]byte("key"), []byte("v2")))

	got, err := b1.Get([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	got, err = b2.Get([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	// raw keys carry the prefix
	raw, err := db.Get([]byte("b1-key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), raw)

	// deleting in one bucket does not leak into the other
	require.NoError(t, b1.Delete([]byte("key")))
	_, err = b1.Get([]byte("key"))
	assert.True(t, b1.IsNotFound(err))
	has, err := b2.Has([]byte("key"))
	require.NoError(t, err)
	assert.True(t, has)
}

func TestBucketBatch(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	b := kv.Bucket("b-").NewStore(db)

	batch := b.NewBatch()
	require.NoError(t, batch.Put([]byte("k"), []byte("v")))
	require.NoError(t, batch.Write())

	got, err := db.Get([]byte("b-k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}
