// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv

// Bucket carves a logical namespace out of a shared kv store by
// prefixing every key with the bucket name.
type Bucket string

// NewStore wraps src so all keys pass through this bucket's prefix.
func (b Bucket) NewStore(src GetPutter) GetPutter {
	return &bucketStore{b, src}
}

type bucketStore struct {
	b   Bucket
	src GetPutter
}

func (s *bucketStore) Get(key []byte) ([]byte, error) {
	return s.src.Get(s.b.makeKey(key))
}

func (s *bucketStore) Has(key []byte) (bool, error) {
	return s.src.Has(s.b.makeKey(key))
}

func (s *bucketStore) IsNotFound(err error) bool {
	return s.src.IsNotFound(err)
}

func (s *bucketStore) Put(key, val []byte) error {
	return s.src.Put(s.b.makeKey(key), val)
}

func (s *bucketStore) Delete(key []byte) error {
	return s.src.Delete(s.b.makeKey(key))
}

func (s *bucketStore) NewBatch() Batch {
	return &bucketBatch{s.b, s.src.NewBatch()}
}

type bucketBatch struct {
	b     Bucket
	batch Batch
}

func (b *bucketBatch) Put(key, val []byte) error { return b.batch.Put(b.b.makeKey(key), val) }
func (b *bucketBatch) Write() error              { return b.batch.Write() }

func (b Bucket) makeKey(key []byte) []byte {
	return append(append(make([]byte, 0, len(b)+len(key)), b...), key...)
}
