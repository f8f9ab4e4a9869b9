// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/flightsurety/suretyd/storage"
)

func TestPutGet(t *testing.T) {
	pool := storage.Pool.TestData

	pool.Put([]byte("key-one"), []byte("value-one"))

	value := pool.Get([]byte("key-one"))
	assert.Equal(t, []byte("value-one"), value, "wrong value")

	assert.Nil(t, pool.Get([]byte("no-such-key")), "missing key returned data")
}

func TestGetN(t *testing.T) {
	pool := storage.Pool.TestData

	pool.PutN([]byte("n-key"), 987654321)

	n, found := pool.GetN([]byte("n-key"))
	assert.True(t, found, "record not found")
	assert.Equal(t, uint64(987654321), n, "wrong number")

	_, found = pool.GetN([]byte("n-missing"))
	assert.False(t, found, "missing record was found")
}

func TestHasDelete(t *testing.T) {
	pool := storage.Pool.TestData

	pool.Put([]byte("temporary"), []byte{1})
	assert.True(t, pool.Has([]byte("temporary")), "key not present")

	pool.Delete([]byte("temporary"))
	assert.False(t, pool.Has([]byte("temporary")), "key still present")
}

func TestPoolIsolation(t *testing.T) {
	storage.Pool.Airlines.Put([]byte("shared-key"), []byte("airline"))
	storage.Pool.Credits.Put([]byte("shared-key"), []byte("credit"))

	assert.Equal(t, []byte("airline"), storage.Pool.Airlines.Get([]byte("shared-key")), "airline pool corrupted")
	assert.Equal(t, []byte("credit"), storage.Pool.Credits.Get([]byte("shared-key")), "credit pool corrupted")

	storage.Pool.Airlines.Delete([]byte("shared-key"))
	assert.Equal(t, []byte("credit"), storage.Pool.Credits.Get([]byte("shared-key")), "delete crossed pools")
	storage.Pool.Credits.Delete([]byte("shared-key"))
}

func TestLastElement(t *testing.T) {
	pool := storage.Pool.AirlineRoster

	pool.PutN([]byte{0, 0, 0, 0, 0, 0, 0, 0}, 100)
	pool.PutN([]byte{0, 0, 0, 0, 0, 0, 0, 1}, 200)
	pool.PutN([]byte{0, 0, 0, 0, 0, 0, 0, 2}, 300)

	element, found := pool.LastElement()
	assert.True(t, found, "no last element")
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 2}, element.Key, "wrong last key")

	pool.Delete([]byte{0, 0, 0, 0, 0, 0, 0, 0})
	pool.Delete([]byte{0, 0, 0, 0, 0, 0, 0, 1})
	pool.Delete([]byte{0, 0, 0, 0, 0, 0, 0, 2})
}

func TestBatchCommit(t *testing.T) {
	batch := new(leveldb.Batch)

	storage.Pool.TestData.PutBatch(batch, []byte("batch-a"), []byte{1})
	storage.Pool.TestData.PutNBatch(batch, []byte("batch-b"), 42)

	// nothing visible before commit
	assert.False(t, storage.Pool.TestData.Has([]byte("batch-a")), "batch leaked before commit")

	storage.WriteBatch(batch)

	assert.True(t, storage.Pool.TestData.Has([]byte("batch-a")), "batch write missing")
	n, found := storage.Pool.TestData.GetN([]byte("batch-b"))
	assert.True(t, found, "batch number missing")
	assert.Equal(t, uint64(42), n, "wrong batch number")
}
