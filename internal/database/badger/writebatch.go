// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package badger

import "github.com/dgraph-io/badger/v2"

type badgerWriteBatch struct {
	writeBatch *badger.WriteBatch
}

// Set sets a value at the given key.
func (wb *badgerWriteBatch) Set(key, value []byte) (err error) {
	return wb.writeBatch.Set(key, value)
}

// Delete deletes the given key.
func (wb *badgerWriteBatch) Delete(key []byte) (err error) {
	return wb.writeBatch.Delete(key)
}

// Flush flushes the write batch to the database.
func (wb *badgerWriteBatch) Flush() (err error) {
	return transformError(wb.writeBatch.Flush())
}

// Cancel cancels the write batch.
func (wb *badgerWriteBatch) Cancel() {
	wb.writeBatch.Cancel()
}
