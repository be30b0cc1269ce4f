// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package badger

import (
	"testing"

	"github.com/PolymeshAssociation/Polymesh-sub002/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := New(Settings{Path: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() {
		err := db.Close()
		require.NoError(t, err)
	})
	return db
}

func Test_Database(t *testing.T) {
	t.Parallel()

	db := newTestDatabase(t)

	err := db.Set([]byte{1}, []byte{2})
	require.NoError(t, err)

	value, err := db.Get([]byte{1})
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, value)

	err = db.Delete([]byte{1})
	require.NoError(t, err)

	_, err = db.Get([]byte{1})
	require.ErrorIs(t, err, database.ErrKeyNotFound)
	assert.EqualError(t, err, "key not found: 0x01")
}

func Test_Database_InMemory(t *testing.T) {
	t.Parallel()

	db, err := New(Settings{InMemory: ptrTo(true)})
	require.NoError(t, err)

	err = db.Set([]byte{1}, []byte{2})
	require.NoError(t, err)

	err = db.DropAll()
	require.NoError(t, err)

	_, err = db.Get([]byte{1})
	require.ErrorIs(t, err, database.ErrKeyNotFound)

	err = db.Close()
	require.NoError(t, err)
}

func Test_Database_Iterate(t *testing.T) {
	t.Parallel()

	db := newTestDatabase(t)

	for _, key := range [][]byte{{1, 3}, {1, 1}, {2, 1}, {1, 2}} {
		err := db.Set(key, key[1:])
		require.NoError(t, err)
	}

	var keys, values [][]byte
	err := db.Iterate([]byte{1}, func(key, value []byte) error {
		keys = append(keys, key)
		values = append(values, value)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, [][]byte{{1, 1}, {1, 2}, {1, 3}}, keys)
	assert.Equal(t, [][]byte{{1}, {2}, {3}}, values)
}

func Test_table(t *testing.T) {
	t.Parallel()

	db := newTestDatabase(t)

	prefix := "prefix"
	dbTable := db.NewTable(prefix)

	err := dbTable.Set([]byte{1}, []byte{1})
	require.NoError(t, err)
	value, err := db.Get(database.MakePrefixedKey([]byte(prefix), []byte{1}))
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, value)

	writeBatch := dbTable.NewWriteBatch()
	err = writeBatch.Set([]byte{3}, []byte{3})
	require.NoError(t, err)
	writeBatch.Cancel()

	_, err = dbTable.Get([]byte{3})
	require.ErrorIs(t, err, database.ErrKeyNotFound)

	writeBatch = dbTable.NewWriteBatch()
	err = writeBatch.Set([]byte{2}, []byte{2})
	require.NoError(t, err)
	err = writeBatch.Delete([]byte{1})
	require.NoError(t, err)
	err = writeBatch.Flush()
	require.NoError(t, err)

	_, err = dbTable.Get([]byte{1})
	require.ErrorIs(t, err, database.ErrKeyNotFound)
	value, err = dbTable.Get([]byte{2})
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, value)
}
