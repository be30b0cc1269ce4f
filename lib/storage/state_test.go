// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"errors"
	"testing"

	"github.com/PolymeshAssociation/Polymesh-sub002/internal/database/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listenerRecorder struct {
	calls []string
}

func (l *listenerRecorder) StartTransaction()    { l.calls = append(l.calls, "start") }
func (l *listenerRecorder) CommitTransaction()   { l.calls = append(l.calls, "commit") }
func (l *listenerRecorder) RollbackTransaction() { l.calls = append(l.calls, "rollback") }

func Test_State_GetPutDelete(t *testing.T) {
	t.Parallel()

	db := memory.New()
	err := db.Set([]byte("persisted"), []byte{1})
	require.NoError(t, err)

	state := NewState(db)

	value, err := state.Get([]byte("persisted"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, value)

	value, err = state.Get([]byte("absent"))
	require.NoError(t, err)
	assert.Nil(t, value)

	state.Put([]byte("persisted"), []byte{2})
	value, err = state.Get([]byte("persisted"))
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, value)

	state.Delete([]byte("persisted"))
	has, err := state.Has([]byte("persisted"))
	require.NoError(t, err)
	assert.False(t, has)

	state.Put([]byte("empty"), nil)
	has, err = state.Has([]byte("empty"))
	require.NoError(t, err)
	assert.True(t, has)
}

func Test_State_Transactions(t *testing.T) {
	t.Parallel()

	state := NewState(nil)
	listener := &listenerRecorder{}
	state.AddListener(listener)

	state.Put([]byte("a"), []byte{1})

	state.StartTransaction()
	state.Put([]byte("a"), []byte{2})
	state.Put([]byte("b"), []byte{2})

	state.StartTransaction()
	state.Delete([]byte("a"))
	assert.Equal(t, 2, state.TransactionDepth())
	state.RollbackTransaction()

	value, err := state.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, value)

	state.CommitTransaction()
	assert.Equal(t, 0, state.TransactionDepth())

	value, err = state.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, value)

	assert.Equal(t, []string{"start", "start", "rollback", "commit"}, listener.calls)

	assert.PanicsWithValue(t, ErrNoTransaction, func() { state.CommitTransaction() })
}

func Test_State_Transactional(t *testing.T) {
	t.Parallel()

	state := NewState(nil)
	errTest := errors.New("test error")

	err := state.Transactional(func() error {
		state.Put([]byte("a"), []byte{1})
		return errTest
	})
	assert.ErrorIs(t, err, errTest)

	has, err := state.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)

	err = state.Transactional(func() error {
		state.Put([]byte("a"), []byte{1})
		return nil
	})
	require.NoError(t, err)

	has, err = state.Has([]byte("a"))
	require.NoError(t, err)
	assert.True(t, has)
}

func Test_State_IterateAndClearPrefix(t *testing.T) {
	t.Parallel()

	db := memory.New()
	require.NoError(t, db.Set([]byte("p1"), []byte{1}))
	require.NoError(t, db.Set([]byte("p2"), []byte{2}))
	require.NoError(t, db.Set([]byte("q1"), []byte{3}))

	state := NewState(db)
	state.Put([]byte("p3"), []byte{4})
	state.Delete([]byte("p1"))
	state.Put([]byte("q2"), []byte{5})

	var keys []string
	err := state.Iterate([]byte("p"), func(key, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p3"}, keys)

	err = state.ClearPrefix([]byte("p"))
	require.NoError(t, err)

	keys = nil
	err = state.Iterate(nil, func(key, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2"}, keys)
}

func Test_State_Persist(t *testing.T) {
	t.Parallel()

	db := memory.New()
	require.NoError(t, db.Set([]byte("old"), []byte{1}))

	state := NewState(db)
	state.Put([]byte("new"), []byte{2})
	state.Delete([]byte("old"))
	assert.True(t, state.Dirty())

	state.StartTransaction()
	err := state.Persist(db.NewWriteBatch())
	assert.ErrorIs(t, err, ErrTransactionOpen)
	state.CommitTransaction()

	err = state.Persist(db.NewWriteBatch())
	require.NoError(t, err)
	assert.False(t, state.Dirty())

	value, err := db.Get([]byte("new"))
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, value)

	has, err := state.Has([]byte("old"))
	require.NoError(t, err)
	assert.False(t, has)
}
