// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"errors"
	"testing"

	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Prefix(t *testing.T) {
	t.Parallel()

	prefix := Prefix("System", "Number")
	assert.Equal(t, common.MustHexToBytes("0x26aa394eea5630e07c48ae0c9558cef702a5c1b19ab7a04f536c519aca4983ac"), prefix)
}

func Test_Value(t *testing.T) {
	t.Parallel()

	state := NewState(nil)
	value := NewValue[uint32](state, "Test", "Counter")

	got, ok, err := value.TryGet()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, got)

	err = value.Put(3)
	require.NoError(t, err)

	err = value.Mutate(func(v *uint32) error {
		*v++
		return nil
	})
	require.NoError(t, err)

	got, err = value.Get()
	require.NoError(t, err)
	assert.Equal(t, uint32(4), got)

	errTest := errors.New("test error")
	err = value.Mutate(func(v *uint32) error {
		*v = 100
		return errTest
	})
	assert.ErrorIs(t, err, errTest)

	got, err = value.Get()
	require.NoError(t, err)
	assert.Equal(t, uint32(4), got)

	value.Kill()
	exists, err := value.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func Test_Map(t *testing.T) {
	t.Parallel()

	state := NewState(nil)
	m := NewMap[uint32, []byte](state, "Test", "Map", common.Twox64Concat)

	require.NoError(t, m.Insert(2, []byte{2}))
	require.NoError(t, m.Insert(1, []byte{1}))

	contains, err := m.Contains(1)
	require.NoError(t, err)
	assert.True(t, contains)

	entries := map[uint32][]byte{}
	err = m.Iterate(func(key uint32, value []byte) error {
		entries[key] = value
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[uint32][]byte{1: {1}, 2: {2}}, entries)

	value, ok, err := m.Take(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{1}, value)

	_, ok, err = m.TryGet(1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Clear())
	contains, err = m.Contains(2)
	require.NoError(t, err)
	assert.False(t, contains)
}

func Test_DoubleMap(t *testing.T) {
	t.Parallel()

	state := NewState(nil)
	m := NewDoubleMap[uint32, [32]byte, uint64](state, "Test", "DoubleMap",
		common.Twox64Concat, common.Blake2128Concat)

	alice, bob := [32]byte{1}, [32]byte{2}
	require.NoError(t, m.Insert(1, alice, 10))
	require.NoError(t, m.Insert(1, bob, 20))
	require.NoError(t, m.Insert(2, alice, 30))

	err := m.Mutate(1, alice, func(v *uint64) error {
		*v += 5
		return nil
	})
	require.NoError(t, err)

	got, err := m.Get(1, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), got)

	total := uint64(0)
	err = m.IteratePrefix(1, func(key2 [32]byte, value uint64) error {
		total += value
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(35), total)

	type entry struct {
		key1  uint32
		key2  [32]byte
		value uint64
	}
	var entries []entry
	err = m.Iterate(func(key1 uint32, key2 [32]byte, value uint64) error {
		entries = append(entries, entry{key1, key2, value})
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []entry{{1, alice, 15}, {1, bob, 20}, {2, alice, 30}}, entries)

	require.NoError(t, m.RemovePrefix(1))
	contains, err := m.Contains(1, bob)
	require.NoError(t, err)
	assert.False(t, contains)

	contains, err = m.Contains(2, alice)
	require.NoError(t, err)
	assert.True(t, contains)
}
