// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// Prefix returns the storage prefix of an item of a pallet,
// the concatenation of the twox128 hashes of both names.
func Prefix(pallet, item string) []byte {
	prefix := make([]byte, 0, 32)
	prefix = append(prefix, common.MustTwox128Hash([]byte(pallet))...)
	prefix = append(prefix, common.MustTwox128Hash([]byte(item))...)
	return prefix
}

func decodeValue[T any](key, encoded []byte) (value T, err error) {
	err = scale.Unmarshal(encoded, &value)
	if err != nil {
		return value, fmt.Errorf("decoding storage value at key 0x%x: %w", key, err)
	}
	return value, nil
}

func appendKey(prefix []byte, hasher common.StorageHasher, key interface{}) ([]byte, error) {
	encoded, err := scale.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("encoding storage key: %w", err)
	}

	hashed := hasher(encoded)
	full := make([]byte, 0, len(prefix)+len(hashed))
	full = append(full, prefix...)
	return append(full, hashed...), nil
}

// Value is a single storage value of type T.
type Value[T any] struct {
	state *State
	key   []byte
}

// NewValue returns the storage value of the pallet item given.
func NewValue[T any](state *State, pallet, item string) *Value[T] {
	return &Value[T]{
		state: state,
		key:   Prefix(pallet, item),
	}
}

// TryGet returns the value and true if it exists.
func (v *Value[T]) TryGet() (value T, ok bool, err error) {
	encoded, err := v.state.Get(v.key)
	if err != nil || encoded == nil {
		return value, false, err
	}

	value, err = decodeValue[T](v.key, encoded)
	if err != nil {
		return value, false, err
	}
	return value, true, nil
}

// Get returns the value, or the zero value of T if it does not exist.
func (v *Value[T]) Get() (value T, err error) {
	value, _, err = v.TryGet()
	return value, err
}

// Put sets the value.
func (v *Value[T]) Put(value T) error {
	encoded, err := scale.Marshal(value)
	if err != nil {
		return err
	}
	v.state.Put(v.key, encoded)
	return nil
}

// Exists returns true if the value is set.
func (v *Value[T]) Exists() (bool, error) {
	return v.state.Has(v.key)
}

// Kill removes the value.
func (v *Value[T]) Kill() {
	v.state.Delete(v.key)
}

// Mutate gets the value, calls fn with it and stores the result
// if fn returns no error.
func (v *Value[T]) Mutate(fn func(value *T) error) error {
	value, err := v.Get()
	if err != nil {
		return err
	}

	err = fn(&value)
	if err != nil {
		return err
	}
	return v.Put(value)
}

// Map is a storage map from K to V. Keys are hashed with a concat
// hasher so they can be decoded back while iterating.
type Map[K, V any] struct {
	state  *State
	prefix []byte
	hasher common.StorageHasher
}

// NewMap returns the storage map of the pallet item given.
func NewMap[K, V any](state *State, pallet, item string, hasher common.StorageHasher) *Map[K, V] {
	return &Map[K, V]{
		state:  state,
		prefix: Prefix(pallet, item),
		hasher: hasher,
	}
}

// TryGet returns the value at the key and true if it exists.
func (m *Map[K, V]) TryGet(key K) (value V, ok bool, err error) {
	storageKey, err := appendKey(m.prefix, m.hasher, key)
	if err != nil {
		return value, false, err
	}

	encoded, err := m.state.Get(storageKey)
	if err != nil || encoded == nil {
		return value, false, err
	}

	value, err = decodeValue[V](storageKey, encoded)
	if err != nil {
		return value, false, err
	}
	return value, true, nil
}

// Get returns the value at the key, or the zero value of V.
func (m *Map[K, V]) Get(key K) (value V, err error) {
	value, _, err = m.TryGet(key)
	return value, err
}

// Contains returns true if a value exists at the key.
func (m *Map[K, V]) Contains(key K) (bool, error) {
	storageKey, err := appendKey(m.prefix, m.hasher, key)
	if err != nil {
		return false, err
	}
	return m.state.Has(storageKey)
}

// Insert sets the value at the key.
func (m *Map[K, V]) Insert(key K, value V) error {
	storageKey, err := appendKey(m.prefix, m.hasher, key)
	if err != nil {
		return err
	}

	encoded, err := scale.Marshal(value)
	if err != nil {
		return err
	}
	m.state.Put(storageKey, encoded)
	return nil
}

// Remove removes the value at the key.
func (m *Map[K, V]) Remove(key K) error {
	storageKey, err := appendKey(m.prefix, m.hasher, key)
	if err != nil {
		return err
	}
	m.state.Delete(storageKey)
	return nil
}

// Take removes and returns the value at the key, if any.
func (m *Map[K, V]) Take(key K) (value V, ok bool, err error) {
	value, ok, err = m.TryGet(key)
	if err != nil || !ok {
		return value, ok, err
	}
	return value, true, m.Remove(key)
}

// Mutate gets the value at the key, calls fn with it and stores
// the result if fn returns no error.
func (m *Map[K, V]) Mutate(key K, fn func(value *V) error) error {
	value, err := m.Get(key)
	if err != nil {
		return err
	}

	err = fn(&value)
	if err != nil {
		return err
	}
	return m.Insert(key, value)
}

// Iterate calls handle for each entry of the map, in hashed key order.
func (m *Map[K, V]) Iterate(handle func(key K, value V) error) error {
	hashLength := common.HashedKeyLength(m.hasher)
	return m.state.Iterate(m.prefix, func(storageKey, encoded []byte) error {
		var key K
		err := scale.Unmarshal(storageKey[len(m.prefix)+hashLength:], &key)
		if err != nil {
			return fmt.Errorf("decoding storage key 0x%x: %w", storageKey, err)
		}

		value, err := decodeValue[V](storageKey, encoded)
		if err != nil {
			return err
		}
		return handle(key, value)
	})
}

// Clear removes all the entries of the map.
func (m *Map[K, V]) Clear() error {
	return m.state.ClearPrefix(m.prefix)
}

// DoubleMap is a storage map keyed by two keys, so that all the
// entries sharing the first key can be iterated or removed together.
type DoubleMap[K1, K2, V any] struct {
	state   *State
	prefix  []byte
	hasher1 common.StorageHasher
	hasher2 common.StorageHasher
}

// NewDoubleMap returns the storage double map of the pallet item given.
func NewDoubleMap[K1, K2, V any](state *State, pallet, item string,
	hasher1, hasher2 common.StorageHasher) *DoubleMap[K1, K2, V] {
	return &DoubleMap[K1, K2, V]{
		state:   state,
		prefix:  Prefix(pallet, item),
		hasher1: hasher1,
		hasher2: hasher2,
	}
}

func (m *DoubleMap[K1, K2, V]) firstKey(key1 K1) ([]byte, error) {
	return appendKey(m.prefix, m.hasher1, key1)
}

func (m *DoubleMap[K1, K2, V]) storageKey(key1 K1, key2 K2) ([]byte, error) {
	first, err := m.firstKey(key1)
	if err != nil {
		return nil, err
	}
	return appendKey(first, m.hasher2, key2)
}

// TryGet returns the value at the keys and true if it exists.
func (m *DoubleMap[K1, K2, V]) TryGet(key1 K1, key2 K2) (value V, ok bool, err error) {
	storageKey, err := m.storageKey(key1, key2)
	if err != nil {
		return value, false, err
	}

	encoded, err := m.state.Get(storageKey)
	if err != nil || encoded == nil {
		return value, false, err
	}

	value, err = decodeValue[V](storageKey, encoded)
	if err != nil {
		return value, false, err
	}
	return value, true, nil
}

// Get returns the value at the keys, or the zero value of V.
func (m *DoubleMap[K1, K2, V]) Get(key1 K1, key2 K2) (value V, err error) {
	value, _, err = m.TryGet(key1, key2)
	return value, err
}

// Contains returns true if a value exists at the keys.
func (m *DoubleMap[K1, K2, V]) Contains(key1 K1, key2 K2) (bool, error) {
	storageKey, err := m.storageKey(key1, key2)
	if err != nil {
		return false, err
	}
	return m.state.Has(storageKey)
}

// Insert sets the value at the keys.
func (m *DoubleMap[K1, K2, V]) Insert(key1 K1, key2 K2, value V) error {
	storageKey, err := m.storageKey(key1, key2)
	if err != nil {
		return err
	}

	encoded, err := scale.Marshal(value)
	if err != nil {
		return err
	}
	m.state.Put(storageKey, encoded)
	return nil
}

// Remove removes the value at the keys.
func (m *DoubleMap[K1, K2, V]) Remove(key1 K1, key2 K2) error {
	storageKey, err := m.storageKey(key1, key2)
	if err != nil {
		return err
	}
	m.state.Delete(storageKey)
	return nil
}

// Mutate gets the value at the keys, calls fn with it and stores
// the result if fn returns no error.
func (m *DoubleMap[K1, K2, V]) Mutate(key1 K1, key2 K2, fn func(value *V) error) error {
	value, err := m.Get(key1, key2)
	if err != nil {
		return err
	}

	err = fn(&value)
	if err != nil {
		return err
	}
	return m.Insert(key1, key2, value)
}

// IteratePrefix calls handle for each entry with the first key given.
func (m *DoubleMap[K1, K2, V]) IteratePrefix(key1 K1, handle func(key2 K2, value V) error) error {
	first, err := m.firstKey(key1)
	if err != nil {
		return err
	}

	hashLength := common.HashedKeyLength(m.hasher2)
	return m.state.Iterate(first, func(storageKey, encoded []byte) error {
		var key2 K2
		err := scale.Unmarshal(storageKey[len(first)+hashLength:], &key2)
		if err != nil {
			return fmt.Errorf("decoding storage key 0x%x: %w", storageKey, err)
		}

		value, err := decodeValue[V](storageKey, encoded)
		if err != nil {
			return err
		}
		return handle(key2, value)
	})
}

// Iterate calls handle for each entry of the double map.
func (m *DoubleMap[K1, K2, V]) Iterate(handle func(key1 K1, key2 K2, value V) error) error {
	hashLength1 := common.HashedKeyLength(m.hasher1)
	hashLength2 := common.HashedKeyLength(m.hasher2)
	return m.state.Iterate(m.prefix, func(storageKey, encoded []byte) error {
		rest := storageKey[len(m.prefix)+hashLength1:]
		var key1 K1
		consumed, err := scale.UnmarshalPrefix(rest, &key1)
		if err != nil {
			return fmt.Errorf("decoding first storage key 0x%x: %w", storageKey, err)
		}

		var key2 K2
		err = scale.Unmarshal(rest[consumed+hashLength2:], &key2)
		if err != nil {
			return fmt.Errorf("decoding second storage key 0x%x: %w", storageKey, err)
		}

		value, err := decodeValue[V](storageKey, encoded)
		if err != nil {
			return err
		}
		return handle(key1, key2, value)
	})
}

// RemovePrefix removes all the entries with the first key given.
func (m *DoubleMap[K1, K2, V]) RemovePrefix(key1 K1) error {
	first, err := m.firstKey(key1)
	if err != nil {
		return err
	}
	return m.state.ClearPrefix(first)
}

// Clear removes all the entries of the double map.
func (m *DoubleMap[K1, K2, V]) Clear() error {
	return m.state.ClearPrefix(m.prefix)
}
