// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"container/list"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/PolymeshAssociation/Polymesh-sub002/internal/database"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
)

// Backend is the persisted key value store below the state overlay.
type Backend interface {
	database.Reader
	database.Iterable
}

// TransactionListener is notified of the transaction boundaries of
// the state, so in-memory data such as the event buffer can follow
// the storage commits and rollbacks.
type TransactionListener interface {
	StartTransaction()
	CommitTransaction()
	RollbackTransaction()
}

// State is a transactional overlay on top of a database backend.
// The first diff of the transactions list holds the block changes not
// yet persisted, and each nested transaction pushes a new diff.
type State struct {
	mtx          sync.RWMutex
	backend      Backend
	transactions *list.List
	listeners    []TransactionListener
}

// NewState creates a new state on top of the backend given.
// A nil backend is treated as an empty store.
func NewState(backend Backend) *State {
	transactions := list.New()
	transactions.PushBack(newStorageDiff())
	return &State{
		backend:      backend,
		transactions: transactions,
	}
}

// AddListener registers a listener of transaction boundaries.
func (s *State) AddListener(listener TransactionListener) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *State) currentDiff() *storageDiff {
	return s.transactions.Back().Value.(*storageDiff)
}

// Get returns the value at the key given, or nil if it does not exist.
func (s *State) Get(key []byte) (value []byte, err error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	keyString := string(key)
	for e := s.transactions.Back(); e != nil; e = e.Prev() {
		value, found := e.Value.(*storageDiff).get(keyString)
		if found {
			return common.CopyBytes(value), nil
		}
	}

	if s.backend == nil {
		return nil, nil
	}

	value, err = s.backend.Get(key)
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting key 0x%x from backend: %w", key, err)
	}
	return value, nil
}

// Has returns true if a value exists at the key given.
func (s *State) Has(key []byte) (bool, error) {
	value, err := s.Get(key)
	if err != nil {
		return false, err
	}
	return value != nil, nil
}

// Put sets the value at the key given.
func (s *State) Put(key, value []byte) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if value == nil {
		value = []byte{}
	}
	s.currentDiff().upsert(string(key), common.CopyBytes(value))
}

// Delete deletes the value at the key given.
func (s *State) Delete(key []byte) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.currentDiff().delete(string(key))
}

// Iterate calls handle for each key value pair with the given prefix,
// in lexicographic key order. The handler may modify the state.
func (s *State) Iterate(prefix []byte, handle func(key, value []byte) error) error {
	entries, err := s.entries(prefix)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		err = handle([]byte(key), entries[key])
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *State) entries(prefix []byte) (entries map[string][]byte, err error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	entries = make(map[string][]byte)
	if s.backend != nil {
		err = s.backend.Iterate(prefix, func(key, value []byte) error {
			entries[string(key)] = common.CopyBytes(value)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("iterating backend: %w", err)
		}
	}

	for e := s.transactions.Front(); e != nil; e = e.Next() {
		e.Value.(*storageDiff).applyTo(entries, string(prefix))
	}

	for key := range entries {
		if len(key) < len(prefix) || key[:len(prefix)] != string(prefix) {
			delete(entries, key)
		}
	}
	return entries, nil
}

// ClearPrefix deletes all the values with keys starting with prefix.
func (s *State) ClearPrefix(prefix []byte) error {
	entries, err := s.entries(prefix)
	if err != nil {
		return err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()
	diff := s.currentDiff()
	for key := range entries {
		diff.delete(key)
	}
	return nil
}

// StartTransaction begins a new nested storage transaction
// which will either be committed or rolled back at a later time.
func (s *State) StartTransaction() {
	s.mtx.Lock()
	s.transactions.PushBack(newStorageDiff())
	listeners := s.listeners
	s.mtx.Unlock()

	for _, listener := range listeners {
		listener.StartTransaction()
	}
}

// CommitTransaction commits all storage changes made since the
// last StartTransaction call into the parent transaction.
func (s *State) CommitTransaction() {
	s.mtx.Lock()
	if s.transactions.Len() <= 1 {
		s.mtx.Unlock()
		panic(ErrNoTransaction)
	}

	diff := s.transactions.Remove(s.transactions.Back()).(*storageDiff)
	diff.mergeInto(s.currentDiff())
	listeners := s.listeners
	s.mtx.Unlock()

	for _, listener := range listeners {
		listener.CommitTransaction()
	}
}

// RollbackTransaction discards all storage changes made since the
// last StartTransaction call.
func (s *State) RollbackTransaction() {
	s.mtx.Lock()
	if s.transactions.Len() <= 1 {
		s.mtx.Unlock()
		panic(ErrNoTransaction)
	}

	s.transactions.Remove(s.transactions.Back())
	listeners := s.listeners
	s.mtx.Unlock()

	for _, listener := range listeners {
		listener.RollbackTransaction()
	}
}

// TransactionDepth returns the number of nested transactions open.
func (s *State) TransactionDepth() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.transactions.Len() - 1
}

// Transactional runs fn in a nested transaction, committed if fn
// returns nil and rolled back otherwise.
func (s *State) Transactional(fn func() error) (err error) {
	s.StartTransaction()
	err = fn()
	if err != nil {
		s.RollbackTransaction()
		return err
	}
	s.CommitTransaction()
	return nil
}

// Dirty returns true if the state holds changes not yet persisted.
func (s *State) Dirty() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	for e := s.transactions.Front(); e != nil; e = e.Next() {
		if !e.Value.(*storageDiff).empty() {
			return true
		}
	}
	return false
}

// Persist writes the pending changes to the write batch given and
// flushes it. It fails with ErrTransactionOpen if a nested
// transaction is still open.
func (s *State) Persist(batch database.WriteBatch) (err error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.transactions.Len() > 1 {
		return fmt.Errorf("%w: depth %d", ErrTransactionOpen, s.transactions.Len()-1)
	}

	diff := s.currentDiff()
	for key := range diff.deletes {
		err = batch.Delete([]byte(key))
		if err != nil {
			batch.Cancel()
			return fmt.Errorf("deleting key: %w", err)
		}
	}

	for key, value := range diff.upserts {
		err = batch.Set([]byte(key), value)
		if err != nil {
			batch.Cancel()
			return fmt.Errorf("setting key: %w", err)
		}
	}

	err = batch.Flush()
	if err != nil {
		return fmt.Errorf("flushing batch: %w", err)
	}

	s.transactions.Back().Value = newStorageDiff()
	return nil
}
