// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package database defines the key value store interfaces used to
// persist runtime storage.
package database

import (
	"errors"
)

var (
	// ErrKeyNotFound is returned when a key is not found.
	ErrKeyNotFound = errors.New("key not found")
	// ErrClosed is returned when the database is closed.
	ErrClosed = errors.New("database closed")
)

// Reader reads values from a key value store.
type Reader interface {
	Get(key []byte) (value []byte, err error)
}

// Writer writes to a key value store.
type Writer interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Iterable iterates over the key value pairs having the given prefix,
// in ascending key order. Iteration stops on the first handle error.
type Iterable interface {
	Iterate(prefix []byte, handle func(key, value []byte) error) error
}

// WriteBatch is a write only batch of operations applied atomically
// on Flush.
type WriteBatch interface {
	Writer
	Flush() error
	Cancel()
}

// Table is a key prefixed view of a database.
type Table interface {
	Reader
	Writer
	Iterable
	NewWriteBatch() WriteBatch
}

// Database is a key value store. All methods are safe for concurrent use.
type Database interface {
	Reader
	Writer
	Iterable
	NewWriteBatch() WriteBatch
	NewTable(prefix string) Table
	DropAll() error
	Close() error
}
