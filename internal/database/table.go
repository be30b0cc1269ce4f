// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package database

// PrefixedDatabase is the set of database methods a prefixed table needs.
type PrefixedDatabase interface {
	Reader
	Writer
	Iterable
	NewWriteBatch() WriteBatch
}

type table struct {
	prefix   []byte
	database PrefixedDatabase
}

// NewTable returns a table prefixing all keys with the given prefix.
// Keys handed to Iterate callbacks have the table prefix stripped.
func NewTable(database PrefixedDatabase, prefix string) Table {
	return &table{
		prefix:   []byte(prefix),
		database: database,
	}
}

func (t *table) Get(key []byte) (value []byte, err error) {
	return t.database.Get(MakePrefixedKey(t.prefix, key))
}

func (t *table) Set(key, value []byte) (err error) {
	return t.database.Set(MakePrefixedKey(t.prefix, key), value)
}

func (t *table) Delete(key []byte) (err error) {
	return t.database.Delete(MakePrefixedKey(t.prefix, key))
}

func (t *table) Iterate(prefix []byte, handle func(key, value []byte) error) error {
	return t.database.Iterate(MakePrefixedKey(t.prefix, prefix), func(key, value []byte) error {
		return handle(key[len(t.prefix):], value)
	})
}

func (t *table) NewWriteBatch() WriteBatch {
	return &tableWriteBatch{
		prefix:     t.prefix,
		writeBatch: t.database.NewWriteBatch(),
	}
}

type tableWriteBatch struct {
	prefix     []byte
	writeBatch WriteBatch
}

func (wb *tableWriteBatch) Set(key, value []byte) error {
	return wb.writeBatch.Set(MakePrefixedKey(wb.prefix, key), value)
}

func (wb *tableWriteBatch) Delete(key []byte) error {
	return wb.writeBatch.Delete(MakePrefixedKey(wb.prefix, key))
}

func (wb *tableWriteBatch) Flush() error { return wb.writeBatch.Flush() }

func (wb *tableWriteBatch) Cancel() { wb.writeBatch.Cancel() }

// MakePrefixedKey returns a new slice holding the prefix followed by the key.
func MakePrefixedKey(prefix, key []byte) (prefixedKey []byte) {
	// WARNING: Do not use:
	// return append(prefix, key...)
	// since the prefix might have a capacity larger than its length,
	// and that would produce data corruption on prefixed keys pointing
	// to the prefix underlying memory array.
	prefixedKey = make([]byte, 0, len(prefix)+len(key))
	prefixedKey = append(prefixedKey, prefix...)
	prefixedKey = append(prefixedKey, key...)
	return prefixedKey
}
