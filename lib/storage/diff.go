// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

// storageDiff holds the changes of one transaction level on top
// of the levels below it.
type storageDiff struct {
	upserts map[string][]byte
	deletes map[string]bool
}

func newStorageDiff() *storageDiff {
	return &storageDiff{
		upserts: make(map[string][]byte),
		deletes: make(map[string]bool),
	}
}

// get returns the value and true if the key is upserted in this diff,
// or nil and true if it is deleted. It returns false if the diff does
// not know about the key.
func (sd *storageDiff) get(key string) (value []byte, found bool) {
	if value, ok := sd.upserts[key]; ok {
		return value, true
	} else if sd.deletes[key] {
		return nil, true
	}
	return nil, false
}

func (sd *storageDiff) upsert(key string, value []byte) {
	delete(sd.deletes, key)
	sd.upserts[key] = value
}

func (sd *storageDiff) delete(key string) {
	delete(sd.upserts, key)
	sd.deletes[key] = true
}

// mergeInto applies the diff changes on top of the parent diff.
func (sd *storageDiff) mergeInto(parent *storageDiff) {
	for key := range sd.deletes {
		parent.delete(key)
	}
	for key, value := range sd.upserts {
		parent.upsert(key, value)
	}
}

// applyTo merges the changes of the diff into the entries given.
func (sd *storageDiff) applyTo(entries map[string][]byte, prefix string) {
	for key := range sd.deletes {
		delete(entries, key)
	}
	for key, value := range sd.upserts {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			entries[key] = value
		}
	}
}

func (sd *storageDiff) empty() bool {
	return len(sd.upserts) == 0 && len(sd.deletes) == 0
}
