// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package memory

type operation struct {
	key    string
	value  []byte
	delete bool
}

type writeBatch struct {
	database   *Database
	operations []operation
}

func newWriteBatch(database *Database) *writeBatch {
	return &writeBatch{
		database: database,
	}
}

// Set records a set operation, applied on Flush.
func (wb *writeBatch) Set(key, value []byte) (err error) {
	wb.operations = append(wb.operations, operation{
		key:   string(key),
		value: copyBytes(value),
	})
	return nil
}

// Delete records a delete operation, applied on Flush.
func (wb *writeBatch) Delete(key []byte) (err error) {
	wb.operations = append(wb.operations, operation{
		key:    string(key),
		delete: true,
	})
	return nil
}

// Flush applies all recorded operations to the database atomically.
func (wb *writeBatch) Flush() (err error) {
	wb.database.mutex.Lock()
	defer wb.database.mutex.Unlock()
	wb.database.panicOnClosed()

	for _, op := range wb.operations {
		if op.delete {
			delete(wb.database.keyValues, op.key)
			continue
		}
		wb.database.keyValues[op.key] = op.value
	}
	wb.operations = nil
	return nil
}

// Cancel discards all recorded operations.
func (wb *writeBatch) Cancel() {
	wb.operations = nil
}
