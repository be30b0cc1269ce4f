// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package system

import (
	"fmt"
	"sync"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
)

// Event is an event deposited by a pallet.
type Event interface {
	Pallet() string
}

// PhaseKind is the part of the block an event was deposited in.
type PhaseKind uint8

const (
	PhaseInitialization PhaseKind = iota
	PhaseApplyExtrinsic
	PhaseFinalization
)

// Phase is the part of the block an event was deposited in, with the
// extrinsic index for PhaseApplyExtrinsic.
type Phase struct {
	Kind           PhaseKind
	ExtrinsicIndex uint32
}

func (p Phase) String() string {
	switch p.Kind {
	case PhaseInitialization:
		return "Initialization"
	case PhaseApplyExtrinsic:
		return fmt.Sprintf("ApplyExtrinsic(%d)", p.ExtrinsicIndex)
	case PhaseFinalization:
		return "Finalization"
	default:
		return "Unknown"
	}
}

// EventRecord is an event with the block and phase it was deposited in.
type EventRecord struct {
	Block types.BlockNumber
	Phase Phase
	Event Event
}

func (r EventRecord) String() string {
	return fmt.Sprintf("#%d %s %s.%T%+v", r.Block, r.Phase, r.Event.Pallet(), r.Event, r.Event)
}

// eventBuffer holds the events of the block being built. It follows
// the storage transactions so events deposited in a rolled back
// transaction are discarded with it.
type eventBuffer struct {
	mutex       sync.RWMutex
	records     []EventRecord
	checkpoints []int
}

func (b *eventBuffer) push(record EventRecord) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.records = append(b.records, record)
}

func (b *eventBuffer) snapshot() []EventRecord {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	records := make([]EventRecord, len(b.records))
	copy(records, b.records)
	return records
}

func (b *eventBuffer) drain() []EventRecord {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	records := b.records
	b.records = nil
	return records
}

func (b *eventBuffer) StartTransaction() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.checkpoints = append(b.checkpoints, len(b.records))
}

func (b *eventBuffer) CommitTransaction() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.checkpoints = b.checkpoints[:len(b.checkpoints)-1]
}

func (b *eventBuffer) RollbackTransaction() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	last := len(b.checkpoints) - 1
	b.records = b.records[:b.checkpoints[last]]
	b.checkpoints = b.checkpoints[:last]
}
