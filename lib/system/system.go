// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package system

import (
	"errors"
	"fmt"
	"sync"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/storage"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
	"github.com/google/uuid"
)

const palletName = "System"

const maxSubscriptions = 256

var logger = log.NewFromGlobal(log.AddContext("pkg", "system"))

var ErrSubscriptionLimitReached = errors.New("event subscription limit reached")

// System tracks the block being built: its number, parent hash,
// timestamp, extrinsic count and deposited events.
type System struct {
	number         *storage.Value[types.BlockNumber]
	parentHash     *storage.Value[common.Hash]
	blockHash      *storage.Map[types.BlockNumber, common.Hash]
	now            *storage.Value[types.Moment]
	extrinsicCount *storage.Value[uint32]

	events *eventBuffer

	phaseMutex sync.RWMutex
	phase      Phase

	subscriptionsMutex sync.RWMutex
	subscriptions      map[uint32]chan<- []EventRecord
}

// New creates the system pallet on top of the state given.
func New(state *storage.State) *System {
	events := &eventBuffer{}
	state.AddListener(events)

	return &System{
		number:         storage.NewValue[types.BlockNumber](state, palletName, "Number"),
		parentHash:     storage.NewValue[common.Hash](state, palletName, "ParentHash"),
		blockHash:      storage.NewMap[types.BlockNumber, common.Hash](state, palletName, "BlockHash", common.Twox64Concat),
		now:            storage.NewValue[types.Moment](state, palletName, "Now"),
		extrinsicCount: storage.NewValue[uint32](state, palletName, "ExtrinsicCount"),
		events:         events,
		subscriptions:  make(map[uint32]chan<- []EventRecord),
	}
}

// BlockNumber returns the number of the block being built.
func (s *System) BlockNumber() (types.BlockNumber, error) {
	return s.number.Get()
}

// Now returns the timestamp of the block being built.
func (s *System) Now() (types.Moment, error) {
	return s.now.Get()
}

// ParentHash returns the hash of the parent of the block being built.
func (s *System) ParentHash() (common.Hash, error) {
	return s.parentHash.Get()
}

// BlockHash returns the hash of the block number given,
// or the empty hash if unknown.
func (s *System) BlockHash(number types.BlockNumber) (common.Hash, error) {
	return s.blockHash.Get(number)
}

// ExtrinsicCount returns the number of extrinsics applied in the block being built.
func (s *System) ExtrinsicCount() (uint32, error) {
	return s.extrinsicCount.Get()
}

// Initialize starts building the block number given.
func (s *System) Initialize(number types.BlockNumber, parentHash common.Hash, now types.Moment) (err error) {
	err = s.number.Put(number)
	if err != nil {
		return fmt.Errorf("setting block number: %w", err)
	}

	err = s.parentHash.Put(parentHash)
	if err != nil {
		return fmt.Errorf("setting parent hash: %w", err)
	}

	if number > 0 {
		err = s.blockHash.Insert(number-1, parentHash)
		if err != nil {
			return fmt.Errorf("setting parent block hash: %w", err)
		}
	}

	err = s.now.Put(now)
	if err != nil {
		return fmt.Errorf("setting timestamp: %w", err)
	}

	s.setPhase(Phase{Kind: PhaseInitialization})
	return nil
}

// NoteExtrinsic switches to the phase of the next extrinsic.
// It must be called before applying each extrinsic of the block.
func (s *System) NoteExtrinsic() error {
	var index uint32
	err := s.extrinsicCount.Mutate(func(count *uint32) error {
		index = *count
		*count++
		return nil
	})
	if err != nil {
		return fmt.Errorf("incrementing extrinsic count: %w", err)
	}

	s.setPhase(Phase{Kind: PhaseApplyExtrinsic, ExtrinsicIndex: index})
	return nil
}

// NoteFinalization switches to the finalization phase.
func (s *System) NoteFinalization() {
	s.setPhase(Phase{Kind: PhaseFinalization})
}

func (s *System) setPhase(phase Phase) {
	s.phaseMutex.Lock()
	defer s.phaseMutex.Unlock()
	s.phase = phase
}

// DepositEvent records an event for the block being built.
func (s *System) DepositEvent(event Event) {
	s.phaseMutex.RLock()
	phase := s.phase
	s.phaseMutex.RUnlock()

	number, err := s.number.Get()
	if err != nil {
		logger.Errorf("cannot get block number for event %T: %s", event, err)
	}

	record := EventRecord{
		Block: number,
		Phase: phase,
		Event: event,
	}
	logger.Debugf("event deposited: %s", record)
	s.events.push(record)
}

// Events returns the events deposited so far in the block being built.
func (s *System) Events() []EventRecord {
	return s.events.snapshot()
}

// Finalize ends the block being built, returning its hash and events.
// The events are sent to the subscribers.
func (s *System) Finalize() (hash common.Hash, records []EventRecord, err error) {
	number, err := s.number.Get()
	if err != nil {
		return hash, nil, fmt.Errorf("getting block number: %w", err)
	}

	parentHash, err := s.parentHash.Get()
	if err != nil {
		return hash, nil, fmt.Errorf("getting parent hash: %w", err)
	}

	now, err := s.now.Get()
	if err != nil {
		return hash, nil, fmt.Errorf("getting timestamp: %w", err)
	}

	extrinsicCount, err := s.extrinsicCount.Get()
	if err != nil {
		return hash, nil, fmt.Errorf("getting extrinsic count: %w", err)
	}

	records = s.events.drain()

	header := struct {
		Number         types.BlockNumber
		ParentHash     common.Hash
		Now            types.Moment
		ExtrinsicCount uint32
		EventCount     uint32
	}{number, parentHash, now, extrinsicCount, uint32(len(records))}
	encoded, err := scale.Marshal(header)
	if err != nil {
		return hash, nil, fmt.Errorf("encoding header: %w", err)
	}

	hash, err = common.Blake2bHash(encoded)
	if err != nil {
		return hash, nil, fmt.Errorf("hashing header: %w", err)
	}

	err = s.blockHash.Insert(number, hash)
	if err != nil {
		return hash, nil, fmt.Errorf("setting block hash: %w", err)
	}
	s.extrinsicCount.Kill()

	s.notifySubscribers(records)
	return hash, records, nil
}

// Subscribe registers a channel receiving the events of each finalized block.
func (s *System) Subscribe(ch chan<- []EventRecord) (id uint32, err error) {
	s.subscriptionsMutex.Lock()
	defer s.subscriptionsMutex.Unlock()

	if len(s.subscriptions) == maxSubscriptions {
		return 0, ErrSubscriptionLimitReached
	}

	for {
		id = uuid.New().ID()
		if s.subscriptions[id] == nil {
			break
		}
	}
	s.subscriptions[id] = ch
	return id, nil
}

// Unsubscribe unregisters and closes the channel of the subscription id given.
func (s *System) Unsubscribe(id uint32) bool {
	s.subscriptionsMutex.Lock()
	defer s.subscriptionsMutex.Unlock()

	ch, ok := s.subscriptions[id]
	if !ok {
		return false
	}
	close(ch)
	delete(s.subscriptions, id)
	return true
}

func (s *System) notifySubscribers(records []EventRecord) {
	s.subscriptionsMutex.RLock()
	defer s.subscriptionsMutex.RUnlock()

	for id, ch := range s.subscriptions {
		select {
		case ch <- records:
		default:
			logger.Warnf("dropping events of subscription %d: channel is full", id)
		}
	}
}
