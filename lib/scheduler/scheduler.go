// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package scheduler dispatches calls at the start of the block they are
// scheduled for. Tasks are named so they can be cancelled or moved to
// another block before they run.
package scheduler

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/storage"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/system"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
	"github.com/prometheus/client_golang/prometheus"
)

const palletName = "Scheduler"

// MaxScheduledPerBlock is the maximum number of tasks in the agenda of a block.
const MaxScheduledPerBlock = 50

// Task priorities. Lower values are dispatched first.
const (
	PriorityHighest      uint8 = 0
	PriorityHardDeadline uint8 = 63
	PriorityLowest       uint8 = 255
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "scheduler"))

// Chain returns the number of the block being built.
type Chain interface {
	BlockNumber() (types.BlockNumber, error)
}

// EventDepositor deposits events in the block being built.
type EventDepositor interface {
	DepositEvent(event system.Event)
}

// Dispatcher dispatches an encoded call with the origin given.
type Dispatcher interface {
	Dispatch(origin types.Origin, call []byte) error
}

// Task is a call waiting in an agenda.
type Task struct {
	Name     scale.Option[[]byte]
	Priority uint8
	Origin   types.Origin
	Call     []byte
}

// TaskAddress is the block a task is scheduled for and its index in
// the agenda of that block.
type TaskAddress struct {
	When  types.BlockNumber
	Index uint32
}

func (a TaskAddress) String() string {
	return fmt.Sprintf("#%d[%d]", a.When, a.Index)
}

// Scheduler keeps the agenda of each future block and dispatches the
// agenda of a block when it starts.
type Scheduler struct {
	state      *storage.State
	chain      Chain
	events     EventDepositor
	dispatcher Dispatcher

	// Cancelled tasks leave an empty slot so task indexes do not change.
	agenda *storage.Map[types.BlockNumber, []scale.Option[Task]]
	lookup *storage.Map[[]byte, TaskAddress]

	scheduledCounter  prometheus.Counter
	cancelledCounter  prometheus.Counter
	dispatchedCounter prometheus.Counter
	failedCounter     prometheus.Counter
	agendaGauge       prometheus.Gauge
}

// New creates the scheduler.
func New(state *storage.State, chain Chain, events EventDepositor, dispatcher Dispatcher) *Scheduler {
	return &Scheduler{
		state:             state,
		chain:             chain,
		events:            events,
		dispatcher:        dispatcher,
		agenda:            storage.NewMap[types.BlockNumber, []scale.Option[Task]](state, palletName, "Agenda", common.Twox64Concat),
		lookup:            storage.NewMap[[]byte, TaskAddress](state, palletName, "Lookup", common.Twox64Concat),
		scheduledCounter:  scheduledCounter,
		cancelledCounter:  cancelledCounter,
		dispatchedCounter: dispatchedCounter,
		failedCounter:     failedCounter,
		agendaGauge:       agendaGauge,
	}
}

// Agenda returns the tasks scheduled for the block given.
func (s *Scheduler) Agenda(when types.BlockNumber) ([]scale.Option[Task], error) {
	return s.agenda.Get(when)
}

// Lookup returns the address of the named task, if it is scheduled.
func (s *Scheduler) Lookup(name []byte) (address TaskAddress, ok bool, err error) {
	return s.lookup.TryGet(name)
}

func (s *Scheduler) ensureFuture(when types.BlockNumber) error {
	now, err := s.chain.BlockNumber()
	if err != nil {
		return err
	}
	if when <= now {
		return fmt.Errorf("%w: block %d at block %d", ErrTargetBlockNumberInPast, when, now)
	}
	return nil
}

func (s *Scheduler) place(when types.BlockNumber, task Task) (address TaskAddress, err error) {
	agenda, err := s.agenda.Get(when)
	if err != nil {
		return address, err
	}
	if len(agenda) >= MaxScheduledPerBlock {
		return address, fmt.Errorf("%w: block %d", ErrAgendaFull, when)
	}

	address = TaskAddress{When: when, Index: uint32(len(agenda))}
	agenda = append(agenda, scale.Some(task))
	err = s.agenda.Insert(when, agenda)
	if err != nil {
		return address, err
	}

	s.events.DepositEvent(EventScheduled{When: address.When, Index: address.Index})
	return address, nil
}

// take empties the slot of the task at the address given.
func (s *Scheduler) take(address TaskAddress) (task Task, ok bool, err error) {
	err = s.agenda.Mutate(address.When, func(agenda *[]scale.Option[Task]) error {
		if int(address.Index) >= len(*agenda) {
			return nil
		}
		task, ok = (*agenda)[address.Index].Get()
		(*agenda)[address.Index] = scale.None[Task]()
		return nil
	})
	if err != nil || !ok {
		return task, ok, err
	}

	s.events.DepositEvent(EventCanceled{When: address.When, Index: address.Index})
	return task, true, nil
}

// ScheduleNamed schedules the call to be dispatched with the origin
// given at the start of block when. Names are unique: scheduling a
// name already scheduled fails with ErrFailedToSchedule.
func (s *Scheduler) ScheduleNamed(name []byte, when types.BlockNumber, priority uint8,
	origin types.Origin, call []byte) (address TaskAddress, err error) {
	exists, err := s.lookup.Contains(name)
	if err != nil {
		return address, err
	}
	if exists {
		return address, fmt.Errorf("%w: name 0x%x is taken", ErrFailedToSchedule, name)
	}

	err = s.ensureFuture(when)
	if err != nil {
		return address, err
	}

	task := Task{
		Name:     scale.Some(bytes.Clone(name)),
		Priority: priority,
		Origin:   origin,
		Call:     call,
	}
	address, err = s.place(when, task)
	if err != nil {
		return address, err
	}

	err = s.lookup.Insert(name, address)
	if err != nil {
		return address, err
	}

	s.scheduledCounter.Inc()
	logger.Debugf("scheduled task 0x%x at %s", name, address)
	return address, nil
}

// CancelNamed cancels the named task. Cancelling a name not scheduled
// does nothing.
func (s *Scheduler) CancelNamed(name []byte) error {
	address, ok, err := s.lookup.TryGet(name)
	if err != nil || !ok {
		return err
	}

	_, _, err = s.take(address)
	if err != nil {
		return err
	}

	err = s.lookup.Remove(name)
	if err != nil {
		return err
	}

	s.cancelledCounter.Inc()
	logger.Debugf("cancelled task 0x%x at %s", name, address)
	return nil
}

// RescheduleNamed moves the named task to the agenda of block when.
// On error the task stays where it was.
func (s *Scheduler) RescheduleNamed(name []byte, when types.BlockNumber) (address TaskAddress, err error) {
	old, ok, err := s.lookup.TryGet(name)
	if err != nil {
		return address, err
	}
	if !ok {
		return address, fmt.Errorf("%w: name 0x%x", ErrNotFound, name)
	}

	err = s.ensureFuture(when)
	if err != nil {
		return address, err
	}
	if when == old.When {
		return address, fmt.Errorf("%w: block %d", ErrRescheduleNoChange, when)
	}

	// The old slot is only emptied if the task finds room at block when.
	err = s.state.Transactional(func() error {
		task, ok, err := s.take(old)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: name 0x%x at %s", ErrNotFound, name, old)
		}

		address, err = s.place(when, task)
		if err != nil {
			return err
		}

		return s.lookup.Insert(name, address)
	})
	if err != nil {
		return TaskAddress{}, err
	}

	logger.Debugf("rescheduled task 0x%x from %s to %s", name, old, address)
	return address, nil
}

type agendaEntry struct {
	address TaskAddress
	task    Task
}

// OnInitialize dispatches the agenda of the block given, by priority
// then by scheduling order. Each task runs in its own storage
// transaction: a task returning an error leaves no state change, and
// does not stop the tasks following it.
func (s *Scheduler) OnInitialize(now types.BlockNumber) (dispatched int, err error) {
	agenda, _, err := s.agenda.Take(now)
	if err != nil {
		return 0, fmt.Errorf("taking agenda of block %d: %w", now, err)
	}

	entries := make([]agendaEntry, 0, len(agenda))
	for index, slot := range agenda {
		task, ok := slot.Get()
		if !ok {
			continue
		}
		entries = append(entries, agendaEntry{
			address: TaskAddress{When: now, Index: uint32(index)},
			task:    task,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].task.Priority < entries[j].task.Priority
	})

	for _, entry := range entries {
		name, named := entry.task.Name.Get()
		if named {
			err = s.lookup.Remove(name)
			if err != nil {
				return dispatched, err
			}
		}

		dispatchErr := s.state.Transactional(func() error {
			return s.dispatcher.Dispatch(entry.task.Origin, entry.task.Call)
		})
		dispatched++
		s.dispatchedCounter.Inc()
		if dispatchErr != nil {
			s.failedCounter.Inc()
			logger.Errorf("task 0x%x at %s failed: %s", name, entry.address, dispatchErr)
		}

		s.events.DepositEvent(EventDispatched{Task: entry.address, Name: name, Err: dispatchErr})
	}

	err = s.updateAgendaGauge()
	if err != nil {
		return dispatched, err
	}
	return dispatched, nil
}

func (s *Scheduler) updateAgendaGauge() error {
	var count int
	err := s.lookup.Iterate(func([]byte, TaskAddress) error {
		count++
		return nil
	})
	if err != nil {
		return fmt.Errorf("counting named tasks: %w", err)
	}
	s.agendaGauge.Set(float64(count))
	return nil
}
