// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pips

import (
	"errors"
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/scheduler"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// schedulePriority keeps executions and expiries in the block they
// are scheduled for.
const schedulePriority = scheduler.PriorityHardDeadline

func scheduleName(prefix string, id PipID) []byte {
	return append([]byte(prefix), scale.MustMarshal(id)...)
}

// ExecutionName is the scheduler task name of the execution of the proposal.
func ExecutionName(id PipID) []byte {
	return scheduleName("pip_execute", id)
}

// ExpiryName is the scheduler task name of the expiry of the proposal.
func ExpiryName(id PipID) []byte {
	return scheduleName("pip_expire", id)
}

// executionBlock returns the block approved proposals are executed at.
func (p *Pips) executionBlock() (types.BlockNumber, error) {
	now, err := p.chain.BlockNumber()
	if err != nil {
		return 0, err
	}
	period, err := p.defaultEnactmentPeriod.Get()
	if err != nil {
		return 0, err
	}
	if period == 0 {
		period = 1
	}
	return now.SaturatingAdd(period), nil
}

// scheduleForExecution schedules the proposal and sets its state to
// Scheduled. Failing to schedule it is reported by an event, and
// leaves it scheduled so it can be rescheduled.
func (p *Pips) scheduleForExecution(did types.IdentityID, id PipID) error {
	at, err := p.executionBlock()
	if err != nil {
		return err
	}

	err = p.updateState(did, id, Scheduled)
	if err != nil {
		return err
	}
	err = p.pipToSchedule.Insert(id, at)
	if err != nil {
		return err
	}

	call, err := types.EncodeCall(ExecuteScheduledPipCall{ID: id})
	if err != nil {
		return err
	}
	_, err = p.scheduler.ScheduleNamed(ExecutionName(id), at, schedulePriority, types.RootOrigin(), call)
	if err != nil {
		logger.Warnf("cannot schedule execution of PIP #%d at block %d: %s", id, at, err)
		p.events.DepositEvent(EventExecutionSchedulingFailed{DID: did, ID: id, At: at})
		return nil
	}

	p.events.DepositEvent(EventExecutionScheduled{DID: did, ID: id, New: at})
	return nil
}

// scheduleForExpiry schedules the expiry of the proposal at the block
// given. Failing to schedule it is reported by an event.
func (p *Pips) scheduleForExpiry(id PipID, at types.BlockNumber) {
	did := types.GovernanceCommitteeDID
	call, err := types.EncodeCall(ExpireScheduledPipCall{DID: did, ID: id})
	if err == nil {
		_, err = p.scheduler.ScheduleNamed(ExpiryName(id), at, schedulePriority, types.RootOrigin(), call)
	}
	if err != nil {
		logger.Warnf("cannot schedule expiry of PIP #%d at block %d: %s", id, at, err)
		p.events.DepositEvent(EventExpirySchedulingFailed{DID: did, ID: id, At: at})
		return
	}

	p.events.DepositEvent(EventExpiryScheduled{DID: did, ID: id, At: at})
}

// unschedule cancels the execution of the proposal. Failing to cancel
// it is reported by an event.
func (p *Pips) unschedule(id PipID) error {
	err := p.pipToSchedule.Remove(id)
	if err != nil {
		return err
	}

	err = p.scheduler.CancelNamed(ExecutionName(id))
	if err != nil {
		logger.Warnf("cannot cancel execution of PIP #%d: %s", id, err)
		p.events.DepositEvent(EventExecutionCancellingFailed{ID: id})
	}
	return nil
}

// RescheduleExecution moves the execution of the scheduled proposal to
// block until, or to the next block if until is None. Only the release
// coordinator may do so.
func (p *Pips) RescheduleExecution(origin types.Origin, id PipID, until scale.Option[types.BlockNumber]) error {
	account, err := origin.EnsureSigned()
	if err != nil {
		return err
	}
	did, err := p.currentIdentity(account)
	if err != nil {
		return err
	}

	coordinator, err := p.committee.ReleaseCoordinator()
	if err != nil {
		return err
	}
	if current, ok := coordinator.Get(); !ok || current != did {
		return fmt.Errorf("%w: %s", ErrRescheduleNotByReleaseCoordinator, did)
	}

	_, err = p.ensureState(id, Scheduled)
	if err != nil {
		return err
	}

	now, err := p.chain.BlockNumber()
	if err != nil {
		return err
	}
	next := now.SaturatingAdd(1)
	at := until.UnwrapOr(next)
	if at < next {
		return fmt.Errorf("%w: block %d at block %d", ErrInvalidFutureBlockNumber, at, now)
	}

	old, err := p.pipToSchedule.Get(id)
	if err != nil {
		return err
	}
	err = p.pipToSchedule.Insert(id, at)
	if err != nil {
		return err
	}

	err = p.reschedule(id, at)
	if err != nil {
		logger.Warnf("cannot reschedule execution of PIP #%d at block %d: %s", id, at, err)
		p.events.DepositEvent(EventExecutionSchedulingFailed{DID: types.GovernanceCommitteeDID, ID: id, At: at})
		return nil
	}

	p.events.DepositEvent(EventExecutionScheduled{DID: did, ID: id, Old: old, New: at})
	return nil
}

// reschedule moves the execution task of the proposal, scheduling it
// again if the scheduler lost it.
func (p *Pips) reschedule(id PipID, at types.BlockNumber) error {
	name := ExecutionName(id)
	_, err := p.scheduler.RescheduleNamed(name, at)
	switch {
	case err == nil, errors.Is(err, scheduler.ErrRescheduleNoChange):
		return nil
	case errors.Is(err, scheduler.ErrNotFound):
		call, err := types.EncodeCall(ExecuteScheduledPipCall{ID: id})
		if err != nil {
			return err
		}
		_, err = p.scheduler.ScheduleNamed(name, at, schedulePriority, types.RootOrigin(), call)
		return err
	default:
		return err
	}
}

// ExecuteScheduledPip dispatches the call of the scheduled proposal
// with the root origin. The proposal is then closed as Executed, or as
// Failed if the call returned an error. The error of the call is not
// returned.
func (p *Pips) ExecuteScheduledPip(origin types.Origin, id PipID) error {
	err := origin.EnsureRoot()
	if err != nil {
		return err
	}

	err = p.pipToSchedule.Remove(id)
	if err != nil {
		return err
	}

	pip, ok, err := p.proposals.TryGet(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: #%d", ErrScheduledProposalDoesntExist, id)
	}
	if pip.State != Scheduled {
		return fmt.Errorf("%w: PIP #%d is %s", ErrProposalNotInScheduledState, id, pip.State)
	}

	state := Executed
	dispatchErr := p.state.Transactional(func() error {
		return p.dispatcher.Dispatch(types.RootOrigin(), pip.Proposal)
	})
	if dispatchErr != nil {
		logger.Errorf("PIP #%d failed: %s", id, dispatchErr)
		state = Failed
	}

	return p.maybePrune(types.GovernanceCommitteeDID, id, state)
}

// ExpireScheduledPip expires the proposal if it is still pending.
func (p *Pips) ExpireScheduledPip(origin types.Origin, did types.IdentityID, id PipID) error {
	err := origin.EnsureRoot()
	if err != nil {
		return err
	}

	pip, ok, err := p.proposals.TryGet(id)
	if err != nil || !ok || pip.State != Pending {
		return err
	}

	err = p.unsnapshot(id)
	if err != nil {
		return err
	}
	return p.maybePrune(did, id, Expired)
}
