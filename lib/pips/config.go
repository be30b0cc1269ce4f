// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pips

import (
	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/system"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// Genesis is the initial configuration of the pallet.
type Genesis struct {
	PruneHistoricalPips    bool
	MinProposalDeposit     types.Balance
	DefaultEnactmentPeriod types.BlockNumber
	PendingPipExpiry       scale.Option[types.BlockNumber]
	MaxPipSkipCount        SkippedCount
	ActivePipLimit         uint32
}

// ApplyGenesis writes the genesis configuration to storage.
func (p *Pips) ApplyGenesis(genesis Genesis) (err error) {
	if err = p.pruneHistoricalPips.Put(genesis.PruneHistoricalPips); err != nil {
		return err
	}
	if err = p.minProposalDeposit.Put(genesis.MinProposalDeposit); err != nil {
		return err
	}
	if err = p.defaultEnactmentPeriod.Put(genesis.DefaultEnactmentPeriod); err != nil {
		return err
	}
	if err = p.pendingPipExpiry.Put(genesis.PendingPipExpiry); err != nil {
		return err
	}
	if err = p.maxPipSkipCount.Put(genesis.MaxPipSkipCount); err != nil {
		return err
	}
	return p.activePipLimit.Put(genesis.ActivePipLimit)
}

// setConfig replaces a configuration value and deposits the event
// built from the old and new values.
func setConfig[T any](origin types.Origin, p *Pips, get func() (T, error), put func(T) error,
	value T, event func(old, updated T) system.Event) error {
	err := origin.EnsureRoot()
	if err != nil {
		return err
	}

	old, err := get()
	if err != nil {
		return err
	}
	err = put(value)
	if err != nil {
		return err
	}

	p.events.DepositEvent(event(old, value))
	return nil
}

// SetPruneHistoricalPips enables or disables the removal of the data
// of proposals reaching a final state.
func (p *Pips) SetPruneHistoricalPips(origin types.Origin, prune bool) error {
	return setConfig(origin, p, p.pruneHistoricalPips.Get, p.pruneHistoricalPips.Put, prune,
		func(old, updated bool) system.Event {
			return EventHistoricalPipsPruned{DID: types.GovernanceCommitteeDID, Old: old, New: updated}
		})
}

// SetMinProposalDeposit changes the minimum deposit of community proposals.
func (p *Pips) SetMinProposalDeposit(origin types.Origin, deposit types.Balance) error {
	return setConfig(origin, p, p.minProposalDeposit.Get, p.minProposalDeposit.Put, deposit,
		func(old, updated types.Balance) system.Event {
			return EventMinimumProposalDepositChanged{DID: types.GovernanceCommitteeDID, Old: old, New: updated}
		})
}

// SetDefaultEnactmentPeriod changes the number of blocks between the
// approval of a proposal and its execution.
func (p *Pips) SetDefaultEnactmentPeriod(origin types.Origin, period types.BlockNumber) error {
	return setConfig(origin, p, p.defaultEnactmentPeriod.Get, p.defaultEnactmentPeriod.Put, period,
		func(old, updated types.BlockNumber) system.Event {
			return EventDefaultEnactmentPeriodChanged{DID: types.GovernanceCommitteeDID, Old: old, New: updated}
		})
}

// SetPendingPipExpiry changes the number of blocks after which new
// proposals expire if still pending. None disables expiry.
func (p *Pips) SetPendingPipExpiry(origin types.Origin, expiry scale.Option[types.BlockNumber]) error {
	return setConfig(origin, p, p.pendingPipExpiry.Get, p.pendingPipExpiry.Put, expiry,
		func(old, updated scale.Option[types.BlockNumber]) system.Event {
			return EventPendingPipExpiryChanged{DID: types.GovernanceCommitteeDID, Old: old, New: updated}
		})
}

func (p *Pips) SetMaxPipSkipCount(origin types.Origin, max SkippedCount) error {
	return setConfig(origin, p, p.maxPipSkipCount.Get, p.maxPipSkipCount.Put, max,
		func(old, updated SkippedCount) system.Event {
			return EventMaxPipSkipCountChanged{DID: types.GovernanceCommitteeDID, Old: old, New: updated}
		})
}

// SetActivePipLimit changes the maximum number of active proposals.
// Zero means no limit.
func (p *Pips) SetActivePipLimit(origin types.Origin, limit uint32) error {
	return setConfig(origin, p, p.activePipLimit.Get, p.activePipLimit.Put, limit,
		func(old, updated uint32) system.Event {
			return EventActivePipLimitChanged{DID: types.GovernanceCommitteeDID, Old: old, New: updated}
		})
}

// PruneHistoricalPips returns true if the data of closed proposals is removed.
func (p *Pips) PruneHistoricalPips() (bool, error) {
	return p.pruneHistoricalPips.Get()
}

func (p *Pips) MinProposalDeposit() (types.Balance, error) {
	return p.minProposalDeposit.Get()
}

func (p *Pips) DefaultEnactmentPeriod() (types.BlockNumber, error) {
	return p.defaultEnactmentPeriod.Get()
}

func (p *Pips) PendingPipExpiry() (scale.Option[types.BlockNumber], error) {
	return p.pendingPipExpiry.Get()
}

func (p *Pips) MaxPipSkipCount() (SkippedCount, error) {
	return p.maxPipSkipCount.Get()
}

func (p *Pips) ActivePipLimit() (uint32, error) {
	return p.activePipLimit.Get()
}

// ActivePipCount returns the number of pending and scheduled proposals.
func (p *Pips) ActivePipCount() (uint32, error) {
	return p.activePipCount.Get()
}
