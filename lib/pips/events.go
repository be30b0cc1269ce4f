// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pips

import (
	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// EventHistoricalPipsPruned is deposited when pruning closed
// proposals is enabled or disabled.
type EventHistoricalPipsPruned struct {
	DID types.IdentityID
	Old bool
	New bool
}

// EventMinimumProposalDepositChanged is deposited when the minimum
// deposit of community proposals changes.
type EventMinimumProposalDepositChanged struct {
	DID types.IdentityID
	Old types.Balance
	New types.Balance
}

// EventDefaultEnactmentPeriodChanged is deposited when the number of
// blocks between approval and execution changes.
type EventDefaultEnactmentPeriodChanged struct {
	DID types.IdentityID
	Old types.BlockNumber
	New types.BlockNumber
}

// EventPendingPipExpiryChanged is deposited when the number of blocks
// after which pending proposals expire changes.
type EventPendingPipExpiryChanged struct {
	DID types.IdentityID
	Old scale.Option[types.BlockNumber]
	New scale.Option[types.BlockNumber]
}

// EventMaxPipSkipCountChanged is deposited when the maximum number of
// skips changes.
type EventMaxPipSkipCountChanged struct {
	DID types.IdentityID
	Old SkippedCount
	New SkippedCount
}

// EventActivePipLimitChanged is deposited when the maximum number of
// active proposals changes.
type EventActivePipLimitChanged struct {
	DID types.IdentityID
	Old uint32
	New uint32
}

// EventProposalCreated is deposited when a proposal is made.
type EventProposalCreated struct {
	DID         types.IdentityID
	Proposer    Proposer
	ID          PipID
	Deposit     types.Balance
	URL         scale.Option[string]
	Description scale.Option[string]
	Expiry      scale.Option[types.BlockNumber]
	Data        ProposalData
}

// EventProposalAmended is deposited when the proposer changes the url
// or description of a proposal.
type EventProposalAmended struct {
	DID         types.IdentityID
	ID          PipID
	URL         scale.Option[string]
	Description scale.Option[string]
}

type EventProposalStateUpdated struct {
	DID   types.IdentityID
	ID    PipID
	State ProposalState
}

type EventVoted struct {
	DID     types.IdentityID
	Voter   types.AccountID
	ID      PipID
	Aye     bool
	Deposit types.Balance
}

// EventPipClosed is deposited when a proposal reaches a final state.
// Pruned is true if its data was removed.
type EventPipClosed struct {
	DID    types.IdentityID
	ID     PipID
	Pruned bool
}

// EventExecutionScheduled is deposited when the execution of a
// proposal is scheduled at block New. Old is the previously scheduled
// block, or zero.
type EventExecutionScheduled struct {
	DID types.IdentityID
	ID  PipID
	Old types.BlockNumber
	New types.BlockNumber
}

type EventExecutionSchedulingFailed struct {
	DID types.IdentityID
	ID  PipID
	At  types.BlockNumber
}

type EventExpiryScheduled struct {
	DID types.IdentityID
	ID  PipID
	At  types.BlockNumber
}

type EventExpirySchedulingFailed struct {
	DID types.IdentityID
	ID  PipID
	At  types.BlockNumber
}

type EventExecutionCancellingFailed struct {
	ID PipID
}

// EventProposalRefund is deposited when the deposits of a proposal
// are unlocked. Total is the amount unlocked.
type EventProposalRefund struct {
	DID   types.IdentityID
	ID    PipID
	Total types.Balance
}

type EventSnapshotCleared struct {
	DID types.IdentityID
	ID  SnapshotID
}

type EventSnapshotTaken struct {
	DID types.IdentityID
	ID  SnapshotID
}

type EventPipSkipped struct {
	DID   types.IdentityID
	ID    PipID
	Count SkippedCount
}

// EventSnapshotResultsEnacted is deposited when results of the
// snapshot are enacted.
type EventSnapshotResultsEnacted struct {
	DID        types.IdentityID
	SnapshotID scale.Option[SnapshotID]
	Skipped    []SkippedPip
	Rejected   []PipID
	Approved   []PipID
}

func (EventHistoricalPipsPruned) Pallet() string          { return palletName }
func (EventMinimumProposalDepositChanged) Pallet() string { return palletName }
func (EventDefaultEnactmentPeriodChanged) Pallet() string { return palletName }
func (EventPendingPipExpiryChanged) Pallet() string       { return palletName }
func (EventMaxPipSkipCountChanged) Pallet() string        { return palletName }
func (EventActivePipLimitChanged) Pallet() string         { return palletName }
func (EventProposalCreated) Pallet() string               { return palletName }
func (EventProposalAmended) Pallet() string               { return palletName }
func (EventProposalStateUpdated) Pallet() string          { return palletName }
func (EventVoted) Pallet() string                         { return palletName }
func (EventPipClosed) Pallet() string                     { return palletName }
func (EventExecutionScheduled) Pallet() string            { return palletName }
func (EventExecutionSchedulingFailed) Pallet() string     { return palletName }
func (EventExpiryScheduled) Pallet() string               { return palletName }
func (EventExpirySchedulingFailed) Pallet() string        { return palletName }
func (EventExecutionCancellingFailed) Pallet() string     { return palletName }
func (EventProposalRefund) Pallet() string                { return palletName }
func (EventSnapshotCleared) Pallet() string               { return palletName }
func (EventSnapshotTaken) Pallet() string                 { return palletName }
func (EventPipSkipped) Pallet() string                    { return palletName }
func (EventSnapshotResultsEnacted) Pallet() string        { return palletName }
