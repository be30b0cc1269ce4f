// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package pips implements the proposal pipeline of the governance:
// community members and committees make proposals, community members
// signal on them with locked deposits, and the governance committee
// approves, rejects or skips them from a snapshot of the priority
// queue. Approved proposals are executed through the scheduler.
package pips

import (
	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/balances"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/protocolfee"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/scheduler"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/storage"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/system"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
	"github.com/prometheus/client_golang/prometheus"
)

const palletName = "Pips"

// PipMaxReportingSize is the largest encoded proposal reported as is
// in EventProposalCreated.
const PipMaxReportingSize = 1024

// LockID is the balance lock holding the proposal deposits.
var LockID = balances.LockIdentifier{'p', 'i', 'p', 's', ' ', ' ', ' ', ' '}

var logger = log.NewFromGlobal(log.AddContext("pkg", "pips"))

// Chain returns the number of the block being built.
type Chain interface {
	BlockNumber() (types.BlockNumber, error)
}

// EventDepositor deposits events in the block being built.
type EventDepositor interface {
	DepositEvent(event system.Event)
}

// Locks holds the deposits of accounts.
type Locks interface {
	Locked(id balances.LockIdentifier, account types.AccountID) (types.Balance, error)
	IncreaseLock(id balances.LockIdentifier, account types.AccountID, amount types.Balance) error
	ReduceLock(id balances.LockIdentifier, account types.AccountID, amount types.Balance) error
}

// FeeCharger charges protocol fees.
type FeeCharger interface {
	ChargeFee(payer scale.Option[types.AccountID], op protocolfee.ProtocolOp) error
}

// Identities resolves the identities of account keys.
type Identities interface {
	GetIdentity(key types.AccountID) (types.IdentityID, bool, error)
	FlattenKeys(did types.IdentityID) ([]types.AccountID, error)
}

// GovernanceCommittee is the committee deciding on proposals.
type GovernanceCommittee interface {
	IsMember(did types.IdentityID) (bool, error)
	ReleaseCoordinator() (scale.Option[types.IdentityID], error)
}

// Scheduler dispatches calls at future blocks.
type Scheduler interface {
	ScheduleNamed(name []byte, when types.BlockNumber, priority uint8,
		origin types.Origin, call []byte) (scheduler.TaskAddress, error)
	CancelNamed(name []byte) error
	RescheduleNamed(name []byte, when types.BlockNumber) (scheduler.TaskAddress, error)
}

// Dispatcher dispatches encoded calls.
type Dispatcher interface {
	Dispatch(origin types.Origin, call []byte) error
}

// Config holds the collaborators of the pallet.
type Config struct {
	State               *storage.State
	Chain               Chain
	Events              EventDepositor
	Locks               Locks
	Fees                FeeCharger
	Identities          Identities
	GovernanceCommittee GovernanceCommittee
	Scheduler           Scheduler
	Dispatcher          Dispatcher
	TransactionVersion  uint32
}

// Pips is the proposal pipeline pallet.
type Pips struct {
	state              *storage.State
	chain              Chain
	events             EventDepositor
	locks              Locks
	fees               FeeCharger
	identities         Identities
	committee          GovernanceCommittee
	scheduler          Scheduler
	dispatcher         Dispatcher
	transactionVersion uint32

	pruneHistoricalPips    *storage.Value[bool]
	minProposalDeposit     *storage.Value[types.Balance]
	defaultEnactmentPeriod *storage.Value[types.BlockNumber]
	pendingPipExpiry       *storage.Value[scale.Option[types.BlockNumber]]
	maxPipSkipCount        *storage.Value[SkippedCount]
	activePipLimit         *storage.Value[uint32]

	pipIDSequence      *storage.Value[PipID]
	snapshotIDSequence *storage.Value[SnapshotID]
	activePipCount     *storage.Value[uint32]

	metadata      *storage.Map[PipID, Metadata]
	deposits      *storage.DoubleMap[PipID, types.AccountID, DepositInfo]
	proposals     *storage.Map[PipID, Pip]
	results       *storage.Map[PipID, VotingResult]
	votes         *storage.DoubleMap[PipID, types.AccountID, Vote]
	pipToSchedule *storage.Map[PipID, types.BlockNumber]
	liveQueue     *storage.Value[[]SnapshottedPip]
	snapshotQueue *storage.Value[[]SnapshottedPip]
	snapshotMeta  *storage.Value[SnapshotMetadata]
	skipCount     *storage.Map[PipID, SkippedCount]
	committeePips *storage.Value[[]PipID]

	activeGauge    prometheus.Gauge
	liveQueueGauge prometheus.Gauge
}

// New creates the pips pallet.
func New(cfg Config) *Pips {
	state := cfg.State
	return &Pips{
		state:              state,
		chain:              cfg.Chain,
		events:             cfg.Events,
		locks:              cfg.Locks,
		fees:               cfg.Fees,
		identities:         cfg.Identities,
		committee:          cfg.GovernanceCommittee,
		scheduler:          cfg.Scheduler,
		dispatcher:         cfg.Dispatcher,
		transactionVersion: cfg.TransactionVersion,

		pruneHistoricalPips:    storage.NewValue[bool](state, palletName, "PruneHistoricalPips"),
		minProposalDeposit:     storage.NewValue[types.Balance](state, palletName, "MinimumProposalDeposit"),
		defaultEnactmentPeriod: storage.NewValue[types.BlockNumber](state, palletName, "DefaultEnactmentPeriod"),
		pendingPipExpiry:       storage.NewValue[scale.Option[types.BlockNumber]](state, palletName, "PendingPipExpiry"),
		maxPipSkipCount:        storage.NewValue[SkippedCount](state, palletName, "MaxPipSkipCount"),
		activePipLimit:         storage.NewValue[uint32](state, palletName, "ActivePipLimit"),

		pipIDSequence:      storage.NewValue[PipID](state, palletName, "PipIdSequence"),
		snapshotIDSequence: storage.NewValue[SnapshotID](state, palletName, "SnapshotIdSequence"),
		activePipCount:     storage.NewValue[uint32](state, palletName, "ActivePipCount"),

		metadata: storage.NewMap[PipID, Metadata](state, palletName, "ProposalMetadata", common.Twox64Concat),
		deposits: storage.NewDoubleMap[PipID, types.AccountID, DepositInfo](
			state, palletName, "Deposits", common.Twox64Concat, common.Twox64Concat),
		proposals: storage.NewMap[PipID, Pip](state, palletName, "Proposals", common.Twox64Concat),
		results:   storage.NewMap[PipID, VotingResult](state, palletName, "ProposalResult", common.Twox64Concat),
		votes: storage.NewDoubleMap[PipID, types.AccountID, Vote](
			state, palletName, "ProposalVotes", common.Twox64Concat, common.Twox64Concat),
		pipToSchedule: storage.NewMap[PipID, types.BlockNumber](state, palletName, "PipToSchedule", common.Twox64Concat),
		liveQueue:     storage.NewValue[[]SnapshottedPip](state, palletName, "LiveQueue"),
		snapshotQueue: storage.NewValue[[]SnapshottedPip](state, palletName, "SnapshotQueue"),
		snapshotMeta:  storage.NewValue[SnapshotMetadata](state, palletName, "SnapshotMeta"),
		skipCount:     storage.NewMap[PipID, SkippedCount](state, palletName, "PipSkipCount", common.Twox64Concat),
		committeePips: storage.NewValue[[]PipID](state, palletName, "CommitteePips"),

		activeGauge:    activeGauge,
		liveQueueGauge: liveQueueGauge,
	}
}

// OnFinalize refreshes the metrics from the state of the block built.
func (p *Pips) OnFinalize() error {
	active, err := p.activePipCount.Get()
	if err != nil {
		return err
	}
	queue, err := p.liveQueue.Get()
	if err != nil {
		return err
	}

	p.activeGauge.Set(float64(active))
	p.liveQueueGauge.Set(float64(len(queue)))
	return nil
}

// currentIdentity returns the identity of the caller key.
func (p *Pips) currentIdentity(key types.AccountID) (types.IdentityID, error) {
	did, ok, err := p.identities.GetIdentity(key)
	if err != nil {
		return did, err
	}
	if !ok {
		return did, ErrMissingCurrentIdentity
	}
	return did, nil
}

// ensureCommitteeMember returns the identity of the signed caller,
// which must be a governance committee member.
func (p *Pips) ensureCommitteeMember(origin types.Origin) (key types.AccountID, did types.IdentityID, err error) {
	key, err = origin.EnsureSigned()
	if err != nil {
		return key, did, err
	}
	did, err = p.currentIdentity(key)
	if err != nil {
		return key, did, err
	}

	isMember, err := p.committee.IsMember(did)
	if err != nil {
		return key, did, err
	}
	if !isMember {
		return key, did, ErrNotACommitteeMember
	}
	return key, did, nil
}
