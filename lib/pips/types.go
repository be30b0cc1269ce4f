// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pips

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// PipID is the identifier of a proposal.
type PipID uint32

// SnapshotID is the identifier of a snapshot.
type SnapshotID uint32

// SkippedCount is the number of times a proposal was skipped.
type SkippedCount uint8

// Committee is a committee allowed to make proposals.
type Committee uint8

const (
	CommitteeTechnical Committee = iota
	CommitteeUpgrade
)

func (c Committee) String() string {
	switch c {
	case CommitteeTechnical:
		return "Technical"
	case CommitteeUpgrade:
		return "Upgrade"
	default:
		return fmt.Sprintf("Committee(%d)", uint8(c))
	}
}

// ProposerKind is the variant of a Proposer.
type ProposerKind uint8

const (
	ProposerCommunity ProposerKind = iota
	ProposerCommittee
)

// Proposer made a proposal: a community member account or a committee.
type Proposer struct {
	Kind      ProposerKind
	Account   types.AccountID
	Committee Committee
}

// NewCommunityProposer returns the proposer for a community member account.
func NewCommunityProposer(account types.AccountID) Proposer {
	return Proposer{Kind: ProposerCommunity, Account: account}
}

// NewCommitteeProposer returns the proposer for a committee.
func NewCommitteeProposer(committee Committee) Proposer {
	return Proposer{Kind: ProposerCommittee, Committee: committee}
}

// AsCommunity returns the account and true if a community member proposed.
func (p Proposer) AsCommunity() (account types.AccountID, ok bool) {
	return p.Account, p.Kind == ProposerCommunity
}

func (p Proposer) String() string {
	if p.Kind == ProposerCommittee {
		return "Committee(" + p.Committee.String() + ")"
	}
	return "Community(" + p.Account.Short() + ")"
}

// Encode implements the gsrpc Encodeable interface.
func (p Proposer) Encode(encoder scale.Encoder) error {
	if p.Kind == ProposerCommittee {
		return scale.EncodeVariant(encoder, byte(ProposerCommittee), p.Committee)
	}
	return scale.EncodeVariant(encoder, byte(ProposerCommunity), p.Account)
}

// Decode implements the gsrpc Decodeable interface.
func (p *Proposer) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	*p = Proposer{Kind: ProposerKind(b)}
	switch p.Kind {
	case ProposerCommunity:
		return decoder.Decode(&p.Account)
	case ProposerCommittee:
		return decoder.Decode(&p.Committee)
	default:
		return scale.UnknownVariantError("Proposer", b)
	}
}

// ProposalState is the state of a proposal in its lifecycle.
type ProposalState uint8

const (
	// Pending proposals are open to votes.
	Pending ProposalState = iota
	// Rejected proposals were rejected by the governance committee
	// or cancelled by their proposer.
	Rejected
	// Scheduled proposals were approved and wait for their execution.
	Scheduled
	// Failed proposals returned an error when executed.
	Failed
	// Executed proposals were executed successfully.
	Executed
	// Expired proposals stayed pending until their expiry.
	Expired
)

func (s ProposalState) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Rejected:
		return "Rejected"
	case Scheduled:
		return "Scheduled"
	case Failed:
		return "Failed"
	case Executed:
		return "Executed"
	case Expired:
		return "Expired"
	default:
		return fmt.Sprintf("ProposalState(%d)", uint8(s))
	}
}

// IsActive returns true for pending and scheduled proposals.
func (s ProposalState) IsActive() bool {
	return s == Pending || s == Scheduled
}

// Pip is a proposal with its encoded call.
type Pip struct {
	ID       PipID
	Proposal []byte
	State    ProposalState
	Proposer Proposer
}

// Metadata describes a proposal. Expiry is informative: pending
// proposals expire through the scheduler.
type Metadata struct {
	ID                 PipID
	URL                scale.Option[string]
	Description        scale.Option[string]
	CreatedAt          types.BlockNumber
	TransactionVersion uint32
	Expiry             scale.Option[types.BlockNumber]
}

// VotingResult sums the votes on a proposal.
type VotingResult struct {
	AyesCount uint32
	AyesStake types.Balance
	NaysCount uint32
	NaysStake types.Balance
}

// Vote is a signal for or against a proposal, with the deposit backing it.
type Vote struct {
	Aye     bool
	Deposit types.Balance
}

// VoteByPip is a vote and the proposal it was cast on.
type VoteByPip struct {
	Pip  PipID
	Vote Vote
}

// AccountVotes is the voting history of an account.
type AccountVotes struct {
	Account types.AccountID
	Votes   []VoteByPip
}

// VoteCount is the stake for and against a proposal. Found is false
// if the proposal has no voting result.
type VoteCount struct {
	Found bool
	Ayes  types.Balance
	Nays  types.Balance
}

// DepositInfo is an amount locked by an account on a proposal.
type DepositInfo struct {
	Owner  types.AccountID
	Amount types.Balance
}

// SnapshotMetadata describes the snapshot of the live queue.
type SnapshotMetadata struct {
	CreatedAt types.BlockNumber
	MadeBy    types.AccountID
	ID        SnapshotID
}

// Weight is the signed net stake of a proposal: the ayes stake minus
// the nays stake. Aye is false for a negative weight.
type Weight struct {
	Aye   bool
	Stake types.Balance
}

func (w Weight) String() string {
	if w.Aye {
		return fmt.Sprintf("+%d", w.Stake)
	}
	return fmt.Sprintf("-%d", w.Stake)
}

// SnapshottedPip is a proposal in a priority queue.
type SnapshottedPip struct {
	ID     PipID
	Weight Weight
}

// SnapshotResult is the decision of the governance committee on a
// proposal of the snapshot.
type SnapshotResult uint8

const (
	// Approve schedules the proposal for execution.
	Approve SnapshotResult = iota
	// Reject rejects the proposal.
	Reject
	// Skip leaves the proposal pending and increments its skip count.
	Skip
)

func (r SnapshotResult) String() string {
	switch r {
	case Approve:
		return "Approve"
	case Reject:
		return "Reject"
	case Skip:
		return "Skip"
	default:
		return fmt.Sprintf("SnapshotResult(%d)", uint8(r))
	}
}

// EnactResult is the decision on the proposal of the ID given.
type EnactResult struct {
	ID     PipID
	Result SnapshotResult
}

// SkippedPip is a skipped proposal with its new skip count.
type SkippedPip struct {
	ID    PipID
	Count SkippedCount
}

// ProposalData reports a proposal call: the encoded call itself, or
// its blake2b-256 hash when the encoding is larger than
// PipMaxReportingSize.
type ProposalData struct {
	Hash     scale.Option[common.Hash]
	Proposal []byte
}

func newProposalData(encoded []byte) (data ProposalData, err error) {
	if len(encoded) <= PipMaxReportingSize {
		return ProposalData{Proposal: encoded}, nil
	}

	hash, err := common.Blake2bHash(encoded)
	if err != nil {
		return data, fmt.Errorf("hashing proposal: %w", err)
	}
	return ProposalData{Hash: scale.Some(hash)}, nil
}
