// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pips

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/protocolfee"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
	"github.com/samber/lo"
)

// inferProposer returns the proposer acting with the origin and the
// identity acting for it: a signed origin is a community member, a
// technical or upgrade committee origin is that committee.
func (p *Pips) inferProposer(origin types.Origin) (proposer Proposer, did types.IdentityID, err error) {
	switch origin.Kind {
	case types.OriginSigned:
		did, err = p.currentIdentity(origin.Account)
		return NewCommunityProposer(origin.Account), did, err
	case types.OriginTechnicalCommittee:
		return NewCommitteeProposer(CommitteeTechnical), types.TechnicalCommitteeDID, nil
	case types.OriginUpgradeCommittee:
		return NewCommitteeProposer(CommitteeUpgrade), types.UpgradeCommitteeDID, nil
	default:
		return proposer, did, fmt.Errorf("%w: %s cannot propose", types.ErrBadOrigin, origin.Kind)
	}
}

// Propose makes a proposal of the encoded call. Community members lock
// the deposit, which must be at least the minimum proposal deposit, and
// signal for their proposal with it. Committees make proposals without
// deposit. The PipsPropose fee is charged to the payer of the origin,
// committee proposals included. The ID of the new proposal is returned.
func (p *Pips) Propose(origin types.Origin, proposal []byte, deposit types.Balance,
	url, description scale.Option[string]) (id PipID, err error) {
	proposer, did, err := p.inferProposer(origin)
	if err != nil {
		return 0, err
	}

	err = p.state.Transactional(func() error {
		id, err = p.propose(proposer, did, origin.Payer(), proposal, deposit, url, description)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (p *Pips) propose(proposer Proposer, did types.IdentityID, payer scale.Option[types.AccountID],
	proposal []byte, deposit types.Balance, url, description scale.Option[string]) (id PipID, err error) {
	account, community := proposer.AsCommunity()
	if community {
		err = p.ensureBelowActiveLimit()
		if err != nil {
			return 0, err
		}

		minimum, err := p.minProposalDeposit.Get()
		if err != nil {
			return 0, err
		}
		if deposit < minimum {
			return 0, fmt.Errorf("%w: %d is below the minimum of %d", ErrIncorrectDeposit, deposit, minimum)
		}

		err = p.increaseLock(account, deposit)
		if err != nil {
			return 0, err
		}
	} else if deposit != 0 {
		return 0, fmt.Errorf("%w: committee proposals have no deposit", ErrNotFromCommunity)
	}

	err = p.fees.ChargeFee(payer, protocolfee.PipsPropose)
	if err != nil {
		return 0, err
	}

	id, err = p.nextPipID()
	if err != nil {
		return 0, err
	}
	createdAt, err := p.chain.BlockNumber()
	if err != nil {
		return 0, err
	}
	expiryPeriod, err := p.pendingPipExpiry.Get()
	if err != nil {
		return 0, err
	}
	expiry := scale.None[types.BlockNumber]()
	if period, ok := expiryPeriod.Get(); ok {
		expiry = scale.Some(createdAt.SaturatingAdd(period))
	}

	data, err := newProposalData(proposal)
	if err != nil {
		return 0, err
	}

	err = p.metadata.Insert(id, Metadata{
		ID:                 id,
		URL:                url,
		Description:        description,
		CreatedAt:          createdAt,
		TransactionVersion: p.transactionVersion,
		Expiry:             expiry,
	})
	if err != nil {
		return 0, err
	}
	err = p.proposals.Insert(id, Pip{ID: id, Proposal: proposal, State: Pending, Proposer: proposer})
	if err != nil {
		return 0, err
	}
	err = p.activePipCount.Mutate(func(count *uint32) error {
		*count++
		return nil
	})
	if err != nil {
		return 0, err
	}

	if at, ok := expiry.Get(); ok {
		p.scheduleForExpiry(id, at)
	}

	if community {
		err = p.deposits.Insert(id, account, DepositInfo{Owner: account, Amount: deposit})
		if err != nil {
			return 0, err
		}
		err = p.unsafeVote(id, account, Vote{Aye: true, Deposit: deposit})
		if err != nil {
			return 0, err
		}
		result, err := p.results.Get(id)
		if err != nil {
			return 0, err
		}
		err = p.liveQueue.Mutate(func(queue *[]SnapshottedPip) error {
			*queue = insertSorted(*queue, SnapshottedPip{ID: id, Weight: result.Weight()})
			return nil
		})
		if err != nil {
			return 0, err
		}
	} else {
		err = p.committeePips.Mutate(func(ids *[]PipID) error {
			*ids = append(*ids, id)
			return nil
		})
		if err != nil {
			return 0, err
		}
	}

	p.events.DepositEvent(EventProposalCreated{
		DID:         did,
		Proposer:    proposer,
		ID:          id,
		Deposit:     deposit,
		URL:         url,
		Description: description,
		Expiry:      expiry,
		Data:        data,
	})
	logger.Debugf("%s made PIP #%d", proposer, id)
	return id, nil
}

func (p *Pips) ensureBelowActiveLimit() error {
	limit, err := p.activePipLimit.Get()
	if err != nil || limit == 0 {
		return err
	}
	active, err := p.activePipCount.Get()
	if err != nil {
		return err
	}
	if active >= limit {
		return fmt.Errorf("%w: %d active for a limit of %d", ErrTooManyActivePips, active, limit)
	}
	return nil
}

func (p *Pips) nextPipID() (id PipID, err error) {
	err = p.pipIDSequence.Mutate(func(sequence *PipID) error {
		*sequence++
		id = *sequence
		return nil
	})
	return id, err
}

// proposal returns the proposal or ErrNoSuchProposal.
func (p *Pips) proposal(id PipID) (Pip, error) {
	pip, ok, err := p.proposals.TryGet(id)
	if err != nil {
		return pip, err
	}
	if !ok {
		return pip, fmt.Errorf("%w: #%d", ErrNoSuchProposal, id)
	}
	return pip, nil
}

// ensureState returns the proposal if it is in the state given.
func (p *Pips) ensureState(id PipID, state ProposalState) (Pip, error) {
	pip, err := p.proposal(id)
	if err != nil {
		return pip, err
	}
	if pip.State != state {
		return pip, fmt.Errorf("%w: PIP #%d is %s, expected %s", ErrIncorrectProposalState, id, pip.State, state)
	}
	return pip, nil
}

// Vote signals for or against the pending community proposal, backed
// by the deposit given. A new vote of the same account replaces its
// previous vote, and its locked deposit is adjusted to the new one.
func (p *Pips) Vote(origin types.Origin, id PipID, aye bool, deposit types.Balance) error {
	voter, err := origin.EnsureSigned()
	if err != nil {
		return err
	}

	pip, err := p.proposal(id)
	if err != nil {
		return err
	}
	proposer, community := pip.Proposer.AsCommunity()
	if !community {
		return fmt.Errorf("%w: PIP #%d is by %s", ErrNotFromCommunity, id, pip.Proposer)
	}
	if proposer == voter {
		minimum, err := p.minProposalDeposit.Get()
		if err != nil {
			return err
		}
		if deposit < minimum {
			return fmt.Errorf("%w: proposer deposit %d is below the minimum of %d",
				ErrIncorrectDeposit, deposit, minimum)
		}
	}
	if pip.State != Pending {
		return fmt.Errorf("%w: PIP #%d is %s", ErrIncorrectProposalState, id, pip.State)
	}

	did, err := p.currentIdentity(voter)
	if err != nil {
		return err
	}

	return p.state.Transactional(func() error {
		return p.vote(did, voter, id, Vote{Aye: aye, Deposit: deposit})
	})
}

func (p *Pips) vote(did types.IdentityID, voter types.AccountID, id PipID, vote Vote) error {
	result, err := p.results.Get(id)
	if err != nil {
		return err
	}
	oldWeight := result.Weight()

	current, err := p.deposits.Get(id, voter)
	if err != nil {
		return err
	}
	if vote.Deposit < current.Amount {
		err = p.reduceLock(voter, current.Amount-vote.Deposit)
	} else {
		err = p.increaseLock(voter, vote.Deposit-current.Amount)
	}
	if err != nil {
		return err
	}

	err = p.unsafeVote(id, voter, vote)
	if err != nil {
		return err
	}

	result, err = p.results.Get(id)
	if err != nil {
		return err
	}
	err = p.updateLiveQueue(id, oldWeight, result.Weight())
	if err != nil {
		return err
	}

	err = p.deposits.Insert(id, voter, DepositInfo{Owner: voter, Amount: vote.Deposit})
	if err != nil {
		return err
	}

	p.events.DepositEvent(EventVoted{DID: did, Voter: voter, ID: id, Aye: vote.Aye, Deposit: vote.Deposit})
	return nil
}

// unsafeVote replaces the vote of the voter in the voting result.
func (p *Pips) unsafeVote(id PipID, voter types.AccountID, vote Vote) error {
	result, err := p.results.Get(id)
	if err != nil {
		return err
	}

	old, voted, err := p.votes.TryGet(id, voter)
	if err != nil {
		return err
	}
	if voted {
		if old.Aye {
			result.AyesCount--
			result.AyesStake -= old.Deposit
		} else {
			result.NaysCount--
			result.NaysStake -= old.Deposit
		}
	}

	count, stake := &result.NaysCount, &result.NaysStake
	if vote.Aye {
		count, stake = &result.AyesCount, &result.AyesStake
	}
	if *count == ^uint32(0) {
		return fmt.Errorf("%w: on PIP #%d", ErrNumberOfVotesExceeded, id)
	}
	*count++
	sum, ok := stake.CheckedAdd(vote.Deposit)
	if !ok {
		return fmt.Errorf("%w: on PIP #%d", ErrStakeAmountOfVotesExceeded, id)
	}
	*stake = sum

	err = p.results.Insert(id, result)
	if err != nil {
		return err
	}
	return p.votes.Insert(id, voter, vote)
}

// ensureProposer returns the pending community proposal if the signed
// caller made it.
func (p *Pips) ensureProposer(origin types.Origin, id PipID) (pip Pip, did types.IdentityID, err error) {
	account, err := origin.EnsureSigned()
	if err != nil {
		return pip, did, err
	}
	did, err = p.currentIdentity(account)
	if err != nil {
		return pip, did, err
	}

	pip, err = p.proposal(id)
	if err != nil {
		return pip, did, err
	}
	proposer, community := pip.Proposer.AsCommunity()
	if !community {
		return pip, did, fmt.Errorf("%w: PIP #%d is by %s", ErrNotFromCommunity, id, pip.Proposer)
	}
	if proposer != account {
		return pip, did, fmt.Errorf("%w: PIP #%d by %s", ErrUnauthorized, id, pip.Proposer)
	}
	if pip.State != Pending {
		return pip, did, fmt.Errorf("%w: PIP #%d is %s", ErrIncorrectProposalState, id, pip.State)
	}
	return pip, did, nil
}

// AmendProposal changes the url and description of a pending proposal.
// Only its proposer may do so.
func (p *Pips) AmendProposal(origin types.Origin, id PipID, url, description scale.Option[string]) error {
	_, did, err := p.ensureProposer(origin, id)
	if err != nil {
		return err
	}

	err = p.metadata.Mutate(id, func(metadata *Metadata) error {
		metadata.URL = url
		metadata.Description = description
		return nil
	})
	if err != nil {
		return err
	}

	p.events.DepositEvent(EventProposalAmended{DID: did, ID: id, URL: url, Description: description})
	return nil
}

// CancelProposal rejects a pending proposal on behalf of its proposer,
// refunding its deposits.
func (p *Pips) CancelProposal(origin types.Origin, id PipID) error {
	pip, did, err := p.ensureProposer(origin, id)
	if err != nil {
		return err
	}
	return p.rejectProposal(did, pip)
}

// ApproveCommitteeProposal schedules the execution of the pending
// committee proposal.
func (p *Pips) ApproveCommitteeProposal(origin types.Origin, id PipID) error {
	err := origin.EnsureKind(types.OriginGovernanceCommittee)
	if err != nil {
		return err
	}

	pip, err := p.ensureState(id, Pending)
	if err != nil {
		return err
	}
	if _, community := pip.Proposer.AsCommunity(); community {
		return fmt.Errorf("%w: PIP #%d is by %s", ErrNotByCommittee, id, pip.Proposer)
	}

	return p.scheduleForExecution(types.GovernanceCommitteeDID, id)
}

// RejectProposal rejects the pending or scheduled proposal, refunding
// its deposits.
func (p *Pips) RejectProposal(origin types.Origin, id PipID) error {
	err := origin.EnsureKind(types.OriginGovernanceCommittee)
	if err != nil {
		return err
	}

	pip, err := p.proposal(id)
	if err != nil {
		return err
	}
	if !pip.State.IsActive() {
		return fmt.Errorf("%w: PIP #%d is %s", ErrIncorrectProposalState, id, pip.State)
	}
	return p.rejectProposal(types.GovernanceCommitteeDID, pip)
}

func (p *Pips) rejectProposal(did types.IdentityID, pip Pip) (err error) {
	switch pip.State {
	case Scheduled:
		err = p.unschedule(pip.ID)
	case Pending:
		err = p.unsnapshot(pip.ID)
	}
	if err != nil {
		return err
	}
	return p.maybePrune(did, pip.ID, Rejected)
}

// PruneProposal removes the data of a closed proposal.
func (p *Pips) PruneProposal(origin types.Origin, id PipID) error {
	err := origin.EnsureKind(types.OriginGovernanceCommittee)
	if err != nil {
		return err
	}

	pip, err := p.proposal(id)
	if err != nil {
		return err
	}
	if pip.State.IsActive() {
		return fmt.Errorf("%w: PIP #%d is %s", ErrIncorrectProposalState, id, pip.State)
	}
	return p.pruneData(types.GovernanceCommitteeDID, id, pip.State, true)
}

// updateState sets the state of the proposal. The active count is
// decremented when an active proposal is closed.
func (p *Pips) updateState(did types.IdentityID, id PipID, state ProposalState) error {
	err := p.proposals.Mutate(id, func(pip *Pip) error {
		if !(pip.State == Pending && state == Scheduled) {
			err := p.decrementIfActive(pip.State)
			if err != nil {
				return err
			}
		}
		pip.State = state
		return nil
	})
	if err != nil {
		return err
	}

	p.events.DepositEvent(EventProposalStateUpdated{DID: did, ID: id, State: state})
	return nil
}

func (p *Pips) decrementIfActive(state ProposalState) error {
	if !state.IsActive() {
		return nil
	}
	return p.activePipCount.Mutate(func(count *uint32) error {
		if *count > 0 {
			*count--
		}
		return nil
	})
}

// maybePrune closes the proposal in the state given, and removes its
// data if historical proposals are pruned.
func (p *Pips) maybePrune(did types.IdentityID, id PipID, state ProposalState) error {
	err := p.updateState(did, id, state)
	if err != nil {
		return err
	}
	prune, err := p.pruneHistoricalPips.Get()
	if err != nil {
		return err
	}
	return p.pruneData(did, id, state, prune)
}

// pruneData refunds the proposal and removes its data if prune is set.
// Scheduling data is removed by the callers.
func (p *Pips) pruneData(did types.IdentityID, id PipID, state ProposalState, prune bool) error {
	err := p.refundProposal(did, id)
	if err != nil {
		return err
	}
	err = p.decrementIfActive(state)
	if err != nil {
		return err
	}

	if prune {
		err = p.removeData(id)
		if err != nil {
			return fmt.Errorf("pruning PIP #%d: %w", id, err)
		}
	}

	p.events.DepositEvent(EventPipClosed{DID: did, ID: id, Pruned: prune})
	return nil
}

func (p *Pips) removeData(id PipID) error {
	err := p.results.Remove(id)
	if err != nil {
		return err
	}
	err = p.votes.RemovePrefix(id)
	if err != nil {
		return err
	}
	err = p.metadata.Remove(id)
	if err != nil {
		return err
	}

	pip, ok, err := p.proposals.TryGet(id)
	if err != nil {
		return err
	}
	if _, community := pip.Proposer.AsCommunity(); ok && !community {
		err = p.committeePips.Mutate(func(ids *[]PipID) error {
			*ids = lo.Without(*ids, id)
			return nil
		})
		if err != nil {
			return err
		}
	}

	err = p.proposals.Remove(id)
	if err != nil {
		return err
	}
	return p.skipCount.Remove(id)
}
