// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pips

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
	"github.com/qdm12/gotree"
)

// Proposal returns the proposal of the ID given.
func (p *Pips) Proposal(id PipID) (pip Pip, ok bool, err error) {
	return p.proposals.TryGet(id)
}

// ProposalMetadata returns the metadata of the proposal of the ID given.
func (p *Pips) ProposalMetadata(id PipID) (metadata Metadata, ok bool, err error) {
	return p.metadata.TryGet(id)
}

func (p *Pips) ProposalResult(id PipID) (VotingResult, error) {
	return p.results.Get(id)
}

// ProposalVote returns the vote of the account on the proposal.
func (p *Pips) ProposalVote(id PipID, account types.AccountID) (vote Vote, ok bool, err error) {
	return p.votes.TryGet(id, account)
}

// PipToSchedule returns the block the execution of the proposal is
// scheduled at.
func (p *Pips) PipToSchedule(id PipID) (at types.BlockNumber, ok bool, err error) {
	return p.pipToSchedule.TryGet(id)
}

// CommitteePips returns the IDs of the committee proposals not pruned.
func (p *Pips) CommitteePips() ([]PipID, error) {
	return p.committeePips.Get()
}

// GetVotes returns the stakes for and against the proposal.
func (p *Pips) GetVotes(id PipID) (count VoteCount, err error) {
	result, ok, err := p.results.TryGet(id)
	if err != nil || !ok {
		return count, err
	}
	return VoteCount{Found: true, Ayes: result.AyesStake, Nays: result.NaysStake}, nil
}

// ProposedBy returns the IDs of the proposals of the proposer.
func (p *Pips) ProposedBy(proposer Proposer) (ids []PipID, err error) {
	err = p.proposals.Iterate(func(id PipID, pip Pip) error {
		if pip.Proposer == proposer {
			ids = append(ids, id)
		}
		return nil
	})
	return ids, err
}

// VotedOn returns the IDs of the proposals the account voted on.
func (p *Pips) VotedOn(account types.AccountID) (ids []PipID, err error) {
	history, err := p.VotingHistoryByAddress(account)
	if err != nil {
		return nil, err
	}
	for _, vote := range history {
		ids = append(ids, vote.Pip)
	}
	return ids, nil
}

// VotingHistoryByAddress returns the votes of the account on the
// proposals not pruned.
func (p *Pips) VotingHistoryByAddress(account types.AccountID) (history []VoteByPip, err error) {
	err = p.proposals.Iterate(func(id PipID, _ Pip) error {
		vote, ok, err := p.votes.TryGet(id, account)
		if err != nil {
			return err
		}
		if ok {
			history = append(history, VoteByPip{Pip: id, Vote: vote})
		}
		return nil
	})
	return history, err
}

// VotingHistoryByID returns the voting history of every key of the identity.
func (p *Pips) VotingHistoryByID(did types.IdentityID) (history []AccountVotes, err error) {
	keys, err := p.identities.FlattenKeys(did)
	if err != nil {
		return nil, fmt.Errorf("listing keys of %s: %w", did, err)
	}

	history = make([]AccountVotes, len(keys))
	for i, key := range keys {
		votes, err := p.VotingHistoryByAddress(key)
		if err != nil {
			return nil, err
		}
		history[i] = AccountVotes{Account: key, Votes: votes}
	}
	return history, nil
}

// ProposalDetails gathers the proposal of the ID given with its
// metadata, voting result and execution block.
func (p *Pips) ProposalDetails(id PipID) (details Details, err error) {
	details.Pip, err = p.proposal(id)
	if err != nil {
		return details, err
	}
	details.Metadata, err = p.metadata.Get(id)
	if err != nil {
		return details, err
	}
	details.Result, err = p.results.Get(id)
	if err != nil {
		return details, err
	}
	at, ok, err := p.pipToSchedule.TryGet(id)
	if err != nil {
		return details, err
	}
	if ok {
		details.ScheduledAt = scale.Some(at)
	}
	return details, nil
}

// String renders the proposal and its metadata as a tree.
func (d Details) String() string {
	tree := gotree.New(fmt.Sprintf("PIP #%d", d.Pip.ID))
	tree.Appendf("Proposer: %s", d.Pip.Proposer)
	tree.Appendf("State: %s", d.Pip.State)
	tree.Appendf("Created at: #%d", d.Metadata.CreatedAt)
	if expiry, ok := d.Metadata.Expiry.Get(); ok {
		tree.Appendf("Expiry: #%d", expiry)
	}
	if url, ok := d.Metadata.URL.Get(); ok {
		tree.Appendf("URL: %s", url)
	}
	if description, ok := d.Metadata.Description.Get(); ok {
		tree.Appendf("Description: %s", description)
	}
	votes := tree.Appendf("Votes")
	votes.Appendf("Ayes: %d with %d", d.Result.AyesCount, d.Result.AyesStake)
	votes.Appendf("Nays: %d with %d", d.Result.NaysCount, d.Result.NaysStake)
	if at, ok := d.ScheduledAt.Get(); ok {
		tree.Appendf("Execution: #%d", at)
	}
	return tree.String()
}

// Details gathers what is known about a proposal.
type Details struct {
	Pip         Pip
	Metadata    Metadata
	Result      VotingResult
	ScheduledAt scale.Option[types.BlockNumber]
}
