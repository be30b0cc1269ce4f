// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pips

import "errors"

var (
	ErrNotFromCommunity                  = errors.New("proposal is not from the community")
	ErrNotByCommittee                    = errors.New("proposal is not by a committee")
	ErrTooManyActivePips                 = errors.New("too many active proposals")
	ErrIncorrectDeposit                  = errors.New("incorrect deposit")
	ErrInsufficientDeposit               = errors.New("insufficient balance to lock the deposit")
	ErrNoSuchProposal                    = errors.New("no such proposal")
	ErrNotACommitteeMember               = errors.New("not a governance committee member")
	ErrInvalidFutureBlockNumber          = errors.New("block number is not in the future")
	ErrNumberOfVotesExceeded             = errors.New("number of votes overflows")
	ErrStakeAmountOfVotesExceeded        = errors.New("stake amount of votes overflows")
	ErrMissingCurrentIdentity            = errors.New("caller has no identity")
	ErrIncorrectProposalState            = errors.New("incorrect proposal state")
	ErrCannotSkipPip                     = errors.New("proposal cannot be skipped again")
	ErrSnapshotResultTooLarge            = errors.New("more results than proposals in the snapshot")
	ErrSnapshotIDMismatch                = errors.New("result does not match the snapshot queue")
	ErrScheduledProposalDoesntExist      = errors.New("scheduled proposal does not exist")
	ErrProposalNotInScheduledState       = errors.New("proposal is not scheduled")
	ErrRescheduleNotByReleaseCoordinator = errors.New("only the release coordinator can reschedule")
	ErrUnauthorized                      = errors.New("caller is not the proposer")
)
