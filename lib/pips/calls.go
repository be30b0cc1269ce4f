// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pips

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// Method indexes of the pips calls.
const (
	MethodSetPruneHistoricalPips uint8 = iota
	MethodSetMinProposalDeposit
	MethodSetDefaultEnactmentPeriod
	MethodSetPendingPipExpiry
	MethodSetMaxPipSkipCount
	MethodSetActivePipLimit
	MethodPropose
	MethodVote
	MethodApproveCommitteeProposal
	MethodRejectProposal
	MethodPruneProposal
	MethodRescheduleExecution
	MethodClearSnapshot
	MethodSnapshot
	MethodEnactSnapshotResults
	MethodExecuteScheduledPip
	MethodExpireScheduledPip
	MethodAmendProposal
	MethodCancelProposal
)

func callIndex(method uint8) types.CallIndex {
	return types.CallIndex{Module: types.ModulePips, Method: method}
}

type SetPruneHistoricalPipsCall struct {
	Prune bool
}

type SetMinProposalDepositCall struct {
	Deposit types.Balance
}

type SetDefaultEnactmentPeriodCall struct {
	Period types.BlockNumber
}

type SetPendingPipExpiryCall struct {
	Expiry scale.Option[types.BlockNumber]
}

type SetMaxPipSkipCountCall struct {
	Max SkippedCount
}

type SetActivePipLimitCall struct {
	Limit uint32
}

// ProposeCall makes a proposal of the encoded call Proposal.
type ProposeCall struct {
	Proposal    []byte
	Deposit     types.Balance
	URL         scale.Option[string]
	Description scale.Option[string]
}

type VoteCall struct {
	ID      PipID
	Aye     bool
	Deposit types.Balance
}

type ApproveCommitteeProposalCall struct {
	ID PipID
}

type RejectProposalCall struct {
	ID PipID
}

type PruneProposalCall struct {
	ID PipID
}

type RescheduleExecutionCall struct {
	ID    PipID
	Until scale.Option[types.BlockNumber]
}

type ClearSnapshotCall struct{}

type SnapshotCall struct{}

type EnactSnapshotResultsCall struct {
	Results []EnactResult
}

// ExecuteScheduledPipCall is dispatched by the scheduler to execute an
// approved proposal.
type ExecuteScheduledPipCall struct {
	ID PipID
}

// ExpireScheduledPipCall is dispatched by the scheduler to expire a
// proposal still pending.
type ExpireScheduledPipCall struct {
	DID types.IdentityID
	ID  PipID
}

type AmendProposalCall struct {
	ID          PipID
	URL         scale.Option[string]
	Description scale.Option[string]
}

type CancelProposalCall struct {
	ID PipID
}

func (SetPruneHistoricalPipsCall) CallIndex() types.CallIndex {
	return callIndex(MethodSetPruneHistoricalPips)
}

func (SetMinProposalDepositCall) CallIndex() types.CallIndex {
	return callIndex(MethodSetMinProposalDeposit)
}

func (SetDefaultEnactmentPeriodCall) CallIndex() types.CallIndex {
	return callIndex(MethodSetDefaultEnactmentPeriod)
}

func (SetPendingPipExpiryCall) CallIndex() types.CallIndex {
	return callIndex(MethodSetPendingPipExpiry)
}

func (SetMaxPipSkipCountCall) CallIndex() types.CallIndex   { return callIndex(MethodSetMaxPipSkipCount) }
func (SetActivePipLimitCall) CallIndex() types.CallIndex    { return callIndex(MethodSetActivePipLimit) }
func (ProposeCall) CallIndex() types.CallIndex              { return callIndex(MethodPropose) }
func (VoteCall) CallIndex() types.CallIndex                 { return callIndex(MethodVote) }
func (RejectProposalCall) CallIndex() types.CallIndex       { return callIndex(MethodRejectProposal) }
func (PruneProposalCall) CallIndex() types.CallIndex        { return callIndex(MethodPruneProposal) }
func (RescheduleExecutionCall) CallIndex() types.CallIndex  { return callIndex(MethodRescheduleExecution) }
func (ClearSnapshotCall) CallIndex() types.CallIndex        { return callIndex(MethodClearSnapshot) }
func (SnapshotCall) CallIndex() types.CallIndex             { return callIndex(MethodSnapshot) }
func (EnactSnapshotResultsCall) CallIndex() types.CallIndex { return callIndex(MethodEnactSnapshotResults) }
func (ExecuteScheduledPipCall) CallIndex() types.CallIndex  { return callIndex(MethodExecuteScheduledPip) }
func (ExpireScheduledPipCall) CallIndex() types.CallIndex   { return callIndex(MethodExpireScheduledPip) }
func (AmendProposalCall) CallIndex() types.CallIndex        { return callIndex(MethodAmendProposal) }
func (CancelProposalCall) CallIndex() types.CallIndex       { return callIndex(MethodCancelProposal) }

func (ApproveCommitteeProposalCall) CallIndex() types.CallIndex {
	return callIndex(MethodApproveCommitteeProposal)
}

// DispatchCall decodes the arguments of the pips call of the method
// given and dispatches it with the origin given.
func (p *Pips) DispatchCall(origin types.Origin, method uint8, args []byte) (err error) {
	switch method {
	case MethodSetPruneHistoricalPips:
		var call SetPruneHistoricalPipsCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.SetPruneHistoricalPips(origin, call.Prune)
		}
	case MethodSetMinProposalDeposit:
		var call SetMinProposalDepositCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.SetMinProposalDeposit(origin, call.Deposit)
		}
	case MethodSetDefaultEnactmentPeriod:
		var call SetDefaultEnactmentPeriodCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.SetDefaultEnactmentPeriod(origin, call.Period)
		}
	case MethodSetPendingPipExpiry:
		var call SetPendingPipExpiryCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.SetPendingPipExpiry(origin, call.Expiry)
		}
	case MethodSetMaxPipSkipCount:
		var call SetMaxPipSkipCountCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.SetMaxPipSkipCount(origin, call.Max)
		}
	case MethodSetActivePipLimit:
		var call SetActivePipLimitCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.SetActivePipLimit(origin, call.Limit)
		}
	case MethodPropose:
		var call ProposeCall
		if err = scale.Unmarshal(args, &call); err == nil {
			_, err = p.Propose(origin, call.Proposal, call.Deposit, call.URL, call.Description)
		}
	case MethodVote:
		var call VoteCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.Vote(origin, call.ID, call.Aye, call.Deposit)
		}
	case MethodApproveCommitteeProposal:
		var call ApproveCommitteeProposalCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.ApproveCommitteeProposal(origin, call.ID)
		}
	case MethodRejectProposal:
		var call RejectProposalCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.RejectProposal(origin, call.ID)
		}
	case MethodPruneProposal:
		var call PruneProposalCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.PruneProposal(origin, call.ID)
		}
	case MethodRescheduleExecution:
		var call RescheduleExecutionCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.RescheduleExecution(origin, call.ID, call.Until)
		}
	case MethodClearSnapshot:
		err = p.ClearSnapshot(origin)
	case MethodSnapshot:
		err = p.Snapshot(origin)
	case MethodEnactSnapshotResults:
		var call EnactSnapshotResultsCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.EnactSnapshotResults(origin, call.Results)
		}
	case MethodExecuteScheduledPip:
		var call ExecuteScheduledPipCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.ExecuteScheduledPip(origin, call.ID)
		}
	case MethodExpireScheduledPip:
		var call ExpireScheduledPipCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.ExpireScheduledPip(origin, call.DID, call.ID)
		}
	case MethodAmendProposal:
		var call AmendProposalCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.AmendProposal(origin, call.ID, call.URL, call.Description)
		}
	case MethodCancelProposal:
		var call CancelProposalCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = p.CancelProposal(origin, call.ID)
		}
	default:
		return fmt.Errorf("%w: %s", types.ErrUnknownCall, callIndex(method))
	}
	return err
}
