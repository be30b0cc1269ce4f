// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/system"
)

// Extrinsic is an encoded call with the origin it is dispatched with.
type Extrinsic struct {
	Origin types.Origin
	Call   []byte
}

// NewExtrinsic encodes the call into an extrinsic.
func NewExtrinsic(origin types.Origin, call types.Call) (Extrinsic, error) {
	encoded, err := types.EncodeCall(call)
	if err != nil {
		return Extrinsic{}, err
	}
	return Extrinsic{Origin: origin, Call: encoded}, nil
}

// Block is the input of a block execution.
type Block struct {
	Number     types.BlockNumber
	ParentHash common.Hash
	Timestamp  types.Moment
	Extrinsics []Extrinsic
}

// ExtrinsicResult is the outcome of applying an extrinsic. Err is the
// dispatch error, if any.
type ExtrinsicResult struct {
	Index uint32
	Err   error
}

// BlockResult is the outcome of a block execution.
type BlockResult struct {
	Hash       common.Hash
	Extrinsics []ExtrinsicResult
	Events     []system.EventRecord
	// Dispatched is the number of scheduled tasks run on initialization.
	Dispatched int
}

// InitializeBlock starts building the block and runs the tasks
// scheduled for it.
func (r *Runtime) InitializeBlock(number types.BlockNumber, parentHash common.Hash,
	now types.Moment) (dispatched int, err error) {
	err = r.system.Initialize(number, parentHash, now)
	if err != nil {
		return 0, fmt.Errorf("initializing system: %w", err)
	}

	dispatched, err = r.scheduler.OnInitialize(number)
	if err != nil {
		return dispatched, fmt.Errorf("running scheduled tasks: %w", err)
	}
	return dispatched, nil
}

// ApplyExtrinsic dispatches the extrinsic in its own transaction. The
// returned error is only set when the block cannot go on, dispatch
// failures are reported in the result.
func (r *Runtime) ApplyExtrinsic(extrinsic Extrinsic) (result ExtrinsicResult, err error) {
	result.Index, err = r.system.ExtrinsicCount()
	if err != nil {
		return result, err
	}
	err = r.system.NoteExtrinsic()
	if err != nil {
		return result, err
	}

	result.Err = r.state.Transactional(func() error {
		return r.Dispatch(extrinsic.Origin, extrinsic.Call)
	})
	if result.Err != nil {
		logger.Debugf("extrinsic %d failed: %s", result.Index, result.Err)
		r.system.DepositEvent(EventExtrinsicFailed{Error: result.Err.Error()})
		return result, nil
	}
	r.system.DepositEvent(EventExtrinsicSuccess{})
	return result, nil
}

// FinalizeBlock ends the block being built and returns its hash and events.
func (r *Runtime) FinalizeBlock() (hash common.Hash, records []system.EventRecord, err error) {
	r.system.NoteFinalization()

	err = r.pips.OnFinalize()
	if err != nil {
		return hash, nil, fmt.Errorf("finalizing pips: %w", err)
	}
	return r.system.Finalize()
}

// ExecuteBlock checks the block follows the current one, then
// initializes it, applies its extrinsics and finalizes it.
func (r *Runtime) ExecuteBlock(block Block) (result BlockResult, err error) {
	err = r.checkHeader(block)
	if err != nil {
		return result, err
	}

	result.Dispatched, err = r.InitializeBlock(block.Number, block.ParentHash, block.Timestamp)
	if err != nil {
		return result, err
	}

	result.Extrinsics = make([]ExtrinsicResult, len(block.Extrinsics))
	for i, extrinsic := range block.Extrinsics {
		result.Extrinsics[i], err = r.ApplyExtrinsic(extrinsic)
		if err != nil {
			return result, fmt.Errorf("applying extrinsic %d: %w", i, err)
		}
	}

	result.Hash, result.Events, err = r.FinalizeBlock()
	if err != nil {
		return result, err
	}

	logger.Debugf("executed block #%d with hash %s and %d extrinsics",
		block.Number, result.Hash, len(block.Extrinsics))
	return result, nil
}

func (r *Runtime) checkHeader(block Block) error {
	best, err := r.system.BlockNumber()
	if err != nil {
		return err
	}
	if block.Number != best+1 {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidBlockNumber, best+1, block.Number)
	}

	parentHash, err := r.system.BlockHash(best)
	if err != nil {
		return err
	}
	if block.ParentHash != parentHash {
		return fmt.Errorf("%w: expected %s, got %s", ErrInvalidParentHash, parentHash, block.ParentHash)
	}

	now, err := r.system.Now()
	if err != nil {
		return err
	}
	if block.Timestamp <= now {
		return fmt.Errorf("%w: %d is not after %d", ErrInvalidTimestamp, block.Timestamp, now)
	}
	return nil
}
