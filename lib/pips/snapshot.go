// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pips

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
	"github.com/samber/lo"
)

// Snapshot freezes the live queue into the snapshot queue, for the
// governance committee to enact results on. Only committee members
// may take snapshots.
func (p *Pips) Snapshot(origin types.Origin) error {
	madeBy, did, err := p.ensureCommitteeMember(origin)
	if err != nil {
		return err
	}

	var id SnapshotID
	err = p.snapshotIDSequence.Mutate(func(sequence *SnapshotID) error {
		*sequence++
		id = *sequence
		return nil
	})
	if err != nil {
		return err
	}

	createdAt, err := p.chain.BlockNumber()
	if err != nil {
		return err
	}
	err = p.snapshotMeta.Put(SnapshotMetadata{CreatedAt: createdAt, MadeBy: madeBy, ID: id})
	if err != nil {
		return err
	}

	queue, err := p.liveQueue.Get()
	if err != nil {
		return err
	}
	err = p.snapshotQueue.Put(queue)
	if err != nil {
		return err
	}

	p.events.DepositEvent(EventSnapshotTaken{DID: did, ID: id})
	logger.Debugf("snapshot %d taken with %d proposals", id, len(queue))
	return nil
}

// ClearSnapshot drops the snapshot, if any. Only committee members may
// clear it.
func (p *Pips) ClearSnapshot(origin types.Origin) error {
	_, did, err := p.ensureCommitteeMember(origin)
	if err != nil {
		return err
	}

	meta, ok, err := p.snapshotMeta.TryGet()
	if err != nil || !ok {
		return err
	}

	p.snapshotMeta.Kill()
	p.snapshotQueue.Kill()

	p.events.DepositEvent(EventSnapshotCleared{DID: did, ID: meta.ID})
	return nil
}

// SnapshotQueue returns the snapshot queue, highest priority last.
func (p *Pips) SnapshotQueue() ([]SnapshottedPip, error) {
	return p.snapshotQueue.Get()
}

// SnapshotMetadata returns the metadata of the current snapshot, if any.
func (p *Pips) SnapshotMetadata() (meta SnapshotMetadata, ok bool, err error) {
	return p.snapshotMeta.TryGet()
}

// SkipCount returns the number of times the proposal was skipped.
func (p *Pips) SkipCount(id PipID) (SkippedCount, error) {
	return p.skipCount.Get(id)
}

// EnactSnapshotResults applies the results, in order, to the proposals
// of the snapshot queue from its highest priority one. Results are
// applied all or none.
func (p *Pips) EnactSnapshotResults(origin types.Origin, results []EnactResult) error {
	err := origin.EnsureKind(types.OriginGovernanceCommittee)
	if err != nil {
		return err
	}

	return p.state.Transactional(func() error {
		return p.enactSnapshotResults(results)
	})
}

func (p *Pips) enactSnapshotResults(results []EnactResult) error {
	maxSkipCount, err := p.maxPipSkipCount.Get()
	if err != nil {
		return err
	}
	queue, err := p.snapshotQueue.Get()
	if err != nil {
		return err
	}

	var (
		skipped  []SkippedPip
		rejected []PipID
		approved []PipID
	)
	for _, result := range results {
		if len(queue) == 0 {
			return fmt.Errorf("%w: %d results", ErrSnapshotResultTooLarge, len(results))
		}
		top := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if top.ID != result.ID {
			return fmt.Errorf("%w: result for PIP #%d, snapshot has PIP #%d",
				ErrSnapshotIDMismatch, result.ID, top.ID)
		}

		switch result.Result {
		case Skip:
			count, err := p.skipCount.Get(result.ID)
			if err != nil {
				return err
			}
			if count >= maxSkipCount {
				return fmt.Errorf("%w: PIP #%d was skipped %d times", ErrCannotSkipPip, result.ID, count)
			}
			skipped = append(skipped, SkippedPip{ID: result.ID, Count: count + 1})
		case Reject:
			rejected = append(rejected, result.ID)
		case Approve:
			approved = append(approved, result.ID)
		default:
			return fmt.Errorf("%w: %s for PIP #%d", scale.ErrUnknownVariant, result.Result, result.ID)
		}
	}

	err = p.snapshotQueue.Put(queue)
	if err != nil {
		return err
	}

	did := types.GovernanceCommitteeDID
	for _, skip := range skipped {
		err = p.skipCount.Insert(skip.ID, skip.Count)
		if err != nil {
			return err
		}
		p.events.DepositEvent(EventPipSkipped{DID: did, ID: skip.ID, Count: skip.Count})
	}

	err = p.liveQueue.Mutate(func(live *[]SnapshottedPip) error {
		*live = lo.Filter(*live, func(entry SnapshottedPip, _ int) bool {
			return !lo.Contains(rejected, entry.ID) && !lo.Contains(approved, entry.ID)
		})
		return nil
	})
	if err != nil {
		return err
	}

	for _, id := range rejected {
		err = p.maybePrune(did, id, Rejected)
		if err != nil {
			return err
		}
	}
	for _, id := range approved {
		err = p.scheduleForExecution(did, id)
		if err != nil {
			return err
		}
	}

	snapshotID := scale.None[SnapshotID]()
	meta, ok, err := p.snapshotMeta.TryGet()
	if err != nil {
		return err
	}
	if ok {
		snapshotID = scale.Some(meta.ID)
	}

	p.events.DepositEvent(EventSnapshotResultsEnacted{
		DID:        did,
		SnapshotID: snapshotID,
		Skipped:    skipped,
		Rejected:   rejected,
		Approved:   approved,
	})
	return nil
}
