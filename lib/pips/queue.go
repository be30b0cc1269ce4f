// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pips

import (
	"sort"

	"github.com/qdm12/gotree"
)

// Weight returns the net stake of the voting result.
func (r VotingResult) Weight() Weight {
	if r.AyesStake >= r.NaysStake {
		return Weight{Aye: true, Stake: r.AyesStake - r.NaysStake}
	}
	return Weight{Aye: false, Stake: r.NaysStake - r.AyesStake}
}

// compare orders queue entries by priority, lowest first. Net ayes
// rank above net nays, then the stake decides: a larger net aye stake
// ranks higher and a larger net nay stake ranks lower. Among equal
// weights the lower ID ranks higher.
func compare(l, r SnapshottedPip) int {
	if l.Weight.Aye != r.Weight.Aye {
		if r.Weight.Aye {
			return -1
		}
		return 1
	}

	lStake, rStake := l.Weight.Stake, r.Weight.Stake
	if !l.Weight.Aye {
		lStake, rStake = rStake, lStake
	}
	switch {
	case lStake < rStake:
		return -1
	case lStake > rStake:
		return 1
	}

	switch {
	case r.ID < l.ID:
		return -1
	case r.ID > l.ID:
		return 1
	default:
		return 0
	}
}

// search returns the index of the first entry of the sorted queue not
// ranking lower than the entry given.
func search(queue []SnapshottedPip, entry SnapshottedPip) int {
	return sort.Search(len(queue), func(i int) bool {
		return compare(queue[i], entry) >= 0
	})
}

// removeSorted removes the entry from the sorted queue, if present.
func removeSorted(queue []SnapshottedPip, entry SnapshottedPip) []SnapshottedPip {
	index := search(queue, entry)
	if index == len(queue) || queue[index] != entry {
		return queue
	}
	return append(queue[:index], queue[index+1:]...)
}

// insertSorted inserts the entry in the sorted queue.
func insertSorted(queue []SnapshottedPip, entry SnapshottedPip) []SnapshottedPip {
	index := search(queue, entry)
	queue = append(queue, SnapshottedPip{})
	copy(queue[index+1:], queue[index:])
	queue[index] = entry
	return queue
}

func sortQueue(queue []SnapshottedPip) {
	sort.Slice(queue, func(i, j int) bool {
		return compare(queue[i], queue[j]) < 0
	})
}

// LiveQueue returns the pending community proposals, sorted by
// priority with the highest priority last.
func (p *Pips) LiveQueue() ([]SnapshottedPip, error) {
	return p.liveQueue.Get()
}

// ComputeLiveQueue rebuilds the live queue from the voting results of
// the pending community proposals.
func (p *Pips) ComputeLiveQueue() (queue []SnapshottedPip, err error) {
	err = p.proposals.Iterate(func(id PipID, pip Pip) error {
		if _, community := pip.Proposer.AsCommunity(); !community || pip.State != Pending {
			return nil
		}
		result, err := p.results.Get(id)
		if err != nil {
			return err
		}
		queue = append(queue, SnapshottedPip{ID: id, Weight: result.Weight()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortQueue(queue)
	return queue, nil
}

// updateLiveQueue moves the proposal to the position of its new
// weight in the live queue.
func (p *Pips) updateLiveQueue(id PipID, old, updated Weight) error {
	return p.liveQueue.Mutate(func(queue *[]SnapshottedPip) error {
		*queue = removeSorted(*queue, SnapshottedPip{ID: id, Weight: old})
		*queue = insertSorted(*queue, SnapshottedPip{ID: id, Weight: updated})
		return nil
	})
}

// unsnapshot removes the proposal from the live and snapshot queues.
func (p *Pips) unsnapshot(id PipID) error {
	filter := func(queue *[]SnapshottedPip) error {
		kept := (*queue)[:0]
		for _, entry := range *queue {
			if entry.ID != id {
				kept = append(kept, entry)
			}
		}
		*queue = kept
		return nil
	}

	err := p.liveQueue.Mutate(filter)
	if err != nil {
		return err
	}
	return p.snapshotQueue.Mutate(filter)
}

// FormatQueue renders a priority queue as a tree, highest priority first.
func FormatQueue(title string, queue []SnapshottedPip) string {
	tree := gotree.New(title)
	for i := len(queue) - 1; i >= 0; i-- {
		tree.Appendf("PIP #%d: %s", queue[i].ID, queue[i].Weight)
	}
	return tree.String()
}
