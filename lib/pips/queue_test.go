// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pips

import (
	"strings"
	"testing"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aye(id PipID, stake uint64) SnapshottedPip {
	return SnapshottedPip{ID: id, Weight: Weight{Aye: true, Stake: types.Balance(stake)}}
}

func nay(id PipID, stake uint64) SnapshottedPip {
	return SnapshottedPip{ID: id, Weight: Weight{Aye: false, Stake: types.Balance(stake)}}
}

func Test_VotingResult_Weight(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		result VotingResult
		weight Weight
	}{
		"no votes": {
			weight: Weight{Aye: true},
		},
		"more ayes": {
			result: VotingResult{AyesCount: 2, AyesStake: 150, NaysCount: 1, NaysStake: 50},
			weight: Weight{Aye: true, Stake: 100},
		},
		"balanced": {
			result: VotingResult{AyesCount: 1, AyesStake: 50, NaysCount: 1, NaysStake: 50},
			weight: Weight{Aye: true},
		},
		"more nays": {
			result: VotingResult{AyesCount: 1, AyesStake: 100, NaysCount: 3, NaysStake: 400},
			weight: Weight{Aye: false, Stake: 300},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.weight, testCase.result.Weight())
		})
	}
}

func Test_compare(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		l, r       SnapshottedPip
		comparison int
	}{
		"nays rank below ayes": {
			l:          nay(1, 0),
			r:          aye(2, 0),
			comparison: -1,
		},
		"ayes rank above nays": {
			l:          aye(1, 1),
			r:          nay(2, 1000),
			comparison: 1,
		},
		"larger aye stake ranks higher": {
			l:          aye(1, 200),
			r:          aye(2, 100),
			comparison: 1,
		},
		"larger nay stake ranks lower": {
			l:          nay(1, 200),
			r:          nay(2, 100),
			comparison: -1,
		},
		"lower ID ranks higher": {
			l:          aye(1, 100),
			r:          aye(2, 100),
			comparison: 1,
		},
		"higher ID ranks lower": {
			l:          nay(3, 100),
			r:          nay(2, 100),
			comparison: -1,
		},
		"same entry": {
			l: aye(5, 10),
			r: aye(5, 10),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.comparison, compare(testCase.l, testCase.r))
			assert.Equal(t, -testCase.comparison, compare(testCase.r, testCase.l))
		})
	}
}

func Test_insertSorted(t *testing.T) {
	t.Parallel()

	entries := []SnapshottedPip{
		aye(4, 100), nay(1, 50), aye(2, 300), aye(3, 100), nay(5, 500), aye(6, 0),
	}

	var queue []SnapshottedPip
	for _, entry := range entries {
		queue = insertSorted(queue, entry)
	}

	expected := []SnapshottedPip{
		nay(5, 500), nay(1, 50), aye(6, 0), aye(4, 100), aye(3, 100), aye(2, 300),
	}
	if diff := cmp.Diff(expected, queue); diff != "" {
		t.Errorf("unexpected queue (-want +got):\n%s", diff)
	}

	sorted := append([]SnapshottedPip(nil), entries...)
	sortQueue(sorted)
	assert.Equal(t, expected, sorted)
}

func Test_removeSorted(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		queue    []SnapshottedPip
		entry    SnapshottedPip
		expected []SnapshottedPip
	}{
		"empty queue": {
			entry: aye(1, 100),
		},
		"remove tail": {
			queue:    []SnapshottedPip{nay(2, 10), aye(1, 100)},
			entry:    aye(1, 100),
			expected: []SnapshottedPip{nay(2, 10)},
		},
		"remove head": {
			queue:    []SnapshottedPip{nay(2, 10), aye(1, 100)},
			entry:    nay(2, 10),
			expected: []SnapshottedPip{aye(1, 100)},
		},
		"weight mismatch": {
			queue:    []SnapshottedPip{nay(2, 10), aye(1, 100)},
			entry:    aye(1, 90),
			expected: []SnapshottedPip{nay(2, 10), aye(1, 100)},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			queue := removeSorted(testCase.queue, testCase.entry)
			assert.Equal(t, testCase.expected, queue)
		})
	}
}

func Test_FormatQueue(t *testing.T) {
	t.Parallel()

	s := FormatQueue("Live queue", []SnapshottedPip{nay(2, 10), aye(1, 100)})

	require.Contains(t, s, "Live queue")
	first, second := strings.Index(s, "PIP #1: +100"), strings.Index(s, "PIP #2: -10")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}
