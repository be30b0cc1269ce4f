// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

// EventExtrinsicSuccess is deposited once an extrinsic is dispatched.
type EventExtrinsicSuccess struct{}

// EventExtrinsicFailed is deposited when the dispatch of an extrinsic
// fails. Its changes are discarded but the extrinsic stays in the block.
type EventExtrinsicFailed struct {
	Error string
}

func (EventExtrinsicSuccess) Pallet() string { return "System" }
func (EventExtrinsicFailed) Pallet() string  { return "System" }
