// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scheduler

import "github.com/PolymeshAssociation/Polymesh-sub002/dot/types"

// EventScheduled is deposited when a task is added to an agenda.
type EventScheduled struct {
	When  types.BlockNumber
	Index uint32
}

// EventCanceled is deposited when a task is removed from an agenda
// before being dispatched.
type EventCanceled struct {
	When  types.BlockNumber
	Index uint32
}

// EventDispatched is deposited when a task is dispatched. Err is the
// error returned by the call, if any.
type EventDispatched struct {
	Task TaskAddress
	Name []byte
	Err  error
}

func (EventScheduled) Pallet() string  { return palletName }
func (EventCanceled) Pallet() string   { return palletName }
func (EventDispatched) Pallet() string { return palletName }
