// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scheduler

import "errors"

var (
	ErrFailedToSchedule        = errors.New("failed to schedule a call")
	ErrNotFound                = errors.New("cannot find the scheduled call")
	ErrTargetBlockNumberInPast = errors.New("given target block number is in the past")
	ErrRescheduleNoChange      = errors.New("reschedule failed because it does not change scheduled time")
	ErrAgendaFull              = errors.New("agenda of the block is full")
)
