// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import "errors"

var (
	// ErrNoBasePath is returned when a persisted database has no base path.
	ErrNoBasePath = errors.New("no base path configured")
	// ErrProducerStopped is returned when submitting to a stopped block producer.
	ErrProducerStopped = errors.New("block producer is stopped")
	// ErrExtrinsicDropped is returned when a submitted extrinsic is
	// dropped before its block is produced.
	ErrExtrinsicDropped = errors.New("extrinsic dropped")
)
