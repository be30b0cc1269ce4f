// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import "errors"

var (
	ErrInvalidBlockNumber = errors.New("invalid block number")
	ErrInvalidParentHash  = errors.New("invalid parent hash")
	ErrInvalidTimestamp   = errors.New("timestamp must increase")
	ErrGenesisApplied     = errors.New("genesis already applied")
	ErrDuplicateAccount   = errors.New("account listed twice in genesis")
)
