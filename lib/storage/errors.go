// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import "errors"

var (
	ErrNoTransaction   = errors.New("no storage transaction open")
	ErrTransactionOpen = errors.New("storage transaction still open")
)
