// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package balances

import "errors"

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrLiquidityRestricted = errors.New("balance is locked")
	ErrOverflow            = errors.New("balance overflow")
)
