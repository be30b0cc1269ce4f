// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import "errors"

var (
	ErrInvalidLength = errors.New("invalid length")
	ErrBadOrigin     = errors.New("bad origin")
	ErrUnknownCall   = errors.New("unknown call")
)
