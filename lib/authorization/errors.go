// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package authorization

import "errors"

var (
	ErrInvalid       = errors.New("authorization does not exist")
	ErrUnauthorized  = errors.New("not authorized to use this authorization")
	ErrExpired       = errors.New("authorization has expired")
	ErrNonceOverflow = errors.New("multi purpose nonce overflow")
)
