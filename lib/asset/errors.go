// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package asset

import "errors"

var (
	ErrMissingIdentity               = errors.New("caller has no identity")
	ErrTickerTooLong                 = errors.New("ticker is too long")
	ErrTickerAlreadyRegistered       = errors.New("ticker is registered to another identity")
	ErrAssetAlreadyCreated           = errors.New("asset already created")
	ErrNoSuchAsset                   = errors.New("no such asset")
	ErrNotTickerTransferAuth         = errors.New("not a ticker transfer authorization")
	ErrNotAssetOwnershipTransferAuth = errors.New("not an asset ownership transfer authorization")
)
