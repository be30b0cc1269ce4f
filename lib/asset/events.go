// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package asset

import (
	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// EventTickerRegistered is deposited when a ticker is registered to an identity.
type EventTickerRegistered struct {
	Ticker types.Ticker
	Owner  types.IdentityID
	Expiry scale.Option[types.Moment]
}

// EventAssetCreated is deposited when an asset is created.
type EventAssetCreated struct {
	Ticker      types.Ticker
	Owner       types.IdentityID
	TotalSupply types.Balance
}

// EventTickerTransferred is deposited when a ticker transfer is accepted.
type EventTickerTransferred struct {
	Ticker types.Ticker
	From   types.IdentityID
	To     types.IdentityID
}

// EventAssetOwnershipTransferred is deposited when an asset ownership
// transfer is accepted.
type EventAssetOwnershipTransferred struct {
	Ticker types.Ticker
	From   types.IdentityID
	To     types.IdentityID
}

func (EventTickerRegistered) Pallet() string          { return palletName }
func (EventAssetCreated) Pallet() string              { return palletName }
func (EventTickerTransferred) Pallet() string         { return palletName }
func (EventAssetOwnershipTransferred) Pallet() string { return palletName }
