// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package authorization

import (
	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// EventAuthorizationAdded is deposited when an authorization is issued.
type EventAuthorizationAdded struct {
	ID     uint64
	From   types.Signatory
	Target types.Signatory
	Data   types.AuthorizationData
	Expiry scale.Option[types.Moment]
}

// EventAuthorizationRevoked is deposited when the issuer removes an authorization.
type EventAuthorizationRevoked struct {
	Target types.Signatory
	ID     uint64
}

// EventAuthorizationRejected is deposited when the target removes an authorization.
type EventAuthorizationRejected struct {
	Target types.Signatory
	ID     uint64
}

// EventAuthorizationConsumed is deposited when an authorization is accepted.
type EventAuthorizationConsumed struct {
	Target types.Signatory
	ID     uint64
}

// EventOffChainAuthorizationRevoked is deposited when a signer revokes
// an off-chain authorization before it is used.
type EventOffChainAuthorizationRevoked struct {
	Signer        types.Signatory
	Authorization types.TargetIDAuthorization
}

func (EventAuthorizationAdded) Pallet() string           { return palletName }
func (EventAuthorizationRevoked) Pallet() string         { return palletName }
func (EventAuthorizationRejected) Pallet() string        { return palletName }
func (EventAuthorizationConsumed) Pallet() string        { return palletName }
func (EventOffChainAuthorizationRevoked) Pallet() string { return palletName }
