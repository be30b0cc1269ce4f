// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package identity

import "github.com/PolymeshAssociation/Polymesh-sub002/dot/types"

// EventNewDid is deposited when an identity is registered. The signing
// items are pre-authorized and still have to join the identity.
type EventNewDid struct {
	DID          types.IdentityID
	MasterKey    types.AccountID
	SigningItems []types.SigningItem
}

// EventSigningItemsAuthorized is deposited when signing items are
// pre-authorized to join an identity.
type EventSigningItemsAuthorized struct {
	DID          types.IdentityID
	SigningItems []types.SigningItem
}

// EventSigningItemsAdded is deposited when signing items join an identity.
type EventSigningItemsAdded struct {
	DID          types.IdentityID
	SigningItems []types.SigningItem
}

// EventSigningItemsRevoked is deposited when signing items are removed.
type EventSigningItemsRevoked struct {
	DID     types.IdentityID
	Signers []types.Signatory
}

// EventMasterKeyUpdated is deposited when the master key of an identity changes.
type EventMasterKeyUpdated struct {
	DID    types.IdentityID
	OldKey types.AccountID
	NewKey types.AccountID
}

// EventSigningPermissionsUpdated is deposited when the permissions of a
// signing item change.
type EventSigningPermissionsUpdated struct {
	DID            types.IdentityID
	Signer         types.Signatory
	OldPermissions []types.Permission
	NewPermissions []types.Permission
}

type EventSigningKeysFrozen struct {
	DID types.IdentityID
}

type EventSigningKeysUnfrozen struct {
	DID types.IdentityID
}

// EventCddRequirementForMasterKeyRotationUpdated is deposited when root
// changes whether master key rotations need a cdd provider attestation.
type EventCddRequirementForMasterKeyRotationUpdated struct {
	Required bool
}

func (EventNewDid) Pallet() string                                    { return palletName }
func (EventSigningItemsAuthorized) Pallet() string                    { return palletName }
func (EventSigningItemsAdded) Pallet() string                         { return palletName }
func (EventSigningItemsRevoked) Pallet() string                       { return palletName }
func (EventMasterKeyUpdated) Pallet() string                          { return palletName }
func (EventSigningPermissionsUpdated) Pallet() string                 { return palletName }
func (EventSigningKeysFrozen) Pallet() string                         { return palletName }
func (EventSigningKeysUnfrozen) Pallet() string                       { return palletName }
func (EventCddRequirementForMasterKeyRotationUpdated) Pallet() string { return palletName }
