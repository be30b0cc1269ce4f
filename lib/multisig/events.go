// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package multisig

import "github.com/PolymeshAssociation/Polymesh-sub002/dot/types"

// EventMultiSigCreated is deposited when a multisig is created. Its
// signers still have to accept their authorizations.
type EventMultiSigCreated struct {
	MultiSig     types.AccountID
	Creator      types.AccountID
	Signers      []types.Signatory
	SigsRequired uint64
}

// EventMultiSigSignerAuthorized is deposited when a signer is invited.
type EventMultiSigSignerAuthorized struct {
	MultiSig types.AccountID
	Signer   types.Signatory
}

// EventMultiSigSignerAdded is deposited when a signer accepts its authorization.
type EventMultiSigSignerAdded struct {
	MultiSig types.AccountID
	Signer   types.Signatory
}

// EventMultiSigSignerRemoved is deposited when a signer is removed.
type EventMultiSigSignerRemoved struct {
	MultiSig types.AccountID
	Signer   types.Signatory
}

// EventMultiSigSignaturesRequiredChanged is deposited when the number of
// signatures required changes.
type EventMultiSigSignaturesRequiredChanged struct {
	MultiSig     types.AccountID
	SigsRequired uint64
}

func (EventMultiSigCreated) Pallet() string                   { return palletName }
func (EventMultiSigSignerAuthorized) Pallet() string          { return palletName }
func (EventMultiSigSignerAdded) Pallet() string               { return palletName }
func (EventMultiSigSignerRemoved) Pallet() string             { return palletName }
func (EventMultiSigSignaturesRequiredChanged) Pallet() string { return palletName }
