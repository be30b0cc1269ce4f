// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// TargetIDAuthorization is the off-chain authorization payload a key
// signs to join the target identity.
type TargetIDAuthorization struct {
	TargetID  IdentityID
	Nonce     uint64
	ExpiresAt Moment
}

// AuthorizationType is the variant of AuthorizationData.
type AuthorizationType uint8

const (
	AuthAttestMasterKeyRotation AuthorizationType = iota
	AuthRotateMasterKey
	AuthTransferTicker
	AuthAddMultiSigSigner
	AuthTransferAssetOwnership
	AuthJoinIdentity
	AuthNoData
)

func (t AuthorizationType) String() string {
	switch t {
	case AuthAttestMasterKeyRotation:
		return "AttestMasterKeyRotation"
	case AuthRotateMasterKey:
		return "RotateMasterKey"
	case AuthTransferTicker:
		return "TransferTicker"
	case AuthAddMultiSigSigner:
		return "AddMultiSigSigner"
	case AuthTransferAssetOwnership:
		return "TransferAssetOwnership"
	case AuthJoinIdentity:
		return "JoinIdentity"
	case AuthNoData:
		return "NoData"
	default:
		return "Unknown"
	}
}

// AuthorizationData is the payload of an authorization.
// Only the field matching Type is meaningful:
//   - Identity for AttestMasterKeyRotation, RotateMasterKey and JoinIdentity
//   - Ticker for TransferTicker and TransferAssetOwnership
//   - Account for AddMultiSigSigner, the multisig account
type AuthorizationData struct {
	Type     AuthorizationType
	Identity IdentityID
	Ticker   Ticker
	Account  AccountID
}

// NewAttestMasterKeyRotation returns the authorization data of a CDD
// provider attesting a master key rotation for the identity given.
func NewAttestMasterKeyRotation(id IdentityID) AuthorizationData {
	return AuthorizationData{Type: AuthAttestMasterKeyRotation, Identity: id}
}

// NewRotateMasterKey returns the authorization data of a master key
// rotation for the identity given.
func NewRotateMasterKey(id IdentityID) AuthorizationData {
	return AuthorizationData{Type: AuthRotateMasterKey, Identity: id}
}

// NewTransferTicker returns the authorization data of a ticker transfer.
func NewTransferTicker(ticker Ticker) AuthorizationData {
	return AuthorizationData{Type: AuthTransferTicker, Ticker: ticker}
}

// NewTransferAssetOwnership returns the authorization data of an asset
// ownership transfer.
func NewTransferAssetOwnership(ticker Ticker) AuthorizationData {
	return AuthorizationData{Type: AuthTransferAssetOwnership, Ticker: ticker}
}

// NewAddMultiSigSigner returns the authorization data to become a
// signer of the multisig account given.
func NewAddMultiSigSigner(multisig AccountID) AuthorizationData {
	return AuthorizationData{Type: AuthAddMultiSigSigner, Account: multisig}
}

// NewJoinIdentity returns the authorization data to join the identity given.
func NewJoinIdentity(id IdentityID) AuthorizationData {
	return AuthorizationData{Type: AuthJoinIdentity, Identity: id}
}

// Encode implements the gsrpc Encodeable interface.
func (d AuthorizationData) Encode(encoder scale.Encoder) error {
	index := byte(d.Type)
	switch d.Type {
	case AuthAttestMasterKeyRotation, AuthRotateMasterKey, AuthJoinIdentity:
		return scale.EncodeVariant(encoder, index, d.Identity)
	case AuthTransferTicker, AuthTransferAssetOwnership:
		return scale.EncodeVariant(encoder, index, d.Ticker)
	case AuthAddMultiSigSigner:
		return scale.EncodeVariant(encoder, index, d.Account)
	case AuthNoData:
		return scale.EncodeVariant(encoder, index, nil)
	default:
		return scale.UnknownVariantError("AuthorizationData", index)
	}
}

// Decode implements the gsrpc Decodeable interface.
func (d *AuthorizationData) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	*d = AuthorizationData{Type: AuthorizationType(b)}
	switch d.Type {
	case AuthAttestMasterKeyRotation, AuthRotateMasterKey, AuthJoinIdentity:
		return decoder.Decode(&d.Identity)
	case AuthTransferTicker, AuthTransferAssetOwnership:
		return decoder.Decode(&d.Ticker)
	case AuthAddMultiSigSigner:
		return decoder.Decode(&d.Account)
	case AuthNoData:
		return nil
	default:
		return scale.UnknownVariantError("AuthorizationData", b)
	}
}

// Authorization is an authorization issued by AuthorizedBy, stored
// under its target and ID.
type Authorization struct {
	ID                uint64
	AuthorizationData AuthorizationData
	AuthorizedBy      Signatory
	Expiry            scale.Option[Moment]
}
