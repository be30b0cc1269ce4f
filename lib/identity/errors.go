// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package identity

import "errors"

var (
	ErrAlreadyLinked                       = errors.New("key is already linked to an identity")
	ErrSigningKeysContainMasterKey         = errors.New("signing keys contain the master key")
	ErrDidAlreadyExists                    = errors.New("identity already exists")
	ErrDidDoesNotExist                     = errors.New("identity does not exist")
	ErrMissingIdentity                     = errors.New("key is not linked to an identity")
	ErrNotMasterKey                        = errors.New("key is not the master key of the identity")
	ErrNotASigner                          = errors.New("signer is not a signing item of the identity")
	ErrNotCddProvider                      = errors.New("caller is not a cdd provider")
	ErrNotPreAuthorized                    = errors.New("signer is not pre-authorized to join the identity")
	ErrKeyNotAllowed                       = errors.New("key is not allowed to act for the signer")
	ErrAuthorizationExpired                = errors.New("off-chain authorization has expired")
	ErrAuthorizationHasBeenRevoked         = errors.New("off-chain authorization has been revoked")
	ErrInvalidAuthorizationSignature       = errors.New("invalid off-chain authorization signature")
	ErrNoAccountForSigner                  = errors.New("no account can sign for the signer")
	ErrUnknownAuthorization                = errors.New("unknown authorization")
	ErrNotRotateMasterKeyAuth              = errors.New("not a master key rotation authorization")
	ErrNotJoinIdentityAuth                 = errors.New("not a join identity authorization")
	ErrInvalidAuthorizationFromCddProvider = errors.New("invalid authorization from cdd provider")
	ErrNotCddProviderAttestation           = errors.New("attestation is not from a cdd provider")
	ErrAuthorizationsNotForSameDids        = errors.New("authorizations are not for the same identity")
	ErrNonceOverflow                       = errors.New("off-chain authorization nonce overflow")
	ErrDuplicateSigner                     = errors.New("signer is listed more than once")
)
