// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package multisig

import "errors"

var (
	ErrMissingIdentity               = errors.New("caller has no identity")
	ErrNoSigners                     = errors.New("no signers")
	ErrRequiredSignaturesOutOfBounds = errors.New("too few or too many required signatures")
	ErrNotASigner                    = errors.New("not a signer")
	ErrNoSuchMultisig                = errors.New("no such multisig")
	ErrNotAMultisigAuth              = errors.New("not a multisig authorization")
	ErrNotEnoughSigners              = errors.New("not enough signers")
	ErrNonceOverflow                 = errors.New("multisig nonce overflow")
	ErrAlreadyASigner                = errors.New("already a signer")
	ErrSignerAlreadyLinked           = errors.New("signer key is already a signer of a multisig")
)
