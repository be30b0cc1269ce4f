// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package signature verifies multi signatures against account IDs.
package signature

import (
	"errors"
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto/ed25519"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto/secp256k1"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto/sr25519"
)

var (
	ErrUnknownScheme  = errors.New("unknown signature scheme")
	ErrSignerMismatch = errors.New("signature is not from the signer")
)

// AccountFromECDSA returns the account of a compressed secp256k1 public key,
// the blake2b-256 hash of the key.
func AccountFromECDSA(compressedPublicKey []byte) (account types.AccountID, err error) {
	hash, err := common.Blake2bHash(compressedPublicKey)
	if err != nil {
		return account, err
	}
	return types.AccountID(hash), nil
}

// AccountFromKeypair returns the account of a key pair.
func AccountFromKeypair(kp crypto.Keypair) (account types.AccountID, err error) {
	if kp.Type() == crypto.Secp256k1Type {
		return AccountFromECDSA(kp.Public().Encode())
	}
	copy(account[:], kp.Public().Encode())
	return account, nil
}

// Sign signs msg with the key pair given, returning the multi signature
// of its scheme. ECDSA key pairs sign the blake2b-256 hash of msg.
func Sign(kp crypto.Keypair, msg []byte) (signature types.MultiSignature, err error) {
	switch kp.Type() {
	case crypto.Sr25519Type:
		signature.Scheme = types.SchemeSr25519
	case crypto.Ed25519Type:
		signature.Scheme = types.SchemeEd25519
	case crypto.Secp256k1Type:
		signature.Scheme = types.SchemeEcdsa
		hash, err := common.Blake2bHash(msg)
		if err != nil {
			return signature, err
		}
		msg = hash[:]
	default:
		return signature, fmt.Errorf("%w: %s", ErrUnknownScheme, kp.Type())
	}

	signature.Signature, err = kp.Sign(msg)
	if err != nil {
		return signature, fmt.Errorf("signing: %w", err)
	}
	return signature, nil
}

// Verify verifies the multi signature of msg by the signer account.
func Verify(signature types.MultiSignature, msg []byte, signer types.AccountID) error {
	info, err := NewSignatureInfo(signature, msg, signer)
	if err != nil {
		return err
	}
	return info.VerifyFunc(info.PubKey, info.Sign, info.Msg)
}

// NewSignatureInfo returns the signature info to verify the multi
// signature of msg by the signer account, so it can be added to a
// crypto.SignatureVerifier batch.
func NewSignatureInfo(signature types.MultiSignature, msg []byte, signer types.AccountID) (
	info *crypto.SignatureInfo, err error) {
	switch signature.Scheme {
	case types.SchemeSr25519:
		return &crypto.SignatureInfo{
			PubKey:     signer[:],
			Sign:       signature.Signature,
			Msg:        msg,
			VerifyFunc: sr25519.VerifySignature,
		}, nil
	case types.SchemeEd25519:
		return &crypto.SignatureInfo{
			PubKey:     signer[:],
			Sign:       signature.Signature,
			Msg:        msg,
			VerifyFunc: ed25519.VerifySignature,
		}, nil
	case types.SchemeEcdsa:
		hash, err := common.Blake2bHash(msg)
		if err != nil {
			return nil, err
		}
		return &crypto.SignatureInfo{
			PubKey:     signer[:],
			Sign:       signature.Signature,
			Msg:        hash[:],
			VerifyFunc: verifyECDSA,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownScheme, signature.Scheme)
	}
}

// verifyECDSA recovers the public key of the signature and checks
// it hashes to the signer account given as public key.
func verifyECDSA(account, sig, hash []byte) error {
	publicKey, err := secp256k1.RecoverPublicKeyCompressed(hash, sig)
	if err != nil {
		return fmt.Errorf("ecdsa: %w", err)
	}

	recovered, err := AccountFromECDSA(publicKey)
	if err != nil {
		return fmt.Errorf("ecdsa: %w", err)
	}

	if types.AccountID(common.PadTo32(account)) != recovered {
		return fmt.Errorf("ecdsa: %w: recovered account %s", ErrSignerMismatch, recovered)
	}
	return secp256k1.VerifySignature(publicKey, sig, hash)
}
