// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package identity

import (
	"errors"
	"fmt"
	"math"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto/signature"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/protocolfee"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
	"github.com/samber/lo"
)

// OffChainAuthorizationNonce returns the nonce the next off-chain
// authorizations to join the identity must sign.
func (i *Identity) OffChainAuthorizationNonce(did types.IdentityID) (uint64, error) {
	return i.offChainNonce.Get(did)
}

// OffChainAuthorization returns the payload signers sign to join the
// identity with the next AddSigningItemsWithAuthorization call.
func (i *Identity) OffChainAuthorization(did types.IdentityID, expiresAt types.Moment) (
	types.TargetIDAuthorization, error) {
	nonce, err := i.offChainNonce.Get(did)
	if err != nil {
		return types.TargetIDAuthorization{}, err
	}
	return types.TargetIDAuthorization{TargetID: did, Nonce: nonce, ExpiresAt: expiresAt}, nil
}

// signerAccount returns the account signing for the signer: the signer
// key itself, or the master key of the signer identity.
func (i *Identity) signerAccount(signer types.Signatory) (types.AccountID, error) {
	if key, ok := signer.AsAccount(); ok {
		return key, nil
	}

	record, ok, err := i.records.TryGet(signer.Identity)
	if err != nil {
		return types.AccountID{}, err
	}
	if !ok {
		return types.AccountID{}, fmt.Errorf("%w: %s", ErrNoAccountForSigner, signer)
	}
	return record.MasterKey, nil
}

// AddSigningItemsWithAuthorization adds signing items to the identity
// of the caller, which must be its master key. Each item carries the
// signature of its signer over the off-chain authorization of the
// identity, so the items join the identity at once. Nothing is added
// unless every item is valid.
func (i *Identity) AddSigningItemsWithAuthorization(origin types.Origin, expiresAt types.Moment,
	items []types.SigningItemWithAuth) error {
	sender, did, record, err := i.ensureMaster(origin)
	if err != nil {
		return err
	}

	now, err := i.chain.Now()
	if err != nil {
		return err
	}
	if now >= expiresAt {
		return fmt.Errorf("%w: at %d, now %d", ErrAuthorizationExpired, expiresAt, now)
	}

	auth, err := i.OffChainAuthorization(did, expiresAt)
	if err != nil {
		return err
	}
	if auth.Nonce == math.MaxUint64 {
		return ErrNonceOverflow
	}
	payload, err := scale.Marshal(auth)
	if err != nil {
		return fmt.Errorf("encoding off-chain authorization: %w", err)
	}

	err = i.verifyOffChainItems(auth, payload, items)
	if err != nil {
		return err
	}

	err = i.fees.ChargeFee(scale.Some(sender), protocolfee.IdentityAddSigningItemsWithAuthorization)
	if err != nil {
		return err
	}

	signingItems := make([]types.SigningItem, len(items))
	for index, item := range items {
		signingItems[index] = item.SigningItem
		if key, ok := item.SigningItem.Signer.AsAccount(); ok {
			err = i.linkKey(key, item.SigningItem.SignerType, did)
			if err != nil {
				return err
			}
		}
	}

	err = i.offChainNonce.Insert(did, auth.Nonce+1)
	if err != nil {
		return err
	}
	return i.addSigningItems(did, record, signingItems)
}

// verifyOffChainItems checks every item can join the identity, each
// signer at most once, then verifies their signatures as a batch.
func (i *Identity) verifyOffChainItems(auth types.TargetIDAuthorization, payload []byte,
	items []types.SigningItemWithAuth) error {
	duplicates := lo.FindDuplicatesBy(items, func(item types.SigningItemWithAuth) types.Signatory {
		return item.SigningItem.Signer
	})
	if len(duplicates) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateSigner, duplicates[0].SigningItem.Signer)
	}

	signatures := make([]*crypto.SignatureInfo, len(items))
	for index, item := range items {
		signer := item.SigningItem.Signer
		account, err := i.signerAccount(signer)
		if err != nil {
			return err
		}

		if key, ok := signer.AsAccount(); ok {
			err = i.ensureLinkable(key, item.SigningItem.SignerType)
			if err != nil {
				return err
			}
		}

		revoked, err := i.ledger.IsOffChainRevoked(signer, auth)
		if err != nil {
			return err
		}
		if revoked {
			return fmt.Errorf("%w: by %s", ErrAuthorizationHasBeenRevoked, signer)
		}

		signatures[index], err = signature.NewSignatureInfo(item.AuthSignature, payload, account)
		if err != nil {
			return fmt.Errorf("%w: %s: %s", ErrInvalidAuthorizationSignature, signer, err)
		}
	}

	verifier := crypto.NewSignatureVerifier(logger)
	verifier.Start()
	for _, info := range signatures {
		verifier.Add(info)
	}
	err := verifier.Finish()
	if errors.Is(err, crypto.ErrSignatureVerificationFailed) {
		return fmt.Errorf("%w: %s", ErrInvalidAuthorizationSignature, err)
	}
	return err
}

// RevokeOffChainAuthorization revokes the off-chain authorization signed
// by the signer, before it is used. The caller must be the signer key or
// the master key of the signer identity.
func (i *Identity) RevokeOffChainAuthorization(origin types.Origin, signer types.Signatory,
	auth types.TargetIDAuthorization) error {
	key, err := origin.EnsureSigned()
	if err != nil {
		return err
	}

	allowed, err := i.actsAs(key, signer)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("%w: %s for %s", ErrKeyNotAllowed, key, signer)
	}

	return i.ledger.RevokeOffChain(signer, auth)
}
