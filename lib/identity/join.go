// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package identity

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/protocolfee"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// preJoinSigner returns the signer the caller accepts pre-authorizations
// for: its own key if it has any, otherwise its identity when the caller
// is the master key of it.
func (i *Identity) preJoinSigner(key types.AccountID) (types.Signatory, error) {
	keySigner := types.NewAccountSignatory(key)
	hasPreAuth, err := i.preAuthorized.Contains(keySigner)
	if err != nil {
		return keySigner, err
	}

	linked, linkedOK, err := i.keyToIdentityIDs.TryGet(key)
	if err != nil {
		return keySigner, err
	}

	if hasPreAuth {
		if linkedOK {
			return keySigner, fmt.Errorf("%w: %s", ErrAlreadyLinked, key)
		}
		return keySigner, nil
	}

	if linkedOK && linked.Kind == types.LinkedKeyUnique {
		isMaster, err := i.IsMasterKey(linked.Unique, key)
		if err != nil {
			return keySigner, err
		}
		identitySigner := types.NewIdentitySignatory(linked.Unique)
		hasPreAuth, err = i.preAuthorized.Contains(identitySigner)
		if err != nil {
			return keySigner, err
		}
		if isMaster && hasPreAuth {
			return identitySigner, nil
		}
	}
	return keySigner, fmt.Errorf("%w: %s by any identity", ErrNotPreAuthorized, key)
}

// AuthorizeJoinToIdentity accepts the pre-authorization of the caller
// to join the target identity. The caller's key, or its identity when
// called by a master key, becomes a signing item of the target.
func (i *Identity) AuthorizeJoinToIdentity(origin types.Origin, target types.IdentityID) error {
	key, err := origin.EnsureSigned()
	if err != nil {
		return err
	}

	signer, err := i.preJoinSigner(key)
	if err != nil {
		return err
	}

	infos, err := i.preAuthorized.Get(signer)
	if err != nil {
		return err
	}
	var (
		item  types.SigningItem
		found bool
	)
	for _, info := range infos {
		if info.TargetID == target {
			item, found = info.SigningItem, true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s to %s", ErrNotPreAuthorized, signer, target)
	}

	record, err := i.ensureRecord(target)
	if err != nil {
		return err
	}

	err = i.removePreJoin(signer, target)
	if err != nil {
		return err
	}
	if signerKey, ok := signer.AsAccount(); ok {
		err = i.linkKey(signerKey, item.SignerType, target)
		if err != nil {
			return err
		}
	}

	return i.addSigningItems(target, record, []types.SigningItem{item})
}

// UnauthorizedJoinToIdentity removes the pre-authorization of the
// signer to join the target identity. The master key of the target, the
// signer key itself or the master key of the signer identity may do so.
func (i *Identity) UnauthorizedJoinToIdentity(origin types.Origin, signer types.Signatory,
	target types.IdentityID) error {
	key, err := origin.EnsureSigned()
	if err != nil {
		return err
	}

	allowed, err := i.IsMasterKey(target, key)
	if err != nil {
		return err
	}
	if !allowed {
		allowed, err = i.actsAs(key, signer)
		if err != nil {
			return err
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s for %s", ErrKeyNotAllowed, key, signer)
	}

	return i.removePreJoin(signer, target)
}

// actsAs returns true if the key is the signer or the master key of the
// signer identity.
func (i *Identity) actsAs(key types.AccountID, signer types.Signatory) (bool, error) {
	if signerKey, ok := signer.AsAccount(); ok {
		return signerKey == key, nil
	}
	return i.IsMasterKey(signer.Identity, key)
}

// JoinIdentityAsKey accepts an authorization to join an identity as an
// external signing item of the caller's key.
func (i *Identity) JoinIdentityAsKey(origin types.Origin, authID uint64) error {
	key, err := origin.EnsureSigned()
	if err != nil {
		return err
	}
	return i.joinIdentity(key, types.NewAccountSignatory(key), authID)
}

// JoinIdentityAsIdentity accepts an authorization to join an identity
// as a signing item of the caller's identity. The caller must be the
// master key of its identity.
func (i *Identity) JoinIdentityAsIdentity(origin types.Origin, authID uint64) error {
	key, did, _, err := i.ensureMaster(origin)
	if err != nil {
		return err
	}
	return i.joinIdentity(key, types.NewIdentitySignatory(did), authID)
}

func (i *Identity) joinIdentity(payer types.AccountID, signer types.Signatory, authID uint64) error {
	auth, err := i.ledger.Ensure(signer, authID)
	if err != nil {
		return err
	}
	if auth.AuthorizationData.Type != types.AuthJoinIdentity {
		return fmt.Errorf("%w: %d is %s", ErrNotJoinIdentityAuth, authID, auth.AuthorizationData.Type)
	}
	target := auth.AuthorizationData.Identity

	record, err := i.ensureRecord(target)
	if err != nil {
		return err
	}

	item := types.NewSigningItemFromIdentity(signer.Identity)
	key, isKey := signer.AsAccount()
	if isKey {
		item = types.NewSigningItemFromAccount(key)
		err = i.ensureLinkable(key, item.SignerType)
		if err != nil {
			return err
		}
	}

	err = i.ledger.Consume(types.NewIdentitySignatory(target), signer, authID)
	if err != nil {
		return err
	}

	err = i.fees.ChargeFee(scale.Some(payer), protocolfee.IdentityAddSigningItemsWithAuthorization)
	if err != nil {
		return err
	}

	if isKey {
		err = i.linkKey(key, item.SignerType, target)
		if err != nil {
			return err
		}
	}
	return i.addSigningItems(target, record, []types.SigningItem{item})
}

func (i *Identity) addSigningItems(did types.IdentityID, record types.DidRecord, items []types.SigningItem) error {
	record.AddSigningItems(items)
	err := i.records.Insert(did, record)
	if err != nil {
		return err
	}

	i.events.DepositEvent(EventSigningItemsAdded{DID: did, SigningItems: items})
	return nil
}
