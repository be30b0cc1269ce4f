// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package identity

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/authorization"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// NewAuthorization is an authorization to add in a batch.
type NewAuthorization struct {
	Target types.Signatory
	Data   types.AuthorizationData
	Expiry scale.Option[types.Moment]
}

// AddAuthorization issues an authorization from the identity of the caller.
func (i *Identity) AddAuthorization(origin types.Origin, target types.Signatory,
	data types.AuthorizationData, expiry scale.Option[types.Moment]) (uint64, error) {
	key, err := origin.EnsureSigned()
	if err != nil {
		return 0, err
	}
	did, err := i.ensureIdentity(key)
	if err != nil {
		return 0, err
	}
	return i.ledger.Add(types.NewIdentitySignatory(did), target, data, expiry)
}

// AddAuthorizationAsKey issues an authorization from the caller's key,
// for keys without an identity.
func (i *Identity) AddAuthorizationAsKey(origin types.Origin, target types.Signatory,
	data types.AuthorizationData, expiry scale.Option[types.Moment]) (uint64, error) {
	key, err := origin.EnsureSigned()
	if err != nil {
		return 0, err
	}
	return i.ledger.Add(types.NewAccountSignatory(key), target, data, expiry)
}

// BatchAddAuthorization issues several authorizations from the identity
// of the caller and returns their IDs.
func (i *Identity) BatchAddAuthorization(origin types.Origin, auths []NewAuthorization) ([]uint64, error) {
	key, err := origin.EnsureSigned()
	if err != nil {
		return nil, err
	}
	did, err := i.ensureIdentity(key)
	if err != nil {
		return nil, err
	}

	from := types.NewIdentitySignatory(did)
	ids := make([]uint64, len(auths))
	for index, auth := range auths {
		ids[index], err = i.ledger.Add(from, auth.Target, auth.Data, auth.Expiry)
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// RemoveAuthorization removes an authorization issued by or for the
// caller, either its key or its identity.
func (i *Identity) RemoveAuthorization(origin types.Origin, target types.Signatory, authID uint64) error {
	key, err := origin.EnsureSigned()
	if err != nil {
		return err
	}
	did, err := i.ensureIdentity(key)
	if err != nil {
		return err
	}
	return i.ledger.RemoveAuthorization(did, key, target, authID)
}

// BatchRemoveAuthorization removes several authorizations issued by or
// for the caller. Nothing is removed if any of them cannot be.
func (i *Identity) BatchRemoveAuthorization(origin types.Origin, identifiers []authorization.Identifier) error {
	key, err := origin.EnsureSigned()
	if err != nil {
		return err
	}
	did, err := i.ensureIdentity(key)
	if err != nil {
		return err
	}
	return i.ledger.BatchRemoveAuthorization(did, key, identifiers)
}

// acceptingSigner returns the signer authorizations are accepted for:
// the identity of the key if it has one, otherwise the key itself.
func (i *Identity) acceptingSigner(key types.AccountID) (types.Signatory, error) {
	did, ok, err := i.GetIdentity(key)
	if err != nil {
		return types.Signatory{}, err
	}
	if ok {
		return types.NewIdentitySignatory(did), nil
	}
	return types.NewAccountSignatory(key), nil
}

// AcceptAuthorization accepts an authorization issued to the caller and
// routes it to the pallet handling its type.
func (i *Identity) AcceptAuthorization(origin types.Origin, authID uint64) error {
	key, err := origin.EnsureSigned()
	if err != nil {
		return err
	}
	signer, err := i.acceptingSigner(key)
	if err != nil {
		return err
	}
	return i.acceptAuthorization(key, signer, authID)
}

// BatchAcceptAuthorization accepts several authorizations issued to the
// caller. Authorizations failing to be accepted are skipped, without
// leaving any of their effects.
func (i *Identity) BatchAcceptAuthorization(origin types.Origin, authIDs []uint64) error {
	key, err := origin.EnsureSigned()
	if err != nil {
		return err
	}
	signer, err := i.acceptingSigner(key)
	if err != nil {
		return err
	}

	for _, authID := range authIDs {
		authID := authID
		err = i.state.Transactional(func() error {
			return i.acceptAuthorization(key, signer, authID)
		})
		if err != nil {
			logger.Debugf("skipping authorization %d of %s: %s", authID, signer, err)
		}
	}
	return nil
}

func (i *Identity) acceptAuthorization(key types.AccountID, signer types.Signatory, authID uint64) error {
	auth, err := i.ledger.Ensure(signer, authID)
	if err != nil {
		return err
	}

	did, isIdentity := signer.AsIdentity()
	switch data := auth.AuthorizationData; {
	case data.Type == types.AuthJoinIdentity && isIdentity:
		isMaster, err := i.IsMasterKey(did, key)
		if err != nil {
			return err
		}
		if !isMaster {
			return fmt.Errorf("%w: %s for %s", ErrNotMasterKey, key, did)
		}
		return i.joinIdentity(key, signer, authID)
	case data.Type == types.AuthJoinIdentity:
		return i.joinIdentity(key, signer, authID)
	case data.Type == types.AuthRotateMasterKey && !isIdentity:
		return i.AcceptMasterKey(types.SignedOrigin(key), authID, scale.None[uint64]())
	case data.Type == types.AuthTransferTicker && isIdentity:
		return i.assets.AcceptTickerTransfer(did, authID)
	case data.Type == types.AuthTransferAssetOwnership && isIdentity:
		return i.assets.AcceptAssetOwnershipTransfer(did, authID)
	case data.Type == types.AuthAddMultiSigSigner:
		return i.multisigs.AcceptMultisigSigner(signer, authID)
	default:
		return fmt.Errorf("%w: %s for %s", ErrUnknownAuthorization, data.Type, signer)
	}
}
