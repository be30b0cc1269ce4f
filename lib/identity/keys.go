// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package identity

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/protocolfee"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

type didPreimage struct {
	Tag       [8]byte
	BlockHash common.Hash
	Nonce     uint64
}

// UserDID derives the identity registered with the nonce given in the
// block following the hash given.
func UserDID(blockHash common.Hash, nonce uint64) (types.IdentityID, error) {
	encoded, err := scale.Marshal(didPreimage{Tag: types.UserDIDTag, BlockHash: blockHash, Nonce: nonce})
	if err != nil {
		return types.IdentityID{}, fmt.Errorf("encoding identity preimage: %w", err)
	}

	hash, err := common.Blake2bHash(encoded)
	if err != nil {
		return types.IdentityID{}, err
	}
	return types.IdentityID(hash), nil
}

// nextDID advances the multi purpose nonce and derives a new identity
// from it. The nonce moves by the extrinsic count of the block so that
// identities are harder to predict.
func (i *Identity) nextDID() (types.IdentityID, error) {
	count, err := i.chain.ExtrinsicCount()
	if err != nil {
		return types.IdentityID{}, err
	}

	nonce, err := i.ledger.AdvanceNonce(uint64(count) + didNonceOffset)
	if err != nil {
		return types.IdentityID{}, err
	}

	parentHash, err := i.chain.ParentHash()
	if err != nil {
		return types.IdentityID{}, err
	}
	return UserDID(parentHash, nonce)
}

// RegisterDid registers a new identity with the caller as master key.
// The signing items given are pre-authorized to join it.
func (i *Identity) RegisterDid(origin types.Origin, items []types.SigningItem) (types.IdentityID, error) {
	sender, err := origin.EnsureSigned()
	if err != nil {
		return types.IdentityID{}, err
	}
	return i.registerDid(sender, sender, items, protocolfee.IdentityRegisterDid)
}

// CddRegisterDid registers a new identity for the target key on behalf
// of a cdd provider, which pays the fee.
func (i *Identity) CddRegisterDid(origin types.Origin, target types.AccountID,
	items []types.SigningItem) (types.IdentityID, error) {
	sender, err := origin.EnsureSigned()
	if err != nil {
		return types.IdentityID{}, err
	}

	providerDID, err := i.ensureIdentity(sender)
	if err != nil {
		return types.IdentityID{}, err
	}
	isProvider, err := i.cdd.IsMember(providerDID)
	if err != nil {
		return types.IdentityID{}, err
	}
	if !isProvider {
		return types.IdentityID{}, fmt.Errorf("%w: %s", ErrNotCddProvider, providerDID)
	}

	return i.registerDid(sender, target, items, protocolfee.IdentityCddRegisterDid)
}

func (i *Identity) registerDid(payer, masterKey types.AccountID, items []types.SigningItem,
	op protocolfee.ProtocolOp) (types.IdentityID, error) {
	did, err := i.nextDID()
	if err != nil {
		return did, err
	}

	err = i.ensureLinkable(masterKey, types.SignerTypeExternal)
	if err != nil {
		return did, err
	}
	master := types.NewAccountSignatory(masterKey)
	for _, item := range items {
		if item.Signer == master {
			return did, fmt.Errorf("%w: %s", ErrSigningKeysContainMasterKey, masterKey)
		}
	}

	exists, err := i.records.Contains(did)
	if err != nil {
		return did, err
	}
	if exists {
		return did, fmt.Errorf("%w: %s", ErrDidAlreadyExists, did)
	}

	err = i.ensureItemsLinkable(items)
	if err != nil {
		return did, err
	}

	err = i.fees.ChargeFee(scale.Some(payer), op)
	if err != nil {
		return did, err
	}

	err = i.linkKey(masterKey, types.SignerTypeExternal, did)
	if err != nil {
		return did, err
	}
	for _, item := range items {
		err = i.addPreJoin(item, did)
		if err != nil {
			return did, err
		}
	}

	err = i.records.Insert(did, types.DidRecord{MasterKey: masterKey})
	if err != nil {
		return did, err
	}

	logger.Debugf("registered identity %s with master key %s", did, masterKey)
	i.events.DepositEvent(EventNewDid{DID: did, MasterKey: masterKey, SigningItems: items})
	return did, nil
}

// AddSigningItems pre-authorizes signing items to join the identity of
// the caller, which must be its master key. Items already in the
// identity are ignored.
func (i *Identity) AddSigningItems(origin types.Origin, items []types.SigningItem) error {
	_, did, record, err := i.ensureMaster(origin)
	if err != nil {
		return err
	}

	err = i.ensureItemsLinkable(items)
	if err != nil {
		return err
	}

	for _, item := range items {
		if index := record.FindSigningItem(item.Signer); index >= 0 &&
			record.SigningItems[index].Equal(item) {
			continue
		}
		err = i.addPreJoin(item, did)
		if err != nil {
			return err
		}
	}

	i.events.DepositEvent(EventSigningItemsAuthorized{DID: did, SigningItems: items})
	return nil
}

// RemoveSigningItems removes the signers from the identity of the
// caller, which must be its master key, including their pending
// pre-authorizations.
func (i *Identity) RemoveSigningItems(origin types.Origin, signers []types.Signatory) error {
	_, did, record, err := i.ensureMaster(origin)
	if err != nil {
		return err
	}

	for _, signer := range signers {
		err = i.removePreJoin(signer, did)
		if err != nil {
			return err
		}
		if key, ok := signer.AsAccount(); ok {
			err = i.unlinkKey(key, did)
			if err != nil {
				return err
			}
		}
	}

	record.RemoveSigningItems(signers)
	err = i.records.Insert(did, record)
	if err != nil {
		return err
	}

	i.events.DepositEvent(EventSigningItemsRevoked{DID: did, Signers: signers})
	return nil
}

// SetMasterKey replaces the master key of the identity of the caller,
// which must be its current master key.
func (i *Identity) SetMasterKey(origin types.Origin, newKey types.AccountID) error {
	sender, did, record, err := i.ensureMaster(origin)
	if err != nil {
		return err
	}

	err = i.ensureLinkable(newKey, types.SignerTypeExternal)
	if err != nil {
		return err
	}

	err = i.fees.ChargeFee(scale.Some(sender), protocolfee.IdentitySetMasterKey)
	if err != nil {
		return err
	}

	return i.replaceMasterKey(did, record, newKey)
}

func (i *Identity) replaceMasterKey(did types.IdentityID, record types.DidRecord, newKey types.AccountID) error {
	oldKey := record.MasterKey
	err := i.unlinkKey(oldKey, did)
	if err != nil {
		return err
	}
	err = i.linkKey(newKey, types.SignerTypeExternal, did)
	if err != nil {
		return err
	}

	record.MasterKey = newKey
	err = i.records.Insert(did, record)
	if err != nil {
		return err
	}

	logger.Debugf("master key of %s rotated from %s to %s", did, oldKey, newKey)
	i.events.DepositEvent(EventMasterKeyUpdated{DID: did, OldKey: oldKey, NewKey: newKey})
	return nil
}

// AcceptMasterKey makes the caller the master key of the identity that
// issued the rotation authorization to it. When cdd attestations are
// required, a cdd provider must have attested the rotation of the same
// identity to the caller.
func (i *Identity) AcceptMasterKey(origin types.Origin, rotationAuthID uint64,
	cddAuthID scale.Option[uint64]) error {
	sender, err := origin.EnsureSigned()
	if err != nil {
		return err
	}
	target := types.NewAccountSignatory(sender)

	rotation, err := i.ledger.Ensure(target, rotationAuthID)
	if err != nil {
		return err
	}
	if rotation.AuthorizationData.Type != types.AuthRotateMasterKey {
		return fmt.Errorf("%w: %d is %s", ErrNotRotateMasterKeyAuth, rotationAuthID, rotation.AuthorizationData.Type)
	}
	did := rotation.AuthorizationData.Identity

	cddRequired, err := i.cddAuthForRotation.Get()
	if err != nil {
		return err
	}

	var attestation types.Authorization
	if cddRequired {
		attestationID, ok := cddAuthID.Get()
		if !ok {
			return ErrInvalidAuthorizationFromCddProvider
		}
		attestation, err = i.ensureCddAttestation(target, attestationID, did)
		if err != nil {
			return err
		}
	}

	err = i.ensureLinkable(sender, types.SignerTypeExternal)
	if err != nil {
		return err
	}
	record, err := i.ensureRecord(did)
	if err != nil {
		return err
	}

	err = i.ledger.Consume(types.NewIdentitySignatory(did), target, rotationAuthID)
	if err != nil {
		return err
	}
	if cddRequired {
		err = i.ledger.Consume(attestation.AuthorizedBy, target, attestation.ID)
		if err != nil {
			return err
		}
	}

	return i.replaceMasterKey(did, record, sender)
}

func (i *Identity) ensureCddAttestation(target types.Signatory, id uint64,
	did types.IdentityID) (types.Authorization, error) {
	attestation, err := i.ledger.Ensure(target, id)
	if err != nil {
		return attestation, err
	}
	if attestation.AuthorizationData.Type != types.AuthAttestMasterKeyRotation {
		return attestation, fmt.Errorf("%w: %d is %s",
			ErrInvalidAuthorizationFromCddProvider, id, attestation.AuthorizationData.Type)
	}

	provider, ok := attestation.AuthorizedBy.AsIdentity()
	if !ok {
		return attestation, fmt.Errorf("%w: issued by %s", ErrNotCddProviderAttestation, attestation.AuthorizedBy)
	}
	isProvider, err := i.cdd.IsMember(provider)
	if err != nil {
		return attestation, err
	}
	if !isProvider {
		return attestation, fmt.Errorf("%w: issued by %s", ErrNotCddProviderAttestation, provider)
	}

	if attested := attestation.AuthorizationData.Identity; attested != did {
		return attestation, fmt.Errorf("%w: rotating %s, attested %s", ErrAuthorizationsNotForSameDids, did, attested)
	}
	return attestation, nil
}

// SetPermissionToSigner sets the permissions of a signing item of the
// identity of the caller, which must be its master key. The master key
// holds every permission so setting its permissions does nothing.
func (i *Identity) SetPermissionToSigner(origin types.Origin, signer types.Signatory,
	permissions []types.Permission) error {
	_, did, record, err := i.ensureMaster(origin)
	if err != nil {
		return err
	}

	if key, ok := signer.AsAccount(); ok && key == record.MasterKey {
		return nil
	}

	index := record.FindSigningItem(signer)
	if index < 0 {
		return fmt.Errorf("%w: %s of %s", ErrNotASigner, signer, did)
	}

	item := record.SigningItems[index]
	oldPermissions := item.Permissions
	item.Permissions = types.NormalisePermissions(permissions)

	// The updated item moves to the end of the signing items.
	record.SigningItems = append(record.SigningItems[:index], record.SigningItems[index+1:]...)
	record.SigningItems = append(record.SigningItems, item)
	err = i.records.Insert(did, record)
	if err != nil {
		return err
	}

	i.events.DepositEvent(EventSigningPermissionsUpdated{
		DID:            did,
		Signer:         signer,
		OldPermissions: oldPermissions,
		NewPermissions: item.Permissions,
	})
	return nil
}

// FreezeSigningKeys disables the signing items of the identity of the
// caller, which must be its master key.
func (i *Identity) FreezeSigningKeys(origin types.Origin) error {
	return i.setFrozen(origin, true)
}

// UnfreezeSigningKeys enables the signing items of the identity of the
// caller, which must be its master key.
func (i *Identity) UnfreezeSigningKeys(origin types.Origin) error {
	return i.setFrozen(origin, false)
}

func (i *Identity) setFrozen(origin types.Origin, freeze bool) error {
	_, did, _, err := i.ensureMaster(origin)
	if err != nil {
		return err
	}

	if freeze {
		err = i.frozen.Insert(did, true)
		if err != nil {
			return err
		}
		i.events.DepositEvent(EventSigningKeysFrozen{DID: did})
		return nil
	}

	err = i.frozen.Remove(did)
	if err != nil {
		return err
	}
	i.events.DepositEvent(EventSigningKeysUnfrozen{DID: did})
	return nil
}
