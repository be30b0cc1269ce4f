// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package identity maps account keys to identities and routes the
// authorizations they accept.
//
// An identity is a DidRecord holding a master key and signing items.
// External account keys belong to a single identity, other signer types
// may be shared by a group of identities. Signing items are pre-authorized
// by the master key and join the identity once their signer accepts.
package identity

import (
	"fmt"
	"sort"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/authorization"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/protocolfee"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/storage"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/system"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
	"github.com/samber/lo"
)

const palletName = "Identity"

// didNonceOffset is added to the extrinsic count when advancing the
// nonce of a new identity.
const didNonceOffset = 7

var logger = log.NewFromGlobal(log.AddContext("pkg", "identity"))

// Chain gives access to the block being built.
type Chain interface {
	Now() (types.Moment, error)
	ParentHash() (common.Hash, error)
	ExtrinsicCount() (uint32, error)
}

// EventDepositor deposits events in the block being built.
type EventDepositor interface {
	DepositEvent(event system.Event)
}

// Ledger stores the authorizations and the multi purpose nonce.
type Ledger interface {
	AdvanceNonce(delta uint64) (uint64, error)
	Add(from, target types.Signatory, data types.AuthorizationData,
		expiry scale.Option[types.Moment]) (uint64, error)
	Ensure(target types.Signatory, id uint64) (types.Authorization, error)
	Consume(from, target types.Signatory, id uint64) error
	RemoveAuthorization(callerDID types.IdentityID, callerKey types.AccountID,
		target types.Signatory, id uint64) error
	BatchRemoveAuthorization(callerDID types.IdentityID, callerKey types.AccountID,
		identifiers []authorization.Identifier) error
	RevokeOffChain(signer types.Signatory, auth types.TargetIDAuthorization) error
	IsOffChainRevoked(signer types.Signatory, auth types.TargetIDAuthorization) (bool, error)
}

// FeeCharger charges protocol fees.
type FeeCharger interface {
	ChargeFee(payer scale.Option[types.AccountID], op protocolfee.ProtocolOp) error
}

// CddProviders is the group of identities allowed to attest identities.
type CddProviders interface {
	IsMember(id types.IdentityID) (bool, error)
}

// AssetTransfers accepts ticker and asset ownership transfers.
type AssetTransfers interface {
	AcceptTickerTransfer(to types.IdentityID, authID uint64) error
	AcceptAssetOwnershipTransfer(to types.IdentityID, authID uint64) error
}

// MultiSigSigners accepts multisig signer authorizations.
type MultiSigSigners interface {
	AcceptMultisigSigner(signer types.Signatory, authID uint64) error
}

// Identity is the identity registry.
type Identity struct {
	state  *storage.State
	chain  Chain
	events EventDepositor
	ledger Ledger
	fees   FeeCharger
	cdd    CddProviders

	assets    AssetTransfers
	multisigs MultiSigSigners

	records            *storage.Map[types.IdentityID, types.DidRecord]
	keyToIdentityIDs   *storage.Map[types.AccountID, types.LinkedKeyInfo]
	preAuthorized      *storage.Map[types.Signatory, []types.PreAuthorizedKeyInfo]
	frozen             *storage.Map[types.IdentityID, bool]
	offChainNonce      *storage.Map[types.IdentityID, uint64]
	cddAuthForRotation *storage.Value[bool]
}

// New creates the identity registry.
func New(state *storage.State, chain Chain, events EventDepositor, ledger Ledger,
	fees FeeCharger, cdd CddProviders) *Identity {
	return &Identity{
		state:  state,
		chain:  chain,
		events: events,
		ledger: ledger,
		fees:   fees,
		cdd:    cdd,
		records: storage.NewMap[types.IdentityID, types.DidRecord](
			state, palletName, "DidRecords", common.Blake2128Concat),
		keyToIdentityIDs: storage.NewMap[types.AccountID, types.LinkedKeyInfo](
			state, palletName, "KeyToIdentityIds", common.Blake2128Concat),
		preAuthorized: storage.NewMap[types.Signatory, []types.PreAuthorizedKeyInfo](
			state, palletName, "PreAuthorizedJoinDid", common.Blake2128Concat),
		frozen: storage.NewMap[types.IdentityID, bool](
			state, palletName, "IsDidFrozen", common.Blake2128Concat),
		offChainNonce: storage.NewMap[types.IdentityID, uint64](
			state, palletName, "OffChainAuthorizationNonce", common.Blake2128Concat),
		cddAuthForRotation: storage.NewValue[bool](state, palletName, "CddAuthForMasterKeyRotation"),
	}
}

// SetAuthorizationTargets sets the pallets accepting the authorizations
// routed by AcceptAuthorization. They depend on the registry so they are
// wired once constructed.
func (i *Identity) SetAuthorizationTargets(assets AssetTransfers, multisigs MultiSigSigners) {
	i.assets = assets
	i.multisigs = multisigs
}

// DidRecord returns the record of the identity and false if it does not exist.
func (i *Identity) DidRecord(did types.IdentityID) (types.DidRecord, bool, error) {
	return i.records.TryGet(did)
}

// IsIdentityRegistered returns true if the identity exists.
func (i *Identity) IsIdentityRegistered(did types.IdentityID) (bool, error) {
	return i.records.Contains(did)
}

func (i *Identity) ensureRecord(did types.IdentityID) (types.DidRecord, error) {
	record, ok, err := i.records.TryGet(did)
	if err != nil {
		return record, err
	}
	if !ok {
		return record, fmt.Errorf("%w: %s", ErrDidDoesNotExist, did)
	}
	return record, nil
}

// LinkedKeyInfo returns the identities the key is linked to and false
// if it is not linked.
func (i *Identity) LinkedKeyInfo(key types.AccountID) (types.LinkedKeyInfo, bool, error) {
	return i.keyToIdentityIDs.TryGet(key)
}

// GetIdentity returns the identity the key acts for. Keys shared by a
// group of identities act for none of them.
func (i *Identity) GetIdentity(key types.AccountID) (types.IdentityID, bool, error) {
	linked, ok, err := i.keyToIdentityIDs.TryGet(key)
	if err != nil || !ok || linked.Kind != types.LinkedKeyUnique {
		return types.IdentityID{}, false, err
	}
	return linked.Unique, true, nil
}

func (i *Identity) ensureIdentity(key types.AccountID) (types.IdentityID, error) {
	did, ok, err := i.GetIdentity(key)
	if err != nil {
		return did, err
	}
	if !ok {
		return did, fmt.Errorf("%w: %s", ErrMissingIdentity, key)
	}
	return did, nil
}

// IsMasterKey returns true if the key is the master key of the identity.
func (i *Identity) IsMasterKey(did types.IdentityID, key types.AccountID) (bool, error) {
	record, ok, err := i.records.TryGet(did)
	if err != nil || !ok {
		return false, err
	}
	return record.MasterKey == key, nil
}

// ensureMaster returns the identity of the signed origin with its
// record, checking the caller is its master key.
func (i *Identity) ensureMaster(origin types.Origin) (
	key types.AccountID, did types.IdentityID, record types.DidRecord, err error) {
	key, err = origin.EnsureSigned()
	if err != nil {
		return key, did, record, err
	}

	did, err = i.ensureIdentity(key)
	if err != nil {
		return key, did, record, err
	}

	record, err = i.ensureRecord(did)
	if err != nil {
		return key, did, record, err
	}
	if record.MasterKey != key {
		return key, did, record, fmt.Errorf("%w: %s for %s", ErrNotMasterKey, key, did)
	}
	return key, did, record, nil
}

// IsFrozen returns true if the signing items of the identity are frozen.
func (i *Identity) IsFrozen(did types.IdentityID) (bool, error) {
	return i.frozen.Contains(did)
}

// IsSignerAuthorized returns true if the signer may act for the identity:
// its master key, the identity itself or, unless frozen, one of its
// signing items.
func (i *Identity) IsSignerAuthorized(did types.IdentityID, signer types.Signatory) (bool, error) {
	_, ok, err := i.signingItemOf(did, signer)
	return ok, err
}

// IsSignerAuthorizedWithPermissions is IsSignerAuthorized further
// requiring signing items to hold one of the permissions given.
func (i *Identity) IsSignerAuthorizedWithPermissions(did types.IdentityID, signer types.Signatory,
	permissions []types.Permission) (bool, error) {
	item, ok, err := i.signingItemOf(did, signer)
	if err != nil || !ok {
		return false, err
	}
	if item == nil {
		return true, nil
	}
	return lo.SomeBy(permissions, item.HasPermission), nil
}

// signingItemOf returns whether the signer may act for the identity and
// its signing item, nil for the master key and the identity itself.
func (i *Identity) signingItemOf(did types.IdentityID, signer types.Signatory) (
	*types.SigningItem, bool, error) {
	record, ok, err := i.records.TryGet(did)
	if err != nil || !ok {
		return nil, false, err
	}

	if key, isKey := signer.AsAccount(); isKey && key == record.MasterKey {
		return nil, true, nil
	}
	if id, isIdentity := signer.AsIdentity(); isIdentity && id == did {
		return nil, true, nil
	}

	frozen, err := i.frozen.Contains(did)
	if err != nil || frozen {
		return nil, false, err
	}

	index := record.FindSigningItem(signer)
	if index < 0 {
		return nil, false, nil
	}
	return &record.SigningItems[index], true, nil
}

// FlattenKeys returns the account keys of the identity, its master key
// first, then the keys of its signing items.
func (i *Identity) FlattenKeys(did types.IdentityID) ([]types.AccountID, error) {
	record, err := i.ensureRecord(did)
	if err != nil {
		return nil, err
	}

	keys := []types.AccountID{record.MasterKey}
	for _, item := range record.SigningItems {
		if key, ok := item.Signer.AsAccount(); ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// CanKeyBeLinked returns true if the key may be linked to an identity as
// a signer of the type given. External keys belong to a single identity.
func (i *Identity) CanKeyBeLinked(key types.AccountID, signerType types.SignerType) (bool, error) {
	linked, ok, err := i.keyToIdentityIDs.TryGet(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	return linked.Kind == types.LinkedKeyGroup && signerType != types.SignerTypeExternal, nil
}

func (i *Identity) ensureLinkable(key types.AccountID, signerType types.SignerType) error {
	linkable, err := i.CanKeyBeLinked(key, signerType)
	if err != nil {
		return err
	}
	if !linkable {
		return fmt.Errorf("%w: %s as %s", ErrAlreadyLinked, key, signerType)
	}
	return nil
}

func (i *Identity) ensureItemsLinkable(items []types.SigningItem) error {
	for _, item := range items {
		key, ok := item.Signer.AsAccount()
		if !ok {
			continue
		}
		err := i.ensureLinkable(key, item.SignerType)
		if err != nil {
			return err
		}
	}
	return nil
}

// linkKey links the key to the identity. It does nothing if the key
// cannot be linked as a signer of the type given.
func (i *Identity) linkKey(key types.AccountID, signerType types.SignerType, did types.IdentityID) error {
	linked, ok, err := i.keyToIdentityIDs.TryGet(key)
	if err != nil {
		return err
	}

	switch {
	case !ok && signerType == types.SignerTypeExternal:
		linked = types.LinkedKeyInfo{Kind: types.LinkedKeyUnique, Unique: did}
	case !ok:
		linked = types.LinkedKeyInfo{Kind: types.LinkedKeyGroup, Group: []types.IdentityID{did}}
	case linked.Kind == types.LinkedKeyGroup && signerType != types.SignerTypeExternal:
		if lo.Contains(linked.Group, did) {
			return nil
		}
		linked.Group = append(linked.Group, did)
		sort.Slice(linked.Group, func(a, b int) bool {
			return linked.Group[a].Compare(linked.Group[b]) < 0
		})
	default:
		return nil
	}

	logger.Tracef("linking key %s to %s", key.Short(), did)
	return i.keyToIdentityIDs.Insert(key, linked)
}

// unlinkKey removes the link of the key to the identity, if any.
func (i *Identity) unlinkKey(key types.AccountID, did types.IdentityID) error {
	linked, ok, err := i.keyToIdentityIDs.TryGet(key)
	if err != nil || !ok {
		return err
	}

	switch linked.Kind {
	case types.LinkedKeyUnique:
		if linked.Unique != did {
			return nil
		}
		return i.keyToIdentityIDs.Remove(key)
	default:
		group := lo.Without(linked.Group, did)
		if len(group) == 0 {
			return i.keyToIdentityIDs.Remove(key)
		}
		linked.Group = group
		return i.keyToIdentityIDs.Insert(key, linked)
	}
}

// PreAuthorizations returns the identities the signer is pre-authorized to join.
func (i *Identity) PreAuthorizations(signer types.Signatory) ([]types.PreAuthorizedKeyInfo, error) {
	return i.preAuthorized.Get(signer)
}

// addPreJoin pre-authorizes the signing item to join the identity,
// replacing any previous pre-authorization of its signer for it.
func (i *Identity) addPreJoin(item types.SigningItem, did types.IdentityID) error {
	return i.preAuthorized.Mutate(item.Signer, func(infos *[]types.PreAuthorizedKeyInfo) error {
		*infos = lo.Reject(*infos, func(info types.PreAuthorizedKeyInfo, _ int) bool {
			return info.TargetID == did
		})
		*infos = append(*infos, types.PreAuthorizedKeyInfo{TargetID: did, SigningItem: item})
		return nil
	})
}

func (i *Identity) removePreJoin(signer types.Signatory, did types.IdentityID) error {
	infos, err := i.preAuthorized.Get(signer)
	if err != nil {
		return err
	}

	infos = lo.Reject(infos, func(info types.PreAuthorizedKeyInfo, _ int) bool {
		return info.TargetID == did
	})
	if len(infos) == 0 {
		return i.preAuthorized.Remove(signer)
	}
	return i.preAuthorized.Insert(signer, infos)
}

// CddAuthForMasterKeyRotation returns true if master key rotations need
// a cdd provider attestation.
func (i *Identity) CddAuthForMasterKeyRotation() (bool, error) {
	return i.cddAuthForRotation.Get()
}

// ChangeCddRequirementForMasterKeyRotation sets whether master key
// rotations need a cdd provider attestation. It requires the root origin.
func (i *Identity) ChangeCddRequirementForMasterKeyRotation(origin types.Origin, required bool) error {
	err := origin.EnsureRoot()
	if err != nil {
		return err
	}

	err = i.cddAuthForRotation.Put(required)
	if err != nil {
		return err
	}

	i.events.DepositEvent(EventCddRequirementForMasterKeyRotationUpdated{Required: required})
	return nil
}
