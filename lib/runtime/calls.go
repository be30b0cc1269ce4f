// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/asset"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/authorization"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/protocolfee"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// Method indexes of the system calls.
const (
	MethodRemark uint8 = iota
)

// RemarkCall does nothing. It is dispatchable with any origin.
type RemarkCall struct {
	Remark []byte
}

// Method indexes of the balances calls.
const (
	MethodSetBalance uint8 = iota
	MethodTransfer
)

// SetBalanceCall sets the free balance of an account. It requires root.
type SetBalanceCall struct {
	Account types.AccountID
	Free    types.Balance
}

type TransferCall struct {
	Dest  types.AccountID
	Value types.Balance
}

// Method indexes of the identity calls.
const (
	MethodRegisterDid uint8 = iota
	MethodCddRegisterDid
	MethodAddSigningItems
	MethodRemoveSigningItems
	MethodSetMasterKey
	MethodAcceptMasterKey
	MethodSetPermissionToSigner
	MethodFreezeSigningKeys
	MethodUnfreezeSigningKeys
	MethodJoinIdentityAsKey
	MethodJoinIdentityAsIdentity
	MethodAuthorizeJoinToIdentity
	MethodUnauthorizedJoinToIdentity
	MethodAddSigningItemsWithAuthorization
	MethodRevokeOffChainAuthorization
	MethodAddAuthorization
	MethodAddAuthorizationAsKey
	MethodBatchAddAuthorization
	MethodRemoveAuthorization
	MethodBatchRemoveAuthorization
	MethodAcceptAuthorization
	MethodBatchAcceptAuthorization
	MethodChangeCddRequirementForMasterKeyRotation
)

type RegisterDidCall struct {
	SigningItems []types.SigningItem
}

type CddRegisterDidCall struct {
	Target       types.AccountID
	SigningItems []types.SigningItem
}

type AddSigningItemsCall struct {
	SigningItems []types.SigningItem
}

type RemoveSigningItemsCall struct {
	Signers []types.Signatory
}

type SetMasterKeyCall struct {
	NewKey types.AccountID
}

type AcceptMasterKeyCall struct {
	RotationAuthID uint64
	CddAuthID      scale.Option[uint64]
}

type SetPermissionToSignerCall struct {
	Signer      types.Signatory
	Permissions []types.Permission
}

type FreezeSigningKeysCall struct{}

type UnfreezeSigningKeysCall struct{}

type JoinIdentityAsKeyCall struct {
	AuthID uint64
}

type JoinIdentityAsIdentityCall struct {
	AuthID uint64
}

type AuthorizeJoinToIdentityCall struct {
	Target types.IdentityID
}

type UnauthorizedJoinToIdentityCall struct {
	Signer types.Signatory
	Target types.IdentityID
}

type AddSigningItemsWithAuthorizationCall struct {
	ExpiresAt types.Moment
	Items     []types.SigningItemWithAuth
}

type RevokeOffChainAuthorizationCall struct {
	Signer types.Signatory
	Auth   types.TargetIDAuthorization
}

type AddAuthorizationCall struct {
	Target types.Signatory
	Data   types.AuthorizationData
	Expiry scale.Option[types.Moment]
}

type AddAuthorizationAsKeyCall struct {
	Target types.Signatory
	Data   types.AuthorizationData
	Expiry scale.Option[types.Moment]
}

type BatchAddAuthorizationCall struct {
	Auths []AddAuthorizationCall
}

type RemoveAuthorizationCall struct {
	Target types.Signatory
	AuthID uint64
}

type BatchRemoveAuthorizationCall struct {
	Identifiers []authorization.Identifier
}

type AcceptAuthorizationCall struct {
	AuthID uint64
}

type BatchAcceptAuthorizationCall struct {
	AuthIDs []uint64
}

type ChangeCddRequirementForMasterKeyRotationCall struct {
	AuthRequired bool
}

// Method indexes of the asset calls.
const (
	MethodSetTickerRegistrationConfig uint8 = iota
	MethodRegisterTicker
	MethodCreateAsset
)

type SetTickerRegistrationConfigCall struct {
	Config asset.TickerRegistrationConfig
}

type RegisterTickerCall struct {
	Ticker types.Ticker
}

type CreateAssetCall struct {
	Name        []byte
	Ticker      types.Ticker
	TotalSupply types.Balance
	Divisible   bool
}

// Method indexes of the multisig calls.
const (
	MethodCreateMultisig uint8 = iota
	MethodAddMultisigSigner
	MethodRemoveMultisigSigner
	MethodChangeSigsRequired
	MethodAcceptMultisigSignerAsKey
	MethodAcceptMultisigSignerAsIdentity
)

type CreateMultisigCall struct {
	Signers      []types.Signatory
	SigsRequired uint64
}

type AddMultisigSignerCall struct {
	Signer types.Signatory
}

type RemoveMultisigSignerCall struct {
	Signer types.Signatory
}

type ChangeSigsRequiredCall struct {
	SigsRequired uint64
}

type AcceptMultisigSignerAsKeyCall struct {
	AuthID uint64
}

type AcceptMultisigSignerAsIdentityCall struct {
	AuthID uint64
}

// Method indexes of the protocol fee calls.
const (
	MethodChangeBaseFee uint8 = iota
)

type ChangeBaseFeeCall struct {
	Op  protocolfee.ProtocolOp
	Fee types.Balance
}

// Method indexes of the calls of the governance committee and of the
// cdd providers group. The group is the first argument of each call.
const (
	MethodAddMember uint8 = iota
	MethodRemoveMember
	MethodSwapMember
	MethodResetMembers
	MethodSetReleaseCoordinator
)

// GroupInstance selects the group a group call applies to.
type GroupInstance uint8

const (
	GroupGovernanceCommittee GroupInstance = iota
	GroupCddProviders
)

type AddMemberCall struct {
	Group GroupInstance
	ID    types.IdentityID
}

type RemoveMemberCall struct {
	Group GroupInstance
	ID    types.IdentityID
}

type SwapMemberCall struct {
	Group  GroupInstance
	Remove types.IdentityID
	Add    types.IdentityID
}

type ResetMembersCall struct {
	Group   GroupInstance
	Members []types.IdentityID
}

// SetReleaseCoordinatorCall applies to the governance committee only.
type SetReleaseCoordinatorCall struct {
	ID types.IdentityID
}

func systemCall(method uint8) types.CallIndex {
	return types.CallIndex{Module: types.ModuleSystem, Method: method}
}

func balancesCall(method uint8) types.CallIndex {
	return types.CallIndex{Module: types.ModuleBalances, Method: method}
}

func identityCall(method uint8) types.CallIndex {
	return types.CallIndex{Module: types.ModuleIdentity, Method: method}
}

func assetCall(method uint8) types.CallIndex {
	return types.CallIndex{Module: types.ModuleAsset, Method: method}
}

func multisigCall(method uint8) types.CallIndex {
	return types.CallIndex{Module: types.ModuleMultiSig, Method: method}
}

func groupCall(method uint8) types.CallIndex {
	return types.CallIndex{Module: types.ModuleGroup, Method: method}
}

func (RemarkCall) CallIndex() types.CallIndex     { return systemCall(MethodRemark) }
func (SetBalanceCall) CallIndex() types.CallIndex { return balancesCall(MethodSetBalance) }
func (TransferCall) CallIndex() types.CallIndex   { return balancesCall(MethodTransfer) }

func (RegisterDidCall) CallIndex() types.CallIndex    { return identityCall(MethodRegisterDid) }
func (CddRegisterDidCall) CallIndex() types.CallIndex { return identityCall(MethodCddRegisterDid) }
func (AddSigningItemsCall) CallIndex() types.CallIndex {
	return identityCall(MethodAddSigningItems)
}
func (RemoveSigningItemsCall) CallIndex() types.CallIndex {
	return identityCall(MethodRemoveSigningItems)
}
func (SetMasterKeyCall) CallIndex() types.CallIndex    { return identityCall(MethodSetMasterKey) }
func (AcceptMasterKeyCall) CallIndex() types.CallIndex { return identityCall(MethodAcceptMasterKey) }
func (SetPermissionToSignerCall) CallIndex() types.CallIndex {
	return identityCall(MethodSetPermissionToSigner)
}
func (FreezeSigningKeysCall) CallIndex() types.CallIndex {
	return identityCall(MethodFreezeSigningKeys)
}
func (UnfreezeSigningKeysCall) CallIndex() types.CallIndex {
	return identityCall(MethodUnfreezeSigningKeys)
}
func (JoinIdentityAsKeyCall) CallIndex() types.CallIndex {
	return identityCall(MethodJoinIdentityAsKey)
}
func (JoinIdentityAsIdentityCall) CallIndex() types.CallIndex {
	return identityCall(MethodJoinIdentityAsIdentity)
}
func (AuthorizeJoinToIdentityCall) CallIndex() types.CallIndex {
	return identityCall(MethodAuthorizeJoinToIdentity)
}
func (UnauthorizedJoinToIdentityCall) CallIndex() types.CallIndex {
	return identityCall(MethodUnauthorizedJoinToIdentity)
}
func (AddSigningItemsWithAuthorizationCall) CallIndex() types.CallIndex {
	return identityCall(MethodAddSigningItemsWithAuthorization)
}
func (RevokeOffChainAuthorizationCall) CallIndex() types.CallIndex {
	return identityCall(MethodRevokeOffChainAuthorization)
}
func (AddAuthorizationCall) CallIndex() types.CallIndex { return identityCall(MethodAddAuthorization) }
func (AddAuthorizationAsKeyCall) CallIndex() types.CallIndex {
	return identityCall(MethodAddAuthorizationAsKey)
}
func (BatchAddAuthorizationCall) CallIndex() types.CallIndex {
	return identityCall(MethodBatchAddAuthorization)
}
func (RemoveAuthorizationCall) CallIndex() types.CallIndex {
	return identityCall(MethodRemoveAuthorization)
}
func (BatchRemoveAuthorizationCall) CallIndex() types.CallIndex {
	return identityCall(MethodBatchRemoveAuthorization)
}
func (AcceptAuthorizationCall) CallIndex() types.CallIndex {
	return identityCall(MethodAcceptAuthorization)
}
func (BatchAcceptAuthorizationCall) CallIndex() types.CallIndex {
	return identityCall(MethodBatchAcceptAuthorization)
}
func (ChangeCddRequirementForMasterKeyRotationCall) CallIndex() types.CallIndex {
	return identityCall(MethodChangeCddRequirementForMasterKeyRotation)
}

func (SetTickerRegistrationConfigCall) CallIndex() types.CallIndex {
	return assetCall(MethodSetTickerRegistrationConfig)
}
func (RegisterTickerCall) CallIndex() types.CallIndex { return assetCall(MethodRegisterTicker) }
func (CreateAssetCall) CallIndex() types.CallIndex    { return assetCall(MethodCreateAsset) }

func (CreateMultisigCall) CallIndex() types.CallIndex { return multisigCall(MethodCreateMultisig) }
func (AddMultisigSignerCall) CallIndex() types.CallIndex {
	return multisigCall(MethodAddMultisigSigner)
}
func (RemoveMultisigSignerCall) CallIndex() types.CallIndex {
	return multisigCall(MethodRemoveMultisigSigner)
}
func (ChangeSigsRequiredCall) CallIndex() types.CallIndex {
	return multisigCall(MethodChangeSigsRequired)
}
func (AcceptMultisigSignerAsKeyCall) CallIndex() types.CallIndex {
	return multisigCall(MethodAcceptMultisigSignerAsKey)
}
func (AcceptMultisigSignerAsIdentityCall) CallIndex() types.CallIndex {
	return multisigCall(MethodAcceptMultisigSignerAsIdentity)
}

func (ChangeBaseFeeCall) CallIndex() types.CallIndex {
	return types.CallIndex{Module: types.ModuleProtocolFee, Method: MethodChangeBaseFee}
}

func (AddMemberCall) CallIndex() types.CallIndex     { return groupCall(MethodAddMember) }
func (RemoveMemberCall) CallIndex() types.CallIndex  { return groupCall(MethodRemoveMember) }
func (SwapMemberCall) CallIndex() types.CallIndex    { return groupCall(MethodSwapMember) }
func (ResetMembersCall) CallIndex() types.CallIndex  { return groupCall(MethodResetMembers) }
func (SetReleaseCoordinatorCall) CallIndex() types.CallIndex {
	return groupCall(MethodSetReleaseCoordinator)
}
