// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/group"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/identity"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// Dispatch decodes the call and dispatches it to its pallet with the
// origin given. It is used for extrinsics, scheduled tasks and the
// execution of approved proposals.
func (r *Runtime) Dispatch(origin types.Origin, call []byte) error {
	index, args, err := types.DecodeCallIndex(call)
	if err != nil {
		return err
	}

	logger.Tracef("dispatching call %s with origin %s", index, origin)

	switch index.Module {
	case types.ModuleSystem:
		err = r.dispatchSystem(origin, index.Method, args)
	case types.ModuleBalances:
		err = r.dispatchBalances(origin, index.Method, args)
	case types.ModuleIdentity:
		err = r.dispatchIdentity(origin, index.Method, args)
	case types.ModuleAsset:
		err = r.dispatchAsset(origin, index.Method, args)
	case types.ModuleMultiSig:
		err = r.dispatchMultiSig(origin, index.Method, args)
	case types.ModuleProtocolFee:
		err = r.dispatchProtocolFee(origin, index.Method, args)
	case types.ModuleGroup:
		err = r.dispatchGroup(origin, index.Method, args)
	case types.ModulePips:
		err = r.pips.DispatchCall(origin, index.Method, args)
	default:
		err = fmt.Errorf("%w: %s", types.ErrUnknownCall, index)
	}
	if err != nil {
		return fmt.Errorf("dispatching call %s: %w", index, err)
	}
	return nil
}

// DispatchCall encodes and dispatches the call.
func (r *Runtime) DispatchCall(origin types.Origin, call types.Call) error {
	encoded, err := types.EncodeCall(call)
	if err != nil {
		return err
	}
	return r.Dispatch(origin, encoded)
}

func unknownCall(module, method uint8) error {
	return fmt.Errorf("%w: %s", types.ErrUnknownCall, types.CallIndex{Module: module, Method: method})
}

func (r *Runtime) dispatchSystem(_ types.Origin, method uint8, args []byte) error {
	switch method {
	case MethodRemark:
		var call RemarkCall
		return scale.Unmarshal(args, &call)
	default:
		return unknownCall(types.ModuleSystem, method)
	}
}

func (r *Runtime) dispatchBalances(origin types.Origin, method uint8, args []byte) (err error) {
	switch method {
	case MethodSetBalance:
		var call SetBalanceCall
		if err = scale.Unmarshal(args, &call); err != nil {
			return err
		}
		if err = origin.EnsureRoot(); err != nil {
			return err
		}
		return r.balances.SetFreeBalance(call.Account, call.Free)
	case MethodTransfer:
		var call TransferCall
		if err = scale.Unmarshal(args, &call); err != nil {
			return err
		}
		from, err := origin.EnsureSigned()
		if err != nil {
			return err
		}
		return r.balances.Transfer(from, call.Dest, call.Value)
	default:
		return unknownCall(types.ModuleBalances, method)
	}
}

func (r *Runtime) dispatchIdentity(origin types.Origin, method uint8, args []byte) (err error) {
	switch method {
	case MethodRegisterDid:
		var call RegisterDidCall
		if err = scale.Unmarshal(args, &call); err == nil {
			_, err = r.identity.RegisterDid(origin, call.SigningItems)
		}
	case MethodCddRegisterDid:
		var call CddRegisterDidCall
		if err = scale.Unmarshal(args, &call); err == nil {
			_, err = r.identity.CddRegisterDid(origin, call.Target, call.SigningItems)
		}
	case MethodAddSigningItems:
		var call AddSigningItemsCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.AddSigningItems(origin, call.SigningItems)
		}
	case MethodRemoveSigningItems:
		var call RemoveSigningItemsCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.RemoveSigningItems(origin, call.Signers)
		}
	case MethodSetMasterKey:
		var call SetMasterKeyCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.SetMasterKey(origin, call.NewKey)
		}
	case MethodAcceptMasterKey:
		var call AcceptMasterKeyCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.AcceptMasterKey(origin, call.RotationAuthID, call.CddAuthID)
		}
	case MethodSetPermissionToSigner:
		var call SetPermissionToSignerCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.SetPermissionToSigner(origin, call.Signer, call.Permissions)
		}
	case MethodFreezeSigningKeys:
		err = r.identity.FreezeSigningKeys(origin)
	case MethodUnfreezeSigningKeys:
		err = r.identity.UnfreezeSigningKeys(origin)
	case MethodJoinIdentityAsKey:
		var call JoinIdentityAsKeyCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.JoinIdentityAsKey(origin, call.AuthID)
		}
	case MethodJoinIdentityAsIdentity:
		var call JoinIdentityAsIdentityCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.JoinIdentityAsIdentity(origin, call.AuthID)
		}
	case MethodAuthorizeJoinToIdentity:
		var call AuthorizeJoinToIdentityCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.AuthorizeJoinToIdentity(origin, call.Target)
		}
	case MethodUnauthorizedJoinToIdentity:
		var call UnauthorizedJoinToIdentityCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.UnauthorizedJoinToIdentity(origin, call.Signer, call.Target)
		}
	case MethodAddSigningItemsWithAuthorization:
		var call AddSigningItemsWithAuthorizationCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.AddSigningItemsWithAuthorization(origin, call.ExpiresAt, call.Items)
		}
	case MethodRevokeOffChainAuthorization:
		var call RevokeOffChainAuthorizationCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.RevokeOffChainAuthorization(origin, call.Signer, call.Auth)
		}
	case MethodAddAuthorization:
		var call AddAuthorizationCall
		if err = scale.Unmarshal(args, &call); err == nil {
			_, err = r.identity.AddAuthorization(origin, call.Target, call.Data, call.Expiry)
		}
	case MethodAddAuthorizationAsKey:
		var call AddAuthorizationAsKeyCall
		if err = scale.Unmarshal(args, &call); err == nil {
			_, err = r.identity.AddAuthorizationAsKey(origin, call.Target, call.Data, call.Expiry)
		}
	case MethodBatchAddAuthorization:
		var call BatchAddAuthorizationCall
		if err = scale.Unmarshal(args, &call); err == nil {
			auths := make([]identity.NewAuthorization, len(call.Auths))
			for i, auth := range call.Auths {
				auths[i] = identity.NewAuthorization{Target: auth.Target, Data: auth.Data, Expiry: auth.Expiry}
			}
			_, err = r.identity.BatchAddAuthorization(origin, auths)
		}
	case MethodRemoveAuthorization:
		var call RemoveAuthorizationCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.RemoveAuthorization(origin, call.Target, call.AuthID)
		}
	case MethodBatchRemoveAuthorization:
		var call BatchRemoveAuthorizationCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.BatchRemoveAuthorization(origin, call.Identifiers)
		}
	case MethodAcceptAuthorization:
		var call AcceptAuthorizationCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.AcceptAuthorization(origin, call.AuthID)
		}
	case MethodBatchAcceptAuthorization:
		var call BatchAcceptAuthorizationCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.BatchAcceptAuthorization(origin, call.AuthIDs)
		}
	case MethodChangeCddRequirementForMasterKeyRotation:
		var call ChangeCddRequirementForMasterKeyRotationCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.identity.ChangeCddRequirementForMasterKeyRotation(origin, call.AuthRequired)
		}
	default:
		return unknownCall(types.ModuleIdentity, method)
	}
	return err
}

func (r *Runtime) dispatchAsset(origin types.Origin, method uint8, args []byte) (err error) {
	switch method {
	case MethodSetTickerRegistrationConfig:
		var call SetTickerRegistrationConfigCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.asset.SetTickerRegistrationConfig(origin, call.Config)
		}
	case MethodRegisterTicker:
		var call RegisterTickerCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.asset.RegisterTicker(origin, call.Ticker)
		}
	case MethodCreateAsset:
		var call CreateAssetCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.asset.CreateAsset(origin, call.Name, call.Ticker, call.TotalSupply, call.Divisible)
		}
	default:
		return unknownCall(types.ModuleAsset, method)
	}
	return err
}

func (r *Runtime) dispatchMultiSig(origin types.Origin, method uint8, args []byte) (err error) {
	switch method {
	case MethodCreateMultisig:
		var call CreateMultisigCall
		if err = scale.Unmarshal(args, &call); err == nil {
			_, err = r.multisig.CreateMultisig(origin, call.Signers, call.SigsRequired)
		}
	case MethodAddMultisigSigner:
		var call AddMultisigSignerCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.multisig.AddMultisigSigner(origin, call.Signer)
		}
	case MethodRemoveMultisigSigner:
		var call RemoveMultisigSignerCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.multisig.RemoveMultisigSigner(origin, call.Signer)
		}
	case MethodChangeSigsRequired:
		var call ChangeSigsRequiredCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.multisig.ChangeSigsRequired(origin, call.SigsRequired)
		}
	case MethodAcceptMultisigSignerAsKey:
		var call AcceptMultisigSignerAsKeyCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.multisig.AcceptMultisigSignerAsKey(origin, call.AuthID)
		}
	case MethodAcceptMultisigSignerAsIdentity:
		var call AcceptMultisigSignerAsIdentityCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.multisig.AcceptMultisigSignerAsIdentity(origin, call.AuthID)
		}
	default:
		return unknownCall(types.ModuleMultiSig, method)
	}
	return err
}

func (r *Runtime) dispatchProtocolFee(origin types.Origin, method uint8, args []byte) (err error) {
	switch method {
	case MethodChangeBaseFee:
		var call ChangeBaseFeeCall
		if err = scale.Unmarshal(args, &call); err == nil {
			err = r.protocolFee.ChangeBaseFee(origin, call.Op, call.Fee)
		}
	default:
		return unknownCall(types.ModuleProtocolFee, method)
	}
	return err
}

// membership is implemented by both groups, the committee overriding
// RemoveMember to drop a removed release coordinator.
type membership interface {
	AddMember(origin types.Origin, id types.IdentityID) error
	RemoveMember(origin types.Origin, id types.IdentityID) error
	SwapMember(origin types.Origin, remove, add types.IdentityID) error
	ResetMembers(origin types.Origin, members []types.IdentityID) error
}

var (
	_ membership = (*group.Group)(nil)
	_ membership = (*group.Committee)(nil)
)

func (r *Runtime) group(instance GroupInstance) (membership, error) {
	switch instance {
	case GroupGovernanceCommittee:
		return r.committee, nil
	case GroupCddProviders:
		return r.cddProviders, nil
	default:
		return nil, fmt.Errorf("%w: group %d", scale.ErrUnknownVariant, instance)
	}
}

func (r *Runtime) dispatchGroup(origin types.Origin, method uint8, args []byte) (err error) {
	switch method {
	case MethodAddMember:
		var call AddMemberCall
		if err = scale.Unmarshal(args, &call); err != nil {
			return err
		}
		g, err := r.group(call.Group)
		if err != nil {
			return err
		}
		return g.AddMember(origin, call.ID)
	case MethodRemoveMember:
		var call RemoveMemberCall
		if err = scale.Unmarshal(args, &call); err != nil {
			return err
		}
		g, err := r.group(call.Group)
		if err != nil {
			return err
		}
		return g.RemoveMember(origin, call.ID)
	case MethodSwapMember:
		var call SwapMemberCall
		if err = scale.Unmarshal(args, &call); err != nil {
			return err
		}
		g, err := r.group(call.Group)
		if err != nil {
			return err
		}
		return g.SwapMember(origin, call.Remove, call.Add)
	case MethodResetMembers:
		var call ResetMembersCall
		if err = scale.Unmarshal(args, &call); err != nil {
			return err
		}
		g, err := r.group(call.Group)
		if err != nil {
			return err
		}
		return g.ResetMembers(origin, call.Members)
	case MethodSetReleaseCoordinator:
		var call SetReleaseCoordinatorCall
		if err = scale.Unmarshal(args, &call); err != nil {
			return err
		}
		return r.committee.SetReleaseCoordinator(origin, call.ID)
	default:
		return unknownCall(types.ModuleGroup, method)
	}
}
