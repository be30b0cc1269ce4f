// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/asset"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/pips"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/protocolfee"
	"github.com/samber/lo"
)

// GenesisAccount is an account endowed at genesis.
type GenesisAccount struct {
	Account types.AccountID
	Free    types.Balance
}

// GenesisIdentity is an identity registered at genesis, with the groups
// it is a member of.
type GenesisIdentity struct {
	MasterKey           types.AccountID
	CddProvider         bool
	GovernanceCommittee bool
	ReleaseCoordinator  bool
}

// Genesis is the initial state of the chain.
type Genesis struct {
	Timestamp                   types.Moment
	Accounts                    []GenesisAccount
	Identities                  []GenesisIdentity
	ProtocolFees                map[protocolfee.ProtocolOp]types.Balance
	CddAuthForMasterKeyRotation bool
	TickerConfig                asset.TickerRegistrationConfig
	Pips                        pips.Genesis
}

// ApplyGenesis builds the genesis block from the configuration and
// returns its hash with the identities registered, in the order given.
// Identities are registered before protocol fees are set so they are
// free of charge.
func (r *Runtime) ApplyGenesis(genesis Genesis) (hash common.Hash, dids []types.IdentityID, err error) {
	applied, err := r.system.BlockHash(0)
	if err != nil {
		return hash, nil, err
	}
	if applied != (common.Hash{}) {
		return hash, nil, fmt.Errorf("%w: hash %s", ErrGenesisApplied, applied)
	}

	duplicates := lo.FindDuplicatesBy(genesis.Accounts, func(account GenesisAccount) types.AccountID {
		return account.Account
	})
	if len(duplicates) > 0 {
		return hash, nil, fmt.Errorf("%w: %s", ErrDuplicateAccount, duplicates[0].Account)
	}

	err = r.system.Initialize(0, common.Hash{}, genesis.Timestamp)
	if err != nil {
		return hash, nil, err
	}

	for _, account := range genesis.Accounts {
		err = r.balances.SetFreeBalance(account.Account, account.Free)
		if err != nil {
			return hash, nil, fmt.Errorf("endowing %s: %w", account.Account, err)
		}
	}

	dids, err = r.registerGenesisIdentities(genesis.Identities)
	if err != nil {
		return hash, nil, err
	}

	for op := protocolfee.IdentityRegisterDid; op <= protocolfee.MultiSigCreate; op++ {
		fee, ok := genesis.ProtocolFees[op]
		if !ok {
			continue
		}
		err = r.protocolFee.SetBaseFee(op, fee)
		if err != nil {
			return hash, nil, fmt.Errorf("setting fee of %s: %w", op, err)
		}
	}

	root := types.RootOrigin()
	err = r.identity.ChangeCddRequirementForMasterKeyRotation(root, genesis.CddAuthForMasterKeyRotation)
	if err != nil {
		return hash, nil, err
	}
	err = r.asset.SetTickerRegistrationConfig(root, genesis.TickerConfig)
	if err != nil {
		return hash, nil, err
	}
	err = r.pips.ApplyGenesis(genesis.Pips)
	if err != nil {
		return hash, nil, fmt.Errorf("applying pips genesis: %w", err)
	}

	hash, _, err = r.FinalizeBlock()
	if err != nil {
		return hash, nil, err
	}
	logger.Infof("genesis block built with hash %s and %d identities", hash, len(dids))
	return hash, dids, nil
}

func (r *Runtime) registerGenesisIdentities(identities []GenesisIdentity) (dids []types.IdentityID, err error) {
	var (
		providers   []types.IdentityID
		committee   []types.IdentityID
		coordinator *types.IdentityID
	)

	dids = make([]types.IdentityID, len(identities))
	for i, genesisIdentity := range identities {
		did, err := r.identity.RegisterDid(types.SignedOrigin(genesisIdentity.MasterKey), nil)
		if err != nil {
			return nil, fmt.Errorf("registering identity of %s: %w", genesisIdentity.MasterKey, err)
		}
		dids[i] = did

		if genesisIdentity.CddProvider {
			providers = append(providers, did)
		}
		if genesisIdentity.GovernanceCommittee {
			committee = append(committee, did)
		}
		if genesisIdentity.ReleaseCoordinator {
			coordinator = &dids[i]
		}
	}

	err = r.cddProviders.SetMembers(providers)
	if err != nil {
		return nil, err
	}
	err = r.committee.SetMembers(committee)
	if err != nil {
		return nil, err
	}
	if coordinator != nil {
		err = r.committee.PutReleaseCoordinator(*coordinator)
		if err != nil {
			return nil, fmt.Errorf("setting release coordinator: %w", err)
		}
	}
	return dids, nil
}
