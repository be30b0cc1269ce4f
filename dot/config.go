// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"time"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/asset"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/keystore"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/pips"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/protocolfee"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/runtime"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Config is a collection of configurations throughout the system
type Config struct {
	Global    GlobalConfig
	Log       LogConfig
	Database  DatabaseConfig
	Pips      PipsConfig
	Identity  IdentityConfig
	Committee CommitteeConfig
	Asset     AssetConfig
	Fees      map[string]types.Balance
	Balances  []AccountConfig `validate:"dive"`
}

// GlobalConfig is used for every node command
type GlobalConfig struct {
	Name     string `validate:"required"`
	BasePath string
	LogLvl   log.Level
	// MetricsAddress is the listening address of the metrics server,
	// which is disabled when empty.
	MetricsAddress string        `validate:"omitempty,hostname_port"`
	BlockInterval  time.Duration `validate:"gte=10ms"`
}

// LogConfig represents the log levels for individual packages
type LogConfig struct {
	RuntimeLvl   log.Level
	PipsLvl      log.Level
	IdentityLvl  log.Level
	SchedulerLvl log.Level
	SystemLvl    log.Level
	NodeLvl      log.Level
}

// DatabaseConfig is the configuration of the node database
type DatabaseConfig struct {
	InMemory bool
}

// PipsConfig is the genesis configuration of the proposals
type PipsConfig struct {
	PruneHistoricalPips    bool
	MinProposalDeposit     types.Balance
	DefaultEnactmentPeriod types.BlockNumber
	// PendingPipExpiry of zero disables the expiry of pending proposals.
	PendingPipExpiry types.BlockNumber
	MaxPipSkipCount  uint8
	ActivePipLimit   uint32
}

// IdentityConfig is the genesis configuration of the identities
type IdentityConfig struct {
	CddAuthForMasterKeyRotation bool
}

// CommitteeConfig lists the accounts registered as identities at genesis,
// by development account name or hex account ID.
type CommitteeConfig struct {
	Members            []string `validate:"dive,required"`
	ReleaseCoordinator string
	CddProviders       []string `validate:"dive,required"`
	Identities         []string `validate:"dive,required"`
}

// AssetConfig is the ticker registration configuration
type AssetConfig struct {
	MaxTickerLength uint8 `validate:"gte=1,lte=12"`
	// RegistrationLength of zero makes ticker registrations permanent.
	RegistrationLength types.Moment
}

// AccountConfig is an account endowed at genesis
type AccountConfig struct {
	Account string `validate:"required"`
	Free    types.Balance
}

// DefaultConfig returns the development chain configuration.
func DefaultConfig() *Config {
	return &Config{
		Global: GlobalConfig{
			Name:          "Polymesh Develop",
			BasePath:      "~/.polymesh/dev",
			LogLvl:        log.Info,
			BlockInterval: 6 * time.Second,
		},
		Log: LogConfig{
			RuntimeLvl:   log.Info,
			PipsLvl:      log.Info,
			IdentityLvl:  log.Info,
			SchedulerLvl: log.Info,
			SystemLvl:    log.Info,
			NodeLvl:      log.Info,
		},
		Pips: PipsConfig{
			MinProposalDeposit:     5_000,
			DefaultEnactmentPeriod: 100,
			MaxPipSkipCount:        1,
			ActivePipLimit:         1_000,
		},
		Committee: CommitteeConfig{
			Members:            []string{"alice", "bob", "charlie"},
			ReleaseCoordinator: "alice",
			CddProviders:       []string{"dave"},
			Identities:         []string{"eve"},
		},
		Asset: AssetConfig{
			MaxTickerLength:    12,
			RegistrationLength: types.Moment(60 * 24 * time.Hour / time.Millisecond),
		},
		Fees: map[string]types.Balance{
			protocolfee.IdentityRegisterDid.String(): 100,
			protocolfee.PipsPropose.String():         10,
		},
		Balances: lo.Map(keystore.Names, func(name string, _ int) AccountConfig {
			return AccountConfig{Account: name, Free: 1_000_000_000}
		}),
	}
}

// Validate checks the configuration values are in range.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}
	if !c.Database.InMemory && c.Global.BasePath == "" {
		return ErrNoBasePath
	}
	return nil
}

// Genesis converts the configuration into the genesis of the chain,
// resolving account names with the keyring given.
func (c *Config) Genesis(kr *keystore.Keyring, timestamp types.Moment) (genesis runtime.Genesis, err error) {
	genesis = runtime.Genesis{
		Timestamp:                   timestamp,
		ProtocolFees:                make(map[protocolfee.ProtocolOp]types.Balance, len(c.Fees)),
		CddAuthForMasterKeyRotation: c.Identity.CddAuthForMasterKeyRotation,
		TickerConfig: asset.TickerRegistrationConfig{
			MaxTickerLength:    c.Asset.MaxTickerLength,
			RegistrationLength: optionOf(c.Asset.RegistrationLength),
		},
		Pips: pips.Genesis{
			PruneHistoricalPips:    c.Pips.PruneHistoricalPips,
			MinProposalDeposit:     c.Pips.MinProposalDeposit,
			DefaultEnactmentPeriod: c.Pips.DefaultEnactmentPeriod,
			PendingPipExpiry:       optionOf(c.Pips.PendingPipExpiry),
			MaxPipSkipCount:        pips.SkippedCount(c.Pips.MaxPipSkipCount),
			ActivePipLimit:         c.Pips.ActivePipLimit,
		},
	}

	for _, balance := range c.Balances {
		account, err := kr.ResolveAccount(balance.Account)
		if err != nil {
			return genesis, fmt.Errorf("resolving endowed account: %w", err)
		}
		genesis.Accounts = append(genesis.Accounts, runtime.GenesisAccount{Account: account, Free: balance.Free})
	}

	for name, fee := range c.Fees {
		op, err := protocolfee.ParseProtocolOp(name)
		if err != nil {
			return genesis, err
		}
		genesis.ProtocolFees[op] = fee
	}

	genesis.Identities, err = c.Committee.identities(kr)
	if err != nil {
		return genesis, err
	}
	return genesis, nil
}

// identities returns the genesis identities in the order members, release
// coordinator, CDD providers then other identities, one per account.
func (c CommitteeConfig) identities(kr *keystore.Keyring) (identities []runtime.GenesisIdentity, err error) {
	indexes := make(map[types.AccountID]int)
	add := func(name string, set func(identity *runtime.GenesisIdentity)) error {
		account, err := kr.ResolveAccount(name)
		if err != nil {
			return fmt.Errorf("resolving identity account: %w", err)
		}
		index, ok := indexes[account]
		if !ok {
			index = len(identities)
			indexes[account] = index
			identities = append(identities, runtime.GenesisIdentity{MasterKey: account})
		}
		set(&identities[index])
		return nil
	}

	for _, name := range c.Members {
		err = add(name, func(identity *runtime.GenesisIdentity) { identity.GovernanceCommittee = true })
		if err != nil {
			return nil, err
		}
	}
	if c.ReleaseCoordinator != "" {
		err = add(c.ReleaseCoordinator, func(identity *runtime.GenesisIdentity) { identity.ReleaseCoordinator = true })
		if err != nil {
			return nil, err
		}
	}
	for _, name := range c.CddProviders {
		err = add(name, func(identity *runtime.GenesisIdentity) { identity.CddProvider = true })
		if err != nil {
			return nil, err
		}
	}
	for _, name := range c.Identities {
		err = add(name, func(*runtime.GenesisIdentity) {})
		if err != nil {
			return nil, err
		}
	}
	return identities, nil
}

func optionOf[T comparable](value T) scale.Option[T] {
	var zero T
	if value == zero {
		return scale.None[T]()
	}
	return scale.Some(value)
}
