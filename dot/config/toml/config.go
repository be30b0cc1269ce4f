// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package toml

// Config is a collection of configurations throughout the system
type Config struct {
	Global    GlobalConfig    `toml:"global,omitempty"`
	Log       LogConfig       `toml:"log,omitempty"`
	Database  DatabaseConfig  `toml:"database,omitempty"`
	Pips      PipsConfig      `toml:"pips,omitempty"`
	Identity  IdentityConfig  `toml:"identity,omitempty"`
	Committee CommitteeConfig `toml:"committee,omitempty"`
	Asset     AssetConfig     `toml:"asset,omitempty"`
	Fees      FeesConfig      `toml:"fees,omitempty"`
	Balances  []AccountConfig `toml:"balances,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	Name           string `toml:"name,omitempty"`
	BasePath       string `toml:"basepath,omitempty"`
	LogLvl         string `toml:"log,omitempty"`
	MetricsAddress string `toml:"metrics-address,omitempty"`
	// BlockInterval is the duration between blocks, such as "6s".
	BlockInterval string `toml:"block-interval,omitempty"`
}

// LogConfig represents the log levels for individual packages
type LogConfig struct {
	RuntimeLvl   string `toml:"runtime,omitempty"`
	PipsLvl      string `toml:"pips,omitempty"`
	IdentityLvl  string `toml:"identity,omitempty"`
	SchedulerLvl string `toml:"scheduler,omitempty"`
	SystemLvl    string `toml:"system,omitempty"`
	NodeLvl      string `toml:"node,omitempty"`
}

// DatabaseConfig is to marshal/unmarshal toml database config vars
type DatabaseConfig struct {
	InMemory bool `toml:"in-memory,omitempty"`
}

// PipsConfig is the genesis configuration of the proposals
type PipsConfig struct {
	PruneHistoricalPips    bool   `toml:"prune-historical-pips,omitempty"`
	MinProposalDeposit     uint64 `toml:"min-proposal-deposit,omitempty"`
	DefaultEnactmentPeriod uint32 `toml:"default-enactment-period,omitempty"`
	// PendingPipExpiry of zero disables the expiry of pending proposals.
	PendingPipExpiry uint32 `toml:"pending-pip-expiry,omitempty"`
	MaxPipSkipCount  uint8  `toml:"max-pip-skip-count,omitempty"`
	// ActivePipLimit of zero disables the limit.
	ActivePipLimit uint32 `toml:"active-pip-limit,omitempty"`
}

// IdentityConfig is the genesis configuration of the identities
type IdentityConfig struct {
	CddAuthForMasterKeyRotation bool `toml:"cdd-auth-for-master-key-rotation,omitempty"`
}

// CommitteeConfig lists the accounts registered as identities at genesis,
// by development account name or hex account ID.
type CommitteeConfig struct {
	Members            []string `toml:"members,omitempty"`
	ReleaseCoordinator string   `toml:"release-coordinator,omitempty"`
	CddProviders       []string `toml:"cdd-providers,omitempty"`
	Identities         []string `toml:"identities,omitempty"`
}

// AssetConfig is the ticker registration configuration
type AssetConfig struct {
	MaxTickerLength uint8 `toml:"max-ticker-length,omitempty"`
	// RegistrationLength in milliseconds, zero for registrations not expiring.
	RegistrationLength uint64 `toml:"registration-length,omitempty"`
}

// FeesConfig maps protocol operation names to their base fee
type FeesConfig map[string]uint64

// AccountConfig is an account endowed at genesis
type AccountConfig struct {
	Account string `toml:"account"`
	Free    uint64 `toml:"free"`
}
