// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot"
	ctoml "github.com/PolymeshAssociation/Polymesh-sub002/dot/config/toml"
	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/urfave/cli"
)

// createDotConfig creates a new dot configuration from the default
// configuration, the toml configuration file given with --config and
// the flag values, in increasing order of precedence.
func createDotConfig(ctx *cli.Context) (cfg *dot.Config, err error) {
	cfg = dot.DefaultConfig()
	tomlCfg := new(ctoml.Config)

	if cfgPath := ctx.String(ConfigFlag.Name); cfgPath != "" {
		logger.Info("loading toml configuration from " + cfgPath + "...")
		err = dot.LoadTomlConfig(cfgPath, tomlCfg)
		if err != nil {
			return nil, err
		}
	}

	err = setLogConfig(ctx, tomlCfg, &cfg.Global, &cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set log configuration: %w", err)
	}

	err = setDotGlobalConfig(ctx, tomlCfg.Global, &cfg.Global)
	if err != nil {
		return nil, err
	}
	setDotDatabaseConfig(ctx, tomlCfg.Database, &cfg.Database)
	setDotGenesisConfig(tomlCfg, cfg)

	return cfg, nil
}

type stringKVStore interface {
	String(key string) (value string)
}

// getLogLevel obtains the log level in the following order:
// 1. Try to obtain it from the flag value corresponding to flagName.
// 2. Try to obtain it from the TOML value given, if step 1. failed.
// 3. Return the default value given if both previous steps failed.
// For steps 1 and 2, it tries to parse the level as an integer to convert it
// to a level, and also tries to parse it as a string.
func getLogLevel(flagsKVStore stringKVStore, flagName, tomlValue string, defaultLevel log.Level) (
	level log.Level, err error) {
	if flagValue := flagsKVStore.String(flagName); flagValue != "" {
		return parseLogLevelString(flagValue)
	}

	if tomlValue == "" {
		return defaultLevel, nil
	}

	return parseLogLevelString(tomlValue)
}

var ErrLogLevelIntegerOutOfRange = errors.New("log level integer can only be between 0 and 5 included")

func parseLogLevelString(logLevelString string) (logLevel log.Level, err error) {
	levelInt, err := strconv.Atoi(logLevelString)
	if err == nil { // level given as an integer
		if levelInt < 0 || levelInt > 5 {
			return 0, fmt.Errorf("%w: log level given: %d", ErrLogLevelIntegerOutOfRange, levelInt)
		}
		logLevel = log.Level(levelInt)
		return logLevel, nil
	}

	logLevel, err = log.ParseLevel(logLevelString)
	if err != nil {
		return 0, fmt.Errorf("cannot parse log level string: %w", err)
	}

	return logLevel, nil
}

// setLogConfig sets the global log level, then the level of each package
// which defaults to the global level.
func setLogConfig(flagsKVStore stringKVStore, tomlConfig *ctoml.Config,
	globalCfg *dot.GlobalConfig, logCfg *dot.LogConfig) (err error) {
	globalCfg.LogLvl, err = getLogLevel(flagsKVStore, LogFlag.Name, tomlConfig.Global.LogLvl, log.Info)
	if err != nil {
		return fmt.Errorf("cannot get global log level: %w", err)
	}

	levelsData := []struct {
		name      string
		flagName  string
		tomlValue string
		levelPtr  *log.Level // pointer to value to modify
	}{
		{
			name:      "runtime",
			flagName:  LogRuntimeLevelFlag.Name,
			tomlValue: tomlConfig.Log.RuntimeLvl,
			levelPtr:  &logCfg.RuntimeLvl,
		},
		{
			name:      "pips",
			flagName:  LogPipsLevelFlag.Name,
			tomlValue: tomlConfig.Log.PipsLvl,
			levelPtr:  &logCfg.PipsLvl,
		},
		{
			name:      "identity",
			flagName:  LogIdentityLevelFlag.Name,
			tomlValue: tomlConfig.Log.IdentityLvl,
			levelPtr:  &logCfg.IdentityLvl,
		},
		{
			name:      "scheduler",
			flagName:  LogSchedulerLevelFlag.Name,
			tomlValue: tomlConfig.Log.SchedulerLvl,
			levelPtr:  &logCfg.SchedulerLvl,
		},
		{
			name:      "system",
			flagName:  LogSystemLevelFlag.Name,
			tomlValue: tomlConfig.Log.SystemLvl,
			levelPtr:  &logCfg.SystemLvl,
		},
		{
			name:      "node",
			flagName:  LogNodeLevelFlag.Name,
			tomlValue: tomlConfig.Log.NodeLvl,
			levelPtr:  &logCfg.NodeLvl,
		},
	}

	for _, levelData := range levelsData {
		level, err := getLogLevel(flagsKVStore, levelData.flagName, levelData.tomlValue, globalCfg.LogLvl)
		if err != nil {
			return fmt.Errorf("cannot get %s log level: %w", levelData.name, err)
		}
		*levelData.levelPtr = level
	}

	logger.Debugf("set log configuration: --log %s global %s", flagsKVStore.String(LogFlag.Name), globalCfg.LogLvl)
	return nil
}

// setDotGlobalConfig sets dot.GlobalConfig using toml then flag values
func setDotGlobalConfig(ctx *cli.Context, tomlCfg ctoml.GlobalConfig, cfg *dot.GlobalConfig) error {
	switch {
	case tomlCfg.Name != "":
		cfg.Name = tomlCfg.Name
	case ctx.String(ConfigFlag.Name) != "":
		// configuration files without a node name get a random one
		cfg.Name = dot.RandomNodeName()
	}
	if tomlCfg.BasePath != "" {
		cfg.BasePath = tomlCfg.BasePath
	}
	if tomlCfg.MetricsAddress != "" {
		cfg.MetricsAddress = tomlCfg.MetricsAddress
	}
	if tomlCfg.BlockInterval != "" {
		interval, err := time.ParseDuration(tomlCfg.BlockInterval)
		if err != nil {
			return fmt.Errorf("cannot parse block interval: %w", err)
		}
		cfg.BlockInterval = interval
	}

	if name := ctx.String(NameFlag.Name); name != "" {
		cfg.Name = name
	}
	if basepath := ctx.String(BasePathFlag.Name); basepath != "" {
		cfg.BasePath = basepath
	}
	if address := ctx.String(MetricsAddressFlag.Name); address != "" {
		cfg.MetricsAddress = address
	}
	if ctx.IsSet(BlockIntervalFlag.Name) {
		cfg.BlockInterval = ctx.Duration(BlockIntervalFlag.Name)
	}

	logger.Debugf("global configuration: name=%s basepath=%s metrics-address=%s block-interval=%s",
		cfg.Name, cfg.BasePath, cfg.MetricsAddress, cfg.BlockInterval)
	return nil
}

// setDotDatabaseConfig sets dot.DatabaseConfig using toml then flag values
func setDotDatabaseConfig(ctx *cli.Context, tomlCfg ctoml.DatabaseConfig, cfg *dot.DatabaseConfig) {
	cfg.InMemory = tomlCfg.InMemory || ctx.Bool(InMemoryFlag.Name)
}

// setDotGenesisConfig replaces the default genesis tables with the
// tables present in the toml configuration.
func setDotGenesisConfig(tomlCfg *ctoml.Config, cfg *dot.Config) {
	if tomlCfg.Pips != (ctoml.PipsConfig{}) {
		cfg.Pips = dot.PipsConfig{
			PruneHistoricalPips:    tomlCfg.Pips.PruneHistoricalPips,
			MinProposalDeposit:     types.Balance(tomlCfg.Pips.MinProposalDeposit),
			DefaultEnactmentPeriod: types.BlockNumber(tomlCfg.Pips.DefaultEnactmentPeriod),
			PendingPipExpiry:       types.BlockNumber(tomlCfg.Pips.PendingPipExpiry),
			MaxPipSkipCount:        tomlCfg.Pips.MaxPipSkipCount,
			ActivePipLimit:         tomlCfg.Pips.ActivePipLimit,
		}
	}

	cfg.Identity.CddAuthForMasterKeyRotation = tomlCfg.Identity.CddAuthForMasterKeyRotation

	committee := tomlCfg.Committee
	if len(committee.Members) > 0 || committee.ReleaseCoordinator != "" ||
		len(committee.CddProviders) > 0 || len(committee.Identities) > 0 {
		cfg.Committee = dot.CommitteeConfig{
			Members:            committee.Members,
			ReleaseCoordinator: committee.ReleaseCoordinator,
			CddProviders:       committee.CddProviders,
			Identities:         committee.Identities,
		}
	}

	if tomlCfg.Asset != (ctoml.AssetConfig{}) {
		cfg.Asset = dot.AssetConfig{
			MaxTickerLength:    tomlCfg.Asset.MaxTickerLength,
			RegistrationLength: types.Moment(tomlCfg.Asset.RegistrationLength),
		}
	}

	if tomlCfg.Fees != nil {
		cfg.Fees = make(map[string]types.Balance, len(tomlCfg.Fees))
		for op, fee := range tomlCfg.Fees {
			cfg.Fees[op] = types.Balance(fee)
		}
	}

	if len(tomlCfg.Balances) > 0 {
		cfg.Balances = make([]dot.AccountConfig, len(tomlCfg.Balances))
		for i, balance := range tomlCfg.Balances {
			cfg.Balances[i] = dot.AccountConfig{Account: balance.Account, Free: types.Balance(balance.Free)}
		}
	}
}

// dotConfigToToml converts the dot configuration to its toml configuration
func dotConfigToToml(dcfg *dot.Config) *ctoml.Config {
	cfg := &ctoml.Config{
		Global: ctoml.GlobalConfig{
			Name:           dcfg.Global.Name,
			BasePath:       dcfg.Global.BasePath,
			LogLvl:         dcfg.Global.LogLvl.String(),
			MetricsAddress: dcfg.Global.MetricsAddress,
			BlockInterval:  dcfg.Global.BlockInterval.String(),
		},
		Log: ctoml.LogConfig{
			RuntimeLvl:   dcfg.Log.RuntimeLvl.String(),
			PipsLvl:      dcfg.Log.PipsLvl.String(),
			IdentityLvl:  dcfg.Log.IdentityLvl.String(),
			SchedulerLvl: dcfg.Log.SchedulerLvl.String(),
			SystemLvl:    dcfg.Log.SystemLvl.String(),
			NodeLvl:      dcfg.Log.NodeLvl.String(),
		},
		Database: ctoml.DatabaseConfig{
			InMemory: dcfg.Database.InMemory,
		},
		Pips: ctoml.PipsConfig{
			PruneHistoricalPips:    dcfg.Pips.PruneHistoricalPips,
			MinProposalDeposit:     uint64(dcfg.Pips.MinProposalDeposit),
			DefaultEnactmentPeriod: uint32(dcfg.Pips.DefaultEnactmentPeriod),
			PendingPipExpiry:       uint32(dcfg.Pips.PendingPipExpiry),
			MaxPipSkipCount:        dcfg.Pips.MaxPipSkipCount,
			ActivePipLimit:         dcfg.Pips.ActivePipLimit,
		},
		Identity: ctoml.IdentityConfig{
			CddAuthForMasterKeyRotation: dcfg.Identity.CddAuthForMasterKeyRotation,
		},
		Committee: ctoml.CommitteeConfig{
			Members:            dcfg.Committee.Members,
			ReleaseCoordinator: dcfg.Committee.ReleaseCoordinator,
			CddProviders:       dcfg.Committee.CddProviders,
			Identities:         dcfg.Committee.Identities,
		},
		Asset: ctoml.AssetConfig{
			MaxTickerLength:    dcfg.Asset.MaxTickerLength,
			RegistrationLength: uint64(dcfg.Asset.RegistrationLength),
		},
		Fees: make(ctoml.FeesConfig, len(dcfg.Fees)),
	}

	for op, fee := range dcfg.Fees {
		cfg.Fees[op] = uint64(fee)
	}
	for _, balance := range dcfg.Balances {
		cfg.Balances = append(cfg.Balances, ctoml.AccountConfig{Account: balance.Account, Free: uint64(balance.Free)})
	}
	return cfg
}
