// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot"
	ctoml "github.com/PolymeshAssociation/Polymesh-sub002/dot/config/toml"
	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

// newTestContext creates a cli context with the flags given applied and
// the arguments given parsed.
func newTestContext(t *testing.T, flags []cli.Flag, arguments ...string) *cli.Context {
	t.Helper()

	testApp := cli.NewApp()
	testApp.Writer = io.Discard

	set := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	for _, f := range flags {
		f.Apply(set)
	}
	err := set.Parse(arguments)
	require.NoError(t, err)

	return cli.NewContext(testApp, set, nil)
}

type kvStore map[string]string

func (s kvStore) String(key string) string { return s[key] }

func Test_getLogLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		flagsKVStore stringKVStore
		flagName     string
		tomlValue    string
		defaultLevel log.Level
		level        log.Level
		errWrapped   error
		errMessage   string
	}{
		"default level": {
			flagsKVStore: kvStore{},
			flagName:     "x",
			defaultLevel: log.Info,
			level:        log.Info,
		},
		"flag integer value": {
			flagsKVStore: kvStore{"x": "1"},
			flagName:     "x",
			level:        log.Debug,
		},
		"flag string value": {
			flagsKVStore: kvStore{"x": "eror"},
			flagName:     "x",
			level:        log.Error,
		},
		"flag takes precedence over toml": {
			flagsKVStore: kvStore{"x": "warn"},
			flagName:     "x",
			tomlValue:    "trace",
			level:        log.Warn,
		},
		"toml string value": {
			flagsKVStore: kvStore{},
			flagName:     "x",
			tomlValue:    "CRIT",
			level:        log.Critical,
		},
		"flag integer out of range": {
			flagsKVStore: kvStore{"x": "6"},
			flagName:     "x",
			errWrapped:   ErrLogLevelIntegerOutOfRange,
			errMessage:   "log level integer can only be between 0 and 5 included: log level given: 6",
		},
		"toml bad string": {
			flagsKVStore: kvStore{},
			flagName:     "x",
			tomlValue:    "garbage",
			errWrapped:   log.ErrLevelNotRecognised,
			errMessage:   "cannot parse log level string: level is not recognised: garbage",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			level, err := getLogLevel(testCase.flagsKVStore, testCase.flagName,
				testCase.tomlValue, testCase.defaultLevel)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.level, level)
		})
	}
}

func Test_setLogConfig(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		flagsKVStore stringKVStore
		tomlConfig   *ctoml.Config
		globalCfg    dot.GlobalConfig
		logCfg       dot.LogConfig
		errMessage   string
	}{
		"defaults to info": {
			flagsKVStore: kvStore{},
			tomlConfig:   &ctoml.Config{},
			globalCfg:    dot.GlobalConfig{LogLvl: log.Info},
			logCfg: dot.LogConfig{
				RuntimeLvl:   log.Info,
				PipsLvl:      log.Info,
				IdentityLvl:  log.Info,
				SchedulerLvl: log.Info,
				SystemLvl:    log.Info,
				NodeLvl:      log.Info,
			},
		},
		"package levels default to the global level": {
			flagsKVStore: kvStore{"log": "eror", "log-pips": "trce"},
			tomlConfig: &ctoml.Config{
				Log: ctoml.LogConfig{IdentityLvl: "dbug"},
			},
			globalCfg: dot.GlobalConfig{LogLvl: log.Error},
			logCfg: dot.LogConfig{
				RuntimeLvl:   log.Error,
				PipsLvl:      log.Trace,
				IdentityLvl:  log.Debug,
				SchedulerLvl: log.Error,
				SystemLvl:    log.Error,
				NodeLvl:      log.Error,
			},
		},
		"bad global level": {
			flagsKVStore: kvStore{"log": "loud"},
			tomlConfig:   &ctoml.Config{},
			errMessage:   "cannot get global log level: cannot parse log level string: level is not recognised: loud",
		},
		"bad package level": {
			flagsKVStore: kvStore{},
			tomlConfig: &ctoml.Config{
				Log: ctoml.LogConfig{SchedulerLvl: "9"},
			},
			globalCfg: dot.GlobalConfig{LogLvl: log.Info},
			errMessage: "cannot get scheduler log level: " +
				"log level integer can only be between 0 and 5 included: log level given: 9",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var globalCfg dot.GlobalConfig
			var logCfg dot.LogConfig

			err := setLogConfig(testCase.flagsKVStore, testCase.tomlConfig, &globalCfg, &logCfg)

			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.globalCfg, globalCfg)
			assert.Equal(t, testCase.logCfg, logCfg)
		})
	}
}

func Test_createDotConfig_flags(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(t, RootFlags,
		"--name", "Polymesh Test",
		"--basepath", "/tmp/polymesh",
		"--in-memory",
		"--metrics-address", "localhost:9876",
		"--block-interval", "2s",
		"--log", "warn",
	)

	cfg, err := createDotConfig(ctx)
	require.NoError(t, err)

	expected := dot.DefaultConfig()
	expected.Global = dot.GlobalConfig{
		Name:           "Polymesh Test",
		BasePath:       "/tmp/polymesh",
		LogLvl:         log.Warn,
		MetricsAddress: "localhost:9876",
		BlockInterval:  2 * time.Second,
	}
	expected.Log = dot.LogConfig{
		RuntimeLvl:   log.Warn,
		PipsLvl:      log.Warn,
		IdentityLvl:  log.Warn,
		SchedulerLvl: log.Warn,
		SystemLvl:    log.Warn,
		NodeLvl:      log.Warn,
	}
	expected.Database.InMemory = true
	assert.Equal(t, expected, cfg)
}

func Test_createDotConfig_toml(t *testing.T) {
	t.Parallel()

	tomlCfg := &ctoml.Config{
		Global: ctoml.GlobalConfig{
			Name:          "Polymesh Toml",
			BlockInterval: "500ms",
		},
		Pips: ctoml.PipsConfig{
			MinProposalDeposit:     10,
			DefaultEnactmentPeriod: 5,
			PendingPipExpiry:       20,
			MaxPipSkipCount:        3,
			ActivePipLimit:         4,
		},
		Committee: ctoml.CommitteeConfig{
			Members:            []string{"bob"},
			ReleaseCoordinator: "bob",
		},
		Fees: ctoml.FeesConfig{"PipsPropose": 1},
		Balances: []ctoml.AccountConfig{
			{Account: "bob", Free: 50},
		},
	}
	fp := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, dot.ExportTomlConfig(tomlCfg, fp))

	// flags take precedence over the toml values
	ctx := newTestContext(t, RootFlags, "--config", fp, "--name", "Polymesh Flag")

	cfg, err := createDotConfig(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Polymesh Flag", cfg.Global.Name)
	assert.Equal(t, 500*time.Millisecond, cfg.Global.BlockInterval)
	assert.Equal(t, dot.PipsConfig{
		MinProposalDeposit:     10,
		DefaultEnactmentPeriod: 5,
		PendingPipExpiry:       20,
		MaxPipSkipCount:        3,
		ActivePipLimit:         4,
	}, cfg.Pips)
	assert.Equal(t, dot.CommitteeConfig{
		Members:            []string{"bob"},
		ReleaseCoordinator: "bob",
	}, cfg.Committee)
	assert.Equal(t, map[string]types.Balance{"PipsPropose": 1}, cfg.Fees)
	assert.Equal(t, []dot.AccountConfig{{Account: "bob", Free: 50}}, cfg.Balances)
	// absent sections keep their defaults
	assert.Equal(t, dot.DefaultConfig().Asset, cfg.Asset)
}

func Test_createDotConfig_randomName(t *testing.T) {
	t.Parallel()

	fp := filepath.Join(t.TempDir(), "config.toml")
	err := dot.ExportTomlConfig(&ctoml.Config{Database: ctoml.DatabaseConfig{InMemory: true}}, fp)
	require.NoError(t, err)

	ctx := newTestContext(t, RootFlags, "--config", fp)

	cfg, err := createDotConfig(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Global.Name)
	assert.NotEqual(t, dot.DefaultConfig().Global.Name, cfg.Global.Name)
	assert.True(t, cfg.Database.InMemory)
}

func Test_createDotConfig_errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	badInterval := filepath.Join(dir, "interval.toml")
	err := os.WriteFile(badInterval, []byte("[global]\nblock-interval = \"soon\"\n"), os.ModePerm)
	require.NoError(t, err)

	testCases := map[string]struct {
		arguments  []string
		errMessage string
	}{
		"missing toml file": {
			arguments:  []string{"--config", filepath.Join(dir, "missing.toml")},
			errMessage: "no such file or directory",
		},
		"bad block interval": {
			arguments:  []string{"--config", badInterval},
			errMessage: "cannot parse block interval: time: invalid duration \"soon\"",
		},
		"bad log level": {
			arguments:  []string{"--log-node", "chatty"},
			errMessage: "failed to set log configuration: cannot get node log level",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := newTestContext(t, RootFlags, testCase.arguments...)

			_, err := createDotConfig(ctx)

			assert.ErrorContains(t, err, testCase.errMessage)
		})
	}
}

func Test_dotConfigToToml(t *testing.T) {
	t.Parallel()

	cfg := dot.DefaultConfig()
	cfg.Global.MetricsAddress = "localhost:9876"
	cfg.Pips.PendingPipExpiry = 7

	fp := filepath.Join(t.TempDir(), "config.toml")
	err := dot.ExportTomlConfig(dotConfigToToml(cfg), fp)
	require.NoError(t, err)

	ctx := newTestContext(t, RootFlags, "--config", fp)
	loaded, err := createDotConfig(ctx)
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}
