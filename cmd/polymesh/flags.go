// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

var (
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// NameFlag node implementation name
	NameFlag = cli.StringFlag{
		Name:  "name",
		Usage: "Node implementation name",
	}
	// BasePathFlag data directory for node
	BasePathFlag = cli.StringFlag{
		Name:  "basepath",
		Usage: "Data directory for the node",
	}
	// InMemoryFlag keeps the chain in memory only
	InMemoryFlag = cli.BoolFlag{
		Name:  "in-memory",
		Usage: "Keep the chain state in memory, discarding it on exit",
	}
	// MetricsAddressFlag listening address of the metrics server
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Serve prometheus metrics at this address, eg. localhost:9876",
	}
	// BlockIntervalFlag duration between blocks
	BlockIntervalFlag = cli.DurationFlag{
		Name:  "block-interval",
		Usage: "Duration between two blocks, eg. 6s",
	}
)

var (
	// LogFlag cli service settings
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	LogRuntimeLevelFlag = cli.StringFlag{
		Name:  "log-runtime",
		Usage: "Runtime package log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	LogPipsLevelFlag = cli.StringFlag{
		Name:  "log-pips",
		Usage: "Pips package log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	LogIdentityLevelFlag = cli.StringFlag{
		Name:  "log-identity",
		Usage: "Identity package log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	LogSchedulerLevelFlag = cli.StringFlag{
		Name:  "log-scheduler",
		Usage: "Scheduler package log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	LogSystemLevelFlag = cli.StringFlag{
		Name:  "log-system",
		Usage: "System package log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	LogNodeLevelFlag = cli.StringFlag{
		Name:  "log-node",
		Usage: "Node package log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
)

var (
	// OutputFlag destination of the exported configuration
	OutputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "File the configuration is exported to",
		Value: "config.toml",
	}
	// PipFlag proposal to inspect
	PipFlag = cli.UintFlag{
		Name:  "pip",
		Usage: "Show the details of the proposal with this ID instead of the queues",
	}
)

var (
	// AccountFlag development account signing the proposal
	AccountFlag = cli.StringFlag{
		Name:  "account",
		Usage: "Development account making the proposal, eg. alice",
		Value: "alice",
	}
	// DepositFlag deposit locked for the proposal
	DepositFlag = cli.Uint64Flag{
		Name:  "deposit",
		Usage: "Deposit locked for the proposal",
	}
	// CallFlag encoded call proposed
	CallFlag = cli.StringFlag{
		Name:  "call",
		Usage: "0x prefixed hex encoded call to propose",
	}
	URLFlag = cli.StringFlag{
		Name:  "url",
		Usage: "URL of the proposal discussion",
	}
	DescriptionFlag = cli.StringFlag{
		Name:  "description",
		Usage: "Description of the proposal",
	}
)

// flag sets for the root command and all subcommands
var (
	// GlobalFlags are flags that are valid for use with the root command and all subcommands
	GlobalFlags = []cli.Flag{
		ConfigFlag,
		NameFlag,
		BasePathFlag,
		InMemoryFlag,
		LogFlag,
		LogRuntimeLevelFlag,
		LogPipsLevelFlag,
		LogIdentityLevelFlag,
		LogSchedulerLevelFlag,
		LogSystemLevelFlag,
		LogNodeLevelFlag,
	}

	// RootFlags are the flags that are valid for use with the root command
	RootFlags = append(GlobalFlags,
		MetricsAddressFlag,
		BlockIntervalFlag,
	)

	// ExportFlags are the flags that are valid for use with the export subcommand
	ExportFlags = append(RootFlags, OutputFlag)

	// QueueFlags are the flags that are valid for use with the queue subcommand
	QueueFlags = append(GlobalFlags, PipFlag)

	// ProposeFlags are the flags that are valid for use with the propose subcommand
	ProposeFlags = append(GlobalFlags,
		BlockIntervalFlag,
		AccountFlag,
		DepositFlag,
		CallFlag,
		URLFlag,
		DescriptionFlag,
	)
)
