// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot"
	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/keystore"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/pips"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/runtime"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/utils"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
	"github.com/qdm12/gotree"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

var (
	app = cli.NewApp()

	exportCommand = cli.Command{
		Action:    FixFlagOrder(exportAction),
		Name:      "export",
		Usage:     "Export the resolved configuration to a toml file",
		ArgsUsage: "",
		Flags:     ExportFlags,
		Category:  "EXPORT",
		Description: "The export command writes the configuration resolved from the defaults, " +
			"the --config file and the flags to a toml file.\n" +
			"\tUsage: polymesh export --config chain.toml --name \"Polymesh Testnet\" --output testnet.toml",
	}
	queueCommand = cli.Command{
		Action:    FixFlagOrder(queueAction),
		Name:      "queue",
		Usage:     "Show the proposal queues of the chain",
		ArgsUsage: "",
		Flags:     QueueFlags,
		Category:  "PIPS",
		Description: "The queue command prints the live queue and the committee snapshot " +
			"of the chain found at the basepath, or the details of a proposal.\n" +
			"\tUsage: polymesh queue --basepath ~/.polymesh/dev\n" +
			"\tUsage: polymesh queue --basepath ~/.polymesh/dev --pip 2",
	}
	proposeCommand = cli.Command{
		Action:    FixFlagOrder(proposeAction),
		Name:      "propose",
		Usage:     "Make a community proposal with a development account",
		ArgsUsage: "",
		Flags:     ProposeFlags,
		Category:  "PIPS",
		Description: "The propose command submits a proposal of the encoded call, signed by a development " +
			"account, to the chain found at the basepath. It waits for the proposal to be included in a " +
			"block and prints its details.\n" +
			"\tUsage: polymesh propose --basepath ~/.polymesh/dev --account bob --deposit 5000 --call 0x0601",
	}
	accountsCommand = cli.Command{
		Action:      FixFlagOrder(accountsAction),
		Name:        "accounts",
		Usage:       "List the development accounts",
		ArgsUsage:   "",
		Category:    "ACCOUNTS",
		Description: "The accounts command lists the development account names with their account IDs.",
	}
)

// init initialises the cli application
func init() {
	app.Action = polymeshAction
	app.Copyright = "Copyright 2021 ChainSafe Systems Authors"
	app.Name = "polymesh"
	app.Usage = "Polymesh governance and identity node"
	app.Version = "0.1.0"
	app.Author = "ChainSafe Systems"
	app.Commands = []cli.Command{
		exportCommand,
		queueCommand,
		proposeCommand,
		accountsCommand,
	}
	app.Flags = RootFlags
}

// main runs the cli application
func main() {
	if err := app.Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// FixFlagOrder allows flags to be specified after the subcommand name,
// by copying the values set on the parent context.
func FixFlagOrder(f func(ctx *cli.Context) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		for _, flagName := range ctx.FlagNames() {
			if ctx.IsSet(flagName) {
				continue
			}
			if ctx.GlobalIsSet(flagName) {
				err := ctx.Set(flagName, ctx.GlobalString(flagName))
				if err != nil {
					logger.Errorf("failed to fix flag order for %s: %s", flagName, err)
				} else {
					logger.Tracef("global flag fixed with name: %s", flagName)
				}
			}
		}

		return f(ctx)
	}
}

// polymeshAction is the root action for the polymesh command
func polymeshAction(ctx *cli.Context) error {
	arguments := ctx.Args()
	if len(arguments) > 0 {
		return fmt.Errorf("failed to read command argument: %q", arguments[0])
	}

	cfg, err := createDotConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to create node configuration: %w", err)
	}

	if !cfg.Database.InMemory {
		cfg.Global.BasePath = utils.ExpandDir(cfg.Global.BasePath)
	}

	node, err := dot.NewNode(cfg)
	if err != nil {
		return fmt.Errorf("failed to create node: %w", err)
	}

	logger.Infof("starting node %s...", node.Name)
	err = node.Start()
	if err != nil {
		node.Stop()
		return fmt.Errorf("failed to start node: %w", err)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigc)

	sig := <-sigc
	logger.Infof("signal %s received, shutting down...", sig)
	node.Stop()
	return nil
}

// exportAction writes the resolved configuration to a toml file
func exportAction(ctx *cli.Context) error {
	cfg, err := createDotConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to create node configuration: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	output := ctx.String(OutputFlag.Name)
	err = dot.ExportTomlConfig(dotConfigToToml(cfg), output)
	if err != nil {
		return err
	}

	logger.Infof("exported configuration to %s", output)
	return nil
}

// queueAction prints the proposal queues, or the details of a proposal
// when --pip is given, without producing any block.
func queueAction(ctx *cli.Context) error {
	cfg, err := createDotConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to create node configuration: %w", err)
	}

	if !cfg.Database.InMemory {
		cfg.Global.BasePath = utils.ExpandDir(cfg.Global.BasePath)
	}

	node, err := dot.NewNode(cfg)
	if err != nil {
		return fmt.Errorf("failed to open chain: %w", err)
	}
	defer node.Stop()

	return printQueues(ctx.App.Writer, node.Runtime().Pips(), ctx)
}

func printQueues(w io.Writer, p *pips.Pips, ctx *cli.Context) error {
	if ctx.IsSet(PipFlag.Name) {
		details, err := p.ProposalDetails(pips.PipID(ctx.Uint(PipFlag.Name)))
		if err != nil {
			return fmt.Errorf("failed to get proposal details: %w", err)
		}
		_, err = fmt.Fprintln(w, details)
		return err
	}

	live, err := p.LiveQueue()
	if err != nil {
		return fmt.Errorf("failed to get live queue: %w", err)
	}
	_, err = fmt.Fprintln(w, pips.FormatQueue("Live queue", live))
	if err != nil {
		return err
	}

	snapshot, err := p.SnapshotQueue()
	if err != nil {
		return fmt.Errorf("failed to get snapshot queue: %w", err)
	}
	metadata, ok, err := p.SnapshotMetadata()
	if err != nil {
		return fmt.Errorf("failed to get snapshot metadata: %w", err)
	}
	title := "Snapshot queue"
	if ok {
		title = fmt.Sprintf("Snapshot queue #%d taken at block #%d", metadata.ID, metadata.CreatedAt)
	}
	_, err = fmt.Fprintln(w, pips.FormatQueue(title, snapshot))
	return err
}

// inclusionBlocks is the number of blocks the propose command waits
// for its proposal to be included.
const inclusionBlocks = 10

// proposeAction submits a community proposal signed by a development
// account, and prints the proposal once its block is produced.
func proposeAction(ctx *cli.Context) error {
	call, err := common.HexToBytes(ctx.String(CallFlag.Name))
	if err != nil {
		return fmt.Errorf("failed to parse call: %w", err)
	}

	cfg, err := createDotConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to create node configuration: %w", err)
	}

	if !cfg.Database.InMemory {
		cfg.Global.BasePath = utils.ExpandDir(cfg.Global.BasePath)
	}

	node, err := dot.NewNode(cfg)
	if err != nil {
		return fmt.Errorf("failed to open chain: %w", err)
	}
	defer node.Stop()

	proposer, err := node.Keyring().Account(ctx.String(AccountFlag.Name))
	if err != nil {
		return err
	}
	extrinsic, err := runtime.NewExtrinsic(types.SignedOrigin(proposer), pips.ProposeCall{
		Proposal:    call,
		Deposit:     types.Balance(ctx.Uint64(DepositFlag.Name)),
		URL:         optionalString(ctx, URLFlag.Name),
		Description: optionalString(ctx, DescriptionFlag.Name),
	})
	if err != nil {
		return err
	}

	err = node.Start()
	if err != nil {
		return fmt.Errorf("failed to start node: %w", err)
	}

	submitCtx, cancel := context.WithTimeout(context.Background(), inclusionBlocks*cfg.Global.BlockInterval)
	defer cancel()
	inclusion, err := node.Submit(submitCtx, extrinsic)
	if err != nil {
		return fmt.Errorf("failed to submit proposal: %w", err)
	}
	if inclusion.Err != nil {
		return fmt.Errorf("proposal failed in block #%d: %w", inclusion.Block, inclusion.Err)
	}

	for _, record := range inclusion.Events {
		created, ok := record.Event.(pips.EventProposalCreated)
		if !ok {
			continue
		}
		logger.Infof("PIP #%d included in block #%d (%s)", created.ID, inclusion.Block, inclusion.BlockHash.Short())
		details, err := node.Runtime().Pips().ProposalDetails(created.ID)
		if err != nil {
			return fmt.Errorf("failed to get proposal details: %w", err)
		}
		_, err = fmt.Fprintln(ctx.App.Writer, details)
		return err
	}
	return fmt.Errorf("no proposal created in block #%d", inclusion.Block)
}

func optionalString(ctx *cli.Context, name string) scale.Option[string] {
	if !ctx.IsSet(name) {
		return scale.None[string]()
	}
	return scale.Some(ctx.String(name))
}

// accountsAction lists the development accounts
func accountsAction(ctx *cli.Context) error {
	kr, err := keystore.NewSr25519Keyring()
	if err != nil {
		return fmt.Errorf("failed to create development keyring: %w", err)
	}

	tree := gotree.New("Development accounts")
	for _, name := range keystore.Names {
		account, err := kr.Account(name)
		if err != nil {
			return err
		}
		tree.Appendf("%s: %s", name, account)
	}

	_, err = fmt.Fprintln(ctx.App.Writer, tree.String())
	return err
}
