// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"context"
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/database"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/database/badger"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/database/memory"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/metrics"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/keystore"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/runtime"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/services"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/storage"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/utils"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "dot"))

// storagePrefix prefixes the runtime storage keys in the database.
const storagePrefix = "storage"

// Node is a container for all the components of a node.
type Node struct {
	Name     string
	Services *services.ServiceRegistry // registry of all node services

	db       database.Database
	runtime  *runtime.Runtime
	producer *BlockProducer
	keyring  *keystore.Keyring
}

// NewNode opens the node database, applies the genesis configuration if
// the chain has no genesis block yet, and registers the node services.
func NewNode(cfg *Config) (node *Node, err error) {
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	setupLogger(cfg)

	logger.Infof("🕸️ initialising node %s with basepath %s...", cfg.Global.Name, cfg.Global.BasePath)

	keyring, err := keystore.NewSr25519Keyring()
	if err != nil {
		return nil, fmt.Errorf("creating development keyring: %w", err)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			closeErr := db.Close()
			if closeErr != nil {
				logger.Errorf("failed to close database: %s", closeErr)
			}
		}
	}()

	storageTable := db.NewTable(storagePrefix)
	rt := runtime.New(storage.NewState(storageTable), runtime.DefaultVersion)
	genesisHash, err := initialiseChain(cfg, rt, storageTable, keyring)
	if err != nil {
		return nil, err
	}

	node = &Node{
		Name:     cfg.Global.Name,
		Services: services.NewServiceRegistry(logger),
		db:       db,
		runtime:  rt,
		producer: NewBlockProducer(rt, storageTable, cfg.Global.BlockInterval),
		keyring:  keyring,
	}

	node.Services.RegisterService(node.producer)
	if cfg.Global.MetricsAddress != "" {
		node.Services.RegisterService(metrics.NewServer(cfg.Global.MetricsAddress))
	}

	best, err := rt.System().BlockNumber()
	if err != nil {
		return nil, err
	}
	logger.Infof("node initialised with genesis hash %s and best block #%d", genesisHash, best)
	return node, nil
}

func openDatabase(cfg *Config) (database.Database, error) {
	if cfg.Database.InMemory {
		return memory.New(), nil
	}

	db, err := badger.New(badger.Settings{Path: utils.DatabaseDir(cfg.Global.BasePath)})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// initialiseChain builds and persists the genesis block unless the
// database already holds one, and returns the genesis hash.
func initialiseChain(cfg *Config, rt *runtime.Runtime, storageTable database.Table,
	keyring *keystore.Keyring) (hash common.Hash, err error) {
	hash, err = rt.System().BlockHash(0)
	if err != nil {
		return hash, err
	}
	if hash != (common.Hash{}) {
		return hash, nil
	}

	genesis, err := cfg.Genesis(keyring, types.Moment(timeNow().UnixMilli()))
	if err != nil {
		return hash, fmt.Errorf("building genesis: %w", err)
	}

	hash, dids, err := rt.ApplyGenesis(genesis)
	if err != nil {
		return hash, fmt.Errorf("applying genesis: %w", err)
	}
	for i, identity := range genesis.Identities {
		name, ok := keyring.Name(identity.MasterKey)
		if !ok {
			name = identity.MasterKey.Short()
		}
		logger.Debugf("registered identity %s for %s", dids[i], name)
	}

	err = rt.State().Persist(storageTable.NewWriteBatch())
	if err != nil {
		return hash, fmt.Errorf("persisting genesis: %w", err)
	}
	return hash, nil
}

// setupLogger sets the global log level then the level of each package.
func setupLogger(cfg *Config) {
	log.PatchLevel(cfg.Global.LogLvl)

	levels := map[string]log.Level{
		"runtime":   cfg.Log.RuntimeLvl,
		"pips":      cfg.Log.PipsLvl,
		"identity":  cfg.Log.IdentityLvl,
		"scheduler": cfg.Log.SchedulerLvl,
		"system":    cfg.Log.SystemLvl,
		"dot":       cfg.Log.NodeLvl,
	}
	for pkg, level := range levels {
		log.PatchWithContext("pkg", pkg, log.SetLevel(level))
	}
}

// Runtime returns the runtime of the node.
func (n *Node) Runtime() *runtime.Runtime { return n.runtime }

// Keyring returns the development keyring.
func (n *Node) Keyring() *keystore.Keyring { return n.keyring }

// Submit queues the extrinsic for the next block and waits for the
// block to be produced. The dispatch error of the extrinsic is in the
// inclusion returned, not in the error.
func (n *Node) Submit(ctx context.Context, extrinsic runtime.Extrinsic) (inclusion Inclusion, err error) {
	included, err := n.producer.Submit(extrinsic)
	if err != nil {
		return inclusion, err
	}

	select {
	case inclusion, ok := <-included:
		if !ok {
			return inclusion, ErrExtrinsicDropped
		}
		return inclusion, nil
	case <-ctx.Done():
		return inclusion, ctx.Err()
	}
}

// Start starts all node services
func (n *Node) Start() error {
	logger.Info("🕸️ starting node services...")
	return n.Services.StartAll()
}

// Stop stops the node services started, then closes the database.
func (n *Node) Stop() {
	n.Services.StopAll()
	err := n.db.Close()
	if err != nil {
		logger.Errorf("failed to close database: %s", err)
	}
}
