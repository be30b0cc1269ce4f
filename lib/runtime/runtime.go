// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package runtime wires the pallets together on one state, routes the
// encoded calls of extrinsics and scheduled tasks to them and drives
// the block lifecycle.
package runtime

import (
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/asset"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/authorization"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/balances"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/group"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/identity"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/multisig"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/pips"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/protocolfee"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/scheduler"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/storage"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/system"
)

// Storage instance names of the membership groups.
const (
	GovernanceCommitteeInstance = "PolymeshCommittee"
	CddServiceProvidersInstance = "CddServiceProviders"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "runtime"))

// Runtime holds the pallets sharing the state.
type Runtime struct {
	version Version
	state   *storage.State

	system         *system.System
	balances       *balances.Balances
	protocolFee    *protocolfee.ProtocolFee
	authorizations *authorization.Ledger
	cddProviders   *group.Group
	committee      *group.Committee
	identity       *identity.Identity
	asset          *asset.Asset
	multisig       *multisig.MultiSig
	scheduler      *scheduler.Scheduler
	pips           *pips.Pips
}

// New creates the runtime on top of the state given.
func New(state *storage.State, version Version) *Runtime {
	r := &Runtime{
		version: version,
		state:   state,
	}

	r.system = system.New(state)
	r.balances = balances.New(state, r.system)
	r.protocolFee = protocolfee.New(state, r.balances, r.system)
	r.authorizations = authorization.New(state, r.system, r.system)
	r.cddProviders = group.New(state, CddServiceProvidersInstance, r.system)
	r.committee = group.NewCommittee(state, GovernanceCommitteeInstance, r.system)
	r.identity = identity.New(state, r.system, r.system, r.authorizations, r.protocolFee, r.cddProviders)
	r.asset = asset.New(state, r.system, r.system, r.identity, r.authorizations)
	r.multisig = multisig.New(state, r.system, r.identity, r.authorizations, r.protocolFee)
	r.identity.SetAuthorizationTargets(r.asset, r.multisig)
	r.scheduler = scheduler.New(state, r.system, r.system, r)
	r.pips = pips.New(pips.Config{
		State:               state,
		Chain:               r.system,
		Events:              r.system,
		Locks:               r.balances,
		Fees:                r.protocolFee,
		Identities:          r.identity,
		GovernanceCommittee: r.committee,
		Scheduler:           r.scheduler,
		Dispatcher:          r,
		TransactionVersion:  version.TransactionVersion,
	})
	return r
}

// Version returns the version of the runtime.
func (r *Runtime) Version() Version { return r.version }

// State returns the state the pallets read and write.
func (r *Runtime) State() *storage.State { return r.state }

func (r *Runtime) System() *system.System { return r.system }

func (r *Runtime) Balances() *balances.Balances { return r.balances }

func (r *Runtime) ProtocolFee() *protocolfee.ProtocolFee { return r.protocolFee }

func (r *Runtime) Authorizations() *authorization.Ledger { return r.authorizations }

// CddProviders returns the group of identities attesting identities.
func (r *Runtime) CddProviders() *group.Group { return r.cddProviders }

// GovernanceCommittee returns the committee enacting proposals.
func (r *Runtime) GovernanceCommittee() *group.Committee { return r.committee }

func (r *Runtime) Identity() *identity.Identity { return r.identity }

func (r *Runtime) Asset() *asset.Asset { return r.asset }

func (r *Runtime) MultiSig() *multisig.MultiSig { return r.multisig }

func (r *Runtime) Scheduler() *scheduler.Scheduler { return r.scheduler }

func (r *Runtime) Pips() *pips.Pips { return r.pips }
