// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pips

//go:generate mockgen -destination=mocks_test.go -package $GOPACKAGE . FeeCharger,Identities,GovernanceCommittee,Scheduler,Dispatcher
