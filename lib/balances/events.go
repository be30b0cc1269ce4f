// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package balances

import "github.com/PolymeshAssociation/Polymesh-sub002/dot/types"

// EventBalanceSet is deposited when a free balance is set by root or genesis.
type EventBalanceSet struct {
	Account types.AccountID
	Free    types.Balance
}

// EventTransfer is deposited when funds are transferred between accounts.
type EventTransfer struct {
	From   types.AccountID
	To     types.AccountID
	Amount types.Balance
}

// EventWithdrawn is deposited when funds are withdrawn from an account,
// for example to pay a protocol fee.
type EventWithdrawn struct {
	Account types.AccountID
	Amount  types.Balance
}

func (EventBalanceSet) Pallet() string { return palletName }
func (EventTransfer) Pallet() string   { return palletName }
func (EventWithdrawn) Pallet() string  { return palletName }
