// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pips

import (
	"errors"
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/balances"
)

// increaseLock adds amount to the deposits locked by the account.
func (p *Pips) increaseLock(account types.AccountID, amount types.Balance) error {
	err := p.locks.IncreaseLock(LockID, account, amount)
	if errors.Is(err, balances.ErrInsufficientBalance) {
		return fmt.Errorf("%w: %s", ErrInsufficientDeposit, err)
	}
	return err
}

func (p *Pips) reduceLock(account types.AccountID, amount types.Balance) error {
	return p.locks.ReduceLock(LockID, account, amount)
}

// refundProposal unlocks the deposits on the proposal. Refunding a
// proposal again does nothing.
func (p *Pips) refundProposal(did types.IdentityID, id PipID) error {
	var deposits []DepositInfo
	err := p.deposits.IteratePrefix(id, func(_ types.AccountID, deposit DepositInfo) error {
		deposits = append(deposits, deposit)
		return nil
	})
	if err != nil {
		return fmt.Errorf("iterating deposits of PIP #%d: %w", id, err)
	}
	if len(deposits) == 0 {
		return nil
	}

	var total types.Balance
	for _, deposit := range deposits {
		err = p.reduceLock(deposit.Owner, deposit.Amount)
		if err != nil {
			return fmt.Errorf("unlocking deposit of %s: %w", deposit.Owner, err)
		}
		total = total.SaturatingAdd(deposit.Amount)
	}

	err = p.deposits.RemovePrefix(id)
	if err != nil {
		return err
	}

	p.events.DepositEvent(EventProposalRefund{DID: did, ID: id, Total: total})
	return nil
}

// Deposit returns the deposit of the account on the proposal.
func (p *Pips) Deposit(id PipID, account types.AccountID) (DepositInfo, error) {
	return p.deposits.Get(id, account)
}
