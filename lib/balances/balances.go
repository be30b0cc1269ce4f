// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package balances

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/storage"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/system"
)

const palletName = "Balances"

// LockIdentifier identifies the owner of a balance lock.
type LockIdentifier [8]byte

// EventDepositor deposits events in the block being built.
type EventDepositor interface {
	DepositEvent(event system.Event)
}

// Balances holds free balances and the named locks on them.
// Locks overlap: the usable balance of an account is its free balance
// minus its largest lock.
type Balances struct {
	events EventDepositor

	free  *storage.Map[types.AccountID, types.Balance]
	locks *storage.DoubleMap[types.AccountID, LockIdentifier, types.Balance]
}

// New creates the balances pallet.
func New(state *storage.State, events EventDepositor) *Balances {
	return &Balances{
		events: events,
		free:   storage.NewMap[types.AccountID, types.Balance](state, palletName, "FreeBalance", common.Blake2128Concat),
		locks: storage.NewDoubleMap[types.AccountID, LockIdentifier, types.Balance](
			state, palletName, "Locks", common.Blake2128Concat, common.Twox64Concat),
	}
}

// FreeBalance returns the free balance of the account.
func (b *Balances) FreeBalance(account types.AccountID) (types.Balance, error) {
	return b.free.Get(account)
}

// SetFreeBalance sets the free balance of the account.
func (b *Balances) SetFreeBalance(account types.AccountID, amount types.Balance) error {
	err := b.free.Insert(account, amount)
	if err != nil {
		return err
	}
	b.events.DepositEvent(EventBalanceSet{Account: account, Free: amount})
	return nil
}

// Locked returns the amount locked under the identifier given.
func (b *Balances) Locked(id LockIdentifier, account types.AccountID) (types.Balance, error) {
	return b.locks.Get(account, id)
}

// MaxLock returns the largest lock of the account.
func (b *Balances) MaxLock(account types.AccountID) (max types.Balance, err error) {
	err = b.locks.IteratePrefix(account, func(_ LockIdentifier, amount types.Balance) error {
		if amount > max {
			max = amount
		}
		return nil
	})
	return max, err
}

// Usable returns the free balance of the account not held by any lock.
func (b *Balances) Usable(account types.AccountID) (types.Balance, error) {
	free, err := b.free.Get(account)
	if err != nil {
		return 0, err
	}

	locked, err := b.MaxLock(account)
	if err != nil {
		return 0, err
	}
	return free.SaturatingSub(locked), nil
}

// SetLock sets the lock of the identifier given, removing it if amount is zero.
func (b *Balances) SetLock(id LockIdentifier, account types.AccountID, amount types.Balance) error {
	if amount == 0 {
		return b.locks.Remove(account, id)
	}
	return b.locks.Insert(account, id, amount)
}

// IncreaseLock adds amount to the lock of the identifier given.
// It fails with ErrInsufficientBalance if the free balance cannot
// cover the resulting lock.
func (b *Balances) IncreaseLock(id LockIdentifier, account types.AccountID, amount types.Balance) error {
	current, err := b.locks.Get(account, id)
	if err != nil {
		return err
	}

	free, err := b.free.Get(account)
	if err != nil {
		return err
	}

	total, ok := current.CheckedAdd(amount)
	if !ok {
		return ErrOverflow
	}
	if free < total {
		return fmt.Errorf("%w: free balance %d cannot lock %d", ErrInsufficientBalance, free, total)
	}
	return b.SetLock(id, account, total)
}

// ReduceLock removes amount from the lock of the identifier given,
// clamping at zero.
func (b *Balances) ReduceLock(id LockIdentifier, account types.AccountID, amount types.Balance) error {
	current, err := b.locks.Get(account, id)
	if err != nil {
		return err
	}
	return b.SetLock(id, account, current.SaturatingSub(amount))
}

// Withdraw removes amount from the usable balance of the account.
func (b *Balances) Withdraw(account types.AccountID, amount types.Balance) error {
	if amount == 0 {
		return nil
	}

	err := b.withdraw(account, amount)
	if err != nil {
		return err
	}
	b.events.DepositEvent(EventWithdrawn{Account: account, Amount: amount})
	return nil
}

func (b *Balances) withdraw(account types.AccountID, amount types.Balance) error {
	free, err := b.free.Get(account)
	if err != nil {
		return err
	}

	remaining, ok := free.CheckedSub(amount)
	if !ok {
		return fmt.Errorf("%w: free balance %d cannot pay %d", ErrInsufficientBalance, free, amount)
	}

	locked, err := b.MaxLock(account)
	if err != nil {
		return err
	}
	if remaining < locked {
		return fmt.Errorf("%w: %d locked", ErrLiquidityRestricted, locked)
	}

	return b.free.Insert(account, remaining)
}

// Deposit adds amount to the free balance of the account.
func (b *Balances) Deposit(account types.AccountID, amount types.Balance) error {
	return b.free.Mutate(account, func(free *types.Balance) error {
		sum, ok := free.CheckedAdd(amount)
		if !ok {
			return ErrOverflow
		}
		*free = sum
		return nil
	})
}

// Transfer moves amount from the usable balance of from to to.
func (b *Balances) Transfer(from, to types.AccountID, amount types.Balance) error {
	err := b.withdraw(from, amount)
	if err != nil {
		return err
	}

	err = b.Deposit(to, amount)
	if err != nil {
		return err
	}

	b.events.DepositEvent(EventTransfer{From: from, To: to, Amount: amount})
	return nil
}
