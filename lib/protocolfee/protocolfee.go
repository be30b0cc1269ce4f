// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package protocolfee charges the base fees of protocol operations.
package protocolfee

import (
	"errors"
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/storage"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/system"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

const palletName = "ProtocolFee"

var logger = log.NewFromGlobal(log.AddContext("pkg", "protocolfee"))

var ErrInsufficientAccountBalance = errors.New("insufficient account balance to pay the protocol fee")

// ProtocolOp is an operation charged a protocol fee.
type ProtocolOp uint8

const (
	IdentityRegisterDid ProtocolOp = iota
	IdentityCddRegisterDid
	IdentitySetMasterKey
	IdentityAddSigningItemsWithAuthorization
	PipsPropose
	MultiSigCreate
)

func (op ProtocolOp) String() string {
	switch op {
	case IdentityRegisterDid:
		return "IdentityRegisterDid"
	case IdentityCddRegisterDid:
		return "IdentityCddRegisterDid"
	case IdentitySetMasterKey:
		return "IdentitySetMasterKey"
	case IdentityAddSigningItemsWithAuthorization:
		return "IdentityAddSigningItemsWithAuthorization"
	case PipsPropose:
		return "PipsPropose"
	case MultiSigCreate:
		return "MultiSigCreate"
	default:
		return fmt.Sprintf("ProtocolOp(%d)", uint8(op))
	}
}

// ParseProtocolOp returns the protocol operation of the name given.
func ParseProtocolOp(s string) (op ProtocolOp, err error) {
	for op = IdentityRegisterDid; op <= MultiSigCreate; op++ {
		if op.String() == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("protocol operation not recognised: %s", s)
}

// EventFeeSet is deposited when the base fee of an operation changes.
type EventFeeSet struct {
	Op  ProtocolOp
	Fee types.Balance
}

// EventFeeCharged is deposited when a protocol fee is charged.
type EventFeeCharged struct {
	Payer types.AccountID
	Fee   types.Balance
}

func (EventFeeSet) Pallet() string     { return palletName }
func (EventFeeCharged) Pallet() string { return palletName }

// Currency withdraws fees from accounts.
type Currency interface {
	Withdraw(account types.AccountID, amount types.Balance) error
}

// EventDepositor deposits events in the block being built.
type EventDepositor interface {
	DepositEvent(event system.Event)
}

// ProtocolFee stores the base fee of each protocol operation.
type ProtocolFee struct {
	currency Currency
	events   EventDepositor
	baseFees *storage.Map[ProtocolOp, types.Balance]
}

// New creates the protocol fee pallet.
func New(state *storage.State, currency Currency, events EventDepositor) *ProtocolFee {
	return &ProtocolFee{
		currency: currency,
		events:   events,
		baseFees: storage.NewMap[ProtocolOp, types.Balance](state, palletName, "BaseFees", common.Twox64Concat),
	}
}

// ComputeFee returns the fee of the operation.
func (p *ProtocolFee) ComputeFee(op ProtocolOp) (types.Balance, error) {
	return p.baseFees.Get(op)
}

// ChangeBaseFee sets the base fee of the operation. It requires the root origin.
func (p *ProtocolFee) ChangeBaseFee(origin types.Origin, op ProtocolOp, fee types.Balance) error {
	err := origin.EnsureRoot()
	if err != nil {
		return err
	}
	return p.SetBaseFee(op, fee)
}

// SetBaseFee sets the base fee of the operation.
func (p *ProtocolFee) SetBaseFee(op ProtocolOp, fee types.Balance) error {
	err := p.baseFees.Insert(op, fee)
	if err != nil {
		return err
	}
	p.events.DepositEvent(EventFeeSet{Op: op, Fee: fee})
	return nil
}

// ChargeFee charges the fee of the operation to the payer, if any.
// Operations without a payer, such as committee proposals, are free.
func (p *ProtocolFee) ChargeFee(payer scale.Option[types.AccountID], op ProtocolOp) error {
	account, ok := payer.Get()
	if !ok {
		logger.Tracef("no payer for protocol operation %s", op)
		return nil
	}

	fee, err := p.ComputeFee(op)
	if err != nil {
		return err
	}
	if fee == 0 {
		return nil
	}

	err = p.currency.Withdraw(account, fee)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInsufficientAccountBalance, err)
	}

	p.events.DepositEvent(EventFeeCharged{Payer: account, Fee: fee})
	return nil
}
