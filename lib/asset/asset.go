// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package asset keeps the ownership of tickers and assets, the targets
// of ticker and asset ownership transfer authorizations.
package asset

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/storage"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/system"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

const palletName = "Asset"

var logger = log.NewFromGlobal(log.AddContext("pkg", "asset"))

// Clock returns the timestamp of the block being built.
type Clock interface {
	Now() (types.Moment, error)
}

// EventDepositor deposits events in the block being built.
type EventDepositor interface {
	DepositEvent(event system.Event)
}

// Identities resolves the identity an account key acts for.
type Identities interface {
	GetIdentity(key types.AccountID) (types.IdentityID, bool, error)
}

// Authorizations checks and consumes the authorizations accepted.
type Authorizations interface {
	Ensure(target types.Signatory, id uint64) (types.Authorization, error)
	Consume(from, target types.Signatory, id uint64) error
}

// TickerRegistration is the owner of a ticker, until the registration
// expires unless an asset is created with it.
type TickerRegistration struct {
	Owner  types.IdentityID
	Expiry scale.Option[types.Moment]
}

// TickerRegistrationConfig limits the ticker registrations.
type TickerRegistrationConfig struct {
	MaxTickerLength    uint8
	RegistrationLength scale.Option[types.Moment]
}

// SecurityToken is a created asset.
type SecurityToken struct {
	Name        []byte
	OwnerDID    types.IdentityID
	TotalSupply types.Balance
	Divisible   bool
}

// TickerRegistrationStatus is the availability of a ticker for an identity.
type TickerRegistrationStatus uint8

const (
	TickerAvailable TickerRegistrationStatus = iota
	TickerRegisteredByDID
	TickerRegisteredByOther
)

// Asset stores ticker registrations and created assets.
type Asset struct {
	clock          Clock
	events         EventDepositor
	identities     Identities
	authorizations Authorizations

	tickers *storage.Map[types.Ticker, TickerRegistration]
	tokens  *storage.Map[types.Ticker, SecurityToken]
	config  *storage.Value[TickerRegistrationConfig]
}

// New creates the asset pallet.
func New(state *storage.State, clock Clock, events EventDepositor,
	identities Identities, authorizations Authorizations) *Asset {
	return &Asset{
		clock:          clock,
		events:         events,
		identities:     identities,
		authorizations: authorizations,
		tickers: storage.NewMap[types.Ticker, TickerRegistration](
			state, palletName, "Tickers", common.Blake2128Concat),
		tokens: storage.NewMap[types.Ticker, SecurityToken](
			state, palletName, "Tokens", common.Blake2128Concat),
		config: storage.NewValue[TickerRegistrationConfig](state, palletName, "TickerConfig"),
	}
}

func (a *Asset) ensureDID(origin types.Origin) (types.IdentityID, error) {
	key, err := origin.EnsureSigned()
	if err != nil {
		return types.IdentityID{}, err
	}

	did, ok, err := a.identities.GetIdentity(key)
	if err != nil {
		return did, err
	}
	if !ok {
		return did, fmt.Errorf("%w: %s", ErrMissingIdentity, key)
	}
	return did, nil
}

// TickerRegistrationConfig returns the ticker registration limits.
// Without configuration, tickers use their full length and never expire.
func (a *Asset) TickerRegistrationConfig() (TickerRegistrationConfig, error) {
	config, ok, err := a.config.TryGet()
	if err != nil || ok {
		return config, err
	}
	return TickerRegistrationConfig{MaxTickerLength: uint8(len(types.Ticker{}))}, nil
}

// SetTickerRegistrationConfig sets the ticker registration limits.
// It requires the root origin.
func (a *Asset) SetTickerRegistrationConfig(origin types.Origin, config TickerRegistrationConfig) error {
	err := origin.EnsureRoot()
	if err != nil {
		return err
	}
	return a.config.Put(config)
}

// TickerRegistration returns the registration of the ticker and false
// if it is not registered.
func (a *Asset) TickerRegistration(ticker types.Ticker) (TickerRegistration, bool, error) {
	return a.tickers.TryGet(ticker)
}

// Token returns the asset created with the ticker and false if there is none.
func (a *Asset) Token(ticker types.Ticker) (SecurityToken, bool, error) {
	return a.tokens.TryGet(ticker)
}

// TickerStatus returns whether the ticker is available to the identity.
// Expired registrations leave the ticker available.
func (a *Asset) TickerStatus(ticker types.Ticker, did types.IdentityID) (TickerRegistrationStatus, error) {
	registration, ok, err := a.tickers.TryGet(ticker)
	if err != nil {
		return 0, err
	}
	if !ok {
		return TickerAvailable, nil
	}

	if expiry, ok := registration.Expiry.Get(); ok {
		now, err := a.clock.Now()
		if err != nil {
			return 0, err
		}
		if now > expiry {
			return TickerAvailable, nil
		}
	}

	if registration.Owner == did {
		return TickerRegisteredByDID, nil
	}
	return TickerRegisteredByOther, nil
}

// RegisterTicker registers the ticker to the identity of the caller.
func (a *Asset) RegisterTicker(origin types.Origin, ticker types.Ticker) error {
	did, err := a.ensureDID(origin)
	if err != nil {
		return err
	}

	exists, err := a.tokens.Contains(ticker)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrAssetAlreadyCreated, ticker)
	}

	config, err := a.TickerRegistrationConfig()
	if err != nil {
		return err
	}
	if len(ticker.String()) > int(config.MaxTickerLength) {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrTickerTooLong, ticker, config.MaxTickerLength)
	}

	status, err := a.TickerStatus(ticker, did)
	if err != nil {
		return err
	}
	if status == TickerRegisteredByOther {
		return fmt.Errorf("%w: %s", ErrTickerAlreadyRegistered, ticker)
	}

	expiry := scale.None[types.Moment]()
	if length, ok := config.RegistrationLength.Get(); ok {
		now, err := a.clock.Now()
		if err != nil {
			return err
		}
		expiry = scale.Some(now.SaturatingAdd(length))
	}

	return a.registerTicker(ticker, did, expiry)
}

func (a *Asset) registerTicker(ticker types.Ticker, did types.IdentityID, expiry scale.Option[types.Moment]) error {
	err := a.tickers.Insert(ticker, TickerRegistration{Owner: did, Expiry: expiry})
	if err != nil {
		return err
	}

	a.events.DepositEvent(EventTickerRegistered{Ticker: ticker, Owner: did, Expiry: expiry})
	return nil
}

// CreateAsset creates an asset owned by the identity of the caller.
// The ticker must be available or registered to that identity.
func (a *Asset) CreateAsset(origin types.Origin, name []byte, ticker types.Ticker,
	totalSupply types.Balance, divisible bool) error {
	did, err := a.ensureDID(origin)
	if err != nil {
		return err
	}

	exists, err := a.tokens.Contains(ticker)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrAssetAlreadyCreated, ticker)
	}

	status, err := a.TickerStatus(ticker, did)
	if err != nil {
		return err
	}
	if status == TickerRegisteredByOther {
		return fmt.Errorf("%w: %s", ErrTickerAlreadyRegistered, ticker)
	}

	// Created assets keep their ticker forever.
	err = a.registerTicker(ticker, did, scale.None[types.Moment]())
	if err != nil {
		return err
	}

	err = a.tokens.Insert(ticker, SecurityToken{
		Name:        name,
		OwnerDID:    did,
		TotalSupply: totalSupply,
		Divisible:   divisible,
	})
	if err != nil {
		return err
	}

	a.events.DepositEvent(EventAssetCreated{Ticker: ticker, Owner: did, TotalSupply: totalSupply})
	return nil
}

// AcceptTickerTransfer consumes a ticker transfer authorization issued
// to the identity by the ticker owner, and transfers the ticker to it.
func (a *Asset) AcceptTickerTransfer(to types.IdentityID, authID uint64) error {
	target := types.NewIdentitySignatory(to)
	auth, err := a.authorizations.Ensure(target, authID)
	if err != nil {
		return err
	}
	if auth.AuthorizationData.Type != types.AuthTransferTicker {
		return fmt.Errorf("%w: %d is %s", ErrNotTickerTransferAuth, authID, auth.AuthorizationData.Type)
	}
	ticker := auth.AuthorizationData.Ticker

	exists, err := a.tokens.Contains(ticker)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrAssetAlreadyCreated, ticker)
	}

	registration, err := a.tickers.Get(ticker)
	if err != nil {
		return err
	}

	err = a.authorizations.Consume(types.NewIdentitySignatory(registration.Owner), target, authID)
	if err != nil {
		return err
	}

	from := registration.Owner
	registration.Owner = to
	err = a.tickers.Insert(ticker, registration)
	if err != nil {
		return err
	}

	logger.Debugf("ticker %s transferred from %s to %s", ticker, from, to)
	a.events.DepositEvent(EventTickerTransferred{Ticker: ticker, From: from, To: to})
	return nil
}

// AcceptAssetOwnershipTransfer consumes an asset ownership transfer
// authorization issued to the identity by the asset owner, and makes it
// the owner of both the asset and its ticker.
func (a *Asset) AcceptAssetOwnershipTransfer(to types.IdentityID, authID uint64) error {
	target := types.NewIdentitySignatory(to)
	auth, err := a.authorizations.Ensure(target, authID)
	if err != nil {
		return err
	}
	if auth.AuthorizationData.Type != types.AuthTransferAssetOwnership {
		return fmt.Errorf("%w: %d is %s", ErrNotAssetOwnershipTransferAuth, authID, auth.AuthorizationData.Type)
	}
	ticker := auth.AuthorizationData.Ticker

	token, ok, err := a.tokens.TryGet(ticker)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchAsset, ticker)
	}

	err = a.authorizations.Consume(types.NewIdentitySignatory(token.OwnerDID), target, authID)
	if err != nil {
		return err
	}

	from := token.OwnerDID
	token.OwnerDID = to
	err = a.tokens.Insert(ticker, token)
	if err != nil {
		return err
	}
	err = a.tickers.Insert(ticker, TickerRegistration{Owner: to, Expiry: scale.None[types.Moment]()})
	if err != nil {
		return err
	}

	logger.Debugf("asset %s ownership transferred from %s to %s", ticker, from, to)
	a.events.DepositEvent(EventAssetOwnershipTransferred{Ticker: ticker, From: from, To: to})
	return nil
}
