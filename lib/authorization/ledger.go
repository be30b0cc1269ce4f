// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package authorization stores the authorizations principals issue to
// each other, and the multi purpose nonce they are numbered with.
package authorization

import (
	"fmt"
	"math"
	"sort"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/storage"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/system"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

const palletName = "Identity"

// initialNonce is the multi purpose nonce before anything used it.
const initialNonce uint64 = 1

var logger = log.NewFromGlobal(log.AddContext("pkg", "authorization"))

// Clock returns the timestamp of the block being built.
type Clock interface {
	Now() (types.Moment, error)
}

// EventDepositor deposits events in the block being built.
type EventDepositor interface {
	DepositEvent(event system.Event)
}

// Identifier locates an authorization by its target and ID.
type Identifier struct {
	Target types.Signatory
	ID     uint64
}

// Ledger keeps the authorizations indexed by target, and by issuer
// so that an issuer can revoke what it gave.
type Ledger struct {
	clock  Clock
	events EventDepositor

	nonce          *storage.Value[uint64]
	authorizations *storage.DoubleMap[types.Signatory, uint64, types.Authorization]
	given          *storage.DoubleMap[types.Signatory, uint64, types.Signatory]
	revoked        *storage.DoubleMap[types.Signatory, types.TargetIDAuthorization, bool]
}

// New creates the authorization ledger.
func New(state *storage.State, clock Clock, events EventDepositor) *Ledger {
	return &Ledger{
		clock:  clock,
		events: events,
		nonce:  storage.NewValue[uint64](state, palletName, "MultiPurposeNonce"),
		authorizations: storage.NewDoubleMap[types.Signatory, uint64, types.Authorization](
			state, palletName, "Authorizations", common.Blake2128Concat, common.Twox64Concat),
		given: storage.NewDoubleMap[types.Signatory, uint64, types.Signatory](
			state, palletName, "AuthorizationsGiven", common.Blake2128Concat, common.Twox64Concat),
		revoked: storage.NewDoubleMap[types.Signatory, types.TargetIDAuthorization, bool](
			state, palletName, "RevokeOffChainAuthorization", common.Blake2128Concat, common.Blake2128Concat),
	}
}

// Nonce returns the current multi purpose nonce.
func (l *Ledger) Nonce() (uint64, error) {
	nonce, ok, err := l.nonce.TryGet()
	if err != nil {
		return 0, err
	}
	if !ok {
		return initialNonce, nil
	}
	return nonce, nil
}

// AdvanceNonce adds delta to the multi purpose nonce and returns the new value.
func (l *Ledger) AdvanceNonce(delta uint64) (uint64, error) {
	nonce, err := l.Nonce()
	if err != nil {
		return 0, err
	}
	if nonce > math.MaxUint64-delta {
		return 0, ErrNonceOverflow
	}

	nonce += delta
	err = l.nonce.Put(nonce)
	if err != nil {
		return 0, err
	}
	return nonce, nil
}

// Add issues an authorization from the issuer to the target and returns its ID.
func (l *Ledger) Add(from, target types.Signatory, data types.AuthorizationData,
	expiry scale.Option[types.Moment]) (id uint64, err error) {
	id, err = l.AdvanceNonce(1)
	if err != nil {
		return 0, err
	}

	auth := types.Authorization{
		ID:                id,
		AuthorizationData: data,
		AuthorizedBy:      from,
		Expiry:            expiry,
	}
	err = l.authorizations.Insert(target, id, auth)
	if err != nil {
		return 0, fmt.Errorf("storing authorization %d: %w", id, err)
	}
	err = l.given.Insert(from, id, target)
	if err != nil {
		return 0, fmt.Errorf("indexing authorization %d: %w", id, err)
	}

	logger.Debugf("authorization %d of type %s added from %s to %s", id, data.Type, from, target)
	l.events.DepositEvent(EventAuthorizationAdded{
		ID:     id,
		From:   from,
		Target: target,
		Data:   data,
		Expiry: expiry,
	})
	return id, nil
}

// Get returns the authorization of the target with the ID given,
// and false if it does not exist.
func (l *Ledger) Get(target types.Signatory, id uint64) (types.Authorization, bool, error) {
	return l.authorizations.TryGet(target, id)
}

// Ensure returns the authorization of the target with the ID given
// or ErrInvalid if it does not exist.
func (l *Ledger) Ensure(target types.Signatory, id uint64) (types.Authorization, error) {
	auth, ok, err := l.authorizations.TryGet(target, id)
	if err != nil {
		return auth, err
	}
	if !ok {
		return auth, fmt.Errorf("%w: %d for %s", ErrInvalid, id, target)
	}
	return auth, nil
}

// Authorizations returns the authorizations issued to the target, by ID.
func (l *Ledger) Authorizations(target types.Signatory) (auths []types.Authorization, err error) {
	err = l.authorizations.IteratePrefix(target, func(_ uint64, auth types.Authorization) error {
		auths = append(auths, auth)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(auths, func(i, j int) bool { return auths[i].ID < auths[j].ID })
	return auths, nil
}

// Given returns the identifiers of the authorizations issued by from, by ID.
func (l *Ledger) Given(from types.Signatory) (identifiers []Identifier, err error) {
	err = l.given.IteratePrefix(from, func(id uint64, target types.Signatory) error {
		identifiers = append(identifiers, Identifier{Target: target, ID: id})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(identifiers, func(i, j int) bool { return identifiers[i].ID < identifiers[j].ID })
	return identifiers, nil
}

// Remove removes an authorization without any check. The event deposited
// is AuthorizationRevoked if revoked is true, and AuthorizationRejected otherwise.
func (l *Ledger) Remove(target types.Signatory, id uint64, revoked bool) error {
	auth, ok, err := l.authorizations.TryGet(target, id)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	err = l.unlink(target, auth)
	if err != nil {
		return err
	}

	if revoked {
		l.events.DepositEvent(EventAuthorizationRevoked{Target: target, ID: id})
	} else {
		l.events.DepositEvent(EventAuthorizationRejected{Target: target, ID: id})
	}
	return nil
}

func (l *Ledger) unlink(target types.Signatory, auth types.Authorization) error {
	err := l.authorizations.Remove(target, auth.ID)
	if err != nil {
		return err
	}
	return l.given.Remove(auth.AuthorizedBy, auth.ID)
}

// checkRemover returns whether the caller issued the authorization, or
// ErrUnauthorized if the caller is neither its issuer nor its target.
func checkRemover(callerDID types.IdentityID, callerKey types.AccountID,
	target types.Signatory, auth types.Authorization) (revoked bool, err error) {
	switch {
	case auth.AuthorizedBy.EqEither(callerDID, callerKey):
		return true, nil
	case target.EqEither(callerDID, callerKey):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %d is neither issued by nor for the caller", ErrUnauthorized, auth.ID)
	}
}

// RemoveAuthorization removes an authorization on behalf of a caller,
// which must be its issuer or its target.
func (l *Ledger) RemoveAuthorization(callerDID types.IdentityID, callerKey types.AccountID,
	target types.Signatory, id uint64) error {
	auth, err := l.Ensure(target, id)
	if err != nil {
		return err
	}

	revoked, err := checkRemover(callerDID, callerKey, target, auth)
	if err != nil {
		return err
	}
	return l.Remove(target, id, revoked)
}

// BatchRemoveAuthorization removes several authorizations on behalf of
// a caller. Nothing is removed unless the caller may remove all of them.
func (l *Ledger) BatchRemoveAuthorization(callerDID types.IdentityID, callerKey types.AccountID,
	identifiers []Identifier) error {
	revokedFlags := make([]bool, len(identifiers))
	for i, identifier := range identifiers {
		auth, err := l.Ensure(identifier.Target, identifier.ID)
		if err != nil {
			return err
		}

		revokedFlags[i], err = checkRemover(callerDID, callerKey, identifier.Target, auth)
		if err != nil {
			return err
		}
	}

	for i, identifier := range identifiers {
		err := l.Remove(identifier.Target, identifier.ID, revokedFlags[i])
		if err != nil {
			return err
		}
	}
	return nil
}

// Consume removes the authorization after checking it was issued by from
// and has not expired.
func (l *Ledger) Consume(from, target types.Signatory, id uint64) error {
	auth, err := l.Ensure(target, id)
	if err != nil {
		return err
	}

	if auth.AuthorizedBy != from {
		return fmt.Errorf("%w: %d was issued by %s", ErrUnauthorized, id, auth.AuthorizedBy)
	}

	if expiry, ok := auth.Expiry.Get(); ok {
		now, err := l.clock.Now()
		if err != nil {
			return err
		}
		if expiry <= now {
			return fmt.Errorf("%w: %d expired at %d", ErrExpired, id, expiry)
		}
	}

	err = l.unlink(target, auth)
	if err != nil {
		return err
	}

	l.events.DepositEvent(EventAuthorizationConsumed{Target: target, ID: id})
	return nil
}

// RevokeOffChain marks the off-chain authorization of the signer as revoked.
func (l *Ledger) RevokeOffChain(signer types.Signatory, auth types.TargetIDAuthorization) error {
	err := l.revoked.Insert(signer, auth, true)
	if err != nil {
		return err
	}

	l.events.DepositEvent(EventOffChainAuthorizationRevoked{Signer: signer, Authorization: auth})
	return nil
}

// IsOffChainRevoked returns true if the signer revoked the off-chain authorization.
func (l *Ledger) IsOffChainRevoked(signer types.Signatory, auth types.TargetIDAuthorization) (bool, error) {
	return l.revoked.Get(signer, auth)
}
