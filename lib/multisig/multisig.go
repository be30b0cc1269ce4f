// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package multisig keeps the signers of multisig accounts. Signers join
// a multisig by accepting the authorization it issues to them.
package multisig

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/protocolfee"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/storage"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/system"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
	"github.com/samber/lo"
)

const palletName = "MultiSig"

var logger = log.NewFromGlobal(log.AddContext("pkg", "multisig"))

var addressTag = []byte("MULTI_SIG")

// EventDepositor deposits events in the block being built.
type EventDepositor interface {
	DepositEvent(event system.Event)
}

// Identities resolves the identity an account key acts for.
type Identities interface {
	GetIdentity(key types.AccountID) (types.IdentityID, bool, error)
}

// Authorizations issues, checks and consumes signer authorizations.
type Authorizations interface {
	Add(from, target types.Signatory, data types.AuthorizationData,
		expiry scale.Option[types.Moment]) (uint64, error)
	Ensure(target types.Signatory, id uint64) (types.Authorization, error)
	Consume(from, target types.Signatory, id uint64) error
}

// FeeCharger charges protocol fees.
type FeeCharger interface {
	ChargeFee(payer scale.Option[types.AccountID], op protocolfee.ProtocolOp) error
}

// MultiSig stores multisig accounts and their accepted signers.
type MultiSig struct {
	events         EventDepositor
	identities     Identities
	authorizations Authorizations
	fees           FeeCharger

	nonce           *storage.Value[uint64]
	signers         *storage.DoubleMap[types.AccountID, types.Signatory, types.Signatory]
	numberOfSigners *storage.Map[types.AccountID, uint64]
	signsRequired   *storage.Map[types.AccountID, uint64]
	creator         *storage.Map[types.AccountID, types.IdentityID]
	keyToMultiSig   *storage.Map[types.AccountID, types.AccountID]
}

// New creates the multisig pallet.
func New(state *storage.State, events EventDepositor, identities Identities,
	authorizations Authorizations, fees FeeCharger) *MultiSig {
	return &MultiSig{
		events:         events,
		identities:     identities,
		authorizations: authorizations,
		fees:           fees,
		nonce:          storage.NewValue[uint64](state, palletName, "MultiSigNonce"),
		signers: storage.NewDoubleMap[types.AccountID, types.Signatory, types.Signatory](
			state, palletName, "MultiSigSigners", common.Blake2128Concat, common.Blake2128Concat),
		numberOfSigners: storage.NewMap[types.AccountID, uint64](
			state, palletName, "NumberOfSigners", common.Blake2128Concat),
		signsRequired: storage.NewMap[types.AccountID, uint64](
			state, palletName, "MultiSigSignsRequired", common.Blake2128Concat),
		creator: storage.NewMap[types.AccountID, types.IdentityID](
			state, palletName, "MultiSigCreator", common.Blake2128Concat),
		keyToMultiSig: storage.NewMap[types.AccountID, types.AccountID](
			state, palletName, "KeyToMultiSig", common.Blake2128Concat),
	}
}

// Address returns the address of the multisig created by the account
// with the nonce given.
func Address(creator types.AccountID, nonce uint64) (types.AccountID, error) {
	preimage := make([]byte, 0, len(addressTag)+8+len(creator))
	preimage = append(preimage, addressTag...)
	preimage = binary.LittleEndian.AppendUint64(preimage, nonce)
	preimage = append(preimage, creator[:]...)

	hash, err := common.Blake2bHash(preimage)
	if err != nil {
		return types.AccountID{}, err
	}
	return types.AccountID(hash), nil
}

func (m *MultiSig) currentNonce() (uint64, error) {
	nonce, ok, err := m.nonce.TryGet()
	if err != nil || ok {
		return nonce, err
	}
	return 1, nil
}

// NextAddress returns the address of the next multisig the account creates.
func (m *MultiSig) NextAddress(creator types.AccountID) (types.AccountID, error) {
	nonce, err := m.currentNonce()
	if err != nil {
		return types.AccountID{}, err
	}
	return Address(creator, nonce+1)
}

func checkSignersBounds(signers []types.Signatory, sigsRequired uint64) error {
	if len(signers) == 0 {
		return ErrNoSigners
	}
	if sigsRequired == 0 || uint64(len(signers)) < sigsRequired {
		return fmt.Errorf("%w: %d of %d", ErrRequiredSignaturesOutOfBounds, sigsRequired, len(signers))
	}
	return nil
}

// CreateMultisig creates a multisig account and issues an authorization
// to each of the signers given. It returns the multisig address.
func (m *MultiSig) CreateMultisig(origin types.Origin, signers []types.Signatory,
	sigsRequired uint64) (address types.AccountID, err error) {
	sender, err := origin.EnsureSigned()
	if err != nil {
		return address, err
	}

	err = checkSignersBounds(signers, sigsRequired)
	if err != nil {
		return address, err
	}

	did, ok, err := m.identities.GetIdentity(sender)
	if err != nil {
		return address, err
	}
	if !ok {
		return address, fmt.Errorf("%w: %s", ErrMissingIdentity, sender)
	}

	err = m.fees.ChargeFee(scale.Some(sender), protocolfee.MultiSigCreate)
	if err != nil {
		return address, err
	}

	nonce, err := m.currentNonce()
	if err != nil {
		return address, err
	}
	if nonce == math.MaxUint64 {
		return address, ErrNonceOverflow
	}
	nonce++
	err = m.nonce.Put(nonce)
	if err != nil {
		return address, err
	}

	address, err = Address(sender, nonce)
	if err != nil {
		return address, err
	}

	for _, signer := range lo.Uniq(signers) {
		err = m.authorizeSigner(address, signer)
		if err != nil {
			return address, err
		}
	}

	err = m.signsRequired.Insert(address, sigsRequired)
	if err != nil {
		return address, err
	}
	err = m.creator.Insert(address, did)
	if err != nil {
		return address, err
	}

	logger.Debugf("multisig %s created by %s with %d signatures required", address, sender, sigsRequired)
	m.events.DepositEvent(EventMultiSigCreated{
		MultiSig:     address,
		Creator:      sender,
		Signers:      signers,
		SigsRequired: sigsRequired,
	})
	return address, nil
}

func (m *MultiSig) authorizeSigner(multisig types.AccountID, signer types.Signatory) error {
	_, err := m.authorizations.Add(types.NewAccountSignatory(multisig), signer,
		types.NewAddMultiSigSigner(multisig), scale.None[types.Moment]())
	if err != nil {
		return err
	}

	m.events.DepositEvent(EventMultiSigSignerAuthorized{MultiSig: multisig, Signer: signer})
	return nil
}

func (m *MultiSig) ensureMultisig(address types.AccountID) error {
	exists, err := m.signsRequired.Contains(address)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNoSuchMultisig, address)
	}
	return nil
}

// AddMultisigSigner issues a signer authorization. The origin must be
// the multisig itself.
func (m *MultiSig) AddMultisigSigner(origin types.Origin, signer types.Signatory) error {
	multisig, err := origin.EnsureSigned()
	if err != nil {
		return err
	}

	err = m.ensureMultisig(multisig)
	if err != nil {
		return err
	}
	return m.authorizeSigner(multisig, signer)
}

// RemoveMultisigSigner removes a signer, keeping at least as many
// signers as signatures required. The origin must be the multisig itself.
func (m *MultiSig) RemoveMultisigSigner(origin types.Origin, signer types.Signatory) error {
	multisig, err := origin.EnsureSigned()
	if err != nil {
		return err
	}

	err = m.ensureMultisig(multisig)
	if err != nil {
		return err
	}

	isSigner, err := m.signers.Contains(multisig, signer)
	if err != nil {
		return err
	}
	if !isSigner {
		return fmt.Errorf("%w: %s", ErrNotASigner, signer)
	}

	count, err := m.numberOfSigners.Get(multisig)
	if err != nil {
		return err
	}
	required, err := m.signsRequired.Get(multisig)
	if err != nil {
		return err
	}
	if count <= required {
		return fmt.Errorf("%w: %d signers for %d signatures", ErrNotEnoughSigners, count, required)
	}

	err = m.numberOfSigners.Insert(multisig, count-1)
	if err != nil {
		return err
	}

	if key, ok := signer.AsAccount(); ok {
		err = m.keyToMultiSig.Remove(key)
		if err != nil {
			return err
		}
	}
	err = m.signers.Remove(multisig, signer)
	if err != nil {
		return err
	}

	m.events.DepositEvent(EventMultiSigSignerRemoved{MultiSig: multisig, Signer: signer})
	return nil
}

// ChangeSigsRequired changes the number of signatures required.
// The origin must be the multisig itself.
func (m *MultiSig) ChangeSigsRequired(origin types.Origin, sigsRequired uint64) error {
	multisig, err := origin.EnsureSigned()
	if err != nil {
		return err
	}

	err = m.ensureMultisig(multisig)
	if err != nil {
		return err
	}

	count, err := m.numberOfSigners.Get(multisig)
	if err != nil {
		return err
	}
	if sigsRequired == 0 || count < sigsRequired {
		return fmt.Errorf("%w: %d signers for %d signatures", ErrNotEnoughSigners, count, sigsRequired)
	}

	err = m.signsRequired.Insert(multisig, sigsRequired)
	if err != nil {
		return err
	}

	m.events.DepositEvent(EventMultiSigSignaturesRequiredChanged{MultiSig: multisig, SigsRequired: sigsRequired})
	return nil
}

// AcceptMultisigSignerAsKey accepts a signer authorization issued to the caller key.
func (m *MultiSig) AcceptMultisigSignerAsKey(origin types.Origin, authID uint64) error {
	key, err := origin.EnsureSigned()
	if err != nil {
		return err
	}
	return m.AcceptMultisigSigner(types.NewAccountSignatory(key), authID)
}

// AcceptMultisigSignerAsIdentity accepts a signer authorization issued
// to the identity of the caller.
func (m *MultiSig) AcceptMultisigSignerAsIdentity(origin types.Origin, authID uint64) error {
	key, err := origin.EnsureSigned()
	if err != nil {
		return err
	}

	did, ok, err := m.identities.GetIdentity(key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingIdentity, key)
	}
	return m.AcceptMultisigSigner(types.NewIdentitySignatory(did), authID)
}

// AcceptMultisigSigner consumes the signer authorization and adds the
// signer to the multisig that issued it. An account key may only sign
// for one multisig.
func (m *MultiSig) AcceptMultisigSigner(signer types.Signatory, authID uint64) error {
	auth, err := m.authorizations.Ensure(signer, authID)
	if err != nil {
		return err
	}
	if auth.AuthorizationData.Type != types.AuthAddMultiSigSigner {
		return fmt.Errorf("%w: %d is %s", ErrNotAMultisigAuth, authID, auth.AuthorizationData.Type)
	}

	multisig, ok := auth.AuthorizedBy.AsAccount()
	if !ok {
		return fmt.Errorf("%w: %d was issued by %s", ErrNotAMultisigAuth, authID, auth.AuthorizedBy)
	}

	err = m.ensureMultisig(multisig)
	if err != nil {
		return err
	}

	key, isKey := signer.AsAccount()
	if isKey {
		linked, err := m.keyToMultiSig.Contains(key)
		if err != nil {
			return err
		}
		if linked {
			return fmt.Errorf("%w: %s", ErrSignerAlreadyLinked, key)
		}
	}

	isSigner, err := m.signers.Contains(multisig, signer)
	if err != nil {
		return err
	}
	if isSigner {
		return fmt.Errorf("%w: %s", ErrAlreadyASigner, signer)
	}

	err = m.authorizations.Consume(auth.AuthorizedBy, signer, authID)
	if err != nil {
		return err
	}

	if isKey {
		err = m.keyToMultiSig.Insert(key, multisig)
		if err != nil {
			return err
		}
	}
	err = m.signers.Insert(multisig, signer, signer)
	if err != nil {
		return err
	}
	err = m.numberOfSigners.Mutate(multisig, func(count *uint64) error {
		*count++
		return nil
	})
	if err != nil {
		return err
	}

	m.events.DepositEvent(EventMultiSigSignerAdded{MultiSig: multisig, Signer: signer})
	return nil
}

// Signers returns the accepted signers of the multisig.
func (m *MultiSig) Signers(multisig types.AccountID) (signers []types.Signatory, err error) {
	err = m.signers.IteratePrefix(multisig, func(signer types.Signatory, _ types.Signatory) error {
		signers = append(signers, signer)
		return nil
	})
	return signers, err
}

// IsSigner returns true if the signer was accepted by the multisig.
func (m *MultiSig) IsSigner(multisig types.AccountID, signer types.Signatory) (bool, error) {
	return m.signers.Contains(multisig, signer)
}

// IsMultisig returns true if the account is a multisig.
func (m *MultiSig) IsMultisig(account types.AccountID) (bool, error) {
	return m.signsRequired.Contains(account)
}

// SignsRequired returns the number of signatures the multisig requires.
func (m *MultiSig) SignsRequired(multisig types.AccountID) (uint64, error) {
	return m.signsRequired.Get(multisig)
}

// NumberOfSigners returns the number of accepted signers of the multisig.
func (m *MultiSig) NumberOfSigners(multisig types.AccountID) (uint64, error) {
	return m.numberOfSigners.Get(multisig)
}

// Creator returns the identity that created the multisig.
func (m *MultiSig) Creator(multisig types.AccountID) (types.IdentityID, error) {
	return m.creator.Get(multisig)
}

// KeyToMultiSig returns the multisig the account key signs for, if any.
func (m *MultiSig) KeyToMultiSig(key types.AccountID) (types.AccountID, bool, error) {
	return m.keyToMultiSig.TryGet(key)
}
