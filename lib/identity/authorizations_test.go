// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package identity

import (
	"errors"
	"testing"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/authorization"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Identity_AddAuthorization(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	ti := newTestIdentity(t, ctrl)
	alice := ti.register(t, aliceKey)
	target := types.NewAccountSignatory(bobKey)
	none := scale.None[types.Moment]()

	_, err := ti.AddAuthorization(types.SignedOrigin(carolKey), target, types.NewJoinIdentity(alice), none)
	require.ErrorIs(t, err, ErrMissingIdentity)

	id, err := ti.AddAuthorization(types.SignedOrigin(aliceKey), target, types.NewJoinIdentity(alice), none)
	require.NoError(t, err)
	auth, err := ti.ledger.Ensure(target, id)
	require.NoError(t, err)
	assert.Equal(t, types.NewIdentitySignatory(alice), auth.AuthorizedBy)

	id, err = ti.AddAuthorizationAsKey(types.SignedOrigin(carolKey), target, types.NewJoinIdentity(alice), none)
	require.NoError(t, err)
	auth, err = ti.ledger.Ensure(target, id)
	require.NoError(t, err)
	assert.Equal(t, types.NewAccountSignatory(carolKey), auth.AuthorizedBy)

	ids, err := ti.BatchAddAuthorization(types.SignedOrigin(aliceKey), []NewAuthorization{
		{Target: target, Data: types.NewJoinIdentity(alice), Expiry: none},
		{Target: types.NewAccountSignatory(daveKey), Data: types.NewJoinIdentity(alice), Expiry: none},
	})
	require.NoError(t, err)
	require.Len(t, ids, 2)

	err = ti.BatchRemoveAuthorization(types.SignedOrigin(aliceKey), []authorization.Identifier{
		{Target: target, ID: ids[0]},
		{Target: types.NewAccountSignatory(daveKey), ID: ids[1]},
	})
	require.NoError(t, err)

	auths, err := ti.ledger.Authorizations(target)
	require.NoError(t, err)
	assert.Len(t, auths, 2)
}

func Test_Identity_AcceptAuthorization(t *testing.T) {
	t.Parallel()

	acme := types.MustNewTicker("ACME")
	multisig := types.AccountID{0xaa}
	errTest := errors.New("test error")

	testCases := map[string]struct {
		caller     types.AccountID
		target     func(alice, bob types.IdentityID) types.Signatory
		data       func(alice, bob types.IdentityID) types.AuthorizationData
		expect     func(ti testIdentity, bob types.IdentityID, id uint64)
		errWrapped error
		check      func(t *testing.T, ti testIdentity, alice, bob types.IdentityID)
	}{
		"join identity as key": {
			caller: daveKey,
			target: func(_, _ types.IdentityID) types.Signatory { return types.NewAccountSignatory(daveKey) },
			data: func(alice, _ types.IdentityID) types.AuthorizationData {
				return types.NewJoinIdentity(alice)
			},
			check: func(t *testing.T, ti testIdentity, alice, _ types.IdentityID) {
				did, ok, err := ti.GetIdentity(daveKey)
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, alice, did)
			},
		},
		"join identity as identity": {
			caller: bobKey,
			target: func(_, bob types.IdentityID) types.Signatory { return types.NewIdentitySignatory(bob) },
			data: func(alice, _ types.IdentityID) types.AuthorizationData {
				return types.NewJoinIdentity(alice)
			},
			check: func(t *testing.T, ti testIdentity, alice, bob types.IdentityID) {
				authorized, err := ti.IsSignerAuthorized(alice, types.NewIdentitySignatory(bob))
				require.NoError(t, err)
				assert.True(t, authorized)
			},
		},
		"ticker transfer": {
			caller: bobKey,
			target: func(_, bob types.IdentityID) types.Signatory { return types.NewIdentitySignatory(bob) },
			data: func(_, _ types.IdentityID) types.AuthorizationData {
				return types.NewTransferTicker(acme)
			},
			expect: func(ti testIdentity, bob types.IdentityID, id uint64) {
				ti.assets.EXPECT().AcceptTickerTransfer(bob, id).Return(errTest)
			},
			errWrapped: errTest,
		},
		"asset ownership transfer": {
			caller: bobKey,
			target: func(_, bob types.IdentityID) types.Signatory { return types.NewIdentitySignatory(bob) },
			data: func(_, _ types.IdentityID) types.AuthorizationData {
				return types.NewTransferAssetOwnership(acme)
			},
			expect: func(ti testIdentity, bob types.IdentityID, id uint64) {
				ti.assets.EXPECT().AcceptAssetOwnershipTransfer(bob, id).Return(nil)
			},
		},
		"multisig signer": {
			caller: daveKey,
			target: func(_, _ types.IdentityID) types.Signatory { return types.NewAccountSignatory(daveKey) },
			data: func(_, _ types.IdentityID) types.AuthorizationData {
				return types.NewAddMultiSigSigner(multisig)
			},
			expect: func(ti testIdentity, _ types.IdentityID, id uint64) {
				ti.multisigs.EXPECT().AcceptMultisigSigner(types.NewAccountSignatory(daveKey), id).Return(nil)
			},
		},
		"ticker transfer to a key": {
			caller: daveKey,
			target: func(_, _ types.IdentityID) types.Signatory { return types.NewAccountSignatory(daveKey) },
			data: func(_, _ types.IdentityID) types.AuthorizationData {
				return types.NewTransferTicker(acme)
			},
			errWrapped: ErrUnknownAuthorization,
		},
		"attestation": {
			caller: bobKey,
			target: func(_, bob types.IdentityID) types.Signatory { return types.NewIdentitySignatory(bob) },
			data: func(alice, _ types.IdentityID) types.AuthorizationData {
				return types.NewAttestMasterKeyRotation(alice)
			},
			errWrapped: ErrUnknownAuthorization,
		},
		"authorization of another signer": {
			caller: carolKey,
			target: func(_, bob types.IdentityID) types.Signatory { return types.NewIdentitySignatory(bob) },
			data: func(alice, _ types.IdentityID) types.AuthorizationData {
				return types.NewJoinIdentity(alice)
			},
			errWrapped: authorization.ErrInvalid,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			ti := newTestIdentity(t, ctrl)
			alice := ti.register(t, aliceKey)
			bob := ti.register(t, bobKey)

			id, err := ti.AddAuthorization(types.SignedOrigin(aliceKey), testCase.target(alice, bob),
				testCase.data(alice, bob), scale.None[types.Moment]())
			require.NoError(t, err)

			if testCase.expect != nil {
				testCase.expect(ti, bob, id)
			}

			err = ti.AcceptAuthorization(types.SignedOrigin(testCase.caller), id)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.check != nil {
				testCase.check(t, ti, alice, bob)
			}
		})
	}
}

func Test_Identity_BatchAcceptAuthorization(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	ti := newTestIdentity(t, ctrl)
	alice := ti.register(t, aliceKey)
	bob := ti.register(t, bobKey)
	bobSigner := types.NewIdentitySignatory(bob)
	none := scale.None[types.Moment]()

	tickerAuth, err := ti.AddAuthorization(types.SignedOrigin(aliceKey), bobSigner,
		types.NewTransferTicker(types.MustNewTicker("ACME")), none)
	require.NoError(t, err)
	joinAuth, err := ti.AddAuthorization(types.SignedOrigin(aliceKey), bobSigner, types.NewJoinIdentity(alice), none)
	require.NoError(t, err)

	ti.assets.EXPECT().AcceptTickerTransfer(bob, tickerAuth).Return(errors.New("test error"))

	err = ti.BatchAcceptAuthorization(types.SignedOrigin(bobKey), []uint64{tickerAuth, 99, joinAuth})
	require.NoError(t, err)

	authorized, err := ti.IsSignerAuthorized(alice, bobSigner)
	require.NoError(t, err)
	assert.True(t, authorized)

	auths, err := ti.ledger.Authorizations(bobSigner)
	require.NoError(t, err)
	require.Len(t, auths, 1)
	assert.Equal(t, tickerAuth, auths[0].ID)
}

func Test_Identity_AcceptMasterKey(t *testing.T) {
	t.Parallel()

	none := scale.None[types.Moment]()

	testCases := map[string]struct {
		cddRequired     bool
		attestedByCdd   bool
		attestOther     bool
		withAttestation bool
		errWrapped      error
	}{
		"without cdd requirement": {},
		"missing cdd attestation": {
			cddRequired: true,
			errWrapped:  ErrInvalidAuthorizationFromCddProvider,
		},
		"attestation of another identity": {
			cddRequired:     true,
			attestedByCdd:   true,
			attestOther:     true,
			withAttestation: true,
			errWrapped:      ErrAuthorizationsNotForSameDids,
		},
		"attestation not from cdd provider": {
			cddRequired:     true,
			withAttestation: true,
			errWrapped:      ErrNotCddProviderAttestation,
		},
		"attested rotation": {
			cddRequired:     true,
			attestedByCdd:   true,
			withAttestation: true,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			ti := newTestIdentity(t, ctrl)
			alice := ti.register(t, aliceKey)
			bob := ti.register(t, bobKey)
			provider := ti.register(t, carolKey)
			target := types.NewAccountSignatory(daveKey)

			require.NoError(t, ti.ChangeCddRequirementForMasterKeyRotation(types.RootOrigin(), testCase.cddRequired))

			rotationID, err := ti.AddAuthorization(types.SignedOrigin(aliceKey), target,
				types.NewRotateMasterKey(alice), none)
			require.NoError(t, err)

			cddAuthID := scale.None[uint64]()
			if testCase.withAttestation {
				attested := alice
				if testCase.attestOther {
					attested = bob
				}
				id, err := ti.AddAuthorization(types.SignedOrigin(carolKey), target,
					types.NewAttestMasterKeyRotation(attested), none)
				require.NoError(t, err)
				cddAuthID = scale.Some(id)
				ti.cdd.EXPECT().IsMember(provider).Return(testCase.attestedByCdd, nil)
			}

			err = ti.AcceptMasterKey(types.SignedOrigin(daveKey), rotationID, cddAuthID)

			assert.ErrorIs(t, err, testCase.errWrapped)
			isMaster, err := ti.IsMasterKey(alice, daveKey)
			require.NoError(t, err)
			assert.Equal(t, testCase.errWrapped == nil, isMaster)

			auths, err := ti.ledger.Authorizations(target)
			require.NoError(t, err)
			if testCase.errWrapped == nil {
				assert.Empty(t, auths)
				_, ok, err := ti.GetIdentity(aliceKey)
				require.NoError(t, err)
				assert.False(t, ok)
			} else {
				assert.NotEmpty(t, auths)
			}
		})
	}
}

func Test_Identity_AcceptMasterKey_linkedKey(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	ti := newTestIdentity(t, ctrl)
	alice := ti.register(t, aliceKey)
	ti.register(t, bobKey)

	rotationID, err := ti.AddAuthorization(types.SignedOrigin(aliceKey), types.NewAccountSignatory(bobKey),
		types.NewRotateMasterKey(alice), scale.None[types.Moment]())
	require.NoError(t, err)

	err = ti.AcceptMasterKey(types.SignedOrigin(bobKey), rotationID, scale.None[uint64]())
	assert.ErrorIs(t, err, ErrAlreadyLinked)
}
