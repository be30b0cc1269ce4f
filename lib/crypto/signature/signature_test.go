// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package signature

import (
	"testing"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto/ed25519"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto/secp256k1"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto/sr25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SignAndVerify(t *testing.T) {
	t.Parallel()

	srKeypair, err := sr25519.GenerateKeypair()
	require.NoError(t, err)
	edKeypair, err := ed25519.GenerateKeypair()
	require.NoError(t, err)
	secpKeypair, err := secp256k1.GenerateKeypair()
	require.NoError(t, err)

	testCases := map[string]struct {
		keypair crypto.Keypair
		scheme  types.SignatureScheme
	}{
		"sr25519": {
			keypair: srKeypair,
			scheme:  types.SchemeSr25519,
		},
		"ed25519": {
			keypair: edKeypair,
			scheme:  types.SchemeEd25519,
		},
		"ecdsa": {
			keypair: secpKeypair,
			scheme:  types.SchemeEcdsa,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			msg := []byte("target identity authorization")
			account, err := AccountFromKeypair(testCase.keypair)
			require.NoError(t, err)

			signature, err := Sign(testCase.keypair, msg)
			require.NoError(t, err)
			assert.Equal(t, testCase.scheme, signature.Scheme)

			err = Verify(signature, msg, account)
			require.NoError(t, err)

			err = Verify(signature, []byte("other message"), account)
			assert.Error(t, err)

			err = Verify(signature, msg, types.AccountID{1})
			assert.Error(t, err)
		})
	}
}

func Test_Verify_unknownScheme(t *testing.T) {
	t.Parallel()

	err := Verify(types.MultiSignature{Scheme: 9}, nil, types.AccountID{})
	assert.ErrorIs(t, err, ErrUnknownScheme)
}
