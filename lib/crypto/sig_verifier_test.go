// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto_test

import (
	"io"
	"testing"

	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto/ed25519"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto/secp256k1"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto/sr25519"
	"github.com/stretchr/testify/require"
)

func TestSignatureVerifier(t *testing.T) {
	t.Parallel()

	message := []byte("a225e8c75da7da319af6335e7642d473")
	hash := common.MustBlake2bHash(message)

	edKeypair, err := ed25519.GenerateKeypair()
	require.NoError(t, err)
	edSign, err := edKeypair.Sign(message)
	require.NoError(t, err)

	secpKeypair, err := secp256k1.GenerateKeypair()
	require.NoError(t, err)
	secpSign, err := secpKeypair.Sign(hash[:])
	require.NoError(t, err)

	srKeypair, err := sr25519.GenerateKeypair()
	require.NoError(t, err)
	srSign, err := srKeypair.Sign(message)
	require.NoError(t, err)

	testCases := map[string]struct {
		signaturesToVerify []*crypto.SignatureInfo
		errWrapped         error
	}{
		"success": {
			signaturesToVerify: []*crypto.SignatureInfo{
				{
					PubKey:     edKeypair.Public().Encode(),
					Sign:       edSign,
					Msg:        message,
					VerifyFunc: ed25519.VerifySignature,
				},
				{
					PubKey:     secpKeypair.Public().Encode(),
					Sign:       secpSign[:64],
					Msg:        hash[:],
					VerifyFunc: secp256k1.VerifySignature,
				},
				{
					PubKey:     srKeypair.Public().Encode(),
					Sign:       srSign,
					Msg:        message,
					VerifyFunc: sr25519.VerifySignature,
				},
			},
		},
		"bad public key input": {
			signaturesToVerify: []*crypto.SignatureInfo{
				{
					PubKey:     []byte{},
					Sign:       edSign,
					Msg:        message,
					VerifyFunc: ed25519.VerifySignature,
				},
			},
			errWrapped: crypto.ErrSignatureVerificationFailed,
		},
		"verification failed": {
			signaturesToVerify: []*crypto.SignatureInfo{
				{
					PubKey:     srKeypair.Public().Encode(),
					Sign:       srSign,
					Msg:        message,
					VerifyFunc: sr25519.VerifySignature,
				},
				{
					PubKey:     srKeypair.Public().Encode(),
					Sign:       edSign,
					Msg:        message,
					VerifyFunc: sr25519.VerifySignature,
				},
			},
			errWrapped: crypto.ErrSignatureVerificationFailed,
		},
		"empty batch": {},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			verifier := crypto.NewSignatureVerifier(log.New(log.SetWriter(io.Discard)))
			verifier.Start()
			require.True(t, verifier.IsStarted())

			for _, signature := range testCase.signaturesToVerify {
				verifier.Add(signature)
			}

			err := verifier.Finish()
			require.ErrorIs(t, err, testCase.errWrapped)
			require.False(t, verifier.IsStarted())
		})
	}
}
