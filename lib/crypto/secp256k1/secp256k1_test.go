// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package secp256k1

import (
	"testing"

	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	kp, err := GenerateKeypair()
	require.NoError(t, err)

	hash := common.MustBlake2bHash([]byte("borkbork"))

	sig, err := kp.Sign(hash[:])
	require.NoError(t, err)
	require.Len(t, sig, SignatureLength)

	ok, err := kp.Public().Verify(hash[:], sig[:64])
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = kp.Public().Verify(hash[:], sig)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = kp.Sign([]byte("short"))
	require.ErrorIs(t, err, ErrInvalidMessageLength)
}

func TestRecoverPublicKeyCompressed(t *testing.T) {
	t.Parallel()

	kp, err := GenerateKeypair()
	require.NoError(t, err)

	hash := common.MustBlake2bHash([]byte("borkbork"))
	sig, err := kp.Sign(hash[:])
	require.NoError(t, err)

	recovered, err := RecoverPublicKeyCompressed(hash[:], sig)
	require.NoError(t, err)
	assert.Equal(t, kp.Public().Encode(), recovered)

	_, err = RecoverPublicKeyCompressed(hash[:], sig[:64])
	require.ErrorIs(t, err, ErrInvalidSignatureLength)
}

func TestEncodeAndDecodeKeys(t *testing.T) {
	t.Parallel()

	kp, err := GenerateKeypair()
	require.NoError(t, err)

	priv, err := NewPrivateKey(kp.Private().Encode())
	require.NoError(t, err)
	assert.Equal(t, kp.Private().Hex(), priv.Hex())

	kp2, err := NewKeypairFromPrivate(priv)
	require.NoError(t, err)
	assert.Equal(t, kp.Public().Encode(), kp2.Public().Encode())

	pub := new(PublicKey)
	err = pub.Decode(kp.Public().Encode())
	require.NoError(t, err)
	assert.Equal(t, kp.Public().Hex(), pub.Hex())
}
