// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"testing"

	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AuthorizationData_Encoding(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		data          AuthorizationData
		encodedLength int
	}{
		"join identity": {
			data:          NewJoinIdentity(IdentityIDFromUint64(1)),
			encodedLength: 33,
		},
		"rotate master key": {
			data:          NewRotateMasterKey(IdentityIDFromUint64(1)),
			encodedLength: 33,
		},
		"transfer ticker": {
			data:          NewTransferTicker(MustNewTicker("ACME")),
			encodedLength: 13,
		},
		"transfer asset ownership": {
			data:          NewTransferAssetOwnership(MustNewTicker("ACME")),
			encodedLength: 13,
		},
		"add multisig signer": {
			data:          NewAddMultiSigSigner(AccountID{5}),
			encodedLength: 33,
		},
		"no data": {
			data:          AuthorizationData{Type: AuthNoData},
			encodedLength: 1,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			encoded, err := scale.Marshal(testCase.data)
			require.NoError(t, err)
			assert.Len(t, encoded, testCase.encodedLength)
			assert.Equal(t, byte(testCase.data.Type), encoded[0])

			var decoded AuthorizationData
			err = scale.Unmarshal(encoded, &decoded)
			require.NoError(t, err)
			assert.Equal(t, testCase.data, decoded)
		})
	}
}

func Test_Authorization_Encoding(t *testing.T) {
	t.Parallel()

	auth := Authorization{
		ID:                3,
		AuthorizationData: NewJoinIdentity(IdentityIDFromUint64(1)),
		AuthorizedBy:      NewAccountSignatory(AccountID{2}),
		Expiry:            scale.Some(Moment(100)),
	}

	encoded, err := scale.Marshal(auth)
	require.NoError(t, err)

	var decoded Authorization
	err = scale.Unmarshal(encoded, &decoded)
	require.NoError(t, err)
	assert.Equal(t, auth, decoded)
}

func Test_MultiSignature_Encoding(t *testing.T) {
	t.Parallel()

	signature := NewEcdsaSignature([65]byte{1})
	encoded, err := scale.Marshal(signature)
	require.NoError(t, err)
	assert.Len(t, encoded, 66)
	assert.Equal(t, byte(SchemeEcdsa), encoded[0])

	var decoded MultiSignature
	err = scale.Unmarshal(encoded, &decoded)
	require.NoError(t, err)
	assert.Equal(t, signature, decoded)

	_, err = scale.Marshal(MultiSignature{Scheme: SchemeSr25519, Signature: []byte{1}})
	assert.ErrorIs(t, err, ErrInvalidLength)
}
