// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

// KeyType is the signature scheme of a key.
type KeyType string

const (
	// Ed25519Type is the ed25519 key type.
	Ed25519Type KeyType = "ed25519"
	// Sr25519Type is the schnorrkel sr25519 key type.
	Sr25519Type KeyType = "sr25519"
	// Secp256k1Type is the secp256k1 ECDSA key type.
	Secp256k1Type KeyType = "secp256k1"
)

// Keypair is a key pair able to sign messages.
type Keypair interface {
	Type() KeyType
	Sign(msg []byte) ([]byte, error)
	Public() PublicKey
	Private() PrivateKey
}

// PublicKey is a public key able to verify signatures.
type PublicKey interface {
	Verify(msg, sig []byte) (bool, error)
	Encode() []byte
	Decode([]byte) error
	Hex() string
}

// PrivateKey is a private key.
type PrivateKey interface {
	Sign(msg []byte) ([]byte, error)
	Public() (PublicKey, error)
	Encode() []byte
	Decode([]byte) error
	Hex() string
}
