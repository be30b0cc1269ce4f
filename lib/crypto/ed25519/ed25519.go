// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed25519

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto"
)

const (
	// PublicKeyLength is the length of an ed25519 public key.
	PublicKeyLength = ed25519.PublicKeySize
	// SeedLength is the length of an ed25519 seed.
	SeedLength = ed25519.SeedSize
	// PrivateKeyLength is the length of an ed25519 private key.
	PrivateKeyLength = ed25519.PrivateKeySize
	// SignatureLength is the length of an ed25519 signature.
	SignatureLength = ed25519.SignatureSize
)

var (
	ErrInvalidSeedLength       = errors.New("seed is not 32 bytes long")
	ErrInvalidPublicKeyLength  = errors.New("public key is not 32 bytes long")
	ErrInvalidPrivateKeyLength = errors.New("private key is not 64 bytes long")
	ErrInvalidSignatureLength  = errors.New("signature is not 64 bytes long")
	ErrSignatureVerification   = errors.New("signature verification failed")
)

// Keypair is an ed25519 key pair.
type Keypair struct {
	public  *PublicKey
	private *PrivateKey
}

// PublicKey is an ed25519 public key.
type PublicKey ed25519.PublicKey

// PrivateKey is an ed25519 private key.
type PrivateKey ed25519.PrivateKey

// NewKeypair returns the key pair of the private key given.
func NewKeypair(priv ed25519.PrivateKey) *Keypair {
	pub := PublicKey(priv.Public().(ed25519.PublicKey))
	privateKey := PrivateKey(priv)
	return &Keypair{
		public:  &pub,
		private: &privateKey,
	}
}

// NewKeypairFromSeed returns the key pair of the 32 bytes seed given.
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("cannot generate key from seed: %w", ErrInvalidSeedLength)
	}
	return NewKeypair(ed25519.NewKeyFromSeed(seed)), nil
}

// GenerateKeypair returns a new random key pair.
func GenerateKeypair() (*Keypair, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return NewKeypair(priv), nil
}

// NewPublicKey returns the ed25519 public key of the 32 bytes given.
func NewPublicKey(in []byte) (*PublicKey, error) {
	pub := new(PublicKey)
	err := pub.Decode(in)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

// Verify verifies an ed25519 signature of msg.
func Verify(pub *PublicKey, msg, sig []byte) (bool, error) {
	if len(sig) != SignatureLength {
		return false, ErrInvalidSignatureLength
	}
	return ed25519.Verify(ed25519.PublicKey(*pub), msg, sig), nil
}

// VerifySignature verifies an ed25519 signature of msg.
func VerifySignature(publicKey, signature, message []byte) error {
	pubKey, err := NewPublicKey(publicKey)
	if err != nil {
		return fmt.Errorf("ed25519: %w", err)
	}

	ok, err := pubKey.Verify(message, signature)
	if err != nil {
		return fmt.Errorf("ed25519: %w", err)
	} else if !ok {
		return fmt.Errorf("ed25519: %w: for message 0x%x, signature 0x%x and public key 0x%x",
			ErrSignatureVerification, message, signature, publicKey)
	}
	return nil
}

// Type returns Ed25519Type.
func (*Keypair) Type() crypto.KeyType {
	return crypto.Ed25519Type
}

// Sign signs msg with the private key.
func (kp *Keypair) Sign(msg []byte) ([]byte, error) {
	return kp.private.Sign(msg)
}

// Public returns the public key.
func (kp *Keypair) Public() crypto.PublicKey {
	return kp.public
}

// Private returns the private key.
func (kp *Keypair) Private() crypto.PrivateKey {
	return kp.private
}

// Sign signs msg.
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	if len(*k) != PrivateKeyLength {
		return nil, ErrInvalidPrivateKeyLength
	}
	return ed25519.Sign(ed25519.PrivateKey(*k), msg), nil
}

// Public returns the public key of the private key.
func (k *PrivateKey) Public() (crypto.PublicKey, error) {
	if len(*k) != PrivateKeyLength {
		return nil, ErrInvalidPrivateKeyLength
	}
	pub := PublicKey(ed25519.PrivateKey(*k).Public().(ed25519.PublicKey))
	return &pub, nil
}

// Encode returns the 64 bytes private key.
func (k *PrivateKey) Encode() []byte {
	return []byte(*k)
}

// Decode decodes a 64 bytes private key.
func (k *PrivateKey) Decode(in []byte) error {
	if len(in) != PrivateKeyLength {
		return ErrInvalidPrivateKeyLength
	}
	*k = PrivateKey(common.CopyBytes(in))
	return nil
}

// Hex returns the hex encoded private key.
func (k *PrivateKey) Hex() string {
	return common.BytesToHex(k.Encode())
}

// Verify verifies an ed25519 signature of msg.
func (k *PublicKey) Verify(msg, sig []byte) (bool, error) {
	return Verify(k, msg, sig)
}

// Encode returns the 32 bytes public key.
func (k *PublicKey) Encode() []byte {
	return []byte(*k)
}

// Decode decodes a 32 bytes public key.
func (k *PublicKey) Decode(in []byte) error {
	if len(in) != PublicKeyLength {
		return ErrInvalidPublicKeyLength
	}
	*k = PublicKey(common.CopyBytes(in))
	return nil
}

// Hex returns the hex encoded public key.
func (k *PublicKey) Hex() string {
	return common.BytesToHex(k.Encode())
}
