// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package secp256k1

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto"

	secp256k1 "github.com/ethereum/go-ethereum/crypto"
)

const (
	// PublicKeyLength is the length of a compressed public key.
	PublicKeyLength = 33
	// PrivateKeyLength is the length of a private key.
	PrivateKeyLength = 32
	// SignatureLength is the length of a recoverable signature.
	SignatureLength = 65
	// SignatureLengthWithoutRecoveryID is the length of a signature without its recovery id.
	SignatureLengthWithoutRecoveryID = 64
	// MessageLength is the length of the hashes signed.
	MessageLength = 32
)

var (
	ErrInvalidPublicKeyLength  = errors.New("public key is not 33 bytes long")
	ErrInvalidPrivateKeyLength = errors.New("private key is not 32 bytes long")
	ErrInvalidSignatureLength  = errors.New("invalid signature length")
	ErrInvalidMessageLength    = errors.New("message is not 32 bytes long")
	ErrSignatureVerification   = errors.New("signature verification failed")
)

// Keypair is a secp256k1 key pair.
type Keypair struct {
	public  *PublicKey
	private *PrivateKey
}

// PublicKey is a secp256k1 public key.
type PublicKey struct {
	key ecdsa.PublicKey
}

// PrivateKey is a secp256k1 private key.
type PrivateKey struct {
	key ecdsa.PrivateKey
}

// NewKeypair returns the key pair of the private key given.
func NewKeypair(priv ecdsa.PrivateKey) *Keypair {
	return &Keypair{
		public:  &PublicKey{key: priv.PublicKey},
		private: &PrivateKey{key: priv},
	}
}

// NewKeypairFromPrivate returns the key pair of the private key given.
func NewKeypairFromPrivate(priv *PrivateKey) (*Keypair, error) {
	pub, err := priv.Public()
	if err != nil {
		return nil, err
	}

	return &Keypair{
		public:  pub.(*PublicKey),
		private: priv,
	}, nil
}

// GenerateKeypair returns a new random key pair.
func GenerateKeypair() (*Keypair, error) {
	priv, err := secp256k1.GenerateKey()
	if err != nil {
		return nil, err
	}
	return NewKeypair(*priv), nil
}

// NewPrivateKey returns the private key of the 32 bytes given.
func NewPrivateKey(in []byte) (*PrivateKey, error) {
	priv := new(PrivateKey)
	err := priv.Decode(in)
	if err != nil {
		return nil, err
	}
	return priv, nil
}

// RecoverPublicKeyCompressed returns the compressed public key that
// produced the 65 bytes signature over the 32 bytes message hash.
func RecoverPublicKeyCompressed(msg, sig []byte) ([]byte, error) {
	if len(msg) != MessageLength {
		return nil, ErrInvalidMessageLength
	}
	if len(sig) != SignatureLength {
		return nil, ErrInvalidSignatureLength
	}

	pub, err := secp256k1.SigToPub(msg, sig)
	if err != nil {
		return nil, fmt.Errorf("recovering public key: %w", err)
	}
	return secp256k1.CompressPubkey(pub), nil
}

// VerifySignature verifies a signature of a 32 bytes message hash.
// The signature may carry a trailing recovery id.
func VerifySignature(publicKey, signature, message []byte) error {
	pub := new(PublicKey)
	err := pub.Decode(publicKey)
	if err != nil {
		return fmt.Errorf("secp256k1: %w", err)
	}

	ok, err := pub.Verify(message, signature)
	if err != nil {
		return fmt.Errorf("secp256k1: %w", err)
	} else if !ok {
		return fmt.Errorf("secp256k1: %w: for message 0x%x, signature 0x%x and public key 0x%x",
			ErrSignatureVerification, message, signature, publicKey)
	}
	return nil
}

// Type returns Secp256k1Type.
func (*Keypair) Type() crypto.KeyType {
	return crypto.Secp256k1Type
}

// Sign signs the 32 bytes message hash, returning a 65 bytes signature.
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

// Sign signs the 32 bytes message hash, returning a 65 bytes signature.
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	if len(msg) != MessageLength {
		return nil, ErrInvalidMessageLength
	}
	return secp256k1.Sign(msg, &k.key)
}

// Public returns the public key of the private key.
func (k *PrivateKey) Public() (crypto.PublicKey, error) {
	return &PublicKey{key: k.key.PublicKey}, nil
}

// Encode returns the 32 bytes private key.
func (k *PrivateKey) Encode() []byte {
	return secp256k1.FromECDSA(&k.key)
}

// Decode decodes a 32 bytes private key.
func (k *PrivateKey) Decode(in []byte) error {
	if len(in) != PrivateKeyLength {
		return ErrInvalidPrivateKeyLength
	}

	key, err := secp256k1.ToECDSA(in)
	if err != nil {
		return err
	}
	k.key = *key
	return nil
}

// Hex returns the hex encoded private key.
func (k *PrivateKey) Hex() string {
	return common.BytesToHex(k.Encode())
}

// Verify verifies a signature of the 32 bytes message hash.
func (k *PublicKey) Verify(msg, sig []byte) (bool, error) {
	if len(sig) == SignatureLength {
		sig = sig[:SignatureLengthWithoutRecoveryID]
	}
	if len(sig) != SignatureLengthWithoutRecoveryID {
		return false, ErrInvalidSignatureLength
	}
	if len(msg) != MessageLength {
		return false, ErrInvalidMessageLength
	}
	return secp256k1.VerifySignature(k.Encode(), msg, sig), nil
}

// Encode returns the 33 bytes compressed public key.
func (k *PublicKey) Encode() []byte {
	return secp256k1.CompressPubkey(&k.key)
}

// Decode decodes a 33 bytes compressed public key.
func (k *PublicKey) Decode(in []byte) error {
	if len(in) != PublicKeyLength {
		return ErrInvalidPublicKeyLength
	}

	pub, err := secp256k1.DecompressPubkey(in)
	if err != nil {
		return err
	}
	k.key = *pub
	return nil
}

// Hex returns the hex encoded compressed public key.
func (k *PublicKey) Hex() string {
	return common.BytesToHex(k.Encode())
}
