// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sr25519

import (
	"errors"
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto"

	sr25519 "github.com/ChainSafe/go-schnorrkel"
	bip39 "github.com/cosmos/go-bip39"
	"github.com/gtank/merlin"
)

const (
	// PublicKeyLength is the length of a sr25519 public key.
	PublicKeyLength = 32
	// SeedLength is the length of a sr25519 mini secret key.
	SeedLength = 32
	// SignatureLength is the length of a sr25519 signature.
	SignatureLength = 64
)

// SigningContext is the context substrate signs with.
var SigningContext = []byte("substrate")

var (
	ErrInvalidSeedLength      = errors.New("seed is not 32 bytes long")
	ErrInvalidPublicKeyLength = errors.New("public key is not 32 bytes long")
	ErrInvalidSignatureLength = errors.New("signature is not 64 bytes long")
	ErrInvalidMnemonic        = errors.New("invalid mnemonic")
	ErrSignatureVerification  = errors.New("signature verification failed")
)

// Keypair is a sr25519 key pair.
type Keypair struct {
	public  *PublicKey
	private *PrivateKey
}

// PublicKey is a sr25519 public key.
type PublicKey struct {
	key *sr25519.PublicKey
}

// PrivateKey is a sr25519 secret key.
type PrivateKey struct {
	key *sr25519.SecretKey
}

// NewKeypair returns the key pair of the secret key given.
func NewKeypair(priv *sr25519.SecretKey) (*Keypair, error) {
	pub, err := priv.Public()
	if err != nil {
		return nil, err
	}

	return &Keypair{
		public:  &PublicKey{key: pub},
		private: &PrivateKey{key: priv},
	}, nil
}

// NewKeypairFromSeed returns the key pair of the 32 bytes mini secret key given.
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("cannot generate key from seed: %w", ErrInvalidSeedLength)
	}

	buf := [SeedLength]byte{}
	copy(buf[:], seed)
	msc, err := sr25519.NewMiniSecretKeyFromRaw(buf)
	if err != nil {
		return nil, err
	}

	return NewKeypair(msc.ExpandEd25519())
}

// NewKeypairFromMnenomic returns the key pair derived from a bip39 mnemonic.
func NewKeypairFromMnenomic(mnemonic, password string) (*Keypair, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	msk, err := sr25519.MiniSecretKeyFromMnemonic(mnemonic, password)
	if err != nil {
		return nil, err
	}
	return NewKeypair(msk.ExpandEd25519())
}

// GenerateKeypair returns a new random key pair.
func GenerateKeypair() (*Keypair, error) {
	priv, pub, err := sr25519.GenerateKeypair()
	if err != nil {
		return nil, err
	}

	return &Keypair{
		public:  &PublicKey{key: pub},
		private: &PrivateKey{key: priv},
	}, nil
}

// NewPublicKey returns the sr25519 public key of the 32 bytes given.
func NewPublicKey(in []byte) (*PublicKey, error) {
	pub := new(PublicKey)
	err := pub.Decode(in)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

// VerifySignature verifies a sr25519 signature of msg.
func VerifySignature(publicKey, signature, message []byte) error {
	pubKey, err := NewPublicKey(publicKey)
	if err != nil {
		return fmt.Errorf("sr25519: %w", err)
	}

	ok, err := pubKey.Verify(message, signature)
	if err != nil {
		return fmt.Errorf("sr25519: %w", err)
	} else if !ok {
		return fmt.Errorf("sr25519: %w: for message 0x%x, signature 0x%x and public key 0x%x",
			ErrSignatureVerification, message, signature, publicKey)
	}
	return nil
}

// signingTranscript returns the merlin transcript of a substrate
// signing context over msg.
func signingTranscript(msg []byte) *merlin.Transcript {
	transcript := merlin.NewTranscript("SigningContext")
	transcript.AppendMessage([]byte(""), SigningContext)
	transcript.AppendMessage([]byte("sign-bytes"), msg)
	return transcript
}

// Type returns Sr25519Type.
func (*Keypair) Type() crypto.KeyType {
	return crypto.Sr25519Type
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

// Sign signs msg in the substrate signing context.
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	sig, err := k.key.Sign(signingTranscript(msg))
	if err != nil {
		return nil, err
	}

	encoded := sig.Encode()
	return encoded[:], nil
}

// Public returns the public key of the private key.
func (k *PrivateKey) Public() (crypto.PublicKey, error) {
	pub, err := k.key.Public()
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: pub}, nil
}

// Encode returns the 32 bytes secret key.
func (k *PrivateKey) Encode() []byte {
	enc := k.key.Encode()
	return enc[:]
}

// Decode decodes a 32 bytes secret key.
func (k *PrivateKey) Decode(in []byte) error {
	if len(in) != SeedLength {
		return ErrInvalidSeedLength
	}

	b := [SeedLength]byte{}
	copy(b[:], in)
	k.key = &sr25519.SecretKey{}
	return k.key.Decode(b)
}

// Hex returns the hex encoded private key.
func (k *PrivateKey) Hex() string {
	return common.BytesToHex(k.Encode())
}

// Verify verifies a sr25519 signature of msg.
func (k *PublicKey) Verify(msg, sig []byte) (bool, error) {
	if len(sig) != SignatureLength {
		return false, ErrInvalidSignatureLength
	}

	b := [SignatureLength]byte{}
	copy(b[:], sig)
	s := &sr25519.Signature{}
	err := s.Decode(b)
	if err != nil {
		return false, err
	}

	return k.key.Verify(s, signingTranscript(msg))
}

// Encode returns the 32 bytes public key.
func (k *PublicKey) Encode() []byte {
	enc := k.key.Encode()
	return enc[:]
}

// Decode decodes a 32 bytes public key.
func (k *PublicKey) Decode(in []byte) error {
	if len(in) != PublicKeyLength {
		return ErrInvalidPublicKeyLength
	}

	b := [PublicKeyLength]byte{}
	copy(b[:], in)
	k.key = &sr25519.PublicKey{}
	return k.key.Decode(b)
}

// Hex returns the hex encoded public key.
func (k *PublicKey) Hex() string {
	return common.BytesToHex(k.Encode())
}
