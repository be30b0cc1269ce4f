// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// SignatureScheme is the variant of a MultiSignature.
type SignatureScheme uint8

const (
	SchemeEd25519 SignatureScheme = iota
	SchemeSr25519
	SchemeEcdsa
)

func (s SignatureScheme) String() string {
	switch s {
	case SchemeEd25519:
		return "ed25519"
	case SchemeSr25519:
		return "sr25519"
	case SchemeEcdsa:
		return "ecdsa"
	default:
		return "unknown"
	}
}

// MultiSignature is a signature from one of the supported schemes.
// Ed25519 and sr25519 signatures are 64 bytes long, ECDSA signatures
// are 65 bytes long with the recovery id last.
type MultiSignature struct {
	Scheme    SignatureScheme
	Signature []byte
}

// NewSr25519Signature returns a sr25519 multi signature.
func NewSr25519Signature(signature [64]byte) MultiSignature {
	return MultiSignature{Scheme: SchemeSr25519, Signature: signature[:]}
}

// NewEd25519Signature returns an ed25519 multi signature.
func NewEd25519Signature(signature [64]byte) MultiSignature {
	return MultiSignature{Scheme: SchemeEd25519, Signature: signature[:]}
}

// NewEcdsaSignature returns an ECDSA multi signature.
func NewEcdsaSignature(signature [65]byte) MultiSignature {
	return MultiSignature{Scheme: SchemeEcdsa, Signature: signature[:]}
}

func (s MultiSignature) length() int {
	if s.Scheme == SchemeEcdsa {
		return 65
	}
	return 64
}

// Encode implements the gsrpc Encodeable interface, writing the
// variant index followed by the fixed size signature.
func (s MultiSignature) Encode(encoder scale.Encoder) error {
	if len(s.Signature) != s.length() {
		return ErrInvalidLength
	}

	err := encoder.PushByte(byte(s.Scheme))
	if err != nil {
		return err
	}
	return encoder.Write(s.Signature)
}

// Decode implements the gsrpc Decodeable interface.
func (s *MultiSignature) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	s.Scheme = SignatureScheme(b)
	if s.Scheme > SchemeEcdsa {
		return scale.UnknownVariantError("MultiSignature", b)
	}

	s.Signature = make([]byte, s.length())
	return decoder.Read(s.Signature)
}
