// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"

	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// SignatoryKind is the variant of a Signatory.
type SignatoryKind uint8

const (
	// SignatoryIdentity is an identity signatory.
	SignatoryIdentity SignatoryKind = iota
	// SignatoryAccount is an account key signatory.
	SignatoryAccount
)

// Signatory is either an identity or an account key.
// The zero value is the zero identity.
type Signatory struct {
	Kind     SignatoryKind
	Identity IdentityID
	Account  AccountID
}

// NewIdentitySignatory returns the identity signatory for the identity given.
func NewIdentitySignatory(id IdentityID) Signatory {
	return Signatory{Kind: SignatoryIdentity, Identity: id}
}

// NewAccountSignatory returns the account signatory for the account given.
func NewAccountSignatory(account AccountID) Signatory {
	return Signatory{Kind: SignatoryAccount, Account: account}
}

// AsIdentity returns the identity and true if the signatory is an identity.
func (s Signatory) AsIdentity() (id IdentityID, ok bool) {
	return s.Identity, s.Kind == SignatoryIdentity
}

// AsAccount returns the account and true if the signatory is an account.
func (s Signatory) AsAccount() (account AccountID, ok bool) {
	return s.Account, s.Kind == SignatoryAccount
}

// EqEither returns true if the signatory is the identity or the account given.
func (s Signatory) EqEither(id IdentityID, account AccountID) bool {
	switch s.Kind {
	case SignatoryIdentity:
		return s.Identity == id
	case SignatoryAccount:
		return s.Account == account
	default:
		return false
	}
}

// Compare orders identities before accounts, then by bytes.
func (s Signatory) Compare(other Signatory) int {
	if s.Kind != other.Kind {
		if s.Kind < other.Kind {
			return -1
		}
		return 1
	}
	if s.Kind == SignatoryIdentity {
		return bytes.Compare(s.Identity[:], other.Identity[:])
	}
	return bytes.Compare(s.Account[:], other.Account[:])
}

func (s Signatory) String() string {
	if s.Kind == SignatoryAccount {
		return "Account(" + s.Account.String() + ")"
	}
	return "Identity(" + s.Identity.String() + ")"
}

// Encode implements the gsrpc Encodeable interface.
func (s Signatory) Encode(encoder scale.Encoder) error {
	switch s.Kind {
	case SignatoryAccount:
		return scale.EncodeVariant(encoder, byte(SignatoryAccount), s.Account)
	default:
		return scale.EncodeVariant(encoder, byte(SignatoryIdentity), s.Identity)
	}
}

// Decode implements the gsrpc Decodeable interface.
func (s *Signatory) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	*s = Signatory{Kind: SignatoryKind(b)}
	switch s.Kind {
	case SignatoryIdentity:
		return decoder.Decode(&s.Identity)
	case SignatoryAccount:
		return decoder.Decode(&s.Account)
	default:
		return scale.UnknownVariantError("Signatory", b)
	}
}
