// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"sort"

	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// SignerType is the kind of key behind a signing item.
type SignerType uint8

const (
	SignerTypeExternal SignerType = iota
	SignerTypeIdentity
	SignerTypeMultiSig
	SignerTypeRelayer
)

func (t SignerType) String() string {
	switch t {
	case SignerTypeExternal:
		return "External"
	case SignerTypeIdentity:
		return "Identity"
	case SignerTypeMultiSig:
		return "MultiSig"
	case SignerTypeRelayer:
		return "Relayer"
	default:
		return "Unknown"
	}
}

// Permission is a permission granted to a signing item.
type Permission uint8

const (
	PermissionFull Permission = iota
	PermissionAdmin
	PermissionOperator
	PermissionSpendFunds
)

// SigningItem is a signer allowed to act on behalf of an identity.
type SigningItem struct {
	Signer      Signatory
	SignerType  SignerType
	Permissions []Permission
}

// NewSigningItemFromAccount returns an external signing item with
// full permissions for the account given.
func NewSigningItemFromAccount(account AccountID) SigningItem {
	return SigningItem{
		Signer:      NewAccountSignatory(account),
		SignerType:  SignerTypeExternal,
		Permissions: []Permission{PermissionFull},
	}
}

// NewSigningItemFromIdentity returns an identity signing item with
// full permissions for the identity given.
func NewSigningItemFromIdentity(id IdentityID) SigningItem {
	return SigningItem{
		Signer:      NewIdentitySignatory(id),
		SignerType:  SignerTypeIdentity,
		Permissions: []Permission{PermissionFull},
	}
}

// HasPermission returns true if the item holds the full permission
// or the permission given.
func (si SigningItem) HasPermission(permission Permission) bool {
	for _, p := range si.Permissions {
		if p == PermissionFull || p == permission {
			return true
		}
	}
	return false
}

// Equal compares two signing items including their permissions.
func (si SigningItem) Equal(other SigningItem) bool {
	if si.Signer != other.Signer || si.SignerType != other.SignerType ||
		len(si.Permissions) != len(other.Permissions) {
		return false
	}
	for i := range si.Permissions {
		if si.Permissions[i] != other.Permissions[i] {
			return false
		}
	}
	return true
}

// NormalisePermissions sorts and deduplicates permissions.
func NormalisePermissions(permissions []Permission) []Permission {
	normalised := make([]Permission, 0, len(permissions))
	seen := make(map[Permission]struct{}, len(permissions))
	for _, p := range permissions {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		normalised = append(normalised, p)
	}
	sort.Slice(normalised, func(i, j int) bool { return normalised[i] < normalised[j] })
	return normalised
}

// SigningItemWithAuth is a signing item with the signature of its signer
// over the encoded off-chain authorization.
type SigningItemWithAuth struct {
	SigningItem   SigningItem
	AuthSignature MultiSignature
}

// PreAuthorizedKeyInfo is a signing item waiting for its signer to join
// the target identity.
type PreAuthorizedKeyInfo struct {
	TargetID    IdentityID
	SigningItem SigningItem
}

// DidRecord is the key set of an identity.
type DidRecord struct {
	MasterKey    AccountID
	SigningItems []SigningItem
}

// FindSigningItem returns the index of the signing item with the signer
// given, or -1 if not found.
func (r DidRecord) FindSigningItem(signer Signatory) int {
	for i, item := range r.SigningItems {
		if item.Signer == signer {
			return i
		}
	}
	return -1
}

// AddSigningItems appends the items not already present, replacing
// the permissions of those with a matching signer.
func (r *DidRecord) AddSigningItems(items []SigningItem) {
	for _, item := range items {
		if i := r.FindSigningItem(item.Signer); i >= 0 {
			r.SigningItems[i] = item
			continue
		}
		r.SigningItems = append(r.SigningItems, item)
	}
}

// RemoveSigningItems removes the signing items of the signers given.
func (r *DidRecord) RemoveSigningItems(signers []Signatory) {
	kept := r.SigningItems[:0]
	for _, item := range r.SigningItems {
		remove := false
		for _, signer := range signers {
			if item.Signer == signer {
				remove = true
				break
			}
		}
		if !remove {
			kept = append(kept, item)
		}
	}
	r.SigningItems = kept
}

// LinkedKeyKind is the variant of LinkedKeyInfo.
type LinkedKeyKind uint8

const (
	LinkedKeyUnique LinkedKeyKind = iota
	LinkedKeyGroup
)

// LinkedKeyInfo records the identities an account key is linked to.
// External keys are linked to a unique identity, other signer types may
// be shared by a group of identities, kept sorted.
type LinkedKeyInfo struct {
	Kind   LinkedKeyKind
	Unique IdentityID
	Group  []IdentityID
}

// Encode implements the gsrpc Encodeable interface.
func (l LinkedKeyInfo) Encode(encoder scale.Encoder) error {
	if l.Kind == LinkedKeyGroup {
		return scale.EncodeVariant(encoder, byte(LinkedKeyGroup), l.Group)
	}
	return scale.EncodeVariant(encoder, byte(LinkedKeyUnique), l.Unique)
}

// Decode implements the gsrpc Decodeable interface.
func (l *LinkedKeyInfo) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	*l = LinkedKeyInfo{Kind: LinkedKeyKind(b)}
	switch l.Kind {
	case LinkedKeyUnique:
		return decoder.Decode(&l.Unique)
	case LinkedKeyGroup:
		return decoder.Decode(&l.Group)
	default:
		return scale.UnknownVariantError("LinkedKeyInfo", b)
	}
}
