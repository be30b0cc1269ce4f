// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// OriginKind is the kind of authority a call is dispatched with.
type OriginKind uint8

const (
	OriginRoot OriginKind = iota
	OriginSigned
	OriginNone
	// OriginGovernanceCommittee is a voting majority of the governance committee.
	OriginGovernanceCommittee
	// OriginTechnicalCommittee is a voting majority of the technical committee.
	OriginTechnicalCommittee
	// OriginUpgradeCommittee is a voting majority of the upgrade committee.
	OriginUpgradeCommittee
)

func (k OriginKind) String() string {
	switch k {
	case OriginRoot:
		return "Root"
	case OriginSigned:
		return "Signed"
	case OriginNone:
		return "None"
	case OriginGovernanceCommittee:
		return "GovernanceCommittee"
	case OriginTechnicalCommittee:
		return "TechnicalCommittee"
	case OriginUpgradeCommittee:
		return "UpgradeCommittee"
	default:
		return "Unknown"
	}
}

// Origin is the authority a call is dispatched with. Account is the
// signer of a signed origin. For a committee origin it is the member
// whose transaction carried the committee decision, if any.
type Origin struct {
	Kind    OriginKind
	Account AccountID
}

// RootOrigin returns the root origin.
func RootOrigin() Origin {
	return Origin{Kind: OriginRoot}
}

// SignedOrigin returns the origin of a transaction signed by the account given.
func SignedOrigin(account AccountID) Origin {
	return Origin{Kind: OriginSigned, Account: account}
}

// CommitteeOrigin returns the voting majority origin of a committee.
func CommitteeOrigin(kind OriginKind) Origin {
	return Origin{Kind: kind}
}

// CommitteeOriginSubmittedBy returns the voting majority origin of a
// committee, carried by the transaction the account given signed.
func CommitteeOriginSubmittedBy(kind OriginKind, account AccountID) Origin {
	return Origin{Kind: kind, Account: account}
}

// Payer returns the account paying the protocol fees of calls made
// with the origin: the signer of a signed origin, or the submitter of
// a committee origin. Root and none origins have no payer.
func (o Origin) Payer() scale.Option[AccountID] {
	switch o.Kind {
	case OriginSigned:
		return scale.Some(o.Account)
	case OriginGovernanceCommittee, OriginTechnicalCommittee, OriginUpgradeCommittee:
		if o.Account == (AccountID{}) {
			return scale.None[AccountID]()
		}
		return scale.Some(o.Account)
	default:
		return scale.None[AccountID]()
	}
}

// EnsureSigned returns the signing account or ErrBadOrigin.
func (o Origin) EnsureSigned() (AccountID, error) {
	if o.Kind != OriginSigned {
		return AccountID{}, fmt.Errorf("%w: expected signed origin, got %s", ErrBadOrigin, o.Kind)
	}
	return o.Account, nil
}

// EnsureRoot returns ErrBadOrigin unless the origin is root.
func (o Origin) EnsureRoot() error {
	return o.EnsureKind(OriginRoot)
}

// EnsureKind returns ErrBadOrigin unless the origin is of the kind given.
func (o Origin) EnsureKind(kind OriginKind) error {
	if o.Kind != kind {
		return fmt.Errorf("%w: expected %s origin, got %s", ErrBadOrigin, kind, o.Kind)
	}
	return nil
}

func (o Origin) String() string {
	if o.Kind == OriginSigned {
		return "Signed(" + o.Account.Short() + ")"
	}
	return o.Kind.String()
}
