// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

// Systematic identities act on behalf of committees and the chain itself.
var (
	GovernanceCommitteeDID = NewIdentityID([]byte("system:governance_committee"))
	TechnicalCommitteeDID  = NewIdentityID([]byte("system:technical_committee"))
	UpgradeCommitteeDID    = NewIdentityID([]byte("system:upgrade_committee"))
)

// UserDIDTag prefixes the preimage of user identity IDs.
var UserDIDTag = [8]byte{'U', 'S', 'E', 'R', 0, 0, 0, 0}
