// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// Version identifies the runtime and the encoding of its calls.
// Proposals record the transaction version they were made with.
type Version struct {
	SpecName           []byte
	ImplName           []byte
	SpecVersion        uint32
	ImplVersion        uint32
	TransactionVersion uint32
}

// DefaultVersion is the version of this runtime.
var DefaultVersion = Version{
	SpecName:           []byte("polymesh"),
	ImplName:           []byte("polymesh-go"),
	SpecVersion:        2000,
	ImplVersion:        0,
	TransactionVersion: 1,
}

// Encode returns the SCALE encoding of the version.
func (v Version) Encode() ([]byte, error) {
	return scale.Marshal(v)
}

func (v Version) String() string {
	return fmt.Sprintf("%s/%s v%d.%d (transaction version %d)",
		v.SpecName, v.ImplName, v.SpecVersion, v.ImplVersion, v.TransactionVersion)
}
