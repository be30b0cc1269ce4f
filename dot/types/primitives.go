// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
)

// IdentityID is the opaque 32 bytes handle of an on-chain identity.
type IdentityID [32]byte

// AccountID is the 32 bytes public key or hash of an account key.
type AccountID [32]byte

// Ticker is the right zero padded symbol of an asset.
type Ticker [12]byte

// Balance is an amount of the native token.
type Balance uint64

// Moment is a timestamp in milliseconds.
type Moment uint64

// BlockNumber is the number of a block.
type BlockNumber uint32

// NewIdentityID returns an identity ID from the bytes given,
// right padded with zeroes.
func NewIdentityID(b []byte) IdentityID {
	return IdentityID(common.PadTo32(b))
}

// IdentityIDFromUint64 returns the identity ID with the big endian
// representation of n in its last bytes. It is used for systematic
// and test identities.
func IdentityIDFromUint64(n uint64) (id IdentityID) {
	for i := 0; i < 8; i++ {
		id[31-i] = byte(n >> (8 * i))
	}
	return id
}

// ParseIdentityID parses a 0x prefixed hex identity ID.
func ParseIdentityID(s string) (id IdentityID, err error) {
	b, err := common.HexToBytes(s)
	if err != nil {
		return id, fmt.Errorf("parsing identity id: %w", err)
	}
	if len(b) != len(id) {
		return id, fmt.Errorf("%w: identity id has %d bytes", ErrInvalidLength, len(b))
	}
	copy(id[:], b)
	return id, nil
}

func (id IdentityID) String() string {
	return common.BytesToHex(id[:])
}

// IsZero returns true if the identity ID is all zeroes.
func (id IdentityID) IsZero() bool {
	return id == IdentityID{}
}

// Compare returns the lexicographic comparison of the two identity IDs.
func (id IdentityID) Compare(other IdentityID) int {
	return bytes.Compare(id[:], other[:])
}

// ParseAccountID parses a 0x prefixed hex account ID.
func ParseAccountID(s string) (account AccountID, err error) {
	b, err := common.HexToBytes(s)
	if err != nil {
		return account, fmt.Errorf("parsing account id: %w", err)
	}
	if len(b) != len(account) {
		return account, fmt.Errorf("%w: account id has %d bytes", ErrInvalidLength, len(b))
	}
	copy(account[:], b)
	return account, nil
}

func (a AccountID) String() string {
	return common.BytesToHex(a[:])
}

// Short returns the first and last 4 bytes of the hex account ID.
func (a AccountID) Short() string {
	return fmt.Sprintf("0x%x...%x", a[:4], a[28:])
}

// NewTicker returns the ticker for the symbol given, upper cased.
// Symbols longer than 12 bytes are refused.
func NewTicker(symbol string) (ticker Ticker, err error) {
	if symbol == "" || len(symbol) > len(ticker) {
		return ticker, fmt.Errorf("%w: ticker %q", ErrInvalidLength, symbol)
	}
	copy(ticker[:], strings.ToUpper(symbol))
	return ticker, nil
}

// MustNewTicker is NewTicker panicking on error.
func MustNewTicker(symbol string) Ticker {
	ticker, err := NewTicker(symbol)
	if err != nil {
		panic(err)
	}
	return ticker
}

func (t Ticker) String() string {
	return string(bytes.TrimRight(t[:], "\x00"))
}

// CheckedAdd returns b + other or false on overflow.
func (b Balance) CheckedAdd(other Balance) (sum Balance, ok bool) {
	sum = b + other
	return sum, sum >= b
}

// CheckedSub returns b - other or false on underflow.
func (b Balance) CheckedSub(other Balance) (difference Balance, ok bool) {
	if other > b {
		return 0, false
	}
	return b - other, true
}

// SaturatingSub returns b - other or zero on underflow.
func (b Balance) SaturatingSub(other Balance) Balance {
	if other > b {
		return 0
	}
	return b - other
}

// SaturatingAdd returns b + other or the maximum balance on overflow.
func (b Balance) SaturatingAdd(other Balance) Balance {
	sum, ok := b.CheckedAdd(other)
	if !ok {
		return ^Balance(0)
	}
	return sum
}

// SaturatingAdd returns n + other or the maximum block number on overflow.
func (n BlockNumber) SaturatingAdd(other BlockNumber) BlockNumber {
	sum := n + other
	if sum < n {
		return ^BlockNumber(0)
	}
	return sum
}

// SaturatingAdd returns m + other or the maximum moment on overflow.
func (m Moment) SaturatingAdd(other Moment) Moment {
	sum := m + other
	if sum < m {
		return ^Moment(0)
	}
	return sum
}
