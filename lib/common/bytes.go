// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"strings"
)

// ErrNoPrefix is returned when trying to convert a hex-encoded string with no 0x prefix
var ErrNoPrefix = errors.New("could not byteify non 0x prefixed string")

// HexToBytes turns a 0x prefixed hex string into a byte slice
func HexToBytes(in string) ([]byte, error) {
	if !strings.HasPrefix(in, "0x") {
		return nil, ErrNoPrefix
	}

	in = in[2:]
	if len(in)%2 == 1 {
		in = "0" + in
	}
	return hex.DecodeString(in)
}

// MustHexToBytes turns a 0x prefixed hex string into a byte slice
// it panic if it cannot decode the string
func MustHexToBytes(in string) []byte {
	out, err := HexToBytes(in)
	if err != nil {
		panic(err)
	}
	return out
}

// BytesToHex turns a byte slice into a 0x prefixed hex string
func BytesToHex(in []byte) string {
	return "0x" + hex.EncodeToString(in)
}

// PadTo32 copies the input into a 32 bytes array, right padding with zeroes
// and truncating anything past 32 bytes.
func PadTo32(in []byte) (out [32]byte) {
	copy(out[:], in)
	return out
}

// CopyBytes returns a copy of the bytes given, or nil if in is nil.
func CopyBytes(in []byte) (out []byte) {
	if in == nil {
		return nil
	}
	out = make([]byte, len(in))
	copy(out, in)
	return out
}
