// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// Module indices of the runtime calls.
const (
	ModuleSystem uint8 = iota
	ModuleBalances
	ModuleIdentity
	ModuleAsset
	ModuleMultiSig
	ModuleProtocolFee
	ModuleGroup
	ModulePips
	ModuleScheduler
)

// CallIndex identifies a dispatchable by module and method index.
type CallIndex struct {
	Module uint8
	Method uint8
}

func (c CallIndex) String() string {
	return fmt.Sprintf("%d.%d", c.Module, c.Method)
}

// Call is a dispatchable call. Its SCALE encoding is its call index
// followed by its SCALE encoded fields.
type Call interface {
	CallIndex() CallIndex
}

// EncodeCall returns the SCALE encoding of the call.
func EncodeCall(call Call) ([]byte, error) {
	index := call.CallIndex()
	args, err := scale.Marshal(call)
	if err != nil {
		return nil, fmt.Errorf("encoding call %s: %w", index, err)
	}

	buffer := bytes.NewBuffer(make([]byte, 0, 2+len(args)))
	buffer.WriteByte(index.Module)
	buffer.WriteByte(index.Method)
	buffer.Write(args)
	return buffer.Bytes(), nil
}

// MustEncodeCall is EncodeCall panicking on error.
func MustEncodeCall(call Call) []byte {
	encoded, err := EncodeCall(call)
	if err != nil {
		panic(err)
	}
	return encoded
}

// DecodeCallIndex splits an encoded call into its call index and
// encoded arguments.
func DecodeCallIndex(encoded []byte) (index CallIndex, args []byte, err error) {
	if len(encoded) < 2 {
		return index, nil, fmt.Errorf("%w: encoded call has %d bytes", ErrInvalidLength, len(encoded))
	}
	return CallIndex{Module: encoded[0], Method: encoded[1]}, encoded[2:], nil
}
