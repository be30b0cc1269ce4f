// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package scale wraps the go-substrate-rpc-client SCALE codec with
// byte slice helpers and the generic types the runtime storage needs.
package scale

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	gsrpcscale "github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Encoder is the SCALE encoder handed to custom Encode methods.
type Encoder = gsrpcscale.Encoder

// Decoder is the SCALE decoder handed to custom Decode methods.
type Decoder = gsrpcscale.Decoder

var (
	ErrTrailingBytes      = errors.New("trailing bytes after decoding")
	ErrUnknownVariant     = errors.New("unknown variant index")
	ErrLengthTooLarge     = errors.New("encoded length too large")
	ErrDecodingNilPointer = errors.New("cannot decode into nil pointer")
)

// Marshal SCALE encodes the value given.
func Marshal(v interface{}) (b []byte, err error) {
	buffer := bytes.NewBuffer(nil)
	err = gsrpcscale.NewEncoder(buffer).Encode(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", v, err)
	}
	return buffer.Bytes(), nil
}

// MustMarshal is Marshal panicking on error. It is only meant for
// types known to be encodable, such as storage keys.
func MustMarshal(v interface{}) []byte {
	b, err := Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// Unmarshal SCALE decodes data into dst, which must be a non nil pointer.
// All of data must be consumed.
func Unmarshal(data []byte, dst interface{}) (err error) {
	if dst == nil {
		return ErrDecodingNilPointer
	}

	reader := bytes.NewReader(data)
	err = gsrpcscale.NewDecoder(reader).Decode(dst)
	if err != nil {
		return fmt.Errorf("decoding %T: %w", dst, err)
	}

	if reader.Len() > 0 {
		return fmt.Errorf("%w: %d bytes left decoding %T", ErrTrailingBytes, reader.Len(), dst)
	}
	return nil
}

// UnmarshalPrefix SCALE decodes the start of data into dst and returns
// the number of bytes consumed.
func UnmarshalPrefix(data []byte, dst interface{}) (consumed int, err error) {
	reader := bytes.NewReader(data)
	err = gsrpcscale.NewDecoder(reader).Decode(dst)
	if err != nil {
		return 0, fmt.Errorf("decoding %T: %w", dst, err)
	}
	return len(data) - reader.Len(), nil
}

// EncodeLength writes the compact length prefix of a collection.
func EncodeLength(encoder Encoder, length int) error {
	return encoder.EncodeUintCompact(*big.NewInt(int64(length)))
}

// DecodeLength reads a compact length prefix, refusing lengths above max.
func DecodeLength(decoder Decoder, max int) (length int, err error) {
	value, err := decoder.DecodeUintCompact()
	if err != nil {
		return 0, err
	}

	if !value.IsInt64() || value.Int64() > int64(max) {
		return 0, fmt.Errorf("%w: %s", ErrLengthTooLarge, value)
	}
	return int(value.Int64()), nil
}

// EncodeVariant writes the variant index of a sum type followed by its
// payload, if any.
func EncodeVariant(encoder Encoder, index byte, payload interface{}) error {
	err := encoder.PushByte(index)
	if err != nil {
		return err
	}

	if payload == nil {
		return nil
	}
	return encoder.Encode(payload)
}

// UnknownVariantError returns an error wrapping ErrUnknownVariant.
func UnknownVariantError(typeName string, index byte) error {
	return fmt.Errorf("%w: %d for %s", ErrUnknownVariant, index, typeName)
}
