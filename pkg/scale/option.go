// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scale

import "fmt"

// Option is an optional value, encoded as 0x00 for None
// or 0x01 followed by the value for Some.
type Option[T any] struct {
	Some  bool
	Value T
}

// Some returns an option holding the value given.
func Some[T any](value T) Option[T] {
	return Option[T]{Some: true, Value: value}
}

// None returns an empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is set.
func (o Option[T]) Get() (value T, ok bool) {
	return o.Value, o.Some
}

// UnwrapOr returns the value if set, and the fallback otherwise.
func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.Some {
		return fallback
	}
	return o.Value
}

func (o Option[T]) String() string {
	if !o.Some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.Value)
}

// Encode implements the gsrpc Encodeable interface.
func (o Option[T]) Encode(encoder Encoder) error {
	if !o.Some {
		return encoder.PushByte(0)
	}

	err := encoder.PushByte(1)
	if err != nil {
		return err
	}
	return encoder.Encode(o.Value)
}

// Decode implements the gsrpc Decodeable interface.
func (o *Option[T]) Decode(decoder Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	switch b {
	case 0:
		*o = Option[T]{}
		return nil
	case 1:
		o.Some = true
		return decoder.Decode(&o.Value)
	default:
		return UnknownVariantError("Option", b)
	}
}
