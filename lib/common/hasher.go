// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/crypto/blake2b"
)

// Blake2b128 returns the 128-bit blake2b hash of the input data
func Blake2b128(in []byte) ([]byte, error) {
	h, err := blake2b.New(16, nil)
	if err != nil {
		return nil, err
	}

	_, err = h.Write(in)
	if err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}

// Blake2bHash returns the 256-bit blake2b hash of the input data
func Blake2bHash(in []byte) (Hash, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return [32]byte{}, err
	}

	_, err = h.Write(in)
	if err != nil {
		return [32]byte{}, err
	}

	hash := h.Sum(nil)
	var buf = [32]byte{}
	copy(buf[:], hash)
	return buf, nil
}

// MustBlake2bHash returns the 256-bit blake2b hash of the input data. It panics if it fails to hash.
func MustBlake2bHash(in []byte) Hash {
	hash, err := Blake2bHash(in)
	if err != nil {
		panic(err)
	}

	return hash
}

// Twox64 returns the xx64 hash of the input data
func Twox64(in []byte) ([]byte, error) {
	hasher := xxhash.NewS64(0)
	_, err := hasher.Write(in)
	if err != nil {
		return nil, err
	}

	res := hasher.Sum64()
	hash := make([]byte, 8)
	binary.LittleEndian.PutUint64(hash, res)
	return hash, nil
}

// Twox128Hash computes xxHash64 twice with seeds 0 and 1 applied on given byte array
func Twox128Hash(msg []byte) ([]byte, error) {
	hash := make([]byte, 0, 16)
	for seed := uint64(0); seed < 2; seed++ {
		h := xxhash.NewS64(seed)
		_, err := h.Write(msg)
		if err != nil {
			return nil, err
		}
		hash = binary.LittleEndian.AppendUint64(hash, h.Sum64())
	}
	return hash, nil
}

// MustTwox128Hash is Twox128Hash panicking on error.
func MustTwox128Hash(msg []byte) []byte {
	hash, err := Twox128Hash(msg)
	if err != nil {
		panic(err)
	}
	return hash
}

// StorageHasher hashes an encoded storage map key.
type StorageHasher func(encodedKey []byte) []byte

// Twox64Concat is the storage hasher appending the raw key to its xx64 hash.
func Twox64Concat(encodedKey []byte) []byte {
	hash, err := Twox64(encodedKey)
	if err != nil {
		panic(err)
	}
	return append(hash, encodedKey...)
}

// Blake2128Concat is the storage hasher appending the raw key to its
// 128 bits blake2b hash.
func Blake2128Concat(encodedKey []byte) []byte {
	hash, err := Blake2b128(encodedKey)
	if err != nil {
		panic(err)
	}
	return append(hash, encodedKey...)
}

// Identity is the storage hasher leaving the key untouched.
func Identity(encodedKey []byte) []byte {
	key := make([]byte, len(encodedKey))
	copy(key, encodedKey)
	return key
}

// HashedKeyLength returns the length of the hash prepended by the
// given concat hasher, so that the raw key can be recovered.
func HashedKeyLength(hasher StorageHasher) int {
	return len(hasher(nil))
}
