// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package keystore holds the well known development key pairs.
package keystore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto/ed25519"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto/signature"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/crypto/sr25519"
)

// ErrUnknownAccount is returned when no development account has the name.
var ErrUnknownAccount = errors.New("unknown development account")

// Names of the development accounts, in keyring order.
var Names = []string{"alice", "bob", "charlie", "dave", "eve", "ferdie", "george", "heather", "ian"}

// private keys generated using `subkey inspect //Name`
var sr25519PrivateKeys = []string{
	"0xe5be9a5092b81bca64be81d212e7f2f9eba183bb7a90954f7b76361f6edb5c0a",
	"0x398f0c28f98885e046333d4a41c19cee4c37368a9832c6502f6cfd182e2aef89",
	"0xbc1ede780f784bb6991a585e4f6e61522c14e1cae6ad0895fb57b9a205a8f938",
	"0x868020ae0687dda7d57565093a69090211449845a7e11453612800b663307246",
	"0x786ad0e2df456fe43dd1f91ebca22e235bc162e0bb8d53c633e8c85b2af68b7a",
	"0x42438b7883391c05512a938e36c2df0131e088b3756d6aa7a755fbff19d2f842",
	"0xcdb035129162df39b70e604ab75162084e176f48897cdafb7d72c4a542a86dda",
	"0x51079fc9e1817f8d4f245d66b325a94d9cafdb8691acbfe85415dce3ae7a62b9",
	"0x7c04eea9d31ce0d9ee256d7c561dc29f20d1119a125e95713c967dcd8d14f22d",
}

var ed25519PrivateKeys = []string{
	"0xabf8e5bdbe30c65656c0a3cbd181ff8a56294a69dfedd27982aace4a76909115",
	"0x3b7b60af2abcd57ba401ab398f84f4ca54bd6b2140d2503fbcf3286535fe3ff1",
	"0x072c02fa1409dc37e03a4ed01703d4a9e6bba9c228a49a00366e9630a97cba7c",
	"0x771f47d3caf8a2ee40b0719e1c1ecbc01d73ada220cf08df12a00453ab703738",
	"0xbef5a3cd63dd36ab9792364536140e5a0cce6925969940c431934de056398556",
	"0x1441e38eb309b66e9286867a5cd05902b05413eb9723a685d4d77753d73d0a1d",
	"0x583b887078cbae4b6ac6fbee324c3d2c16f3a1f8bf18f0d234de3ac33baa4470",
	"0xb8f3de627932e28914f3bc4bc3d7d2fc95c1f95c7915343d79df68d8250de180",
	"0xfd9f15cac5ffd14ed08914c200b1744ab00bdddf45e86cd13ccf9585ffa0e3ce",
}

// Keyring is a set of named development key pairs of one scheme.
type Keyring struct {
	keys     []crypto.Keypair
	accounts []types.AccountID
}

// NewSr25519Keyring returns the sr25519 development keyring.
func NewSr25519Keyring() (*Keyring, error) {
	return newKeyring(sr25519PrivateKeys, func(seed []byte) (crypto.Keypair, error) {
		return sr25519.NewKeypairFromSeed(seed)
	})
}

// NewEd25519Keyring returns the ed25519 development keyring.
func NewEd25519Keyring() (*Keyring, error) {
	return newKeyring(ed25519PrivateKeys, func(seed []byte) (crypto.Keypair, error) {
		return ed25519.NewKeypairFromSeed(seed)
	})
}

func newKeyring(seeds []string, fromSeed func(seed []byte) (crypto.Keypair, error)) (*Keyring, error) {
	kr := &Keyring{
		keys:     make([]crypto.Keypair, len(seeds)),
		accounts: make([]types.AccountID, len(seeds)),
	}

	for i, hexSeed := range seeds {
		seed, err := common.HexToBytes(hexSeed)
		if err != nil {
			return nil, fmt.Errorf("decoding seed of %s: %w", Names[i], err)
		}

		kr.keys[i], err = fromSeed(seed)
		if err != nil {
			return nil, fmt.Errorf("creating key pair of %s: %w", Names[i], err)
		}

		kr.accounts[i], err = signature.AccountFromKeypair(kr.keys[i])
		if err != nil {
			return nil, err
		}
	}

	return kr, nil
}

func indexOf(name string) (int, error) {
	name = strings.ToLower(name)
	for i, n := range Names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownAccount, name)
}

// Keypair returns the key pair of the account with the name given,
// case insensitively.
func (kr *Keyring) Keypair(name string) (crypto.Keypair, error) {
	i, err := indexOf(name)
	if err != nil {
		return nil, err
	}
	return kr.keys[i], nil
}

// Account returns the account ID of the named account.
func (kr *Keyring) Account(name string) (types.AccountID, error) {
	i, err := indexOf(name)
	if err != nil {
		return types.AccountID{}, err
	}
	return kr.accounts[i], nil
}

// Name returns the name of the account, if it belongs to the keyring.
func (kr *Keyring) Name(account types.AccountID) (name string, ok bool) {
	for i, a := range kr.accounts {
		if a == account {
			return Names[i], true
		}
	}
	return "", false
}

// ResolveAccount returns the account of the development account named s,
// or parses s as a hex encoded account ID.
func (kr *Keyring) ResolveAccount(s string) (types.AccountID, error) {
	account, err := kr.Account(s)
	if err == nil {
		return account, nil
	}

	account, parseErr := types.ParseAccountID(s)
	if parseErr != nil {
		return account, fmt.Errorf("%w: %s", err, parseErr)
	}
	return account, nil
}
