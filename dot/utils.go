// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	ctoml "github.com/PolymeshAssociation/Polymesh-sub002/dot/config/toml"
	"github.com/cosmos/go-bip39"
	"github.com/naoina/toml"
)

// ExportTomlConfig exports a toml configuration to the file path given
func ExportTomlConfig(cfg *ctoml.Config, fp string) error {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(fp, raw, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// LoadTomlConfig decodes the toml configuration file at the path given
func LoadTomlConfig(fp string, cfg *ctoml.Config) error {
	raw, err := os.ReadFile(fp)
	if err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}
	if err = toml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("failed to decode configuration file %s: %w", fp, err)
	}
	return nil
}

// RandomNodeName generates a new random name if there is no name configured for the node
func RandomNodeName() string {
	entropy, _ := bip39.NewEntropy(128)
	randomNamesString, _ := bip39.NewMnemonic(entropy)
	randomNames := strings.Split(randomNamesString, " ")
	number := binary.BigEndian.Uint16(entropy)
	return randomNames[0] + "-" + randomNames[1] + "-" + fmt.Sprint(number)
}
