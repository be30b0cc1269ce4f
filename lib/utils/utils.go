// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package utils

import (
	"os"
	"os/user"
	"path"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultDatabaseDir directory inside basepath where database contents are stored
const DefaultDatabaseDir = "db"

// DatabaseDir returns the database directory inside the basepath given.
func DatabaseDir(basepath string) string {
	return filepath.Join(ExpandDir(basepath), DefaultDatabaseDir)
}

// PathExists returns true if the named file or directory exists, otherwise false
func PathExists(p string) bool {
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// HomeDir returns the user's current HOME directory
func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// ExpandDir expands a tilde prefix path to a full home path
func ExpandDir(targetPath string) string {
	if strings.HasPrefix(targetPath, "~\\") || strings.HasPrefix(targetPath, "~/") {
		if homeDir := HomeDir(); homeDir != "" {
			targetPath = homeDir + targetPath[1:]
		}
	} else if strings.HasPrefix(targetPath, ".\\") || strings.HasPrefix(targetPath, "./") {
		targetPath, _ = filepath.Abs(targetPath)
	}
	return path.Clean(os.ExpandEnv(targetPath))
}

// BasePath returns the data directory of the given chain name in the
// polymesh directory of the user's HOME directory, or the name itself
// when HOME cannot be found.
func BasePath(name string) string {
	home := HomeDir()
	if home == "" {
		return name
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Polymesh", name)
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Polymesh", name)
	default:
		return filepath.Join(home, ".polymesh", name)
	}
}
