// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelpaint configuration.

package config

import (
	"os"
	"path/filepath"
)

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelpaint"), nil
}

// Path returns the file the store reads and writes.
func Path() (string, error) {
	mu.RLock()
	defer mu.RUnlock()
	return systemConfigPath()
}

// systemConfigPath expects mu to be held.
func systemConfigPath() (string, error) {
	if override != "" {
		return override, nil
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}
