// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration file.

package defaults

import "embed"

//go:embed texelpaint.json
var fs embed.FS

// SystemConfig returns the embedded config JSON.
func SystemConfig() ([]byte, error) {
	return fs.ReadFile("texelpaint.json")
}
