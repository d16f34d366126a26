// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Clone helpers for config maps.

package config

// Clone returns a copy of the config and its sections.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	clone := make(Config, len(cfg))
	for sectionName, section := range cfg {
		switch v := section.(type) {
		case map[string]interface{}:
			clone[sectionName] = cloneSection(v)
		case Section:
			clone[sectionName] = cloneSection(v)
		default:
			clone[sectionName] = v
		}
	}
	return clone
}

func cloneSection(in map[string]interface{}) Section {
	out := make(Section, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
