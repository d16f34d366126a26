// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values filled into missing configuration keys.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("canvas", Section{
		"background":   "#ffffff",
		"save_dir":     ".",
		"default_name": "picture.png",
	})
	cfg.RegisterDefaults("theme", Section{
		"window":    "#2e3440",
		"toolbar":   "#3b4252",
		"button":    "#4c566a",
		"accent":    "#88c0d0",
		"text":      "#eceff4",
		"dialog":    "#434c5e",
		"highlight": "#5e81ac",
	})
	cfg.RegisterDefaults("instruments", Section{
		"max_thickness": 40,
		"thickness":     0.0,
		"initial":       "rect",
		"color":         "#000000",
	})
	cfg.RegisterDefaults("log", Section{
		"file":         "texelpaint.log",
		"trace_pubsub": false,
	})
}
