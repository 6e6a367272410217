// Package config loads the YAML configuration for proposal generation:
// agency brand, client defaults, cover and team overrides, asset directory,
// layout limits, output directory and the document date setting.
//
// A config is named ("agency") or given as a path ("./agency.yaml"). Names
// are searched in the current directory and then in ~/.config/go-proposal/.
// Unknown fields are rejected.
package config
