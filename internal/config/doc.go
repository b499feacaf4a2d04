// Package config loads, normalizes, and validates manifest tool settings.
//
// The tool needs no configuration to run: Default() reproduces the fixed
// behavior exactly, and Load only layers overrides on top when the target
// directory contains a manifest.toml. Always obtain settings through this
// package so downstream code receives trimmed filenames, canonical log
// formats, and clear validation errors.
package config
