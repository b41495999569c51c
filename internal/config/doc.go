// Package config loads and validates attest's TOML configuration.
//
// Configuration is optional: every field has a usable default, so the tool
// runs without a config file at all. Load resolves the file path (explicit
// flag, then ~/.config/attest/config.toml, then ./attest.toml), parses it,
// expands home-relative paths, and validates the result.
package config
