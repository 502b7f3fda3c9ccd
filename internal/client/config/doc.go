// Package config loads runtime configuration for the DreamHost CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via the -c or -config flags.
//  3. Command-line flags, which override earlier values.
package config
