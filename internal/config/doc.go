// Package config loads, normalizes, and validates docpatch configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files so the CLI and batch driver receive
// sanitized directories, a canonical media prefix, and clear validation
// errors. Obtain settings through Load rather than reading files directly.
package config
