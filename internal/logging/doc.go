// Package logging constructs the slog loggers used across docpatch.
//
// Two output formats are supported: a console handler that writes aligned
// human-readable lines for interactive batch runs, and a JSON handler for
// machine consumption. Options mirror the [logging] config section; use
// NewFromConfig so the CLI and batch driver agree on format and level.
package logging
