// Package logging constructs the slog loggers used across the tool.
//
// Two formats are supported: a compact console format for interactive use
// and line-delimited JSON for machine consumption. Log output goes to
// stderr so stdout stays reserved for the run summary.
package logging
