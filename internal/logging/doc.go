// Package logging assembles the structured slog loggers used across attest.
//
// It owns the console and JSON handlers and centralizes level and output
// plumbing. The package also provides a no-op logger for tests and for
// components that accept an optional logger.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits log lines with the same shape.
package logging
