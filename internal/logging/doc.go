// Package logging assembles structured slog loggers used across isorip.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so every record emitted during a run
// carries the run identifier. A no-op logger is provided for tests and wiring
// code that cannot fail.
package logging
