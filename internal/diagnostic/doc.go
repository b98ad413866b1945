// Package diagnostic provides structured warnings and errors produced while
// compiling feature descriptors.
//
// Key capabilities:
//   - Recoverable warnings tied to a feature and a node path
//   - Fatal errors aggregated into one human-readable message
//   - Emission of everything collected through a slog.Logger
package diagnostic
