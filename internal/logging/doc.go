// Package logging provides logging utilities for appserver-setup.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for the operator running the setup
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("rendering template", "target", target, "mode", mode)
//	logging.Warn("cannot read marker directory", "dir", etcDir)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Detected %s (%s)", family, distro)
//	logging.UserSuccess("Wrote %s", target)
//	logging.UserWarning("Unknown Linux distribution found, use Debian default values")
//	logging.UserError("Setup failed: %v", err)
//
// Output destinations (swappable with SetOutput):
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// Indicators are colored with lipgloss when the destination is a terminal:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
