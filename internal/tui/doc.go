// Package tui provides console output for gitscript.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Optional rotating file logs (using lumberjack)
//   - Terminal styling and colors (using lipgloss)
package tui
