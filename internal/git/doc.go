// Package git provides subprocess execution for version-control commands.
//
// Command strings built by the dispatcher are split into argv with shell
// quoting rules and executed directly, without a shell. A leading "git"
// is replaced by the configured binary.
//
// This package should be the only place where commands are executed.
package git
