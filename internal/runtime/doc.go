// Package runtime provides the execution context for gitscript.
//
// It bundles the configuration, logger and command runner needed by a
// single invocation so CLI commands receive one value instead of many.
package runtime
