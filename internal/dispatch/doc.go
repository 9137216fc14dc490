// Package dispatch turns gitscript's command-line tokens into git commands.
//
// A run is one linear pass: ValidateFlags checks every token against the flag
// table, ParseAndDispatch builds the command strings into a Table, and an
// Executor runs them. Nothing executes unless the whole token list parses.
package dispatch
