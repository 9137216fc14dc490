// Package common provides shared helper functions for CLI commands.
package common

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/possible-bj/gitscript/internal/dispatch"
	"github.com/possible-bj/gitscript/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()
	return fn(ctx)
}

// CompleteFlags is a helper for cobra.ValidArgsFunction that returns the
// supported flags, with a trailing "=" for the ones that take a value.
func CompleteFlags(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, def := range dispatch.Definitions() {
		name := def.Name
		if len(def.Arguments) > 0 {
			name += "="
		}
		if strings.HasPrefix(name, strings.ToLower(toComplete)) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
