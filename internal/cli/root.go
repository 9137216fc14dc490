package cli

import (
	"github.com/spf13/cobra"

	"github.com/possible-bj/gitscript/internal/cli/common"
	"github.com/possible-bj/gitscript/internal/dispatch"
	"github.com/possible-bj/gitscript/internal/git"
	"github.com/possible-bj/gitscript/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitscript [--flag[=value]]...",
		Short: "Run common git operations from a single line of flags",
		Long: `Run common git operations from a single line of flags.

Every argument has the form --flag or --flag=value. All arguments are checked
and turned into git commands first; nothing runs unless every one of them is
valid. Commands then run in the order their flags first appeared.

Example:
  gitscript --init --add=. --commit="first commit" --add-remote="origin https://example.com/repo.git" --push="origin main"

Run "gitscript flags" to list the supported flags.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		ValidArgsFunction:  common.CompleteFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isHelpRequest(args) {
				return cmd.Help()
			}
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return runTokens(cmd, ctx, args)
			})
		},
	}

	rootCmd.AddCommand(newFlagsCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

func isHelpRequest(args []string) bool {
	return len(args) == 1 && (args[0] == "-h" || args[0] == "--help")
}

// runTokens parses every token before anything executes, then runs the table
func runTokens(cmd *cobra.Command, ctx *runtime.Context, tokens []string) error {
	table, err := dispatch.ParseAndDispatch(tokens)
	if err != nil {
		return err
	}
	ctx.Splog.Debug("Command table (run %s):\n%s", ctx.RunID, dispatch.Describe(table))

	if !table.Has(dispatch.FlagInit) && !git.IsInsideRepo(ctx.Config.WorkingDir) {
		ctx.Splog.Warn("Not inside a git repository; commands other than --init will likely fail")
	}

	executor := dispatch.NewExecutor(ctx.Runner, ctx.Splog,
		dispatch.WithJobs(ctx.Config.Jobs),
		dispatch.WithDryRun(ctx.Config.DryRun),
	)
	_, err = executor.Execute(cmd.Context(), table)
	return err
}
