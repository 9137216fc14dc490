package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/possible-bj/gitscript/internal/config"
	"github.com/possible-bj/gitscript/internal/dispatch"
	"github.com/possible-bj/gitscript/internal/tui"
)

// newFlagsCmd creates the flags command
func newFlagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flags",
		Short: "List the supported flags and their arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tui.ConfigureColors(cmd.OutOrStdout(), os.Getenv(config.EnvNoColor) != "")
			_, err := fmt.Fprint(cmd.OutOrStdout(), renderFlags(dispatch.Definitions()))
			return err
		},
	}
}

func renderFlags(defs []*dispatch.Definition) string {
	width := 0
	for _, def := range defs {
		width = max(width, len(def.Name))
	}

	var b strings.Builder
	for _, def := range defs {
		args := "none"
		switch {
		case len(def.Arguments) > 0 && def.RequiresArgument:
			args = "<" + strings.Join(def.Arguments, "> <") + ">"
		case len(def.Arguments) > 0:
			args = "[<" + strings.Join(def.Arguments, "> <") + ">]"
		}
		fmt.Fprintf(&b, "%s  %s\n", tui.ColorCommand(fmt.Sprintf("%-*s", width, def.Name)), def.Summary)
		fmt.Fprintf(&b, "%s  %s\n", strings.Repeat(" ", width), tui.ColorDim("arguments: "+args))
	}
	return b.String()
}
