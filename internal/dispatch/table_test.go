package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/possible-bj/gitscript/internal/dispatch"
)

func TestTable(t *testing.T) {
	table := dispatch.NewTable()
	require.True(t, table.IsEmpty())
	require.Equal(t, 0, table.Len())

	table.Append(dispatch.FlagCommit, `git commit -m "one"`)
	table.Append(dispatch.FlagAdd, "git add .")
	table.Append(dispatch.FlagCommit, `git commit -m "two"`)

	require.False(t, table.IsEmpty())
	require.Equal(t, 3, table.Len())
	require.True(t, table.Has(dispatch.FlagAdd))
	require.False(t, table.Has(dispatch.FlagPush))
	require.Equal(t, []dispatch.Flag{dispatch.FlagCommit, dispatch.FlagAdd}, table.Flags())
	require.Equal(t, []string{`git commit -m "one"`, `git commit -m "two"`}, table.Commands(dispatch.FlagCommit))
	require.Empty(t, table.Commands(dispatch.FlagPush))

	require.Equal(t, "--commit: git commit -m \"one\"\n--commit: git commit -m \"two\"\n--add: git add .\n", dispatch.Describe(table))

	// Returned slices are copies
	flags := table.Flags()
	flags[0] = dispatch.FlagPush
	require.Equal(t, dispatch.FlagCommit, table.Flags()[0])
}
