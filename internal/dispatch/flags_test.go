package dispatch_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/possible-bj/gitscript/internal/dispatch"
	gserrors "github.com/possible-bj/gitscript/internal/errors"
)

func TestDefinitions(t *testing.T) {
	defs := dispatch.Definitions()
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
		require.Equal(t, dispatch.Flag(i), def.Flag)
		require.NotEmpty(t, def.Usage)

		byName, ok := dispatch.LookupName(def.Name)
		require.True(t, ok)
		require.Same(t, def, byName)
		require.Equal(t, def.Name, def.Flag.String())
	}
	require.Equal(t, []string{
		"--init", "--branch", "--checkout", "--add-remote", "--rm-remote",
		"--add", "--commit", "--pull", "--push",
	}, names)

	_, ok := dispatch.Lookup(dispatch.Flag(99))
	require.False(t, ok)
	require.Equal(t, "Flag(99)", dispatch.Flag(99).String())
}

func TestRequirePair(t *testing.T) {
	def, ok := dispatch.Lookup(dispatch.FlagPush)
	require.True(t, ok)

	t.Run("both present", func(t *testing.T) {
		pair, err := dispatch.RequirePair(def, "origin", "main")
		require.NoError(t, err)
		require.Equal(t, dispatch.Pair{Remote: "origin", Branch: "main"}, pair)
		require.False(t, pair.IsZero())
	})

	t.Run("both absent", func(t *testing.T) {
		pair, err := dispatch.RequirePair(def, "", "")
		require.NoError(t, err)
		require.True(t, pair.IsZero())
	})

	t.Run("branch missing", func(t *testing.T) {
		_, err := dispatch.RequirePair(def, "origin", "")
		var pairErr *gserrors.IncompletePairError
		require.True(t, errors.As(err, &pairErr))
		require.Equal(t, "branch name", pairErr.Missing)
		require.Equal(t, "--push", pairErr.Flag)
		require.Contains(t, err.Error(), def.Usage)
	})

	t.Run("remote missing", func(t *testing.T) {
		_, err := dispatch.RequirePair(def, "", "main")
		var pairErr *gserrors.IncompletePairError
		require.True(t, errors.As(err, &pairErr))
		require.Equal(t, "remote name", pairErr.Missing)
	})
}

func TestDefinitionBuild(t *testing.T) {
	pull, _ := dispatch.Lookup(dispatch.FlagPull)
	cmd, err := pull.Build()
	require.NoError(t, err)
	require.Equal(t, "git pull", cmd)

	cmd, err = pull.Build("upstream", "develop")
	require.NoError(t, err)
	require.Equal(t, "git pull upstream develop", cmd)

	commit, _ := dispatch.Lookup(dispatch.FlagCommit)
	cmd, err = commit.Build(`say "hi"`)
	require.NoError(t, err)
	require.Equal(t, `git commit -m 'say "hi"'`, cmd)
}
