package dispatch

import (
	"fmt"

	"github.com/kballard/go-shellquote"

	gserrors "github.com/possible-bj/gitscript/internal/errors"
)

// Flag identifies one supported operation
type Flag int

// Supported flags, in the order they are documented
const (
	FlagInit Flag = iota
	FlagBranch
	FlagCheckout
	FlagAddRemote
	FlagRemoveRemote
	FlagAdd
	FlagCommit
	FlagPull
	FlagPush
)

// String returns the command-line spelling of the flag, e.g. "--init"
func (f Flag) String() string {
	if def, ok := Lookup(f); ok {
		return def.Name
	}
	return fmt.Sprintf("Flag(%d)", int(f))
}

// Definition describes how a flag's value is checked and turned into a command.
// Arguments are shell-quoted into the command so git.Split hands them back intact.
type Definition struct {
	Flag Flag
	Name string
	// RequiresArgument means the flag must be written as --name=value
	RequiresArgument bool
	// Arguments names the expected space-separated sub-arguments, in order
	Arguments []string
	Usage     string
	// Summary is a one-line description shown by the flags command
	Summary string

	build func(d *Definition, args []string) (string, error)
}

// Build turns the flag's arguments into a command string
func (d *Definition) Build(args ...string) (string, error) {
	return d.build(d, args)
}

var definitions = []*Definition{
	{
		Flag:    FlagInit,
		Name:    "--init",
		Usage:   "--init",
		Summary: "Initialize a repository",
		build: func(_ *Definition, _ []string) (string, error) {
			return "git init", nil
		},
	},
	{
		Flag:             FlagBranch,
		Name:             "--branch",
		RequiresArgument: true,
		Arguments:        []string{"branch name"},
		Usage:            usage("--branch=<branch name>", "--branch=feature"),
		Summary:          "Create a branch",
		build: func(_ *Definition, args []string) (string, error) {
			return "git branch " + shellquote.Join(args[0]), nil
		},
	},
	{
		Flag:             FlagCheckout,
		Name:             "--checkout",
		RequiresArgument: true,
		Arguments:        []string{"branch name"},
		Usage:            usage("--checkout=<branch name>", "--checkout=feature"),
		Summary:          "Switch to a branch",
		build: func(_ *Definition, args []string) (string, error) {
			return "git checkout " + shellquote.Join(args[0]), nil
		},
	},
	{
		Flag:             FlagAddRemote,
		Name:             "--add-remote",
		RequiresArgument: true,
		Arguments:        []string{"remote name", "remote url"},
		Usage:            usage("--add-remote=<remote name> <remote url>", `--add-remote="origin https://github.com/user/repo.git"`),
		Summary:          "Register a remote",
		build: func(_ *Definition, args []string) (string, error) {
			return "git remote add " + shellquote.Join(args[0], args[1]), nil
		},
	},
	{
		Flag:             FlagRemoveRemote,
		Name:             "--rm-remote",
		RequiresArgument: true,
		Arguments:        []string{"remote name"},
		Usage:            usage("--rm-remote=<remote name>", "--rm-remote=origin"),
		Summary:          "Remove a remote",
		build: func(_ *Definition, args []string) (string, error) {
			return "git remote remove " + shellquote.Join(args[0]), nil
		},
	},
	{
		Flag:             FlagAdd,
		Name:             "--add",
		RequiresArgument: true,
		Arguments:        []string{"file path"},
		Usage:            usage("--add=<file path>", "--add=."),
		Summary:          "Stage a path",
		build: func(_ *Definition, args []string) (string, error) {
			return "git add " + shellquote.Join(args[0]), nil
		},
	},
	{
		Flag:             FlagCommit,
		Name:             "--commit",
		RequiresArgument: true,
		Arguments:        []string{"commit message"},
		Usage:            usage("--commit=<commit message>", `--commit="commit message"`),
		Summary:          "Commit staged changes",
		build: func(_ *Definition, args []string) (string, error) {
			return "git commit -m " + shellquote.Join(args[0]), nil
		},
	},
	{
		Flag:      FlagPull,
		Name:      "--pull",
		Arguments: []string{"remote name", "branch name"},
		Usage:     usage("--pull=<remote name> <branch name>", `--pull="origin main"`),
		Summary:   "Fetch and merge, optionally from <remote> <branch>",
		build:     pairedCommand("git pull"),
	},
	{
		Flag:      FlagPush,
		Name:      "--push",
		Arguments: []string{"remote name", "branch name"},
		Usage:     usage("--push=<remote name> <branch name>", `--push="origin main"`),
		Summary:   "Publish changes, optionally to <remote> <branch>",
		build:     pairedCommand("git push"),
	},
}

func usage(form, example string) string {
	return fmt.Sprintf("%s \n eg. %s", form, example)
}

var definitionsByName = func() map[string]*Definition {
	m := make(map[string]*Definition, len(definitions))
	for _, def := range definitions {
		m[def.Name] = def
	}
	return m
}()

// Definitions returns every supported flag definition in documented order
func Definitions() []*Definition {
	out := make([]*Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the definition for a flag tag
func Lookup(f Flag) (*Definition, bool) {
	if f < 0 || int(f) >= len(definitions) {
		return nil, false
	}
	return definitions[f], true
}

// LookupName returns the definition for a normalized flag name such as "--push"
func LookupName(name string) (*Definition, bool) {
	def, ok := definitionsByName[name]
	return def, ok
}

// Pair is an optional remote/branch pair. The zero value means "not given".
type Pair struct {
	Remote string
	Branch string
}

// IsZero reports whether neither half was given
func (p Pair) IsZero() bool {
	return p.Remote == "" && p.Branch == ""
}

// RequirePair accepts both halves or neither; anything else is an IncompletePairError
func RequirePair(d *Definition, remote, branch string) (Pair, error) {
	switch {
	case remote != "" && branch == "":
		return Pair{}, gserrors.NewIncompletePairError(d.Name, d.Usage, d.Arguments[1])
	case remote == "" && branch != "":
		return Pair{}, gserrors.NewIncompletePairError(d.Name, d.Usage, d.Arguments[0])
	}
	return Pair{Remote: remote, Branch: branch}, nil
}

func pairedCommand(base string) func(d *Definition, args []string) (string, error) {
	return func(d *Definition, args []string) (string, error) {
		if len(args) > len(d.Arguments) {
			return "", gserrors.NewArgumentCountError(d.Name, d.Usage, len(d.Arguments), len(args))
		}
		var remote, branch string
		if len(args) > 0 {
			remote = args[0]
		}
		if len(args) > 1 {
			branch = args[1]
		}

		pair, err := RequirePair(d, remote, branch)
		if err != nil {
			return "", err
		}
		if pair.IsZero() {
			return base, nil
		}
		return base + " " + shellquote.Join(pair.Remote, pair.Branch), nil
	}
}
