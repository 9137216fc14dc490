package dispatch

import (
	"fmt"
	"strings"

	gserrors "github.com/possible-bj/gitscript/internal/errors"
)

// Invocation is a single token split into flag and value
type Invocation struct {
	Key      string
	Value    string
	HasValue bool
}

// ParseInvocation splits a token on its first "=". The key is normalized.
func ParseInvocation(token string) Invocation {
	key, value, found := strings.Cut(token, "=")
	return Invocation{
		Key:      NormalizeFlag(key),
		Value:    value,
		HasValue: found,
	}
}

// ParseAndDispatch validates the tokens and builds every command they describe.
// Any error aborts the whole invocation and no table is returned.
func ParseAndDispatch(tokens []string) (*Table, error) {
	if err := CheckFlags(tokens); err != nil {
		return nil, err
	}

	table := NewTable()
	for _, token := range tokens {
		inv := ParseInvocation(token)
		def, ok := LookupName(inv.Key)
		if !ok {
			return nil, gserrors.NewUnrecognizedFlagError(inv.Key)
		}

		command, err := build(def, inv)
		if err != nil {
			return nil, err
		}
		table.Append(def.Flag, command)
	}

	if table.IsEmpty() {
		return nil, gserrors.ErrEmptyCommandSet
	}
	return table, nil
}

func build(def *Definition, inv Invocation) (string, error) {
	if !def.RequiresArgument {
		return def.Build(strings.Fields(inv.Value)...)
	}

	if strings.TrimSpace(inv.Value) == "" {
		return "", gserrors.NewMissingArgumentError(def.Name, def.Usage)
	}

	if len(def.Arguments) > 1 {
		values := strings.Fields(inv.Value)
		if len(values) != len(def.Arguments) {
			return "", gserrors.NewArgumentCountError(def.Name, def.Usage, len(def.Arguments), len(values))
		}
		return def.Build(values...)
	}

	return def.Build(inv.Value)
}

// Describe renders the table one command per line, for dry runs and debugging
func Describe(table *Table) string {
	var b strings.Builder
	for _, e := range table.Entries() {
		fmt.Fprintf(&b, "%s: %s\n", e.Flag, e.Command)
	}
	return b.String()
}
