package dispatch

import (
	"strings"

	gserrors "github.com/possible-bj/gitscript/internal/errors"
)

// Validation is the result of checking one token's flag name
type Validation struct {
	Flag    string
	IsValid bool
}

// NormalizeFlag trims and lower-cases the flag part of a token
func NormalizeFlag(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// ValidateFlags checks the flag part of every token against the flag table
func ValidateFlags(tokens []string) []Validation {
	results := make([]Validation, len(tokens))
	for i, token := range tokens {
		key, _, _ := strings.Cut(token, "=")
		flag := NormalizeFlag(key)
		_, ok := LookupName(flag)
		results[i] = Validation{Flag: flag, IsValid: ok}
	}
	return results
}

// CheckFlags returns an UnrecognizedFlagError naming every invalid flag, or nil
func CheckFlags(tokens []string) error {
	var invalid []string
	for _, v := range ValidateFlags(tokens) {
		if !v.IsValid {
			invalid = append(invalid, v.Flag)
		}
	}
	if len(invalid) > 0 {
		return gserrors.NewUnrecognizedFlagError(invalid...)
	}
	return nil
}
