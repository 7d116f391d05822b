package types

import (
	"sort"
	"strings"

	"github.com/arthur-debert/unconflict/pkg/errors"
)

// Policy selects which side(s) of every conflict survive, and in which order
type Policy string

const (
	PolicyMineThenTheirs Policy = "mine-then-theirs"
	PolicyTheirsThenMine Policy = "theirs-then-mine"
	PolicyMineOnly       Policy = "mine-only"
	PolicyTheirsOnly     Policy = "theirs-only"
	PolicyNeither        Policy = "neither"
)

// Policies lists every policy in command line token order
var Policies = []Policy{
	PolicyMineThenTheirs,
	PolicyTheirsThenMine,
	PolicyMineOnly,
	PolicyTheirsOnly,
	PolicyNeither,
}

// ModeTokens are the short RESOLVEMODE arguments, in the same order as Policies
var ModeTokens = []string{"mt", "tm", "m", "t", "none"}

var policyByToken = func() map[string]Policy {
	m := make(map[string]Policy, 2*len(Policies))
	for i, p := range Policies {
		m[ModeTokens[i]] = p
		m[string(p)] = p
	}
	return m
}()

// Token returns the short command line token for the policy
func (p Policy) Token() string {
	for i, candidate := range Policies {
		if candidate == p {
			return ModeTokens[i]
		}
	}
	return ""
}

// Valid reports whether p is one of the five known policies
func (p Policy) Valid() bool {
	return p.Token() != ""
}

// String returns the policy name
func (p Policy) String() string {
	return string(p)
}

// ParsePolicy maps a RESOLVEMODE argument to a Policy. Matching is
// case-insensitive and accepts both the short tokens and the long names.
// Anything else is an INVALID_MODE error; there is no fallback mode.
func ParsePolicy(mode string) (Policy, error) {
	normalized := strings.ToLower(mode)
	if p, ok := policyByToken[normalized]; ok {
		return p, nil
	}
	return "", errors.Newf(errors.ErrInvalidMode,
		"invalid resolve mode %s, possible values: %s", normalized, strings.Join(ModeTokens, ", ")).
		WithDetail("mode", mode).
		WithDetail("valid", ModeTokens)
}

// CompletionTokens returns every accepted RESOLVEMODE spelling, sorted
func CompletionTokens() []string {
	tokens := make([]string, 0, len(policyByToken))
	for token := range policyByToken {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
