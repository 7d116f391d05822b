// pkg/types/policy_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test RESOLVEMODE parsing and policy helpers

package types_test

import (
	"testing"

	"github.com/arthur-debert/unconflict/pkg/errors"
	"github.com/arthur-debert/unconflict/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		mode string
		want types.Policy
	}{
		{"mt", types.PolicyMineThenTheirs},
		{"tm", types.PolicyTheirsThenMine},
		{"m", types.PolicyMineOnly},
		{"t", types.PolicyTheirsOnly},
		{"none", types.PolicyNeither},
		{"MT", types.PolicyMineThenTheirs},
		{"None", types.PolicyNeither},
		{"theirs-only", types.PolicyTheirsOnly},
		{"Mine-Then-Theirs", types.PolicyMineThenTheirs},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got, err := types.ParsePolicy(tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePolicy_Invalid(t *testing.T) {
	for _, mode := range []string{"", "mine", "both", "x", " mt", "mt "} {
		t.Run(mode, func(t *testing.T) {
			_, err := types.ParsePolicy(mode)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidMode))
			assert.Contains(t, err.Error(), "mt, tm, m, t, none")
			assert.Equal(t, mode, errors.GetErrorDetails(err)["mode"])
		})
	}
}

func TestPolicyToken(t *testing.T) {
	for i, p := range types.Policies {
		assert.Equal(t, types.ModeTokens[i], p.Token())
		assert.True(t, p.Valid())
	}

	assert.Equal(t, "", types.Policy("sideways").Token())
	assert.False(t, types.Policy("sideways").Valid())
}

func TestCompletionTokens(t *testing.T) {
	tokens := types.CompletionTokens()
	assert.Len(t, tokens, 10)
	assert.Contains(t, tokens, "none")
	assert.Contains(t, tokens, "neither")
	assert.IsIncreasing(t, tokens)
}
