// pkg/resolver/resolver_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: scanner (for end-to-end line order checks)
// PURPOSE: Test the resolution table and document reassembly

package resolver_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/unconflict/pkg/resolver"
	"github.com/arthur-debert/unconflict/pkg/scanner"
	"github.com/arthur-debert/unconflict/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleBlock() types.Document {
	return types.Document{Blocks: []types.Block{{
		Before: []string{"ctx1"},
		Mine:   []string{"A"},
		Theirs: []string{"B"},
		After:  []string{"ctx2"},
	}}}
}

func TestResolve_PolicyTable(t *testing.T) {
	tests := []struct {
		policy types.Policy
		want   []string
	}{
		{types.PolicyMineThenTheirs, []string{"ctx1", "A", "B", "ctx2"}},
		{types.PolicyTheirsThenMine, []string{"ctx1", "B", "A", "ctx2"}},
		{types.PolicyMineOnly, []string{"ctx1", "A", "ctx2"}},
		{types.PolicyTheirsOnly, []string{"ctx1", "B", "ctx2"}},
		{types.PolicyNeither, []string{"ctx1", "ctx2"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(singleBlock(), tt.policy))
		})
	}
}

func TestSelect(t *testing.T) {
	m := []string{"m1", "m2"}
	th := []string{"t1"}

	assert.Equal(t, []string{"m1", "m2", "t1"}, resolver.Select(m, th, types.PolicyMineThenTheirs))
	assert.Equal(t, []string{"t1", "m1", "m2"}, resolver.Select(m, th, types.PolicyTheirsThenMine))
	assert.Equal(t, []string{"m1", "m2"}, resolver.Select(m, th, types.PolicyMineOnly))
	assert.Equal(t, []string{"t1"}, resolver.Select(m, th, types.PolicyTheirsOnly))
	assert.Empty(t, resolver.Select(m, th, types.PolicyNeither))
	assert.Empty(t, resolver.Select(m, th, types.Policy("bogus")))

	// inputs are not aliased by the output
	out := resolver.Select(m, th, types.PolicyMineOnly)
	out[0] = "changed"
	assert.Equal(t, "m1", m[0])
}

func TestResolve_EmptyDocument(t *testing.T) {
	for _, p := range types.Policies {
		assert.Empty(t, resolver.Resolve(types.Document{}, p))
	}
}

func TestResolve_MultipleAdjacentBlocks(t *testing.T) {
	input := `head
<<<<<<< HEAD
A1
=======
B1
>>>>>>> other
<<<<<<< HEAD
A2
=======
B2
>>>>>>> other
tail`

	doc, err := scanner.Scan(strings.Split(input, "\n"))
	require.NoError(t, err)
	require.Equal(t, 2, doc.Len())
	require.Empty(t, doc.Blocks[1].Before)

	want := map[types.Policy][]string{
		types.PolicyMineThenTheirs: {"head", "A1", "B1", "A2", "B2", "tail"},
		types.PolicyTheirsThenMine: {"head", "B1", "A1", "B2", "A2", "tail"},
		types.PolicyMineOnly:       {"head", "A1", "A2", "tail"},
		types.PolicyTheirsOnly:     {"head", "B1", "B2", "tail"},
		types.PolicyNeither:        {"head", "tail"},
	}

	for _, p := range types.Policies {
		t.Run(string(p), func(t *testing.T) {
			assert.Equal(t, want[p], resolver.Resolve(doc, p))
		})
	}
}

func TestResolve_ContextAppearsExactlyOnce(t *testing.T) {
	input := `c1
c2
<<<<<<< HEAD
m
=======
t
>>>>>>> other
c3
<<<<<<< HEAD
m
=======
t
>>>>>>> other
c4
c5`

	doc, err := scanner.Scan(strings.Split(input, "\n"))
	require.NoError(t, err)

	for _, p := range types.Policies {
		out := resolver.Resolve(doc, p)

		var context []string
		for _, line := range out {
			if strings.HasPrefix(line, "c") {
				context = append(context, line)
			}
		}
		assert.Equal(t, []string{"c1", "c2", "c3", "c4", "c5"}, context, "policy %s", p)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	doc := singleBlock()
	for _, p := range types.Policies {
		first := resolver.Resolve(doc, p)
		second := resolver.Resolve(doc, p)
		assert.Equal(t, first, second)
	}
}

func TestResolve_OnlyLastAfterIsUsed(t *testing.T) {
	// After on an earlier block is ignored: the scanner never produces it and
	// the resolver only reads the last block's trailing context.
	doc := types.Document{Blocks: []types.Block{
		{Before: []string{"a"}, Mine: []string{"m1"}, After: []string{"ignored"}},
		{Before: []string{"b"}, Mine: []string{"m2"}, After: []string{"z"}},
	}}

	assert.Equal(t, []string{"a", "m1", "b", "m2", "z"}, resolver.Resolve(doc, types.PolicyMineOnly))
}

func TestSummarize(t *testing.T) {
	doc := types.Document{Blocks: []types.Block{
		{Before: []string{"a"}, Mine: []string{"m1", "m2"}, Theirs: []string{"t1"}},
		{Before: []string{"b", "c"}, Mine: []string{"m3"}, Theirs: []string{"t2", "t3"}, After: []string{"z"}},
	}}

	s := resolver.Summarize(doc, types.PolicyMineOnly)
	assert.Equal(t, 2, s.Conflicts)
	assert.Equal(t, 4, s.ContextLines)
	assert.Equal(t, 3, s.KeptLines)
	assert.Equal(t, 3, s.DroppedLines)

	s = resolver.Summarize(doc, types.PolicyMineThenTheirs)
	assert.Equal(t, 6, s.KeptLines)
	assert.Equal(t, 0, s.DroppedLines)
}
