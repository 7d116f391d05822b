package types_test

import (
	"testing"

	"github.com/arthur-debert/unconflict/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestMarkers_Match(t *testing.T) {
	m := types.DefaultMarkers()

	tests := []struct {
		line      string
		header    bool
		separator bool
		footer    bool
	}{
		{"<<<<<<< HEAD", true, false, false},
		{"<<<<<<<", true, false, false},
		{"=======", false, true, false},
		{"========", false, true, false},
		{">>>>>>> feature/x", false, false, true},
		{" <<<<<<< HEAD", false, false, false},
		{"<<<<<< HEAD", false, false, false},
		{"plain text", false, false, false},
		{"", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.header, m.IsHeader(tt.line))
			assert.Equal(t, tt.separator, m.IsSeparator(tt.line))
			assert.Equal(t, tt.footer, m.IsFooter(tt.line))
		})
	}
}

func TestMarkers_Label(t *testing.T) {
	m := types.DefaultMarkers()

	assert.Equal(t, "HEAD", m.Label("<<<<<<< HEAD", types.Header))
	assert.Equal(t, "feature/login", m.Label(">>>>>>> feature/login", types.Footer))
	assert.Equal(t, "", m.Label("<<<<<<<", types.Header))
	assert.Equal(t, "", m.Label("text", types.Header))
	assert.Equal(t, "", m.Label("<<<<<<< HEAD", types.NotMarker))
}

func TestMarkers_Custom(t *testing.T) {
	m := types.Markers{Header: "<<<<", Separator: "====", Footer: ">>>>"}

	assert.True(t, m.IsHeader("<<<< ours"))
	assert.Equal(t, "ours", m.Label("<<<< ours", types.Header))
	assert.True(t, m.IsFooter(">>>>"))
}

func TestMarkerKind_String(t *testing.T) {
	assert.Equal(t, "header", types.Header.String())
	assert.Equal(t, "separator", types.Separator.String())
	assert.Equal(t, "footer", types.Footer.String())
	assert.Equal(t, "content", types.NotMarker.String())
}

func TestDocument(t *testing.T) {
	var empty types.Document
	assert.True(t, empty.Empty())
	assert.Nil(t, empty.Last())

	doc := types.Document{Blocks: []types.Block{
		{Mine: []string{"a"}, Theirs: []string{"b", "c"}},
		{Mine: []string{"d"}},
	}}
	assert.False(t, doc.Empty())
	assert.Equal(t, 2, doc.Len())
	assert.Equal(t, []string{"d"}, doc.Last().Mine)
	assert.Equal(t, 4, doc.ConflictedLines())

	doc.Last().After = []string{"tail"}
	assert.Equal(t, []string{"tail"}, doc.Blocks[1].After)
}
