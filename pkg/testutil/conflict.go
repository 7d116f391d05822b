package testutil

import (
	"strings"

	"github.com/arthur-debert/unconflict/pkg/types"
)

// ConflictBuilder assembles conflicted file content line by line
type ConflictBuilder struct {
	markers types.Markers
	lines   []string
}

// NewConflict starts a builder using the git marker set
func NewConflict() *ConflictBuilder {
	return &ConflictBuilder{markers: types.DefaultMarkers()}
}

// WithMarkers switches the marker set used by later Block calls
func (b *ConflictBuilder) WithMarkers(m types.Markers) *ConflictBuilder {
	b.markers = m
	return b
}

// Context appends plain lines
func (b *ConflictBuilder) Context(lines ...string) *ConflictBuilder {
	b.lines = append(b.lines, lines...)
	return b
}

// Block appends a conflict block with HEAD and branch labels
func (b *ConflictBuilder) Block(mine, theirs []string) *ConflictBuilder {
	return b.LabeledBlock("HEAD", mine, "branch", theirs)
}

// LabeledBlock appends a conflict block with custom labels
func (b *ConflictBuilder) LabeledBlock(mineLabel string, mine []string, theirsLabel string, theirs []string) *ConflictBuilder {
	b.lines = append(b.lines, marker(b.markers.Header, mineLabel))
	b.lines = append(b.lines, mine...)
	b.lines = append(b.lines, b.markers.Separator)
	b.lines = append(b.lines, theirs...)
	b.lines = append(b.lines, marker(b.markers.Footer, theirsLabel))
	return b
}

// Lines returns the assembled lines
func (b *ConflictBuilder) Lines() []string {
	return append([]string(nil), b.lines...)
}

// String joins the lines with LF and no final terminator
func (b *ConflictBuilder) String() string {
	return strings.Join(b.lines, "\n")
}

func marker(prefix, label string) string {
	if label == "" {
		return prefix
	}
	return prefix + " " + label
}
