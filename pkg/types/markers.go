package types

import (
	"strings"
)

// Default marker literals as written by git and most three-way merge tools
const (
	DefaultHeader    = "<<<<<<<"
	DefaultSeparator = "======="
	DefaultFooter    = ">>>>>>>"
)

// MarkerKind classifies a line against the three conflict markers
type MarkerKind int

const (
	// NotMarker is ordinary content
	NotMarker MarkerKind = iota
	// Header opens a conflict and starts the "mine" section
	Header
	// Separator ends "mine" and starts "theirs"
	Separator
	// Footer closes a conflict
	Footer
)

// String returns the marker name
func (k MarkerKind) String() string {
	switch k {
	case Header:
		return "header"
	case Separator:
		return "separator"
	case Footer:
		return "footer"
	default:
		return "content"
	}
}

// Markers holds the three literal prefixes recognised at the start of a line.
// Matching is a plain byte prefix comparison: no trimming, no case folding.
type Markers struct {
	Header    string `koanf:"header" toml:"header"`
	Separator string `koanf:"separator" toml:"separator"`
	Footer    string `koanf:"footer" toml:"footer"`
}

// DefaultMarkers returns the git marker set
func DefaultMarkers() Markers {
	return Markers{
		Header:    DefaultHeader,
		Separator: DefaultSeparator,
		Footer:    DefaultFooter,
	}
}

// IsHeader reports whether line opens a conflict
func (m Markers) IsHeader(line string) bool {
	return strings.HasPrefix(line, m.Header)
}

// IsSeparator reports whether line splits mine from theirs
func (m Markers) IsSeparator(line string) bool {
	return strings.HasPrefix(line, m.Separator)
}

// IsFooter reports whether line closes a conflict
func (m Markers) IsFooter(line string) bool {
	return strings.HasPrefix(line, m.Footer)
}

// Label returns the annotation following the marker prefix on a marker line,
// usually a branch name or commit. It is never part of any section's content.
func (m Markers) Label(line string, kind MarkerKind) string {
	var prefix string
	switch kind {
	case Header:
		prefix = m.Header
	case Separator:
		prefix = m.Separator
	case Footer:
		prefix = m.Footer
	default:
		return ""
	}
	if !strings.HasPrefix(line, prefix) {
		return ""
	}
	return strings.TrimSpace(line[len(prefix):])
}
