package scanner

import (
	"github.com/arthur-debert/unconflict/pkg/errors"
	"github.com/arthur-debert/unconflict/pkg/logging"
	"github.com/arthur-debert/unconflict/pkg/types"
)

// State is the scanner's position relative to conflict markup
type State int

const (
	AwaitingHeader State = iota
	InMine
	InTheirs
)

// String returns the state name used in logs and error details
func (s State) String() string {
	switch s {
	case InMine:
		return "mine"
	case InTheirs:
		return "theirs"
	default:
		return "awaiting-header"
	}
}

// Scanner turns lines into a Document. It holds no state between calls.
type Scanner struct {
	markers types.Markers
}

// New creates a scanner for the given marker set
func New(markers types.Markers) *Scanner {
	return &Scanner{markers: markers}
}

// Scan is a convenience wrapper using the default git markers
func Scan(lines []string) (types.Document, error) {
	return New(types.DefaultMarkers()).Scan(lines)
}

// Scan performs a single forward pass over lines.
func (s *Scanner) Scan(lines []string) (types.Document, error) {
	logger := logging.GetLogger("scanner")

	var (
		doc     types.Document
		state   = AwaitingHeader
		context []string
		current types.Block
	)

	for i, line := range lines {
		lineNo := i + 1

		switch state {
		case AwaitingHeader:
			if !s.markers.IsHeader(line) {
				context = append(context, line)
				continue
			}
			current = types.Block{
				Before:     context,
				HeaderLine: lineNo,
				MineLabel:  s.markers.Label(line, types.Header),
			}
			context = nil
			state = InMine

		case InMine:
			if !s.markers.IsSeparator(line) {
				current.Mine = append(current.Mine, line)
				continue
			}
			current.SeparatorLine = lineNo
			state = InTheirs

		case InTheirs:
			if !s.markers.IsFooter(line) {
				current.Theirs = append(current.Theirs, line)
				continue
			}
			current.FooterLine = lineNo
			current.TheirsLabel = s.markers.Label(line, types.Footer)
			doc.Blocks = append(doc.Blocks, current)
			logger.Trace().
				Int("block", len(doc.Blocks)).
				Int("header", current.HeaderLine).
				Int("footer", current.FooterLine).
				Msg("Conflict block closed")
			current = types.Block{}
			state = AwaitingHeader
		}
	}

	if state != AwaitingHeader {
		return types.Document{}, malformed(state, current, len(lines))
	}

	if last := doc.Last(); last != nil {
		last.After = context
	}

	logger.Debug().
		Int("lines", len(lines)).
		Int("conflicts", doc.Len()).
		Msg("Scan completed")

	return doc, nil
}

func malformed(state State, open types.Block, total int) error {
	missing := "separator"
	if state == InTheirs {
		missing = "footer"
	}
	return errors.Newf(errors.ErrMalformedConflict,
		"conflict opened at line %d has no %s before end of input", open.HeaderLine, missing).
		WithDetail("header_line", open.HeaderLine).
		WithDetail("state", state.String()).
		WithDetail("missing", missing).
		WithDetail("lines", total)
}
