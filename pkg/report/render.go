package report

import (
	"io"

	"github.com/arthur-debert/unconflict/pkg/errors"
	"github.com/arthur-debert/unconflict/pkg/ui"
)

// Renderer writes a set of file reports in one output format
type Renderer interface {
	Render(reports []FileReport) error
}

// NewRenderer returns the renderer for format. FormatAuto is resolved
// against output first.
func NewRenderer(format ui.Format, output io.Writer) (Renderer, error) {
	switch ui.Resolve(format, output) {
	case ui.FormatTerminal:
		return &TextRenderer{output: output, styled: true}, nil
	case ui.FormatText:
		return &TextRenderer{output: output}, nil
	case ui.FormatJSON:
		return &JSONRenderer{output: output}, nil
	case ui.FormatCheckstyle:
		return &CheckstyleRenderer{output: output}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
