package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/unconflict/pkg/style"
)

// TextRenderer writes one line per file followed by one line per block. When
// styled, the registry styles are applied.
type TextRenderer struct {
	output io.Writer
	styled bool
}

func (r *TextRenderer) paint(name, text string) string {
	if !r.styled {
		return text
	}
	return style.Render(name, text)
}

// Render implements Renderer
func (r *TextRenderer) Render(reports []FileReport) error {
	var b strings.Builder

	for _, rep := range reports {
		b.WriteString(r.paint("Path", rep.Path))
		b.WriteString(": ")
		switch {
		case rep.Failed():
			b.WriteString(r.paint("Error", "error"))
			b.WriteString(": " + rep.Error)
		case rep.Conflicts == 0:
			b.WriteString(r.paint("Muted", "no conflicts"))
		default:
			b.WriteString(r.paint("Warning", plural(rep.Conflicts, "conflict")))
		}
		b.WriteString("\n")

		for _, blk := range rep.Blocks {
			b.WriteString(style.Indent(r.block(blk), 1))
			b.WriteString("\n")
		}
	}

	if len(reports) > 1 {
		b.WriteString("\n" + r.summary(Summarize(reports)) + "\n")
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *TextRenderer) block(blk BlockReport) string {
	mine, theirs := blk.labels()
	return fmt.Sprintf("line %d-%d  %s (%s) | %s (%s)",
		blk.HeaderLine, blk.FooterLine,
		r.paint("Mine", mine), plural(blk.MineLines, "line"),
		r.paint("Theirs", theirs), plural(blk.TheirsLines, "line"))
}

func (r *TextRenderer) summary(s Summary) string {
	parts := []string{
		plural(s.Files, "file"),
		fmt.Sprintf("%s in %s", plural(s.Conflicts, "conflict"), plural(s.Conflicted, "file")),
	}
	if s.Failed > 0 {
		parts = append(parts, r.paint("Error", fmt.Sprintf("%d failed", s.Failed)))
	}
	return r.paint("Title", "Summary:") + " " + strings.Join(parts, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
