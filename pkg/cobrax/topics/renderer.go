package topics

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns raw topic content into what the help command prints.
// ext is the topic file extension, including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics as written, newline terminated
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, ext string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}

// GlamourRenderer renders markdown topics for the terminal. Other
// extensions fall through to PlainRenderer.
type GlamourRenderer struct {
	Style string // glamour style name or path; "" and "auto" follow the terminal background
	Width int    // word wrap column, 0 for glamour's default
}

// NewGlamourRenderer picks its style from the terminal background
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// NewPlainGlamourRenderer renders markdown without colors, for pipes and
// --no-color
func NewPlainGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "notty", Width: 80}
}

func (r *GlamourRenderer) Render(content string, ext string) string {
	plain := &PlainRenderer{}
	if ext != ".md" {
		return plain.Render(content, ext)
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Style != "" && r.Style != "auto" {
		options = []glamour.TermRendererOption{glamour.WithStylePath(r.Style)}
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return plain.Render(content, ext)
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return plain.Render(content, ext)
	}
	return rendered
}
