package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats topic content for the terminal. format is the topic
// file extension, e.g. ".md".
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other formats
// pass through.
type GlamourRenderer struct {
	// Style is a glamour style name ("dark", "light", "notty") or a
	// style file path. Empty or "auto" detects from the terminal.
	Style string

	// Width wraps lines; zero keeps glamour's default
	Width int
}

// NewGlamourRenderer returns a renderer with terminal detection, or the
// plain "notty" style when color is false
func NewGlamourRenderer(color bool) *GlamourRenderer {
	if !color {
		return &GlamourRenderer{Style: "notty"}
	}
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown for terminal display, falling back to the raw
// content on error
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style == "" || r.Style == "auto" {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
