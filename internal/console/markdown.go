package console

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWidth is the wrap width used when the terminal width is unknown.
const DefaultWidth = 80

// RenderMarkdown renders markdown for the terminal, wrapped to width.
func RenderMarkdown(content string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(content)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
