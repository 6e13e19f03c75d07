package console

import "github.com/charmbracelet/lipgloss"

// Palette shared by every styled line boxcar prints.
const (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorError     = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorHighlight = lipgloss.Color("#3B82F6")
	ColorDetail    = lipgloss.Color("#06B6D4")
)

// Styles is the set of styles bound to one output's renderer. Binding to the
// renderer lets plain writers (files, buffers) receive unstyled text.
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Detail  lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Cmd     lipgloss.Style
}

// NewStyles returns the palette rendered through r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(ColorPrimary),
		Muted:   r.NewStyle().Foreground(ColorMuted),
		Success: r.NewStyle().Foreground(ColorSuccess),
		Detail:  r.NewStyle().Foreground(ColorDetail),
		Warning: r.NewStyle().Foreground(ColorWarning),
		Error:   r.NewStyle().Bold(true).Foreground(ColorError),
		Cmd:     r.NewStyle().Foreground(ColorHighlight),
	}
}
