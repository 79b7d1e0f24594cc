package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorMuted     = lipgloss.Color("#6B7280")
)

// styles are bound to the renderer of one output so that color support is
// detected per writer
type styles struct {
	title lipgloss.Style
	box   lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	total lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1),

		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(1, 2),

		label: r.NewStyle().
			Foreground(colorMuted).
			Width(18),

		value: r.NewStyle().
			Align(lipgloss.Right).
			Width(16),

		total: r.NewStyle().
			Foreground(colorSecondary).
			Bold(true).
			Align(lipgloss.Right).
			Width(16),
	}
}
