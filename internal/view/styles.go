package view

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	headingColor = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	labelColor   = lipgloss.AdaptiveColor{Light: "#29434e", Dark: "#4db6ac"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6a737d", Dark: "#8b949e"}
	warningColor = lipgloss.Color("#FFC107")
	errorColor   = lipgloss.Color("#e53935")
)

// Styles holds the styles used by the Write functions.
type Styles struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles returns styles rendered for w. Colour is dropped when w is not
// a terminal.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Heading: r.NewStyle().Bold(true).Foreground(headingColor),
		Label:   r.NewStyle().Foreground(labelColor),
		Muted:   r.NewStyle().Foreground(mutedColor),
		Warning: r.NewStyle().Foreground(warningColor),
		Error:   r.NewStyle().Bold(true).Foreground(errorColor),
	}
}
