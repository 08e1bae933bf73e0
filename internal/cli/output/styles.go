package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles shared across commands.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style
}

// colorEnabled reports whether styled output should use color.
// NO_COLOR and color-blind terminal profiles disable it.
func colorEnabled(isTTY bool) bool {
	if !isTTY {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// NewStyles builds the style set for the given terminal state. Without
// color every style renders its text unchanged.
func NewStyles(isTTY bool) *Styles {
	if !colorEnabled(isTTY) {
		return plainStyles()
	}
	return &Styles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Heading: lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
	}
}

func plainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Success: plain,
		Error:   plain,
		Warning: plain,
		Heading: plain,
		Muted:   plain,
	}
}
