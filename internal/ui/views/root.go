package views

import (
	"github.com/Cyclone1070/cmsg/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State) string {
	// Popup steps take over the screen while open
	if s.Picker != nil {
		return overlay(s, RenderTypePicker(s))
	}
	if s.Footer != nil {
		return overlay(s, RenderFooterPrompt(s))
	}

	var sections []string
	if s.Preview != nil {
		sections = append(sections, RenderPreview(s))
	}
	sections = append(sections, RenderStatus(s))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// overlay centers a popup in the window
func overlay(s models.State, popup string) string {
	if s.Width == 0 || s.Height == 0 {
		// No window size yet; render the popup unplaced
		return popup
	}
	return lipgloss.Place(
		s.Width,
		s.Height,
		lipgloss.Center,
		lipgloss.Center,
		popup,
		lipgloss.WithWhitespaceChars(""),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
	)
}
