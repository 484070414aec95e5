package views

import (
	"github.com/Cyclone1070/cmsg/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderPreview renders the commit-message confirmation pane
func RenderPreview(s models.State) string {
	if s.Preview == nil {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Commit message"),
		PreviewBoxStyle.Render(s.Preview.Viewport.View()),
		HintStyle.Render("Enter: Accept  t: Change type  ↑/↓: Scroll  Esc: Cancel"),
	)
}
