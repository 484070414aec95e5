package views

import (
	"strings"

	"github.com/Cyclone1070/cmsg/internal/ui/models"
)

// RenderFooterPrompt renders the footer input popup
func RenderFooterPrompt(s models.State) string {
	if s.Footer == nil {
		return ""
	}

	var lines []string
	lines = append(lines, TitleStyle.Render(s.Footer.Prompt))
	lines = append(lines, "")
	lines = append(lines, s.Footer.Input.View())
	lines = append(lines, "")
	lines = append(lines, HintStyle.Render("Enter: Confirm  Esc: Skip"))

	return PopupBoxStyle.Render(strings.Join(lines, "\n"))
}
