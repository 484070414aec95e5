package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/cmsg/internal/ui/models"
)

// RenderTypePicker renders the commit-type selection popup
func RenderTypePicker(s models.State) string {
	if s.Picker == nil || len(s.Picker.Candidates) == 0 {
		return ""
	}

	var lines []string
	lines = append(lines, TitleStyle.Render("Select commit type:"))
	lines = append(lines, "")

	for i, candidate := range s.Picker.Candidates {
		label := fmt.Sprintf("%-9s %s", candidate.Type, candidate.Description)
		if i == s.Picker.Index {
			// Highlight selected
			lines = append(lines, PrimaryStyle(s.Theme).Render(fmt.Sprintf("▸ %s", label)))
		} else {
			lines = append(lines, fmt.Sprintf("  %s", label))
		}
	}

	lines = append(lines, "")
	lines = append(lines, HintStyle.Render("↑/↓: Navigate  Enter: Select  Esc: Cancel"))

	content := strings.Join(lines, "\n")
	return PopupBoxStyle.Render(content)
}
