package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/cmsg/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatus renders the status bar
func RenderStatus(s models.State) string {
	var icon string
	var style lipgloss.Style

	switch s.StatusPhase {
	case "scanning":
		icon = s.Spinner.View()
		style = PrimaryStyle(s.Theme)
		// Animate the dots
		dots := strings.Repeat(".", s.DotCount)
		return style.Render(fmt.Sprintf("%s Scanning%s", icon, dots))
	case "waiting":
		icon = s.Spinner.View()
		style = StatusDefaultStyle
	case "done":
		icon = "✔"
		style = SuccessStyle(s.Theme)
	case "error":
		icon = "✗"
		style = ErrorStyle(s.Theme)
	default:
		style = StatusDefaultStyle
	}

	status := "Ready"
	if s.StatusMessage != "" {
		status = fmt.Sprintf("%s %s", icon, s.StatusMessage)
	} else if s.StatusPhase != "ready" && s.StatusPhase != "" {
		// A phase with no message still shows its icon
		status = icon
	}

	return style.Render(status)
}
