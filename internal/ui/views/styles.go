package views

import (
	"github.com/Cyclone1070/cmsg/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// Fixed layout styles. Colors that come from configuration are derived from
// the State's Theme by the functions below instead.
var (
	TitleStyle = lipgloss.NewStyle().Bold(true)

	HintStyle = lipgloss.NewStyle().Faint(true)

	PopupBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)

	PreviewBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	StatusDefaultStyle = lipgloss.NewStyle().Padding(0, 1)
)

// PrimaryStyle highlights the focused element with the configured color.
func PrimaryStyle(t models.Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true)
}

// SuccessStyle marks completed work.
func SuccessStyle(t models.Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success))
}

// ErrorStyle marks failures.
func ErrorStyle(t models.Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error))
}
