package views

import (
	"github.com/Cyclone1070/cmsg/internal/ui/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

func createTestSpinner() spinner.Model {
	return spinner.New()
}

func createTestViewport() viewport.Model {
	return viewport.New(76, 10)
}

func createTestTextInput(value string) textinput.Model {
	ti := textinput.New()
	ti.SetValue(value)
	return ti
}

func createTestTheme() models.Theme {
	return models.Theme{
		Primary: "63",
		Success: "42",
		Error:   "196",
	}
}
