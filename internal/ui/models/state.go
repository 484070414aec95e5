// Package models holds the view state shared between the UI update loop and
// the render functions.
package models

import (
	"github.com/Cyclone1070/cmsg/internal/message"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Theme carries the configured lipgloss color codes.
type Theme struct {
	Primary string
	Success string
	Error   string
}

// TypePicker is the state of an open commit-type selection popup.
type TypePicker struct {
	Candidates []message.Candidate
	Index      int
}

// FooterPrompt is the state of an open footer input.
type FooterPrompt struct {
	Prompt string
	Input  textinput.Model
}

// MessagePreview is the state of an open commit-message confirmation pane.
// Raw is the message text as it will be emitted; the viewport holds the
// styled rendering.
type MessagePreview struct {
	Raw      string
	Viewport viewport.Model
}

// State is everything the views need to render one frame. At most one of
// Picker, Footer and Preview is non-nil: each marks the interaction step the
// pipeline is currently blocked on.
type State struct {
	Width  int
	Height int

	Theme Theme

	Picker  *TypePicker
	Footer  *FooterPrompt
	Preview *MessagePreview

	StatusPhase   string
	StatusMessage string
	Spinner       spinner.Model
	DotCount      int
}
