package ui

import (
	"time"

	"github.com/Cyclone1070/cmsg/internal/config"
	"github.com/Cyclone1070/cmsg/internal/ui/models"
	"github.com/Cyclone1070/cmsg/internal/ui/services"
	"github.com/Cyclone1070/cmsg/internal/ui/views"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state models.State

	// Dependencies
	renderer     services.MarkdownRenderer
	tickInterval time.Duration

	// Channels for communication with the pipeline
	typeReq     <-chan typeRequest
	typeResp    chan<- typeResponse
	footerReq   <-chan footerRequest
	footerResp  chan<- string
	confirmReq  <-chan confirmRequest
	confirmResp chan<- confirmResponse
	statusChan  <-chan statusMsg

	// Ready signal
	readyChan chan<- struct{}
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.state)
}

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// newBubbleTeaModel creates a new Bubble Tea model
func newBubbleTeaModel(
	typeReq <-chan typeRequest,
	typeResp chan<- typeResponse,
	footerReq <-chan footerRequest,
	footerResp chan<- string,
	confirmReq <-chan confirmRequest,
	confirmResp chan<- confirmResponse,
	statusChan <-chan statusMsg,
	readyChan chan<- struct{},
	cfg *config.Config,
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
) BubbleTeaModel {
	sp := spinnerFactory()

	return BubbleTeaModel{
		state: models.State{
			Theme: models.Theme{
				Primary: cfg.UI.ColorPrimary,
				Success: cfg.UI.ColorSuccess,
				Error:   cfg.UI.ColorError,
			},
			Spinner: sp,
		},
		renderer:     renderer,
		tickInterval: time.Duration(cfg.UI.TickIntervalMs) * time.Millisecond,
		typeReq:      typeReq,
		typeResp:     typeResp,
		footerReq:    footerReq,
		footerResp:   footerResp,
		confirmReq:   confirmReq,
		confirmResp:  confirmResp,
		statusChan:   statusChan,
		readyChan:    readyChan,
	}
}

// Internal messages
type tickMsg time.Time
type typeRequestMsg typeRequest
type footerRequestMsg footerRequest
type confirmRequestMsg confirmRequest
type statusUpdateMsg statusMsg

// Init initializes the model
func (m BubbleTeaModel) Init() tea.Cmd {
	// Signal that UI is ready
	if m.readyChan != nil {
		close(m.readyChan)
	}

	return tea.Batch(
		m.state.Spinner.Tick,
		tick(m.tickInterval),
		listenForTypeRequests(m.typeReq),
		listenForFooterRequests(m.footerReq),
		listenForConfirmRequests(m.confirmReq),
		listenForStatus(m.statusChan),
	)
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if m.state.Preview != nil {
			m.resizePreview()
		}
		return m, nil

	case tickMsg:
		// Update dot animation
		m.state.DotCount = (m.state.DotCount + 1) % 4
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, tea.Batch(cmd, tick(m.tickInterval))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case typeRequestMsg:
		// The suggested candidate is ranked first, so the cursor starts on it
		m.state.Picker = &models.TypePicker{
			Candidates: msg.Candidates,
			Index:      0,
		}
		return m, listenForTypeRequests(m.typeReq)

	case footerRequestMsg:
		ti := textinput.New()
		ti.Placeholder = "Closes #123"
		ti.Focus()
		m.state.Footer = &models.FooterPrompt{
			Prompt: msg.Prompt,
			Input:  ti,
		}
		return m, tea.Batch(listenForFooterRequests(m.footerReq), textinput.Blink)

	case confirmRequestMsg:
		m.state.Preview = &models.MessagePreview{
			Raw:      msg.Raw,
			Viewport: viewport.New(80, 20),
		}
		m.resizePreview()
		return m, listenForConfirmRequests(m.confirmReq)

	case statusUpdateMsg:
		m.state.StatusPhase = msg.Phase
		m.state.StatusMessage = msg.Message
		return m, listenForStatus(m.statusChan)
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle type picker navigation
	if m.state.Picker != nil {
		switch msg.String() {
		case "up", "k":
			if m.state.Picker.Index > 0 {
				m.state.Picker.Index--
			}
		case "down", "j":
			if m.state.Picker.Index < len(m.state.Picker.Candidates)-1 {
				m.state.Picker.Index++
			}
		case "enter":
			if m.state.Picker.Index < len(m.state.Picker.Candidates) {
				m.typeResp <- typeResponse{Choice: m.state.Picker.Candidates[m.state.Picker.Index].Type}
				m.state.Picker = nil
			}
		case "esc", "q":
			m.typeResp <- typeResponse{Aborted: true}
			m.state.Picker = nil
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	// Handle footer prompt
	if m.state.Footer != nil {
		switch msg.String() {
		case "enter":
			m.footerResp <- m.state.Footer.Input.Value()
			m.state.Footer = nil
			return m, nil
		case "esc":
			// The footer is optional; declining it is not an abort
			m.footerResp <- ""
			m.state.Footer = nil
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.state.Footer.Input, cmd = m.state.Footer.Input.Update(msg)
		return m, cmd
	}

	// Handle message preview
	if m.state.Preview != nil {
		switch msg.String() {
		case "enter":
			m.confirmResp <- confirmResponse{Decision: ConfirmAccept}
			m.state.Preview = nil
			return m, nil
		case "t":
			m.confirmResp <- confirmResponse{Decision: ConfirmRetype}
			m.state.Preview = nil
			return m, nil
		case "esc", "q":
			m.confirmResp <- confirmResponse{Aborted: true}
			m.state.Preview = nil
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.state.Preview.Viewport, cmd = m.state.Preview.Viewport.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	return m, nil
}

// resizePreview fits the preview viewport to the window and re-renders its
// content at the new wrap width.
func (m *BubbleTeaModel) resizePreview() {
	if m.state.Preview == nil {
		return
	}
	width := m.state.Width
	height := m.state.Height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}
	m.state.Preview.Viewport.Width = width - 4
	m.state.Preview.Viewport.Height = height - 6 // Reserve space for header, hints and status

	content, err := services.RenderCommitPreview(m.state.Preview.Raw, m.state.Preview.Viewport.Width, m.renderer)
	if err != nil {
		// Fall back to the raw text
		content = m.state.Preview.Raw
	}
	m.state.Preview.Viewport.SetContent(content)
}

// Helper commands for listening to channels
func listenForTypeRequests(ch <-chan typeRequest) tea.Cmd {
	return func() tea.Msg {
		return typeRequestMsg(<-ch)
	}
}

func listenForFooterRequests(ch <-chan footerRequest) tea.Cmd {
	return func() tea.Msg {
		return footerRequestMsg(<-ch)
	}
}

func listenForConfirmRequests(ch <-chan confirmRequest) tea.Cmd {
	return func() tea.Msg {
		return confirmRequestMsg(<-ch)
	}
}

func listenForStatus(ch <-chan statusMsg) tea.Cmd {
	return func() tea.Msg {
		return statusUpdateMsg(<-ch)
	}
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
