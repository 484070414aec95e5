package ui

import (
	"context"

	"github.com/Cyclone1070/cmsg/internal/config"
	"github.com/Cyclone1070/cmsg/internal/message"
	"github.com/Cyclone1070/cmsg/internal/ui/services"
	tea "github.com/charmbracelet/bubbletea"
)

// UI implements the Interactor using Bubble Tea
type UI struct {
	program *tea.Program

	// Pipeline -> UI channels
	typeReq     chan typeRequest
	typeResp    chan typeResponse
	footerReq   chan footerRequest
	footerResp  chan string
	confirmReq  chan confirmRequest
	confirmResp chan confirmResponse
	statusChan  chan statusMsg

	// Ready signal
	readyChan chan struct{}
}

// Internal message types
type typeRequest struct {
	Candidates []message.Candidate
}

type typeResponse struct {
	Choice  string
	Aborted bool
}

type footerRequest struct {
	Prompt string
}

type confirmRequest struct {
	Raw string
}

type confirmResponse struct {
	Decision Confirmation
	Aborted  bool
}

type statusMsg struct {
	Phase   string
	Message string
}

// UIChannels holds the channels for UI communication
type UIChannels struct {
	TypeReq     chan typeRequest
	TypeResp    chan typeResponse
	FooterReq   chan footerRequest
	FooterResp  chan string
	ConfirmReq  chan confirmRequest
	ConfirmResp chan confirmResponse
	StatusChan  chan statusMsg
	ReadyChan   chan struct{} // Signals when UI is ready to accept requests
}

// NewUIChannels creates a new UIChannels struct with default buffers
func NewUIChannels() *UIChannels {
	return &UIChannels{
		TypeReq:     make(chan typeRequest),
		TypeResp:    make(chan typeResponse),
		FooterReq:   make(chan footerRequest),
		FooterResp:  make(chan string),
		ConfirmReq:  make(chan confirmRequest),
		ConfirmResp: make(chan confirmResponse),
		StatusChan:  make(chan statusMsg, 10),
		ReadyChan:   make(chan struct{}),
	}
}

// NewUI creates a new Bubble Tea UI
func NewUI(
	channels *UIChannels,
	cfg *config.Config,
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
) *UI {
	ui := &UI{
		typeReq:     channels.TypeReq,
		typeResp:    channels.TypeResp,
		footerReq:   channels.FooterReq,
		footerResp:  channels.FooterResp,
		confirmReq:  channels.ConfirmReq,
		confirmResp: channels.ConfirmResp,
		statusChan:  channels.StatusChan,
		readyChan:   channels.ReadyChan,
	}

	model := newBubbleTeaModel(
		ui.typeReq,
		ui.typeResp,
		ui.footerReq,
		ui.footerResp,
		ui.confirmReq,
		ui.confirmResp,
		ui.statusChan,
		ui.readyChan,
		cfg,
		renderer,
		spinnerFactory,
	)

	ui.program = tea.NewProgram(model, tea.WithAltScreen())

	return ui
}

// Start starts the UI program
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}

// Quit asks the UI program to exit. Safe to call from any goroutine.
func (u *UI) Quit() {
	u.program.Quit()
}

// SelectType presents the ranked candidate list and blocks until the user
// picks a type or aborts.
func (u *UI) SelectType(ctx context.Context, candidates []message.Candidate) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case u.typeReq <- typeRequest{Candidates: candidates}:
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case resp := <-u.typeResp:
			if resp.Aborted {
				return "", ErrAborted
			}
			return resp.Choice, nil
		}
	}
}

// ReadFooter prompts the user for an optional footer line
func (u *UI) ReadFooter(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case u.footerReq <- footerRequest{Prompt: prompt}:
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case response := <-u.footerResp:
			return response, nil
		}
	}
}

// ConfirmMessage shows the rendered commit message and waits for a verdict
func (u *UI) ConfirmMessage(ctx context.Context, rendered string) (Confirmation, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case u.confirmReq <- confirmRequest{Raw: rendered}:
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case resp := <-u.confirmResp:
			if resp.Aborted {
				return "", ErrAborted
			}
			return resp.Decision, nil
		}
	}
}

// WriteStatus updates the status bar
func (u *UI) WriteStatus(phase string, message string) {
	select {
	case u.statusChan <- statusMsg{Phase: phase, Message: message}:
	default:
		// Drop if channel is full
	}
}

// Ready returns a channel that is closed when the UI is ready to accept requests
func (u *UI) Ready() <-chan struct{} {
	return u.readyChan
}
