package ui

import (
	"context"
	"errors"

	"github.com/Cyclone1070/cmsg/internal/message"
)

// ErrAborted is returned when the user cancels an interaction step instead
// of answering it. The pipeline treats it as a clean abort: no message is
// produced.
var ErrAborted = errors.New("aborted by user")

// Confirmation is the user's verdict on a rendered commit message.
type Confirmation string

const (
	// ConfirmAccept accepts the message as rendered.
	ConfirmAccept Confirmation = "accept"
	// ConfirmRetype reopens the type picker so the message is rebuilt.
	ConfirmRetype Confirmation = "retype"
)

// Interactor defines the contract for the human-decision steps of the
// pipeline.
//
// Context Usage:
// All blocking methods accept context.Context for cancellation support.
// If the surrounding run is cancelled (Ctrl+C), implementations should
// return immediately with the context error. The user declining the step
// itself yields ErrAborted instead.
type Interactor interface {
	// SelectType presents the ranked candidates and returns the chosen
	// commit type.
	SelectType(ctx context.Context, candidates []message.Candidate) (string, error)

	// ReadFooter prompts for an optional footer line; empty means none.
	ReadFooter(ctx context.Context, prompt string) (string, error)

	// ConfirmMessage shows the rendered message and waits for a verdict.
	ConfirmMessage(ctx context.Context, rendered string) (Confirmation, error)

	// WriteStatus displays ephemeral status updates (e.g., "Scanning...")
	WriteStatus(phase string, message string)
}
