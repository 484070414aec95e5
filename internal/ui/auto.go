package ui

import (
	"context"
	"errors"

	"github.com/Cyclone1070/cmsg/internal/message"
)

// Auto answers the pipeline's interaction steps without a terminal. It is
// used for --yes runs, piped output and hook mode.
type Auto struct {
	// Type forces the commit type; empty takes the top-ranked candidate,
	// which is the auto-detected suggestion when one exists.
	Type string
	// Footer is attached verbatim when the footer step runs.
	Footer string
}

// SelectType picks the forced type or the top-ranked candidate.
func (a *Auto) SelectType(ctx context.Context, candidates []message.Candidate) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if a.Type != "" {
		return a.Type, nil
	}
	if len(candidates) == 0 {
		return "", errors.New("no commit type candidates")
	}
	return candidates[0].Type, nil
}

// ReadFooter returns the preset footer, if any.
func (a *Auto) ReadFooter(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return a.Footer, nil
}

// ConfirmMessage accepts every message.
func (a *Auto) ConfirmMessage(ctx context.Context, rendered string) (Confirmation, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return ConfirmAccept, nil
}

// WriteStatus discards status updates; there is no terminal to draw on.
func (a *Auto) WriteStatus(phase string, message string) {}
