// Package generator drives the commit message pipeline: it parses status
// text into a change set, asks the Interactor for the interactive decisions,
// and assembles the final conventional-commit message.
package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cyclone1070/cmsg/internal/message"
	"github.com/Cyclone1070/cmsg/internal/ui"
	"go.uber.org/zap"
)

// ErrNoChanges is returned when the status text contains no classifiable
// changes, so there is nothing to describe.
var ErrNoChanges = errors.New("nothing to commit")

// Options controls message assembly.
type Options struct {
	// MaxFilesInBody is the threshold above which the body collapses into a
	// one-line summary. Zero always summarizes.
	MaxFilesInBody int
	// IncludeFooter enables the footer prompt step.
	IncludeFooter bool
	// FooterPrompt is the prompt text shown by the footer step.
	FooterPrompt string
	// Footer is a preset footer; when set the prompt step is skipped.
	Footer string
}

// Generator runs the pipeline against an Interactor.
type Generator struct {
	opts   Options
	ui     ui.Interactor
	logger *zap.Logger
}

// New creates a Generator. A nil logger is replaced with a no-op one.
func New(opts Options, interactor ui.Interactor, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		opts:   opts,
		ui:     interactor,
		logger: logger,
	}
}

// Run turns porcelain-style status text into a rendered commit message. It
// blocks on the Interactor's decisions; choosing "retype" at the confirmation
// step loops back to the type picker with everything else preserved.
func (g *Generator) Run(ctx context.Context, statusText string) (string, error) {
	g.ui.WriteStatus("scanning", "Reading changes")

	changes := message.ParseStatus(statusText)
	if changes.IsEmpty() {
		g.ui.WriteStatus("error", "nothing to commit")
		return "", ErrNoChanges
	}

	g.logger.Debug("change set parsed",
		zap.Int("modified", len(changes.Modified)),
		zap.Int("added", len(changes.Added)),
		zap.Int("deleted", len(changes.Deleted)),
		zap.Int("renamed", len(changes.Renamed)),
		zap.Int("untracked", len(changes.Untracked)))

	candidates := message.Candidates(changes)

	footer := g.opts.Footer
	footerAsked := footer != ""

	for {
		g.ui.WriteStatus("waiting", "Select a commit type")
		commitType, err := g.ui.SelectType(ctx, candidates)
		if err != nil {
			return "", fmt.Errorf("type selection failed: %w", err)
		}

		// The footer is independent of the chosen type, so a retype round
		// keeps the answer from the first pass.
		if !footerAsked && g.opts.IncludeFooter {
			g.ui.WriteStatus("waiting", "Add a footer")
			footer, err = g.ui.ReadFooter(ctx, g.opts.FooterPrompt)
			if err != nil {
				return "", fmt.Errorf("footer prompt failed: %w", err)
			}
			footerAsked = true
		}

		commit := message.Commit{
			Type:    commitType,
			Scope:   message.ResolveScope(changes),
			Subject: message.ComposeSubject(changes, commitType),
			Body:    message.ComposeBody(changes, g.opts.MaxFilesInBody),
			Footer:  footer,
		}
		rendered := commit.String()

		g.logger.Debug("commit composed",
			zap.String("type", commit.Type),
			zap.String("scope", commit.Scope),
			zap.String("subject", commit.Subject))

		g.ui.WriteStatus("waiting", "Review the message")
		decision, err := g.ui.ConfirmMessage(ctx, rendered)
		if err != nil {
			return "", fmt.Errorf("confirmation failed: %w", err)
		}
		if decision == ui.ConfirmRetype {
			continue
		}

		g.ui.WriteStatus("done", "Message ready")
		return rendered, nil
	}
}
