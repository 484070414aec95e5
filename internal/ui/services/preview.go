// Package services provides rendering helpers for the UI.
package services

import "github.com/charmbracelet/glamour"

// MarkdownRenderer renders markdown source for the terminal.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer implements MarkdownRenderer with glamour's auto style.
type GlamourRenderer struct{}

// NewGlamourRenderer creates the production renderer.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

// Render renders the markdown at the given wrap width.
func (*GlamourRenderer) Render(content string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}

// RenderCommitPreview renders a commit message for the preview pane. The
// message is fenced so glamour keeps it monospaced instead of interpreting
// it as markdown (a "# issue" footer would otherwise become a heading).
func RenderCommitPreview(msg string, width int, renderer MarkdownRenderer) (string, error) {
	return renderer.Render("```\n"+msg+"\n```", width)
}
