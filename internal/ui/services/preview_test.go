package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockMarkdownRenderer records what it was asked to render.
type MockMarkdownRenderer struct {
	LastContent string
	LastWidth   int
	RenderFunc  func(string, int) (string, error)
}

func (m *MockMarkdownRenderer) Render(content string, width int) (string, error) {
	m.LastContent = content
	m.LastWidth = width
	if m.RenderFunc != nil {
		return m.RenderFunc(content, width)
	}
	return content, nil
}

func TestRenderCommitPreview_FencesTheMessage(t *testing.T) {
	renderer := &MockMarkdownRenderer{}

	out, err := RenderCommitPreview("feat(src): add Login", 80, renderer)

	require.NoError(t, err)
	assert.Equal(t, "```\nfeat(src): add Login\n```", renderer.LastContent)
	assert.Equal(t, 80, renderer.LastWidth)
	assert.Contains(t, out, "feat(src): add Login")
}

func TestRenderCommitPreview_HashFooterStaysLiteral(t *testing.T) {
	// A "# 42" style footer must not be treated as a markdown heading;
	// fencing guarantees the renderer sees it as code.
	renderer := &MockMarkdownRenderer{}

	_, err := RenderCommitPreview("fix: crash\n\nCloses #42", 60, renderer)

	require.NoError(t, err)
	assert.Contains(t, renderer.LastContent, "```\nfix: crash")
	assert.Contains(t, renderer.LastContent, "Closes #42\n```")
}

func TestRenderCommitPreview_RendererError_Propagated(t *testing.T) {
	renderer := &MockMarkdownRenderer{
		RenderFunc: func(string, int) (string, error) {
			return "", errors.New("style missing")
		},
	}

	_, err := RenderCommitPreview("chore: tidy", 80, renderer)

	assert.Error(t, err)
}

func TestGlamourRenderer_RendersFencedBlock(t *testing.T) {
	renderer := NewGlamourRenderer()

	out, err := renderer.Render("```\nfeat: subject\n```", 80)

	require.NoError(t, err)
	assert.Contains(t, out, "feat: subject")
}
