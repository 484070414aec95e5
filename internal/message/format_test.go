package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- RENDERING TESTS ---

func TestCommitString_HeaderOnly_NoTrailingBlankLines(t *testing.T) {
	c := Commit{Type: "feat", Scope: "src", Subject: "add Login"}

	assert.Equal(t, "feat(src): add Login", c.String())
}

func TestCommitString_NoScope_PlainHeader(t *testing.T) {
	c := Commit{Type: "docs", Subject: "update README"}

	assert.Equal(t, "docs: update README", c.String())
}

func TestCommitString_WithBody_BlankLineSeparated(t *testing.T) {
	c := Commit{
		Type:    "refactor",
		Scope:   "api",
		Subject: "update handlers",
		Body:    "Modified:\n  - api/users.go",
	}

	assert.Equal(t, "refactor(api): update handlers\n\nModified:\n  - api/users.go", c.String())
}

func TestCommitString_BodyAndFooter_EachAfterBlankLine(t *testing.T) {
	c := Commit{
		Type:    "fix",
		Subject: "fix multiple issues",
		Body:    "Changes: 30 modified",
		Footer:  "Closes #42",
	}

	assert.Equal(t, "fix: fix multiple issues\n\nChanges: 30 modified\n\nCloses #42", c.String())
}

func TestCommitString_FooterWithoutBody_SingleSeparator(t *testing.T) {
	c := Commit{Type: "chore", Subject: "update dependencies", Footer: "Reviewed-by: alice"}

	assert.Equal(t, "chore: update dependencies\n\nReviewed-by: alice", c.String())
}

// --- PIPELINE PROPERTY TESTS ---

func composeFromStatus(raw, commitType, footer string, maxFiles int) string {
	cs := ParseStatus(raw)
	return Commit{
		Type:    commitType,
		Scope:   ResolveScope(cs),
		Subject: ComposeSubject(cs, commitType),
		Body:    ComposeBody(cs, maxFiles),
		Footer:  footer,
	}.String()
}

func TestPipeline_SameInput_ByteIdenticalOutput(t *testing.T) {
	raw := " M src/app.ts\nA  src/auth/Login.tsx\n D src/legacy.ts\n?? scratch.ts"

	first := composeFromStatus(raw, "feat", "", 20)
	second := composeFromStatus(raw, "feat", "", 20)

	assert.Equal(t, first, second)
}

func TestPipeline_SingleAddedComponent_FullMessage(t *testing.T) {
	msg := composeFromStatus("A  src/auth/Login.tsx", "feat", "", 20)

	lines := strings.Split(msg, "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "feat(src): add Login", lines[0])
	assert.Contains(t, msg, "Added:\n  - src/auth/Login.tsx")
	assert.False(t, strings.HasSuffix(msg, "\n"))
}

func TestPipeline_ModifiedReadme_DocsMessage(t *testing.T) {
	raw := " M README.md"
	cs := ParseStatus(raw)

	suggestion, ok := DetectType(cs)
	require.True(t, ok)
	assert.Equal(t, "docs", suggestion)

	msg := composeFromStatus(raw, suggestion, "", 20)
	assert.True(t, strings.HasPrefix(msg, "docs: update README"))
}
