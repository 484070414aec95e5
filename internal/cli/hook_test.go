package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Cyclone1070/cmsg/internal/testing/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hookTemplate = "\n# Please enter the commit message for your changes.\n"

func writeMsgFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readMsgFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

// --- HAPPY PATH TESTS ---

func TestHook_DirtyTree_WritesMessageAboveTemplate(t *testing.T) {
	repoDir := testhelpers.InitTestRepo(t)
	testhelpers.WriteTestFile(t, repoDir, "notes.txt", "hello")
	msgFile := writeMsgFile(t, hookTemplate)

	_, err := executeCommand(t, "", "hook", msgFile, "-C", repoDir)

	require.NoError(t, err)
	content := readMsgFile(t, msgFile)
	assert.True(t, strings.HasPrefix(content, "feat: implement new feature\n"))
	assert.Contains(t, content, "# Please enter the commit message")
}

func TestHook_EmptyMessageFile_JustTheMessage(t *testing.T) {
	repoDir := testhelpers.InitTestRepo(t)
	testhelpers.WriteTestFile(t, repoDir, "notes.txt", "hello")
	msgFile := writeMsgFile(t, "")

	_, err := executeCommand(t, "", "hook", msgFile, "-C", repoDir)

	require.NoError(t, err)
	assert.Equal(t, "feat: implement new feature\n", readMsgFile(t, msgFile))
}

func TestHook_ForcedType_UsesIt(t *testing.T) {
	repoDir := testhelpers.InitTestRepo(t)
	testhelpers.WriteTestFile(t, repoDir, "notes.txt", "hello")
	msgFile := writeMsgFile(t, "")

	_, err := executeCommand(t, "", "hook", msgFile, "-C", repoDir, "--type", "chore")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(readMsgFile(t, msgFile), "chore:"))
}

// --- SKIP CONDITION TESTS ---

func TestHook_UserSuppliedSources_FileUntouched(t *testing.T) {
	repoDir := testhelpers.InitTestRepo(t)
	testhelpers.WriteTestFile(t, repoDir, "notes.txt", "hello")

	for _, source := range []string{"message", "merge", "squash", "commit"} {
		msgFile := writeMsgFile(t, "user message\n")

		_, err := executeCommand(t, "", "hook", msgFile, source, "-C", repoDir)

		require.NoError(t, err)
		assert.Equal(t, "user message\n", readMsgFile(t, msgFile), "source %q", source)
	}
}

func TestHook_TemplateSource_StillGenerates(t *testing.T) {
	repoDir := testhelpers.InitTestRepo(t)
	testhelpers.WriteTestFile(t, repoDir, "notes.txt", "hello")
	msgFile := writeMsgFile(t, "template text\n")

	_, err := executeCommand(t, "", "hook", msgFile, "template", "-C", repoDir)

	require.NoError(t, err)
	content := readMsgFile(t, msgFile)
	assert.True(t, strings.HasPrefix(content, "feat: implement new feature\n"))
	assert.Contains(t, content, "template text")
}

func TestHook_CleanTree_ExitsZeroFileUntouched(t *testing.T) {
	repoDir := testhelpers.InitTestRepo(t)
	msgFile := writeMsgFile(t, hookTemplate)

	_, err := executeCommand(t, "", "hook", msgFile, "-C", repoDir)

	require.NoError(t, err)
	assert.Equal(t, hookTemplate, readMsgFile(t, msgFile))
}

func TestHook_NotARepository_ExitsZeroFileUntouched(t *testing.T) {
	msgFile := writeMsgFile(t, hookTemplate)

	_, err := executeCommand(t, "", "hook", msgFile, "-C", t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, hookTemplate, readMsgFile(t, msgFile))
}

// --- EDGE CASE TESTS ---

func TestHook_MissingMessageFile_Created(t *testing.T) {
	repoDir := testhelpers.InitTestRepo(t)
	testhelpers.WriteTestFile(t, repoDir, "notes.txt", "hello")
	msgFile := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")

	_, err := executeCommand(t, "", "hook", msgFile, "-C", repoDir)

	require.NoError(t, err)
	assert.Equal(t, "feat: implement new feature\n", readMsgFile(t, msgFile))
}

func TestWriteHookMessage_TrimsTemplateLeadingNewlines(t *testing.T) {
	msgFile := writeMsgFile(t, "\n\n# template\n")

	err := writeHookMessage(msgFile, "fix: crash")

	require.NoError(t, err)
	assert.Equal(t, "fix: crash\n\n# template\n", readMsgFile(t, msgFile))
}

func TestHook_TooManyArgs_Rejected(t *testing.T) {
	_, err := executeCommand(t, "", "hook", "a", "b", "c", "d")

	assert.Error(t, err)
}
