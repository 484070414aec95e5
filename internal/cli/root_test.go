package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Cyclone1070/cmsg/internal/generator"
	"github.com/Cyclone1070/cmsg/internal/git"
	"github.com/Cyclone1070/cmsg/internal/testing/testhelpers"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags returns every flag to its default so tests do not leak state
// into each other through the package-level command.
func resetFlags(t *testing.T) {
	t.Helper()
	for _, fs := range []*pflag.FlagSet{rootCmd.PersistentFlags(), rootCmd.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			if err := f.Value.Set(f.DefValue); err != nil {
				t.Fatalf("reset flag %s: %v", f.Name, err)
			}
			f.Changed = false
		})
	}
}

// executeCommand runs the root command with the given stdin and args,
// capturing stdout. HOME points at an empty directory so the user's own
// config file cannot leak into assertions.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func appendGitConfig(t *testing.T, repoPath, section string) {
	t.Helper()
	path := filepath.Join(repoPath, ".git", "config")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.WriteString(section)
	require.NoError(t, err)
}

// --- HAPPY PATH TESTS ---

func TestRoot_StdinYes_PrintsMessage(t *testing.T) {
	out, err := executeCommand(t, "A  src/auth/Login.tsx\n", "--stdin", "--yes")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "feat(src): add Login"))
	assert.Contains(t, out, "Added:\n  - src/auth/Login.tsx")
}

func TestRoot_StdinWithType_UsesForcedType(t *testing.T) {
	out, err := executeCommand(t, " M README.md\n", "--stdin", "--type", "docs")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "docs: update README"))
}

func TestRoot_FooterFlag_Appended(t *testing.T) {
	out, err := executeCommand(t, " M src/app.ts\n", "--stdin", "-y", "--footer", "Closes #3")

	require.NoError(t, err)
	assert.Contains(t, out, "\n\nCloses #3")
}

func TestRoot_MaxBodyFilesFlag_Summarizes(t *testing.T) {
	out, err := executeCommand(t, " M src/a.ts\n M src/b.ts\n", "--stdin", "-y", "--max-body-files", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Changes: 2 modified")
	assert.NotContains(t, out, "Modified:")
}

func TestRoot_OutputFlag_WritesFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "msg.txt")

	out, err := executeCommand(t, "A  src/auth/Login.tsx\n", "--stdin", "-y", "-o", outFile)

	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "feat(src): add Login"))
	assert.True(t, strings.HasSuffix(string(content), "\n"))
}

func TestRoot_RepoFlag_ReadsRepository(t *testing.T) {
	repoDir := testhelpers.InitTestRepo(t)
	testhelpers.WriteTestFile(t, repoDir, "notes.txt", "hello")

	// Test stdout is not a terminal, so this runs in automatic mode.
	out, err := executeCommand(t, "", "-C", repoDir, "-y")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "feat: implement new feature"))
}

func TestRoot_GitConfigOverride_Summarizes(t *testing.T) {
	repoDir := testhelpers.InitTestRepo(t)
	testhelpers.WriteTestFile(t, repoDir, "a.ts", "one")
	testhelpers.WriteTestFile(t, repoDir, "b.ts", "two")
	testhelpers.CommitAll(t, repoDir)
	testhelpers.WriteTestFile(t, repoDir, "a.ts", "one changed")
	testhelpers.WriteTestFile(t, repoDir, "b.ts", "two changed")
	appendGitConfig(t, repoDir, "[cmsg]\n\tmaxfilesinbody = 1\n")

	out, err := executeCommand(t, "", "-C", repoDir, "-y")

	require.NoError(t, err)
	assert.Contains(t, out, "Changes: 2 modified")
	assert.NotContains(t, out, "Modified:")
}

func TestRoot_FlagBeatsGitConfig(t *testing.T) {
	repoDir := testhelpers.InitTestRepo(t)
	testhelpers.WriteTestFile(t, repoDir, "a.ts", "one")
	testhelpers.WriteTestFile(t, repoDir, "b.ts", "two")
	testhelpers.CommitAll(t, repoDir)
	testhelpers.WriteTestFile(t, repoDir, "a.ts", "one changed")
	testhelpers.WriteTestFile(t, repoDir, "b.ts", "two changed")
	appendGitConfig(t, repoDir, "[cmsg]\n\tmaxfilesinbody = 1\n")

	out, err := executeCommand(t, "", "-C", repoDir, "-y", "--max-body-files", "20")

	require.NoError(t, err)
	assert.Contains(t, out, "Modified:\n  - a.ts\n  - b.ts")
}

// --- UNHAPPY PATH TESTS ---

func TestRoot_EmptyStdin_NoChanges(t *testing.T) {
	_, err := executeCommand(t, "", "--stdin", "-y")

	assert.ErrorIs(t, err, generator.ErrNoChanges)
}

func TestRoot_CleanRepository_NoChanges(t *testing.T) {
	repoDir := testhelpers.InitTestRepo(t)

	_, err := executeCommand(t, "", "-C", repoDir, "-y")

	assert.ErrorIs(t, err, generator.ErrNoChanges)
}

func TestRoot_NotARepository_Error(t *testing.T) {
	_, err := executeCommand(t, "", "-C", t.TempDir(), "-y")

	require.Error(t, err)
	var openErr *git.OpenError
	assert.True(t, errors.As(err, &openErr))
}

// --- MODE SELECTION TESTS ---

func TestUseTUI_YesFlag_ForcesAuto(t *testing.T) {
	resetFlags(t)
	flagYes = true

	assert.False(t, useTUI())
}

func TestUseTUI_TypeFlag_ForcesAuto(t *testing.T) {
	resetFlags(t)
	flagType = "fix"

	assert.False(t, useTUI())
}

func TestUseTUI_StdinFlag_ForcesAuto(t *testing.T) {
	resetFlags(t)
	flagStdin = true

	assert.False(t, useTUI())
}
