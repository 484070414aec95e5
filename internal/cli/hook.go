package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/Cyclone1070/cmsg/internal/generator"
	"github.com/Cyclone1070/cmsg/internal/git"
	"github.com/Cyclone1070/cmsg/internal/notify"
	"github.com/Cyclone1070/cmsg/internal/ui"
	"github.com/spf13/cobra"
)

var hookCmd = &cobra.Command{
	Use:   "hook <message-file> [source [sha]]",
	Short: "Run as a prepare-commit-msg hook",
	Long: `hook generates a commit message in automatic mode and writes it above the
existing content of the message file, so git's comment template stays intact.

Install it by making .git/hooks/prepare-commit-msg run:

  cmsg hook "$1" "$2" "$3"

When git passes a message source (an explicit -m message, a merge, a squash,
or an amended commit) the file already carries a real message and is left
untouched. A clean working tree also leaves the file untouched. The hook
never fails the commit: internal errors are reported as warnings and the
commit proceeds with whatever message git prepared.`,
	Args:         cobra.RangeArgs(1, 3),
	RunE:         runHook,
	SilenceUsage: true,
}

// messageSources are the prepare-commit-msg sources that mean the user (or
// git itself) already supplied a message.
var messageSources = map[string]bool{
	"message": true,
	"merge":   true,
	"squash":  true,
	"commit":  true,
}

func runHook(cmd *cobra.Command, args []string) error {
	msgFile := args[0]
	source := ""
	if len(args) > 1 {
		source = args[1]
	}
	if messageSources[source] {
		return nil
	}

	repo, err := git.Open(flagRepo)
	if err != nil {
		notify.PrintWarning("cmsg hook skipped: %v", err)
		return nil
	}
	statusText, err := repo.StatusText()
	if err != nil {
		notify.PrintWarning("cmsg hook skipped: %v", err)
		return nil
	}

	cfg := resolveConfig(cmd, repo)
	opts := generator.Options{
		MaxFilesInBody: cfg.Message.MaxFilesInBody,
		IncludeFooter:  cfg.Message.IncludeFooter,
		FooterPrompt:   cfg.Message.FooterPrompt,
		Footer:         flagFooter,
	}

	logger := buildLogger(false)
	defer func() { _ = logger.Sync() }()

	auto := &ui.Auto{Type: flagType, Footer: flagFooter}
	gen := generator.New(opts, auto, logger)

	result, err := gen.Run(cmd.Context(), statusText)
	if err != nil {
		if !errors.Is(err, generator.ErrNoChanges) {
			notify.PrintWarning("cmsg hook skipped: %v", err)
		}
		return nil
	}

	if err := writeHookMessage(msgFile, result); err != nil {
		notify.PrintWarning("cmsg hook could not write %s: %v", msgFile, err)
	}
	return nil
}

// writeHookMessage places the generated message at the top of the hook's
// message file, keeping whatever template content git put there.
func writeHookMessage(msgFile, message string) error {
	existing, err := os.ReadFile(msgFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	content := message + "\n"
	if rest := strings.TrimLeft(string(existing), "\n"); rest != "" {
		content += "\n" + rest
	}

	return os.WriteFile(msgFile, []byte(content), 0o644)
}
