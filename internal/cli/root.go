// Package cli wires the generator pipeline to the command line: flag
// parsing, configuration layering, mode selection and output.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Cyclone1070/cmsg/internal/config"
	"github.com/Cyclone1070/cmsg/internal/generator"
	"github.com/Cyclone1070/cmsg/internal/git"
	"github.com/Cyclone1070/cmsg/internal/logging"
	"github.com/Cyclone1070/cmsg/internal/notify"
	"github.com/Cyclone1070/cmsg/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagType    string
	flagYes     bool
	flagFooter  string
	flagMaxBody int
	flagStdin   bool
	flagRepo    string
	flagOutput  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cmsg",
	Short: "Generate a conventional commit message from the working tree",
	Long: `cmsg inspects the git working tree and composes a conventional commit
message (type, scope, subject, body, footer) from the shape of the changed
paths. No file contents are read and nothing is committed; the message is
printed to stdout or written with --output.

Interactive runs open a picker for the commit type and a preview of the
message. Piped output, --yes, or --type switch to automatic mode, which
accepts the suggested type without prompting.`,
	Args:          cobra.NoArgs,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagType, "type", "t", "", "commit type to use instead of the suggestion")
	rootCmd.PersistentFlags().StringVar(&flagFooter, "footer", "", "footer line to append (skips the footer prompt)")
	rootCmd.PersistentFlags().IntVar(&flagMaxBody, "max-body-files", 0, "file count above which the body becomes a summary line")
	rootCmd.PersistentFlags().StringVarP(&flagRepo, "repo", "C", ".", "path to the repository")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "accept the suggested message without prompting")
	rootCmd.Flags().BoolVar(&flagStdin, "stdin", false, "read status text from stdin instead of the repository")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write the message to a file instead of stdout")

	rootCmd.AddCommand(hookCmd)
}

// SetVersionInfo sets the version string displayed by the root command.
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)
}

// Execute runs the root command and maps pipeline errors to exit codes.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, generator.ErrNoChanges):
			notify.PrintWarning("nothing to commit, working tree clean")
		case errors.Is(err, ui.ErrAborted), errors.Is(err, context.Canceled):
			notify.PrintWarning("aborted, no message generated")
		default:
			notify.PrintError("%v", err)
		}
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, _ []string) error {
	statusText, repo, err := readStatusText(cmd)
	if err != nil {
		return err
	}

	cfg := resolveConfig(cmd, repo)
	opts := generator.Options{
		MaxFilesInBody: cfg.Message.MaxFilesInBody,
		IncludeFooter:  cfg.Message.IncludeFooter,
		FooterPrompt:   cfg.Message.FooterPrompt,
		Footer:         flagFooter,
	}

	interactive := useTUI()
	logger := buildLogger(interactive)
	defer func() { _ = logger.Sync() }()

	var result string
	if interactive {
		result, err = runTUI(cmd.Context(), cfg, opts, statusText, logger)
	} else {
		auto := &ui.Auto{Type: flagType, Footer: flagFooter}
		gen := generator.New(opts, auto, logger)
		result, err = gen.Run(cmd.Context(), statusText)
	}
	if err != nil {
		return err
	}

	return writeResult(cmd, result)
}

// readStatusText acquires the porcelain status text, either from stdin or
// from the repository at --repo. The repository is also returned so its
// config section can layer onto the defaults; it is nil for stdin input.
func readStatusText(cmd *cobra.Command) (string, *git.Repository, error) {
	if flagStdin {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("failed to read status from stdin: %w", err)
		}
		return string(raw), nil, nil
	}

	repo, err := git.Open(flagRepo)
	if err != nil {
		return "", nil, err
	}
	statusText, err := repo.StatusText()
	if err != nil {
		return "", nil, err
	}
	return statusText, repo, nil
}

// resolveConfig layers configuration sources: defaults, then the user's
// dotfile, then the repository's [cmsg] git config section, then flags.
func resolveConfig(cmd *cobra.Command, repo *git.Repository) *config.Config {
	cfg, err := config.Load()
	if err != nil {
		notify.PrintWarning("failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	if repo != nil {
		options, err := repo.ConfigSection("cmsg")
		if err != nil {
			notify.PrintWarning("failed to read repository config: %v", err)
		} else if len(options) > 0 {
			if err := config.ApplyRepoOptions(cfg, options); err != nil {
				notify.PrintWarning("ignoring repository config: %v", err)
			}
		}
	}

	if cmd.Flags().Changed("max-body-files") {
		cfg.Message.MaxFilesInBody = flagMaxBody
	}
	if flagFooter != "" {
		cfg.Message.IncludeFooter = true
	}

	return cfg
}

// useTUI decides between the interactive picker and automatic mode. Forced
// types, --yes, stdin input and piped stdout all run without a terminal.
func useTUI() bool {
	if flagYes || flagType != "" || flagStdin {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// buildLogger builds the zap logger for this run. Interactive runs log to a
// file so the alternate screen stays clean; automatic runs log to stderr.
func buildLogger(interactive bool) *zap.Logger {
	opts := logging.Options{Verbose: flagVerbose}
	if interactive {
		path, err := logging.DefaultLogPath()
		if err != nil {
			return zap.NewNop()
		}
		opts.FilePath = path
	}

	logger, err := logging.Build(opts)
	if err != nil {
		notify.PrintWarning("logging disabled: %v", err)
		return zap.NewNop()
	}
	return logger
}

func writeResult(cmd *cobra.Command, result string) error {
	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, []byte(result+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write message to %s: %w", flagOutput, err)
		}
		return nil
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}
