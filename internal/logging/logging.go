// Package logging builds the application's zap logger.
//
// Plain runs log to stderr. TUI runs log to a file instead, so nothing
// scribbles over the alternate screen while the program owns the terminal.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Options select where and how much the logger writes.
type Options struct {
	// Verbose lowers the level from warn to debug.
	Verbose bool
	// FilePath, when set, redirects all output to that file.
	FilePath string
}

// DefaultConfig returns a standard zap.Config object with custom settings.
func DefaultConfig() zap.Config {
	return zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.WarnLevel), // Quiet by default
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
}

// Build constructs a logger from DefaultConfig adjusted by opts.
func Build(opts Options) (*zap.Logger, error) {
	cfg := DefaultConfig()
	if opts.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	if opts.FilePath != "" {
		if err := ensureLogDir(opts.FilePath); err != nil {
			return nil, fmt.Errorf("failed to prepare log file %s: %w", opts.FilePath, err)
		}
		cfg.OutputPaths = []string{opts.FilePath}
		cfg.ErrorOutputPaths = []string{opts.FilePath}
	}
	return cfg.Build()
}

// DefaultLogPath returns the log file used by TUI runs, under the user
// cache directory.
func DefaultLogPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "cmsg", "cmsg.log"), nil
}

// ensureLogDir creates the log file's directory if it doesn't exist.
func ensureLogDir(logFilePath string) error {
	return os.MkdirAll(filepath.Dir(logFilePath), 0o700)
}
