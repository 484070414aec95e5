package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Message MessageConfig `json:"message"`
	UI      UIConfig      `json:"ui"`
}

// MessageConfig controls how the commit message is composed.
type MessageConfig struct {
	// MaxFilesInBody is the largest change set that still gets a per-file
	// listing in the body; bigger sets collapse to a one-line count summary.
	MaxFilesInBody int `json:"max_files_in_body"` // Default: 20

	// IncludeFooter enables the footer prompt step.
	IncludeFooter bool `json:"include_footer"` // Default: false

	// FooterPrompt is the label shown above the footer input.
	FooterPrompt string `json:"footer_prompt"` // Default: "Footer (e.g. Closes #123):"
}

// UIConfig controls the terminal UI appearance.
type UIConfig struct {
	ColorPrimary   string `json:"color_primary"`    // Default: "63"
	ColorSuccess   string `json:"color_success"`    // Default: "42"
	ColorError     string `json:"color_error"`      // Default: "196"
	TickIntervalMs int    `json:"tick_interval_ms"` // Default: 300
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Message: MessageConfig{
			MaxFilesInBody: 20,
			IncludeFooter:  false,
			FooterPrompt:   "Footer (e.g. Closes #123):",
		},
		UI: UIConfig{
			ColorPrimary:   "63",
			ColorSuccess:   "42",
			ColorError:     "196",
			TickIntervalMs: 300,
		},
	}
}
