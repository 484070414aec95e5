package config

import (
	"fmt"
)

// Validate checks config values for correctness.
// Returns an error listing every violation if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Message validation
	if c.Message.MaxFilesInBody < 0 {
		errs = append(errs, "message.max_files_in_body must be >= 0")
	}

	// UI validation
	if c.UI.TickIntervalMs < 1 {
		errs = append(errs, "ui.tick_interval_ms must be >= 1")
	}
	if c.UI.ColorPrimary == "" {
		errs = append(errs, "ui.color_primary must not be empty")
	}
	if c.UI.ColorSuccess == "" {
		errs = append(errs, "ui.color_success must not be empty")
	}
	if c.UI.ColorError == "" {
		errs = append(errs, "ui.color_error must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
