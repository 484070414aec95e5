package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ApplyRepoOptions merges per-repository overrides from a git config section
// (the raw string options of "[cmsg]") into the message configuration.
// Git config keys are case-insensitive and may use dashes, so
// "max-files-in-body", "maxfilesinbody" and "maxFilesInBody" all address
// MessageConfig.MaxFilesInBody. Values are decoded weakly: "30" becomes an
// int, "true"/"1" become bools. Unknown keys are ignored.
//
// Only message options can be set per repository; UI appearance stays with
// the dotfile.
func ApplyRepoOptions(cfg *Config, options map[string]string) error {
	if len(options) == 0 {
		return nil
	}

	// Strip dashes so git's key style lines up with the field names
	// mapstructure matches case-insensitively.
	normalized := make(map[string]string, len(options))
	for key, value := range options {
		normalized[strings.ReplaceAll(key, "-", "")] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg.Message,
	})
	if err != nil {
		return fmt.Errorf("failed to build repo config decoder: %w", err)
	}
	if err := decoder.Decode(normalized); err != nil {
		return fmt.Errorf("invalid repo config option: %w", err)
	}

	return cfg.Validate()
}
