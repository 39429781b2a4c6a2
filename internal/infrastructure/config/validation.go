package config

import (
	"fmt"
	"strings"

	domainvalidation "github.com/bnema/bomtool/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateSession(config)...)
	validationErrors = append(validationErrors, validateWorkspace(config)...)
	validationErrors = append(validationErrors,
		domainvalidation.ValidateRequiredColumns("importer.required_columns", config.Importer.RequiredColumns)...)
	validationErrors = append(validationErrors,
		domainvalidation.ValidatePaletteHex("appearance.palette", config.Appearance.Palette.Colors())...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "text", "json", "console":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: text, json, console (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.MaxEvents < 1 {
		validationErrors = append(validationErrors, "logging.max_events must be at least 1")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateSession(config *Config) []string {
	if config.Session.AutosaveIntervalSeconds < 0 {
		return []string{"session.autosave_interval_seconds must be non-negative (0 disables autosave)"}
	}
	return nil
}

func validateWorkspace(config *Config) []string {
	w := config.Workspace.SidePanelWidth
	if w < minSidePanelWidth || w > maxSidePanelWidth {
		return []string{fmt.Sprintf("workspace.side_panel_width must be between %d and %d", minSidePanelWidth, maxSidePanelWidth)}
	}
	return nil
}
