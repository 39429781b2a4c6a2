package config

import "github.com/bnema/bomtool/internal/domain/entity"

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
	defaultTimeFormat = "15:04:05"
	defaultMaxEvents  = 1000 // events
	defaultMaxSizeMB  = 10   // megabytes
	defaultMaxBackups = 3    // files

	// Session defaults
	defaultAutosaveIntervalSeconds = 30

	// Workspace defaults
	defaultSidePanelWidth = 36 // cells
	minSidePanelWidth     = 16
	maxSidePanelWidth     = 120
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			TimeFormat: defaultTimeFormat,
			MaxEvents:  defaultMaxEvents,
			MaxSizeMB:  defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
		},
		Session: SessionConfig{
			RestoreOnStart:          true,
			AutosaveIntervalSeconds: defaultAutosaveIntervalSeconds,
		},
		Workspace: WorkspaceConfig{
			SidePanelWidth:   defaultSidePanelWidth,
			ShowCloseButtons: true,
			ShowAddButtons:   true,
		},
		Importer: ImporterConfig{
			RequiredColumns: entity.DefaultRequiredColumns(),
		},
		Appearance: AppearanceConfig{
			Palette: DefaultPalette(),
		},
	}
}

// DefaultPalette is a muted dark palette.
func DefaultPalette() Palette {
	return Palette{
		Text:     "#cdd6f4",
		Muted:    "#7f849c",
		Accent:   "#89b4fa",
		Border:   "#45475a",
		Selected: "#f9e2af",
		Error:    "#f38ba8",
	}
}
