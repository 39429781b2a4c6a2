// Package config loads, validates and watches the bomtool configuration.
package config

import "github.com/bnema/bomtool/internal/domain/entity"

// Config is the full bomtool configuration as read from config.toml.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	// Session controls how the workspace is restored and saved.
	Session SessionConfig `mapstructure:"session" toml:"session" json:"session"`
	// Workspace holds tile tree display settings.
	Workspace  WorkspaceConfig  `mapstructure:"workspace" toml:"workspace" json:"workspace"`
	Importer   ImporterConfig   `mapstructure:"importer" toml:"importer" json:"importer"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// DatabaseConfig locates the state database.
type DatabaseConfig struct {
	// Path of the SQLite file. Empty means $XDG_DATA_HOME/bomtool/bomtool.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}

// LoggingConfig controls the run log.
type LoggingConfig struct {
	Level      string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format     string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=text,enum=json,enum=console"`
	TimeFormat string `mapstructure:"time_format" toml:"time_format" json:"time_format"`
	// LogDir defaults to $XDG_STATE_HOME/bomtool/logs.
	LogDir string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir,omitempty"`
	// MaxEvents is the number of events kept for the log viewer window.
	MaxEvents  int `mapstructure:"max_events" toml:"max_events" json:"max_events" jsonschema:"minimum=1"`
	MaxSizeMB  int `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=0"`
	MaxBackups int `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// SessionConfig controls workspace persistence.
type SessionConfig struct {
	// RestoreOnStart loads the saved workspace at startup.
	RestoreOnStart bool `mapstructure:"restore_on_start" toml:"restore_on_start" json:"restore_on_start"`
	// AutosaveIntervalSeconds saves the workspace periodically. 0 disables it.
	AutosaveIntervalSeconds int `mapstructure:"autosave_interval_seconds" toml:"autosave_interval_seconds" json:"autosave_interval_seconds" jsonschema:"minimum=0"` //nolint:lll // struct tags must stay on one line
}

// WorkspaceConfig holds display settings for the tile tree.
type WorkspaceConfig struct {
	SidePanelWidth   int  `mapstructure:"side_panel_width" toml:"side_panel_width" json:"side_panel_width" jsonschema:"minimum=16,maximum=120"`
	ShowCloseButtons bool `mapstructure:"show_close_buttons" toml:"show_close_buttons" json:"show_close_buttons"`
	ShowAddButtons   bool `mapstructure:"show_add_buttons" toml:"show_add_buttons" json:"show_add_buttons"`
}

// ImporterConfig configures BOM import tabs.
type ImporterConfig struct {
	RequiredColumns []entity.RequiredColumn `mapstructure:"required_columns" toml:"required_columns" json:"required_columns"`
}

// AppearanceConfig holds the terminal palette.
type AppearanceConfig struct {
	Palette Palette `mapstructure:"palette" toml:"palette" json:"palette"`
}

// Palette holds the colors used by the text surface, as #RRGGBB.
type Palette struct {
	Text     string `mapstructure:"text" toml:"text" json:"text"`
	Muted    string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent   string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border   string `mapstructure:"border" toml:"border" json:"border"`
	Selected string `mapstructure:"selected" toml:"selected" json:"selected"`
	Error    string `mapstructure:"error" toml:"error" json:"error"`
}

// Colors returns the palette keyed by config field name.
func (p Palette) Colors() map[string]string {
	return map[string]string{
		"text":     p.Text,
		"muted":    p.Muted,
		"accent":   p.Accent,
		"border":   p.Border,
		"selected": p.Selected,
		"error":    p.Error,
	}
}
