package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	created   bool
}

// NewManager creates a new configuration manager reading config.toml from
// the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// BOMTOOL_DATABASE_PATH, BOMTOOL_SESSION_RESTORE_ON_START, ...
	v.SetEnvPrefix("BOMTOOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "BOMTOOL_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind BOMTOOL_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "BOMTOOL_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind BOMTOOL_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := resolvePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// resolvePaths fills the database and log locations left empty.
func resolvePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch config.Logging.Level {
	case "warning":
		config.Logging.Level = "warn"
	case "off":
		config.Logging.Level = "disabled"
	case "":
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	case "console":
		config.Logging.Format = "console"
	default:
		config.Logging.Format = defaultLogFormat
	}

	if config.Logging.TimeFormat == "" {
		config.Logging.TimeFormat = defaultTimeFormat
	}

	for i := range config.Importer.RequiredColumns {
		col := &config.Importer.RequiredColumns[i]
		col.Name = strings.TrimSpace(col.Name)
		for j := range col.Synonyms {
			col.Synonyms[j] = strings.TrimSpace(col.Synonyms[j])
		}
	}

	p := &config.Appearance.Palette
	for _, c := range []*string{&p.Text, &p.Muted, &p.Accent, &p.Border, &p.Selected, &p.Error} {
		*c = strings.ToLower(strings.TrimSpace(*c))
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Importer.RequiredColumns = append([]entity.RequiredColumn(nil), m.config.Importer.RequiredColumns...)
	return &configCopy
}

// Created reports whether Load wrote a fresh default config file.
func (m *Manager) Created() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.created
}

// Save validates cfg and writes the settings the workspace can change.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.viper.Set("workspace.side_panel_width", cfg.Workspace.SidePanelWidth)
	m.viper.Set("workspace.show_close_buttons", cfg.Workspace.ShowCloseButtons)
	m.viper.Set("workspace.show_add_buttons", cfg.Workspace.ShowAddButtons)
	m.viper.Set("session.restore_on_start", cfg.Session.RestoreOnStart)
	m.viper.Set("session.autosave_interval_seconds", cfg.Session.AutosaveIntervalSeconds)

	if err := m.viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	// The watcher reloads on its own.
	if !m.watching {
		return m.reload()
	}
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults to config.toml next to a JSON
// schema of the file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := GenerateSchemaFile(filepath.Dir(configFile)); err != nil {
		return err
	}

	m.created = true
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Empty paths are resolved in Load. The keys still need registering so
	// BOMTOOL_DATABASE_PATH and BOMTOOL_LOGGING_LOG_DIR reach Unmarshal.
	m.viper.SetDefault("database.path", "")
	m.viper.SetDefault("logging.log_dir", "")
	m.setLoggingDefaults(defaults)
	m.setSessionDefaults(defaults)
	m.setWorkspaceDefaults(defaults)
	m.setImporterDefaults(defaults)
	m.setAppearanceDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.time_format", defaults.Logging.TimeFormat)
	m.viper.SetDefault("logging.max_events", defaults.Logging.MaxEvents)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

func (m *Manager) setSessionDefaults(defaults *Config) {
	m.viper.SetDefault("session.restore_on_start", defaults.Session.RestoreOnStart)
	m.viper.SetDefault("session.autosave_interval_seconds", defaults.Session.AutosaveIntervalSeconds)
}

func (m *Manager) setWorkspaceDefaults(defaults *Config) {
	m.viper.SetDefault("workspace.side_panel_width", defaults.Workspace.SidePanelWidth)
	m.viper.SetDefault("workspace.show_close_buttons", defaults.Workspace.ShowCloseButtons)
	m.viper.SetDefault("workspace.show_add_buttons", defaults.Workspace.ShowAddButtons)
}

func (m *Manager) setImporterDefaults(defaults *Config) {
	columns := make([]map[string]any, 0, len(defaults.Importer.RequiredColumns))
	for _, col := range defaults.Importer.RequiredColumns {
		entry := map[string]any{"name": col.Name, "type": string(col.Type)}
		if len(col.Synonyms) > 0 {
			entry["synonyms"] = col.Synonyms
		}
		columns = append(columns, entry)
	}
	m.viper.SetDefault("importer.required_columns", columns)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	for name, color := range defaults.Appearance.Palette.Colors() {
		m.viper.SetDefault("appearance.palette."+name, color)
	}
}
