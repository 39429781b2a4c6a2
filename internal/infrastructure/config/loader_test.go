package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG directory at a fresh temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("BOMTOOL_LOG_LEVEL", "")
	t.Setenv("BOMTOOL_LOG_FORMAT", "")
	return root
}

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, "config", appName)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configName), []byte(content), filePerm))
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, 30, mgr.viper.GetInt("session.autosave_interval_seconds"))
	assert.True(t, mgr.viper.GetBool("workspace.show_add_buttons"))
	assert.Equal(t, "#89b4fa", mgr.viper.GetString("appearance.palette.accent"))
}

func TestManagerLoad_CreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.True(t, mgr.Created())
	assert.FileExists(t, filepath.Join(root, "config", appName, configName))
	assert.FileExists(t, filepath.Join(root, "config", appName, schemaName))

	cfg := mgr.Get()
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "state", appName, "logs"), cfg.Logging.LogDir)
	assert.Equal(t, entity.DefaultRequiredColumns(), cfg.Importer.RequiredColumns)
	assert.True(t, cfg.Session.RestoreOnStart)

	// A second load reads the file it just wrote.
	again, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, again.Load())
	assert.False(t, again.Created())
	assert.Equal(t, cfg.Importer.RequiredColumns, again.Get().Importer.RequiredColumns)
}

func TestManagerLoad_ReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, `
[logging]
level = "WARNING"
format = "json"

[session]
autosave_interval_seconds = 0

[workspace]
side_panel_width = 40

[[importer.required_columns]]
name = " ref "
type = "str"
synonyms = ["designator"]
`)
	t.Setenv("BOMTOOL_LOG_FORMAT", "console")
	t.Setenv("BOMTOOL_DATABASE_PATH", filepath.Join(root, "custom.sqlite"))

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 0, cfg.Session.AutosaveIntervalSeconds)
	assert.Equal(t, 40, cfg.Workspace.SidePanelWidth)
	assert.Equal(t, filepath.Join(root, "custom.sqlite"), cfg.Database.Path)
	require.Len(t, cfg.Importer.RequiredColumns, 1)
	assert.Equal(t, "ref", cfg.Importer.RequiredColumns[0].Name)
	assert.Equal(t, []string{"designator"}, cfg.Importer.RequiredColumns[0].Synonyms)
}

func TestManagerLoad_InvalidValues(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, `
[workspace]
side_panel_width = 4

[appearance.palette]
accent = "blue"
`)

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workspace.side_panel_width")
	assert.Contains(t, err.Error(), "appearance.palette.accent")
}

func TestManagerLoad_MalformedFile(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, "[logging\nlevel = ")

	mgr, err := NewManager()
	require.NoError(t, err)
	assert.Error(t, mgr.Load())
}

func TestManagerGet_ReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Workspace.SidePanelWidth = 99
	cfg.Importer.RequiredColumns[0].Name = "changed"

	fresh := mgr.Get()
	assert.Equal(t, defaultSidePanelWidth, fresh.Workspace.SidePanelWidth)
	assert.Equal(t, "key", fresh.Importer.RequiredColumns[0].Name)
}

func TestManagerSave_WritesAndReloads(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Workspace.ShowAddButtons = false
	cfg.Session.AutosaveIntervalSeconds = 120
	require.NoError(t, mgr.Save(cfg))

	assert.False(t, mgr.Get().Workspace.ShowAddButtons)
	assert.Equal(t, 120, mgr.Get().Session.AutosaveIntervalSeconds)

	cfg.Workspace.SidePanelWidth = 1
	assert.Error(t, mgr.Save(cfg))
	assert.Error(t, mgr.Save(nil))
}

func TestManagerGet_BeforeLoad(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " OFF "
	cfg.Logging.Format = "pretty"
	cfg.Logging.TimeFormat = ""
	cfg.Appearance.Palette.Accent = " #AABBCC"

	normalizeConfig(cfg)

	assert.Equal(t, "disabled", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, defaultTimeFormat, cfg.Logging.TimeFormat)
	assert.Equal(t, "#aabbcc", cfg.Appearance.Palette.Accent)
}
