package config

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bomtool/internal/logging"
)

func TestReload_NotifiesCallbacks(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []*Config
	mgr.OnConfigChange(func(cfg *Config) { got = append(got, cfg) })

	content := "[database]\npath = \"/tmp/other.sqlite\"\n"
	require.NoError(t, os.WriteFile(mgr.GetConfigFile(), []byte(content), filePerm))

	mgr.mu.Lock()
	require.NoError(t, mgr.reload())
	mgr.notifyCallbacksLocked()

	require.Len(t, got, 1)
	assert.Equal(t, "/tmp/other.sqlite", got[0].Database.Path)
	assert.Equal(t, "/tmp/other.sqlite", mgr.Get().Database.Path)
}

func TestReload_KeepsPreviousOnInvalidFile(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	before := mgr.Get()

	require.NoError(t, os.WriteFile(mgr.GetConfigFile(), []byte("[workspace]\nside_panel_width = 2\n"), filePerm))

	mgr.mu.Lock()
	err = mgr.reload()
	mgr.mu.Unlock()

	assert.Error(t, err)
	assert.Equal(t, before, mgr.Get())
}

func TestWatch_Idempotent(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	require.NoError(t, mgr.Watch(context.Background()))
	require.NoError(t, mgr.Watch(context.Background()))
	assert.True(t, mgr.watching)
}

func TestHandleChange_InvalidFileLogsToSuppliedLogger(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	before := mgr.Get()

	stderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	t.Cleanup(func() { os.Stderr = stderr })

	var sink bytes.Buffer
	collector := logging.NewEventCollector(10)
	log := zerolog.New(io.MultiWriter(&sink, collector)).Level(zerolog.DebugLevel)

	require.NoError(t, os.WriteFile(mgr.GetConfigFile(), []byte("[workspace]\nside_panel_width = 2\n"), filePerm))
	mgr.handleChange(&log, fsnotify.Event{Name: mgr.GetConfigFile(), Op: fsnotify.Write})

	require.NoError(t, w.Close())
	os.Stderr = stderr
	leaked, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Empty(t, leaked)

	assert.Contains(t, sink.String(), "failed to reload config")
	events := collector.Events()
	require.Len(t, events, 2)
	assert.Equal(t, zerolog.WarnLevel, events[1].Level)
	assert.Contains(t, events[1].Fields["error"], "side_panel_width")
	assert.Equal(t, before, mgr.Get())
}

func TestHandleChange_ValidFileNotifies(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got *Config
	mgr.OnConfigChange(func(cfg *Config) { got = cfg })

	require.NoError(t, os.WriteFile(mgr.GetConfigFile(), []byte("[workspace]\nside_panel_width = 40\n"), filePerm))
	log := zerolog.Nop()
	mgr.handleChange(&log, fsnotify.Event{Name: mgr.GetConfigFile(), Op: fsnotify.Write})

	require.NotNil(t, got)
	assert.Equal(t, 40, got.Workspace.SidePanelWidth)
}
