package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bomtool/internal/application/usecase"
	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/bnema/bomtool/internal/infrastructure/persistence/sqlite"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("BOMTOOL_LOG_LEVEL", "")
	t.Setenv("BOMTOOL_LOG_FORMAT", "")
	t.Setenv("BOMTOOL_DATABASE_PATH", "")
	return root
}

// execute runs rootCmd with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		if app != nil {
			_ = app.Close()
			app = nil
		}
		stateJSON = false
		stateYes = false
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seedState(t *testing.T, root string) {
	t.Helper()
	db := sqlite.NewLazyDB(filepath.Join(root, "data", "bomtool", "bomtool.sqlite"))
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewLazyAppStateRepository(db)
	require.NoError(t, usecase.NewSaveStateUseCase(repo).Execute(context.Background(), entity.DefaultAppState()))
}

func TestConfigCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "path lists config file and dirs",
			args: []string{"config", "path"},
			want: []string{"config.toml", filepath.Join("data", "bomtool"), filepath.Join("state", "bomtool", "logs")},
		},
		{
			name: "show prints merged config as toml",
			args: []string{"config", "show"},
			want: []string{"[workspace]", "side_panel_width", "[session]"},
		},
		{
			name: "schema prints json schema",
			args: []string{"config", "schema"},
			want: []string{`"title": "bomtool configuration"`, `"side_panel_width"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateXDG(t)
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestStateShow_Empty(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "state", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved workspace")
}

func TestStateShow_Summary(t *testing.T) {
	root := isolateXDG(t)
	seedState(t, root)

	out, err := execute(t, "state", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "next ordinal 3")
	assert.Contains(t, out, "Windows")
	assert.Contains(t, out, "Tiles")
}

func TestStateShow_JSON(t *testing.T) {
	root := isolateXDG(t)
	seedState(t, root)

	out, err := execute(t, "state", "show", "--json")
	require.NoError(t, err)

	var snap entity.AppStateSnapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, entity.AppStateVersion, snap.Version)
	assert.Equal(t, 3, snap.NextOrdinal)
	assert.Len(t, snap.Windows, len(entity.WindowKinds()))
}

func TestStateReset_Yes(t *testing.T) {
	root := isolateXDG(t)
	seedState(t, root)

	out, err := execute(t, "state", "reset", "-y")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved workspace removed")

	out, err = execute(t, "state", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved workspace")
}

func TestVersion_SkipsAppInit(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bomtool")
	assert.Nil(t, app)
}
