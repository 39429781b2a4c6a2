package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/bnema/bomtool/internal/domain/repository"
	"github.com/bnema/bomtool/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/bomtool/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestRepo(t *testing.T) repository.AppStateRepository {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "bomtool.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewAppStateRepository(db)
}

func TestAppStateRepository_LoadMissingReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	snap, err := repo.LoadState(testCtx(), entity.AppStateKey)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestAppStateRepository_SaveLoadRoundTrip(t *testing.T) {
	ctx := testCtx()
	repo := newTestRepo(t)

	state := entity.DefaultAppState()
	state.SidePanelExpanded = false
	state.Windows.Toggle(entity.WindowLogViewer)

	require.NoError(t, repo.SaveState(ctx, entity.AppStateKey, entity.SnapshotFromAppState(state)))

	snap, err := repo.LoadState(ctx, entity.AppStateKey)
	require.NoError(t, err)
	require.NotNil(t, snap)

	restored, reset, err := entity.AppStateFromSnapshot(snap)
	require.NoError(t, err)
	assert.False(t, reset)
	assert.False(t, restored.SidePanelExpanded)
	assert.True(t, restored.Windows.IsOpen(entity.WindowLogViewer))
	assert.Equal(t, 3, restored.Tree.PaneCount())
}

func TestAppStateRepository_SaveOverwrites(t *testing.T) {
	ctx := testCtx()
	repo := newTestRepo(t)

	first := entity.SnapshotFromAppState(entity.DefaultAppState())
	require.NoError(t, repo.SaveState(ctx, entity.AppStateKey, first))

	second := entity.DefaultAppState()
	second.NextOrdinal = 42
	require.NoError(t, repo.SaveState(ctx, entity.AppStateKey, entity.SnapshotFromAppState(second)))

	snap, err := repo.LoadState(ctx, entity.AppStateKey)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, 42, snap.NextOrdinal)
}

func TestAppStateRepository_Delete(t *testing.T) {
	ctx := testCtx()
	repo := newTestRepo(t)

	require.NoError(t, repo.SaveState(ctx, entity.AppStateKey, entity.SnapshotFromAppState(entity.DefaultAppState())))
	require.NoError(t, repo.DeleteState(ctx, entity.AppStateKey))
	require.NoError(t, repo.DeleteState(ctx, "never-saved"))

	snap, err := repo.LoadState(ctx, entity.AppStateKey)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestAppStateRepository_SaveNil(t *testing.T) {
	repo := newTestRepo(t)
	require.Error(t, repo.SaveState(testCtx(), entity.AppStateKey, nil))
}

func TestLazyAppStateRepository_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "bomtool.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyAppStateRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	snap, err := repo.LoadState(ctx, entity.AppStateKey)
	require.NoError(t, err)
	assert.Nil(t, snap)
	assert.True(t, lazy.IsInitialized())
}

func TestMigrations_ReportVersion(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "bomtool.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
