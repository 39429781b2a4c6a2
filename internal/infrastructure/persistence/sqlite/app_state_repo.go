package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/bnema/bomtool/internal/domain/repository"
	"github.com/bnema/bomtool/internal/logging"
)

const (
	upsertAppStateSQL = `
INSERT INTO app_state (key, state_json, version, pane_count, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (key) DO UPDATE SET
    state_json = excluded.state_json,
    version    = excluded.version,
    pane_count = excluded.pane_count,
    updated_at = excluded.updated_at`
	selectAppStateSQL = `SELECT state_json FROM app_state WHERE key = ?`
	deleteAppStateSQL = `DELETE FROM app_state WHERE key = ?`
)

type appStateRepo struct {
	db *sql.DB
}

// NewAppStateRepository creates a repository backed by the app_state table.
func NewAppStateRepository(db *sql.DB) repository.AppStateRepository {
	return &appStateRepo{db: db}
}

// SaveState inserts or replaces the snapshot stored under key.
func (r *appStateRepo) SaveState(ctx context.Context, key string, snap *entity.AppStateSnapshot) error {
	log := logging.FromContext(ctx)
	if snap == nil {
		return errors.New("app state snapshot cannot be nil")
	}

	stateJSON, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal app state: %w", err)
	}

	paneCount := 0
	for _, tile := range snap.Tree.Tiles {
		if tile.Pane != nil {
			paneCount++
		}
	}

	log.Debug().
		Str("key", key).
		Int("tile_count", len(snap.Tree.Tiles)).
		Int("pane_count", paneCount).
		Msg("saving app state")

	if _, err := r.db.ExecContext(ctx, upsertAppStateSQL,
		key, string(stateJSON), snap.Version, paneCount, snap.SavedAt.UTC(),
	); err != nil {
		return fmt.Errorf("upsert app state %q: %w", key, err)
	}
	return nil
}

// LoadState returns the snapshot stored under key, or nil when absent.
func (r *appStateRepo) LoadState(ctx context.Context, key string) (*entity.AppStateSnapshot, error) {
	var stateJSON string
	err := r.db.QueryRowContext(ctx, selectAppStateSQL, key).Scan(&stateJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query app state %q: %w", key, err)
	}

	var snap entity.AppStateSnapshot
	if err := json.Unmarshal([]byte(stateJSON), &snap); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("key", key).
			Msg("failed to unmarshal app state")
		return nil, fmt.Errorf("decode app state %q: %w", key, err)
	}
	return &snap, nil
}

// DeleteState removes the snapshot stored under key.
func (r *appStateRepo) DeleteState(ctx context.Context, key string) error {
	logging.FromContext(ctx).Debug().Str("key", key).Msg("deleting app state")
	if _, err := r.db.ExecContext(ctx, deleteAppStateSQL, key); err != nil {
		return fmt.Errorf("delete app state %q: %w", key, err)
	}
	return nil
}
