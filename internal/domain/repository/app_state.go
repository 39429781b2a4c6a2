package repository

import (
	"context"

	"github.com/bnema/bomtool/internal/domain/entity"
)

// AppStateRepository persists workspace state snapshots by key.
type AppStateRepository interface {
	// SaveState inserts or replaces the snapshot stored under key.
	SaveState(ctx context.Context, key string, snap *entity.AppStateSnapshot) error

	// LoadState returns the snapshot stored under key.
	// Returns nil, nil when nothing has been saved yet.
	LoadState(ctx context.Context, key string) (*entity.AppStateSnapshot, error)

	// DeleteState removes the snapshot stored under key.
	// Deleting a missing key is not an error.
	DeleteState(ctx context.Context, key string) error
}
