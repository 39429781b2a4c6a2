package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/bnema/bomtool/internal/domain/repository"
)

// LazyAppStateRepository defers opening the database until the first call.
type LazyAppStateRepository struct {
	provider port.DatabaseProvider
	repo     repository.AppStateRepository
	once     sync.Once
	initErr  error
}

// NewLazyAppStateRepository creates a lazy-loading app state repository.
func NewLazyAppStateRepository(provider port.DatabaseProvider) repository.AppStateRepository {
	return &LazyAppStateRepository{provider: provider}
}

func (r *LazyAppStateRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewAppStateRepository(db)
	})
	return r.initErr
}

func (r *LazyAppStateRepository) SaveState(ctx context.Context, key string, snap *entity.AppStateSnapshot) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SaveState(ctx, key, snap)
}

func (r *LazyAppStateRepository) LoadState(ctx context.Context, key string) (*entity.AppStateSnapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.LoadState(ctx, key)
}

func (r *LazyAppStateRepository) DeleteState(ctx context.Context, key string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.DeleteState(ctx, key)
}
