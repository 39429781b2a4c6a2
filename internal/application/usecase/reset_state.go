package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/bnema/bomtool/internal/domain/repository"
	"github.com/bnema/bomtool/internal/logging"
)

// ResetStateUseCase forgets the persisted workspace so the next start uses
// the default one.
type ResetStateUseCase struct {
	stateRepo repository.AppStateRepository
}

// NewResetStateUseCase creates a new ResetStateUseCase.
func NewResetStateUseCase(stateRepo repository.AppStateRepository) *ResetStateUseCase {
	return &ResetStateUseCase{stateRepo: stateRepo}
}

// Execute deletes the saved record and returns a fresh default state.
func (uc *ResetStateUseCase) Execute(ctx context.Context) (*entity.AppState, error) {
	if err := uc.stateRepo.DeleteState(ctx, entity.AppStateKey); err != nil {
		return nil, fmt.Errorf("delete saved workspace: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("saved workspace deleted")
	return entity.DefaultAppState(), nil
}
