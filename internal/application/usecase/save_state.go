package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/bnema/bomtool/internal/domain/repository"
	"github.com/bnema/bomtool/internal/logging"
)

// SaveStateUseCase persists the workspace.
type SaveStateUseCase struct {
	stateRepo repository.AppStateRepository
}

// NewSaveStateUseCase creates a new SaveStateUseCase.
func NewSaveStateUseCase(stateRepo repository.AppStateRepository) *SaveStateUseCase {
	return &SaveStateUseCase{stateRepo: stateRepo}
}

// Execute snapshots state and stores it under the app state key.
func (uc *SaveStateUseCase) Execute(ctx context.Context, state *entity.AppState) error {
	log := logging.FromContext(ctx)

	if state == nil {
		return errors.New("state required")
	}

	snap := entity.SnapshotFromAppState(state)

	log.Debug().
		Int("tile_count", len(snap.Tree.Tiles)).
		Int("next_ordinal", snap.NextOrdinal).
		Msg("saving workspace")

	if err := uc.stateRepo.SaveState(ctx, entity.AppStateKey, snap); err != nil {
		return fmt.Errorf("save workspace: %w", err)
	}
	return nil
}
