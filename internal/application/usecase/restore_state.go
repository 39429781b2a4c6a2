package usecase

import (
	"context"
	"errors"

	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/bnema/bomtool/internal/domain/repository"
	"github.com/bnema/bomtool/internal/logging"
)

// StateSource tells where a restored state came from.
type StateSource string

const (
	StateSourceSaved   StateSource = "saved"
	StateSourceDefault StateSource = "default"
)

// RestoreStateUseCase loads the persisted workspace, falling back to the
// default workspace whenever the record is absent or unusable.
type RestoreStateUseCase struct {
	stateRepo repository.AppStateRepository
}

// NewRestoreStateUseCase creates a new RestoreStateUseCase.
func NewRestoreStateUseCase(stateRepo repository.AppStateRepository) *RestoreStateUseCase {
	return &RestoreStateUseCase{stateRepo: stateRepo}
}

// RestoreStateOutput contains the state to start from.
type RestoreStateOutput struct {
	State  *entity.AppState
	Source StateSource
	// WindowsReset is set when the saved window list no longer matched the
	// declared window kinds and was rebuilt.
	WindowsReset bool
	// Fallback holds the reason a saved record was discarded, if any.
	Fallback error
}

// Execute never fails: every problem with the saved record ends in the
// default state and is reported through Fallback.
func (uc *RestoreStateUseCase) Execute(ctx context.Context) *RestoreStateOutput {
	log := logging.FromContext(ctx)

	snap, err := uc.stateRepo.LoadState(ctx, entity.AppStateKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load saved state, using default workspace")
		return defaultOutput(err)
	}
	if snap == nil {
		log.Debug().Msg("no saved state, using default workspace")
		return defaultOutput(nil)
	}

	state, windowsReset, err := entity.AppStateFromSnapshot(snap)
	if err != nil {
		event := log.Warn().Err(err)
		if errors.Is(err, entity.ErrVersionMismatch) {
			event = event.Int("state_version", snap.Version).Int("current_version", entity.AppStateVersion)
		}
		event.Msg("saved state is unusable, using default workspace")
		return defaultOutput(err)
	}

	if windowsReset {
		log.Info().
			Int("saved_windows", len(snap.Windows)).
			Int("declared_windows", len(entity.WindowKinds())).
			Msg("window list changed since last save, windows reset")
	}

	log.Info().
		Int("pane_count", state.Tree.PaneCount()).
		Time("saved_at", snap.SavedAt).
		Msg("workspace restored")

	return &RestoreStateOutput{
		State:        state,
		Source:       StateSourceSaved,
		WindowsReset: windowsReset,
	}
}

func defaultOutput(reason error) *RestoreStateOutput {
	return &RestoreStateOutput{
		State:    entity.DefaultAppState(),
		Source:   StateSourceDefault,
		Fallback: reason,
	}
}
