package usecase_test

import (
	"errors"
	"testing"

	"github.com/bnema/bomtool/internal/application/usecase"
	"github.com/bnema/bomtool/internal/domain/entity"
	repomocks "github.com/bnema/bomtool/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveStateUseCase_Execute_SavesSnapshot(t *testing.T) {
	ctx := testContext()
	state := entity.DefaultAppState()
	state.Windows.Toggle(entity.WindowLogViewer)

	stateRepo := repomocks.NewMockAppStateRepository(t)
	stateRepo.EXPECT().
		SaveState(mock.Anything, entity.AppStateKey, mock.MatchedBy(func(snap *entity.AppStateSnapshot) bool {
			return snap.Version == entity.AppStateVersion &&
				snap.NextOrdinal == 3 &&
				len(snap.Tree.Tiles) == 4 &&
				snap.Windows[0].Kind == entity.WindowLogViewer &&
				snap.Windows[0].Open
		})).
		Return(nil)

	err := usecase.NewSaveStateUseCase(stateRepo).Execute(ctx, state)
	require.NoError(t, err)
}

func TestSaveStateUseCase_Execute_WrapsRepoError(t *testing.T) {
	repoErr := errors.New("database is locked")

	stateRepo := repomocks.NewMockAppStateRepository(t)
	stateRepo.EXPECT().SaveState(mock.Anything, entity.AppStateKey, mock.Anything).Return(repoErr)

	err := usecase.NewSaveStateUseCase(stateRepo).Execute(testContext(), entity.DefaultAppState())
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.Contains(t, err.Error(), "save workspace")
}

func TestSaveStateUseCase_Execute_NilState(t *testing.T) {
	stateRepo := repomocks.NewMockAppStateRepository(t)

	err := usecase.NewSaveStateUseCase(stateRepo).Execute(testContext(), nil)
	assert.Error(t, err)
}
