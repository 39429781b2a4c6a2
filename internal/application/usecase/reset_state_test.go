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

func TestResetStateUseCase_Execute(t *testing.T) {
	stateRepo := repomocks.NewMockAppStateRepository(t)
	stateRepo.EXPECT().DeleteState(mock.Anything, entity.AppStateKey).Return(nil)

	state, err := usecase.NewResetStateUseCase(stateRepo).Execute(testContext())
	require.NoError(t, err)
	assert.Equal(t, 3, state.Tree.PaneCount())
	assert.Equal(t, 3, state.NextOrdinal)
}

func TestResetStateUseCase_Execute_DeleteFails(t *testing.T) {
	stateRepo := repomocks.NewMockAppStateRepository(t)
	stateRepo.EXPECT().DeleteState(mock.Anything, entity.AppStateKey).Return(errors.New("readonly"))

	state, err := usecase.NewResetStateUseCase(stateRepo).Execute(testContext())
	assert.Error(t, err)
	assert.Nil(t, state)
}
