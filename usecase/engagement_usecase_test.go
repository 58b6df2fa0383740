package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"video-gateway/domain/model"
	"video-gateway/usecase"
)

type MockEngagementRepo struct {
	mock.Mock
}

func (m *MockEngagementRepo) Add(ctx context.Context, userID, targetID string, kind model.EngagementKind) error {
	args := m.Called(ctx, userID, targetID, kind)
	return args.Error(0)
}

func (m *MockEngagementRepo) Remove(ctx context.Context, userID, targetID string, kind model.EngagementKind) error {
	args := m.Called(ctx, userID, targetID, kind)
	return args.Error(0)
}

func (m *MockEngagementRepo) Exists(ctx context.Context, userID, targetID string, kind model.EngagementKind) (bool, error) {
	args := m.Called(ctx, userID, targetID, kind)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepo) List(ctx context.Context, userID string, kind model.EngagementKind) ([]string, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockViewCache struct {
	mock.Mock
}

func (m *MockViewCache) GetList(ctx context.Context, userID string, kind model.EngagementKind) ([]string, bool) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]string), args.Bool(1)
}

func (m *MockViewCache) SetList(ctx context.Context, userID string, kind model.EngagementKind, ids []string) {
	m.Called(ctx, userID, kind, ids)
}

func (m *MockViewCache) Invalidate(ctx context.Context, userID string, kind model.EngagementKind) {
	m.Called(ctx, userID, kind)
}

func TestEngagementUseCase_DuplicateAddIsSuccess(t *testing.T) {
	mockRepo := new(MockEngagementRepo)
	mockViews := new(MockViewCache)

	mockRepo.On("Add", mock.Anything, "u1", "v1", model.KindLike).
		Return(model.ErrDuplicate).
		Once()
	mockViews.On("Invalidate", mock.Anything, "u1", model.KindLike).Once()

	engagementUsecase := usecase.NewEngagementUseCase(mockRepo, mockViews)

	err := engagementUsecase.Apply(context.Background(), "u1", "v1", model.KindLike, usecase.ActionAdd)
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
	mockViews.AssertExpectations(t)
}

func TestEngagementUseCase_RemoveInvalidatesView(t *testing.T) {
	mockRepo := new(MockEngagementRepo)
	mockViews := new(MockViewCache)

	mockRepo.On("Remove", mock.Anything, "u1", "ch1", model.KindSubscribe).Return(nil).Once()
	mockViews.On("Invalidate", mock.Anything, "u1", model.KindSubscribe).Once()

	engagementUsecase := usecase.NewEngagementUseCase(mockRepo, mockViews)

	err := engagementUsecase.Apply(context.Background(), "u1", "ch1", model.KindSubscribe, usecase.ActionRemove)
	require.NoError(t, err)
	mockViews.AssertExpectations(t)
}

func TestEngagementUseCase_FailedMutationKeepsViewFresh(t *testing.T) {
	mockRepo := new(MockEngagementRepo)
	mockViews := new(MockViewCache)

	mockRepo.On("Add", mock.Anything, "u1", "v1", model.KindSave).
		Return(assert.AnError).
		Once()

	engagementUsecase := usecase.NewEngagementUseCase(mockRepo, mockViews)

	err := engagementUsecase.Apply(context.Background(), "u1", "v1", model.KindSave, usecase.ActionAdd)
	assert.Error(t, err)
	mockViews.AssertNotCalled(t, "Invalidate")
}

func TestEngagementUseCase_InvalidAction(t *testing.T) {
	engagementUsecase := usecase.NewEngagementUseCase(new(MockEngagementRepo), new(MockViewCache))

	err := engagementUsecase.Apply(context.Background(), "u1", "v1", model.KindLike, "flip")
	assert.Error(t, err)
}

func TestEngagementUseCase_ListUsesViewCache(t *testing.T) {
	mockRepo := new(MockEngagementRepo)
	mockViews := new(MockViewCache)

	mockViews.On("GetList", mock.Anything, "u1", model.KindLike).
		Return([]string{"v1", "v2"}, true).
		Once()

	engagementUsecase := usecase.NewEngagementUseCase(mockRepo, mockViews)

	ids, err := engagementUsecase.List(context.Background(), "u1", model.KindLike)
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2"}, ids)
	mockRepo.AssertNotCalled(t, "List")
}

func TestEngagementUseCase_ListMissRepopulates(t *testing.T) {
	mockRepo := new(MockEngagementRepo)
	mockViews := new(MockViewCache)

	mockViews.On("GetList", mock.Anything, "u1", model.KindWatchLater).Return(nil, false).Once()
	mockRepo.On("List", mock.Anything, "u1", model.KindWatchLater).Return([]string{"v9"}, nil).Once()
	mockViews.On("SetList", mock.Anything, "u1", model.KindWatchLater, []string{"v9"}).Once()

	engagementUsecase := usecase.NewEngagementUseCase(mockRepo, mockViews)

	ids, err := engagementUsecase.List(context.Background(), "u1", model.KindWatchLater)
	require.NoError(t, err)
	assert.Equal(t, []string{"v9"}, ids)
	mockViews.AssertExpectations(t)
}
