package service

import (
	"context"
	"testing"
	"time"

	"taskreef/internal/loot"
	"taskreef/internal/model"
	"taskreef/internal/repository"
	"taskreef/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStreakService_GetStatus_NoCatchUpNeeded(t *testing.T) {
	mockRepo := &mocks.MockStreakRepository{}
	svc := newTestStreakService(mockRepo)

	lastUpdate := testYesterday
	mockRepo.On("GetUserByTelegramID", mock.Anything, int64(42)).
		Return(&model.User{
			TelegramID:       42,
			CurrentStreak:    5,
			DaysWithoutTasks: 1,
			LastStreakUpdate: &lastUpdate,
		}, nil)

	user, tier, err := svc.GetStatus(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 5, user.CurrentStreak)
	assert.Equal(t, 1, user.DaysWithoutTasks)
	assert.Equal(t, loot.TierRare, tier)

	// No day replay, no write.
	mockRepo.AssertNotCalled(t, "CountTasksForDay", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "UpdateUserCounters", mock.Anything, mock.Anything)
}

func TestStreakService_GetStatus_UserNotFound(t *testing.T) {
	mockRepo := &mocks.MockStreakRepository{}
	svc := newTestStreakService(mockRepo)

	mockRepo.On("GetUserByTelegramID", mock.Anything, int64(99)).
		Return(nil, repository.ErrNotFound)

	_, _, err := svc.GetStatus(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStreakService_CatchUp_ReplaysElapsedDays(t *testing.T) {
	mockRepo := &mocks.MockStreakRepository{}
	svc := newTestStreakService(mockRepo)

	// Last evaluated March 7th; the 8th and 9th must be replayed, today
	// (the 10th) must not.
	lastUpdate := time.Date(2025, 3, 7, 18, 0, 0, 0, time.UTC)
	march8 := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	march9 := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	mockRepo.On("GetUserByTelegramID", mock.Anything, int64(42)).
		Return(&model.User{
			TelegramID:       42,
			CurrentStreak:    5,
			LastStreakUpdate: &lastUpdate,
		}, nil)
	mockRepo.On("CountTasksForDay", mock.Anything, int64(42), march8).Return(1, 1, nil).Once()
	mockRepo.On("CountTasksForDay", mock.Anything, int64(42), march9).Return(0, 0, nil).Once()
	mockRepo.On("UpdateUserCounters", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.CurrentStreak == 6 &&
			u.DaysWithoutTasks == 1 &&
			u.LastStreakUpdate != nil &&
			u.LastStreakUpdate.Equal(march9)
	})).Return(nil)

	user, err := svc.CatchUp(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 6, user.CurrentStreak)
	assert.Equal(t, 1, user.DaysWithoutTasks)

	mockRepo.AssertExpectations(t)
}

func TestStreakService_CatchUp_LongIdleGapIsBounded(t *testing.T) {
	mockRepo := &mocks.MockStreakRepository{}
	svc := newTestStreakService(mockRepo)

	// No evaluation on record and a registration far outside the replay
	// window: the replay clamps instead of walking months of history.
	mockRepo.On("GetUserByTelegramID", mock.Anything, int64(42)).
		Return(&model.User{
			TelegramID:       42,
			CurrentStreak:    10,
			RegistrationDate: testNow.Add(-100 * 24 * time.Hour),
		}, nil)
	mockRepo.On("CountTasksForDay", mock.Anything, int64(42), mock.AnythingOfType("time.Time")).
		Return(0, 0, nil).Times(30)
	mockRepo.On("UpdateUserCounters", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.CurrentStreak == 0 && u.DaysWithoutTasks == 30
	})).Return(nil)

	user, err := svc.CatchUp(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 0, user.CurrentStreak)
	mockRepo.AssertExpectations(t)
}

func TestStreakService_ApplyCompletion_FirstCompletionOfTheDay(t *testing.T) {
	mockRepo := &mocks.MockStreakRepository{}
	svc := newTestStreakService(mockRepo)

	lastUpdate := testYesterday
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mockRepo.On("GetUserByTelegramID", mock.Anything, int64(42)).
		Return(&model.User{
			TelegramID:       42,
			CurrentStreak:    5,
			DaysWithoutTasks: 1,
			LastStreakUpdate: &lastUpdate,
		}, nil)
	mockRepo.On("CountTasksForDay", mock.Anything, int64(42), today).Return(1, 1, nil).Once()
	mockRepo.On("UpdateUserCounters", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.CurrentStreak == 6 &&
			u.DaysWithoutTasks == 0 &&
			u.LastStreakUpdate != nil &&
			u.LastStreakUpdate.Equal(today) &&
			u.LastTaskCompleted != nil &&
			u.LastTaskCompleted.Equal(testNow)
	})).Return(nil)

	user, err := svc.ApplyCompletion(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 6, user.CurrentStreak)
	assert.Equal(t, 0, user.DaysWithoutTasks)

	mockRepo.AssertExpectations(t)
}

func TestStreakService_ApplyCompletion_SecondCompletionSameDay(t *testing.T) {
	mockRepo := &mocks.MockStreakRepository{}
	svc := newTestStreakService(mockRepo)

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mockRepo.On("GetUserByTelegramID", mock.Anything, int64(42)).
		Return(&model.User{
			TelegramID:       42,
			CurrentStreak:    6,
			LastStreakUpdate: &today,
		}, nil)
	mockRepo.On("UpdateUserCounters", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		// The streak does not double-count, the completion still lands.
		return u.CurrentStreak == 6 &&
			u.DaysWithoutTasks == 0 &&
			u.LastTaskCompleted != nil
	})).Return(nil)

	user, err := svc.ApplyCompletion(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 6, user.CurrentStreak)

	// The daily transition ran zero times.
	mockRepo.AssertNotCalled(t, "CountTasksForDay", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}
