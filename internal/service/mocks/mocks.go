package mocks

import (
	"context"
	"time"

	"taskreef/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) CreateTask(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) CompleteTask(ctx context.Context, taskID uuid.UUID, telegramID int64, completedAt time.Time) error {
	args := m.Called(ctx, taskID, telegramID, completedAt)
	return args.Error(0)
}

func (m *MockTaskRepository) TasksForDay(ctx context.Context, telegramID int64, day time.Time) ([]*model.Task, error) {
	args := m.Called(ctx, telegramID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}

type MockStreakRepository struct {
	mock.Mock
}

func (m *MockStreakRepository) GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockStreakRepository) UpdateUserCounters(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockStreakRepository) CountTasksForDay(ctx context.Context, telegramID int64, day time.Time) (int, int, error) {
	args := m.Called(ctx, telegramID, day)
	return args.Int(0), args.Int(1), args.Error(2)
}

type MockRewardRepository struct {
	mock.Mock
}

func (m *MockRewardRepository) GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockRewardRepository) RedeemReward(ctx context.Context, telegramID int64, taskID uuid.UUID,
	apply func(u *model.User) (*model.Redemption, error)) error {
	args := m.Called(ctx, telegramID, taskID, apply)
	return args.Error(0)
}
