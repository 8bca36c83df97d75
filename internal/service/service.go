package service

import (
	"context"
	"errors"
	"time"

	"taskreef/internal/loot"
	"taskreef/internal/model"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already registered")
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskNotCompleted = errors.New("task is not completed")
	ErrAlreadyRedeemed  = errors.New("reward already redeemed for this task")
)

type UserServiceI interface {
	RegisterUser(ctx context.Context, user *model.User) error
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
}

type TaskServiceI interface {
	CreateTask(ctx context.Context, telegramID int64, title string, dueDate *time.Time) (*model.Task, error)
	CompleteTask(ctx context.Context, telegramID int64, taskID uuid.UUID) (*model.User, error)
	TodayTasks(ctx context.Context, telegramID int64) ([]*model.Task, error)
}

type TaskRepository interface {
	CreateTask(ctx context.Context, task *model.Task) error
	CompleteTask(ctx context.Context, taskID uuid.UUID, telegramID int64, completedAt time.Time) error
	TasksForDay(ctx context.Context, telegramID int64, day time.Time) ([]*model.Task, error)
}

type StreakServiceI interface {
	GetStatus(ctx context.Context, telegramID int64) (*model.User, loot.Tier, error)
}

type StreakRepository interface {
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	UpdateUserCounters(ctx context.Context, user *model.User) error
	CountTasksForDay(ctx context.Context, telegramID int64, day time.Time) (due int, completed int, err error)
}

type RewardServiceI interface {
	OpenChest(ctx context.Context, telegramID int64, taskID uuid.UUID) (*model.RewardOutcome, error)
	GetInventory(ctx context.Context, telegramID int64) ([]string, error)
}

type RewardRepository interface {
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	RedeemReward(ctx context.Context, telegramID int64, taskID uuid.UUID,
		apply func(u *model.User) (*model.Redemption, error)) error
}
