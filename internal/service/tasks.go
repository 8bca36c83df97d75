package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskreef/internal/model"
	"taskreef/internal/repository"
	"taskreef/internal/streak"

	"github.com/google/uuid"
)

type TaskService struct {
	repo    TaskRepository
	streaks *StreakService
	now     func() time.Time
}

func NewTaskService(repo TaskRepository, streaks *StreakService) *TaskService {
	return &TaskService{
		repo:    repo,
		streaks: streaks,
		now:     time.Now,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, telegramID int64, title string, dueDate *time.Time) (*model.Task, error) {
	task := &model.Task{
		ID:             uuid.New(),
		UserTelegramID: telegramID,
		Title:          title,
		Status:         model.TaskStatusTodo,
		DueDate:        dueDate,
		CreatedAt:      s.now(),
	}

	err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// CompleteTask marks the task done and feeds the completion into the
// streak machine. Returns the user's counters after the update.
func (s *TaskService) CompleteTask(ctx context.Context, telegramID int64, taskID uuid.UUID) (*model.User, error) {
	err := s.repo.CompleteTask(ctx, taskID, telegramID, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	user, err := s.streaks.ApplyCompletion(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *TaskService) TodayTasks(ctx context.Context, telegramID int64) ([]*model.Task, error) {
	tasks, err := s.repo.TasksForDay(ctx, telegramID, streak.DayStart(s.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to get today's tasks: %w", err)
	}
	return tasks, nil
}
