package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskreef/internal/loot"
	"taskreef/internal/model"
	"taskreef/internal/repository"
	"taskreef/internal/streak"
)

// catchUpWindow bounds the lazy day replay for long-idle users. Three
// task-free days already zero the streak, so replaying further back only
// has to get days_without_tasks right, and that saturates at the window.
const catchUpWindow = 30

type StreakService struct {
	repo StreakRepository
	now  func() time.Time
}

func NewStreakService(repo StreakRepository) *StreakService {
	return &StreakService{
		repo: repo,
		now:  time.Now,
	}
}

// GetStatus returns the caller's streak state after replaying any elapsed
// days, plus the chest tier the next redemption would use.
func (s *StreakService) GetStatus(ctx context.Context, telegramID int64) (*model.User, loot.Tier, error) {
	user, err := s.CatchUp(ctx, telegramID)
	if err != nil {
		return nil, "", err
	}

	return user, loot.TierForStreak(user.CurrentStreak), nil
}

// CatchUp applies the daily transition for every fully elapsed calendar
// day since the last evaluation, reconstructing each day's facts from the
// task store. Today is left to the completion path, so each day is
// evaluated exactly once.
func (s *StreakService) CatchUp(ctx context.Context, telegramID int64) (*model.User, error) {
	user, err := s.repo.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	today := streak.DayStart(s.now())

	from := streak.DayStart(user.RegistrationDate)
	if user.LastStreakUpdate != nil {
		from = streak.DayStart(*user.LastStreakUpdate).Add(24 * time.Hour)
	}
	if earliest := today.Add(-catchUpWindow * 24 * time.Hour); from.Before(earliest) {
		from = earliest
	}
	if !from.Before(today) {
		return user, nil
	}

	state := streak.State{
		CurrentStreak:    user.CurrentStreak,
		DaysWithoutTasks: user.DaysWithoutTasks,
	}

	for day := from; day.Before(today); day = day.Add(24 * time.Hour) {
		due, completed, err := s.repo.CountTasksForDay(ctx, telegramID, day)
		if err != nil {
			return nil, fmt.Errorf("failed to get day facts: %w", err)
		}
		state = streak.Advance(state, streak.DayFacts{TasksDue: due, TasksCompleted: completed})
	}

	lastEvaluated := today.Add(-24 * time.Hour)
	user.CurrentStreak = state.CurrentStreak
	user.DaysWithoutTasks = state.DaysWithoutTasks
	user.LastStreakUpdate = &lastEvaluated

	err = s.repo.UpdateUserCounters(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to persist streak state: %w", err)
	}

	return user, nil
}

// ApplyCompletion folds a completion event that happened now into the
// streak state. The idle counter clears immediately; the streak itself
// grows at most once per day, on the first completion of a day with due
// tasks.
func (s *StreakService) ApplyCompletion(ctx context.Context, telegramID int64) (*model.User, error) {
	user, err := s.CatchUp(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := streak.DayStart(now)

	alreadyAppliedToday := user.LastStreakUpdate != nil &&
		!streak.DayStart(*user.LastStreakUpdate).Before(today)

	if !alreadyAppliedToday {
		due, completed, err := s.repo.CountTasksForDay(ctx, telegramID, today)
		if err != nil {
			return nil, fmt.Errorf("failed to get day facts: %w", err)
		}

		state := streak.Advance(
			streak.State{CurrentStreak: user.CurrentStreak, DaysWithoutTasks: user.DaysWithoutTasks},
			streak.DayFacts{TasksDue: due, TasksCompleted: completed},
		)
		user.CurrentStreak = state.CurrentStreak
		user.DaysWithoutTasks = state.DaysWithoutTasks
		user.LastStreakUpdate = &today
	}

	user.DaysWithoutTasks = 0
	user.LastTaskCompleted = &now

	err = s.repo.UpdateUserCounters(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to persist streak state: %w", err)
	}

	return user, nil
}
