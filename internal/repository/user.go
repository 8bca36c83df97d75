package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"taskreef/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type User struct {
	TelegramID        int64          `db:"telegram_id"`
	Username          string         `db:"username"`
	RegistrationDate  time.Time      `db:"registration_date"`
	AuthDate          time.Time      `db:"last_auth_date"`
	CurrentStreak     int            `db:"current_streak"`
	DaysWithoutTasks  int            `db:"days_without_tasks"`
	LastTaskCompleted *time.Time     `db:"last_task_completed"`
	LastStreakUpdate  *time.Time     `db:"last_streak_update"`
	Inventory         pq.StringArray `db:"inventory"`
}

func (u *User) toModel() *model.User {
	return &model.User{
		TelegramID:        u.TelegramID,
		Username:          u.Username,
		RegistrationDate:  u.RegistrationDate,
		AuthDate:          u.AuthDate,
		CurrentStreak:     u.CurrentStreak,
		DaysWithoutTasks:  u.DaysWithoutTasks,
		LastTaskCompleted: u.LastTaskCompleted,
		LastStreakUpdate:  u.LastStreakUpdate,
		Inventory:         []string(u.Inventory),
	}
}

func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	query, args, err := squirrel.
		Insert("users").
		SetMap(map[string]interface{}{
			"telegram_id":        user.TelegramID,
			"username":           user.Username,
			"registration_date":  user.RegistrationDate,
			"last_auth_date":     user.AuthDate,
			"current_streak":     0,
			"days_without_tasks": 0,
			"inventory":          pq.Array([]string{}),
		}).
		Suffix("ON CONFLICT (telegram_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build user insert query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAlreadyExists
	}

	return nil
}

func (r *Repository) GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	var user User
	query, args, err := squirrel.
		Select("*").
		From("users").
		Where(squirrel.Eq{"telegram_id": telegramID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return user.toModel(), nil
}

func (r *Repository) getUserForUpdate(ctx context.Context, tx *sqlx.Tx, telegramID int64) (*model.User, error) {
	var user User
	query, args, err := squirrel.
		Select("*").
		From("users").
		Where(squirrel.Eq{"telegram_id": telegramID}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = tx.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return user.toModel(), nil
}

// UpdateUserCounters persists the streak pair and the related timestamps.
func (r *Repository) UpdateUserCounters(ctx context.Context, user *model.User) error {
	query, args, err := squirrel.
		Update("users").
		SetMap(map[string]interface{}{
			"current_streak":      user.CurrentStreak,
			"days_without_tasks":  user.DaysWithoutTasks,
			"last_task_completed": user.LastTaskCompleted,
			"last_streak_update":  user.LastStreakUpdate,
		}).
		Where(squirrel.Eq{"telegram_id": user.TelegramID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
