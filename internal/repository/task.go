package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"taskreef/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Task struct {
	ID             uuid.UUID  `db:"id"`
	UserTelegramID int64      `db:"user_telegram_id"`
	Title          string     `db:"title"`
	Status         string     `db:"status"`
	DueDate        *time.Time `db:"due_date"`
	CompletedAt    *time.Time `db:"completed_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

func (t *Task) toModel() *model.Task {
	return &model.Task{
		ID:             t.ID,
		UserTelegramID: t.UserTelegramID,
		Title:          t.Title,
		Status:         model.TaskStatus(t.Status),
		DueDate:        t.DueDate,
		CompletedAt:    t.CompletedAt,
		CreatedAt:      t.CreatedAt,
	}
}

func (r *Repository) CreateTask(ctx context.Context, task *model.Task) error {
	query, args, err := squirrel.
		Insert("tasks").
		SetMap(map[string]interface{}{
			"id":               task.ID,
			"user_telegram_id": task.UserTelegramID,
			"title":            task.Title,
			"status":           string(task.Status),
			"due_date":         task.DueDate,
			"created_at":       task.CreatedAt,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build task insert query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return nil
}

func (r *Repository) getTaskForUser(ctx context.Context, tx *sqlx.Tx, taskID uuid.UUID, telegramID int64) (*model.Task, error) {
	var task Task
	query, args, err := squirrel.
		Select("*").
		From("tasks").
		Where(squirrel.Eq{"id": taskID, "user_telegram_id": telegramID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = tx.GetContext(ctx, &task, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return task.toModel(), nil
}

// CompleteTask marks a task done. The task must belong to the caller;
// completing an already-done task only refreshes completed_at.
func (r *Repository) CompleteTask(ctx context.Context, taskID uuid.UUID, telegramID int64, completedAt time.Time) error {
	query, args, err := squirrel.
		Update("tasks").
		SetMap(map[string]interface{}{
			"status":       string(model.TaskStatusDone),
			"completed_at": completedAt,
		}).
		Where(squirrel.Eq{"id": taskID, "user_telegram_id": telegramID}).
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

// TasksForDay returns the tasks due on the given UTC calendar day.
func (r *Repository) TasksForDay(ctx context.Context, telegramID int64, day time.Time) ([]*model.Task, error) {
	dayEnd := day.Add(24 * time.Hour)

	query, args, err := squirrel.
		Select("*").
		From("tasks").
		Where(squirrel.Eq{"user_telegram_id": telegramID}).
		Where(squirrel.GtOrEq{"due_date": day}).
		Where(squirrel.Lt{"due_date": dayEnd}).
		OrderBy("created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var tasks []Task
	err = r.db.SelectContext(ctx, &tasks, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks for day: %w", err)
	}

	out := make([]*model.Task, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].toModel()
	}
	return out, nil
}

// CountTasksForDay reports how many tasks were due and how many were
// completed on the given UTC calendar day. These are the facts the streak
// machine consumes.
func (r *Repository) CountTasksForDay(ctx context.Context, telegramID int64, day time.Time) (due int, completed int, err error) {
	dayEnd := day.Add(24 * time.Hour)

	dueQuery, dueArgs, err := squirrel.
		Select("COUNT(*)").
		From("tasks").
		Where(squirrel.Eq{"user_telegram_id": telegramID}).
		Where(squirrel.GtOrEq{"due_date": day}).
		Where(squirrel.Lt{"due_date": dayEnd}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, err
	}

	err = r.db.GetContext(ctx, &due, dueQuery, dueArgs...)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count due tasks: %w", err)
	}

	doneQuery, doneArgs, err := squirrel.
		Select("COUNT(*)").
		From("tasks").
		Where(squirrel.Eq{"user_telegram_id": telegramID, "status": string(model.TaskStatusDone)}).
		Where(squirrel.GtOrEq{"completed_at": day}).
		Where(squirrel.Lt{"completed_at": dayEnd}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, err
	}

	err = r.db.GetContext(ctx, &completed, doneQuery, doneArgs...)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count completed tasks: %w", err)
	}

	return due, completed, nil
}
