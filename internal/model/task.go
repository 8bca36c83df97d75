package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusTodo TaskStatus = "todo"
	TaskStatusDone TaskStatus = "done"
)

type Task struct {
	ID             uuid.UUID
	UserTelegramID int64
	Title          string
	Status         TaskStatus
	DueDate        *time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
}
