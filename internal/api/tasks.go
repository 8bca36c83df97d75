package api

import (
	"errors"
	"net/http"
	"time"

	"taskreef/internal/service"
	"taskreef/pkg/auth"
	"taskreef/pkg/logger"

	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type taskRoutes struct {
	ts service.TaskServiceI
	a  *auth.TelegramAuth
}

func NewTaskRoutes(handler *gin.RouterGroup, ts service.TaskServiceI, a *auth.TelegramAuth) {
	r := &taskRoutes{ts: ts, a: a}
	h := handler.Group("/tasks")
	h.Use(a.TelegramAuthMiddleware())
	{
		h.POST("/", r.CreateTask)
		h.POST("/:task_id/complete", r.CompleteTask)
		h.GET("/today", r.TodayTasks)
	}
}

type CreateTaskRequest struct {
	Title   string     `json:"title" binding:"required"`
	DueDate *time.Time `json:"due_date"`
}

type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (r *taskRoutes) CreateTask(c *gin.Context) {
	log := logger.Logger()

	caller := auth.CallerFromContext(c)
	if caller == nil {
		log.Error("telegram user data not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	task, err := r.ts.CreateTask(c.Request.Context(), caller.ID, req.Title, req.DueDate)
	if err != nil {
		log.Error("failed to create task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, TaskResponse{
		ID:        task.ID.String(),
		Title:     task.Title,
		Status:    string(task.Status),
		DueDate:   task.DueDate,
		CreatedAt: task.CreatedAt,
	})
}

type CompleteTaskResponse struct {
	TaskID           string `json:"task_id"`
	CurrentStreak    int    `json:"current_streak"`
	DaysWithoutTasks int    `json:"days_without_tasks"`
}

func (r *taskRoutes) CompleteTask(c *gin.Context) {
	log := logger.Logger()

	caller := auth.CallerFromContext(c)
	if caller == nil {
		log.Error("telegram user data not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		log.Error("failed to parse task_id", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task_id"})
		return
	}

	user, err := r.ts.CompleteTask(c.Request.Context(), caller.ID, taskID)
	if err != nil {
		log.Error("failed to complete task", zap.Error(err))
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete task"})
		}
		return
	}

	c.JSON(http.StatusOK, CompleteTaskResponse{
		TaskID:           taskID.String(),
		CurrentStreak:    user.CurrentStreak,
		DaysWithoutTasks: user.DaysWithoutTasks,
	})
}

func (r *taskRoutes) TodayTasks(c *gin.Context) {
	log := logger.Logger()

	caller := auth.CallerFromContext(c)
	if caller == nil {
		log.Error("telegram user data not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	tasks, err := r.ts.TodayTasks(c.Request.Context(), caller.ID)
	if err != nil {
		log.Error("failed to get today's tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get today's tasks"})
		return
	}

	out := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		out[i] = TaskResponse{
			ID:          task.ID.String(),
			Title:       task.Title,
			Status:      string(task.Status),
			DueDate:     task.DueDate,
			CompletedAt: task.CompletedAt,
			CreatedAt:   task.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, out)
}
