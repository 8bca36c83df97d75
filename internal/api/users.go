package api

import (
	"errors"
	"net/http"

	"taskreef/internal/model"
	"taskreef/internal/service"
	"taskreef/pkg/auth"
	"taskreef/pkg/logger"

	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type userRoutes struct {
	us service.UserServiceI
	a  *auth.TelegramAuth
}

func NewUserRoutes(handler *gin.RouterGroup, us service.UserServiceI, a *auth.TelegramAuth) {
	r := &userRoutes{us: us, a: a}
	h := handler.Group("/users")
	h.Use(a.TelegramAuthMiddleware())
	{
		h.POST("/", r.RegisterUser)
		h.GET("/me", r.GetMe)
	}
}

type RegisterUserResponse struct {
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`
}

func (r *userRoutes) RegisterUser(c *gin.Context) {
	log := logger.Logger()

	caller := auth.CallerFromContext(c)
	if caller == nil {
		log.Error("telegram user data not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	u := &model.User{
		TelegramID:       caller.ID,
		Username:         caller.Username,
		RegistrationDate: caller.AuthDate,
		AuthDate:         caller.AuthDate,
	}

	err := r.us.RegisterUser(c.Request.Context(), u)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already registered"})
			return
		}
		log.Error("failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, RegisterUserResponse{
		TelegramID: u.TelegramID,
		Username:   u.Username,
	})
}

func (r *userRoutes) GetMe(c *gin.Context) {
	log := logger.Logger()

	caller := auth.CallerFromContext(c)
	if caller == nil {
		log.Error("telegram user data not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	user, err := r.us.GetUserByTelegramID(c.Request.Context(), caller.ID)
	if err != nil {
		log.Error("failed to get user", zap.Error(err))
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"telegram_id":         user.TelegramID,
		"username":            user.Username,
		"current_streak":      user.CurrentStreak,
		"days_without_tasks":  user.DaysWithoutTasks,
		"last_task_completed": user.LastTaskCompleted,
		"inventory_count":     len(user.Inventory),
		"registration_date":   user.RegistrationDate,
	})
}
