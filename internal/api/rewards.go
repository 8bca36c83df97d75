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

type rewardRoutes struct {
	rs service.RewardServiceI
	ss service.StreakServiceI
	a  *auth.TelegramAuth
}

func NewRewardRoutes(handler *gin.RouterGroup, rs service.RewardServiceI, ss service.StreakServiceI, a *auth.TelegramAuth) {
	r := &rewardRoutes{rs: rs, ss: ss, a: a}
	h := handler.Group("/rewards")
	h.Use(a.TelegramAuthMiddleware())
	{
		h.POST("/open-chest", r.OpenChest)
		h.GET("/inventory", r.GetInventory)
		h.GET("/streak", r.GetStreak)
	}
}

type OpenChestRequest struct {
	TaskID string `json:"task_id" binding:"required"`
}

type OpenChestResponse struct {
	ChestType        string `json:"chest_type"`
	Rarity           string `json:"rarity"`
	ItemID           string `json:"item_id"`
	ItemName         string `json:"item_name"`
	ItemAdded        bool   `json:"item_added"`
	CurrentStreak    int    `json:"current_streak"`
	DaysWithoutTasks int    `json:"days_without_tasks"`
	InventoryCount   int    `json:"inventory_count"`
}

func (r *rewardRoutes) OpenChest(c *gin.Context) {
	log := logger.Logger()

	caller := auth.CallerFromContext(c)
	if caller == nil {
		log.Error("telegram user data not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var req OpenChestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		log.Error("failed to parse task_id", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task_id"})
		return
	}

	outcome, err := r.rs.OpenChest(c.Request.Context(), caller.ID, taskID)
	if err != nil {
		log.Error("failed to open chest", zap.Error(err))
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		case errors.Is(err, service.ErrAlreadyRedeemed):
			c.JSON(http.StatusConflict, gin.H{"error": "reward already redeemed for this task"})
		case errors.Is(err, service.ErrTaskNotCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": "task is not completed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open chest"})
		}
		return
	}

	c.JSON(http.StatusCreated, OpenChestResponse{
		ChestType:        string(outcome.ChestTier),
		Rarity:           string(outcome.Rarity),
		ItemID:           outcome.ItemID,
		ItemName:         outcome.ItemName,
		ItemAdded:        outcome.ItemAdded,
		CurrentStreak:    outcome.CurrentStreak,
		DaysWithoutTasks: outcome.DaysWithoutTasks,
		InventoryCount:   outcome.InventoryCount,
	})
}

type InventoryResponse struct {
	Inventory []string `json:"inventory"`
	Count     int      `json:"count"`
}

func (r *rewardRoutes) GetInventory(c *gin.Context) {
	log := logger.Logger()

	caller := auth.CallerFromContext(c)
	if caller == nil {
		log.Error("telegram user data not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	inventory, err := r.rs.GetInventory(c.Request.Context(), caller.ID)
	if err != nil {
		log.Error("failed to get inventory", zap.Error(err))
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get inventory"})
		return
	}

	if inventory == nil {
		inventory = []string{}
	}

	c.JSON(http.StatusOK, InventoryResponse{
		Inventory: inventory,
		Count:     len(inventory),
	})
}

type StreakResponse struct {
	CurrentStreak     int        `json:"current_streak"`
	DaysWithoutTasks  int        `json:"days_without_tasks"`
	LastTaskCompleted *time.Time `json:"last_task_completed,omitempty"`
	NextChestType     string     `json:"next_chest_type"`
}

func (r *rewardRoutes) GetStreak(c *gin.Context) {
	log := logger.Logger()

	caller := auth.CallerFromContext(c)
	if caller == nil {
		log.Error("telegram user data not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	user, nextTier, err := r.ss.GetStatus(c.Request.Context(), caller.ID)
	if err != nil {
		log.Error("failed to get streak status", zap.Error(err))
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get streak status"})
		return
	}

	c.JSON(http.StatusOK, StreakResponse{
		CurrentStreak:     user.CurrentStreak,
		DaysWithoutTasks:  user.DaysWithoutTasks,
		LastTaskCompleted: user.LastTaskCompleted,
		NextChestType:     string(nextTier),
	})
}
