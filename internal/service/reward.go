package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskreef/internal/loot"
	"taskreef/internal/model"
	"taskreef/internal/repository"
	"taskreef/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Announcer pushes a finished reward outcome to a live client session.
// Implementations must be best-effort; a missing session is not an error.
type Announcer interface {
	AnnounceChest(telegramID int64, outcome *model.RewardOutcome)
}

type RewardService struct {
	repo     RewardRepository
	streaks  *StreakService
	catalog  *loot.Catalog
	sampler  *loot.Sampler
	feed     Announcer
	notifier *Notifier
	now      func() time.Time
}

func NewRewardService(repo RewardRepository, streaks *StreakService, catalog *loot.Catalog, sampler *loot.Sampler) *RewardService {
	return &RewardService{
		repo:    repo,
		streaks: streaks,
		catalog: catalog,
		sampler: sampler,
		now:     time.Now,
	}
}

// WithFeed attaches a live announcer for chest openings.
func (s *RewardService) WithFeed(feed Announcer) *RewardService {
	s.feed = feed
	return s
}

// WithNotifier attaches the bot notifier for legendary drops.
func (s *RewardService) WithNotifier(n *Notifier) *RewardService {
	s.notifier = n
	return s
}

// OpenChest converts one completed task into one reward. The streak is
// caught up first, then the draw, reconcile and persistence run inside a
// single transaction holding the user's row lock.
func (s *RewardService) OpenChest(ctx context.Context, telegramID int64, taskID uuid.UUID) (*model.RewardOutcome, error) {
	_, err := s.streaks.CatchUp(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	var outcome *model.RewardOutcome

	err = s.repo.RedeemReward(ctx, telegramID, taskID, func(u *model.User) (*model.Redemption, error) {
		tier := loot.TierForStreak(u.CurrentStreak)

		rarity, itemID, err := s.sampler.Draw(tier)
		if err != nil {
			logger.Logger().Error("loot catalog misconfigured",
				zap.String("chest_tier", string(tier)),
				zap.String("rarity", string(rarity)),
				zap.Error(err))
			return nil, err
		}

		added, finalItem := s.sampler.Reconcile(u.Inventory, itemID, rarity)
		if added {
			u.Inventory = append(u.Inventory, finalItem)
		}

		outcome = &model.RewardOutcome{
			ChestTier:        tier,
			Rarity:           rarity,
			ItemID:           finalItem,
			ItemName:         s.catalog.Name(finalItem),
			ItemAdded:        added,
			CurrentStreak:    u.CurrentStreak,
			DaysWithoutTasks: u.DaysWithoutTasks,
			InventoryCount:   len(u.Inventory),
		}

		return &model.Redemption{
			TaskID:         taskID,
			UserTelegramID: telegramID,
			ChestTier:      tier,
			Rarity:         rarity,
			ItemID:         finalItem,
			RedeemedAt:     s.now(),
		}, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrTaskNotFound
		case errors.Is(err, repository.ErrAlreadyRedeemed):
			return nil, ErrAlreadyRedeemed
		case errors.Is(err, repository.ErrTaskNotDone):
			return nil, ErrTaskNotCompleted
		}
		return nil, fmt.Errorf("failed to redeem reward: %w", err)
	}

	s.announce(telegramID, outcome)

	return outcome, nil
}

func (s *RewardService) GetInventory(ctx context.Context, telegramID int64) ([]string, error) {
	user, err := s.repo.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	return user.Inventory, nil
}

func (s *RewardService) announce(telegramID int64, outcome *model.RewardOutcome) {
	if s.feed != nil {
		s.feed.AnnounceChest(telegramID, outcome)
	}

	if s.notifier != nil && outcome.Rarity == loot.RarityLegendary && outcome.ItemAdded {
		if err := s.notifier.NotifyLegendaryDrop(telegramID, outcome.ItemName); err != nil {
			logger.Logger().Warn("failed to send legendary drop notification",
				zap.Int64("telegram_id", telegramID),
				zap.Error(err))
		}
	}
}
