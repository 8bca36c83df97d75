package model

import (
	"time"

	"github.com/google/uuid"

	"taskreef/internal/loot"
)

// RewardOutcome is the result of a single chest opening. It is built per
// request and not persisted beyond the redemption audit row.
type RewardOutcome struct {
	ChestTier        loot.Tier
	Rarity           loot.Rarity
	ItemID           string
	ItemName         string
	ItemAdded        bool
	CurrentStreak    int
	DaysWithoutTasks int
	InventoryCount   int
}

// Redemption is the persisted one-reward-per-task marker, doubling as the
// audit trail of what each chest dropped.
type Redemption struct {
	TaskID         uuid.UUID
	UserTelegramID int64
	ChestTier      loot.Tier
	Rarity         loot.Rarity
	ItemID         string
	RedeemedAt     time.Time
}
