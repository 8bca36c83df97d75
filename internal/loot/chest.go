package loot

// Tier tags a chest for a single redemption. Longer streaks earn richer
// chests.
type Tier string

const (
	TierBasic  Tier = "basic"
	TierRare   Tier = "rare"
	TierEpic   Tier = "epic"
	TierExotic Tier = "exotic"
)

// TierForStreak maps a streak length to the chest tier the next redemption
// uses. Total over all non-negative streaks.
func TierForStreak(streak int) Tier {
	switch {
	case streak >= 14:
		return TierExotic
	case streak >= 7:
		return TierEpic
	case streak >= 3:
		return TierRare
	default:
		return TierBasic
	}
}
