package model

import "time"

// User carries the gamification state owned by this service. Inventory is
// semantically a set of item ids: it must never contain duplicates.
type User struct {
	TelegramID        int64
	Username          string
	RegistrationDate  time.Time
	AuthDate          time.Time
	CurrentStreak     int
	DaysWithoutTasks  int
	LastTaskCompleted *time.Time
	LastStreakUpdate  *time.Time
	Inventory         []string
}

// OwnsItem reports whether itemID is already in the inventory.
func (u *User) OwnsItem(itemID string) bool {
	for _, id := range u.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}
