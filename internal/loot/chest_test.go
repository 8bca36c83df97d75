package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForStreak(t *testing.T) {
	tests := []struct {
		name    string
		streaks []int
		want    Tier
	}{
		{name: "below 3 is basic", streaks: []int{0, 1, 2}, want: TierBasic},
		{name: "3 to 6 is rare", streaks: []int{3, 5, 6}, want: TierRare},
		{name: "7 to 13 is epic", streaks: []int{7, 10, 13}, want: TierEpic},
		{name: "14 and up is exotic", streaks: []int{14, 20, 100}, want: TierExotic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, streak := range tt.streaks {
				assert.Equal(t, tt.want, TierForStreak(streak), "streak %d", streak)
			}
		})
	}
}

func TestTierForStreak_MonotonicBoundaries(t *testing.T) {
	assert.Equal(t, TierBasic, TierForStreak(2))
	assert.Equal(t, TierRare, TierForStreak(3))
	assert.Equal(t, TierRare, TierForStreak(6))
	assert.Equal(t, TierEpic, TierForStreak(7))
	assert.Equal(t, TierEpic, TierForStreak(13))
	assert.Equal(t, TierExotic, TierForStreak(14))
}
