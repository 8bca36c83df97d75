package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name  string
		state State
		facts DayFacts
		want  State
	}{
		{
			name:  "due and completed grows the streak",
			state: State{CurrentStreak: 4, DaysWithoutTasks: 1},
			facts: DayFacts{TasksDue: 2, TasksCompleted: 1},
			want:  State{CurrentStreak: 5, DaysWithoutTasks: 0},
		},
		{
			name:  "due and none completed breaks the streak",
			state: State{CurrentStreak: 9, DaysWithoutTasks: 0},
			facts: DayFacts{TasksDue: 3, TasksCompleted: 0},
			want:  State{CurrentStreak: 0, DaysWithoutTasks: 0},
		},
		{
			name:  "idle day keeps the streak and counts up",
			state: State{CurrentStreak: 5, DaysWithoutTasks: 0},
			facts: DayFacts{},
			want:  State{CurrentStreak: 5, DaysWithoutTasks: 1},
		},
		{
			name:  "completion on a day with nothing due clears the idle counter",
			state: State{CurrentStreak: 5, DaysWithoutTasks: 2},
			facts: DayFacts{TasksDue: 0, TasksCompleted: 1},
			want:  State{CurrentStreak: 5, DaysWithoutTasks: 0},
		},
		{
			name:  "third idle day breaks the streak",
			state: State{CurrentStreak: 8, DaysWithoutTasks: 2},
			facts: DayFacts{},
			want:  State{CurrentStreak: 0, DaysWithoutTasks: 3},
		},
		{
			name:  "idle counter keeps growing past the threshold",
			state: State{CurrentStreak: 0, DaysWithoutTasks: 5},
			facts: DayFacts{},
			want:  State{CurrentStreak: 0, DaysWithoutTasks: 6},
		},
		{
			name:  "growth is cancelled when the idle threshold was already hit",
			state: State{CurrentStreak: 2, DaysWithoutTasks: 3},
			facts: DayFacts{TasksDue: 0, TasksCompleted: 0},
			want:  State{CurrentStreak: 0, DaysWithoutTasks: 4},
		},
		{
			name:  "completion recovers a state sitting at the threshold",
			state: State{CurrentStreak: 2, DaysWithoutTasks: 2},
			facts: DayFacts{TasksDue: 1, TasksCompleted: 1},
			want:  State{CurrentStreak: 3, DaysWithoutTasks: 0},
		},
		{
			name:  "zero state stays consistent on an idle day",
			state: State{},
			facts: DayFacts{},
			want:  State{CurrentStreak: 0, DaysWithoutTasks: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Advance(tt.state, tt.facts))
		})
	}
}

func TestAdvance_SequenceBuildsAndBreaks(t *testing.T) {
	s := State{}

	// A week of completed work.
	for i := 0; i < 7; i++ {
		s = Advance(s, DayFacts{TasksDue: 1, TasksCompleted: 1})
	}
	assert.Equal(t, State{CurrentStreak: 7}, s)

	// Three empty days kill it.
	s = Advance(s, DayFacts{})
	assert.Equal(t, 7, s.CurrentStreak)
	s = Advance(s, DayFacts{})
	assert.Equal(t, 7, s.CurrentStreak)
	s = Advance(s, DayFacts{})
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 3, s.DaysWithoutTasks)
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	night := time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(night, nextDay))
}

func TestDayStart(t *testing.T) {
	ts := time.Date(2025, 3, 10, 17, 42, 7, 123, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), DayStart(ts))
}
