// Package streak holds the daily state machine behind chest tiers.
package streak

import "time"

// State is one user's streak pair. Both counters are non-negative and
// there is no terminal state; the pair evolves once per calendar day.
type State struct {
	CurrentStreak    int
	DaysWithoutTasks int
}

// DayFacts summarizes one calendar day for one user.
type DayFacts struct {
	TasksDue       int
	TasksCompleted int
}

// missedDayThreshold is how many consecutive task-free days break a
// streak.
const missedDayThreshold = 3

// Advance applies one day's facts to the state. Callers must invoke it at
// most once per calendar day per user; the persistence layer tracks the
// last evaluated day to guarantee that.
//
// Rules:
//   - tasks due and at least one completed: streak grows, idle counter
//     clears
//   - tasks due, none completed: streak breaks
//   - nothing due but something completed anyway: idle counter clears
//   - nothing due, nothing completed: idle counter grows
//   - after the branch above, three or more idle days break the streak
func Advance(s State, f DayFacts) State {
	switch {
	case f.TasksDue > 0 && f.TasksCompleted > 0:
		s.CurrentStreak++
		s.DaysWithoutTasks = 0
	case f.TasksDue > 0:
		s.CurrentStreak = 0
	case f.TasksCompleted > 0:
		s.DaysWithoutTasks = 0
	default:
		s.DaysWithoutTasks++
	}

	if s.DaysWithoutTasks >= missedDayThreshold {
		s.CurrentStreak = 0
	}

	return s
}

// SameDay reports whether two instants fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// DayStart truncates an instant to midnight UTC.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
