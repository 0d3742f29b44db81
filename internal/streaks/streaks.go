// Package streaks derives reading-streak values and aggregate statistics
// from the full session log. Everything here is pure and recomputed on each
// call; no cached streak counter is ever treated as a source of truth, so
// editing or deleting sessions out of order can never cause drift.
package streaks

import (
	"sort"
	"time"

	"github.com/foliolib/folio/internal/entities"
)

// dayKey truncates a timestamp to midnight of its local calendar day.
// All sessions started on the same day collapse to one key.
func dayKey(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// distinctDays returns the deduplicated day keys of all session starts.
func distinctDays(sessions []entities.ReadingSession) []time.Time {
	seen := make(map[time.Time]struct{}, len(sessions))
	for _, s := range sessions {
		seen[dayKey(s.StartTime)] = struct{}{}
	}

	days := make([]time.Time, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	return days
}

// CurrentStreak returns the number of consecutive days read ending at today
// or yesterday, relative to now. A day counts once regardless of how many
// sessions it holds. If the most recent session is more than one day old the
// streak is 0.
func CurrentStreak(sessions []entities.ReadingSession, now time.Time) int {
	days := distinctDays(sessions)
	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[j].Before(days[i]) })

	// The streak may anchor at today or yesterday; after the anchor every
	// day must be exactly one earlier than the previous.
	check := dayKey(now)
	if !days[0].Equal(check) {
		check = check.AddDate(0, 0, -1)
		if !days[0].Equal(check) {
			return 0
		}
	}

	streak := 0
	for _, day := range days {
		if !day.Equal(check) {
			break
		}
		streak++
		check = check.AddDate(0, 0, -1)
	}

	return streak
}

// LongestStreak returns the maximum run of consecutive day keys across the
// whole log, independent of input ordering.
func LongestStreak(sessions []entities.ReadingSession) int {
	days := distinctDays(sessions)
	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return longest
}

// Summary aggregates the session log for the statistics screen.
type Summary struct {
	TotalSessions   int   `json:"total_sessions"`
	TotalDurationMS int64 `json:"total_duration_ms"`
	TotalPagesRead  int   `json:"total_pages_read"`
	DistinctDays    int   `json:"distinct_days"`
	CurrentStreak   int   `json:"current_streak"`
	LongestStreak   int   `json:"longest_streak"`
}

// Summarize computes the aggregate statistics for a set of sessions.
func Summarize(sessions []entities.ReadingSession, now time.Time) Summary {
	summary := Summary{
		TotalSessions: len(sessions),
		DistinctDays:  len(distinctDays(sessions)),
		CurrentStreak: CurrentStreak(sessions, now),
		LongestStreak: LongestStreak(sessions),
	}
	for _, s := range sessions {
		summary.TotalDurationMS += s.DurationMS
		summary.TotalPagesRead += s.PagesRead
	}
	return summary
}
