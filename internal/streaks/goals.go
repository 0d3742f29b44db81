package streaks

import (
	"time"

	"github.com/foliolib/folio/internal/entities"
)

// GoalProgress computes how far a goal has advanced, from the session log
// and the book catalog. Like the streak values, progress is always derived
// from the logs; the stored counter is only a cache.
//
// Rolling goal types (per-day, per-week) measure relative to now; book-count
// types measure finish dates inside the goal's own window.
func GoalProgress(goal entities.ReadingGoal, sessions []entities.ReadingSession, books []entities.Book, now time.Time) int {
	switch goal.Type {
	case entities.GoalPagesPerDay:
		return sumSessions(sessions, dayKey(now), now, func(s entities.ReadingSession) int {
			return s.PagesRead
		})
	case entities.GoalMinutesPerDay:
		ms := sumSessions(sessions, dayKey(now), now, func(s entities.ReadingSession) int {
			return int(s.DurationMS)
		})
		return ms / int(time.Minute/time.Millisecond)
	case entities.GoalPagesPerWeek:
		weekStart := dayKey(now).AddDate(0, 0, -6)
		return sumSessions(sessions, weekStart, now, func(s entities.ReadingSession) int {
			return s.PagesRead
		})
	case entities.GoalBooksPerMonth, entities.GoalBooksPerYear:
		return countFinished(books, goal.StartDate, goal.EndDate)
	default:
		return 0
	}
}

// sumSessions totals a per-session value over sessions starting in [from, to].
func sumSessions(sessions []entities.ReadingSession, from, to time.Time, value func(entities.ReadingSession) int) int {
	total := 0
	for _, s := range sessions {
		if s.StartTime.Before(from) || s.StartTime.After(to) {
			continue
		}
		total += value(s)
	}
	return total
}

func countFinished(books []entities.Book, from, to time.Time) int {
	count := 0
	for _, b := range books {
		if b.DateFinished == nil {
			continue
		}
		if b.DateFinished.Before(from) || b.DateFinished.After(to) {
			continue
		}
		count++
	}
	return count
}
