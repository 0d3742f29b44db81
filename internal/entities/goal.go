package entities

import "time"

// GoalType enumerates what a reading goal counts.
type GoalType string

const (
	GoalBooksPerYear  GoalType = "books_per_year"
	GoalBooksPerMonth GoalType = "books_per_month"
	GoalPagesPerDay   GoalType = "pages_per_day"
	GoalPagesPerWeek  GoalType = "pages_per_week"
	GoalMinutesPerDay GoalType = "minutes_per_day"
)

// ReadingGoal is a self-set target over a date window. Current is a cached
// progress value; it is recomputed from the session and book logs whenever
// goals are read, never trusted on its own.
type ReadingGoal struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Type        GoalType  `gorm:"index;size:32" json:"type"`
	Target      int       `json:"target"`
	Current     int       `json:"current"`
	StartDate   time.Time `gorm:"index" json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	IsCompleted bool      `json:"is_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
