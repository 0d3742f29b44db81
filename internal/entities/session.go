package entities

import "time"

// ReadingSession records one timed reading activity for a book.
//
// A session is created when reading begins (duration zero, provisional) and
// updated exactly once when it ends; it is never mutated afterwards. The
// streak calculator treats the full set of sessions as the only source of
// truth and derives day buckets from StartTime.
type ReadingSession struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	BookID     string    `gorm:"index;size:64" json:"book_id"`
	StartPage  int       `json:"start_page"`
	EndPage    int       `json:"end_page"`
	StartTime  time.Time `gorm:"index" json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	DurationMS int64     `json:"duration_ms"` // EndTime - StartTime, never negative
	PagesRead  int       `json:"pages_read"`

	// Date is StartTime in the local calendar, formatted "2006-01-02".
	Date string `gorm:"index;size:10" json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
