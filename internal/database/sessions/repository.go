// Package sessions provides database operations for the reading-session log.
//
// A session is written twice over its lifetime: once when reading starts
// (provisional, zero duration) and once when it ends. After that it is only
// read, by the streak calculator and the statistics endpoints.
package sessions

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foliolib/folio/internal/entities"
)

// ErrNotFound is returned when a session does not exist.
var ErrNotFound = errors.New("session not found")

// ErrAlreadyEnded is returned when EndSession is called on a session that
// has already been finalized.
var ErrAlreadyEnded = errors.New("session already ended")

// DateFormat is the local calendar-day key stored on every session.
const DateFormat = "2006-01-02"

// Repository handles all reading-session database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sessions repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// StartSession creates a provisional session for a book. Duration and pages
// stay zero until EndSession finalizes them.
func (r *Repository) StartSession(bookID string) (*entities.ReadingSession, error) {
	now := time.Now()
	session := &entities.ReadingSession{
		ID:        uuid.NewString(),
		BookID:    bookID,
		StartTime: now,
		EndTime:   now,
		Date:      now.Format(DateFormat),
	}

	if err := r.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// EndSession finalizes a session with its end time and pages read. This is
// the single permitted mutation of a session record; ending an already
// finalized session returns ErrAlreadyEnded and leaves it untouched.
func (r *Repository) EndSession(id string, pagesRead int) (*entities.ReadingSession, error) {
	var session entities.ReadingSession
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// A provisional session has EndTime == StartTime and zero duration.
	if session.DurationMS > 0 || !session.EndTime.Equal(session.StartTime) {
		return nil, ErrAlreadyEnded
	}

	now := time.Now()
	session.EndTime = now
	session.DurationMS = now.Sub(session.StartTime).Milliseconds()
	if session.DurationMS < 0 {
		session.DurationMS = 0
	}
	session.PagesRead = pagesRead
	session.EndPage = session.StartPage + pagesRead

	if err := r.db.Save(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSessionsForBook returns all sessions for one book, oldest first.
func (r *Repository) GetSessionsForBook(bookID string) ([]entities.ReadingSession, error) {
	var sessions []entities.ReadingSession
	err := r.db.Where("book_id = ?", bookID).Order("start_time ASC").Find(&sessions).Error
	return sessions, err
}

// GetAllSessions returns the full session log. The streak calculator
// imposes its own ordering, so none is promised here.
func (r *Repository) GetAllSessions() ([]entities.ReadingSession, error) {
	var sessions []entities.ReadingSession
	err := r.db.Find(&sessions).Error
	return sessions, err
}

// LastReadingTime returns the start time of the most recent session, or nil
// when the log is empty.
func (r *Repository) LastReadingTime() (*time.Time, error) {
	var session entities.ReadingSession
	err := r.db.Order("start_time DESC").First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session.StartTime, nil
}

// CountForDate returns how many sessions started on the given calendar day.
func (r *Repository) CountForDate(date string) (int64, error) {
	var count int64
	err := r.db.Model(&entities.ReadingSession{}).Where("date = ?", date).Count(&count).Error
	return count, err
}
