package sessions

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/foliolib/folio/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_sessions_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Book{}, &entities.ReadingSession{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func createBook(t *testing.T, db *gorm.DB, id string) {
	require.NoError(t, db.Create(&entities.Book{
		ID:            id,
		Title:         "Book " + id,
		Authors:       []string{"Author"},
		ReadingStatus: entities.StatusReading,
		DateAdded:     time.Now(),
	}).Error)
}

func TestRepository_StartSession(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	createBook(t, db, "b1")

	session, err := repo.StartSession("b1")
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "b1", session.BookID)
	assert.Zero(t, session.DurationMS)
	assert.Zero(t, session.PagesRead)
	assert.Equal(t, time.Now().Format(DateFormat), session.Date)
}

func TestRepository_EndSession(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	createBook(t, db, "b1")

	started, err := repo.StartSession("b1")
	require.NoError(t, err)

	ended, err := repo.EndSession(started.ID, 25)
	require.NoError(t, err)

	assert.Equal(t, 25, ended.PagesRead)
	assert.Equal(t, started.StartPage+25, ended.EndPage)
	assert.GreaterOrEqual(t, ended.DurationMS, int64(0))
	assert.False(t, ended.EndTime.Before(ended.StartTime))
}

func TestRepository_EndSession_AlreadyEnded(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	createBook(t, db, "b1")

	started, err := repo.StartSession("b1")
	require.NoError(t, err)

	first, err := repo.EndSession(started.ID, 10)
	require.NoError(t, err)

	// A retried end must not re-finalize the record.
	_, err = repo.EndSession(started.ID, 99)
	assert.ErrorIs(t, err, ErrAlreadyEnded)

	var stored entities.ReadingSession
	require.NoError(t, db.First(&stored, "id = ?", started.ID).Error)
	assert.Equal(t, 10, stored.PagesRead)
	assert.Equal(t, first.DurationMS, stored.DurationMS)
	assert.WithinDuration(t, first.EndTime, stored.EndTime, time.Second)
}

func TestRepository_EndSession_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.EndSession("missing", 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_GetSessionsForBook_OldestFirst(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	createBook(t, db, "b1")
	createBook(t, db, "b2")

	older := entities.ReadingSession{
		ID: "s1", BookID: "b1",
		StartTime: time.Now().Add(-2 * time.Hour), EndTime: time.Now().Add(-1 * time.Hour),
	}
	newer := entities.ReadingSession{
		ID: "s2", BookID: "b1",
		StartTime: time.Now(), EndTime: time.Now(),
	}
	other := entities.ReadingSession{
		ID: "s3", BookID: "b2",
		StartTime: time.Now(), EndTime: time.Now(),
	}
	require.NoError(t, db.Create(&newer).Error)
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&other).Error)

	sessions, err := repo.GetSessionsForBook("b1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "s1", sessions[0].ID)
	assert.Equal(t, "s2", sessions[1].ID)
}

func TestRepository_LastReadingTime(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	last, err := repo.LastReadingTime()
	require.NoError(t, err)
	assert.Nil(t, last)

	createBook(t, db, "b1")
	latest := time.Now()
	require.NoError(t, db.Create(&entities.ReadingSession{
		ID: "s1", BookID: "b1", StartTime: latest.Add(-3 * time.Hour), EndTime: latest,
	}).Error)
	require.NoError(t, db.Create(&entities.ReadingSession{
		ID: "s2", BookID: "b1", StartTime: latest, EndTime: latest,
	}).Error)

	last, err = repo.LastReadingTime()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.WithinDuration(t, latest, *last, time.Second)
}

func TestRepository_CountForDate(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	createBook(t, db, "b1")

	today := time.Now().Format(DateFormat)
	yesterday := time.Now().AddDate(0, 0, -1).Format(DateFormat)

	require.NoError(t, db.Create(&entities.ReadingSession{
		ID: "s1", BookID: "b1", StartTime: time.Now(), EndTime: time.Now(), Date: today,
	}).Error)
	require.NoError(t, db.Create(&entities.ReadingSession{
		ID: "s2", BookID: "b1", StartTime: time.Now(), EndTime: time.Now(), Date: today,
	}).Error)

	count, err := repo.CountForDate(today)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountForDate(yesterday)
	require.NoError(t, err)
	assert.Zero(t, count)
}
