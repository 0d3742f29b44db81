package books

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
	dbPath := "./test_books_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Book{},
		&entities.ReadingSession{},
		&entities.Note{},
		&entities.Highlight{},
		&entities.Shelf{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func testBook(id, title string) *entities.Book {
	return &entities.Book{
		ID:            id,
		Title:         title,
		Authors:       []string{"Author One", "Author Two"},
		ReadingStatus: entities.StatusNotStarted,
		DateAdded:     time.Now(),
	}
}

func TestRepository_SaveAndGetBook(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book := testBook("b1", "Moby Dick")
	book.Categories = []string{"Fiction", "Classics"}
	require.NoError(t, repo.SaveBook(book))

	got, err := repo.GetBookByID("b1")
	require.NoError(t, err)
	assert.Equal(t, "Moby Dick", got.Title)
	assert.Equal(t, []string{"Author One", "Author Two"}, got.Authors)
	assert.Equal(t, []string{"Fiction", "Classics"}, got.Categories)
}

func TestRepository_GetBookByID_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetBookByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_GetAllBooks_OrderedByDateAdded(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	older := testBook("b1", "Older")
	older.DateAdded = time.Now().Add(-24 * time.Hour)
	newer := testBook("b2", "Newer")
	require.NoError(t, repo.SaveBook(older))
	require.NoError(t, repo.SaveBook(newer))

	books, err := repo.GetAllBooks()
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Newer", books[0].Title)
	assert.Equal(t, "Older", books[1].Title)
}

func TestRepository_GetBooksByStatus(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	reading := testBook("b1", "Reading")
	reading.ReadingStatus = entities.StatusReading
	finished := testBook("b2", "Finished")
	finished.ReadingStatus = entities.StatusFinished
	require.NoError(t, repo.SaveBook(reading))
	require.NoError(t, repo.SaveBook(finished))

	books, err := repo.GetBooksByStatus(entities.StatusReading)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Reading", books[0].Title)
}

func TestRepository_UpdateReadingStatus_StampsDates(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SaveBook(testBook("b1", "Book")))

	require.NoError(t, repo.UpdateReadingStatus("b1", entities.StatusReading, 10))
	got, err := repo.GetBookByID("b1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusReading, got.ReadingStatus)
	assert.Equal(t, 10, got.CurrentPage)
	require.NotNil(t, got.DateStarted)
	firstStarted := *got.DateStarted

	require.NoError(t, repo.UpdateReadingStatus("b1", entities.StatusFinished, 300))
	got, err = repo.GetBookByID("b1")
	require.NoError(t, err)
	require.NotNil(t, got.DateFinished)

	// Going back to reading must not reset the original start date.
	require.NoError(t, repo.UpdateReadingStatus("b1", entities.StatusReading, 50))
	got, err = repo.GetBookByID("b1")
	require.NoError(t, err)
	assert.WithinDuration(t, firstStarted, *got.DateStarted, time.Second)
}

func TestRepository_UpdateMetadata_FillsOnlyProvidedFields(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book := testBook("b1", "Book")
	book.Publisher = "Original House"
	require.NoError(t, repo.SaveBook(book))

	desc := "A fetched description."
	pages := 321
	err := repo.UpdateMetadata("b1", MetadataUpdate{
		Description: &desc,
		PageCount:   &pages,
	})
	require.NoError(t, err)

	got, err := repo.GetBookByID("b1")
	require.NoError(t, err)
	assert.Equal(t, "A fetched description.", got.Description)
	assert.Equal(t, 321, got.PageCount)
	assert.Equal(t, "Original House", got.Publisher)
}

func TestRepository_UpdateMetadata_UnknownBook(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	desc := "whatever"
	err := repo.UpdateMetadata("missing", MetadataUpdate{Description: &desc})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_DeleteBook_CascadesOwnedRecords(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SaveBook(testBook("b1", "Book")))
	require.NoError(t, db.Create(&entities.ReadingSession{
		ID: "s1", BookID: "b1", StartTime: time.Now(), EndTime: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&entities.Note{ID: "n1", BookID: "b1", Content: "note"}).Error)
	require.NoError(t, db.Create(&entities.Highlight{ID: "h1", BookID: "b1", Text: "quote"}).Error)

	require.NoError(t, repo.DeleteBook("b1"))

	_, err := repo.GetBookByID("b1")
	assert.ErrorIs(t, err, ErrNotFound)

	var sessions int64
	db.Model(&entities.ReadingSession{}).Where("book_id = ?", "b1").Count(&sessions)
	assert.Zero(t, sessions)

	var notes int64
	db.Model(&entities.Note{}).Where("book_id = ?", "b1").Count(&notes)
	assert.Zero(t, notes)
}

func TestRepository_DeleteBook_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	assert.ErrorIs(t, repo.DeleteBook("missing"), ErrNotFound)
}
