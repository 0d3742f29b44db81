package shelves

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
	dbPath := "./test_shelves_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Book{}, &entities.Shelf{})
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
		ReadingStatus: entities.StatusNotStarted,
		DateAdded:     time.Now(),
	}).Error)
}

func TestRepository_CreateAndGetShelf(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	shelf, err := repo.CreateShelf("Favourites", "Books I keep rereading")
	require.NoError(t, err)
	assert.NotEmpty(t, shelf.ID)

	got, err := repo.GetShelfByID(shelf.ID)
	require.NoError(t, err)
	assert.Equal(t, "Favourites", got.Name)
	assert.Empty(t, got.Books)
}

func TestRepository_GetShelfByID_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetShelfByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_AddAndRemoveBook(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	createBook(t, db, "b1")

	shelf, err := repo.CreateShelf("To Read", "")
	require.NoError(t, err)

	require.NoError(t, repo.AddBookToShelf(shelf.ID, "b1"))
	// Adding the same membership again is a no-op.
	require.NoError(t, repo.AddBookToShelf(shelf.ID, "b1"))

	got, err := repo.GetShelfByID(shelf.ID)
	require.NoError(t, err)
	require.Len(t, got.Books, 1)
	assert.Equal(t, "b1", got.Books[0].ID)

	require.NoError(t, repo.RemoveBookFromShelf(shelf.ID, "b1"))
	got, err = repo.GetShelfByID(shelf.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Books)

	// The book itself survives removal.
	var book entities.Book
	require.NoError(t, db.First(&book, "id = ?", "b1").Error)
}

func TestRepository_DeleteShelf_BooksSurvive(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	createBook(t, db, "b1")

	shelf, err := repo.CreateShelf("Temp", "")
	require.NoError(t, err)
	require.NoError(t, repo.AddBookToShelf(shelf.ID, "b1"))

	require.NoError(t, repo.DeleteShelf(shelf.ID))

	_, err = repo.GetShelfByID(shelf.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var book entities.Book
	require.NoError(t, db.First(&book, "id = ?", "b1").Error)
}

func TestRepository_GetAllShelves_SortedByName(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateShelf("Zoology", "")
	require.NoError(t, err)
	_, err = repo.CreateShelf("Art", "")
	require.NoError(t, err)

	shelves, err := repo.GetAllShelves()
	require.NoError(t, err)
	require.Len(t, shelves, 2)
	assert.Equal(t, "Art", shelves[0].Name)
	assert.Equal(t, "Zoology", shelves[1].Name)
}
