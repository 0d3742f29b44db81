package tasks

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/foliolib/folio/internal/catalog"
	"github.com/foliolib/folio/internal/database/books"
	"github.com/foliolib/folio/internal/entities"
)

type stubProvider struct {
	book *entities.Book
	err  error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Search(ctx context.Context, query string) ([]entities.Book, error) {
	return nil, catalog.ErrProviderUnavailable
}

func (s *stubProvider) LookupISBN(ctx context.Context, isbn string) (*entities.Book, error) {
	return s.book, s.err
}

func setupEnrichTest(t *testing.T, provider *stubProvider) (*books.Repository, func(context.Context, EnrichBookTask) error, func()) {
	t.Helper()

	dbPath := "./test_enrich_" + t.Name() + ".db"
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Book{},
		&entities.ReadingSession{},
		&entities.Note{},
		&entities.Highlight{},
		&entities.Shelf{},
	))

	repo := books.NewRepository(db)
	processor := EnrichBookProcessor(catalog.NewResolver(provider), repo)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return repo, processor, cleanup
}

func TestEnrichBookProcessor_FillsOnlyAbsentFields(t *testing.T) {
	provider := &stubProvider{
		book: &entities.Book{
			ID:           "9780441013593",
			Title:        "Dune (Fetched)",
			Description:  "Fetched description",
			Publisher:    "Fetched House",
			PageCount:    412,
			ThumbnailURL: "https://covers.example.com/dune-s.jpg",
		},
	}
	repo, processor, cleanup := setupEnrichTest(t, provider)
	defer cleanup()

	require.NoError(t, repo.SaveBook(&entities.Book{
		ID:            "b1",
		Title:         "Dune",
		Authors:       []string{"Frank Herbert"},
		ISBN13:        "9780441013593",
		Publisher:     "User Typed This",
		ReadingStatus: entities.StatusNotStarted,
		IsManualEntry: true,
		DateAdded:     time.Now(),
	}))

	require.NoError(t, processor(context.Background(), EnrichBookTask{BookID: "b1"}))

	got, err := repo.GetBookByID("b1")
	require.NoError(t, err)

	assert.Equal(t, "Fetched description", got.Description)
	assert.Equal(t, 412, got.PageCount)
	assert.Equal(t, "https://covers.example.com/dune-s.jpg", got.ThumbnailURL)
	// Fields the user filled in are never overwritten.
	assert.Equal(t, "User Typed This", got.Publisher)
	assert.Equal(t, "Dune", got.Title)
}

func TestEnrichBookProcessor_NoISBNIsANoOp(t *testing.T) {
	provider := &stubProvider{err: catalog.ErrNotFound}
	repo, processor, cleanup := setupEnrichTest(t, provider)
	defer cleanup()

	require.NoError(t, repo.SaveBook(&entities.Book{
		ID:            "b1",
		Title:         "No ISBN",
		Authors:       []string{"Anon"},
		ReadingStatus: entities.StatusNotStarted,
		IsManualEntry: true,
		DateAdded:     time.Now(),
	}))

	require.NoError(t, processor(context.Background(), EnrichBookTask{BookID: "b1"}))
}

func TestEnrichBookProcessor_LookupFailurePropagates(t *testing.T) {
	provider := &stubProvider{err: catalog.ErrNotFound}
	repo, processor, cleanup := setupEnrichTest(t, provider)
	defer cleanup()

	require.NoError(t, repo.SaveBook(&entities.Book{
		ID:            "b1",
		Title:         "Unknown",
		Authors:       []string{"Anon"},
		ISBN13:        "9780000000000",
		ReadingStatus: entities.StatusNotStarted,
		DateAdded:     time.Now(),
	}))

	err := processor(context.Background(), EnrichBookTask{BookID: "b1"})
	assert.Error(t, err)
}
