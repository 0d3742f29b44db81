package http

import (
	"github.com/gin-gonic/gin"

	"github.com/foliolib/folio/internal/covers"
	"github.com/foliolib/folio/internal/database"
	"github.com/foliolib/folio/internal/database/books"
	"github.com/foliolib/folio/internal/database/goals"
	"github.com/foliolib/folio/internal/database/notes"
	"github.com/foliolib/folio/internal/database/sessions"
	"github.com/foliolib/folio/internal/database/shelves"
	"github.com/foliolib/folio/internal/demo"
)

// RouterConfig carries all dependencies the router needs, keeping the
// constructor signature stable as endpoints grow.
type RouterConfig struct {
	DB         *database.Database
	Resolver   BookResolver
	Enqueuer   BookEnqueuer  // optional, nil disables background enrichment
	CoverCache *covers.Cache // optional, nil disables the cover endpoint
	ReadOnly   bool
	Version    string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(demo.NewMiddleware(cfg.ReadOnly).Handler())

	bookRepo := books.NewRepository(cfg.DB.DB)
	sessionRepo := sessions.NewRepository(cfg.DB.DB)
	noteRepo := notes.NewRepository(cfg.DB.DB)
	shelfRepo := shelves.NewRepository(cfg.DB.DB)
	goalRepo := goals.NewRepository(cfg.DB.DB)

	healthController := NewHealthController(cfg.DB, cfg.Version)
	searchController := NewSearchController(cfg.Resolver)
	booksController := NewBooksController(bookRepo, cfg.Enqueuer)
	sessionsController := NewSessionsController(sessionRepo, bookRepo)
	statsController := NewStatsController(sessionRepo)
	shelvesController := NewShelvesController(shelfRepo)
	notesController := NewNotesController(noteRepo)
	goalsController := NewGoalsController(goalRepo, sessionRepo, bookRepo)

	router.GET("/health", healthController.Status)

	api := router.Group("/api")
	{
		api.GET("/search", searchController.Search)
		api.GET("/search/isbn/:isbn", searchController.LookupISBN)

		api.POST("/books", booksController.SaveBook)
		api.POST("/books/manual", booksController.CreateManualBook)
		api.GET("/books", booksController.GetAllBooks)
		api.GET("/books/:id", booksController.GetBookByID)
		api.PUT("/books/:id/status", booksController.UpdateReadingStatus)
		api.DELETE("/books/:id", booksController.DeleteBook)

		if cfg.CoverCache != nil {
			coversController := NewCoversController(cfg.CoverCache, bookRepo)
			api.GET("/books/:id/cover", coversController.GetCover)
		}

		api.POST("/books/:id/sessions/start", sessionsController.StartSession)
		api.GET("/books/:id/sessions", sessionsController.GetSessionsForBook)
		api.POST("/sessions/:id/end", sessionsController.EndSession)

		api.GET("/stats", statsController.GetStats)
		api.GET("/stats/streaks", statsController.GetStreaks)

		api.POST("/shelves", shelvesController.CreateShelf)
		api.GET("/shelves", shelvesController.GetAllShelves)
		api.GET("/shelves/:id", shelvesController.GetShelfByID)
		api.DELETE("/shelves/:id", shelvesController.DeleteShelf)
		api.POST("/shelves/:id/books/:bookID", shelvesController.AddBookToShelf)
		api.DELETE("/shelves/:id/books/:bookID", shelvesController.RemoveBookFromShelf)

		api.POST("/goals", goalsController.CreateGoal)
		api.GET("/goals", goalsController.GetAllGoals)
		api.DELETE("/goals/:id", goalsController.DeleteGoal)

		api.POST("/books/:id/notes", notesController.AddNote)
		api.GET("/books/:id/notes", notesController.GetNotesForBook)
		api.DELETE("/notes/:noteID", notesController.DeleteNote)
		api.POST("/books/:id/highlights", notesController.AddHighlight)
		api.GET("/books/:id/highlights", notesController.GetHighlightsForBook)
	}

	return router
}
