// Package entrypoint wires the application together and runs the HTTP server.
package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foliolib/folio/internal/catalog"
	"github.com/foliolib/folio/internal/config"
	"github.com/foliolib/folio/internal/covers"
	"github.com/foliolib/folio/internal/database"
	"github.com/foliolib/folio/internal/database/books"
	"github.com/foliolib/folio/internal/database/sessions"
	http_controllers "github.com/foliolib/folio/internal/http"
	"github.com/foliolib/folio/internal/scheduler"
	"github.com/foliolib/folio/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal, then shut down with a grace period.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Shutdown callback first (e.g., to stop the task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Folio v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	bookRepo := books.NewRepository(db.DB)
	sessionRepo := sessions.NewRepository(db.DB)

	// Provider chain: Google Books first, then Open Library, then ISBNdb.
	// ISBNdb without a key is constructed unavailable and skipped at runtime.
	googleBooks := catalog.NewGoogleBooksClient(cfg.Catalog.GoogleBooksBaseURL, cfg.Catalog.GoogleBooksAPIKey)
	openLibrary := catalog.NewOpenLibraryClient(cfg.Catalog.OpenLibraryBaseURL)
	isbndb := catalog.NewISBNdbClient(cfg.Catalog.ISBNdbBaseURL, cfg.Catalog.ISBNdbAPIKey)
	if !isbndb.Available() {
		log.Printf("WARNING: ISBNdb API key is not set. The ISBNdb provider will be skipped. Set 'ISBNDB_API_KEY' environment variable to enable.")
	}
	resolver := catalog.NewResolver(googleBooks, openLibrary, isbndb)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewEnrichBookQueue(resolver, bookRepo),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Start the reading-reminder scheduler
	reminder := scheduler.NewReminderScheduler(sessionRepo, cfg.Reminder)
	if err := reminder.Start(context.Background()); err != nil {
		log.Printf("WARNING: Failed to start reminder scheduler: %v", err)
	}

	coverCache, err := covers.NewCache(cfg.Catalog.CoverCacheDir)
	if err != nil {
		log.Printf("WARNING: Failed to initialize cover cache: %v", err)
	}

	routerCfg := http_controllers.RouterConfig{
		DB:         db,
		Resolver:   resolver,
		CoverCache: coverCache,
		ReadOnly:   cfg.Global.ReadOnly,
		Version:    version,
	}
	if taskClient != nil {
		routerCfg.Enqueuer = taskClient
	}
	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg, func(ctx context.Context) {
		reminder.Stop()
		if taskClient != nil {
			if taskCtxCancel != nil {
				taskCtxCancel()
			}
			taskClient.Stop(ctx)
		}
	})
}
