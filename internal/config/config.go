package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Catalog
		Tasks
		Reminder
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
		// ReadOnly blocks every mutating endpoint; useful for public demos.
		ReadOnly bool
	}

	Database struct {
		Path string
	}

	// Catalog holds provider credentials and endpoints. A missing ISBNdb key
	// means the provider is constructed as unavailable; a missing Google Books
	// key only drops the key query parameter.
	Catalog struct {
		GoogleBooksAPIKey  string
		GoogleBooksBaseURL string
		OpenLibraryBaseURL string
		ISBNdbAPIKey       string
		ISBNdbBaseURL      string
		CoverCacheDir      string
	}

	Tasks struct {
		Enabled           bool
		Workers           int
		MaxRetries        int
		RetryDelay        time.Duration
		TaskTimeout       time.Duration
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}

	Reminder struct {
		Enabled  bool
		Schedule string // Cron format: "0 20 * * *" = daily at 20:00
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Catalog provider defaults
	v.SetDefault("google_books_api_key", "")
	v.SetDefault("google_books_base_url", DefaultGoogleBooksBaseURL)
	v.SetDefault("open_library_base_url", DefaultOpenLibraryBaseURL)
	v.SetDefault("isbndb_api_key", "")
	v.SetDefault("isbndb_base_url", DefaultISBNdbBaseURL)
	v.SetDefault("cover_cache_dir", DefaultCoverCacheDir)
	v.SetDefault("read_only", false)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_timeout", "5m")
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	// Reading reminder defaults
	v.SetDefault("reminder_enabled", false)
	v.SetDefault("reminder_schedule", "0 20 * * *") // Daily at 20:00

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			ReadOnly:                 v.GetBool("READ_ONLY"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Catalog: Catalog{
			GoogleBooksAPIKey:  v.GetString("GOOGLE_BOOKS_API_KEY"),
			GoogleBooksBaseURL: v.GetString("GOOGLE_BOOKS_BASE_URL"),
			OpenLibraryBaseURL: v.GetString("OPEN_LIBRARY_BASE_URL"),
			ISBNdbAPIKey:       v.GetString("ISBNDB_API_KEY"),
			ISBNdbBaseURL:      v.GetString("ISBNDB_BASE_URL"),
			CoverCacheDir:      v.GetString("COVER_CACHE_DIR"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			MaxRetries:        v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:       v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		Reminder: Reminder{
			Enabled:  v.GetBool("REMINDER_ENABLED"),
			Schedule: v.GetString("REMINDER_SCHEDULE"),
		},
	}
}
