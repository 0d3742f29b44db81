package config

// Default paths and endpoints
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./folio.db"

	// DefaultGoogleBooksBaseURL is the Google Books volumes API root
	DefaultGoogleBooksBaseURL = "https://www.googleapis.com/books/v1"

	// DefaultOpenLibraryBaseURL is the Open Library API root
	DefaultOpenLibraryBaseURL = "https://openlibrary.org"

	// DefaultISBNdbBaseURL is the ISBNdb API root
	DefaultISBNdbBaseURL = "https://api2.isbndb.com"

	// DefaultCoverCacheDir is where downloaded cover images are cached
	DefaultCoverCacheDir = "./covers"
)
