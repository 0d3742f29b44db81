// Command generate_demo creates a demo database with sample books and a
// plausible reading history.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/foliolib/folio/internal/database"
	"github.com/foliolib/folio/internal/database/books"
	"github.com/foliolib/folio/internal/database/goals"
	"github.com/foliolib/folio/internal/database/shelves"
	"github.com/foliolib/folio/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	bookRepo := books.NewRepository(db.DB)
	shelfRepo := shelves.NewRepository(db.DB)

	demoBooks := publicDomainBooks()
	for i := range demoBooks {
		if err := bookRepo.SaveBook(&demoBooks[i]); err != nil {
			log.Printf("Failed to save book %s: %v", demoBooks[i].Title, err)
			continue
		}
		log.Printf("Saved: %s by %v", demoBooks[i].Title, demoBooks[i].Authors)
	}

	// A shelf to show grouping
	shelf, err := shelfRepo.CreateShelf("Classics", "Public domain favourites")
	if err != nil {
		log.Fatalf("Failed to create shelf: %v", err)
	}
	for _, b := range demoBooks {
		if err := shelfRepo.AddBookToShelf(shelf.ID, b.ID); err != nil {
			log.Printf("Failed to shelve %s: %v", b.Title, err)
		}
	}

	// Reading history for the first book: a run of consecutive days ending
	// yesterday, so the demo shows a live streak.
	addReadingHistory(db, demoBooks[0].ID)

	// A yearly goal so the goals endpoint has something to report.
	goalRepo := goals.NewRepository(db.DB)
	now := time.Now()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.Local)
	yearEnd := yearStart.AddDate(1, 0, 0).Add(-time.Second)
	if _, err := goalRepo.CreateGoal(entities.GoalBooksPerYear, 24, yearStart, yearEnd); err != nil {
		log.Printf("Failed to create goal: %v", err)
	}

	log.Printf("Demo database generated")
}

func addReadingHistory(db *database.Database, bookID string) {
	now := time.Now()
	for daysAgo := 5; daysAgo >= 1; daysAgo-- {
		start := now.AddDate(0, 0, -daysAgo).Add(-30 * time.Minute)
		end := start.Add(25 * time.Minute)
		session := entities.ReadingSession{
			ID:         uuid.NewString(),
			BookID:     bookID,
			StartTime:  start,
			EndTime:    end,
			DurationMS: end.Sub(start).Milliseconds(),
			PagesRead:  12,
			Date:       start.Format("2006-01-02"),
		}
		if err := db.DB.Create(&session).Error; err != nil {
			log.Printf("Failed to save session: %v", err)
		}
	}
}

func publicDomainBooks() []entities.Book {
	now := time.Now()
	started := now.AddDate(0, 0, -30)
	finished := now.AddDate(0, 0, -2)
	return []entities.Book{
		{
			ID:            uuid.NewString(),
			Title:         "Moby-Dick; or, The Whale",
			Authors:       []string{"Herman Melville"},
			ISBN13:        "9781503280786",
			Publisher:     "Harper & Brothers",
			PublishedDate: "1851",
			PageCount:     635,
			Categories:    []string{"Fiction", "Adventure"},
			Language:      "en",
			ReadingStatus: entities.StatusReading,
			CurrentPage:   212,
			DateAdded:     now,
		},
		{
			ID:            uuid.NewString(),
			Title:         "Pride and Prejudice",
			Authors:       []string{"Jane Austen"},
			ISBN13:        "9781503290563",
			Publisher:     "T. Egerton",
			PublishedDate: "1813",
			PageCount:     279,
			Categories:    []string{"Fiction", "Romance"},
			Language:      "en",
			ReadingStatus: entities.StatusFinished,
			DateStarted:   &started,
			DateFinished:  &finished,
			CurrentPage:   279,
			DateAdded:     now,
		},
		{
			ID:            uuid.NewString(),
			Title:         "The Adventures of Sherlock Holmes",
			Authors:       []string{"Arthur Conan Doyle"},
			ISBN10:        "1508475312",
			Publisher:     "George Newnes",
			PublishedDate: "1892",
			PageCount:     307,
			Categories:    []string{"Fiction", "Mystery"},
			Language:      "en",
			ReadingStatus: entities.StatusNotStarted,
			DateAdded:     now,
		},
	}
}
