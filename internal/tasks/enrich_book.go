package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/foliolib/folio/internal/catalog"
	"github.com/foliolib/folio/internal/database/books"
)

// EnrichBookTask fills the blanks of a manually entered book from the
// provider chain. Only fields the user left empty are touched.
type EnrichBookTask struct {
	BookID string `json:"book_id"`
}

// Config returns the queue configuration for book enrichment tasks.
func (t EnrichBookTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "enrich_book",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// EnrichBookProcessor creates a processor function for EnrichBookTask.
func EnrichBookProcessor(resolver *catalog.Resolver, repo *books.Repository) backlite.QueueProcessor[EnrichBookTask] {
	return func(ctx context.Context, task EnrichBookTask) error {
		book, err := repo.GetBookByID(task.BookID)
		if err != nil {
			return fmt.Errorf("get book %s: %w", task.BookID, err)
		}

		isbn := book.ISBN13
		if isbn == "" {
			isbn = book.ISBN10
		}
		if isbn == "" {
			log.Printf("[TASK] Book %s (%s): no ISBN, nothing to enrich", book.ID, book.Title)
			return nil
		}

		fetched, err := resolver.GetBookByISBN(ctx, isbn)
		if err != nil {
			return fmt.Errorf("lookup isbn %s for book %s: %w", isbn, task.BookID, err)
		}

		update := books.MetadataUpdate{}
		updated := []string{}
		if book.Description == "" && fetched.Description != "" {
			update.Description = &fetched.Description
			updated = append(updated, "description")
		}
		if book.ThumbnailURL == "" && fetched.ThumbnailURL != "" {
			update.ThumbnailURL = &fetched.ThumbnailURL
			updated = append(updated, "thumbnail_url")
		}
		if book.LargeImageURL == "" && fetched.LargeImageURL != "" {
			update.LargeImageURL = &fetched.LargeImageURL
			updated = append(updated, "large_image_url")
		}
		if book.PageCount == 0 && fetched.PageCount > 0 {
			update.PageCount = &fetched.PageCount
			updated = append(updated, "page_count")
		}
		if book.Publisher == "" && fetched.Publisher != "" {
			update.Publisher = &fetched.Publisher
			updated = append(updated, "publisher")
		}

		if len(updated) == 0 {
			log.Printf("[TASK] Book %s (%s): no metadata updates needed", book.ID, book.Title)
			return nil
		}

		if err := repo.UpdateMetadata(book.ID, update); err != nil {
			return fmt.Errorf("update book %s metadata: %w", task.BookID, err)
		}

		log.Printf("[TASK] Enriched book %s (%s): updated %v", book.ID, book.Title, updated)
		return nil
	}
}

// NewEnrichBookQueue creates a backlite queue for book enrichment tasks.
func NewEnrichBookQueue(resolver *catalog.Resolver, repo *books.Repository) backlite.Queue {
	return backlite.NewQueue(EnrichBookProcessor(resolver, repo))
}
