package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/foliolib/folio/internal/entities"
)

// ManualEntry carries the user-supplied fields for a book that is added
// without going through any provider.
type ManualEntry struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	ISBN10        string   `json:"isbn_10,omitempty"`
	ISBN13        string   `json:"isbn_13,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	Description   string   `json:"description,omitempty"`
	PageCount     int      `json:"page_count,omitempty"`
	Categories    []string `json:"categories,omitempty"`
}

// NewManualBook constructs a canonical Book from user-supplied fields.
// Title and at least one author are required; the identifier is generated.
func NewManualBook(entry ManualEntry) (entities.Book, error) {
	if strings.TrimSpace(entry.Title) == "" {
		return entities.Book{}, fmt.Errorf("title is required")
	}
	if len(entry.Authors) == 0 {
		return entities.Book{}, fmt.Errorf("at least one author is required")
	}

	return entities.Book{
		ID:            uuid.NewString(),
		Title:         entry.Title,
		Authors:       copyList(entry.Authors),
		ISBN10:        entry.ISBN10,
		ISBN13:        entry.ISBN13,
		Publisher:     entry.Publisher,
		PublishedDate: entry.PublishedDate,
		Description:   entry.Description,
		PageCount:     entry.PageCount,
		Categories:    copyList(entry.Categories),
		ReadingStatus: entities.StatusNotStarted,
		IsManualEntry: true,
		DateAdded:     time.Now(),
	}, nil
}
