// Package notes provides database operations for notes and highlights.
package notes

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foliolib/folio/internal/entities"
)

// ErrNotFound is returned when a note does not exist.
var ErrNotFound = errors.New("note not found")

const defaultHighlightColor = "#FFEB3B"

// Repository handles note and highlight database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new notes repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddNote attaches a note to a book.
func (r *Repository) AddNote(bookID, content string, page int, chapter string) (*entities.Note, error) {
	note := &entities.Note{
		ID:      uuid.NewString(),
		BookID:  bookID,
		Content: content,
		Page:    page,
		Chapter: chapter,
	}
	if err := r.db.Create(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

// UpdateNote replaces a note's content.
func (r *Repository) UpdateNote(id, content string) error {
	result := r.db.Model(&entities.Note{}).Where("id = ?", id).
		Updates(map[string]any{"content": content, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteNote removes a note.
func (r *Repository) DeleteNote(id string) error {
	result := r.db.Delete(&entities.Note{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetNotesForBook returns a book's notes, newest first.
func (r *Repository) GetNotesForBook(bookID string) ([]entities.Note, error) {
	var notes []entities.Note
	err := r.db.Where("book_id = ?", bookID).Order("created_at DESC").Find(&notes).Error
	return notes, err
}

// AddHighlight attaches a highlighted passage to a book.
func (r *Repository) AddHighlight(bookID, text string, page int) (*entities.Highlight, error) {
	highlight := &entities.Highlight{
		ID:     uuid.NewString(),
		BookID: bookID,
		Text:   text,
		Page:   page,
		Color:  defaultHighlightColor,
	}
	if err := r.db.Create(highlight).Error; err != nil {
		return nil, err
	}
	return highlight, nil
}

// GetHighlightsForBook returns a book's highlights in page order.
func (r *Repository) GetHighlightsForBook(bookID string) ([]entities.Highlight, error) {
	var highlights []entities.Highlight
	err := r.db.Where("book_id = ?", bookID).Order("page ASC, created_at ASC").Find(&highlights).Error
	return highlights, err
}
