// Package books provides database operations for the book catalog.
package books

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/foliolib/folio/internal/entities"
)

// ErrNotFound is returned when a book does not exist.
var ErrNotFound = errors.New("book not found")

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SaveBook inserts or updates a book.
func (r *Repository) SaveBook(book *entities.Book) error {
	return r.db.Save(book).Error
}

// GetBookByID retrieves a book with its sessions, notes and highlights.
func (r *Repository) GetBookByID(id string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Sessions", func(db *gorm.DB) *gorm.DB {
		return db.Order("start_time ASC")
	}).Preload("Notes").Preload("Highlights").Preload("Shelves").
		First(&book, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAllBooks retrieves all books ordered by when they were added.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("date_added DESC").Find(&books).Error
	return books, err
}

// GetBooksByStatus retrieves books with the given reading status.
func (r *Repository) GetBooksByStatus(status entities.ReadingStatus) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("reading_status = ?", status).Order("date_added DESC").Find(&books).Error
	return books, err
}

// UpdateReadingStatus moves a book through its reading lifecycle, stamping
// the start/finish dates on the first transition into each state.
func (r *Repository) UpdateReadingStatus(id string, status entities.ReadingStatus, currentPage int) error {
	book, err := r.GetBookByID(id)
	if err != nil {
		return err
	}

	now := time.Now()
	updates := map[string]any{
		"reading_status": status,
		"current_page":   currentPage,
	}
	if status == entities.StatusReading && book.DateStarted == nil {
		updates["date_started"] = now
	}
	if status == entities.StatusFinished && book.DateFinished == nil {
		updates["date_finished"] = now
	}

	return r.db.Model(&entities.Book{}).Where("id = ?", id).Updates(updates).Error
}

// MetadataUpdate holds the fields background enrichment may fill in.
// Nil pointers mean "leave unchanged"; only absent fields are ever filled.
type MetadataUpdate struct {
	Description   *string
	ThumbnailURL  *string
	LargeImageURL *string
	PageCount     *int
	Publisher     *string
}

// UpdateMetadata applies an enrichment result to a book.
func (r *Repository) UpdateMetadata(id string, update MetadataUpdate) error {
	updates := map[string]any{}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.ThumbnailURL != nil {
		updates["thumbnail_url"] = *update.ThumbnailURL
	}
	if update.LargeImageURL != nil {
		updates["large_image_url"] = *update.LargeImageURL
	}
	if update.PageCount != nil {
		updates["page_count"] = *update.PageCount
	}
	if update.Publisher != nil {
		updates["publisher"] = *update.Publisher
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&entities.Book{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBook removes a book and everything it owns: sessions, notes,
// highlights, and shelf memberships.
func (r *Repository) DeleteBook(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var book entities.Book
		if err := tx.First(&book, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("book_id = ?", id).Delete(&entities.ReadingSession{}).Error; err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		if err := tx.Where("book_id = ?", id).Delete(&entities.Note{}).Error; err != nil {
			return fmt.Errorf("delete notes: %w", err)
		}
		if err := tx.Where("book_id = ?", id).Delete(&entities.Highlight{}).Error; err != nil {
			return fmt.Errorf("delete highlights: %w", err)
		}
		if err := tx.Model(&book).Association("Shelves").Clear(); err != nil {
			return fmt.Errorf("clear shelves: %w", err)
		}

		return tx.Unscoped().Delete(&book).Error
	})
}
