// Package shelves provides database operations for user-defined shelves.
package shelves

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foliolib/folio/internal/entities"
)

// ErrNotFound is returned when a shelf does not exist.
var ErrNotFound = errors.New("shelf not found")

// Repository handles shelf database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new shelves repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateShelf creates a new named shelf.
func (r *Repository) CreateShelf(name, description string) (*entities.Shelf, error) {
	shelf := &entities.Shelf{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	}
	if err := r.db.Create(shelf).Error; err != nil {
		return nil, err
	}
	return shelf, nil
}

// GetShelfByID retrieves a shelf with its books.
func (r *Repository) GetShelfByID(id string) (*entities.Shelf, error) {
	var shelf entities.Shelf
	err := r.db.Preload("Books").First(&shelf, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &shelf, nil
}

// GetAllShelves returns all shelves with their books.
func (r *Repository) GetAllShelves() ([]entities.Shelf, error) {
	var shelves []entities.Shelf
	err := r.db.Preload("Books").Order("name ASC").Find(&shelves).Error
	return shelves, err
}

// AddBookToShelf places a book on a shelf. Adding the same book twice is
// a no-op.
func (r *Repository) AddBookToShelf(shelfID, bookID string) error {
	shelf, err := r.GetShelfByID(shelfID)
	if err != nil {
		return err
	}
	return r.db.Model(shelf).Association("Books").Append(&entities.Book{ID: bookID})
}

// RemoveBookFromShelf takes a book off a shelf; the book itself survives.
func (r *Repository) RemoveBookFromShelf(shelfID, bookID string) error {
	shelf, err := r.GetShelfByID(shelfID)
	if err != nil {
		return err
	}
	return r.db.Model(shelf).Association("Books").Delete(&entities.Book{ID: bookID})
}

// DeleteShelf removes a shelf and its memberships; books survive.
func (r *Repository) DeleteShelf(id string) error {
	shelf, err := r.GetShelfByID(id)
	if err != nil {
		return err
	}
	if err := r.db.Model(shelf).Association("Books").Clear(); err != nil {
		return err
	}
	return r.db.Delete(shelf).Error
}
