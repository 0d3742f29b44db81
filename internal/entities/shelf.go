package entities

import "time"

// Shelf is a user-defined grouping of books ("to read", "favourites", ...).
type Shelf struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	Name        string `gorm:"uniqueIndex;size:100" json:"name"`
	Description string `gorm:"size:512" json:"description,omitempty"`

	Books []Book `gorm:"many2many:book_shelves;" json:"books,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
