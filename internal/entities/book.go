package entities

import (
	"time"

	"gorm.io/gorm"
)

type ReadingStatus string

const (
	StatusNotStarted ReadingStatus = "not_started"
	StatusReading    ReadingStatus = "reading"
	StatusFinished   ReadingStatus = "finished"
	StatusAbandoned  ReadingStatus = "abandoned"
)

// Book is the canonical book record. Every provider response is normalized
// into this shape before it leaves the catalog package, and manually entered
// books are constructed in the same shape with IsManualEntry set.
type Book struct {
	ID      string   `gorm:"primaryKey;size:64" json:"id"`
	Title   string   `gorm:"index;size:512" json:"title"`
	Authors []string `gorm:"serializer:json" json:"authors"`

	// ISBN10 and ISBN13 are independent identifiers. A record may carry
	// either, both, or neither; one is never derived from the other.
	ISBN10 string `gorm:"index;size:20" json:"isbn_10,omitempty"`
	ISBN13 string `gorm:"index;size:20" json:"isbn_13,omitempty"`

	Publisher     string   `gorm:"size:256" json:"publisher,omitempty"`
	PublishedDate string   `gorm:"size:64" json:"published_date,omitempty"` // free-form, not guaranteed parseable
	Description   string   `gorm:"type:text" json:"description,omitempty"`
	PageCount     int      `json:"page_count,omitempty"`
	Categories    []string `gorm:"serializer:json" json:"categories"`
	ThumbnailURL  string   `gorm:"size:2048" json:"thumbnail_url,omitempty"`
	LargeImageURL string   `gorm:"size:2048" json:"large_image_url,omitempty"`
	Language      string   `gorm:"size:10" json:"language,omitempty"`

	CurrentPage   int           `json:"current_page"`
	ReadingStatus ReadingStatus `gorm:"size:20;default:'not_started'" json:"reading_status"`
	Rating        float64       `json:"rating,omitempty"`
	IsManualEntry bool          `json:"is_manual_entry"`

	DateAdded    time.Time  `json:"date_added"`
	DateStarted  *time.Time `json:"date_started,omitempty"`
	DateFinished *time.Time `json:"date_finished,omitempty"`

	Sessions   []ReadingSession `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"sessions,omitempty"`
	Notes      []Note           `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"notes,omitempty"`
	Highlights []Highlight      `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"highlights,omitempty"`
	Shelves    []Shelf          `gorm:"many2many:book_shelves;" json:"shelves,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
