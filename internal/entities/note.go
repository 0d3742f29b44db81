package entities

import "time"

// Note is a free-form annotation attached to a book.
type Note struct {
	ID      string `gorm:"primaryKey;size:64" json:"id"`
	BookID  string `gorm:"index;size:64" json:"book_id"`
	Content string `gorm:"type:text" json:"content"`
	Page    int    `json:"page,omitempty"`
	Chapter string `gorm:"size:256" json:"chapter,omitempty"`
	Color   string `gorm:"size:10" json:"color,omitempty"` // hex color code

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Highlight is a quoted passage from a book.
type Highlight struct {
	ID     string `gorm:"primaryKey;size:64" json:"id"`
	BookID string `gorm:"index;size:64" json:"book_id"`
	Text   string `gorm:"type:text" json:"text"`
	Page   int    `json:"page,omitempty"`
	Color  string `gorm:"size:10" json:"color,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
