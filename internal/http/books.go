package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliolib/folio/internal/catalog"
	"github.com/foliolib/folio/internal/database/books"
	"github.com/foliolib/folio/internal/entities"
)

// BookEnqueuer schedules background metadata enrichment for a saved book.
// Nil-safe optional dependency; the endpoint works without a task queue.
type BookEnqueuer interface {
	EnqueueEnrichBook(bookID string) error
}

type BooksController struct {
	repo     *books.Repository
	enqueuer BookEnqueuer
}

func NewBooksController(repo *books.Repository, enqueuer BookEnqueuer) *BooksController {
	return &BooksController{repo: repo, enqueuer: enqueuer}
}

// CreateManualBook adds a book from user-supplied fields, bypassing all
// providers. If the entry carries an ISBN, background enrichment is queued
// to fill the fields the user left blank.
func (controller *BooksController) CreateManualBook(c *gin.Context) {
	var entry catalog.ManualEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	book, err := catalog.NewManualBook(entry)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := controller.repo.SaveBook(&book); err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if controller.enqueuer != nil && (book.ISBN10 != "" || book.ISBN13 != "") {
		_ = controller.enqueuer.EnqueueEnrichBook(book.ID)
	}

	c.IndentedJSON(http.StatusCreated, book)
}

// SaveBook persists a canonical book the caller got from search or lookup.
func (controller *BooksController) SaveBook(c *gin.Context) {
	var book entities.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if book.ID == "" || book.Title == "" {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "id and title are required"})
		return
	}

	if err := controller.repo.SaveBook(&book); err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusCreated, book)
}

func (controller *BooksController) GetAllBooks(c *gin.Context) {
	var (
		result []entities.Book
		err    error
	)
	if status := c.Query("status"); status != "" {
		result, err = controller.repo.GetBooksByStatus(entities.ReadingStatus(status))
	} else {
		result, err = controller.repo.GetAllBooks()
	}
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": result, "count": len(result)})
}

func (controller *BooksController) GetBookByID(c *gin.Context) {
	book, err := controller.repo.GetBookByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, books.ErrNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}

type updateStatusRequest struct {
	Status      entities.ReadingStatus `json:"status" binding:"required"`
	CurrentPage int                    `json:"current_page"`
}

func (controller *BooksController) UpdateReadingStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	err := controller.repo.UpdateReadingStatus(c.Param("id"), req.Status, req.CurrentPage)
	if err != nil {
		if errors.Is(err, books.ErrNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteBook removes a book and cascades to its sessions, notes and
// highlights.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	err := controller.repo.DeleteBook(c.Param("id"))
	if err != nil {
		if errors.Is(err, books.ErrNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
