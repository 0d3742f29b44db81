package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliolib/folio/internal/database/books"
	"github.com/foliolib/folio/internal/database/sessions"
)

type SessionsController struct {
	sessions *sessions.Repository
	books    *books.Repository
}

func NewSessionsController(sessionRepo *sessions.Repository, bookRepo *books.Repository) *SessionsController {
	return &SessionsController{sessions: sessionRepo, books: bookRepo}
}

// StartSession opens a provisional reading session for a book.
func (controller *SessionsController) StartSession(c *gin.Context) {
	bookID := c.Param("id")
	if _, err := controller.books.GetBookByID(bookID); err != nil {
		if errors.Is(err, books.ErrNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	session, err := controller.sessions.StartSession(bookID)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusCreated, session)
}

type endSessionRequest struct {
	PagesRead int `json:"pages_read"`
}

// EndSession finalizes a session's duration and pages read.
func (controller *SessionsController) EndSession(c *gin.Context) {
	var req endSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.PagesRead < 0 {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "pages_read must not be negative"})
		return
	}

	session, err := controller.sessions.EndSession(c.Param("id"), req.PagesRead)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		if errors.Is(err, sessions.ErrAlreadyEnded) {
			c.IndentedJSON(http.StatusConflict, gin.H{"error": "session already ended"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, session)
}

// GetSessionsForBook lists a book's sessions, oldest first.
func (controller *SessionsController) GetSessionsForBook(c *gin.Context) {
	result, err := controller.sessions.GetSessionsForBook(c.Param("id"))
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"sessions": result, "count": len(result)})
}
