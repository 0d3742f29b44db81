package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliolib/folio/internal/database/notes"
)

type NotesController struct {
	repo *notes.Repository
}

func NewNotesController(repo *notes.Repository) *NotesController {
	return &NotesController{repo: repo}
}

type addNoteRequest struct {
	Content string `json:"content" binding:"required"`
	Page    int    `json:"page"`
	Chapter string `json:"chapter"`
}

func (controller *NotesController) AddNote(c *gin.Context) {
	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	note, err := controller.repo.AddNote(c.Param("id"), req.Content, req.Page, req.Chapter)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusCreated, note)
}

func (controller *NotesController) GetNotesForBook(c *gin.Context) {
	result, err := controller.repo.GetNotesForBook(c.Param("id"))
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"notes": result, "count": len(result)})
}

func (controller *NotesController) DeleteNote(c *gin.Context) {
	if err := controller.repo.DeleteNote(c.Param("noteID")); err != nil {
		if errors.Is(err, notes.ErrNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "note not found"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type addHighlightRequest struct {
	Text string `json:"text" binding:"required"`
	Page int    `json:"page"`
}

func (controller *NotesController) AddHighlight(c *gin.Context) {
	var req addHighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	highlight, err := controller.repo.AddHighlight(c.Param("id"), req.Text, req.Page)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusCreated, highlight)
}

func (controller *NotesController) GetHighlightsForBook(c *gin.Context) {
	result, err := controller.repo.GetHighlightsForBook(c.Param("id"))
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"highlights": result, "count": len(result)})
}
