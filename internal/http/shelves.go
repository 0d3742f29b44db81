package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliolib/folio/internal/database/shelves"
)

type ShelvesController struct {
	repo *shelves.Repository
}

func NewShelvesController(repo *shelves.Repository) *ShelvesController {
	return &ShelvesController{repo: repo}
}

type createShelfRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (controller *ShelvesController) CreateShelf(c *gin.Context) {
	var req createShelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	shelf, err := controller.repo.CreateShelf(req.Name, req.Description)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusCreated, shelf)
}

func (controller *ShelvesController) GetAllShelves(c *gin.Context) {
	result, err := controller.repo.GetAllShelves()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"shelves": result, "count": len(result)})
}

func (controller *ShelvesController) GetShelfByID(c *gin.Context) {
	shelf, err := controller.repo.GetShelfByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, shelves.ErrNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "shelf not found"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, shelf)
}

func (controller *ShelvesController) AddBookToShelf(c *gin.Context) {
	err := controller.repo.AddBookToShelf(c.Param("id"), c.Param("bookID"))
	if err != nil {
		if errors.Is(err, shelves.ErrNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "shelf not found"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (controller *ShelvesController) RemoveBookFromShelf(c *gin.Context) {
	err := controller.repo.RemoveBookFromShelf(c.Param("id"), c.Param("bookID"))
	if err != nil {
		if errors.Is(err, shelves.ErrNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "shelf not found"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (controller *ShelvesController) DeleteShelf(c *gin.Context) {
	err := controller.repo.DeleteShelf(c.Param("id"))
	if err != nil {
		if errors.Is(err, shelves.ErrNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "shelf not found"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
