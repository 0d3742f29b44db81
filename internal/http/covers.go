package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliolib/folio/internal/covers"
	"github.com/foliolib/folio/internal/database/books"
)

type CoversController struct {
	cache *covers.Cache
	repo  *books.Repository
}

func NewCoversController(cache *covers.Cache, repo *books.Repository) *CoversController {
	return &CoversController{cache: cache, repo: repo}
}

// GetCover serves a book's cover image from the local cache, downloading it
// from the provider URL on first request. Prefers the large image and falls
// back to the thumbnail.
func (controller *CoversController) GetCover(c *gin.Context) {
	book, err := controller.repo.GetBookByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, books.ErrNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	coverURL := book.LargeImageURL
	if coverURL == "" {
		coverURL = book.ThumbnailURL
	}
	if coverURL == "" {
		c.IndentedJSON(http.StatusNotFound, gin.H{"error": "book has no cover"})
		return
	}

	path, err := controller.cache.GetCover(book.ID, coverURL)
	if err != nil {
		c.IndentedJSON(http.StatusBadGateway, gin.H{"error": "could not fetch cover"})
		return
	}

	c.File(path)
}
