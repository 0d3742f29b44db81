package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliolib/folio/internal/catalog"
	"github.com/foliolib/folio/internal/entities"
)

// BookResolver is the piece of the catalog the search endpoints need.
type BookResolver interface {
	SearchBooks(ctx context.Context, query string) ([]entities.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (*entities.Book, error)
}

type SearchController struct {
	resolver BookResolver
}

func NewSearchController(resolver BookResolver) *SearchController {
	return &SearchController{resolver: resolver}
}

// Search resolves a free-text query through the provider chain.
// Total provider failure surfaces as a single generic condition; the caller
// never sees which providers were tried or how they failed.
func (controller *SearchController) Search(c *gin.Context) {
	query := c.Query("q")

	books, err := controller.resolver.SearchBooks(c.Request.Context(), query)
	if err != nil {
		var allFailed *catalog.AllProvidersFailedError
		if errors.As(err, &allFailed) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "could not find book"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// LookupISBN resolves a single book by ISBN through the provider chain.
func (controller *SearchController) LookupISBN(c *gin.Context) {
	isbn := c.Param("isbn")

	book, err := controller.resolver.GetBookByISBN(c.Request.Context(), isbn)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "could not find book"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusOK, book)
}
