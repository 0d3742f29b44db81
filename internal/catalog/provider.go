// Package catalog implements book metadata resolution against external
// catalogs: one client per provider, pure normalization of each provider's
// wire format into the canonical Book record, and an ordered fallback
// resolver over the provider chain.
package catalog

import (
	"context"
	"strings"

	"github.com/foliolib/folio/internal/entities"
)

const userAgent = "Folio/1.0 (https://github.com/foliolib/folio)"

// Provider is one external book-metadata catalog. Implementations own their
// transport, authentication, and wire format, and return canonical Books;
// no provider knows about any other.
type Provider interface {
	Name() string

	// Search returns the provider's matches for a free-text query.
	// An empty result with a nil error is a well-formed "nothing found".
	Search(ctx context.Context, query string) ([]entities.Book, error)

	// LookupISBN returns a single record for an ISBN, or ErrNotFound.
	LookupISBN(ctx context.Context, isbn string) (*entities.Book, error)
}

// normalizeISBN removes hyphens and spaces from an ISBN. Returns "" when the
// cleaned value is not 10 or 13 characters long.
func normalizeISBN(isbn string) string {
	isbn = strings.ReplaceAll(isbn, "-", "")
	isbn = strings.ReplaceAll(isbn, " ", "")
	isbn = strings.TrimSpace(isbn)

	if len(isbn) != 10 && len(isbn) != 13 {
		return ""
	}

	return isbn
}
