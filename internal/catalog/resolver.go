package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/foliolib/folio/internal/entities"
)

// Resolver orchestrates ordered attempts across a fixed provider chain.
// Attempts are strictly sequential: the first usable answer wins and the
// remaining providers are never contacted. There is no retry inside the
// resolver; a failed chain fails once per invocation.
type Resolver struct {
	providers []Provider
}

// NewResolver creates a resolver over the given providers, attempted in the
// order supplied.
func NewResolver(providers ...Provider) *Resolver {
	return &Resolver{providers: providers}
}

// SearchBooks attempts each provider in order until one returns a non-empty
// result list. Provider errors and empty answers are logged and the chain
// continues; only the aggregate failure reaches the caller. A blank query
// short-circuits to an empty success without contacting any provider.
func (r *Resolver) SearchBooks(ctx context.Context, query string) ([]entities.Book, error) {
	if strings.TrimSpace(query) == "" {
		return []entities.Book{}, nil
	}

	attempts := make([]Attempt, 0, len(r.providers))

	for _, provider := range r.providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		books, err := provider.Search(ctx, query)
		if err != nil {
			if errors.Is(err, ErrProviderUnavailable) {
				log.Printf("Search: skipping %s: %v", provider.Name(), err)
			} else {
				log.Printf("Search: %s failed for %q: %v", provider.Name(), query, err)
			}
			attempts = append(attempts, Attempt{Provider: provider.Name(), Err: err})
			continue
		}
		if len(books) == 0 {
			log.Printf("Search: %s returned no results for %q", provider.Name(), query)
			attempts = append(attempts, Attempt{Provider: provider.Name(), Err: ErrNotFound})
			continue
		}

		return books, nil
	}

	return nil, &AllProvidersFailedError{Query: query, Attempts: attempts}
}

// GetBookByISBN attempts each provider in order until one returns a non-nil
// record. Exhausting the chain yields ErrNotFound.
func (r *Resolver) GetBookByISBN(ctx context.Context, isbn string) (*entities.Book, error) {
	for _, provider := range r.providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		book, err := provider.LookupISBN(ctx, isbn)
		if err != nil {
			if errors.Is(err, ErrProviderUnavailable) {
				log.Printf("Lookup: skipping %s: %v", provider.Name(), err)
			} else {
				log.Printf("Lookup: %s failed for isbn %q: %v", provider.Name(), isbn, err)
			}
			continue
		}
		if book == nil {
			continue
		}

		return book, nil
	}

	return nil, fmt.Errorf("no provider found a book for isbn %q: %w", isbn, ErrNotFound)
}
