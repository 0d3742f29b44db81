package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/foliolib/folio/internal/entities"
)

const googleBooksName = "google_books"

// GoogleBooksClient fetches book metadata from the Google Books volumes API.
// The API key is optional; without it requests are simply unauthenticated.
type GoogleBooksClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewGoogleBooksClient creates a Google Books API client. An empty apiKey is
// allowed and means the key query parameter is omitted.
func NewGoogleBooksClient(baseURL, apiKey string) *GoogleBooksClient {
	return &GoogleBooksClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

func (c *GoogleBooksClient) Name() string { return googleBooksName }

// Search queries the volumes endpoint with a free-text query.
func (c *GoogleBooksClient) Search(ctx context.Context, query string) ([]entities.Book, error) {
	return c.searchVolumes(ctx, query)
}

// LookupISBN queries the volumes endpoint with an "isbn:" qualified query
// and returns the first match.
func (c *GoogleBooksClient) LookupISBN(ctx context.Context, isbn string) (*entities.Book, error) {
	isbn = normalizeISBN(isbn)
	if isbn == "" {
		return nil, fmt.Errorf("invalid ISBN")
	}

	books, err := c.searchVolumes(ctx, "isbn:"+isbn)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, fmt.Errorf("%s: isbn %s: %w", googleBooksName, isbn, ErrNotFound)
	}
	return &books[0], nil
}

func (c *GoogleBooksClient) searchVolumes(ctx context.Context, query string) ([]entities.Book, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", "40")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	searchURL := fmt.Sprintf("%s/volumes?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: googleBooksName, Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%s: %w", googleBooksName, ErrRateLimited)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", googleBooksName, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, &ProviderError{
			Provider: googleBooksName,
			Kind:     KindNetwork,
			Err:      fmt.Errorf("unexpected status: %d", resp.StatusCode),
		}
	}

	var result googleBooksResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ProviderError{Provider: googleBooksName, Kind: KindParse, Err: err}
	}

	books := make([]entities.Book, 0, len(result.Items))
	for _, item := range result.Items {
		books = append(books, googleVolumeToBook(item))
	}
	return books, nil
}

// Google Books API response types (internal)

type googleBooksResponse struct {
	TotalItems int              `json:"totalItems"`
	Items      []googleBookItem `json:"items"`
}

type googleBookItem struct {
	ID         string           `json:"id"`
	VolumeInfo googleVolumeInfo `json:"volumeInfo"`
}

type googleVolumeInfo struct {
	Title               string                     `json:"title"`
	Authors             []string                   `json:"authors"`
	Publisher           string                     `json:"publisher"`
	PublishedDate       string                     `json:"publishedDate"`
	Description         string                     `json:"description"`
	IndustryIdentifiers []googleIndustryIdentifier `json:"industryIdentifiers"`
	PageCount           int                        `json:"pageCount"`
	Categories          []string                   `json:"categories"`
	ImageLinks          *googleImageLinks          `json:"imageLinks"`
	Language            string                     `json:"language"`
	AverageRating       float64                    `json:"averageRating"`
}

type googleIndustryIdentifier struct {
	Type       string `json:"type"` // ISBN_10, ISBN_13
	Identifier string `json:"identifier"`
}

type googleImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
	Small          string `json:"small"`
	Medium         string `json:"medium"`
	Large          string `json:"large"`
}
