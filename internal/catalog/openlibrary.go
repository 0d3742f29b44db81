package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/foliolib/folio/internal/entities"
)

const openLibraryName = "open_library"

// OpenLibraryClient fetches book metadata from the Open Library search API.
// No credential is required; requests are rate limited to stay polite.
type OpenLibraryClient struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rateLimiter
}

type rateLimiter struct {
	mu       sync.Mutex
	lastCall time.Time
	interval time.Duration
}

func newRateLimiter(interval time.Duration) *rateLimiter {
	return &rateLimiter{interval: interval}
}

func (r *rateLimiter) wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	since := time.Since(r.lastCall)
	if since < r.interval {
		timer := time.NewTimer(r.interval - since)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.lastCall = time.Now()
	return nil
}

// NewOpenLibraryClient creates an Open Library API client with rate limiting.
func NewOpenLibraryClient(baseURL string) *OpenLibraryClient {
	return &OpenLibraryClient{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     baseURL,
		rateLimiter: newRateLimiter(time.Second), // 1 request per second
	}
}

func (c *OpenLibraryClient) Name() string { return openLibraryName }

// Search queries the search.json endpoint with a free-text query.
func (c *OpenLibraryClient) Search(ctx context.Context, query string) ([]entities.Book, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", "40")

	docs, err := c.fetchDocs(ctx, params)
	if err != nil {
		return nil, err
	}

	books := make([]entities.Book, 0, len(docs))
	for _, doc := range docs {
		books = append(books, openLibraryDocToBook(doc))
	}
	return books, nil
}

// LookupISBN queries search.json with the isbn parameter and returns the
// first document.
func (c *OpenLibraryClient) LookupISBN(ctx context.Context, isbn string) (*entities.Book, error) {
	isbn = normalizeISBN(isbn)
	if isbn == "" {
		return nil, fmt.Errorf("invalid ISBN")
	}

	params := url.Values{}
	params.Set("isbn", isbn)

	docs, err := c.fetchDocs(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%s: isbn %s: %w", openLibraryName, isbn, ErrNotFound)
	}

	book := openLibraryDocToBook(docs[0])
	return &book, nil
}

func (c *OpenLibraryClient) fetchDocs(ctx context.Context, params url.Values) ([]openLibraryDoc, error) {
	if err := c.rateLimiter.wait(ctx); err != nil {
		return nil, err
	}

	searchURL := fmt.Sprintf("%s/search.json?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: openLibraryName, Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%s: %w", openLibraryName, ErrRateLimited)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", openLibraryName, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, &ProviderError{
			Provider: openLibraryName,
			Kind:     KindNetwork,
			Err:      fmt.Errorf("unexpected status: %d", resp.StatusCode),
		}
	}

	var result openLibrarySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ProviderError{Provider: openLibraryName, Kind: KindParse, Err: err}
	}

	return result.Docs, nil
}

// Open Library API response types (internal)

type openLibrarySearchResponse struct {
	NumFound int              `json:"numFound"`
	Docs     []openLibraryDoc `json:"docs"`
}

type openLibraryDoc struct {
	Key                  string   `json:"key"`
	Title                string   `json:"title"`
	AuthorName           []string `json:"author_name"`
	ISBN                 []string `json:"isbn"`
	Publisher            []string `json:"publisher"`
	PublishDate          []string `json:"publish_date"`
	FirstPublishYear     int      `json:"first_publish_year"`
	NumberOfPagesMedian  int      `json:"number_of_pages_median"`
	Subject              []string `json:"subject"`
	CoverID              int64    `json:"cover_i"`
	Language             []string `json:"language"`
}
