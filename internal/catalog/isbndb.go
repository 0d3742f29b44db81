package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/foliolib/folio/internal/entities"
)

const isbndbName = "isbndb"

// ISBNdbClient fetches book metadata from the ISBNdb API. The API requires a
// paid credential passed in the Authorization header; constructing the client
// without one yields a permanently unavailable provider, which the fallback
// resolver skips rather than treating as a failure.
type ISBNdbClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewISBNdbClient creates an ISBNdb API client. Whether the provider is
// usable is decided here, at construction time, by the presence of the key.
func NewISBNdbClient(baseURL, apiKey string) *ISBNdbClient {
	return &ISBNdbClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

func (c *ISBNdbClient) Name() string { return isbndbName }

// Available reports whether the client holds a credential.
func (c *ISBNdbClient) Available() bool { return c.apiKey != "" }

// Search is not supported by this provider's book endpoint; the resolver
// skips it in the search chain.
func (c *ISBNdbClient) Search(ctx context.Context, query string) ([]entities.Book, error) {
	return nil, fmt.Errorf("%s: search not supported: %w", isbndbName, ErrProviderUnavailable)
}

// LookupISBN fetches a single book record by ISBN.
func (c *ISBNdbClient) LookupISBN(ctx context.Context, isbn string) (*entities.Book, error) {
	if !c.Available() {
		return nil, fmt.Errorf("%s: no API key configured: %w", isbndbName, ErrProviderUnavailable)
	}

	isbn = normalizeISBN(isbn)
	if isbn == "" {
		return nil, fmt.Errorf("invalid ISBN")
	}

	bookURL := fmt.Sprintf("%s/book/%s", c.baseURL, isbn)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, bookURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: isbndbName, Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%s: %w", isbndbName, ErrRateLimited)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: isbn %s: %w", isbndbName, isbn, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, &ProviderError{
			Provider: isbndbName,
			Kind:     KindNetwork,
			Err:      fmt.Errorf("unexpected status: %d", resp.StatusCode),
		}
	}

	var result isbndbResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ProviderError{Provider: isbndbName, Kind: KindParse, Err: err}
	}
	if result.Book == nil {
		return nil, fmt.Errorf("%s: isbn %s: %w", isbndbName, isbn, ErrNotFound)
	}

	book := isbndbBookToBook(*result.Book, isbn)
	return &book, nil
}

// ISBNdb API response types (internal)

type isbndbResponse struct {
	Book *isbndbBook `json:"book"`
}

type isbndbBook struct {
	Title         string   `json:"title"`
	TitleLong     string   `json:"title_long"`
	ISBN          string   `json:"isbn"`
	ISBN13        string   `json:"isbn13"`
	Authors       []string `json:"authors"`
	Publisher     string   `json:"publisher"`
	Language      string   `json:"language"`
	DatePublished string   `json:"date_published"`
	Pages         int      `json:"pages"`
	Subjects      []string `json:"subjects"`
	Synopsis      string   `json:"synopsis"`
	Image         string   `json:"image"`
}
