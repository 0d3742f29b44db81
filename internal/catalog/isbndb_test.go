package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const isbndbPayload = `{
	"book": {
		"title": "Refactoring",
		"isbn": "0134757599",
		"isbn13": "9780134757599",
		"authors": ["Martin Fowler"],
		"publisher": "Addison-Wesley",
		"date_published": "2018",
		"pages": 448,
		"image": "http://images.isbndb.com/covers/refactoring.jpg"
	}
}`

func TestISBNdbLookupISBN(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/book/9780134757599" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "secret-key" {
			t.Errorf("Authorization header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(isbndbPayload))
	}))
	defer server.Close()

	client := NewISBNdbClient(server.URL, "secret-key")
	book, err := client.LookupISBN(context.Background(), "978-0-13-475759-9")
	if err != nil {
		t.Fatalf("LookupISBN failed: %v", err)
	}

	if book.Title != "Refactoring" {
		t.Errorf("Title = %q", book.Title)
	}
	if book.ThumbnailURL != "https://images.isbndb.com/covers/refactoring.jpg" {
		t.Errorf("ThumbnailURL = %q", book.ThumbnailURL)
	}
}

func TestISBNdbLookupISBN_NoKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("client without a key must not issue requests")
	}))
	defer server.Close()

	client := NewISBNdbClient(server.URL, "")
	_, err := client.LookupISBN(context.Background(), "9780134757599")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestISBNdbSearchNotSupported(t *testing.T) {
	client := NewISBNdbClient("http://unused", "key")
	_, err := client.Search(context.Background(), "anything")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestISBNdbLookupISBN_NullBook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"book": null}`))
	}))
	defer server.Close()

	client := NewISBNdbClient(server.URL, "secret-key")
	_, err := client.LookupISBN(context.Background(), "9780134757599")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestISBNdbLookupISBN_NotFoundStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewISBNdbClient(server.URL, "secret-key")
	_, err := client.LookupISBN(context.Background(), "9780134757599")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
