package covers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
)

func TestCache_GetCover(t *testing.T) {
	var fetches int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fetches, 1)
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}

	path, err := cache.GetCover("/works/OL1W", server.URL+"/cover.jpg")
	if err != nil {
		t.Fatalf("GetCover failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read cached file: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("cached content = %q", data)
	}

	// Second call must be served from disk.
	again, err := cache.GetCover("/works/OL1W", server.URL+"/cover.jpg")
	if err != nil {
		t.Fatalf("GetCover failed: %v", err)
	}
	if again != path {
		t.Errorf("expected same cache path, got %q and %q", path, again)
	}
	if got := atomic.LoadInt32(&fetches); got != 1 {
		t.Errorf("expected 1 upstream fetch, got %d", got)
	}
}

func TestCache_GetCover_EmptyURL(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}

	path, err := cache.GetCover("b1", "")
	if err != nil {
		t.Fatalf("GetCover failed: %v", err)
	}
	if path != "" {
		t.Errorf("expected empty path for empty URL, got %q", path)
	}
}

func TestCache_GetCover_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}

	if _, err := cache.GetCover("b1", server.URL+"/missing.jpg"); err == nil {
		t.Error("expected error for upstream 404")
	}
}

func TestCache_InvalidateCover(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}

	path, err := cache.GetCover("b1", server.URL+"/cover.jpg")
	if err != nil {
		t.Fatalf("GetCover failed: %v", err)
	}

	if err := cache.InvalidateCover("b1"); err != nil {
		t.Fatalf("InvalidateCover failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected cached file to be removed")
	}
}
