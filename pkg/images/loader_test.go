package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func pngFixture(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestThumbnail(t *testing.T) {
	fixture := pngFixture(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(fixture)
	}))
	defer server.Close()

	loader := NewLoader()

	thumb, err := loader.Thumbnail(server.URL, 4, 2)
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}

	lines := strings.Split(thumb, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(lines))
	}
	if !strings.Contains(thumb, "▀") {
		t.Error("Expected half-block cells in rendered thumbnail")
	}
}

func TestThumbnailCaches(t *testing.T) {
	fixture := pngFixture(t)
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write(fixture)
	}))
	defer server.Close()

	loader := NewLoader()

	first, err := loader.Thumbnail(server.URL, 4, 2)
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}
	second, err := loader.Thumbnail(server.URL, 4, 2)
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}

	if requests != 1 {
		t.Errorf("Expected a single fetch, got %d", requests)
	}
	if first != second {
		t.Error("Expected cached render to match the original")
	}

	// A different size is a different cache entry.
	if _, err := loader.Thumbnail(server.URL, 2, 1); err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}
	if requests != 2 {
		t.Errorf("Expected a second fetch for a new size, got %d", requests)
	}
}

func TestThumbnailFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	loader := NewLoader()

	if _, err := loader.Thumbnail(server.URL, 4, 2); err == nil {
		t.Fatal("Expected error for missing image")
	}
}

func TestThumbnailBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not an image"))
	}))
	defer server.Close()

	loader := NewLoader()

	if _, err := loader.Thumbnail(server.URL, 4, 2); err == nil {
		t.Fatal("Expected decode error for non-image payload")
	}
}
