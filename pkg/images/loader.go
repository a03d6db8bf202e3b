package images

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Loader fetches story thumbnails over HTTP and renders them as half-block
// cells, two pixels per terminal row. Rendered thumbnails are cached by URL
// and size for the lifetime of the loader.
type Loader struct {
	client *http.Client

	mu    sync.Mutex
	cache map[string]string
}

func NewLoader() *Loader {
	return &Loader{
		client: &http.Client{Timeout: 10 * time.Second},
		cache:  make(map[string]string),
	}
}

// Thumbnail returns a width x height cell block for the image at url.
func (l *Loader) Thumbnail(url string, width, height int) (string, error) {
	if url == "" || width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid thumbnail request")
	}

	key := fmt.Sprintf("%s|%dx%d", url, width, height)
	l.mu.Lock()
	if cached, ok := l.cache[key]; ok {
		l.mu.Unlock()
		return cached, nil
	}
	l.mu.Unlock()

	resp, err := l.client.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch image: status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	rendered := renderHalfBlocks(img, width, height)

	l.mu.Lock()
	l.cache[key] = rendered
	l.mu.Unlock()

	return rendered, nil
}

func renderHalfBlocks(img image.Image, width, height int) string {
	scaled := image.NewRGBA(image.Rect(0, 0, width, height*2))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			top := hexColor(scaled.At(x, y*2))
			bottom := hexColor(scaled.At(x, y*2+1))
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀")
			b.WriteString(cell)
		}
		if y != height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func hexColor(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
