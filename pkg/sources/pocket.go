package sources

import (
	"context"
	"fmt"
	"time"

	"github.com/danivela/storyfeed/pkg/data"
	"github.com/danivela/storyfeed/pkg/utils"
	"golang.org/x/time/rate"
)

type recommendation struct {
	URL        string `json:"url"`
	Domain     string `json:"domain"`
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	ImageSrc   string `json:"image_src"`
	TimeToRead int    `json:"time_to_read"`
	Category   string `json:"category"`
}

func (r *recommendation) toStory() data.Story {
	timeToRead := r.TimeToRead
	if timeToRead < 0 {
		timeToRead = 0
	}
	return data.Story{
		Title:      r.Title,
		Publisher:  r.Domain,
		URL:        r.URL,
		ImageURL:   r.ImageSrc,
		Excerpt:    r.Excerpt,
		TimeToRead: timeToRead,
		Category:   r.Category,
	}
}

// Pocket fetches the global recommendation feed from the Pocket proxy.
type Pocket struct {
	api     *utils.API
	limiter *rate.Limiter
}

func NewPocket() *Pocket {
	return NewPocketWithBaseURL("https://getpocket.cdn.mozilla.net")
}

func NewPocketWithBaseURL(baseURL string) *Pocket {
	return &Pocket{
		api:     utils.NewAPI(baseURL),
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

func (p *Pocket) Stories() ([]data.Story, error) {
	if err := p.limiter.Wait(context.Background()); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	var resp struct {
		Status          int              `json:"status"`
		Recommendations []recommendation `json:"recommendations"`
	}
	if err := p.api.Get("/v3/firefox/global-recs", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch recommendations: %w", err)
	}

	stories := make([]data.Story, 0, len(resp.Recommendations))
	for i := range resp.Recommendations {
		stories = append(stories, resp.Recommendations[i].toStory())
	}
	return stories, nil
}

// Search filters the recommendation feed client-side; the proxy has no
// search endpoint.
func (p *Pocket) Search(query string) ([]data.Story, error) {
	stories, err := p.Stories()
	if err != nil {
		return nil, err
	}
	return matchStories(stories, query), nil
}
