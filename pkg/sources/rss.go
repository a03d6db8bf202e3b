package sources

import (
	"fmt"

	"github.com/danivela/storyfeed/pkg/data"
	"github.com/mmcdole/gofeed"
)

// RSS adapts an RSS/Atom feed into the story source interface, for feeds
// that publish story recommendations outside the Pocket proxy.
type RSS struct {
	url    string
	parser *gofeed.Parser
}

func NewRSS(url string) *RSS {
	return &RSS{
		url:    url,
		parser: gofeed.NewParser(),
	}
}

func (s *RSS) Stories() ([]data.Story, error) {
	feed, err := s.parser.ParseURL(s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.url, err)
	}

	stories := make([]data.Story, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}

		imageURL := ""
		if item.Image != nil {
			imageURL = item.Image.URL
		}

		category := ""
		if len(item.Categories) > 0 {
			category = item.Categories[0]
		}

		stories = append(stories, data.Story{
			Title:     item.Title,
			Publisher: feed.Title,
			URL:       item.Link,
			ImageURL:  imageURL,
			Excerpt:   truncate(item.Description, 200),
			Category:  category,
		})
	}
	return stories, nil
}

func (s *RSS) Search(query string) ([]data.Story, error) {
	stories, err := s.Stories()
	if err != nil {
		return nil, err
	}
	return matchStories(stories, query), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
