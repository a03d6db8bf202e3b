package sources

import (
	"strings"

	"github.com/danivela/storyfeed/pkg/data"
)

// Source supplies recommended stories. Implementations own their transport,
// caching, and failure behavior; callers get stories or an error.
type Source interface {
	Stories() ([]data.Story, error)
	Search(query string) ([]data.Story, error)
}

// matchStories filters stories whose title, publisher, or category contains
// the query, case-insensitively.
func matchStories(stories []data.Story, query string) []data.Story {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return stories
	}

	var matched []data.Story
	for _, story := range stories {
		haystack := strings.ToLower(story.Title + " " + story.Publisher + " " + story.Category)
		if strings.Contains(haystack, query) {
			matched = append(matched, story)
		}
	}
	return matched
}
