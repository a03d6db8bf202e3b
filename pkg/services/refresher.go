package services

import (
	"fmt"

	"github.com/danivela/storyfeed/pkg/data"
	"github.com/danivela/storyfeed/pkg/sources"
	"github.com/sirupsen/logrus"
)

// FeedSize is how many stories the home feed shows at once.
const FeedSize = 8

// Repository is the slice of the store the refresher needs.
type Repository interface {
	SaveStory(story *data.Story) error
	ListStoriesByCategories(names []string) ([]*data.Story, error)
	SelectedCategories() ([]string, error)
	MarkShown(url string) error
}

// Refresher pulls stories from a source into the store and assembles the
// home feed from what is stored.
type Refresher struct {
	source sources.Source
	repo   Repository
	log    *logrus.Logger
}

func NewRefresher(source sources.Source, repo Repository, log *logrus.Logger) *Refresher {
	if log == nil {
		log = logrus.New()
	}
	return &Refresher{
		source: source,
		repo:   repo,
		log:    log,
	}
}

// Refresh fetches the current recommendations and upserts them. Stories that
// fail to save are skipped, not fatal.
func (r *Refresher) Refresh() (int, error) {
	stories, err := r.source.Stories()
	if err != nil {
		return 0, fmt.Errorf("failed to fetch stories: %w", err)
	}

	saved := 0
	for i := range stories {
		if stories[i].URL == "" || stories[i].Title == "" {
			continue
		}
		if err := r.repo.SaveStory(&stories[i]); err != nil {
			r.log.WithError(err).WithField("url", stories[i].URL).Warn("skipping story")
			continue
		}
		saved++
	}

	r.log.WithField("count", saved).Info("feed refreshed")
	return saved, nil
}

// Feed returns up to max stories for the home grid, filtered by the selected
// categories and rotated least-shown first. Every returned story has its
// times_shown counter bumped so the next feed favors fresher ones.
func (r *Refresher) Feed(max int) ([]data.Story, error) {
	if max <= 0 {
		max = FeedSize
	}

	selected, err := r.repo.SelectedCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load category selection: %w", err)
	}

	stored, err := r.repo.ListStoriesByCategories(selected)
	if err != nil {
		return nil, fmt.Errorf("failed to load stories: %w", err)
	}

	if len(stored) > max {
		stored = stored[:max]
	}

	feed := make([]data.Story, 0, len(stored))
	for _, story := range stored {
		if err := r.repo.MarkShown(story.URL); err != nil {
			r.log.WithError(err).WithField("url", story.URL).Warn("could not mark story shown")
		}
		feed = append(feed, *story)
	}
	return feed, nil
}
