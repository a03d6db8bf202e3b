package data

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS stories (
	url          TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	publisher    TEXT DEFAULT '',
	image_url    TEXT DEFAULT '',
	excerpt      TEXT DEFAULT '',
	time_to_read INTEGER DEFAULT 0,
	category     TEXT DEFAULT '',
	times_shown  INTEGER DEFAULT 0
);
CREATE TABLE IF NOT EXISTS categories (
	name        TEXT PRIMARY KEY,
	is_selected BOOLEAN DEFAULT FALSE
);
`

func InitDuckDB(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

type Repository struct {
	db *sql.DB
}

var duckDB *sql.DB

func NewDuckDBRepository(path string) *Repository {
	if duckDB == nil {
		db, err := InitDuckDB(path)
		if err != nil {
			log.Fatal(err)
		}
		duckDB = db
	}

	return &Repository{db: duckDB}
}

// SaveStory upserts a story keyed by URL. The times_shown counter of an
// existing story survives the update.
func (r *Repository) SaveStory(story *Story) error {
	_, err := r.db.Exec(`
		INSERT INTO stories (url, title, publisher, image_url, excerpt, time_to_read, category)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (url) DO UPDATE SET
			title = excluded.title,
			publisher = excluded.publisher,
			image_url = excluded.image_url,
			excerpt = excluded.excerpt,
			time_to_read = excluded.time_to_read,
			category = excluded.category`,
		story.URL, story.Title, story.Publisher, story.ImageURL,
		story.Excerpt, story.TimeToRead, story.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to save story: %w", err)
	}
	return nil
}

func (r *Repository) GetStory(url string) (*Story, error) {
	row := r.db.QueryRow(`
		SELECT url, title, publisher, image_url, excerpt, time_to_read, category, times_shown
		FROM stories WHERE url = ?`, url)

	story, err := scanStory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	return story, nil
}

func (r *Repository) ListStories() ([]*Story, error) {
	rows, err := r.db.Query(`
		SELECT url, title, publisher, image_url, excerpt, time_to_read, category, times_shown
		FROM stories ORDER BY times_shown ASC, title ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	defer rows.Close()

	return collectStories(rows)
}

// ListStoriesByCategories returns stories in the named categories, least shown
// first. An empty name list means no filter.
func (r *Repository) ListStoriesByCategories(names []string) ([]*Story, error) {
	if len(names) == 0 {
		return r.ListStories()
	}

	placeholders := strings.Repeat("?, ", len(names)-1) + "?"
	args := make([]any, len(names))
	for i, name := range names {
		args[i] = name
	}

	rows, err := r.db.Query(`
		SELECT url, title, publisher, image_url, excerpt, time_to_read, category, times_shown
		FROM stories WHERE category IN (`+placeholders+`)
		ORDER BY times_shown ASC, title ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	defer rows.Close()

	return collectStories(rows)
}

// ListCategories derives the category list from stored stories, joined with
// the persisted selection flags. Stories without a category contribute nothing.
func (r *Repository) ListCategories() ([]StoryCategory, error) {
	rows, err := r.db.Query(`
		SELECT s.category, COALESCE(c.is_selected, FALSE)
		FROM (SELECT DISTINCT category FROM stories WHERE category <> '') s
		LEFT JOIN categories c ON c.name = s.category
		ORDER BY s.category`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []StoryCategory
	for rows.Next() {
		var cat StoryCategory
		if err := rows.Scan(&cat.Name, &cat.IsSelected); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *Repository) SetCategorySelected(name string, selected bool) error {
	_, err := r.db.Exec(`
		INSERT INTO categories (name, is_selected) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET is_selected = excluded.is_selected`,
		name, selected)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (r *Repository) SelectedCategories() ([]string, error) {
	rows, err := r.db.Query(`SELECT name FROM categories WHERE is_selected ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list selected categories: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// MarkShown increments the times_shown counter of the story with the given URL.
func (r *Repository) MarkShown(url string) error {
	_, err := r.db.Exec(`UPDATE stories SET times_shown = times_shown + 1 WHERE url = ?`, url)
	if err != nil {
		return fmt.Errorf("failed to mark story shown: %w", err)
	}
	return nil
}

func (r *Repository) DeleteStory(url string) error {
	_, err := r.db.Exec(`DELETE FROM stories WHERE url = ?`, url)
	if err != nil {
		return fmt.Errorf("failed to delete story: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStory(s scanner) (*Story, error) {
	var story Story
	err := s.Scan(
		&story.URL, &story.Title, &story.Publisher, &story.ImageURL,
		&story.Excerpt, &story.TimeToRead, &story.Category, &story.TimesShown,
	)
	if err != nil {
		return nil, err
	}
	return &story, nil
}

func collectStories(rows *sql.Rows) ([]*Story, error) {
	var stories []*Story
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			return nil, err
		}
		stories = append(stories, story)
	}
	return stories, rows.Err()
}
