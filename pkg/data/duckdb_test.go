package data

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "storyfeed-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := InitDuckDB(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to init DB: %v", err)
	}

	repo := &Repository{db: db}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return repo, cleanup
}

func testStory(url, title, category string) *Story {
	return &Story{
		Title:      title,
		Publisher:  "example.com",
		URL:        url,
		ImageURL:   "https://img.example/{wh}/" + title + ".jpg",
		Excerpt:    "An excerpt.",
		TimeToRead: 5,
		Category:   category,
	}
}

func TestSaveAndGetStory(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	story := testStory("https://example.com/a", "Story A", "science")

	if err := repo.SaveStory(story); err != nil {
		t.Fatalf("Failed to save story: %v", err)
	}

	got, err := repo.GetStory(story.URL)
	if err != nil {
		t.Fatalf("Failed to get story: %v", err)
	}
	if got == nil {
		t.Fatal("Expected story, got nil")
	}

	if got.Title != story.Title {
		t.Errorf("Expected title %q, got %q", story.Title, got.Title)
	}
	if got.Publisher != story.Publisher {
		t.Errorf("Expected publisher %q, got %q", story.Publisher, got.Publisher)
	}
	if got.ImageURL != story.ImageURL {
		t.Errorf("Expected image URL %q, got %q", story.ImageURL, got.ImageURL)
	}
	if got.TimeToRead != 5 {
		t.Errorf("Expected 5 minutes, got %d", got.TimeToRead)
	}
	if got.TimesShown != 0 {
		t.Errorf("Expected 0 times shown, got %d", got.TimesShown)
	}
}

func TestGetStoryMissing(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	got, err := repo.GetStory("https://example.com/missing")
	if err != nil {
		t.Fatalf("Expected no error for missing story, got %v", err)
	}
	if got != nil {
		t.Error("Expected nil for missing story")
	}
}

func TestSaveStoryUpsertKeepsTimesShown(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	story := testStory("https://example.com/a", "Story A", "science")
	if err := repo.SaveStory(story); err != nil {
		t.Fatalf("Failed to save story: %v", err)
	}

	if err := repo.MarkShown(story.URL); err != nil {
		t.Fatalf("Failed to mark shown: %v", err)
	}
	if err := repo.MarkShown(story.URL); err != nil {
		t.Fatalf("Failed to mark shown: %v", err)
	}

	story.Title = "Story A, updated"
	if err := repo.SaveStory(story); err != nil {
		t.Fatalf("Failed to re-save story: %v", err)
	}

	got, err := repo.GetStory(story.URL)
	if err != nil {
		t.Fatalf("Failed to get story: %v", err)
	}
	if got.Title != "Story A, updated" {
		t.Errorf("Expected updated title, got %q", got.Title)
	}
	if got.TimesShown != 2 {
		t.Errorf("Expected times shown to survive upsert, got %d", got.TimesShown)
	}
}

func TestListStoriesLeastShownFirst(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	for _, s := range []*Story{
		testStory("https://example.com/a", "Story A", "science"),
		testStory("https://example.com/b", "Story B", "science"),
		testStory("https://example.com/c", "Story C", "science"),
	} {
		if err := repo.SaveStory(s); err != nil {
			t.Fatalf("Failed to save story: %v", err)
		}
	}

	repo.MarkShown("https://example.com/a")
	repo.MarkShown("https://example.com/a")
	repo.MarkShown("https://example.com/b")

	stories, err := repo.ListStories()
	if err != nil {
		t.Fatalf("Failed to list stories: %v", err)
	}
	if len(stories) != 3 {
		t.Fatalf("Expected 3 stories, got %d", len(stories))
	}

	if stories[0].URL != "https://example.com/c" {
		t.Errorf("Expected least shown story first, got %q", stories[0].URL)
	}
	if stories[2].URL != "https://example.com/a" {
		t.Errorf("Expected most shown story last, got %q", stories[2].URL)
	}
}

func TestListStoriesByCategories(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	repo.SaveStory(testStory("https://example.com/a", "Story A", "science"))
	repo.SaveStory(testStory("https://example.com/b", "Story B", "business"))
	repo.SaveStory(testStory("https://example.com/c", "Story C", "career"))

	stories, err := repo.ListStoriesByCategories([]string{"science", "career"})
	if err != nil {
		t.Fatalf("Failed to list stories: %v", err)
	}
	if len(stories) != 2 {
		t.Fatalf("Expected 2 stories, got %d", len(stories))
	}
	for _, s := range stories {
		if s.Category == "business" {
			t.Error("Expected business stories filtered out")
		}
	}

	all, err := repo.ListStoriesByCategories(nil)
	if err != nil {
		t.Fatalf("Failed to list stories: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected empty filter to return all stories, got %d", len(all))
	}
}

func TestListCategoriesAndSelection(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	repo.SaveStory(testStory("https://example.com/a", "Story A", "science"))
	repo.SaveStory(testStory("https://example.com/b", "Story B", "science"))
	repo.SaveStory(testStory("https://example.com/c", "Story C", "business"))
	repo.SaveStory(testStory("https://example.com/d", "Story D", ""))

	categories, err := repo.ListCategories()
	if err != nil {
		t.Fatalf("Failed to list categories: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(categories))
	}
	for _, cat := range categories {
		if cat.IsSelected {
			t.Errorf("Expected %q unselected by default", cat.Name)
		}
	}

	if err := repo.SetCategorySelected("science", true); err != nil {
		t.Fatalf("Failed to select category: %v", err)
	}

	categories, err = repo.ListCategories()
	if err != nil {
		t.Fatalf("Failed to list categories: %v", err)
	}
	for _, cat := range categories {
		if cat.Name == "science" && !cat.IsSelected {
			t.Error("Expected science selected")
		}
		if cat.Name == "business" && cat.IsSelected {
			t.Error("Expected business unselected")
		}
	}

	selected, err := repo.SelectedCategories()
	if err != nil {
		t.Fatalf("Failed to list selected categories: %v", err)
	}
	if len(selected) != 1 || selected[0] != "science" {
		t.Errorf("Expected [science], got %v", selected)
	}
}

func TestDeleteStory(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	story := testStory("https://example.com/a", "Story A", "science")
	repo.SaveStory(story)

	if err := repo.DeleteStory(story.URL); err != nil {
		t.Fatalf("Failed to delete story: %v", err)
	}

	got, err := repo.GetStory(story.URL)
	if err != nil {
		t.Fatalf("Failed to get story: %v", err)
	}
	if got != nil {
		t.Error("Expected story gone after delete")
	}
}
