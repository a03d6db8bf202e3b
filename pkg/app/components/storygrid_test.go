package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/danivela/storyfeed/pkg/app/styles"
	"github.com/danivela/storyfeed/pkg/data"
)

func makeStories(n int) []data.Story {
	stories := make([]data.Story, n)
	for i := range stories {
		stories[i] = data.Story{
			Title:     fmt.Sprintf("Story %d", i),
			Publisher: "pub",
			URL:       fmt.Sprintf("https://example.com/%d", i),
		}
	}
	return stories
}

func TestColumnCount(t *testing.T) {
	expected := map[int]int{0: 0, 1: 1, 2: 1, 3: 1, 4: 2, 6: 2, 7: 3, 8: 3, 9: 3}

	for n, want := range expected {
		grid := NewStoryGrid()
		grid.SetStories(makeStories(n))
		if got := grid.ColumnCount(); got != want {
			t.Errorf("%d stories: expected %d columns, got %d", n, want, got)
		}
	}
}

func TestColumnsAreColumnMajor(t *testing.T) {
	grid := NewStoryGrid()
	grid.SetStories(makeStories(4))

	cols := grid.Columns()
	if len(cols) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(cols))
	}

	for _, col := range cols {
		if len(col) != RowsPerColumn {
			t.Fatalf("Expected %d slots per column, got %d", RowsPerColumn, len(col))
		}
	}

	// Items 0-2 fill column one, item 3 starts column two.
	for r := 0; r < RowsPerColumn; r++ {
		if cols[0][r] == nil {
			t.Fatalf("Expected slot (0,%d) filled", r)
		}
		if cols[0][r].Title != fmt.Sprintf("Story %d", r) {
			t.Errorf("Expected Story %d at slot (0,%d), got %q", r, r, cols[0][r].Title)
		}
	}

	if cols[1][0] == nil || cols[1][0].Title != "Story 3" {
		t.Error("Expected Story 3 at slot (1,0)")
	}
	if cols[1][1] != nil || cols[1][2] != nil {
		t.Error("Expected placeholders in remaining slots of column two")
	}
}

func TestSingleStoryFillsWithPlaceholders(t *testing.T) {
	grid := NewStoryGrid()
	grid.SetStories(makeStories(1))

	cols := grid.Columns()
	if len(cols) != 1 {
		t.Fatalf("Expected 1 column, got %d", len(cols))
	}
	if cols[0][0] == nil {
		t.Error("Expected story in first slot")
	}
	if cols[0][1] != nil || cols[0][2] != nil {
		t.Error("Expected two placeholder slots")
	}

	view := grid.View(styles.DarkTheme())
	if strings.Count(view, "Discover more stories") != 2 {
		t.Error("Expected two placeholder cards in view")
	}
}

func TestEmptyGrid(t *testing.T) {
	grid := NewStoryGrid()
	grid.SetStories(nil)

	if grid.ColumnCount() != 0 {
		t.Errorf("Expected 0 columns, got %d", grid.ColumnCount())
	}

	// Rendering and movement must not panic on an empty grid.
	_ = grid.View(styles.DarkTheme())
	grid.MoveLeft()
	grid.MoveRight()
	grid.MoveUp()
	grid.MoveDown()
	grid.Activate()
}

func TestPlaceholderActivateAlwaysFallbackURL(t *testing.T) {
	grid := NewStoryGrid()
	grid.SetStories(makeStories(4))

	var clickedURL string
	var clickedStory *data.Story
	grid.OnLinkClick = func(url string) { clickedURL = url }
	grid.OnStoryClick = func(s data.Story) { clickedStory = &s }

	// Both empty slots of column two are placeholders.
	for _, row := range []int{1, 2} {
		clickedURL = ""
		grid.FocusCol = 1
		grid.FocusRow = row
		grid.Activate()

		if clickedURL != FallbackExploreURL {
			t.Errorf("slot (1,%d): expected %q, got %q", row, FallbackExploreURL, clickedURL)
		}
		if clickedStory != nil {
			t.Errorf("slot (1,%d): expected no story callback", row)
		}
	}
}

func TestStoryActivate(t *testing.T) {
	grid := NewStoryGrid()
	grid.SetStories(makeStories(8))

	var clicked *data.Story
	grid.OnStoryClick = func(s data.Story) { clicked = &s }

	grid.FocusCol = 1
	grid.FocusRow = 2
	grid.Activate()

	if clicked == nil {
		t.Fatal("Expected story callback")
	}
	if clicked.Title != "Story 5" {
		t.Errorf("Expected Story 5, got %q", clicked.Title)
	}
}

func TestMoveClampsToGrid(t *testing.T) {
	grid := NewStoryGrid()
	grid.SetStories(makeStories(6))

	grid.MoveLeft()
	if grid.FocusCol != 0 {
		t.Errorf("Expected FocusCol 0 after left at edge, got %d", grid.FocusCol)
	}

	grid.MoveRight()
	grid.MoveRight()
	if grid.FocusCol != 1 {
		t.Errorf("Expected FocusCol clamped to 1, got %d", grid.FocusCol)
	}

	grid.MoveUp()
	if grid.FocusRow != 0 {
		t.Errorf("Expected FocusRow 0 after up at edge, got %d", grid.FocusRow)
	}

	grid.MoveDown()
	grid.MoveDown()
	grid.MoveDown()
	if grid.FocusRow != RowsPerColumn-1 {
		t.Errorf("Expected FocusRow clamped to %d, got %d", RowsPerColumn-1, grid.FocusRow)
	}
}

func TestSetStoriesResetsFocus(t *testing.T) {
	grid := NewStoryGrid()
	grid.SetStories(makeStories(9))
	grid.FocusCol = 2

	grid.SetStories(makeStories(3))

	if grid.FocusCol != 0 {
		t.Errorf("Expected FocusCol clamped to 0, got %d", grid.FocusCol)
	}
}

func TestViewContainsStoryTitles(t *testing.T) {
	grid := NewStoryGrid()
	grid.Width = 200
	grid.SetStories(makeStories(3))

	view := grid.View(styles.DarkTheme())

	for i := 0; i < 3; i++ {
		if !strings.Contains(view, fmt.Sprintf("Story %d", i)) {
			t.Errorf("Expected Story %d in view", i)
		}
	}
}
