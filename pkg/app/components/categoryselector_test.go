package components

import (
	"strings"
	"testing"

	"github.com/danivela/storyfeed/pkg/app/styles"
	"github.com/danivela/storyfeed/pkg/data"
)

func testCategories() []data.StoryCategory {
	return []data.StoryCategory{
		{Name: "business"},
		{Name: "career", IsSelected: true},
		{Name: "science"},
	}
}

func TestSelectorRendersChipsInOrder(t *testing.T) {
	selector := NewCategorySelector()
	selector.SetCategories(testCategories())

	view := selector.View(styles.DarkTheme())

	iBusiness := strings.Index(view, "business")
	iCareer := strings.Index(view, "career")
	iScience := strings.Index(view, "science")

	if iBusiness < 0 || iCareer < 0 || iScience < 0 {
		t.Fatal("Expected one chip per category")
	}
	if !(iBusiness < iCareer && iCareer < iScience) {
		t.Error("Expected chips in input order")
	}
}

func TestSelectorActivatePassesIdentity(t *testing.T) {
	categories := testCategories()
	selector := NewCategorySelector()
	selector.SetCategories(categories)

	var clicked *data.StoryCategory
	selector.OnClick = func(cat data.StoryCategory) { clicked = &cat }

	selector.Focus = 1
	selector.Activate()

	if clicked == nil {
		t.Fatal("Expected callback to be invoked")
	}
	if clicked.Name != "career" || !clicked.IsSelected {
		t.Errorf("Expected category passed as supplied, got %+v", *clicked)
	}

	// The component never mutates the caller's list.
	if !categories[1].IsSelected || categories[0].IsSelected {
		t.Error("Expected input categories unchanged")
	}
}

func TestSelectorNextPrevWrap(t *testing.T) {
	selector := NewCategorySelector()
	selector.SetCategories(testCategories())

	selector.Next()
	selector.Next()
	if selector.Focus != 2 {
		t.Errorf("Expected Focus 2, got %d", selector.Focus)
	}

	selector.Next()
	if selector.Focus != 0 {
		t.Errorf("Expected Focus to wrap to 0, got %d", selector.Focus)
	}

	selector.Prev()
	if selector.Focus != 2 {
		t.Errorf("Expected Focus to wrap to 2, got %d", selector.Focus)
	}
}

func TestSelectorEmpty(t *testing.T) {
	selector := NewCategorySelector()

	// Should not panic and stays inert with no categories.
	selector.Next()
	selector.Prev()
	selector.Activate()

	if view := selector.View(styles.DarkTheme()); view != "" {
		t.Errorf("Expected empty view, got %q", view)
	}
}

func TestSelectorWrapsRows(t *testing.T) {
	selector := NewCategorySelector()
	selector.Width = 16
	selector.SetCategories(testCategories())

	view := selector.View(styles.DarkTheme())

	if !strings.Contains(view, "\n") {
		t.Error("Expected chips to wrap onto multiple rows")
	}
}

func TestSelectorSetCategoriesResetsFocus(t *testing.T) {
	selector := NewCategorySelector()
	selector.SetCategories(testCategories())
	selector.Focus = 2

	selector.SetCategories(testCategories()[:1])

	if selector.Focus != 0 {
		t.Errorf("Expected Focus reset to 0, got %d", selector.Focus)
	}
}
