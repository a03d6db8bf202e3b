package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/danivela/storyfeed/pkg/app/styles"
	"github.com/danivela/storyfeed/pkg/data"
)

const chipGap = 1

// CategorySelector renders one toggle chip per category in a wrapping flow
// layout. It never mutates the category list: activating a chip hands the
// category back to the caller, who supplies the next list.
type CategorySelector struct {
	Categories []data.StoryCategory
	OnClick    func(data.StoryCategory)
	Focus      int
	Width      int
	Focused    bool
}

func NewCategorySelector() *CategorySelector {
	return &CategorySelector{Width: 80}
}

func (s *CategorySelector) SetCategories(categories []data.StoryCategory) {
	s.Categories = categories
	if s.Focus >= len(categories) {
		s.Focus = 0
	}
}

func (s *CategorySelector) Next() {
	if len(s.Categories) == 0 {
		return
	}
	s.Focus++
	if s.Focus >= len(s.Categories) {
		s.Focus = 0
	}
}

func (s *CategorySelector) Prev() {
	if len(s.Categories) == 0 {
		return
	}
	s.Focus--
	if s.Focus < 0 {
		s.Focus = len(s.Categories) - 1
	}
}

// Activate invokes the callback with the focused category exactly as it was
// supplied.
func (s *CategorySelector) Activate() {
	if len(s.Categories) == 0 || s.OnClick == nil {
		return
	}
	s.OnClick(s.Categories[s.Focus])
}

func (s *CategorySelector) View(theme styles.Theme) string {
	if len(s.Categories) == 0 {
		return ""
	}

	var rows []string
	var line []string
	lineWidth := 0

	for i, cat := range s.Categories {
		style := theme.Chip
		if cat.IsSelected {
			style = theme.SelectedChip
		}

		label := cat.Name
		if s.Focused && i == s.Focus {
			label = "› " + label
		}
		chip := style.Render(label)
		w := lipgloss.Width(chip)

		if lineWidth > 0 && lineWidth+chipGap+w > s.Width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line = nil
			lineWidth = 0
		}
		if lineWidth > 0 {
			line = append(line, strings.Repeat(" ", chipGap))
			lineWidth += chipGap
		}
		line = append(line, chip)
		lineWidth += w
	}

	if len(line) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
