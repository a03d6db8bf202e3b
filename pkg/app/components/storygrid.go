package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/danivela/storyfeed/pkg/app/styles"
	"github.com/danivela/storyfeed/pkg/data"
)

// RowsPerColumn is the fixed number of story slots in every grid column.
const RowsPerColumn = 3

// FallbackExploreURL is where placeholder slots lead when a column has no
// story to fill them, regardless of which slot was missing.
const FallbackExploreURL = "https://getpocket.com/explore"

const (
	defaultCardWidth = 30
	columnGap        = 2
)

// StoryGrid arranges stories into columns of three cards inside a
// horizontally scrollable row. Slots beyond the story list are rendered as
// placeholder cards linking to the explore page.
type StoryGrid struct {
	Stories      []data.Story
	Images       ImageClient
	OnStoryClick func(data.Story)
	OnLinkClick  func(string)
	Density      float64
	Width        int
	CardWidth    int
	FocusCol     int
	FocusRow     int
	Focused      bool

	offset int // first visible column
}

func NewStoryGrid() *StoryGrid {
	return &StoryGrid{
		Density:   1.0,
		Width:     80,
		CardWidth: defaultCardWidth,
	}
}

func (g *StoryGrid) SetStories(stories []data.Story) {
	g.Stories = stories
	g.clampFocus()
}

func (g *StoryGrid) ColumnCount() int {
	return (len(g.Stories) + RowsPerColumn - 1) / RowsPerColumn
}

// Columns partitions the stories column-major into consecutive groups of
// three: items 0-2 form column one, 3-5 column two, and so on. Every column
// has exactly RowsPerColumn slots; a nil slot is a placeholder.
func (g *StoryGrid) Columns() [][]*data.Story {
	cols := make([][]*data.Story, g.ColumnCount())
	for c := range cols {
		col := make([]*data.Story, RowsPerColumn)
		for r := 0; r < RowsPerColumn; r++ {
			if i := c*RowsPerColumn + r; i < len(g.Stories) {
				col[r] = &g.Stories[i]
			}
		}
		cols[c] = col
	}
	return cols
}

// SlotAt returns the story at the given column and row, or nil for a
// placeholder or out-of-range slot.
func (g *StoryGrid) SlotAt(col, row int) *data.Story {
	if col < 0 || row < 0 || row >= RowsPerColumn {
		return nil
	}
	if i := col*RowsPerColumn + row; i < len(g.Stories) {
		return &g.Stories[i]
	}
	return nil
}

func (g *StoryGrid) MoveLeft() {
	if g.FocusCol > 0 {
		g.FocusCol--
		g.scrollTo(g.FocusCol)
	}
}

func (g *StoryGrid) MoveRight() {
	if g.FocusCol < g.ColumnCount()-1 {
		g.FocusCol++
		g.scrollTo(g.FocusCol)
	}
}

func (g *StoryGrid) MoveUp() {
	if g.FocusRow > 0 {
		g.FocusRow--
	}
}

func (g *StoryGrid) MoveDown() {
	if g.FocusRow < RowsPerColumn-1 {
		g.FocusRow++
	}
}

// Activate dispatches on the focused slot: a story goes to the story
// callback, a placeholder opens the fixed explore URL.
func (g *StoryGrid) Activate() {
	if g.ColumnCount() == 0 {
		return
	}
	if story := g.SlotAt(g.FocusCol, g.FocusRow); story != nil {
		if g.OnStoryClick != nil {
			g.OnStoryClick(*story)
		}
		return
	}
	if g.OnLinkClick != nil {
		g.OnLinkClick(FallbackExploreURL)
	}
}

// FocusedStory returns the story under the focus, or nil on a placeholder.
func (g *StoryGrid) FocusedStory() *data.Story {
	return g.SlotAt(g.FocusCol, g.FocusRow)
}

func (g *StoryGrid) View(theme styles.Theme) string {
	cols := g.Columns()
	if len(cols) == 0 {
		return theme.Muted.Render("No stories yet. Press r to refresh the feed.")
	}

	start := g.offset
	if start > len(cols)-1 {
		start = len(cols) - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + g.visibleCount()
	if end > len(cols) {
		end = len(cols)
	}

	rendered := make([]string, 0, end-start)
	for c := start; c < end; c++ {
		col := g.renderColumn(theme, cols[c], c)
		if c != len(cols)-1 {
			// Trailing spacing on every column but the last.
			col = lipgloss.NewStyle().MarginRight(columnGap).Render(col)
		}
		rendered = append(rendered, col)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	if len(cols) > end-start {
		pager := theme.Muted.Render(
			fmt.Sprintf("columns %d-%d of %d", start+1, end, len(cols)),
		)
		return lipgloss.JoinVertical(lipgloss.Left, row, pager)
	}
	return row
}

func (g *StoryGrid) renderColumn(theme styles.Theme, col []*data.Story, colIdx int) string {
	cells := make([]string, 0, RowsPerColumn)
	for r, story := range col {
		focused := g.Focused && colIdx == g.FocusCol && r == g.FocusRow

		var cell string
		if story != nil {
			card := &StoryCard{
				Story:   *story,
				Images:  g.Images,
				Density: g.Density,
				Width:   g.CardWidth,
				Focused: focused,
			}
			cell = card.View(theme)
		} else {
			cell = g.placeholderCard(theme, focused)
		}

		if r != RowsPerColumn-1 {
			// Spacing between rows, none after the last.
			cell += "\n"
		}
		cells = append(cells, cell)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cells...)
}

func (g *StoryGrid) placeholderCard(theme styles.Theme, focused bool) string {
	inner := g.CardWidth - 4
	if inner < 8 {
		inner = 8
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Icon.Render("✦"),
		theme.Placeholder.Render(
			lipgloss.NewStyle().Width(inner).Render("Discover more stories"),
		),
		theme.Muted.Render(
			capLines(lipgloss.NewStyle().Width(inner).Render(FallbackExploreURL), 1),
		),
	)

	style := theme.Card
	if focused {
		style = theme.FocusedCard
	}
	return style.Width(g.CardWidth - 2).Render(body)
}

func (g *StoryGrid) visibleCount() int {
	per := g.CardWidth + columnGap
	if per <= 0 {
		return 1
	}
	n := g.Width / per
	if n < 1 {
		n = 1
	}
	return n
}

func (g *StoryGrid) scrollTo(col int) {
	n := g.visibleCount()
	if col < g.offset {
		g.offset = col
	}
	if col >= g.offset+n {
		g.offset = col - n + 1
	}
}

func (g *StoryGrid) clampFocus() {
	count := g.ColumnCount()
	if count == 0 {
		g.FocusCol = 0
		g.FocusRow = 0
		g.offset = 0
		return
	}
	if g.FocusCol >= count {
		g.FocusCol = count - 1
	}
	g.scrollTo(g.FocusCol)
}
