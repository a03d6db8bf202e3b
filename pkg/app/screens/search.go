package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/danivela/storyfeed/pkg/app/styles"
	"github.com/danivela/storyfeed/pkg/data"
	"github.com/danivela/storyfeed/pkg/sources"
)

type SearchScreen struct {
	source    sources.Source
	theme     styles.Theme
	input     textinput.Model
	results   []data.Story
	selected  int
	searching bool
	width     int
	height    int
	err       error
}

func NewSearchScreen(source sources.Source, theme styles.Theme) *SearchScreen {
	ti := textinput.New()
	ti.Placeholder = "Search stories..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	return &SearchScreen{
		source:  source,
		theme:   theme,
		input:   ti,
		results: []data.Story{},
	}
}

func (s *SearchScreen) SetTheme(theme styles.Theme) {
	s.theme = theme
}

// InputFocused reports whether keystrokes currently go into the query field.
func (s *SearchScreen) InputFocused() bool {
	return s.input.Focused()
}

func (s *SearchScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *SearchScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if s.searching {
			return s, nil
		}

		switch msg.String() {
		case "enter":
			if s.input.Focused() {
				query := s.input.Value()
				if query != "" {
					s.searching = true
					return s, s.performSearch(query)
				}
			} else if len(s.results) > 0 {
				story := s.results[s.selected]
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "details", Data: story}
				}
			}

		case "esc":
			if s.input.Focused() {
				s.input.Blur()
			} else {
				s.input.Focus()
				cmd = textinput.Blink
			}

		case "up", "k":
			if !s.input.Focused() && len(s.results) > 0 {
				s.selected--
				if s.selected < 0 {
					s.selected = len(s.results) - 1
				}
			}

		case "down", "j":
			if !s.input.Focused() && len(s.results) > 0 {
				s.selected++
				if s.selected >= len(s.results) {
					s.selected = 0
				}
			}
		}

	case searchResultMsg:
		s.searching = false
		s.results = msg.results
		s.selected = 0
		s.err = msg.err
		if len(s.results) > 0 {
			s.input.Blur()
		}
	}

	if s.input.Focused() {
		s.input, cmd = s.input.Update(msg)
	}

	return s, cmd
}

func (s *SearchScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := s.theme.Title.Render("Search stories")

	inputStyle := s.theme.Input
	if s.input.Focused() {
		inputStyle = s.theme.FocusedInput
	}
	inputView := inputStyle.Render(s.input.View())

	var errorMsg string
	if s.err != nil {
		errorMsg = s.theme.Error.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	}

	var resultsView string
	if s.searching {
		resultsView = s.theme.Muted.Render("Searching...")
	} else if len(s.results) > 0 {
		resultsView = s.renderResults()
	} else if s.input.Value() != "" {
		resultsView = s.theme.Muted.Render("No results found")
	}

	help := s.theme.Help.Render(
		"enter: search/open • esc: switch focus • ↑/k ↓/j: navigate • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s\n\n%s%s\n\n%s", header, inputView, errorMsg, resultsView, help)
}

func (s *SearchScreen) renderResults() string {
	result := s.theme.Subtitle.Render(fmt.Sprintf("Found %d results:", len(s.results)))
	result += "\n\n"

	for i, story := range s.results {
		cardStyle := s.theme.Card
		if i == s.selected && !s.input.Focused() {
			cardStyle = s.theme.FocusedCard
		}

		title := s.theme.Title.Render(story.Title)

		subtitle := story.Publisher
		if story.TimeToRead > 0 {
			subtitle = fmt.Sprintf("%s · %d min", story.Publisher, story.TimeToRead)
		}

		excerpt := story.Excerpt
		if len(excerpt) > 120 {
			excerpt = excerpt[:117] + "..."
		}

		meta := story.URL
		if story.Category != "" {
			meta = fmt.Sprintf("%s • %s", story.Category, story.URL)
		}

		cardContent := lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			s.theme.Subtitle.Render(subtitle),
			s.theme.Text.Render(excerpt),
			s.theme.Muted.Render(meta),
		)

		card := cardStyle.Width(s.width - 6).Render(cardContent)
		result += card + "\n"
	}

	return result
}

// Messages
type searchResultMsg struct {
	results []data.Story
	err     error
}

// Commands
func (s *SearchScreen) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := s.source.Search(query)
		return searchResultMsg{results: results, err: err}
	}
}
