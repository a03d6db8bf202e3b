package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/danivela/storyfeed/pkg/app/components"
	"github.com/danivela/storyfeed/pkg/app/styles"
	"github.com/danivela/storyfeed/pkg/data"
	"github.com/danivela/storyfeed/pkg/services"
	"github.com/danivela/storyfeed/pkg/utils"
)

type feedFocus int

const (
	focusGrid feedFocus = iota
	focusChips
	focusHeader
)

// FeedScreen owns the story and category state and composes the three feed
// components. Components only report taps; this screen decides what happens.
type FeedScreen struct {
	refresher *services.Refresher
	repo      *data.Repository
	theme     styles.Theme

	header   *components.AttributionHeader
	selector *components.CategorySelector
	grid     *components.StoryGrid

	focus      feedFocus
	width      int
	height     int
	refreshing bool
	err        error

	// Tap outcomes recorded by component callbacks during Update.
	clickedStory *data.Story
	clickedURL   string
	toggled      *data.StoryCategory
}

func NewFeedScreen(refresher *services.Refresher, repo *data.Repository, imgs components.ImageClient, theme styles.Theme, density float64) *FeedScreen {
	s := &FeedScreen{
		refresher: refresher,
		repo:      repo,
		theme:     theme,
		header:    components.NewAttributionHeader(),
		selector:  components.NewCategorySelector(),
		grid:      components.NewStoryGrid(),
	}

	s.grid.Images = imgs
	s.grid.Density = density
	s.grid.Focused = true

	s.header.OnLinkClick = func(url string) { s.clickedURL = url }
	s.grid.OnLinkClick = func(url string) { s.clickedURL = url }
	s.grid.OnStoryClick = func(story data.Story) { s.clickedStory = &story }
	s.selector.OnClick = func(cat data.StoryCategory) { s.toggled = &cat }

	return s
}

func (s *FeedScreen) SetTheme(theme styles.Theme) {
	s.theme = theme
}

func (s *FeedScreen) Init() tea.Cmd {
	return s.loadFeed
}

func (s *FeedScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.header.Width = msg.Width - 4
		s.selector.Width = msg.Width - 4
		s.grid.Width = msg.Width - 4

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if s.focus == focusGrid {
				s.grid.MoveLeft()
			} else if s.focus == focusChips {
				s.selector.Prev()
			}
		case "right", "l":
			if s.focus == focusGrid {
				s.grid.MoveRight()
			} else if s.focus == focusChips {
				s.selector.Next()
			}
		case "up", "k":
			if s.focus == focusGrid {
				s.grid.MoveUp()
			}
		case "down", "j":
			if s.focus == focusGrid {
				s.grid.MoveDown()
			}
		case "c":
			s.cycleFocus()
		case "enter":
			s.activateFocused()
			return s, s.consumeTap()
		case "o":
			if story := s.grid.FocusedStory(); story != nil {
				s.clickedURL = story.URL
				return s, s.consumeTap()
			}
		case "r":
			if !s.refreshing {
				s.refreshing = true
				return s, s.refresh
			}
		}

	case feedLoadedMsg:
		s.grid.SetStories(msg.stories)
		s.selector.SetCategories(msg.categories)
		s.err = msg.err

	case refreshDoneMsg:
		s.refreshing = false
		s.err = msg.err
		return s, s.loadFeed

	case categoryToggledMsg:
		if msg.err != nil {
			s.err = msg.err
		}
		return s, s.loadFeed

	case linkOpenedMsg:
		if msg.err != nil {
			s.err = msg.err
		}
	}

	return s, nil
}

func (s *FeedScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := s.header.View(s.theme)
	chips := s.selector.View(s.theme)

	var errorMsg string
	if s.err != nil {
		errorMsg = s.theme.Error.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	}

	gridView := s.grid.View(s.theme)
	if s.refreshing {
		gridView = s.theme.Muted.Render("Refreshing feed...")
	}

	help := s.theme.Help.Render(
		"←/→ ↑/↓: move • enter: open • o: open in browser • c: switch focus • r: refresh • t: theme • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s\n\n%s%s\n%s", header, chips, errorMsg, gridView, help)
}

func (s *FeedScreen) cycleFocus() {
	s.focus = (s.focus + 1) % 3
	s.grid.Focused = s.focus == focusGrid
	s.selector.Focused = s.focus == focusChips
	s.header.Focused = s.focus == focusHeader
}

func (s *FeedScreen) activateFocused() {
	switch s.focus {
	case focusGrid:
		s.grid.Activate()
	case focusChips:
		s.selector.Activate()
	case focusHeader:
		s.header.Activate()
	}
}

// consumeTap turns whatever the component callbacks recorded into the next
// command: story taps push the details screen, link taps open the browser,
// category taps toggle the stored selection and rebuild the list.
func (s *FeedScreen) consumeTap() tea.Cmd {
	switch {
	case s.clickedStory != nil:
		story := *s.clickedStory
		s.clickedStory = nil
		return func() tea.Msg {
			return SwitchScreenMsg{Screen: "details", Data: story}
		}

	case s.clickedURL != "":
		url := s.clickedURL
		s.clickedURL = ""
		return func() tea.Msg {
			return linkOpenedMsg{err: utils.OpenBrowser(url)}
		}

	case s.toggled != nil:
		cat := *s.toggled
		s.toggled = nil
		return func() tea.Msg {
			err := s.repo.SetCategorySelected(cat.Name, !cat.IsSelected)
			return categoryToggledMsg{err: err}
		}
	}
	return nil
}

// Messages
type feedLoadedMsg struct {
	stories    []data.Story
	categories []data.StoryCategory
	err        error
}

type refreshDoneMsg struct {
	count int
	err   error
}

type categoryToggledMsg struct {
	err error
}

type linkOpenedMsg struct {
	err error
}

// Commands
func (s *FeedScreen) loadFeed() tea.Msg {
	stories, err := s.refresher.Feed(services.FeedSize)
	if err != nil {
		return feedLoadedMsg{err: err}
	}

	categories, err := s.repo.ListCategories()
	if err != nil {
		return feedLoadedMsg{stories: stories, err: err}
	}

	return feedLoadedMsg{stories: stories, categories: categories}
}

func (s *FeedScreen) refresh() tea.Msg {
	count, err := s.refresher.Refresh()
	return refreshDoneMsg{count: count, err: err}
}
