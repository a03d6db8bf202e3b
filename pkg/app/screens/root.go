package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/danivela/storyfeed/pkg/app/styles"
	"github.com/danivela/storyfeed/pkg/data"
	"github.com/danivela/storyfeed/pkg/images"
	"github.com/danivela/storyfeed/pkg/services"
	"github.com/danivela/storyfeed/pkg/sources"
)

type screenType int

const (
	feedView screenType = iota
	searchView
	detailsView
)

// SwitchScreenMsg asks the root screen to change the active view.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

// Config carries the knobs the TUI needs at startup.
type Config struct {
	DBPath  string
	Density float64
	Light   bool
}

type RootScreen struct {
	repo      *data.Repository
	source    sources.Source
	refresher *services.Refresher
	images    *images.Loader
	theme     styles.Theme
	density   float64

	currentView screenType
	feed        *FeedScreen
	search      *SearchScreen
	details     *DetailsScreen

	width  int
	height int
}

func NewRootScreen(cfg Config) *RootScreen {
	if cfg.DBPath == "" {
		cfg.DBPath = "storyfeed.db"
	}
	if cfg.Density <= 0 {
		cfg.Density = 1.0
	}

	repo := data.NewDuckDBRepository(cfg.DBPath)
	source := sources.NewPocket()
	refresher := services.NewRefresher(source, repo, nil)
	loader := images.NewLoader()

	theme := styles.DarkTheme()
	if cfg.Light {
		theme = styles.LightTheme()
	}

	feed := NewFeedScreen(refresher, repo, loader, theme, cfg.Density)
	search := NewSearchScreen(source, theme)

	return &RootScreen{
		repo:        repo,
		source:      source,
		refresher:   refresher,
		images:      loader,
		theme:       theme,
		density:     cfg.Density,
		currentView: feedView,
		feed:        feed,
		search:      search,
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.feed.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		typing := r.currentView == searchView && r.search.InputFocused()

		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			if !typing {
				return r, tea.Quit
			}
		case "t":
			if !typing {
				r.toggleTheme()
				return r, nil
			}
		case "tab":
			if r.currentView == detailsView {
				// Details is left with esc, not tab.
				break
			}
			r.currentView = (r.currentView + 1) % 2
			if r.currentView == searchView {
				cmd = r.search.Init()
			} else {
				cmd = r.feed.Init()
			}
			return r, tea.Batch(cmd, r.resize())
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "feed":
			r.currentView = feedView
			cmd = r.feed.Init()
		case "search":
			r.currentView = searchView
			cmd = r.search.Init()
		case "details":
			if story, ok := msg.Data.(data.Story); ok {
				r.details = NewDetailsScreen(story, r.images, r.theme, r.density)
				r.currentView = detailsView
				cmd = r.details.Init()
				return r, tea.Batch(cmd, r.resize())
			}
		}
		return r, cmd
	}

	switch r.currentView {
	case feedView:
		newModel, newCmd := r.feed.Update(msg)
		r.feed = newModel.(*FeedScreen)
		return r, newCmd
	case searchView:
		newModel, newCmd := r.search.Update(msg)
		r.search = newModel.(*SearchScreen)
		return r, newCmd
	case detailsView:
		if r.details != nil {
			newModel, newCmd := r.details.Update(msg)
			r.details = newModel.(*DetailsScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()

	var content string
	switch r.currentView {
	case feedView:
		content = r.feed.View()
	case searchView:
		content = r.search.View()
	case detailsView:
		if r.details != nil {
			content = r.details.View()
		}
	}

	if tabs == "" {
		return content
	}
	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) renderTabs() string {
	if r.currentView == detailsView {
		return ""
	}

	feedTab := "Feed"
	searchTab := "Search"

	if r.currentView == feedView {
		feedTab = r.theme.ActiveTab.Render(feedTab)
		searchTab = r.theme.InactiveTab.Render(searchTab)
	} else {
		feedTab = r.theme.InactiveTab.Render(feedTab)
		searchTab = r.theme.ActiveTab.Render(searchTab)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, feedTab, searchTab)
}

func (r *RootScreen) toggleTheme() {
	if r.theme.Dark {
		r.theme = styles.LightTheme()
	} else {
		r.theme = styles.DarkTheme()
	}
	r.feed.SetTheme(r.theme)
	r.search.SetTheme(r.theme)
	if r.details != nil {
		r.details.SetTheme(r.theme)
	}
}

// resize replays the last known window size so freshly created screens lay
// out without waiting for the next terminal resize.
func (r *RootScreen) resize() tea.Cmd {
	if r.width == 0 {
		return nil
	}
	width, height := r.width, r.height
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: width, Height: height}
	}
}
