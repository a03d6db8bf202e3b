package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/danivela/storyfeed/pkg/app/components"
	"github.com/danivela/storyfeed/pkg/app/styles"
	"github.com/danivela/storyfeed/pkg/data"
	"github.com/danivela/storyfeed/pkg/integrations"
	"github.com/danivela/storyfeed/pkg/utils"
)

// DetailsScreen shows one story in full: large thumbnail, metadata, excerpt.
type DetailsScreen struct {
	story   data.Story
	images  components.ImageClient
	epub    *integrations.EPubBuilder
	theme   styles.Theme
	density float64

	width      int
	height     int
	exportPath string
	err        error
}

func NewDetailsScreen(story data.Story, imgs components.ImageClient, theme styles.Theme, density float64) *DetailsScreen {
	return &DetailsScreen{
		story:   story,
		images:  imgs,
		epub:    integrations.NewEPubBuilder(""),
		theme:   theme,
		density: density,
	}
}

func (s *DetailsScreen) SetTheme(theme styles.Theme) {
	s.theme = theme
}

func (s *DetailsScreen) Init() tea.Cmd {
	return nil
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "o":
			return s, func() tea.Msg {
				return linkOpenedMsg{err: utils.OpenBrowser(s.story.URL)}
			}
		case "e":
			return s, s.exportEPUB
		case "esc", "backspace":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "feed"}
			}
		}

	case linkOpenedMsg:
		if msg.err != nil {
			s.err = msg.err
		}

	case epubExportedMsg:
		s.exportPath = msg.path
		s.err = msg.err
	}

	return s, nil
}

func (s *DetailsScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	icon := s.theme.Icon.Render("❖")
	header := lipgloss.JoinHorizontal(lipgloss.Top, icon, " ", s.theme.Title.Render(s.story.Title))

	var errorMsg string
	if s.err != nil {
		errorMsg = s.theme.Error.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	}

	var exported string
	if s.exportPath != "" {
		exported = s.theme.Muted.Render(fmt.Sprintf("Exported to %s", s.exportPath)) + "\n"
	}

	help := s.theme.Help.Render("o: open in browser • e: export EPUB • esc: back • q: quit")

	return fmt.Sprintf("%s\n\n%s%s\n%s%s",
		header,
		errorMsg,
		s.renderStoryInfo(),
		exported,
		help,
	)
}

func (s *DetailsScreen) renderStoryInfo() string {
	inner := s.width - 8
	if inner < 20 {
		inner = 20
	}

	parts := []string{}

	if s.images != nil {
		url := components.ImageURLForDensity(s.story.ImageURL, s.density)
		if thumb, err := s.images.Thumbnail(url, inner, 8); err == nil && thumb != "" {
			parts = append(parts, thumb, "")
		}
	}

	meta := s.story.Publisher
	if s.story.TimeToRead > 0 {
		meta = fmt.Sprintf("%s · %d min read", meta, s.story.TimeToRead)
	}
	parts = append(parts, s.theme.Subtitle.Render(meta))

	if s.story.Category != "" {
		parts = append(parts, s.theme.SelectedChip.Render(s.story.Category))
	}

	if s.story.Excerpt != "" {
		wrapped := lipgloss.NewStyle().Width(inner).Render(s.story.Excerpt)
		parts = append(parts, "", s.theme.Text.Render(wrapped))
	}

	parts = append(parts, "", s.theme.Muted.Render(s.story.URL))

	info := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return s.theme.Card.Width(s.width-4).Render(info) + "\n"
}

// Messages
type epubExportedMsg struct {
	path string
	err  error
}

// Commands
func (s *DetailsScreen) exportEPUB() tea.Msg {
	title := s.story.Title
	if len(title) > 40 {
		title = strings.TrimSpace(title[:40])
	}
	path, err := s.epub.CreateEPub(title, []data.Story{s.story})
	return epubExportedMsg{path: path, err: err}
}
