package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/danivela/storyfeed/pkg/app/styles"
	"github.com/danivela/storyfeed/pkg/data"
)

// SizeToken is the placeholder inside Story.ImageURL that gets replaced with a
// concrete "WxH" pixel string. A template without the token is left untouched.
const SizeToken = "{wh}"

// Card thumbnail size in density-independent units.
const (
	CardImageWidth  = 116
	CardImageHeight = 84
)

const (
	titleMaxLines = 3
	thumbRows     = 4
)

// ImageClient turns a concrete image URL into a terminal-renderable block of
// the requested cell size. Failure behavior (retries, caching) is its own.
type ImageClient interface {
	Thumbnail(url string, width, height int) (string, error)
}

// StoryCard renders a single recommended story: thumbnail, title capped at
// three lines, and a "publisher · N min" subtitle.
type StoryCard struct {
	Story   data.Story
	Images  ImageClient
	OnClick func(data.Story)
	Density float64
	Width   int
	Focused bool
}

func NewStoryCard(story data.Story) *StoryCard {
	return &StoryCard{
		Story:   story,
		Density: 1.0,
		Width:   30,
	}
}

// Activate invokes the click callback with the card's story.
func (c *StoryCard) Activate() {
	if c.OnClick != nil {
		c.OnClick(c.Story)
	}
}

// ImageURL is the story's image template with the size token substituted for
// the density-adjusted pixel size.
func (c *StoryCard) ImageURL() string {
	return ImageURLForDensity(c.Story.ImageURL, c.density())
}

func (c *StoryCard) View(theme styles.Theme) string {
	inner := c.Width - 4
	if inner < 8 {
		inner = 8
	}

	thumb := c.thumbnail(theme, inner, thumbRows)

	wrapped := lipgloss.NewStyle().Width(inner).Render(c.Story.Title)
	title := theme.Title.Render(capLines(wrapped, titleMaxLines))

	subtitle := theme.Subtitle.Render(
		capLines(lipgloss.NewStyle().Width(inner).Render(c.subtitle()), 1),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, thumb, title, subtitle)

	style := theme.Card
	if c.Focused {
		style = theme.FocusedCard
	}
	return style.Width(c.Width - 2).Render(content)
}

func (c *StoryCard) subtitle() string {
	if c.Story.TimeToRead > 0 {
		return fmt.Sprintf("%s · %d min", c.Story.Publisher, c.Story.TimeToRead)
	}
	return c.Story.Publisher
}

func (c *StoryCard) thumbnail(theme styles.Theme, width, rows int) string {
	if c.Images != nil {
		img, err := c.Images.Thumbnail(c.ImageURL(), width, rows)
		if err == nil && img != "" {
			return img
		}
	}

	// Degraded display: a plain block instead of an error.
	line := strings.Repeat("░", width)
	rowsOut := make([]string, rows)
	for i := range rowsOut {
		rowsOut[i] = line
	}
	return theme.Placeholder.Render(strings.Join(rowsOut, "\n"))
}

func (c *StoryCard) density() float64 {
	if c.Density <= 0 {
		return 1.0
	}
	return c.Density
}

// ImageURLForDensity substitutes the size token in an image URL template with
// the card size converted to physical pixels at the given display density,
// rounded to the nearest integer.
func ImageURLForDensity(template string, density float64) string {
	if density <= 0 {
		density = 1.0
	}
	w := int(math.Round(CardImageWidth * density))
	h := int(math.Round(CardImageHeight * density))
	return strings.Replace(template, SizeToken, fmt.Sprintf("%dx%d", w, h), 1)
}

// capLines keeps at most max lines of already-wrapped text, marking the cut.
func capLines(s string, max int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	lines = lines[:max]
	lines[max-1] += "…"
	return strings.Join(lines, "\n")
}
