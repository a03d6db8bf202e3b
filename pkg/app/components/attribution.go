package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/danivela/storyfeed/pkg/app/styles"
)

// DocsURL is where the attribution "learn more" link leads.
const DocsURL = "https://www.mozilla.org/firefox/pocket/"

const (
	DefaultAttributionTitle   = "Thought-provoking stories"
	DefaultAttributionCaption = "Powered by Pocket, part of Firefox. Learn more"
	DefaultAttributionLink    = "Learn more"
)

// AttributionHeader is the static branding block above the feed: a
// brand-tinted icon, a title, and a caption with one embedded clickable
// substring.
type AttributionHeader struct {
	Title       string
	Caption     string
	LinkText    string
	OnLinkClick func(string)
	Width       int
	Focused     bool
}

func NewAttributionHeader() *AttributionHeader {
	return &AttributionHeader{
		Title:    DefaultAttributionTitle,
		Caption:  DefaultAttributionCaption,
		LinkText: DefaultAttributionLink,
		Width:    80,
	}
}

// LinkSpan returns the rune offsets [start, end) of the link text inside the
// caption. When the caption does not contain the link text the span is
// degenerate: start == end == 0.
func (h *AttributionHeader) LinkSpan() (int, int) {
	if h.LinkText == "" {
		return 0, 0
	}
	idx := strings.Index(h.Caption, h.LinkText)
	if idx < 0 {
		return 0, 0
	}
	start := utf8.RuneCountInString(h.Caption[:idx])
	return start, start + utf8.RuneCountInString(h.LinkText)
}

// Click reports a tap at the given rune offset into the caption. Offsets
// inside the link span follow the link; everywhere else is inert.
func (h *AttributionHeader) Click(offset int) {
	start, end := h.LinkSpan()
	if start == end {
		return
	}
	if offset >= start && offset < end && h.OnLinkClick != nil {
		h.OnLinkClick(DocsURL)
	}
}

// Activate is the keyboard path to the link.
func (h *AttributionHeader) Activate() {
	if h.OnLinkClick != nil {
		h.OnLinkClick(DocsURL)
	}
}

func (h *AttributionHeader) View(theme styles.Theme) string {
	// The icon keeps the brand tint in both color schemes.
	icon := theme.Icon.Render("❖")
	title := theme.Title.Render(h.Title)

	start, end := h.LinkSpan()
	var caption string
	if start == end {
		caption = theme.Muted.Render(h.Caption)
	} else {
		runes := []rune(h.Caption)
		linkStyle := theme.Link
		if h.Focused {
			linkStyle = linkStyle.Bold(true)
		}
		caption = theme.Muted.Render(string(runes[:start])) +
			linkStyle.Render(string(runes[start:end])) +
			theme.Muted.Render(string(runes[end:]))
	}

	head := lipgloss.JoinHorizontal(lipgloss.Top, icon, " ", title)
	return lipgloss.JoinVertical(lipgloss.Left, head, caption)
}
