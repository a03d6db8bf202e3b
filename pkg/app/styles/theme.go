package styles

import "github.com/charmbracelet/lipgloss"

// BrandTint is the Pocket brand color. It stays the same in both color schemes.
var BrandTint = lipgloss.Color("#EF4056")

var (
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Theme carries every style the view components need. Components never look
// up colors on their own; screens pass a Theme into each View call.
type Theme struct {
	Dark bool

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Text         lipgloss.Style
	Muted        lipgloss.Style
	Link         lipgloss.Style
	Icon         lipgloss.Style
	Card         lipgloss.Style
	FocusedCard  lipgloss.Style
	Placeholder  lipgloss.Style
	Chip         lipgloss.Style
	SelectedChip lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
	ActiveTab    lipgloss.Style
	InactiveTab  lipgloss.Style
	Input        lipgloss.Style
	FocusedInput lipgloss.Style
}

func DarkTheme() Theme {
	return newTheme(true)
}

func LightTheme() Theme {
	return newTheme(false)
}

func newTheme(dark bool) Theme {
	// Two fixed tone sets, one per scheme.
	foreground := lipgloss.Color("#EEF1F5")
	muted := lipgloss.Color("#8A93A5")
	accent := lipgloss.Color("#82AAFF")
	chipBg := lipgloss.Color("#37474F")
	if !dark {
		foreground = lipgloss.Color("#20123A")
		muted = lipgloss.Color("#6B7280")
		accent = lipgloss.Color("#3D5AFE")
		chipBg = lipgloss.Color("#E0E4EC")
	}

	return Theme{
		Dark: dark,

		Title: lipgloss.NewStyle().
			Foreground(foreground).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(muted),

		Text: lipgloss.NewStyle().
			Foreground(foreground),

		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Link: lipgloss.NewStyle().
			Foreground(accent).
			Underline(true),

		Icon: lipgloss.NewStyle().
			Foreground(BrandTint).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(muted).
			Padding(0, 1),

		FocusedCard: lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(BrandTint).
			Padding(0, 1),

		Placeholder: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		Chip: lipgloss.NewStyle().
			Foreground(muted).
			Background(chipBg).
			Padding(0, 1),

		SelectedChip: lipgloss.NewStyle().
			Foreground(foreground).
			Background(BrandTint).
			Padding(0, 1).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F07178")).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true).
			MarginTop(1),

		ActiveTab: lipgloss.NewStyle().
			Foreground(foreground).
			Background(chipBg).
			Padding(0, 2).
			Bold(true),

		InactiveTab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		Input: lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(muted).
			Padding(0, 1),

		FocusedInput: lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(BrandTint).
			Padding(0, 1),
	}
}
