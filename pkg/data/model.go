package data

type Story struct {
	Title      string
	Publisher  string
	URL        string
	ImageURL   string // template containing the {wh} size token
	Excerpt    string
	TimeToRead int // minutes
	Category   string
	TimesShown int
}

type StoryCategory struct {
	Name       string
	IsSelected bool
}
