package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/danivela/storyfeed/pkg/app/screens"
)

// Options configure the TUI at startup.
type Options struct {
	DBPath  string
	Density float64
	Light   bool
}

type App struct {
	opts Options
}

func NewApp(opts Options) *App {
	return &App{opts: opts}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(screens.Config{
		DBPath:  a.opts.DBPath,
		Density: a.opts.Density,
		Light:   a.opts.Light,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
