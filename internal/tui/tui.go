// Package tui is the interactive conversion form.
package tui

import (
	"colombo-utc/internal/clipboard"
	"colombo-utc/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Options configures the form. Zero values fall back to sensible defaults.
type Options struct {
	CopyPolicy session.CopyPolicy
	Clipboard  clipboard.Writer
	Logger     *zerolog.Logger
	Theme      string
	Glyphs     string
}

// Run starts the form and blocks until the user quits.
func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
