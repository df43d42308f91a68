package statusbar

import (
	"github.com/charmbracelet/bubbles/help"

	"github.com/GustavoCaso/apero/internal/ui/theme"
)

// StatusBar renders key help at the bottom of the screen.
type StatusBar struct {
	help   help.Model
	keyMap help.KeyMap
	width  int
}

// New creates a status bar showing keyMap.
func New(keyMap help.KeyMap) *StatusBar {
	return &StatusBar{help: help.New(), keyMap: keyMap}
}

// SetWidth sets the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
	s.help.Width = width
}

func (s *StatusBar) ToggleFullView() {
	s.help.ShowAll = !s.help.ShowAll
}

func (s *StatusBar) IsFullView() bool {
	return s.help.ShowAll
}

// View renders the status bar.
func (s *StatusBar) View() string {
	return theme.HelpStyle.Render(s.help.View(s.keyMap))
}
