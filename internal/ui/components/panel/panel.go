package panel

import "github.com/GustavoCaso/apero/internal/tabs"

// Panel is a content container whose visibility is driven by a tab.
type Panel interface {
	tabs.Element
	IsVisible() bool
	View() string
	SetSize(width, height int)
}
