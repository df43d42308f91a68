// Package theme provides colors, Nerd Font icons and Lip Gloss styles for
// the apero TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	Accent     = lipgloss.Color("#D9822B")
	AccentDark = lipgloss.Color("#2B1A0B")

	StatusOK    = lipgloss.Color("#2ECC71")
	StatusError = lipgloss.Color("#E74C3C")

	TextPrimary   = lipgloss.Color("#FFFFFF")
	TextSecondary = lipgloss.Color("#A0AEC0")
	TextMuted     = lipgloss.Color("#6C7A89")
	Border        = lipgloss.Color("#2D3748")
	BorderActive  = Accent
)

// Nerd Font icon constants
// These require a Nerd Font patched terminal font to display correctly.
const (
	IconKey      = "\uf084" // Key icon
	IconMnemonic = "\uf15c" // Text file icon
	IconHex      = "\uf292" // Hashtag icon
	IconWarning  = "\uf071" // Warning triangle
)

// Header tab bar styles (top navigation).
var (
	HeaderBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Border).
			PaddingTop(1)

	HeaderItemStyle = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Padding(0, 2)

	HeaderActiveItemStyle = lipgloss.NewStyle().
				Foreground(TextPrimary).
				Background(Accent).
				Bold(true).
				Padding(0, 2)

	HeaderSeparatorStyle = lipgloss.NewStyle().
				Foreground(TextMuted)

	HeaderLogoStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			PaddingRight(3)
)

// Key panel styles.
var (
	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(BorderActive).
			Padding(1, 2)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Bold(true).
			MarginBottom(1)

	IndexStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Width(4).
			Align(lipgloss.Right).
			PaddingRight(1)

	WordStyle = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Width(12)

	HexGroupStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			PaddingRight(2)
)

// Banner styles.
var (
	BannerSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(StatusOK).
				Padding(0, 1)

	BannerErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(StatusError).
				Padding(0, 1)
)

// Status bar styles.
var (
	HelpStyle = lipgloss.NewStyle().Padding(0, 1)
)
