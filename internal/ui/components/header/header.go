package header

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/GustavoCaso/apero/internal/tabs"
	"github.com/GustavoCaso/apero/internal/ui/components/element"
	"github.com/GustavoCaso/apero/internal/ui/message"
	"github.com/GustavoCaso/apero/internal/ui/theme"
)

const zoneTriggerPrefix = "header-trigger:"

// ZoneID returns the bubblezone id of the trigger for tab.
func ZoneID(tab tabs.Tab) string {
	return zoneTriggerPrefix + tab.String()
}

// Trigger is a clickable tab label.
type Trigger struct {
	element.Element
	tab   tabs.Tab
	icon  string
	label string
}

// Tab returns the tab selected by the trigger.
func (t *Trigger) Tab() tabs.Tab { return t.tab }

// Header represents the top navigation tab bar component.
type Header struct {
	logo     string
	triggers []*Trigger
	zones    *zone.Manager
	width    int
}

// New creates the tab bar. The mnemonic trigger starts marked active.
func New(zones *zone.Manager) *Header {
	return &Header{
		logo: theme.IconKey + "  apero",
		triggers: []*Trigger{
			{Element: element.New(true, true), tab: tabs.TabMnemonic, icon: theme.IconMnemonic, label: "Mnemonic"},
			{Element: element.New(false, true), tab: tabs.TabHex, icon: theme.IconHex, label: "Hex"},
		},
		zones: zones,
	}
}

// SetWidth sets the total available width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// Trigger returns the trigger of tab, or nil if the header has none.
func (h *Header) Trigger(tab tabs.Tab) *Trigger {
	for _, t := range h.triggers {
		if t.tab == tab {
			return t
		}
	}
	return nil
}

// Active returns the tab of the trigger marked active, if any.
func (h *Header) Active() (tabs.Tab, bool) {
	for _, t := range h.triggers {
		if t.IsActive() {
			return t.tab, true
		}
	}
	return 0, false
}

// Update turns left clicks on a trigger into a TabClickedMsg.
func (h *Header) Update(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || mouse.Action != tea.MouseActionRelease || mouse.Button != tea.MouseButtonLeft {
		return nil
	}

	for _, t := range h.triggers {
		if h.zones.Get(ZoneID(t.tab)).InBounds(mouse) {
			tab := t.tab
			return func() tea.Msg {
				return message.TabClickedMsg{Tab: tab}
			}
		}
	}
	return nil
}

// View renders the horizontal tab bar with the logo pinned to the right.
func (h *Header) View() string {
	var tabParts []string
	sep := theme.HeaderSeparatorStyle.Render("│")

	for _, t := range h.triggers {
		if !t.IsVisible() {
			continue
		}
		text := t.icon + " " + t.label
		var rendered string
		if t.IsActive() {
			rendered = theme.HeaderActiveItemStyle.Render(text)
		} else {
			rendered = theme.HeaderItemStyle.Render(text)
		}
		if len(tabParts) > 0 {
			tabParts = append(tabParts, sep)
		}
		tabParts = append(tabParts, h.zones.Mark(ZoneID(t.tab), rendered))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Center, tabParts...)
	logo := theme.HeaderLogoStyle.Render(h.logo)

	spacerWidth := h.width - lipgloss.Width(tabBar) - lipgloss.Width(logo)
	if spacerWidth < 0 {
		spacerWidth = 0
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	row := lipgloss.JoinHorizontal(lipgloss.Center, tabBar, spacer, logo)
	return theme.HeaderBarStyle.Width(h.width).Render(row)
}
