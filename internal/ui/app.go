package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/GustavoCaso/apero/internal/provisioning"
	"github.com/GustavoCaso/apero/internal/tabs"
	"github.com/GustavoCaso/apero/internal/ui/components/header"
	"github.com/GustavoCaso/apero/internal/ui/components/keypanel"
	"github.com/GustavoCaso/apero/internal/ui/components/panel"
	"github.com/GustavoCaso/apero/internal/ui/components/statusbar"
	"github.com/GustavoCaso/apero/internal/ui/helper"
	"github.com/GustavoCaso/apero/internal/ui/keys"
	"github.com/GustavoCaso/apero/internal/ui/message"
	"github.com/GustavoCaso/apero/internal/ui/theme"
)

type bannerType int

const (
	bannerNone bannerType = iota
	bannerSuccess
	bannerError
)

const (
	bannerTimeout      = 3 * time.Second
	bannerOverlayLines = 2 // lines from bottom for banner overlay position
)

// clearBannerMsg is sent to clear the banner after a timeout.
type clearBannerMsg struct{}

// document indexes the elements of the screen by selector.
type document map[string]tabs.Element

func (d document) Lookup(selector string) (tabs.Element, bool) {
	e, ok := d[selector]
	return e, ok
}

type model struct {
	zones      *zone.Manager
	header     *header.Header
	panels     []panel.Panel
	statusBar  *statusbar.StatusBar
	keys       *keys.KeyMap
	toggle     *tabs.Controller
	width      int
	height     int
	bannerMsg  string
	bannerKind bannerType
	initErr    string
}

// Option customises the screen built by InitialModel.
type Option func(*options)

type options struct {
	wrap func(tabs.Document) tabs.Document
}

// WithDocument wraps the screen's element index before the toggle resolves
// it. Tests use it to drop elements.
func WithDocument(wrap func(tabs.Document) tabs.Document) Option {
	return func(o *options) { o.wrap = wrap }
}

// InitialModel builds the provisioning screen for data.
//
// The screen starts on the mnemonic tab: its trigger is marked active and the
// hex panel is hidden. The toggle only reacts to clicks from there.
func InitialModel(data provisioning.Data, opts ...Option) tea.Model {
	o := options{wrap: func(d tabs.Document) tabs.Document { return d }}
	for _, opt := range opts {
		opt(&o)
	}

	zones := zone.New()
	h := header.New(zones)
	mnemonicPanel := keypanel.NewMnemonic(data, true)
	hexPanel := keypanel.NewHex(data, false)

	doc := document{
		tabs.TriggerSelector(tabs.TabMnemonic): h.Trigger(tabs.TabMnemonic),
		tabs.TriggerSelector(tabs.TabHex):      h.Trigger(tabs.TabHex),
		tabs.PanelSelector(tabs.TabMnemonic):   mnemonicPanel,
		tabs.PanelSelector(tabs.TabHex):        hexPanel,
	}

	m := &model{
		zones:     zones,
		header:    h,
		panels:    []panel.Panel{mnemonicPanel, hexPanel},
		statusBar: statusbar.New(keys.Keys),
		keys:      keys.Keys,
	}

	toggle, err := tabs.New(o.wrap(doc))
	if err != nil {
		m.initErr = "Tab toggle unavailable: " + err.Error()
	} else {
		m.toggle = toggle
	}

	return m
}

func (m *model) Init() tea.Cmd {
	if m.initErr != "" {
		return func() tea.Msg {
			return message.ShowBannerMsg{Message: m.initErr, IsError: true}
		}
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case message.ShowBannerMsg:
		m.bannerMsg = msg.Message
		if msg.IsError {
			m.bannerKind = bannerError
		} else {
			m.bannerKind = bannerSuccess
		}
		return m, tea.Tick(bannerTimeout, func(_ time.Time) tea.Msg {
			return clearBannerMsg{}
		})

	case clearBannerMsg:
		m.bannerMsg = ""
		m.bannerKind = bannerNone
		return m, nil

	case message.TabClickedMsg:
		// Without a toggle the reactions were never registered.
		if m.toggle != nil {
			m.toggle.Click(msg.Tab)
		}
		return m, nil

	case tea.MouseMsg:
		return m, m.header.Update(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Mnemonic), key.Matches(msg, m.keys.Left):
			return m, clickCmd(tabs.TabMnemonic)
		case key.Matches(msg, m.keys.Hex), key.Matches(msg, m.keys.Right):
			return m, clickCmd(tabs.TabHex)
		case key.Matches(msg, m.keys.Switch):
			active, ok := m.header.Active()
			if !ok {
				active = tabs.TabHex
			}
			return m, clickCmd(active.Other())
		case key.Matches(msg, m.keys.Help):
			m.statusBar.ToggleFullView()
			m.resize()
			return m, nil
		}
	}

	return m, nil
}

func clickCmd(tab tabs.Tab) tea.Cmd {
	return func() tea.Msg {
		return message.TabClickedMsg{Tab: tab}
	}
}

func (m *model) resize() {
	m.header.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)

	contentHeight := m.height - lipgloss.Height(m.header.View()) - lipgloss.Height(m.statusBar.View())
	for _, p := range m.panels {
		p.SetSize(m.width, contentHeight)
	}
}

func (m *model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	parts := []string{m.header.View()}
	for _, p := range m.panels {
		if p.IsVisible() {
			parts = append(parts, p.View())
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	content = lipgloss.NewStyle().Height(m.height - lipgloss.Height(m.statusBar.View())).Render(content)

	if m.bannerMsg != "" {
		style := theme.BannerSuccessStyle
		text := m.bannerMsg
		if m.bannerKind == bannerError {
			style = theme.BannerErrorStyle
			text = theme.IconWarning + " " + text
		}
		content = helper.OverlayBottomRight(bannerOverlayLines, content, style.Render(text), m.width)
	}

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, content, m.statusBar.View()))
}
