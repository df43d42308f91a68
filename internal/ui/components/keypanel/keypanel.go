// Package keypanel renders the pre-shared key on the provisioning screen,
// one panel per representation.
package keypanel

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/GustavoCaso/apero/internal/provisioning"
	"github.com/GustavoCaso/apero/internal/ui/components/element"
	"github.com/GustavoCaso/apero/internal/ui/components/panel"
	"github.com/GustavoCaso/apero/internal/ui/theme"
)

const (
	mnemonicColumns = 4
	hexColumns      = 4
)

type keyPanel struct {
	element.Element
	title  string
	body   string
	width  int
	height int
}

// NewMnemonic returns the panel listing the mnemonic words.
func NewMnemonic(data provisioning.Data, visible bool) panel.Panel {
	return &keyPanel{
		Element: element.New(false, visible),
		title:   theme.IconMnemonic + " Mnemonic",
		body:    formatMnemonic(data.Mnemonic),
	}
}

// NewHex returns the panel listing the hex groups.
func NewHex(data provisioning.Data, visible bool) panel.Panel {
	return &keyPanel{
		Element: element.New(false, visible),
		title:   theme.IconHex + " Hex",
		body:    formatHex(data.Hex),
	}
}

func (p *keyPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// View renders the panel. Hidden panels render to an empty string.
func (p *keyPanel) View() string {
	if !p.IsVisible() {
		return ""
	}

	style := theme.PanelStyle
	if p.width > 0 {
		style = style.Width(p.width - style.GetHorizontalBorderSize())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, theme.PanelTitleStyle.Render(p.title), p.body)
	return style.Render(content)
}

func formatMnemonic(words []string) string {
	var rows []string
	for start := 0; start < len(words); start += mnemonicColumns {
		var cells []string
		for i := start; i < min(start+mnemonicColumns, len(words)); i++ {
			cells = append(cells, theme.IndexStyle.Render(strconv.Itoa(i+1)+".")+theme.WordStyle.Render(words[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func formatHex(groups [provisioning.HexGroups]string) string {
	var rows []string
	for start := 0; start < len(groups); start += hexColumns {
		var cells []string
		for _, g := range groups[start:min(start+hexColumns, len(groups))] {
			cells = append(cells, theme.HexGroupStyle.Render(g))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
