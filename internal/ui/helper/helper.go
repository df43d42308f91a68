package helper

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// OverlayBottomRight right-aligns overlay on the line lastLineIdx lines from
// the bottom of content, which is width cells wide.
//
// Widths are measured in cells, not bytes: styled lines carry ANSI escape
// codes with no visual width, so lipgloss.Width measures and ansi.Truncate
// cuts without breaking the styling.
//
//	width = 30, overlay "[key copied]" (12 cells)
//	"│  1. abandon   2. ability"    → "│  1. abandon   2. a[key copied]"
func OverlayBottomRight(lastLineIdx int, content, overlay string, width int) string {
	lines := strings.Split(content, "\n")
	if lastLineIdx <= 0 || len(lines) < lastLineIdx {
		return content
	}

	targetIdx := len(lines) - lastLineIdx
	targetLine := lines[targetIdx]
	overlayWidth := lipgloss.Width(overlay)
	padding := width - lipgloss.Width(targetLine) - overlayWidth

	switch {
	case padding > 0:
		lines[targetIdx] = targetLine + strings.Repeat(" ", padding) + overlay
	case width-overlayWidth > 0:
		lines[targetIdx] = ansi.Truncate(targetLine, width-overlayWidth, "") + overlay
	default:
		lines[targetIdx] = ansi.Truncate(overlay, width, "")
	}

	return strings.Join(lines, "\n")
}
