// Package popup renders bordered modal boxes and overlays them on a view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/timetable/internal/ui/styles"
)

// SizeConfig defines how a popup is sized.
type SizeConfig struct {
	WidthPct  int // percentage of screen width, 0 fits the content
	HeightPct int // percentage of screen height, 0 fits the content
	MaxWidth  int // 0 means no limit
}

var (
	SizeLarge = SizeConfig{WidthPct: 70, HeightPct: 70} // help
	SizeAuto  = SizeConfig{MaxWidth: 48}                // date prompt
)

// RenderBordered wraps content in a rounded border and centers it on a
// screenW x screenH canvas.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := dimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Padding(0, 1).
		Render(content)
	return Center(box, screenW, screenH)
}

// Center pads pre-rendered content so it sits in the middle of the screen.
func Center(content string, screenW, screenH int) string {
	lines := strings.Split(content, "\n")
	boxWidth := 0
	for _, line := range lines {
		boxWidth = max(boxWidth, lipgloss.Width(line))
	}
	padTop := max((screenH-len(lines))/2, 0)
	padLeft := max((screenW-boxWidth)/2, 0)

	var sb strings.Builder
	for range padTop {
		sb.WriteString("\n")
	}
	indent := strings.Repeat(" ", padLeft)
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(indent)
		sb.WriteString(line)
	}
	return sb.String()
}

func dimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}
	width = lipgloss.Width(content) + 4 // padding + border
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, max(screenW-4, 0))
	height = min(lipgloss.Height(content)+2, max(screenH-2, 0))
	return width, height
}

// Compose overlays popupView on base. Blank overlay lines and the leading
// blanks of each overlay line leave the base visible.
func Compose(base, popupView string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(popupView, "\n")

	for i, overlay := range overlayLines {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(overlay)
		if strings.TrimSpace(plain) == "" {
			continue
		}
		start := len(plain) - len(strings.TrimLeft(plain, " "))
		end := ansi.StringWidth(strings.TrimRight(plain, " "))

		line := baseLines[i]
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		prefix := ansi.Cut(line, 0, start)
		if pw := ansi.StringWidth(prefix); pw < start {
			prefix += strings.Repeat(" ", start-pw)
		}
		out := prefix + ansi.Cut(overlay, start, end)
		if end < width {
			suffix := ansi.Cut(line, end, width)
			if sw := ansi.StringWidth(suffix); sw < width-end {
				suffix += strings.Repeat(" ", width-end-sw)
			}
			out += suffix
		}
		baseLines[i] = out
	}
	return strings.Join(baseLines, "\n")
}
