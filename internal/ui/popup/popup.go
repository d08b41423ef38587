package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/periodic/internal/ui/styles"
)

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	MaxWidth  int // Maximum width in columns (0 = no limit)
}

// Common size configurations.
var (
	SizeAuto = SizeConfig{} // Help
)

// Box wraps content in a rounded border with an optional title line.
func Box(title, content string, width int) string {
	t := styles.T()
	if title != "" {
		content = t.S().Title.Render(title) + "\n\n" + content
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width - 2) // Account for border
	}
	return style.Render(content)
}

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := calculateDimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Width(width-2). // Account for border
		Height(height-2).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

func calculateDimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}
	width = lipgloss.Width(content) + 6 // padding + border
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, screenW-4)

	height = lipgloss.Height(content) + 4 // padding + border
	height = min(height, screenH-4)
	return width, height
}

// Center centers pre-rendered content in the terminal.
func Center(content string, termWidth, termHeight int) string {
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, content)
}

// Compose overlays a centered popup (as produced by Center) on top of base.
// Only the visible part of each popup line replaces the base.
func Compose(base, popupView string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(popupView, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			continue
		}
		start := len(plain) - len(strings.TrimLeft(plain, " "))
		end := ansi.StringWidth(strings.TrimRight(plain, " "))
		baseLines[i] = splice(baseLines[i], ansi.Cut(line, start, end), start, end, width)
	}
	return strings.Join(baseLines, "\n")
}

// ComposeAt overlays a block at column x, row y of base.
func ComposeAt(base, block string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		end := min(x+ansi.StringWidth(line), width)
		if x >= end {
			continue
		}
		baseLines[row] = splice(baseLines[row], ansi.Truncate(line, end-x, ""), x, end, width)
	}
	return strings.Join(baseLines, "\n")
}

// splice replaces columns [start, end) of baseLine with overlay, padding the
// base to width first. Wide characters cut at either edge become spaces.
func splice(baseLine, overlay string, start, end, width int) string {
	if w := ansi.StringWidth(baseLine); w < width {
		baseLine += strings.Repeat(" ", width-w)
	}

	prefix := ansi.Cut(baseLine, 0, start)
	if w := ansi.StringWidth(prefix); w < start {
		prefix += strings.Repeat(" ", start-w)
	}

	result := prefix + overlay
	if end < width {
		suffix := ansi.Cut(baseLine, end, width)
		if w := ansi.StringWidth(suffix); w < width-end {
			suffix = strings.Repeat(" ", width-end-w) + suffix
		}
		result += suffix
	}
	return result
}
