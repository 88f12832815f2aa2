package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/taskflow/internal/tracker"
)

// Catppuccin Mocha palette
// https://catppuccin.com/palette
const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorMauve
	colorFocus   = colorLavender
	colorMuted   = colorSubtext0
	colorSuccess = colorGreen
	colorError   = colorRed
)

var (
	brandStyle    = lipgloss.NewStyle().Foreground(colorBase).Background(colorAccent).Bold(true).Padding(0, 1)
	headingStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	navStyle      = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	navActive     = lipgloss.NewStyle().Foreground(colorBase).Background(colorAccent).Bold(true).Padding(0, 1)
	sidebarStyle  = lipgloss.NewStyle().Background(colorMantle).Padding(1, 1)
	doneStyle     = lipgloss.NewStyle().Foreground(colorOverlay1).Strikethrough(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface0)
	statusErr     = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0)
	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
	inputStyle    = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0)
)

// priorityColors maps tracker presentation classes to palette colors.
var priorityColors = map[string]lipgloss.Color{
	tracker.ColorRed:    colorRed,
	tracker.ColorYellow: colorYellow,
	tracker.ColorGreen:  colorGreen,
	tracker.ColorGray:   colorOverlay0,
}

func priorityColor(p tracker.Priority) lipgloss.Color {
	return priorityColors[tracker.PriorityColor(string(p))]
}

var statCardColors = []lipgloss.Color{colorAccent, colorPeach, colorTeal}
