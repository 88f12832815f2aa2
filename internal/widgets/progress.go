package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a horizontal bar filled to Percent (0..100).
type ProgressBar struct {
	Percent float64
	Fill    lipgloss.Color
	Track   lipgloss.Color
}

func (p ProgressBar) Render(width int) string {
	if width <= 0 {
		return ""
	}
	pct := math.Max(0, math.Min(100, p.Percent))
	filled := int(math.Round(pct / 100 * float64(width)))
	fill, track := p.Fill, p.Track
	if fill == "" {
		fill = lipgloss.Color("#cba6f7")
	}
	if track == "" {
		track = lipgloss.Color("#45475a")
	}
	return lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(track).Render(strings.Repeat("░", width-filled))
}
