package widgets

import "github.com/charmbracelet/lipgloss"

// Badge is a short inline label.
type Badge struct {
	Text    string
	Color   lipgloss.Color
	Outline bool
}

func (b Badge) Render() string {
	color := b.Color
	if color == "" {
		color = lipgloss.Color("#bac2de")
	}
	style := lipgloss.NewStyle().Foreground(color)
	if b.Outline {
		return style.Render("[" + b.Text + "]")
	}
	return style.Background(lipgloss.Color("#313244")).Padding(0, 1).Render(b.Text)
}
