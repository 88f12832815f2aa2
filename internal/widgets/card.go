package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card draws content inside a rounded border with an optional title set into
// the top edge. Height grows with the content.
type Card struct {
	Title   string
	Content string
	Border  lipgloss.Color
	Dashed  bool
	Dimmed  bool
}

func (c Card) Render(width int) string {
	if width < 4 {
		width = 4
	}
	border := c.Border
	if border == "" {
		border = lipgloss.Color("#6c7086")
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	contentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	if c.Dimmed {
		contentStyle = contentStyle.Foreground(lipgloss.Color("#7f849c"))
	}

	horiz, vert := "─", "│"
	if c.Dashed {
		horiz, vert = "╌", "╎"
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	titleText := ""
	if c.Title != "" {
		titleText = " " + ansi.Truncate(c.Title, max(1, innerWidth-3), "…") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText)-1)
	top := borderStyle.Render("╭"+horiz) + titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat(horiz, dashes)+"╮")
	if titleText == "" {
		top = borderStyle.Render("╭" + strings.Repeat(horiz, innerWidth) + "╮")
	}

	lines := strings.Split(c.Content, "\n")
	rows := make([]string, 0, len(lines)+2)
	rows = append(rows, top)
	v := borderStyle.Render(vert)
	for _, line := range lines {
		line = ansi.Truncate(line, contentWidth, "…")
		rows = append(rows, v+" "+contentStyle.Render(PadRight(line, contentWidth))+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat(horiz, innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

// PadRight pads s with spaces to the given display width.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
