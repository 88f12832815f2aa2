package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/taskflow/internal/tracker"
	"github.com/jask/taskflow/internal/widgets"
)

const (
	defaultWidth  = 110
	defaultHeight = 40
	sidebarWidth  = 30
	minMainWidth  = 40
)

// panelSubtitles is the line under each panel heading.
var panelSubtitles = map[tracker.Tab]string{
	tracker.TabWeek:     "Tasks planned for this week",
	tracker.TabMonth:    "Tasks planned for this month",
	tracker.TabYear:     "Tasks planned for this year",
	tracker.TabProjects: "Manage projects and teams",
	tracker.TabStats:    "Productivity analytics",
	tracker.TabSettings: "Personalize the tracker",
}

func (a *App) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(), " ", a.renderPanel())
	return body + "\n" + a.renderFooter()
}

func (a *App) mainWidth() int {
	return max(minMainWidth, a.width-sidebarWidth-1)
}

func (a *App) renderSidebar() string {
	inner := sidebarWidth - 2
	lines := []string{brandStyle.Render(icon("CheckSquare") + " TaskFlow"), ""}
	for _, item := range a.dash.NavItems() {
		label := icon(item.Icon) + " " + item.Label
		count := ""
		if item.HasCount {
			count = fmt.Sprintf("%d", item.Count)
		}
		gap := max(1, inner-2-lipgloss.Width(label)-lipgloss.Width(count))
		row := label + strings.Repeat(" ", gap) + count
		if item.Tab == a.dash.ActiveTab() {
			lines = append(lines, navActive.Render(row))
		} else {
			lines = append(lines, navStyle.Render(row))
		}
	}

	pct := a.dash.ProgressPercent()
	progressLabel := "Day progress"
	pctText := fmt.Sprintf("%d%%", int(math.Round(pct)))
	lines = append(lines, "",
		subtleStyle.Render(progressLabel)+strings.Repeat(" ", max(1, inner-len(progressLabel)-len(pctText)))+headingStyle.Render(pctText),
		widgets.ProgressBar{Percent: pct, Fill: colorAccent, Track: colorSurface1}.Render(inner),
	)
	return sidebarStyle.Width(sidebarWidth).Height(max(1, a.height-2)).Render(strings.Join(lines, "\n"))
}

// renderPanel draws only the active tab's panel.
func (a *App) renderPanel() string {
	switch tab := a.dash.ActiveTab(); tab {
	case tracker.TabWeek, tracker.TabMonth, tracker.TabYear:
		return a.renderPeriod(tab)
	case tracker.TabProjects:
		return a.renderProjects()
	case tracker.TabStats:
		return a.renderStats()
	case tracker.TabSettings:
		return a.renderSettings()
	default:
		return a.renderToday()
	}
}

func header(title, subtitle string) string {
	return headingStyle.Render(title) + "\n" + subtleStyle.Render(subtitle) + "\n"
}

// longDate formats a YYYY-MM-DD date as "Friday, 14 November 2025".
func longDate(date string) string {
	t, err := time.Parse(tracker.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Monday, 2 January 2006")
}

func (a *App) renderToday() string {
	width := a.mainWidth()
	out := []string{header("Today", longDate(a.dash.ReferenceDate()))}

	cat := a.category
	selector := fmt.Sprintf("%s %s ▾", icon(cat.Icon()), cat.Label())
	field := subtleStyle.Render("Add a new task...")
	if a.input != "" || a.typing {
		field = inputStyle.Render(a.input + cursorGlyph(a.typing))
	}
	border := colorOverlay0
	if a.typing {
		border = colorFocus
	}
	out = append(out, widgets.Card{
		Content: selector + "  " + field + "  " + keyStyle.Render(icon("Plus")),
		Border:  border,
	}.Render(width))

	today := a.dash.TodayTasks()
	if len(today) == 0 {
		out = append(out, subtleStyle.Render("No tasks for today."))
	}
	cursor := clamp(a.taskCursor, len(today))
	for i, t := range today {
		out = append(out, a.renderTaskCard(t, i == cursor && !a.typing, width))
	}
	return strings.Join(out, "\n")
}

func cursorGlyph(typing bool) string {
	if typing {
		return "▏"
	}
	return ""
}

func (a *App) renderTaskCard(t tracker.Task, selected bool, width int) string {
	title := t.Title
	if t.Completed {
		title = doneStyle.Render(title)
	} else {
		title = headingStyle.Render(title)
	}
	marker := "  "
	if selected {
		marker = cursorStyle.Render("▶ ")
	}

	badges := []string{widgets.Badge{
		Text:    strings.TrimSpace(t.Priority.Marker() + " " + string(t.Priority)),
		Color:   priorityColor(t.Priority),
		Outline: true,
	}.Render()}
	for _, tag := range t.Tags {
		badges = append(badges, widgets.Badge{Text: "#" + tag}.Render())
	}
	left := strings.Join(badges, " ")
	right := widgets.Badge{Text: icon("FolderOpen") + " " + t.Category.Label(), Outline: true}.Render()
	gap := max(1, width-10-lipgloss.Width(left)-lipgloss.Width(right))

	border := colorOverlay0
	if selected {
		border = colorFocus
	}
	return widgets.Card{
		Content: marker + widgets.Checkbox(t.Completed) + " " + title + "\n" +
			"      " + left + strings.Repeat(" ", gap) + right,
		Border: border,
		Dimmed: t.Completed,
	}.Render(width)
}

func (a *App) renderPeriod(tab tracker.Tab) string {
	count := 0
	for _, item := range a.dash.NavItems() {
		if item.Tab == tab {
			count = item.Count
		}
	}
	card := widgets.Card{
		Title:   tab.Label(),
		Content: fmt.Sprintf("%s %d tasks\n%s", icon(tab.Icon()), count, subtleStyle.Render("Detailed planning is not available yet.")),
	}
	return header(tab.Label(), panelSubtitles[tab]) + "\n" + card.Render(a.mainWidth())
}

func (a *App) renderProjects() string {
	width := a.mainWidth()
	cardWidth := (width - 1) / 2

	var cards []string
	for _, p := range a.dash.Projects() {
		glyph := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(icon("Folder") + icon("Folder"))
		cards = append(cards, widgets.Card{
			Content: glyph + "\n" + headingStyle.Render(p.Name) + "\n" +
				subtleStyle.Render(fmt.Sprintf("%s %d tasks", icon("CheckCircle2"), p.TasksCount)),
		}.Render(cardWidth))
	}
	cards = append(cards, widgets.Card{
		Content: "\n" + subtleStyle.Render(icon("Plus")+" Create project") + "\n",
		Dashed:  true,
	}.Render(cardWidth))

	rows := []string{header("Projects", panelSubtitles[tracker.TabProjects])}
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], " ", cards[i+1]))
		} else {
			rows = append(rows, cards[i])
		}
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderStats() string {
	width := a.mainWidth()
	cardWidth := (width - 2) / 3

	var cards []string
	for i, c := range a.dash.StatCards() {
		color := statCardColors[i%len(statCardColors)]
		top := lipgloss.NewStyle().Foreground(color).Render(icon(c.Icon))
		badge := widgets.Badge{Text: c.Badge}.Render()
		gap := max(1, cardWidth-4-lipgloss.Width(top)-lipgloss.Width(badge))
		cards = append(cards, widgets.Card{
			Content: top + strings.Repeat(" ", gap) + badge + "\n" +
				headingStyle.Render(fmt.Sprintf("%d", c.Value)) + "\n" +
				subtleStyle.Render(c.Label),
		}.Render(cardWidth))
	}

	var activity []string
	barWidth := max(10, width-6)
	for _, share := range tracker.CategoryActivityShares() {
		label := icon(share.Category.Icon) + " " + share.Category.Label
		pct := fmt.Sprintf("%d%%", share.Percent)
		activity = append(activity,
			label+strings.Repeat(" ", max(1, barWidth-lipgloss.Width(label)-len(pct)))+subtleStyle.Render(pct),
			widgets.ProgressBar{Percent: float64(share.Percent), Fill: colorAccent, Track: colorSurface1}.Render(barWidth),
		)
	}

	return strings.Join([]string{
		header("Statistics", panelSubtitles[tracker.TabStats]),
		lipgloss.JoinHorizontal(lipgloss.Top, cards[0], " ", cards[1], " ", cards[2]),
		widgets.Card{Title: "Activity by category", Content: strings.Join(activity, "\n")}.Render(width),
	}, "\n")
}

func (a *App) renderSettings() string {
	width := a.mainWidth()
	settings := a.dash.Settings()
	fields := tracker.SettingFields()
	cursor := clamp(a.settingsCursor, len(fields))

	out := []string{header("Settings", panelSubtitles[tracker.TabSettings])}
	var group, groupIcon string
	var rows []string
	flush := func() {
		if group == "" {
			return
		}
		out = append(out, widgets.Card{Title: icon(groupIcon) + " " + group, Content: strings.Join(rows, "\n")}.Render(width))
		rows = nil
	}
	for i, f := range fields {
		if f.Group != group {
			flush()
			group, groupIcon = f.Group, f.Icon
		}
		var value string
		switch f.Kind {
		case tracker.SettingToggle:
			value = widgets.Checkbox(f.Get(settings) != 0)
		case tracker.SettingNumber:
			value = fmt.Sprintf("‹ %d ›", f.Get(settings))
		}
		marker := "  "
		if i == cursor {
			marker = cursorStyle.Render("▶ ")
		}
		gap := max(1, width-6-lipgloss.Width(marker)-lipgloss.Width(f.Label)-lipgloss.Width(value))
		rows = append(rows, marker+f.Label+strings.Repeat(" ", gap)+value)
	}
	flush()
	return strings.Join(out, "\n")
}

func (a *App) renderFooter() string {
	var help [][2]string
	switch {
	case a.typing:
		help = [][2]string{{"enter", "Add"}, {"tab", "Category"}, {"esc", "Done"}}
	case a.dash.ActiveTab() == tracker.TabToday:
		help = [][2]string{{"a", "New task"}, {"c", "Category"}, {"space", "Toggle"}, {"1-7", "Tabs"}, {"q", "Quit"}}
	case a.dash.ActiveTab() == tracker.TabSettings:
		help = [][2]string{{"space", "Toggle"}, {"+/-", "Adjust"}, {"1-7", "Tabs"}, {"q", "Quit"}}
	default:
		help = [][2]string{{"tab", "Next"}, {"1-7", "Tabs"}, {"q", "Quit"}}
	}
	parts := make([]string, 0, len(help))
	for _, h := range help {
		parts = append(parts, keyStyle.Render("["+h[0]+"]")+" "+helpDescStyle.Render(h[1]))
	}
	line := strings.Join(parts, "  ")
	if a.status != "" {
		style := statusStyle
		if a.statusIsErr {
			style = statusErr
		}
		line += "  " + style.Render(" "+a.status+" ")
	}
	return line
}
