package tracker

import "strings"

// Tab identifies the panel shown in the main area.
type Tab string

const (
	TabToday    Tab = "today"
	TabWeek     Tab = "week"
	TabMonth    Tab = "month"
	TabYear     Tab = "year"
	TabProjects Tab = "projects"
	TabStats    Tab = "stats"
	TabSettings Tab = "settings"
)

// Placeholder counters for the period tabs. Nothing computes them yet.
const (
	WeekTaskCount  = 15
	MonthTaskCount = 42
	YearTaskCount  = 156
)

var tabOrder = []Tab{TabToday, TabWeek, TabMonth, TabYear, TabProjects, TabStats, TabSettings}

// Tabs returns every tab in sidebar order.
func Tabs() []Tab {
	return append([]Tab(nil), tabOrder...)
}

func (t Tab) Valid() bool {
	for _, v := range tabOrder {
		if v == t {
			return true
		}
	}
	return false
}

func (t Tab) Label() string {
	switch t {
	case TabToday:
		return "Today"
	case TabWeek:
		return "Week"
	case TabMonth:
		return "Month"
	case TabYear:
		return "Year"
	case TabProjects:
		return "Projects"
	case TabStats:
		return "Statistics"
	case TabSettings:
		return "Settings"
	}
	return ""
}

func (t Tab) Icon() string {
	switch t {
	case TabToday:
		return "Calendar"
	case TabWeek:
		return "CalendarDays"
	case TabMonth:
		return "CalendarRange"
	case TabYear:
		return "CalendarClock"
	case TabProjects:
		return "FolderKanban"
	case TabStats:
		return "TrendingUp"
	case TabSettings:
		return "Settings"
	}
	return ""
}

// ParseTab resolves a tab identifier, case-insensitively.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if t.Valid() {
		return t, nil
	}
	names := make([]string, 0, len(tabOrder))
	for _, v := range tabOrder {
		names = append(names, string(v))
	}
	return "", unknownValueError("tab", s, names)
}

// NavItem is one sidebar entry. HasCount is false for tabs without a badge.
type NavItem struct {
	Tab      Tab
	Label    string
	Icon     string
	Count    int
	HasCount bool
}
