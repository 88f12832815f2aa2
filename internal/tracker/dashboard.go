package tracker

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultReferenceDate is the date the today panel filters on.
const DefaultReferenceDate = "2025-11-14"

// Dashboard owns the task and project collections and the active tab. It is
// meant to be driven from a single goroutine.
type Dashboard struct {
	tasks    []Task
	projects []Project
	active   Tab
	refDate  string
	settings Settings

	newID func() string
	now   func() time.Time
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithReferenceDate sets the date used by TodayTasks.
func WithReferenceDate(date string) Option {
	return func(d *Dashboard) { d.refDate = date }
}

// WithClock overrides the clock used to date new tasks.
func WithClock(now func() time.Time) Option {
	return func(d *Dashboard) { d.now = now }
}

// WithIDGenerator overrides task ID generation.
func WithIDGenerator(fn func() string) Option {
	return func(d *Dashboard) { d.newID = fn }
}

// WithSettings sets the initial settings values.
func WithSettings(s Settings) Option {
	return func(d *Dashboard) { d.settings = s }
}

// WithStartTab sets the initially active tab. Invalid tabs are ignored.
func WithStartTab(t Tab) Option {
	return func(d *Dashboard) {
		if t.Valid() {
			d.active = t
		}
	}
}

// NewDashboard returns an empty dashboard on the today tab.
func NewDashboard(opts ...Option) *Dashboard {
	d := &Dashboard{
		active:   TabToday,
		refDate:  DefaultReferenceDate,
		settings: DefaultSettings(),
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load replaces both collections. Tasks are kept in the given order.
func (d *Dashboard) Load(tasks []Task, projects []Project) {
	d.tasks = make([]Task, 0, len(tasks))
	for _, t := range tasks {
		d.tasks = append(d.tasks, t.clone())
	}
	d.projects = append([]Project(nil), projects...)
}

// AddTask prepends a new task. It reports false and changes nothing when the
// title is blank.
func (d *Dashboard) AddTask(title string, category Category) (Task, bool) {
	if strings.TrimSpace(title) == "" {
		return Task{}, false
	}
	t := Task{
		ID:        d.newID(),
		Title:     title,
		Category:  category,
		Tags:      []string{},
		DueDate:   d.now().Format(DateLayout),
		Priority:  PriorityMedium,
		Completed: false,
	}
	tasks := make([]Task, 0, len(d.tasks)+1)
	tasks = append(tasks, t)
	d.tasks = append(tasks, d.tasks...)
	return t.clone(), true
}

// ToggleTask flips the completed flag of the task with the given id.
func (d *Dashboard) ToggleTask(id string) (Task, bool) {
	for i := range d.tasks {
		if d.tasks[i].ID == id {
			d.tasks[i].Completed = !d.tasks[i].Completed
			return d.tasks[i].clone(), true
		}
	}
	return Task{}, false
}

// Tasks returns a copy of all tasks, most recent first.
func (d *Dashboard) Tasks() []Task {
	out := make([]Task, 0, len(d.tasks))
	for _, t := range d.tasks {
		out = append(out, t.clone())
	}
	return out
}

func (d *Dashboard) Projects() []Project {
	return append([]Project(nil), d.projects...)
}

// ReferenceDate is the date the today panel filters on.
func (d *Dashboard) ReferenceDate() string { return d.refDate }

// TodayTasks returns the tasks due on the reference date, in list order.
func (d *Dashboard) TodayTasks() []Task {
	var out []Task
	for _, t := range d.tasks {
		if t.DueDate == d.refDate {
			out = append(out, t.clone())
		}
	}
	return out
}

func (d *Dashboard) CompletedCount() int {
	n := 0
	for _, t := range d.TodayTasks() {
		if t.Completed {
			n++
		}
	}
	return n
}

// ProgressPercent is the share of today's tasks that are completed, 0..100.
func (d *Dashboard) ProgressPercent() float64 {
	today := d.TodayTasks()
	if len(today) == 0 {
		return 0
	}
	return float64(d.CompletedCount()) / float64(len(today)) * 100
}

func (d *Dashboard) ActiveTab() Tab { return d.active }

// SetTab switches the active panel. Unknown tabs are ignored.
func (d *Dashboard) SetTab(t Tab) bool {
	if !t.Valid() {
		return false
	}
	d.active = t
	return true
}

// NavItems returns the sidebar entries with their badge counts.
func (d *Dashboard) NavItems() []NavItem {
	items := make([]NavItem, 0, len(tabOrder))
	for _, t := range tabOrder {
		item := NavItem{Tab: t, Label: t.Label(), Icon: t.Icon()}
		switch t {
		case TabToday:
			item.Count, item.HasCount = len(d.TodayTasks()), true
		case TabWeek:
			item.Count, item.HasCount = WeekTaskCount, true
		case TabMonth:
			item.Count, item.HasCount = MonthTaskCount, true
		case TabYear:
			item.Count, item.HasCount = YearTaskCount, true
		case TabProjects:
			item.Count, item.HasCount = len(d.projects), true
		}
		items = append(items, item)
	}
	return items
}

// Settings returns the current settings values.
func (d *Dashboard) Settings() Settings { return d.settings }

// UpdateSettings applies fn to the settings held in memory.
func (d *Dashboard) UpdateSettings(fn func(*Settings)) Settings {
	fn(&d.settings)
	return d.settings
}
