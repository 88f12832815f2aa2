// Package tui is the terminal front end: a sidebar of tabs next to the panel
// for the active tab, driven by key presses.
package tui

import (
	"context"
	"fmt"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jask/taskflow/internal/logging"
	"github.com/jask/taskflow/internal/tracker"
)

// TaskStore receives task changes after they are applied to the dashboard.
// Writes happen inside Update, one at a time and in key-press order.
type TaskStore interface {
	Prepend(ctx context.Context, t tracker.Task) error
	SetCompleted(ctx context.Context, id string, completed bool) error
}

// App is the Bubble Tea model. It owns the dashboard and is only touched from
// the update loop.
type App struct {
	ctx   context.Context
	dash  *tracker.Dashboard
	store TaskStore
	log   *logrus.Logger

	width  int
	height int

	category       tracker.Category
	input          string
	typing         bool
	taskCursor     int
	settingsCursor int
	status         string
	statusIsErr    bool
}

// New builds the model. store may be nil, in which case changes stay in the
// dashboard only. A nil log discards output.
func New(ctx context.Context, dash *tracker.Dashboard, store TaskStore, log *logrus.Logger, category tracker.Category) *App {
	if log == nil {
		log = logging.Discard()
	}
	if !category.Valid() {
		category = tracker.CategoryWork
	}
	return &App{
		ctx:      ctx,
		dash:     dash,
		store:    store,
		log:      log,
		category: category,
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		if m.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.typing {
			a.handleInputKey(m)
			return a, nil
		}
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := m.String()
	switch key {
	case "q":
		return a, tea.Quit
	case "tab":
		a.switchTab(a.shiftTab(1))
		return a, nil
	case "shift+tab":
		a.switchTab(a.shiftTab(-1))
		return a, nil
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		tabs := tracker.Tabs()
		if n := int(key[0] - '1'); n < len(tabs) {
			a.switchTab(tabs[n])
		}
		return a, nil
	}

	switch a.dash.ActiveTab() {
	case tracker.TabToday:
		a.handleTodayKey(key)
	case tracker.TabSettings:
		a.handleSettingsKey(key)
	}
	return a, nil
}

func (a *App) shiftTab(delta int) tracker.Tab {
	tabs := tracker.Tabs()
	for i, t := range tabs {
		if t == a.dash.ActiveTab() {
			return tabs[(i+delta+len(tabs))%len(tabs)]
		}
	}
	return tracker.TabToday
}

func (a *App) switchTab(t tracker.Tab) {
	if a.dash.SetTab(t) {
		a.status = ""
		a.log.WithField("tab", string(t)).Debug("tab changed")
	}
}

func (a *App) handleTodayKey(key string) {
	today := a.dash.TodayTasks()
	switch key {
	case "a", "i", "/":
		a.typing = true
		a.status = ""
	case "c":
		a.category = a.category.Next()
	case "up", "k":
		if a.taskCursor > 0 {
			a.taskCursor--
		}
	case "down", "j":
		if a.taskCursor < len(today)-1 {
			a.taskCursor++
		}
	case " ", "x", "enter":
		if len(today) == 0 {
			return
		}
		a.taskCursor = clamp(a.taskCursor, len(today))
		a.toggle(today[a.taskCursor].ID)
	}
}

func (a *App) handleInputKey(m tea.KeyMsg) {
	switch m.Type {
	case tea.KeyEsc:
		a.typing = false
	case tea.KeyEnter:
		a.submit()
	case tea.KeyTab:
		a.category = a.category.Next()
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if a.input != "" {
			_, size := utf8.DecodeLastRuneInString(a.input)
			a.input = a.input[:len(a.input)-size]
		}
	case tea.KeySpace:
		a.input += " "
	case tea.KeyRunes:
		a.input += string(m.Runes)
	}
}

// submit adds the typed task. A blank title is ignored without feedback.
func (a *App) submit() {
	task, ok := a.dash.AddTask(a.input, a.category)
	if !ok {
		a.log.Debug("blank task title ignored")
		return
	}
	a.input = ""
	a.taskCursor = 0
	a.setStatus("task added")
	a.log.WithFields(logrus.Fields{
		"task_id":  task.ID,
		"category": string(task.Category),
		"due":      task.DueDate,
	}).Info("task added")

	if a.store != nil {
		a.persist(a.store.Prepend(a.ctx, task))
	}
}

func (a *App) toggle(id string) {
	task, ok := a.dash.ToggleTask(id)
	if !ok {
		return
	}
	a.log.WithFields(logrus.Fields{
		"task_id":   task.ID,
		"completed": task.Completed,
	}).Info("task toggled")

	if a.store != nil {
		a.persist(a.store.SetCompleted(a.ctx, task.ID, task.Completed))
	}
}

// persist reports a failed store write. The dashboard change stands.
func (a *App) persist(err error) {
	if err == nil {
		return
	}
	err = fmt.Errorf("save task: %w", err)
	a.log.WithError(err).Error("store write failed")
	a.status = "error: " + err.Error()
	a.statusIsErr = true
}

func (a *App) handleSettingsKey(key string) {
	fields := tracker.SettingFields()
	a.settingsCursor = clamp(a.settingsCursor, len(fields))
	f := fields[a.settingsCursor]
	switch key {
	case "up", "k":
		if a.settingsCursor > 0 {
			a.settingsCursor--
		}
	case "down", "j":
		if a.settingsCursor < len(fields)-1 {
			a.settingsCursor++
		}
	case " ", "enter":
		if f.Kind == tracker.SettingToggle {
			a.dash.UpdateSettings(func(s *tracker.Settings) { f.Set(s, 1-f.Get(*s)) })
		}
	case "+", "=", "right", "l":
		if f.Kind == tracker.SettingNumber {
			a.dash.UpdateSettings(func(s *tracker.Settings) { f.Set(s, f.Get(*s)+1) })
		}
	case "-", "left", "h":
		if f.Kind == tracker.SettingNumber {
			a.dash.UpdateSettings(func(s *tracker.Settings) { f.Set(s, f.Get(*s)-1) })
		}
	}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusIsErr = false
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
