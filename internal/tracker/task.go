package tracker

// DateLayout is the calendar-date format used for due dates.
const DateLayout = "2006-01-02"

// Task is a single to-do item.
type Task struct {
	ID        string
	Title     string
	Completed bool
	Category  Category
	Tags      []string
	DueDate   string
	Priority  Priority
}

func (t Task) clone() Task {
	if t.Tags != nil {
		t.Tags = append(make([]string, 0, len(t.Tags)), t.Tags...)
	}
	return t
}

// Project is a read-only grouping shown on the projects panel. TasksCount is
// display data and is not derived from the task list.
type Project struct {
	ID         string
	Name       string
	Color      string
	TasksCount int
}
