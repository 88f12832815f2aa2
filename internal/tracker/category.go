package tracker

import (
	"fmt"
	"strings"
)

// Category is the fixed classification of a task.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryLearning Category = "learning"
)

// CategoryInfo is the static reference row for a category.
type CategoryInfo struct {
	Value Category
	Label string
	Icon  string
}

var categories = []CategoryInfo{
	{Value: CategoryWork, Label: "Work", Icon: "Briefcase"},
	{Value: CategoryPersonal, Label: "Personal", Icon: "User"},
	{Value: CategoryHealth, Label: "Health", Icon: "Heart"},
	{Value: CategoryLearning, Label: "Learning", Icon: "GraduationCap"},
}

// Categories returns the reference data in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// Label returns the display label, or "" for a value outside the known set.
func (c Category) Label() string {
	for _, info := range categories {
		if info.Value == c {
			return info.Label
		}
	}
	return ""
}

// Icon returns the symbolic icon name, or "" when unknown.
func (c Category) Icon() string {
	for _, info := range categories {
		if info.Value == c {
			return info.Icon
		}
	}
	return ""
}

func (c Category) Valid() bool {
	return c.Label() != ""
}

// Next cycles through the categories in display order.
func (c Category) Next() Category {
	for i, info := range categories {
		if info.Value == c {
			return categories[(i+1)%len(categories)].Value
		}
	}
	return categories[0].Value
}

// ParseCategory resolves a category value, case-insensitively.
func ParseCategory(s string) (Category, error) {
	v := Category(strings.ToLower(strings.TrimSpace(s)))
	if v.Valid() {
		return v, nil
	}
	known := Categories()
	names := make([]string, 0, len(known))
	for _, info := range known {
		names = append(names, string(info.Value))
	}
	return "", unknownValueError("category", s, names)
}

func unknownValueError(kind, got string, known []string) error {
	if hint := suggest(got, known); hint != "" {
		return fmt.Errorf("unknown %s %q (did you mean %q?)", kind, got, hint)
	}
	return fmt.Errorf("unknown %s %q (want one of %s)", kind, got, strings.Join(known, ", "))
}
