package tracker

import "strings"

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Marker is the glyph shown in front of the priority badge.
func (p Priority) Marker() string {
	switch p {
	case PriorityHigh:
		return "🔴"
	case PriorityMedium:
		return "🟡"
	case PriorityLow:
		return "🟢"
	}
	return ""
}

// ParsePriority resolves a priority value, case-insensitively.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if p.Valid() {
		return p, nil
	}
	return "", unknownValueError("priority", s, []string{"low", "medium", "high"})
}

// Presentation classes returned by PriorityColor.
const (
	ColorRed    = "red"
	ColorYellow = "yellow"
	ColorGreen  = "green"
	ColorGray   = "gray"
)

// PriorityColor maps any priority string to a presentation class. Unknown
// input falls back to gray.
func PriorityColor(priority string) string {
	switch Priority(priority) {
	case PriorityHigh:
		return ColorRed
	case PriorityMedium:
		return ColorYellow
	case PriorityLow:
		return ColorGreen
	default:
		return ColorGray
	}
}
