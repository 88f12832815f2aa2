package widgets

// Checkbox renders a checked or empty box.
func Checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
