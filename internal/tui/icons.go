package tui

// icons maps symbolic icon names to terminal glyphs.
var icons = map[string]string{
	"CheckSquare":   "☑",
	"Calendar":      "▣",
	"CalendarDays":  "▤",
	"CalendarRange": "▥",
	"CalendarClock": "◷",
	"FolderKanban":  "▦",
	"TrendingUp":    "↗",
	"Settings":      "⚙",
	"Briefcase":     "⌂",
	"User":          "☺",
	"Heart":         "♥",
	"GraduationCap": "✎",
	"FolderOpen":    "▭",
	"Folder":        "■",
	"CheckCircle2":  "✔",
	"Zap":           "ϟ",
	"Plus":          "+",
	"Bell":          "♪",
	"Palette":       "◐",
	"Target":        "◎",
}

// icon returns the glyph for name, or a neutral dot for unknown names.
func icon(name string) string {
	if g, ok := icons[name]; ok {
		return g
	}
	return "·"
}
