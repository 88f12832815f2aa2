package tracker

// Settings holds the user preferences shown on the settings panel. They live
// in memory only.
type Settings struct {
	TaskReminders bool
	WeeklyReport  bool
	Push          bool
	DarkTheme     bool
	CompactView   bool
	DailyGoal     int
	WeeklyGoal    int
}

func DefaultSettings() Settings {
	return Settings{
		TaskReminders: true,
		WeeklyReport:  true,
		Push:          false,
		DarkTheme:     true,
		CompactView:   false,
		DailyGoal:     5,
		WeeklyGoal:    30,
	}
}

// SettingKind tells the UI how to edit a setting.
type SettingKind int

const (
	SettingToggle SettingKind = iota
	SettingNumber
)

// SettingField describes one editable row on the settings panel.
type SettingField struct {
	Group string
	Icon  string
	Label string
	Kind  SettingKind
	Get   func(Settings) int
	Set   func(*Settings, int)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SettingFields lists the settings rows in display order.
func SettingFields() []SettingField {
	return []SettingField{
		{Group: "Notifications", Icon: "Bell", Label: "Task reminders", Kind: SettingToggle,
			Get: func(s Settings) int { return boolInt(s.TaskReminders) },
			Set: func(s *Settings, v int) { s.TaskReminders = v != 0 }},
		{Group: "Notifications", Icon: "Bell", Label: "Weekly report", Kind: SettingToggle,
			Get: func(s Settings) int { return boolInt(s.WeeklyReport) },
			Set: func(s *Settings, v int) { s.WeeklyReport = v != 0 }},
		{Group: "Notifications", Icon: "Bell", Label: "Push notifications", Kind: SettingToggle,
			Get: func(s Settings) int { return boolInt(s.Push) },
			Set: func(s *Settings, v int) { s.Push = v != 0 }},
		{Group: "Appearance", Icon: "Palette", Label: "Dark theme", Kind: SettingToggle,
			Get: func(s Settings) int { return boolInt(s.DarkTheme) },
			Set: func(s *Settings, v int) { s.DarkTheme = v != 0 }},
		{Group: "Appearance", Icon: "Palette", Label: "Compact view", Kind: SettingToggle,
			Get: func(s Settings) int { return boolInt(s.CompactView) },
			Set: func(s *Settings, v int) { s.CompactView = v != 0 }},
		{Group: "Goals", Icon: "Target", Label: "Tasks per day", Kind: SettingNumber,
			Get: func(s Settings) int { return s.DailyGoal },
			Set: func(s *Settings, v int) { s.DailyGoal = max(0, v) }},
		{Group: "Goals", Icon: "Target", Label: "Tasks per week", Kind: SettingNumber,
			Get: func(s Settings) int { return s.WeeklyGoal },
			Set: func(s *Settings, v int) { s.WeeklyGoal = max(0, v) }},
	}
}
