package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/taskflow/internal/tracker"
)

// MemoryDatabase keeps the store in memory for the lifetime of the process.
const MemoryDatabase = ":memory:"

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	UI       UIConfig
	Settings SettingsConfig
}

// DatabaseConfig holds sqlite settings. Path ":memory:" keeps nothing on disk.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path       string
	Level      string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartTab        string `mapstructure:"start_tab"`
	ReferenceDate   string `mapstructure:"reference_date"`
	DefaultCategory string `mapstructure:"default_category"`
}

// SettingsConfig seeds the values on the settings panel.
type SettingsConfig struct {
	TaskReminders bool `mapstructure:"task_reminders"`
	WeeklyReport  bool `mapstructure:"weekly_report"`
	Push          bool
	DarkTheme     bool `mapstructure:"dark_theme"`
	CompactView   bool `mapstructure:"compact_view"`
	DailyGoal     int  `mapstructure:"daily_goal"`
	WeeklyGoal    int  `mapstructure:"weekly_goal"`
}

// Load reads configuration from file and env. Env var overrides use prefix TASKFLOW_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TASKFLOW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "taskflow"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TASKFLOW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit TASKFLOW_CONFIG must exist
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	d := tracker.DefaultSettings()

	v.SetDefault("database.path", MemoryDatabase)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "taskflow", "taskflow.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("ui.start_tab", string(tracker.TabToday))
	v.SetDefault("ui.reference_date", tracker.DefaultReferenceDate)
	v.SetDefault("ui.default_category", string(tracker.CategoryWork))
	v.SetDefault("settings.task_reminders", d.TaskReminders)
	v.SetDefault("settings.weekly_report", d.WeeklyReport)
	v.SetDefault("settings.push", d.Push)
	v.SetDefault("settings.dark_theme", d.DarkTheme)
	v.SetDefault("settings.compact_view", d.CompactView)
	v.SetDefault("settings.daily_goal", d.DailyGoal)
	v.SetDefault("settings.weekly_goal", d.WeeklyGoal)
}

// Validate checks the values that name tabs, categories and dates.
func (c Config) Validate() error {
	if _, err := tracker.ParseTab(c.UI.StartTab); err != nil {
		return fmt.Errorf("ui.start_tab: %w", err)
	}
	if _, err := tracker.ParseCategory(c.UI.DefaultCategory); err != nil {
		return fmt.Errorf("ui.default_category: %w", err)
	}
	if _, err := time.Parse(tracker.DateLayout, c.UI.ReferenceDate); err != nil {
		return fmt.Errorf("ui.reference_date: want YYYY-MM-DD, got %q", c.UI.ReferenceDate)
	}
	if c.Settings.DailyGoal < 0 || c.Settings.WeeklyGoal < 0 {
		return fmt.Errorf("settings: goals must not be negative")
	}
	return nil
}

// StartTab returns the validated start tab.
func (c Config) StartTab() tracker.Tab {
	t, _ := tracker.ParseTab(c.UI.StartTab)
	return t
}

// DefaultCategory returns the validated default category.
func (c Config) DefaultCategory() tracker.Category {
	cat, _ := tracker.ParseCategory(c.UI.DefaultCategory)
	return cat
}

// TrackerSettings converts the settings section into dashboard settings.
func (c Config) TrackerSettings() tracker.Settings {
	s := c.Settings
	return tracker.Settings{
		TaskReminders: s.TaskReminders,
		WeeklyReport:  s.WeeklyReport,
		Push:          s.Push,
		DarkTheme:     s.DarkTheme,
		CompactView:   s.CompactView,
		DailyGoal:     s.DailyGoal,
		WeeklyGoal:    s.WeeklyGoal,
	}
}
