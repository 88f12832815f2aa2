package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jask/taskflow/internal/tracker"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKFLOW_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != MemoryDatabase {
		t.Errorf("database.path = %q, want %q", cfg.Database.Path, MemoryDatabase)
	}
	if cfg.StartTab() != tracker.TabToday {
		t.Errorf("start tab = %q", cfg.StartTab())
	}
	if cfg.UI.ReferenceDate != tracker.DefaultReferenceDate {
		t.Errorf("reference date = %q", cfg.UI.ReferenceDate)
	}
	if cfg.DefaultCategory() != tracker.CategoryWork {
		t.Errorf("default category = %q", cfg.DefaultCategory())
	}
	if got := cfg.TrackerSettings(); got != tracker.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", got)
	}
	if !strings.HasSuffix(cfg.Log.Path, filepath.Join("taskflow", "taskflow.log")) {
		t.Errorf("log path = %q", cfg.Log.Path)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKFLOW_CONFIG", writeConfig(t, `
[ui]
start_tab = "projects"
default_category = "health"

[settings]
push = true
daily_goal = 8
`))
	t.Setenv("TASKFLOW_UI_REFERENCE_DATE", "2026-03-01")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StartTab() != tracker.TabProjects {
		t.Errorf("start tab = %q", cfg.StartTab())
	}
	if cfg.DefaultCategory() != tracker.CategoryHealth {
		t.Errorf("default category = %q", cfg.DefaultCategory())
	}
	if cfg.UI.ReferenceDate != "2026-03-01" {
		t.Errorf("reference date = %q", cfg.UI.ReferenceDate)
	}
	s := cfg.TrackerSettings()
	if !s.Push || s.DailyGoal != 8 || s.WeeklyGoal != 30 {
		t.Errorf("settings = %+v", s)
	}
}

func TestLoadRejectsUnknownTab(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKFLOW_CONFIG", writeConfig(t, "[ui]\nstart_tab = \"stat\"\n"))

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for unknown tab")
	}
	if !strings.Contains(err.Error(), `did you mean "stats"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKFLOW_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	base := Config{UI: UIConfig{StartTab: "today", ReferenceDate: "2025-11-14", DefaultCategory: "work"}}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := base
	bad.UI.ReferenceDate = "14.11.2025"
	if err := bad.Validate(); err == nil {
		t.Error("expected bad date to fail")
	}

	bad = base
	bad.UI.DefaultCategory = "hobby"
	if err := bad.Validate(); err == nil {
		t.Error("expected unknown category to fail")
	}

	bad = base
	bad.Settings.WeeklyGoal = -1
	if err := bad.Validate(); err == nil {
		t.Error("expected negative goal to fail")
	}
}
