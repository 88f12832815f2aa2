package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/jask/taskflow/internal/config"
	"github.com/jask/taskflow/internal/database"
	"github.com/jask/taskflow/internal/database/repository"
	"github.com/jask/taskflow/internal/logging"
	"github.com/jask/taskflow/internal/tracker"
	"github.com/jask/taskflow/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskflow: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()
	log.WithField("database", cfg.Database.Path).Info("starting")

	if cfg.Database.Path != config.MemoryDatabase {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
			return fmt.Errorf("mkdir db dir: %w", err)
		}
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	taskRepo := repository.NewTaskRepo(db)
	tasks, err := taskRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	projects, err := repository.NewProjectRepo(db).List(ctx)
	if err != nil {
		return fmt.Errorf("load projects: %w", err)
	}

	dash := tracker.NewDashboard(
		tracker.WithReferenceDate(cfg.UI.ReferenceDate),
		tracker.WithSettings(cfg.TrackerSettings()),
		tracker.WithStartTab(cfg.StartTab()),
	)
	dash.Load(tasks, projects)
	log.WithField("tasks", len(tasks)).WithField("projects", len(projects)).Info("dashboard loaded")

	p := tea.NewProgram(tui.New(ctx, dash, taskRepo, log, cfg.DefaultCategory()),
		tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	log.Info("exiting")
	return nil
}
