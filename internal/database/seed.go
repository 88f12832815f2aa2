package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/taskflow/internal/database/repository"
	"github.com/jask/taskflow/internal/tracker"
)

// SeedDefaults fills an empty database with the starter tasks and projects.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	tasks := repository.NewTaskRepo(db)
	n, err := tasks.Count(ctx)
	if err != nil {
		return fmt.Errorf("count tasks: %w", err)
	}
	if n == 0 {
		for _, t := range tracker.SeedTasks() {
			if err := tasks.Append(ctx, t); err != nil {
				return fmt.Errorf("seed task %s: %w", t.ID, err)
			}
		}
	}

	projects := repository.NewProjectRepo(db)
	existing, err := projects.List(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for idx, p := range tracker.SeedProjects() {
		if err := projects.Upsert(ctx, p, idx); err != nil {
			return fmt.Errorf("seed project %s: %w", p.ID, err)
		}
	}
	return nil
}
