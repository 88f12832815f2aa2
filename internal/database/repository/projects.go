package repository

import (
	"context"
	"database/sql"

	"github.com/jask/taskflow/internal/tracker"
)

// ProjectRepo handles projects.
type ProjectRepo struct {
	db *sql.DB
}

func NewProjectRepo(db *sql.DB) *ProjectRepo { return &ProjectRepo{db: db} }

func (r *ProjectRepo) Upsert(ctx context.Context, p tracker.Project, sortOrder int) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO projects(id, name, color, tasks_count, sort_order) VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET name=excluded.name, color=excluded.color,
		tasks_count=excluded.tasks_count, sort_order=excluded.sort_order;
	`, p.ID, p.Name, p.Color, p.TasksCount, sortOrder)
	return err
}

func (r *ProjectRepo) List(ctx context.Context) ([]tracker.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color, tasks_count FROM projects ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []tracker.Project
	for rows.Next() {
		var p tracker.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Color, &p.TasksCount); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
