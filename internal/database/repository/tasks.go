package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/taskflow/internal/tracker"
)

// TaskRepo stores tasks and their tags. Rows are ordered by position; new
// tasks take a position below the current minimum so they list first.
type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo { return &TaskRepo{db: db} }

// Prepend inserts t ahead of every stored task.
func (r *TaskRepo) Prepend(ctx context.Context, t tracker.Task) error {
	return r.insert(ctx, t, `SELECT COALESCE(MIN(position), 1) - 1 FROM tasks`)
}

// Append inserts t after every stored task.
func (r *TaskRepo) Append(ctx context.Context, t tracker.Task) error {
	return r.insert(ctx, t, `SELECT COALESCE(MAX(position), -1) + 1 FROM tasks`)
}

func (r *TaskRepo) insert(ctx context.Context, t tracker.Task, positionQuery string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var pos int64
		if err := tx.QueryRowContext(ctx, positionQuery).Scan(&pos); err != nil {
			return fmt.Errorf("next position: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO tasks(id, title, completed, category, due_date, priority, position)
		VALUES (?, ?, ?, ?, ?, ?, ?);
		`, t.ID, t.Title, t.Completed, string(t.Category), t.DueDate, string(t.Priority), pos); err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
		for i, tag := range t.Tags {
			if _, err := tx.ExecContext(ctx, `INSERT INTO task_tags(task_id, position, name) VALUES (?, ?, ?)`, t.ID, i, tag); err != nil {
				return fmt.Errorf("insert tag: %w", err)
			}
		}
		return nil
	})
}

// SetCompleted updates the completed flag. A missing id is not an error.
func (r *TaskRepo) SetCompleted(ctx context.Context, id string, completed bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = ? WHERE id = ?`, completed, id)
	return err
}

func (r *TaskRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n)
	return n, err
}

// List returns every task in display order with its tags.
func (r *TaskRepo) List(ctx context.Context) ([]tracker.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, title, completed, category, due_date, priority
	FROM tasks ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []tracker.Task
	index := map[string]int{}
	for rows.Next() {
		var t tracker.Task
		var category, priority string
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &category, &t.DueDate, &priority); err != nil {
			return nil, err
		}
		t.Category = tracker.Category(category)
		t.Priority = tracker.Priority(priority)
		t.Tags = []string{}
		index[t.ID] = len(out)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tagRows, err := r.db.QueryContext(ctx, `SELECT task_id, name FROM task_tags ORDER BY task_id, position`)
	if err != nil {
		return nil, err
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var taskID, name string
		if err := tagRows.Scan(&taskID, &name); err != nil {
			return nil, err
		}
		if i, ok := index[taskID]; ok {
			out[i].Tags = append(out[i].Tags, name)
		}
	}
	return out, tagRows.Err()
}
