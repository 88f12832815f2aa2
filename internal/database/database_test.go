package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/taskflow/internal/database/repository"
	"github.com/jask/taskflow/internal/tracker"
)

func openMigrated(t *testing.T, path string) *repository.TaskRepo {
	t.Helper()
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))
	require.NoError(t, SeedDefaults(context.Background(), db))
	return repository.NewTaskRepo(db)
}

func TestSeedDefaultsInMemory(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))
	t.Log("migrations applied")

	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, SeedDefaults(ctx, db), "seeding twice must be a no-op")

	tasks, err := repository.NewTaskRepo(db).List(ctx)
	require.NoError(t, err)
	require.Equal(t, tracker.SeedTasks(), tasks)

	projects, err := repository.NewProjectRepo(db).List(ctx)
	require.NoError(t, err)
	require.Equal(t, tracker.SeedProjects(), projects)
}

func TestRunMigrationsTwice(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	var one int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&one))
	require.Equal(t, 1, one)
}

func TestPrependAndToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openMigrated(t, ":memory:")

	first := tracker.Task{ID: "a", Title: "first", Category: tracker.CategoryWork, Tags: []string{}, DueDate: "2025-11-14", Priority: tracker.PriorityMedium}
	second := tracker.Task{ID: "b", Title: "second", Category: tracker.CategoryLearning, Tags: []string{"x", "y"}, DueDate: "2025-11-15", Priority: tracker.PriorityHigh}
	require.NoError(t, repo.Prepend(ctx, first))
	require.NoError(t, repo.Prepend(ctx, second))
	require.NoError(t, repo.SetCompleted(ctx, "a", true))
	require.NoError(t, repo.SetCompleted(ctx, "missing", true))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 5)
	require.Equal(t, "b", tasks[0].ID)
	require.Equal(t, []string{"x", "y"}, tasks[0].Tags)
	require.Equal(t, "a", tasks[1].ID)
	require.True(t, tasks[1].Completed)
	require.Equal(t, "1", tasks[2].ID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestRejectsUnknownPriority(t *testing.T) {
	repo := openMigrated(t, ":memory:")
	err := repo.Prepend(context.Background(), tracker.Task{ID: "z", Title: "bad", Category: tracker.CategoryWork, Tags: []string{"x"}, DueDate: "2025-11-14", Priority: "urgent"})
	require.Error(t, err)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, n, "failed insert must roll back")
}

func TestFileDatabaseSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "taskflow.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db))
	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, repository.NewTaskRepo(db).SetCompleted(ctx, "2", true))
	require.NoError(t, db.Close())

	repo := openMigrated(t, path)
	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.True(t, tasks[1].Completed)
}
