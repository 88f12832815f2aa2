package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/taskflow/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "taskflow.log")
	log, closer, err := New(config.LogConfig{Path: path, Level: "debug", MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)

	log.WithField("task_id", "42").Debug("task toggled")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	require.True(t, strings.Contains(line, `msg="task toggled"`), line)
	require.Contains(t, line, "task_id=42")
	require.Contains(t, line, "level=debug")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	require.ErrorContains(t, err, "log level")
}

func TestNewRejectsEmptyPath(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "info"})
	require.Error(t, err)
}
