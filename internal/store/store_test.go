package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vizzilnt/Protracker1/internal/models"
)

func TestTasksRoundTrip(t *testing.T) {
	s := NewStorage(t.TempDir())

	tasks := []models.Task{
		{ID: "a", Date: "2024-01-01", StartTime: "09:00", EndTime: "10:30", Description: "review", Type: models.TypeImportant, DurationMinutes: 90},
		{ID: "b", Date: "2024-01-02", StartTime: "14:00", EndTime: "14:45", Description: "calls", Type: models.TypeUrgent, DurationMinutes: 45},
	}
	require.NoError(t, s.SaveTasks(tasks))

	assert.Equal(t, tasks, s.LoadTasks())
}

func TestToDosRoundTripOmitsEmptyOptionals(t *testing.T) {
	s := NewStorage(t.TempDir())

	todos := []models.ToDoItem{
		{ID: "1", Text: "plan sprint", Category: models.CategoryImportant, Timeframe: models.TimeframeWeekly, CreatedAt: "2024-01-01T09:00:00Z"},
		{ID: "2", Text: "file taxes", Category: models.CategoryUrgentImportant, Timeframe: models.TimeframeMonthly, CreatedAt: "2024-01-02T09:00:00Z", Deadline: "2024-04-15", Notes: "gather receipts", Icon: "doc"},
	}
	require.NoError(t, s.SaveToDos(todos))
	assert.Equal(t, todos, s.LoadToDos())

	raw, err := os.ReadFile(filepath.Join(s.BaseDir, todosFile))
	require.NoError(t, err)

	var generic []map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.NotContains(t, generic[0], "deadline")
	assert.NotContains(t, generic[0], "notes")
	assert.Contains(t, generic[1], "deadline")
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s := NewStorage(t.TempDir())

	assert.Empty(t, s.LoadTasks())
	assert.Empty(t, s.LoadToDos())
	assert.Empty(t, s.LoadUsers())
	assert.Equal(t, models.AppState{}, s.LoadState())
}

func TestLoadCorruptFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, tasksFile), []byte("{not json"), 0644))

	s := NewStorage(dir)
	assert.Empty(t, s.LoadTasks())
}

func TestStateRoundTrip(t *testing.T) {
	s := NewStorage(t.TempDir())

	state := models.AppState{SessionUserID: "u1", LastRunAt: "2024-01-05T08:00:00Z"}
	require.NoError(t, s.SaveState(state))
	assert.Equal(t, state, s.LoadState())
}

func TestDataFilesSkipsMissing(t *testing.T) {
	s := NewStorage(t.TempDir())
	assert.Empty(t, s.DataFiles())

	require.NoError(t, s.SaveTasks([]models.Task{}))
	require.NoError(t, s.SaveState(models.AppState{LastRunAt: "2024-01-01T00:00:00Z"}))

	files := s.DataFiles()
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(s.BaseDir, tasksFile), files[0])
	assert.Equal(t, filepath.Join(s.BaseDir, stateFile), files[1])
}
