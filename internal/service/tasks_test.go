package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vizzilnt/Protracker1/internal/models"
)

func TestComputeDuration(t *testing.T) {
	mins, err := ComputeDuration("09:15", "11:45")
	require.NoError(t, err)
	assert.Equal(t, 150, mins)

	mins, err = ComputeDuration("12:00", "12:00")
	require.NoError(t, err)
	assert.Zero(t, mins)

	// end before start clamps to zero
	mins, err = ComputeDuration("14:00", "13:00")
	require.NoError(t, err)
	assert.Zero(t, mins)

	_, err = ComputeDuration("25:00", "13:00")
	assert.Error(t, err)
}

func TestCreateRejectsNonPositiveDuration(t *testing.T) {
	s := &memStore{}
	svc := NewTasks(s)

	_, err := svc.Create("2024-01-01", "10:00", "10:00", "standup", models.TypeImportant)

	assert.ErrorIs(t, err, ErrNonPositiveDuration)
	assert.Zero(t, s.taskSaves)
}

func TestCreateRejectsEmptyDescription(t *testing.T) {
	s := &memStore{}
	svc := NewTasks(s)

	_, err := svc.Create("2024-01-01", "10:00", "11:00", "  ", models.TypeImportant)

	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func TestCreateComputesDuration(t *testing.T) {
	s := &memStore{}
	svc := NewTasks(s)

	task, err := svc.Create("2024-01-01", "09:00", "10:30", "deep work", models.TypeUrgentImportant)

	require.NoError(t, err)
	assert.Equal(t, 90, task.DurationMinutes)
	assert.NotEmpty(t, task.ID)
	require.Len(t, s.tasks, 1)
	assert.Equal(t, task, s.tasks[0])
}

func TestReplaceUnknownIDLeavesLogUnchanged(t *testing.T) {
	s := &memStore{tasks: []models.Task{{ID: "a", Description: "old"}}}
	svc := NewTasks(s)

	task, err := svc.Replace("missing", "2024-01-01", "09:00", "10:00", "new", models.TypeImportant)

	require.NoError(t, err)
	assert.Empty(t, task.ID)
	assert.Equal(t, "old", s.tasks[0].Description)
	assert.Zero(t, s.taskSaves)
}

func TestListNewestFirstByDateAndTime(t *testing.T) {
	s := &memStore{tasks: []models.Task{
		{ID: "1", Date: "2024-01-01", StartTime: "09:00"},
		{ID: "2", Date: "2024-01-02", StartTime: "08:00"},
		{ID: "3", Date: "2024-01-01", StartTime: "15:00"},
	}}
	svc := NewTasks(s)

	got := svc.List()

	require.Len(t, got, 3)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
	assert.Equal(t, "1", got[2].ID)
}

func TestOverrunThreshold(t *testing.T) {
	assert.False(t, Overrun(models.Task{DurationMinutes: 180}))
	assert.True(t, Overrun(models.Task{DurationMinutes: 181}))
}

func TestImportFromToDo(t *testing.T) {
	s := &memStore{todos: []models.ToDoItem{
		{ID: "todo-1", Text: "prepare slides", Category: models.CategoryUrgent},
	}}
	planner := NewPlanner(s)
	svc := NewTasks(s)

	task, err := svc.ImportFromToDo(planner, "todo-1", "2024-01-05", "10:00", "11:00", true)

	require.NoError(t, err)
	assert.Equal(t, "prepare slides", task.Description)
	assert.Equal(t, models.TypeUrgent, task.Type)
	assert.True(t, s.todos[0].Completed)
}

func TestImportFromToDoSkipsCompleted(t *testing.T) {
	s := &memStore{todos: []models.ToDoItem{
		{ID: "todo-1", Text: "prepare slides", Category: models.CategoryUrgent, Completed: true},
	}}
	planner := NewPlanner(s)
	svc := NewTasks(s)

	task, err := svc.ImportFromToDo(planner, "todo-1", "2024-01-05", "10:00", "11:00", true)

	require.NoError(t, err)
	assert.Empty(t, task.ID)
	assert.Zero(t, s.taskSaves)
	assert.True(t, s.todos[0].Completed)
}

func TestImportFromToDoUnknownIDIsNoOp(t *testing.T) {
	s := &memStore{}
	planner := NewPlanner(s)
	svc := NewTasks(s)

	task, err := svc.ImportFromToDo(planner, "missing", "2024-01-05", "10:00", "11:00", true)

	require.NoError(t, err)
	assert.Empty(t, task.ID)
	assert.Zero(t, s.taskSaves)
}
