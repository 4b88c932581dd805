package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vizzilnt/Protracker1/internal/models"
)

func TestFormatMinutesElision(t *testing.T) {
	assert.Equal(t, "45 mins", FormatMinutes(45))
	assert.Equal(t, "2 hrs", FormatMinutes(120))
	assert.Equal(t, "2 hrs, 30 mins", FormatMinutes(150))
	assert.Equal(t, "0 mins", FormatMinutes(0))
}

func TestBuildReportSummaryPercentages(t *testing.T) {
	tasks := []models.Task{
		{Date: "2024-01-01", DurationMinutes: 90, Type: models.TypeImportant},
		{Date: "2024-01-02", DurationMinutes: 30, Type: models.TypeUrgent},
	}

	r := BuildReport(tasks, nil, "2024-01-01", "2024-01-07", "Ada", time.Now())

	require.Len(t, r.Summary, 2)
	assert.Equal(t, "Important", r.Summary[0].Label)
	assert.Equal(t, "1 hrs, 30 mins", r.Summary[0].Duration)
	assert.Equal(t, "75.0%", r.Summary[0].Percent)
	assert.Equal(t, "25.0%", r.Summary[1].Percent)
	assert.Equal(t, "2 hrs", r.TotalLabel)
}

func TestBuildReportOmitsPercentOnZeroTotal(t *testing.T) {
	r := BuildReport(nil, nil, "2024-01-01", "2024-01-07", "Ada", time.Now())

	assert.Empty(t, r.Summary)
	assert.Zero(t, r.TotalMinutes)
	assert.Equal(t, "0 mins", r.TotalLabel)
}

func TestBuildReportLogSortsByDateOnly(t *testing.T) {
	// Same-date rows keep their stored order: the detailed log orders by
	// date alone, unlike the task-list view.
	tasks := []models.Task{
		{ID: "1", Date: "2024-01-01", StartTime: "09:00", DurationMinutes: 30, Type: models.TypeImportant},
		{ID: "2", Date: "2024-01-02", StartTime: "08:00", EndTime: "08:30", DurationMinutes: 30, Type: models.TypeImportant},
		{ID: "3", Date: "2024-01-02", StartTime: "15:00", EndTime: "15:30", DurationMinutes: 30, Type: models.TypeImportant},
	}

	r := BuildReport(tasks, nil, "2024-01-01", "2024-01-07", "Ada", time.Now())

	require.Len(t, r.Log, 3)
	assert.Equal(t, "2024-01-02", r.Log[0].Date)
	assert.Equal(t, "08:00 - 08:30", r.Log[0].TimeRange)
	assert.Equal(t, "2024-01-02", r.Log[1].Date)
	assert.Equal(t, "2024-01-01", r.Log[2].Date)
}

func TestBuildReportPlannerSection(t *testing.T) {
	todos := []models.ToDoItem{
		{ID: "1", Text: "done in range", Completed: true, Deadline: "2024-01-03", Category: models.CategoryImportant},
		{ID: "2", Text: "pending in range", CreatedAt: "2024-01-05T10:00:00Z", Category: models.CategoryUrgent, Notes: "call first"},
		{ID: "3", Text: "outside range", Deadline: "2024-02-01", Category: models.CategoryUrgent},
	}

	r := BuildReport(nil, todos, "2024-01-01", "2024-01-07", "Ada", time.Now())

	require.Len(t, r.CompletedToDos, 1)
	assert.Equal(t, "2024-01-03", r.CompletedToDos[0].Deadline)
	assert.Equal(t, "-", r.CompletedToDos[0].Notes)

	require.Len(t, r.PendingToDos, 1)
	assert.Equal(t, "No Deadline", r.PendingToDos[0].Deadline)
	assert.Equal(t, "call first", r.PendingToDos[0].Notes)
	assert.Equal(t, "Urgent (Not Important)", r.PendingToDos[0].Category)
}

func TestBuildReportChartSeries(t *testing.T) {
	tasks := []models.Task{
		{Date: "2024-01-01", DurationMinutes: 60, Type: models.TypeUrgentImportant},
	}

	r := BuildReport(tasks, nil, "2024-01-01", "2024-01-01", "Ada", time.Now())

	require.Len(t, r.ChartSeries, 1)
	assert.Equal(t, models.TypeUrgentImportant, r.ChartSeries[0].Type)
	assert.Equal(t, "Urgent & Important", r.ChartSeries[0].Label)
	assert.Equal(t, 60, r.ChartSeries[0].Minutes)
	assert.Equal(t, "#e11d48", r.ChartSeries[0].Color)
}
