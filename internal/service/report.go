package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Vizzilnt/Protracker1/internal/models"
)

// ReportModel is the presentation-ready report for one date range. It is pure
// data; the PDF and CLI renderers draw it without further computation.
type ReportModel struct {
	UserName    string
	StartDate   string
	EndDate     string
	GeneratedAt time.Time

	TotalMinutes int
	TotalLabel   string
	ChartSeries  []ChartPoint
	Summary      []SummaryRow
	Log          []LogRow

	CompletedToDos []ToDoRow
	PendingToDos   []ToDoRow
}

// ChartPoint is one slice/bar of the per-quadrant duration chart.
type ChartPoint struct {
	Type    models.TaskType
	Label   string
	Minutes int
	Color   string
}

// SummaryRow is one line of the activity summary table. Percent is empty when
// the range holds no logged time.
type SummaryRow struct {
	Label    string
	Duration string
	Percent  string
}

// LogRow is one line of the detailed activity log table.
type LogRow struct {
	Date        string
	TimeRange   string
	TypeLabel   string
	Description string
	Duration    string
}

// ToDoRow is one line of the planner overview tables.
type ToDoRow struct {
	Deadline string
	Category string
	Text     string
	Notes    string
}

// FormatMinutes renders a duration as "2 hrs, 30 mins", dropping whichever
// part is zero.
func FormatMinutes(minutes int) string {
	hrs := minutes / 60
	mins := minutes % 60
	if hrs == 0 {
		return fmt.Sprintf("%d mins", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%d hrs", hrs)
	}
	return fmt.Sprintf("%d hrs, %d mins", hrs, mins)
}

// BuildReport shapes the report for [startDate, endDate]. Tasks are filtered
// and totalled by Aggregate; planner items are relevant when their deadline,
// or creation date for deadline-less items, falls inside the range.
func BuildReport(tasks []models.Task, todos []models.ToDoItem, startDate, endDate, userName string, now time.Time) ReportModel {
	sum := Aggregate(tasks, startDate, endDate)

	report := ReportModel{
		UserName:     userName,
		StartDate:    startDate,
		EndDate:      endDate,
		GeneratedAt:  now,
		TotalMinutes: sum.TotalMinutes,
		TotalLabel:   FormatMinutes(sum.TotalMinutes),
	}

	for _, typ := range sum.SortedTypes() {
		minutes := sum.ByType[typ]
		report.ChartSeries = append(report.ChartSeries, ChartPoint{
			Type:    typ,
			Label:   typ.Label(),
			Minutes: minutes,
			Color:   models.TaskTypeColors[typ],
		})

		row := SummaryRow{Label: typ.Label(), Duration: FormatMinutes(minutes)}
		if sum.TotalMinutes > 0 {
			row.Percent = fmt.Sprintf("%.1f%%", float64(minutes)/float64(sum.TotalMinutes)*100)
		}
		report.Summary = append(report.Summary, row)
	}

	// The detailed log orders by date alone, newest first. The task-list view
	// composes date and start time instead; the two orderings are distinct on
	// purpose.
	logTasks := append([]models.Task(nil), sum.Filtered...)
	sort.SliceStable(logTasks, func(i, j int) bool {
		return logTasks[i].Date > logTasks[j].Date
	})
	for _, task := range logTasks {
		report.Log = append(report.Log, LogRow{
			Date:        task.Date,
			TimeRange:   task.StartTime + " - " + task.EndTime,
			TypeLabel:   task.Type.Label(),
			Description: task.Description,
			Duration:    FormatMinutes(task.DurationMinutes),
		})
	}

	for _, item := range todos {
		target := item.Deadline
		if target == "" {
			target = creationDate(item)
		}
		if target < startDate || target > endDate {
			continue
		}
		row := ToDoRow{
			Deadline: item.Deadline,
			Category: item.Category.Label(),
			Text:     item.Text,
			Notes:    item.Notes,
		}
		if row.Deadline == "" {
			row.Deadline = "No Deadline"
		}
		if row.Notes == "" {
			row.Notes = "-"
		}
		if item.Completed {
			report.CompletedToDos = append(report.CompletedToDos, row)
		} else {
			report.PendingToDos = append(report.PendingToDos, row)
		}
	}

	return report
}

func creationDate(item models.ToDoItem) string {
	if i := strings.IndexByte(item.CreatedAt, 'T'); i > 0 {
		return item.CreatedAt[:i]
	}
	return item.CreatedAt
}
