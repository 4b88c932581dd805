package service

import (
	"sort"

	"github.com/Vizzilnt/Protracker1/internal/models"
)

// Summary is the aggregate of a date-range slice of the task log.
type Summary struct {
	Filtered       []models.Task
	TotalMinutes   int
	ByType         map[models.TaskType]int
	TotalHours     float64
	AverageMinutes float64
}

// Aggregate filters tasks to the inclusive [startDate, endDate] range and
// totals durations per quadrant. Quadrants absent from the range are omitted
// from ByType rather than zero-filled, and the average is defined as zero for
// an empty range.
func Aggregate(tasks []models.Task, startDate, endDate string) Summary {
	sum := Summary{ByType: map[models.TaskType]int{}}

	for _, task := range tasks {
		if task.Date < startDate || task.Date > endDate {
			continue
		}
		sum.Filtered = append(sum.Filtered, task)
		sum.TotalMinutes += task.DurationMinutes
		sum.ByType[task.Type] += task.DurationMinutes
	}

	sum.TotalHours = float64(sum.TotalMinutes) / 60
	if n := len(sum.Filtered); n > 0 {
		sum.AverageMinutes = float64(sum.TotalMinutes) / float64(n)
	}
	return sum
}

// SortedTypes returns the quadrants present in ByType in display order.
func (s Summary) SortedTypes() []models.TaskType {
	types := make([]models.TaskType, 0, len(s.ByType))
	for _, typ := range models.TaskTypes {
		if _, ok := s.ByType[typ]; ok {
			types = append(types, typ)
		}
	}
	// Codes outside the known set keep deterministic order at the tail.
	var extra []models.TaskType
	for typ := range s.ByType {
		if !typ.Valid() {
			extra = append(extra, typ)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(types, extra...)
}
