package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vizzilnt/Protracker1/internal/logger"
	"github.com/Vizzilnt/Protracker1/internal/models"
)

var (
	ErrEmptyDescription    = errors.New("description is required")
	ErrInvalidType         = errors.New("unknown task type")
	ErrNonPositiveDuration = errors.New("end time must be after start time")
)

// TaskStore is the slice of persistence the task log needs.
type TaskStore interface {
	LoadTasks() []models.Task
	SaveTasks([]models.Task) error
}

// Tasks owns the activity log.
type Tasks struct {
	store TaskStore
	now   func() time.Time
	newID func() string
}

func NewTasks(s TaskStore) *Tasks {
	return &Tasks{store: s, now: time.Now, newID: uuid.NewString}
}

// WithClock replaces the time source, for deterministic tests.
func (t *Tasks) WithClock(now func() time.Time) *Tasks {
	t.now = now
	return t
}

// ComputeDuration returns end minus start in minutes, both "15:04" strings,
// clamped to zero when end does not follow start.
func ComputeDuration(start, end string) (int, error) {
	startMin, err := minutesOfDay(start)
	if err != nil {
		return 0, err
	}
	endMin, err := minutesOfDay(end)
	if err != nil {
		return 0, err
	}
	if d := endMin - startMin; d > 0 {
		return d, nil
	}
	return 0, nil
}

func minutesOfDay(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("bad time %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Create validates and persists a new log entry. An entry whose computed
// duration is not positive is rejected and never stored.
func (t *Tasks) Create(date, start, end, description string, typ models.TaskType) (models.Task, error) {
	task, err := t.build(date, start, end, description, typ)
	if err != nil {
		return models.Task{}, err
	}
	task.ID = t.newID()

	tasks := append(t.store.LoadTasks(), task)
	if err := t.store.SaveTasks(tasks); err != nil {
		return models.Task{}, err
	}
	logger.Info("task logged", zap.String("id", task.ID), zap.Int("minutes", task.DurationMinutes))
	return task, nil
}

// Replace is the full-record edit: the stored task with the same id is
// swapped for the validated replacement. Unknown ids leave the log unchanged.
func (t *Tasks) Replace(id, date, start, end, description string, typ models.TaskType) (models.Task, error) {
	task, err := t.build(date, start, end, description, typ)
	if err != nil {
		return models.Task{}, err
	}
	task.ID = id

	tasks := t.store.LoadTasks()
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i] = task
			return task, t.store.SaveTasks(tasks)
		}
	}
	return models.Task{}, nil
}

func (t *Tasks) build(date, start, end, description string, typ models.TaskType) (models.Task, error) {
	if strings.TrimSpace(description) == "" {
		return models.Task{}, ErrEmptyDescription
	}
	if !typ.Valid() {
		return models.Task{}, ErrInvalidType
	}
	if _, err := time.Parse(isoDate, date); err != nil {
		return models.Task{}, fmt.Errorf("bad date %q: %w", date, err)
	}
	minutes, err := ComputeDuration(start, end)
	if err != nil {
		return models.Task{}, err
	}
	if minutes <= 0 {
		return models.Task{}, ErrNonPositiveDuration
	}
	return models.Task{
		Date:            date,
		StartTime:       start,
		EndTime:         end,
		Description:     description,
		Type:            typ,
		DurationMinutes: minutes,
	}, nil
}

// Delete removes the matching task. Deleting an absent id is a no-op.
func (t *Tasks) Delete(id string) error {
	tasks := t.store.LoadTasks()
	kept := tasks[:0]
	for _, task := range tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	if len(kept) == len(tasks) {
		return nil
	}
	return t.store.SaveTasks(kept)
}

// List returns the log newest first, ordered by the composed date+start-time
// key.
func (t *Tasks) List() []models.Task {
	tasks := t.store.LoadTasks()
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Date+tasks[i].StartTime > tasks[j].Date+tasks[j].StartTime
	})
	return tasks
}

// Overrun marks entries long enough to highlight in listings: anything over
// three hours.
func Overrun(task models.Task) bool {
	return task.DurationMinutes > 180
}

// LogInterval records a task from two wall-clock instants, as the timer-stop
// action does. The date comes from the start instant.
func (t *Tasks) LogInterval(start, end time.Time, description string, typ models.TaskType) (models.Task, error) {
	return t.Create(start.Format(isoDate), start.Format("15:04"), end.Format("15:04"), description, typ)
}

// ImportFromToDo logs a task from a pending planner item, copying its text
// and mapping its category onto the log quadrant. With markDone the source
// item is completed in the same step. Completed items are not importable and
// are treated like unknown ids.
func (t *Tasks) ImportFromToDo(planner *Planner, todoID, date, start, end string, markDone bool) (models.Task, error) {
	item, ok := planner.Find(todoID)
	if !ok || item.Completed {
		return models.Task{}, nil
	}

	task, err := t.Create(date, start, end, item.Text, item.Category.TaskType())
	if err != nil {
		return models.Task{}, err
	}
	if markDone {
		if err := planner.Toggle(todoID); err != nil {
			return task, err
		}
	}
	return task, nil
}
