package service

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vizzilnt/Protracker1/internal/logger"
	"github.com/Vizzilnt/Protracker1/internal/models"
)

var (
	ErrEmptyText        = errors.New("text is required")
	ErrInvalidCategory  = errors.New("unknown category")
	ErrInvalidTimeframe = errors.New("unknown timeframe")
)

// ToDoStore is the slice of persistence the planner needs.
type ToDoStore interface {
	LoadToDos() []models.ToDoItem
	SaveToDos([]models.ToDoItem) error
}

// Planner owns the to-do collection: period-filtered views over it and the
// mutations that write it back.
type Planner struct {
	store ToDoStore
	now   func() time.Time
	newID func() string
}

func NewPlanner(s ToDoStore) *Planner {
	return &Planner{store: s, now: time.Now, newID: uuid.NewString}
}

// WithClock replaces the time source, for deterministic tests.
func (p *Planner) WithClock(now func() time.Time) *Planner {
	p.now = now
	return p
}

// CurrentItems filters items down to the given timeframe and period. An item
// with a deadline is shown when the deadline falls inside the period; an item
// without one is shown only while the period contains today, so it vanishes
// from past and future views.
func CurrentItems(items []models.ToDoItem, tf models.Timeframe, period Period, today string) []models.ToDoItem {
	inCurrentPeriod := period.Contains(today)

	var current []models.ToDoItem
	for _, item := range items {
		if item.Timeframe != tf {
			continue
		}
		if item.Deadline != "" {
			if period.Contains(item.Deadline) {
				current = append(current, item)
			}
		} else if inCurrentPeriod {
			current = append(current, item)
		}
	}
	return current
}

// Split partitions items into pending and completed.
func Split(items []models.ToDoItem) (pending, completed []models.ToDoItem) {
	for _, item := range items {
		if item.Completed {
			completed = append(completed, item)
		} else {
			pending = append(pending, item)
		}
	}
	return pending, completed
}

// Bucket is one quadrant column of the planner view.
type Bucket struct {
	Category models.Category
	Items    []models.ToDoItem
}

// PendingBuckets groups pending items into exactly the four quadrant buckets,
// in display order, each sorted. Empty buckets stay present.
func PendingBuckets(pending []models.ToDoItem) []Bucket {
	buckets := make([]Bucket, 0, len(models.Categories))
	for _, cat := range models.Categories {
		var items []models.ToDoItem
		for _, item := range pending {
			if item.Category == cat {
				items = append(items, item)
			}
		}
		SortItems(items)
		buckets = append(buckets, Bucket{Category: cat, Items: items})
	}
	return buckets
}

// SortItems orders a bucket in place: deadlined items first, deadlines
// ascending, ties (and the deadline-less tail) by creation time ascending.
func SortItems(items []models.ToDoItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if (a.Deadline != "") != (b.Deadline != "") {
			return a.Deadline != ""
		}
		if a.Deadline != b.Deadline {
			return a.Deadline < b.Deadline
		}
		return a.CreatedAt < b.CreatedAt
	})
}

// Overdue reports whether the item's deadline has passed, regardless of which
// period is being viewed. Completed items are never overdue.
func Overdue(item models.ToDoItem, today string) bool {
	return !item.Completed && item.Deadline != "" && item.Deadline < today
}

// Today returns the planner's current date as an ISO string.
func (p *Planner) Today() string {
	return p.now().Format(isoDate)
}

// View resolves the period for the timeframe and anchor and returns the
// period-filtered items.
func (p *Planner) View(tf models.Timeframe, anchor time.Time) (Period, []models.ToDoItem) {
	period := ResolvePeriod(anchor, tf)
	return period, CurrentItems(p.store.LoadToDos(), tf, period, p.Today())
}

// Add creates and persists a new item. When the daily view has no explicit
// deadline the period's start date becomes the deadline; other timeframes
// default to none.
func (p *Planner) Add(text string, cat models.Category, tf models.Timeframe, period Period, deadline, notes, icon string) (models.ToDoItem, error) {
	if strings.TrimSpace(text) == "" {
		return models.ToDoItem{}, ErrEmptyText
	}
	if !cat.Valid() {
		return models.ToDoItem{}, ErrInvalidCategory
	}
	if !tf.Valid() {
		return models.ToDoItem{}, ErrInvalidTimeframe
	}

	if deadline == "" && tf == models.TimeframeDaily {
		deadline = period.StartDate()
	}

	item := models.ToDoItem{
		ID:        p.newID(),
		Text:      text,
		Category:  cat,
		Timeframe: tf,
		CreatedAt: p.now().Format(time.RFC3339),
		Deadline:  deadline,
		Notes:     notes,
		Icon:      icon,
	}

	todos := append(p.store.LoadToDos(), item)
	if err := p.store.SaveToDos(todos); err != nil {
		return models.ToDoItem{}, err
	}
	logger.Info("todo added", zap.String("id", item.ID), zap.String("category", string(cat)))
	return item, nil
}

// Toggle flips the completion flag of the matching item. An unknown id is a
// no-op, not an error.
func (p *Planner) Toggle(id string) error {
	todos := p.store.LoadToDos()
	for i := range todos {
		if todos[i].ID == id {
			todos[i].Completed = !todos[i].Completed
			return p.store.SaveToDos(todos)
		}
	}
	return nil
}

// Edit replaces text, notes and icon of the matching item. When nothing
// differs from the stored values the write is skipped entirely.
func (p *Planner) Edit(id, text, notes, icon string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	todos := p.store.LoadToDos()
	for i := range todos {
		if todos[i].ID != id {
			continue
		}
		if todos[i].Text == text && todos[i].Notes == notes && todos[i].Icon == icon {
			return nil
		}
		todos[i].Text = text
		todos[i].Notes = notes
		todos[i].Icon = icon
		return p.store.SaveToDos(todos)
	}
	return nil
}

// Delete removes the matching item. Deleting an absent id is a no-op.
func (p *Planner) Delete(id string) error {
	todos := p.store.LoadToDos()
	kept := todos[:0]
	for _, item := range todos {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(todos) {
		return nil
	}
	return p.store.SaveToDos(kept)
}

// Pending returns every uncompleted item, sorted, for the import picker
// listing.
func (p *Planner) Pending() []models.ToDoItem {
	pending, _ := Split(p.store.LoadToDos())
	SortItems(pending)
	return pending
}

// Find looks an item up by id.
func (p *Planner) Find(id string) (models.ToDoItem, bool) {
	for _, item := range p.store.LoadToDos() {
		if item.ID == id {
			return item, true
		}
	}
	return models.ToDoItem{}, false
}
