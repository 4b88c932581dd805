package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/Vizzilnt/Protracker1/internal/auth"
	"github.com/Vizzilnt/Protracker1/internal/backup"
	"github.com/Vizzilnt/Protracker1/internal/models"
	"github.com/Vizzilnt/Protracker1/internal/report"
	"github.com/Vizzilnt/Protracker1/internal/service"
	"github.com/Vizzilnt/Protracker1/internal/store"
)

// App wires the services behind the command tree.
type App struct {
	storage *store.Storage
	tasks   *service.Tasks
	planner *service.Planner
	auth    *auth.Service
}

const isoDate = "2006-01-02"

func (a *App) LogTask(date, start, end, description, typ string) error {
	task, err := a.tasks.Create(date, start, end, description, models.TaskType(typ))
	if err != nil {
		return err
	}
	fmt.Printf("Logged %s (%s)\n", task.Description, service.FormatMinutes(task.DurationMinutes))
	return nil
}

func (a *App) ImportToDo(todoID, date, start, end string, markDone bool) error {
	task, err := a.tasks.ImportFromToDo(a.planner, todoID, date, start, end, markDone)
	if err != nil {
		return err
	}
	if task.ID == "" {
		fmt.Println("No pending to-do with that id.")
		return nil
	}
	fmt.Printf("Logged %s (%s)\n", task.Description, service.FormatMinutes(task.DurationMinutes))
	return nil
}

func (a *App) ListTasks() {
	tasks := a.tasks.List()
	if len(tasks) == 0 {
		fmt.Println("No tasks logged yet.")
		return
	}

	headers := []string{"ID", "Date", "Time", "Type", "Description", "Duration", ""}
	var rows [][]string
	total := 0
	for _, t := range tasks {
		flag := ""
		if service.Overrun(t) {
			flag = "!"
		}
		total += t.DurationMinutes
		rows = append(rows, []string{
			shortID(t.ID),
			t.Date,
			t.StartTime + "-" + t.EndTime,
			string(t.Type),
			t.Description,
			service.FormatMinutes(t.DurationMinutes),
			flag,
		})
	}
	footers := []string{"", "", "", "", "Total:", service.FormatMinutes(total), ""}
	PrintTable(headers, rows, footers)
}

func (a *App) EditTask(id, date, start, end, description, typ string) error {
	task, err := a.tasks.Replace(a.expandTaskID(id), date, start, end, description, models.TaskType(typ))
	if err != nil {
		return err
	}
	if task.ID == "" {
		fmt.Println("No task with that id.")
		return nil
	}
	fmt.Printf("Updated %s (%s)\n", task.Description, service.FormatMinutes(task.DurationMinutes))
	return nil
}

func (a *App) DeleteTask(id string) error {
	if err := a.tasks.Delete(a.expandTaskID(id)); err != nil {
		return err
	}
	fmt.Println("Task removed.")
	return nil
}

func (a *App) StartTimer() error {
	state := a.storage.LoadState()
	if state.TimerStartedAt != "" {
		return fmt.Errorf("timer already running since %s", state.TimerStartedAt)
	}
	state.TimerStartedAt = time.Now().Format(time.RFC3339)
	if err := a.storage.SaveState(state); err != nil {
		return err
	}
	fmt.Println("Timer started.")
	return nil
}

func (a *App) StopTimer(description, typ string) error {
	state := a.storage.LoadState()
	if state.TimerStartedAt == "" {
		return fmt.Errorf("no timer running")
	}
	start, err := time.Parse(time.RFC3339, state.TimerStartedAt)
	if err != nil {
		return fmt.Errorf("bad timer state: %w", err)
	}

	task, err := a.tasks.LogInterval(start, time.Now(), description, models.TaskType(typ))
	if err != nil {
		return err
	}

	state.TimerStartedAt = ""
	if err := a.storage.SaveState(state); err != nil {
		return err
	}
	fmt.Printf("Timer stopped, logged %s (%s)\n", task.Description, service.FormatMinutes(task.DurationMinutes))
	return nil
}

func (a *App) AddToDo(text, category, timeframe, deadline, notes, icon string, anchor time.Time) error {
	tf := models.Timeframe(strings.ToUpper(timeframe))
	period := service.ResolvePeriod(anchor, tf)
	item, err := a.planner.Add(text, models.Category(category), tf, period, deadline, notes, icon)
	if err != nil {
		return err
	}
	fmt.Printf("Added to %s list: %s\n", tf.Label(), item.Text)
	return nil
}

func (a *App) ShowPlanner(timeframe string, anchor time.Time) error {
	tf := models.Timeframe(strings.ToUpper(timeframe))
	if !tf.Valid() {
		return fmt.Errorf("unknown timeframe %q", timeframe)
	}
	period, items := a.planner.View(tf, anchor)
	today := a.planner.Today()

	fmt.Printf("== %s ==\n", period.Label)

	pending, completed := service.Split(items)
	for _, bucket := range service.PendingBuckets(pending) {
		fmt.Printf("\n%s\n", bucket.Category.Label())
		if len(bucket.Items) == 0 {
			fmt.Println("  (no active tasks)")
			continue
		}
		for _, item := range bucket.Items {
			marker := " "
			if service.Overdue(item, today) {
				marker = "!"
			}
			due := ""
			if item.Deadline != "" {
				due = " due " + item.Deadline
			}
			fmt.Printf("  %s %s  %s%s\n", marker, shortID(item.ID), item.Text, due)
			if item.Notes != "" {
				fmt.Printf("       %s\n", item.Notes)
			}
		}
	}

	if len(completed) > 0 {
		fmt.Printf("\nCompleted (%s)\n", period.Label)
		for _, item := range completed {
			fmt.Printf("  x %s  %s\n", shortID(item.ID), item.Text)
		}
	}
	return nil
}

// ShowPending lists every uncompleted item across all timeframes, the
// candidates for 'log --from-todo'.
func (a *App) ShowPending() {
	items := a.planner.Pending()
	if len(items) == 0 {
		fmt.Println("No pending to-dos.")
		return
	}

	headers := []string{"ID", "Category", "Timeframe", "Deadline", "Task"}
	var rows [][]string
	for _, item := range items {
		rows = append(rows, []string{
			shortID(item.ID),
			string(item.Category),
			string(item.Timeframe),
			item.Deadline,
			item.Text,
		})
	}
	PrintTable(headers, rows, nil)
}

func (a *App) Report(from, to, pdfPath string) error {
	user, ok := a.auth.CurrentUser()
	if !ok {
		return fmt.Errorf("not logged in; run 'protracker login' first")
	}

	model := service.BuildReport(a.storage.LoadTasks(), a.storage.LoadToDos(), from, to, user.Name, time.Now())

	if pdfPath != "" {
		if err := report.WritePDF(pdfPath, model); err != nil {
			return fmt.Errorf("writing pdf: %w", err)
		}
		fmt.Printf("Report written to %s\n", pdfPath)
		return nil
	}

	fmt.Printf("Activity %s - %s (Total: %s)\n", model.StartDate, model.EndDate, model.TotalLabel)

	if len(model.Summary) > 0 {
		var rows [][]string
		for _, row := range model.Summary {
			rows = append(rows, []string{row.Label, row.Duration, row.Percent})
		}
		PrintTable([]string{"Task Type", "Total Duration", "% of Total"}, rows, nil)
	}

	if len(model.Log) > 0 {
		fmt.Println("\nDetailed Activity Log")
		var rows [][]string
		for _, row := range model.Log {
			rows = append(rows, []string{row.Date, row.TimeRange, row.TypeLabel, row.Description, row.Duration})
		}
		PrintTable([]string{"Date", "Time", "Type", "Description", "Duration"}, rows, nil)
	}

	printToDoSection := func(title string, rows []service.ToDoRow) {
		fmt.Printf("\n%s (%d)\n", title, len(rows))
		if len(rows) == 0 {
			return
		}
		var cells [][]string
		for _, row := range rows {
			cells = append(cells, []string{row.Deadline, row.Category, row.Text, row.Notes})
		}
		PrintTable([]string{"Deadline", "Category", "Task", "Notes"}, cells, nil)
	}
	printToDoSection("Completed Tasks", model.CompletedToDos)
	printToDoSection("Pending / Remaining Tasks", model.PendingToDos)
	return nil
}

func (a *App) Backup(outPath string) error {
	if err := backup.Archive(outPath, a.storage.DataFiles()); err != nil {
		return err
	}
	fmt.Printf("Data archived to %s\n", outPath)
	return nil
}

func (a *App) Restore(archivePath string) error {
	if err := backup.Restore(archivePath, a.storage.BaseDir); err != nil {
		return err
	}
	fmt.Printf("Data restored into %s\n", a.storage.BaseDir)
	return nil
}

// expandTaskID lets commands accept the shortened ids shown in listings.
func (a *App) expandTaskID(id string) string {
	for _, t := range a.storage.LoadTasks() {
		if t.ID == id || shortID(t.ID) == id {
			return t.ID
		}
	}
	return id
}

// expandToDoID does the same for planner items.
func (a *App) expandToDoID(id string) string {
	for _, item := range a.storage.LoadToDos() {
		if item.ID == id || shortID(item.ID) == id {
			return item.ID
		}
	}
	return id
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
