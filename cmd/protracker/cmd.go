package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vizzilnt/Protracker1/internal/models"
	"github.com/Vizzilnt/Protracker1/internal/service"
)

func SetupCommands(a *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "protracker",
		Short: "Activity and time tracking with an urgency/importance planner",
	}

	// parseAnchor resolves the shared --today/--date/--offset navigation
	// flags into the anchor date for a timeframe view.
	parseAnchor := func(cmd *cobra.Command, timeframe string) (time.Time, error) {
		tf := models.Timeframe(toTimeframe(timeframe))
		if today, _ := cmd.Flags().GetBool("today"); today {
			anchor, _ := service.ResetAnchor(time.Now(), tf)
			return anchor, nil
		}
		anchor := time.Now()
		if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
			parsed, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return time.Time{}, fmt.Errorf("bad date %q: %w", dateStr, err)
			}
			anchor = parsed
		}
		anchor = service.SnapAnchor(anchor, tf)
		offset, _ := cmd.Flags().GetInt("offset")
		for i := 0; i < offset; i++ {
			anchor = service.Navigate(anchor, tf, 1)
		}
		for i := 0; i > offset; i-- {
			anchor = service.Navigate(anchor, tf, -1)
		}
		return anchor, nil
	}

	// log
	logCmd := &cobra.Command{
		Use:   "log [description]",
		Short: "Log a completed task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			typ, _ := cmd.Flags().GetString("type")
			fromToDo, _ := cmd.Flags().GetString("from-todo")
			markDone, _ := cmd.Flags().GetBool("done")

			if fromToDo != "" {
				return a.ImportToDo(a.expandToDoID(fromToDo), date, start, end, markDone)
			}
			if len(args) == 0 {
				return fmt.Errorf("description is required unless --from-todo is given")
			}
			return a.LogTask(date, start, end, args[0], typ)
		},
	}
	logCmd.Flags().String("date", time.Now().Format(isoDate), "task date (YYYY-MM-DD)")
	logCmd.Flags().String("start", "", "start time (HH:MM)")
	logCmd.Flags().String("end", "", "end time (HH:MM)")
	logCmd.Flags().String("type", "I", "task type: UI, I, U or N")
	logCmd.Flags().String("from-todo", "", "log a pending planner item by id")
	logCmd.Flags().Bool("done", true, "mark the imported planner item completed")

	// tasks
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "List logged tasks, newest first",
		Run: func(cmd *cobra.Command, args []string) {
			a.ListTasks()
		},
	}

	rmTaskCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a logged task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.DeleteTask(args[0])
		},
	}
	editTaskCmd := &cobra.Command{
		Use:   "edit [id] [description]",
		Short: "Replace a logged task record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			typ, _ := cmd.Flags().GetString("type")
			return a.EditTask(args[0], date, start, end, args[1], typ)
		},
	}
	editTaskCmd.Flags().String("date", time.Now().Format(isoDate), "task date (YYYY-MM-DD)")
	editTaskCmd.Flags().String("start", "", "start time (HH:MM)")
	editTaskCmd.Flags().String("end", "", "end time (HH:MM)")
	editTaskCmd.Flags().String("type", "I", "task type: UI, I, U or N")
	tasksCmd.AddCommand(rmTaskCmd, editTaskCmd)

	// timer
	timerCmd := &cobra.Command{
		Use:   "timer",
		Short: "Track the current session with a live timer",
	}
	timerStartCmd := &cobra.Command{
		Use:   "start",
		Short: "Start the session timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.StartTimer()
		},
	}
	timerStopCmd := &cobra.Command{
		Use:   "stop [description]",
		Short: "Stop the timer and log the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, _ := cmd.Flags().GetString("type")
			return a.StopTimer(args[0], typ)
		},
	}
	timerStopCmd.Flags().String("type", "I", "task type: UI, I, U or N")
	timerCmd.AddCommand(timerStartCmd, timerStopCmd)

	// todo
	todoCmd := &cobra.Command{
		Use:   "todo",
		Short: "The categorized to-do planner",
	}

	todoAddCmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a planner item to the active timeframe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeframe, _ := cmd.Flags().GetString("timeframe")
			category, _ := cmd.Flags().GetString("category")
			deadline, _ := cmd.Flags().GetString("deadline")
			notes, _ := cmd.Flags().GetString("notes")
			icon, _ := cmd.Flags().GetString("icon")
			anchor, err := parseAnchor(cmd, timeframe)
			if err != nil {
				return err
			}
			return a.AddToDo(args[0], category, timeframe, deadline, notes, icon, anchor)
		},
	}
	todoAddCmd.Flags().String("timeframe", "daily", "daily, weekly, monthly or yearly")
	todoAddCmd.Flags().String("category", "UI", "category: UI, I, U or N")
	todoAddCmd.Flags().String("deadline", "", "deadline (YYYY-MM-DD)")
	todoAddCmd.Flags().String("notes", "", "free-text notes")
	todoAddCmd.Flags().String("icon", "", "icon tag")
	todoAddCmd.Flags().String("date", "", "view anchor date (YYYY-MM-DD)")
	todoAddCmd.Flags().Int("offset", 0, "periods to shift the view, negative for past")
	todoAddCmd.Flags().Bool("today", false, "anchor on today, ignoring --date and --offset")

	todoListCmd := &cobra.Command{
		Use:   "list",
		Short: "Show the planner view for a timeframe",
		RunE: func(cmd *cobra.Command, args []string) error {
			timeframe, _ := cmd.Flags().GetString("timeframe")
			anchor, err := parseAnchor(cmd, timeframe)
			if err != nil {
				return err
			}
			return a.ShowPlanner(timeframe, anchor)
		},
	}
	todoListCmd.Flags().String("timeframe", "daily", "daily, weekly, monthly or yearly")
	todoListCmd.Flags().String("date", "", "view anchor date (YYYY-MM-DD)")
	todoListCmd.Flags().Int("offset", 0, "periods to shift the view, negative for past")
	todoListCmd.Flags().Bool("today", false, "anchor on today, ignoring --date and --offset")

	todoPendingCmd := &cobra.Command{
		Use:   "pending",
		Short: "List pending items usable with 'log --from-todo'",
		Run: func(cmd *cobra.Command, args []string) {
			a.ShowPending()
		},
	}

	todoDoneCmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Toggle an item's completion flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.planner.Toggle(a.expandToDoID(args[0]))
		},
	}

	todoEditCmd := &cobra.Command{
		Use:   "edit [id] [text]",
		Short: "Replace an item's text, notes and icon",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, _ := cmd.Flags().GetString("notes")
			icon, _ := cmd.Flags().GetString("icon")
			return a.planner.Edit(a.expandToDoID(args[0]), args[1], notes, icon)
		},
	}
	todoEditCmd.Flags().String("notes", "", "free-text notes")
	todoEditCmd.Flags().String("icon", "", "icon tag")

	todoRmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a planner item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.planner.Delete(a.expandToDoID(args[0]))
		},
	}
	todoCmd.AddCommand(todoAddCmd, todoListCmd, todoPendingCmd, todoDoneCmd, todoEditCmd, todoRmCmd)

	// report
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate a date range and print or export it",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			pdfPath, _ := cmd.Flags().GetString("pdf")
			return a.Report(from, to, pdfPath)
		},
	}
	reportCmd.Flags().String("from", time.Now().AddDate(0, 0, -7).Format(isoDate), "range start (YYYY-MM-DD)")
	reportCmd.Flags().String("to", time.Now().Format(isoDate), "range end (YYYY-MM-DD)")
	reportCmd.Flags().String("pdf", "", "write a PDF report to this path")

	// auth
	registerCmd := &cobra.Command{
		Use:   "register [name] [email] [password]",
		Short: "Create the local account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.auth.Register(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Printf("Welcome, %s\n", user.Name)
			return nil
		},
	}
	loginCmd := &cobra.Command{
		Use:   "login [email] [password]",
		Short: "Sign in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.auth.Login(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Signed in as %s\n", user.Name)
			return nil
		},
	}
	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.auth.Logout()
		},
	}
	forgotCmd := &cobra.Command{
		Use:   "forgot [email]",
		Short: "Send a password-reset code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.auth.RequestReset(args[0])
		},
	}
	resetCmd := &cobra.Command{
		Use:   "reset [email] [code] [new-password]",
		Short: "Set a new password with a reset code",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.auth.ConfirmReset(args[0], args[1], args[2])
		},
	}

	// backup
	backupCmd := &cobra.Command{
		Use:   "backup [archive.tar.xz]",
		Short: "Archive the data folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Backup(args[0])
		},
	}
	restoreCmd := &cobra.Command{
		Use:   "restore [archive.tar.xz]",
		Short: "Restore the data folder from an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Restore(args[0])
		},
	}

	rootCmd.AddCommand(
		logCmd, tasksCmd, timerCmd, todoCmd, reportCmd,
		registerCmd, loginCmd, logoutCmd, forgotCmd, resetCmd,
		backupCmd, restoreCmd,
	)

	return rootCmd
}

func toTimeframe(s string) string {
	switch s {
	case "daily", "DAILY":
		return string(models.TimeframeDaily)
	case "weekly", "WEEKLY":
		return string(models.TimeframeWeekly)
	case "monthly", "MONTHLY":
		return string(models.TimeframeMonthly)
	case "yearly", "YEARLY":
		return string(models.TimeframeYearly)
	}
	return s
}
