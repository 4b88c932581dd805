package report

import (
	"fmt"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/Vizzilnt/Protracker1/internal/service"
)

var (
	stripeGray  = color.Color{Red: 240, Green: 240, Blue: 240}
	stripeGreen = color.Color{Red: 225, Green: 245, Blue: 230}
	stripeRed   = color.Color{Red: 250, Green: 230, Blue: 230}
)

// WritePDF renders the report model to an A4 document at path.
func WritePDF(path string, r service.ReportModel) error {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("ProTracker Activity Report", props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  16,
				})
			})
		})
		m.Row(8, func() {
			m.Col(12, func() {
				sub := fmt.Sprintf("%s | %s - %s | generated %s",
					r.UserName, r.StartDate, r.EndDate, r.GeneratedAt.Format("2006-01-02 15:04"))
				m.Text(sub, props.Text{
					Top:   2,
					Align: consts.Center,
					Size:  10,
				})
			})
		})
	})

	sectionTitle(m, fmt.Sprintf("Activity Summary (Total: %s)", r.TotalLabel))

	summaryRows := make([][]string, 0, len(r.Summary))
	for _, row := range r.Summary {
		summaryRows = append(summaryRows, []string{row.Label, row.Duration, row.Percent})
	}
	table(m, []string{"Task Type", "Total Duration", "% of Total"}, summaryRows, []uint{6, 3, 3}, stripeGray)

	sectionTitle(m, "Detailed Activity Log")

	logRows := make([][]string, 0, len(r.Log))
	for _, row := range r.Log {
		logRows = append(logRows, []string{row.Date, row.TimeRange, row.TypeLabel, row.Description, row.Duration})
	}
	table(m, []string{"Date", "Time", "Type", "Description", "Duration"}, logRows, []uint{2, 2, 2, 4, 2}, stripeGray)

	sectionTitle(m, "Planner & To-Do Overview")

	if len(r.CompletedToDos) == 0 && len(r.PendingToDos) == 0 {
		emptyLine(m, "No to-do items found for this period.")
	} else {
		todoHeaders := []string{"Deadline", "Category", "Task", "Notes"}
		todoGrid := []uint{2, 3, 4, 3}

		sectionTitle(m, fmt.Sprintf("Completed Tasks (%d)", len(r.CompletedToDos)))
		if len(r.CompletedToDos) > 0 {
			table(m, todoHeaders, todoRows(r.CompletedToDos), todoGrid, stripeGreen)
		} else {
			emptyLine(m, "No completed tasks recorded for this period.")
		}

		sectionTitle(m, fmt.Sprintf("Pending / Remaining Tasks (%d)", len(r.PendingToDos)))
		if len(r.PendingToDos) > 0 {
			table(m, todoHeaders, todoRows(r.PendingToDos), todoGrid, stripeRed)
		} else {
			emptyLine(m, "No pending tasks remaining for this period.")
		}
	}

	return m.OutputFileAndClose(path)
}

func todoRows(rows []service.ToDoRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{row.Deadline, row.Category, row.Text, row.Notes})
	}
	return out
}

func sectionTitle(m pdf.Maroto, title string) {
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(title, props.Text{
				Top:   5,
				Style: consts.Bold,
				Size:  12,
			})
		})
	})
}

func emptyLine(m pdf.Maroto, msg string) {
	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(msg, props.Text{
				Top:   2,
				Size:  9,
				Style: consts.Italic,
			})
		})
	})
}

func table(m pdf.Maroto, headers []string, rows [][]string, grid []uint, stripe color.Color) {
	m.TableList(headers, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: grid,
		},
		ContentProp: props.TableListContent{
			Size:      9,
			GridSizes: grid,
		},
		Align:                consts.Left,
		AlternatedBackground: &stripe,
		HeaderContentSpace:   1,
		Line:                 false,
	})
	m.Row(4, func() {})
}
