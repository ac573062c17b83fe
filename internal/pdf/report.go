package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"tasktrack/internal/models"
)

// RenderTaskList produces a printable task list for one user.
func RenderTaskList(username string, tasks []models.Task) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Task list", false)
	pdf.SetAuthor("TaskTrack", false)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Tasks", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	sub := fmt.Sprintf("%s  -  exported %s", username, time.Now().Format("2006-01-02 15:04"))
	pdf.CellFormat(0, 6, sub, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// table header
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(80, 8, "Title", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Status", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Priority", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Due", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, t := range tasks {
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		title := t.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		pdf.CellFormat(80, 7, title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, string(t.Status), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, string(t.Priority), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, due, "1", 1, "L", false, 0, "")
	}

	if len(tasks) == 0 {
		pdf.CellFormat(165, 7, "No tasks match the current filters.", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render task list: %w", err)
	}
	return buf.Bytes(), nil
}
