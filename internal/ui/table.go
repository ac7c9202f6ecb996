package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/theme"
)

// Column indexes of the todo table.
const (
	colID = iota
	colStatus
	colMessage
	colCreatedAt
)

// TableHeaders are the column titles of the todo table, in order.
var TableHeaders = []string{"ID", "Status", "Task", "Created At"}

// unknownTime is shown for todos whose creation time could not be read.
const unknownTime = "-"

// RenderTodoTable renders todos as a bordered table. timeFormat is a Go
// time layout applied to CreatedAt; width, when positive, caps the table
// width and wraps the message column.
func RenderTodoTable(todos []model.Todo, timeFormat string, width int) string {
	rows := make([][]string, 0, len(todos))
	for _, t := range todos {
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10),
			t.Status(),
			t.Message,
			formatCreatedAt(t, timeFormat),
		})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.BorderStyle).
		Headers(TableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.HeaderStyle
			}
			if col == colStatus && row >= 0 && row < len(rows) {
				return theme.StatusStyle(rows[row][colStatus])
			}
			return theme.CellStyle
		})

	if width > 0 {
		tbl = tbl.Width(width)
	}

	return tbl.Render()
}

func formatCreatedAt(t model.Todo, layout string) string {
	if t.CreatedAt.IsZero() {
		return unknownTime
	}
	return t.CreatedAt.Format(layout)
}
